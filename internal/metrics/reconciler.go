package metrics

import (
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcilerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "runs_total",
		Help:      "Count of reconciliation runs.",
	}, []string{"network", "status"})

	reconcilerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "run_duration_seconds",
		Help:      "Duration of a reconciliation run.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"network", "status"})

	reconcilerWalkSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "walk_steps",
		Help:      "Number of parent blocks fetched per run.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16), // 1..32768
	}, []string{"network"})

	reconcilerOpportunities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "opportunities",
		Help:      "Completed leader slots considered by the last run.",
	}, []string{"network"})

	reconcilerWins = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "wins",
		Help:      "Leader slots whose block was adopted, as of the last run.",
	}, []string{"network"})

	reconcilerLost = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "lost_blocks",
		Help:      "Leader slots lost to other producers or left empty, as of the last run.",
	}, []string{"network"})

	reconcilerLastSuccess = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful run.",
	}, []string{"network"})
)

// Reconciler tracks metrics for reconciliation runs.
type Reconciler struct {
	network string
}

// NewReconciler constructs a Reconciler with defaults.
func NewReconciler(network string) *Reconciler {
	if network == "" {
		network = "unknown"
	}
	return &Reconciler{network: network}
}

// ObserveRun records a run outcome. Result gauges move only on success.
func (m Reconciler) ObserveRun(err error, report model.Report, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	reconcilerRunsTotal.WithLabelValues(m.network, status).Inc()
	reconcilerRunDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}

	reconcilerWalkSteps.WithLabelValues(m.network).Observe(float64(report.WalkSteps))
	reconcilerOpportunities.WithLabelValues(m.network).Set(float64(report.Opportunities))
	reconcilerWins.WithLabelValues(m.network).Set(float64(report.Wins))
	reconcilerLost.WithLabelValues(m.network).Set(float64(report.Lost()))
	reconcilerLastSuccess.WithLabelValues(m.network).SetToCurrentTime()
}
