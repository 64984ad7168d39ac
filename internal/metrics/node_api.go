// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lostblocks"

var (
	nodeAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_api",
		Name:      "operations_total",
		Help:      "Count of Jormungandr REST API operations.",
	}, []string{"operation", "network", "status"})
	nodeAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node_api",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Jormungandr REST API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeAPI tracks metrics for REST calls to the node.
type NodeAPI struct {
	network string
}

// NewNodeAPI constructs a metrics collector for node API calls.
func NewNodeAPI(network string) *NodeAPI {
	if network == "" {
		network = "unknown"
	}
	return &NodeAPI{network: network}
}

// Observe records a single API call outcome and duration.
func (m NodeAPI) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	nodeAPIRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	nodeAPIRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
