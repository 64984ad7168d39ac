package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
	"github.com/goodnatureofminers/lostblocks/pkg/safe"
)

const insertReportQuery = `
INSERT INTO lostblock_reports (
	network,
	started_at,
	finished_at,
	tip_id,
	tip_epoch,
	tip_slot,
	opportunities,
	wins,
	lost,
	walk_steps
) VALUES`

// InsertReport stores the totals of one reconciliation run.
func (r *Repository) InsertReport(ctx context.Context, report model.Report) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_report", report.Network, err, start)
	}()

	counters, err := reportCounters(report)
	if err != nil {
		return err
	}

	batch, err := r.conn.PrepareBatch(ctx, insertReportQuery)
	if err != nil {
		return fmt.Errorf("prepare report batch: %w", err)
	}

	if err = batch.Append(
		report.Network,
		report.StartedAt,
		report.FinishedAt,
		string(report.TipID),
		report.Tip.Epoch,
		report.Tip.Slot,
		counters[0],
		counters[1],
		counters[2],
		counters[3],
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append report: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// reportCounters returns opportunities, wins, lost and walk steps as column values.
func reportCounters(report model.Report) ([4]uint32, error) {
	var counters [4]uint32
	values := [4]struct {
		name  string
		value int
	}{
		{"opportunities", report.Opportunities},
		{"wins", report.Wins},
		{"lost", report.Lost()},
		{"walk_steps", report.WalkSteps},
	}
	for i, v := range values {
		n, err := safe.Uint32(v.value)
		if err != nil {
			return counters, fmt.Errorf("report %s: %w", v.name, err)
		}
		counters[i] = n
	}
	return counters, nil
}
