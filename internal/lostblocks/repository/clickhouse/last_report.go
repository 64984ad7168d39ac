package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

const lastReportQuery = `
SELECT
	tip_id,
	tip_epoch,
	tip_slot,
	opportunities,
	wins,
	walk_steps,
	started_at,
	finished_at
FROM lostblock_reports
WHERE network = ?
ORDER BY finished_at DESC
LIMIT 1`

// LastReport returns the totals of the most recent stored run for network.
// The boolean is false when nothing has been stored yet.
func (r *Repository) LastReport(ctx context.Context, network string) (report model.Report, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("last_report", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, lastReportQuery, network)
	if err != nil {
		return model.Report{}, false, fmt.Errorf("query last report: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Report{}, false, fmt.Errorf("iterate last report: %w", err)
		}
		return model.Report{}, false, nil
	}

	var (
		tipID                          string
		opportunities, wins, walkSteps uint32
		startedAt, finishedAt          time.Time
	)
	report.Network = network
	if err = rows.Scan(
		&tipID,
		&report.Tip.Epoch,
		&report.Tip.Slot,
		&opportunities,
		&wins,
		&walkSteps,
		&startedAt,
		&finishedAt,
	); err != nil {
		return model.Report{}, false, fmt.Errorf("scan last report: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Report{}, false, fmt.Errorf("iterate last report: %w", err)
	}

	report.TipID = model.BlockID(tipID)
	report.Opportunities = int(opportunities)
	report.Wins = int(wins)
	report.WalkSteps = int(walkSteps)
	report.StartedAt = startedAt
	report.FinishedAt = finishedAt
	return report, true, nil
}
