package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

const insertSlotOutcomesQuery = `
INSERT INTO lostblock_slot_outcomes (
	network,
	report_finished_at,
	epoch,
	slot,
	outcome,
	produced_block_id,
	chain_block_id,
	chain_producer_id
) VALUES`

// InsertSlotOutcomes stores the per slot classification of a run. Later runs
// replace earlier rows for the same slot.
func (r *Repository) InsertSlotOutcomes(ctx context.Context, report model.Report) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_slot_outcomes", report.Network, err, start)
	}()

	if len(report.Slots) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSlotOutcomesQuery)
	if err != nil {
		return fmt.Errorf("prepare slot outcomes batch: %w", err)
	}

	for _, slot := range report.Slots {
		if err = batch.Append(
			report.Network,
			report.FinishedAt,
			slot.Coordinate.Epoch,
			slot.Coordinate.Slot,
			string(slot.Outcome),
			string(slot.ProducedBlockID),
			string(slot.ChainBlockID),
			slot.ChainProducerID,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append slot outcome %s: %w", slot.Coordinate, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert slot outcomes: %w", err)
	}
	return nil
}
