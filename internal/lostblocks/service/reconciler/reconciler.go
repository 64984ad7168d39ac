// Package reconciler classifies the node's scheduled leader slots as won or lost
// against the blocks adopted on the chain.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
	"go.uber.org/zap"
)

// Service reconciles the leadership log with the chain seen from the tip.
type Service struct {
	logger   *zap.Logger
	network  string
	walker   ChainWalker
	schedule ScheduleSource
	metrics  Metrics
	now      func() time.Time
}

// NewService builds a Service with dependencies.
func NewService(
	walker ChainWalker,
	schedule ScheduleSource,
	metrics Metrics,
	network string,
	logger *zap.Logger,
) (*Service, error) {
	if walker == nil {
		return nil, errors.New("chain walker is required")
	}
	if schedule == nil {
		return nil, errors.New("schedule source is required")
	}
	if metrics == nil {
		return nil, errors.New("reconciler metrics is required")
	}

	return &Service{
		logger:   logger.With(zap.String("network", network)),
		network:  network,
		walker:   walker,
		schedule: schedule,
		metrics:  metrics,
		now:      time.Now,
	}, nil
}

// Run performs one reconciliation pass. Any failure aborts the pass and no
// partial report is returned.
func (s *Service) Run(ctx context.Context) (model.Report, error) {
	started := s.now()
	report, err := s.reconcile(ctx)
	s.metrics.ObserveRun(err, report, started)
	if err != nil {
		return model.Report{}, err
	}

	s.logger.Info("reconciliation finished",
		zap.Stringer("tip", report.Tip),
		zap.Int("opportunities", report.Opportunities),
		zap.Int("wins", report.Wins),
		zap.Int("lost", report.Lost()),
		zap.Int("walk_steps", report.WalkSteps))
	return report, nil
}

func (s *Service) reconcile(ctx context.Context) (model.Report, error) {
	report := model.Report{Network: s.network, StartedAt: s.now()}

	tipID, err := s.walker.TipID(ctx)
	if err != nil {
		return report, err
	}
	tip, err := s.walker.Block(ctx, tipID)
	if err != nil {
		return report, fmt.Errorf("decode tip: %w", err)
	}
	report.TipID = tipID
	report.Tip = tip.Coordinate()

	slots, err := s.schedule.LeaderLogs(ctx)
	if err != nil {
		return report, fmt.Errorf("get leader logs: %w", err)
	}
	completed := completedMostRecentFirst(slots)
	s.logger.Debug("loaded leader logs",
		zap.Int("entries", len(slots)),
		zap.Int("completed", len(completed)),
		zap.Stringer("tip", report.Tip))

	cursor := newWalkCursor(tip, s.walker)
	for _, entry := range completed {
		if entry.Coordinate.Epoch < cursor.block.Epoch {
			s.logger.Debug("entry predates cursor epoch; stopping",
				zap.Stringer("entry", entry.Coordinate),
				zap.Stringer("cursor", cursor.block.Coordinate()))
			break
		}
		report.Opportunities++

		state, err := cursor.seek(ctx, entry.Coordinate)
		if err != nil {
			return report, fmt.Errorf("walk to %s: %w", entry.Coordinate, err)
		}

		outcome := classify(state, cursor.block, entry)
		if outcome.Outcome == model.OutcomeWon {
			report.Wins++
		}
		report.Slots = append(report.Slots, outcome)
		s.logOutcome(outcome)
	}

	report.WalkSteps = cursor.steps
	report.FinishedAt = s.now()
	return report, nil
}

func classify(state WalkState, block model.Block, entry model.ScheduledSlot) model.SlotOutcome {
	outcome := model.SlotOutcome{
		Coordinate:      entry.Coordinate,
		Outcome:         model.OutcomeEmpty,
		ProducedBlockID: entry.ProducedBlockID,
	}
	if state != WalkMatched {
		return outcome
	}

	outcome.ChainBlockID = block.ID
	outcome.ChainProducerID = block.ProducerID
	if entry.ProducedBlockID != "" && block.ID == entry.ProducedBlockID {
		outcome.Outcome = model.OutcomeWon
	} else {
		outcome.Outcome = model.OutcomeLost
	}
	return outcome
}

func (s *Service) logOutcome(o model.SlotOutcome) {
	switch o.Outcome {
	case model.OutcomeLost:
		s.logger.Debug("slot lost",
			zap.Stringer("date", o.Coordinate),
			zap.String("lost_to", o.ChainProducerID),
			zap.String("chain_block", string(o.ChainBlockID)),
			zap.String("produced_block", string(o.ProducedBlockID)))
	case model.OutcomeEmpty:
		s.logger.Debug("no block adopted at slot", zap.Stringer("date", o.Coordinate))
	default:
		s.logger.Debug("slot won", zap.Stringer("date", o.Coordinate))
	}
}
