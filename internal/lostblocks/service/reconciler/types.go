package reconciler

import (
	"context"
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainWalker interface {
		TipID(ctx context.Context) (model.BlockID, error)
		Block(ctx context.Context, id model.BlockID) (model.Block, error)
		Parent(ctx context.Context, b model.Block) (model.Block, error)
	}
	ScheduleSource interface {
		LeaderLogs(ctx context.Context) ([]model.ScheduledSlot, error)
	}
	Metrics interface {
		ObserveRun(err error, report model.Report, started time.Time)
	}
)
