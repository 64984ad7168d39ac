package jormungandr

import (
	"context"
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeAPI is the subset of the node REST API the audit reads.
	NodeAPI interface {
		Tip(ctx context.Context) (model.BlockID, error)
		Block(ctx context.Context, id model.BlockID) ([]byte, error)
		LeaderLogs(ctx context.Context) ([]model.ScheduledSlot, error)
	}

	// APIMetrics records metrics for node API calls.
	APIMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
