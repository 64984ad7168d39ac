package chain

import (
	"context"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeAPI provides the chain head and raw blocks.
	NodeAPI interface {
		Tip(ctx context.Context) (model.BlockID, error)
		Block(ctx context.Context, id model.BlockID) ([]byte, error)
	}
)
