// Package chain resolves block identifiers to headers and walks parent links backward.
package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/lostblocks/internal/jormungandr"
	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
	"go.uber.org/zap"
)

// ErrNoParent is returned when walking back from a block without a parent.
var ErrNoParent = errors.New("block has no parent")

// Walker decodes blocks fetched from a node. It keeps no state between calls.
type Walker struct {
	api    NodeAPI
	logger *zap.Logger
}

// NewWalker constructs a Walker over the node API.
func NewWalker(api NodeAPI, logger *zap.Logger) *Walker {
	return &Walker{api: api, logger: logger}
}

// TipID returns the identifier of the current chain head.
func (w *Walker) TipID(ctx context.Context) (model.BlockID, error) {
	id, err := w.api.Tip(ctx)
	if err != nil {
		return "", fmt.Errorf("get tip: %w", err)
	}
	return id, nil
}

// Block fetches and decodes the block with the given identifier.
func (w *Walker) Block(ctx context.Context, id model.BlockID) (model.Block, error) {
	raw, err := w.api.Block(ctx, id)
	if err != nil {
		return model.Block{}, fmt.Errorf("get block %s: %w", id, err)
	}

	block, err := jormungandr.DecodeHeader(id, raw)
	if err != nil {
		return model.Block{}, err
	}

	w.logger.Debug("decoded block",
		zap.String("id", string(block.ID)),
		zap.Stringer("date", block.Coordinate()),
		zap.String("parent", string(block.ParentID)),
		zap.String("producer", block.ProducerID))
	return block, nil
}

// Parent fetches and decodes the parent of b.
func (w *Walker) Parent(ctx context.Context, b model.Block) (model.Block, error) {
	if b.IsGenesis() {
		return model.Block{}, fmt.Errorf("block %s: %w", b.ID, ErrNoParent)
	}
	return w.Block(ctx, b.ParentID)
}
