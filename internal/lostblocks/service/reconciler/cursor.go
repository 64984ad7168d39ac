package reconciler

import (
	"context"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

// WalkState is the state of a cursor seeking a scheduled coordinate.
type WalkState string

var (
	// WalkWalking means the cursor's slot is still above the target slot.
	WalkWalking WalkState = "walking"
	// WalkMatched means the cursor sits on a block at exactly the target.
	WalkMatched WalkState = "matched"
	// WalkGap means the walk stopped without landing on the target.
	WalkGap WalkState = "gap"
)

// walkCursor is the block currently examined by one reconciliation run.
// It only ever moves to parents.
type walkCursor struct {
	block  model.Block
	walker ChainWalker
	steps  int
}

func newWalkCursor(tip model.Block, walker ChainWalker) *walkCursor {
	return &walkCursor{block: tip, walker: walker}
}

// seek walks back while the cursor's slot is above the target slot. The epoch
// takes no part in the walk; a match needs both epoch and slot to be equal.
func (c *walkCursor) seek(ctx context.Context, target model.Coordinate) (WalkState, error) {
	state := WalkWalking
	for state == WalkWalking {
		switch {
		case c.block.Coordinate().Compare(target) == 0:
			state = WalkMatched
		case c.block.Slot <= target.Slot, c.block.IsGenesis():
			state = WalkGap
		default:
			parent, err := c.walker.Parent(ctx, c.block)
			if err != nil {
				return state, err
			}
			c.block = parent
			c.steps++
		}
	}
	return state, nil
}
