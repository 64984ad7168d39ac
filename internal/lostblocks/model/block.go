// Package model defines domain models for the lost blocks audit.
package model

import (
	"cmp"
	"fmt"
	"strings"
)

// BlockID is the hex encoded identifier of a block.
type BlockID string

// Coordinate is an epoch/slot position on the chain.
type Coordinate struct {
	Epoch uint32
	Slot  uint32
}

// Compare orders coordinates by epoch, then slot. It returns -1, 0 or 1.
func (c Coordinate) Compare(other Coordinate) int {
	if n := cmp.Compare(c.Epoch, other.Epoch); n != 0 {
		return n
	}
	return cmp.Compare(c.Slot, other.Slot)
}

// String renders the coordinate the way the node prints block dates.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d.%d", c.Epoch, c.Slot)
}

// Block holds the header fields of a block the audit needs.
type Block struct {
	ID         BlockID
	Epoch      uint32
	Slot       uint32
	ParentID   BlockID
	ProducerID string
}

// Coordinate returns the epoch/slot position of the block.
func (b Block) Coordinate() Coordinate {
	return Coordinate{Epoch: b.Epoch, Slot: b.Slot}
}

// IsGenesis reports whether the block has no parent to walk to.
func (b Block) IsGenesis() bool {
	return strings.Trim(string(b.ParentID), "0") == ""
}
