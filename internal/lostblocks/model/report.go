package model

import "time"

// Outcome classifies a scheduled slot after reconciliation.
type Outcome string

var (
	// OutcomeWon means the chain holds the node's own block at the slot.
	OutcomeWon Outcome = "won"
	// OutcomeLost means another producer's block was adopted at the slot.
	OutcomeLost Outcome = "lost"
	// OutcomeEmpty means the chain has no block at the slot.
	OutcomeEmpty Outcome = "empty"
)

// SlotOutcome is the reconciliation result for one scheduled slot.
type SlotOutcome struct {
	Coordinate      Coordinate
	Outcome         Outcome
	ProducedBlockID BlockID
	ChainBlockID    BlockID
	ChainProducerID string
}

// Report aggregates one reconciliation run.
type Report struct {
	Network       string
	TipID         BlockID
	Tip           Coordinate
	Opportunities int
	Wins          int
	Slots         []SlotOutcome
	WalkSteps     int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Lost returns the number of scheduled slots the node did not win.
func (r Report) Lost() int {
	return r.Opportunities - r.Wins
}
