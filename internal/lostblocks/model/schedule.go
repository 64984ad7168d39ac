package model

import "time"

// LeaderStatus describes the outcome the node recorded for a scheduled slot.
type LeaderStatus string

var (
	// LeaderPending marks a slot the node has not reached yet.
	LeaderPending LeaderStatus = "pending"
	// LeaderBlock marks a slot the node produced a block for.
	LeaderBlock LeaderStatus = "block"
	// LeaderRejected marks a slot the node gave up on.
	LeaderRejected LeaderStatus = "rejected"
)

// ScheduledSlot is one entry of the node's leadership log.
type ScheduledSlot struct {
	Coordinate      Coordinate
	ScheduledAt     time.Time
	FinishedAt      *time.Time
	Status          LeaderStatus
	ProducedBlockID BlockID
	ChainLength     uint64
	RejectionReason string
}

// Completed reports whether the slot has been reached.
func (s ScheduledSlot) Completed() bool {
	return s.FinishedAt != nil
}
