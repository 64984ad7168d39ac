package jormungandr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

type leaderLogEntry struct {
	ScheduledAtDate string       `json:"scheduled_at_date"`
	ScheduledAtTime *time.Time   `json:"scheduled_at_time"`
	FinishedAtTime  *time.Time   `json:"finished_at_time"`
	Status          leaderStatus `json:"status"`
}

// leaderStatus is either the bare string "Pending" or a single-key object
// such as {"Block":{...}} or {"Rejected":{...}}.
type leaderStatus struct {
	kind        model.LeaderStatus
	block       string
	chainLength uint64
	reason      string
}

func (s *leaderStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.kind = model.LeaderStatus(strings.ToLower(name))
		return nil
	}

	var obj struct {
		Block *struct {
			Block       string `json:"block"`
			ChainLength uint64 `json:"chain_length"`
		} `json:"Block"`
		Rejected *struct {
			Reason string `json:"reason"`
		} `json:"Rejected"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("leader status: %w", err)
	}

	switch {
	case obj.Block != nil:
		s.kind = model.LeaderBlock
		s.block = obj.Block.Block
		s.chainLength = obj.Block.ChainLength
	case obj.Rejected != nil:
		s.kind = model.LeaderRejected
		s.reason = obj.Rejected.Reason
	default:
		return fmt.Errorf("leader status: unknown shape %s", string(data))
	}
	return nil
}

func decodeLeaderLogs(body []byte) ([]model.ScheduledSlot, error) {
	var entries []leaderLogEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &DecodeError{What: "leader logs", Err: err}
	}

	slots := make([]model.ScheduledSlot, 0, len(entries))
	for i, e := range entries {
		coord, err := parseBlockDate(e.ScheduledAtDate)
		if err != nil {
			return nil, &DecodeError{What: fmt.Sprintf("leader log entry %d", i), Err: err}
		}

		slot := model.ScheduledSlot{
			Coordinate:      coord,
			FinishedAt:      e.FinishedAtTime,
			Status:          e.Status.kind,
			ProducedBlockID: model.BlockID(strings.ToLower(e.Status.block)),
			ChainLength:     e.Status.chainLength,
			RejectionReason: e.Status.reason,
		}
		if e.ScheduledAtTime != nil {
			slot.ScheduledAt = *e.ScheduledAtTime
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// parseBlockDate parses the node's "{epoch}.{slot}" block date notation.
func parseBlockDate(date string) (model.Coordinate, error) {
	epochPart, slotPart, ok := strings.Cut(date, ".")
	if !ok {
		return model.Coordinate{}, errors.New("block date " + strconv.Quote(date) + " is not epoch.slot")
	}

	epoch, err := strconv.ParseUint(epochPart, 10, 32)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("block date %q epoch: %w", date, err)
	}
	slot, err := strconv.ParseUint(slotPart, 10, 32)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("block date %q slot: %w", date, err)
	}

	return model.Coordinate{Epoch: uint32(epoch), Slot: uint32(slot)}, nil
}
