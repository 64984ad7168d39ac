package reconciler

import (
	"sort"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

// completedMostRecentFirst drops slots that have not been reached and orders the
// rest by finish time, newest first. Ties keep their log order.
func completedMostRecentFirst(slots []model.ScheduledSlot) []model.ScheduledSlot {
	completed := make([]model.ScheduledSlot, 0, len(slots))
	for _, s := range slots {
		if s.Completed() {
			completed = append(completed, s)
		}
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].FinishedAt.After(*completed[j].FinishedAt)
	})
	return completed
}
