package task

import (
	"fmt"
	"sort"
	"time"
)

// SortMode selects the key tasks are ordered by.
type SortMode string

const (
	// SortDue orders by due instant, soonest first.
	SortDue SortMode = "due"

	// SortDo orders by do (work-on) instant, soonest first.
	SortDo SortMode = "do"
)

// DefaultSortMode is the order used when none has been chosen.
const DefaultSortMode = SortDo

// ParseSortMode validates a sort mode string.
func ParseSortMode(value string) (SortMode, error) {
	switch SortMode(value) {
	case SortDue:
		return SortDue, nil
	case SortDo:
		return SortDo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortMode, value)
	}
}

// undatedSentinel sorts tasks with no date after every real date.
var undatedSentinel = time.Date(9999, time.January, 1, 0, 0, 0, 0, time.Local)

func sortKey(t Task, mode SortMode) time.Time {
	var at time.Time
	var ok bool
	switch mode {
	case SortDo:
		at, ok = t.DoAt()
	default:
		at, ok = t.DueAt()
	}
	if !ok {
		return undatedSentinel
	}
	return at
}

// SortTasks orders the list in place. Non-done tasks come first, ordered by
// the chosen key; done tasks follow, oldest completed first (by creation
// instant). Ties preserve input order.
func SortTasks(tasks []Task, mode SortMode) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		aDone := a.Status == StatusDone
		bDone := b.Status == StatusDone
		if aDone != bDone {
			return !aDone
		}
		if aDone {
			return a.Created < b.Created
		}
		return sortKey(a, mode).Before(sortKey(b, mode))
	})
}
