package task

import (
	"math"
	"time"
)

// Stats holds count-based statistics for a task subset.
type Stats struct {
	Total   int
	Todo    int
	InProg  int
	Done    int
	Overdue int
}

// ComputeStats counts statuses and overdue tasks over the given subset. The
// subset is expected to be period-filtered already.
func ComputeStats(tasks []Task, now time.Time) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusTodo:
			stats.Todo++
		case StatusInProg:
			stats.InProg++
		case StatusDone:
			stats.Done++
		}
		if Overdue(t, now) {
			stats.Overdue++
		}
	}
	return stats
}

// Progress holds the percentage breakdown for a task subset. Each value is
// rounded independently, so the four numbers are not guaranteed to sum to
// 100. That is the documented behavior; do not normalize.
type Progress struct {
	Done    int
	Todo    int
	InProg  int
	Overdue int

	// HasTasks distinguishes an all-zero breakdown over a real subset
	// from the empty "no tasks" state.
	HasTasks bool
}

// ComputeProgress derives the percentage breakdown for the subset. An empty
// subset yields all zeros with HasTasks false.
func ComputeProgress(tasks []Task, now time.Time) Progress {
	stats := ComputeStats(tasks, now)
	if stats.Total == 0 {
		return Progress{}
	}

	return Progress{
		Done:     percent(stats.Done, stats.Total),
		Todo:     percent(stats.Todo, stats.Total),
		InProg:   percent(stats.InProg, stats.Total),
		Overdue:  percent(stats.Overdue, stats.Total),
		HasTasks: true,
	}
}

func percent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}
