package task

import (
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 6, 11, 12, 0, 0, 0, time.Local)

	tasks := []Task{
		{Name: "a", Status: StatusTodo},
		{Name: "b", Status: StatusTodo, Date: "2026-06-10", Time: "09:00"},
		{Name: "c", Status: StatusInProg, Date: "2026-06-01"},
		{Name: "d", Status: StatusDone, Date: "2026-06-01"},
	}

	stats := ComputeStats(tasks, now)

	if stats.Total != 4 {
		t.Errorf("total = %d, want 4", stats.Total)
	}
	if stats.Todo != 2 {
		t.Errorf("todo = %d, want 2", stats.Todo)
	}
	if stats.InProg != 1 {
		t.Errorf("inprog = %d, want 1", stats.InProg)
	}
	if stats.Done != 1 {
		t.Errorf("done = %d, want 1", stats.Done)
	}
	// b and c are overdue; d has a past date but done tasks never count.
	if stats.Overdue != 2 {
		t.Errorf("overdue = %d, want 2", stats.Overdue)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	if stats != (Stats{}) {
		t.Errorf("stats over empty subset = %+v, want all zeros", stats)
	}
}

func TestComputeProgress_RoundsIndependently(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)

	// One of each status over three tasks: every share rounds to 33
	// independently. The values do not sum to 100 and must not be
	// adjusted to.
	tasks := []Task{
		{Name: "a", Status: StatusTodo},
		{Name: "b", Status: StatusInProg},
		{Name: "c", Status: StatusDone},
	}

	progress := ComputeProgress(tasks, now)

	if !progress.HasTasks {
		t.Fatal("HasTasks = false for a non-empty subset")
	}
	if progress.Todo != 33 || progress.InProg != 33 || progress.Done != 33 {
		t.Errorf("breakdown = %+v, want 33/33/33", progress)
	}
	if progress.Overdue != 0 {
		t.Errorf("overdue = %d, want 0", progress.Overdue)
	}
}

func TestComputeProgress_HalfRoundsUp(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)

	// 1 of 8 is 12.5%, which rounds half away from zero to 13.
	tasks := []Task{
		{Name: "done", Status: StatusDone},
		{Name: "t1", Status: StatusTodo},
		{Name: "t2", Status: StatusTodo},
		{Name: "t3", Status: StatusTodo},
		{Name: "t4", Status: StatusTodo},
		{Name: "t5", Status: StatusTodo},
		{Name: "t6", Status: StatusTodo},
		{Name: "t7", Status: StatusTodo},
	}

	progress := ComputeProgress(tasks, now)

	if progress.Done != 13 {
		t.Errorf("done = %d, want 13", progress.Done)
	}
	if progress.Todo != 88 {
		t.Errorf("todo = %d, want 88", progress.Todo)
	}
}

func TestComputeProgress_Empty(t *testing.T) {
	progress := ComputeProgress(nil, time.Now())
	if progress.HasTasks {
		t.Error("HasTasks = true for an empty subset")
	}
	if progress != (Progress{}) {
		t.Errorf("progress = %+v, want all zeros", progress)
	}
}

func TestComputeProgress_OverdueOverlapsStatuses(t *testing.T) {
	now := time.Date(2026, 6, 11, 12, 0, 0, 0, time.Local)

	// Both pending tasks are overdue, so overdue reads 100 while todo and
	// inprog split 50/50. Overdue is an overlay, not a fourth status.
	tasks := []Task{
		{Name: "a", Status: StatusTodo, Date: "2026-06-01"},
		{Name: "b", Status: StatusInProg, Date: "2026-06-02"},
	}

	progress := ComputeProgress(tasks, now)

	if progress.Overdue != 100 {
		t.Errorf("overdue = %d, want 100", progress.Overdue)
	}
	if progress.Todo != 50 || progress.InProg != 50 {
		t.Errorf("breakdown = %+v, want todo/inprog 50/50", progress)
	}
}
