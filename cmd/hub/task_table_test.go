package main

import (
	"strings"
	"testing"
	"time"

	"taskhub/task"
)

func TestRenderTaskTable(t *testing.T) {
	now := time.Date(2026, 6, 11, 12, 0, 0, 0, time.Local)
	tasks := []task.Task{
		{ID: "abc12345", Name: "Grade quizzes", Category: task.CategoryQuiz, Status: task.StatusTodo, Date: "2026-06-20", Time: "09:00"},
		{ID: "xyz67890", Name: "Plan lecture", Category: task.CategoryStudy, Status: task.StatusDone, Date: "2026-06-01"},
	}

	out := renderTaskTable(tasks, now)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "ID") || !strings.Contains(lines[0], "DUE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(out, "Grade quizzes") || !strings.Contains(out, "Jun 20, 9:00 AM") {
		t.Errorf("missing task row:\n%s", out)
	}
	if !strings.Contains(out, "Plan lecture") {
		t.Errorf("missing task row:\n%s", out)
	}
}

func TestRenderTaskTable_MarksOverdueDoDates(t *testing.T) {
	now := time.Date(2026, 6, 11, 12, 0, 0, 0, time.Local)
	tasks := []task.Task{
		{ID: "abc12345", Name: "Slipped plan", Category: task.CategoryStudy, Status: task.StatusTodo, TargetDate: "2026-06-01"},
		{ID: "xyz67890", Name: "Finished plan", Category: task.CategoryStudy, Status: task.StatusDone, TargetDate: "2026-06-01"},
	}

	out := renderTaskTable(tasks, now)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if !strings.Contains(lines[1], "Jun 1 !") {
		t.Errorf("past do date not marked: %q", lines[1])
	}
	if strings.Contains(lines[2], "!") {
		t.Errorf("done task must not carry the overdue mark: %q", lines[2])
	}
}

func TestRenderTaskTable_TruncatesLongNames(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{
		{ID: "abc12345", Name: strings.Repeat("long ", 30), Category: task.CategoryOther, Status: task.StatusTodo},
	}

	out := renderTaskTable(tasks, now)
	if !strings.Contains(out, "...") {
		t.Errorf("long name not truncated:\n%s", out)
	}
}
