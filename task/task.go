// Package task implements the tracker's core engine: the task record
// lifecycle, period windows, filter predicates, sorting, and derived
// statistics.
//
// Everything here is pure data-in data-out; rendering and key handling live
// in the consumers. The public API mirrors the CLI commands:
//   - Create, Update, SetStatus, CycleStatus for the task lifecycle
//   - Archive, Restore, Purge for the archive
//   - VisibleTasks, ComputeStats, ComputeProgress for querying
//   - ExportDocument, Import for file transfer
package task

import "time"

// Task represents a single tracked task.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from the
	// initial name + creation timestamp). Immutable after creation.
	ID string `json:"id"`

	// Name is the display name. Never empty.
	Name string `json:"name"`

	// Category tags the task for display grouping.
	Category Category `json:"category"`

	// Date is the optional due date in YYYY-MM-DD form.
	Date string `json:"date,omitempty"`

	// Time is the optional due time in HH:MM form. Absent means end of
	// day for overdue and sort comparisons.
	Time string `json:"time,omitempty"`

	// TargetDate is the optional date work is intended to start.
	TargetDate string `json:"targetDate,omitempty"`

	// TargetTime is the optional time work is intended to start.
	TargetTime string `json:"targetTime,omitempty"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// Notes is optional free text, searchable.
	Notes string `json:"notes,omitempty"`

	// Created is the creation instant in Unix milliseconds. It is the
	// stable fallback sort key for completed tasks.
	Created int64 `json:"created"`
}

// CreatedAt returns the creation instant as a time.Time.
func (t Task) CreatedAt() time.Time {
	return time.UnixMilli(t.Created)
}
