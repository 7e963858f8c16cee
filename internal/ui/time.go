package ui

import (
	"fmt"
	"time"

	"taskhub/task"
)

// FormatClock renders an HH:MM value as a 12-hour clock string like
// "2:30 PM". Invalid input passes through unchanged.
func FormatClock(clock string) string {
	at, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return at.Format("3:04 PM")
}

// FormatDate renders a YYYY-MM-DD value like "Jun 20". Invalid input passes
// through unchanged.
func FormatDate(date string) string {
	at, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return at.Format("Jan 2")
}

// FormatDue combines a date and optional time into a display string.
func FormatDue(date, clock string) string {
	if date == "" {
		return "-"
	}
	if clock == "" {
		return FormatDate(date)
	}
	return FormatDate(date) + ", " + FormatClock(clock)
}

// FormatSchedule renders the due and do columns for a task. When the do date
// matches the due date the do column collapses to just the time (or "same
// day"), since repeating the date adds nothing.
func FormatSchedule(t task.Task) (due, do string) {
	due = FormatDue(t.Date, t.Time)

	switch {
	case t.TargetDate == "":
		do = "-"
	case t.TargetDate == t.Date && t.TargetTime != "":
		do = FormatClock(t.TargetTime)
	case t.TargetDate == t.Date:
		do = "same day"
	default:
		do = FormatDue(t.TargetDate, t.TargetTime)
	}
	return due, do
}

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() || then.After(now) {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	seconds := int64(duration.Truncate(time.Second).Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	return fmt.Sprintf("%dd", hours/24)
}
