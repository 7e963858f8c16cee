package task

import (
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"

	// startOfDayTime is the default time for the period check. The overdue
	// and sort checks default to endOfDayTime instead; the asymmetry is
	// deliberate and matches the persisted data's semantics.
	startOfDayTime = "00:00"
	endOfDayTime   = "23:59"
)

// instantAt combines a date and time string into a local instant. When the
// time is empty the fallback (HH:MM) is used. Returns false when the date is
// empty or unparseable.
func instantAt(date, clock, fallback string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	if clock == "" {
		clock = fallback
	}
	at, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// DueAt returns the task's due instant with a missing time meaning end of
// day. Returns false when the task has no due date.
func (t Task) DueAt() (time.Time, bool) {
	return instantAt(t.Date, t.Time, endOfDayTime)
}

// DoAt returns the task's do (work-on) instant with a missing time meaning
// end of day. Returns false when the task has no do date.
func (t Task) DoAt() (time.Time, bool) {
	return instantAt(t.TargetDate, t.TargetTime, endOfDayTime)
}

// InPeriod reports whether the task falls inside the period window. Tasks
// with no due date only appear in the all-time period. For this check a
// missing due time means start of day, not end of day.
func InPeriod(t Task, p Period, now time.Time) (bool, error) {
	window, err := ResolvePeriod(p, now)
	if err != nil {
		return false, err
	}
	return inRange(t, window), nil
}

func inRange(t Task, window Range) bool {
	if window.AllTime {
		return true
	}
	due, ok := instantAt(t.Date, t.Time, startOfDayTime)
	if !ok {
		return false
	}
	return window.Contains(due)
}

// Overdue reports whether the task's due instant is strictly in the past.
// Tasks with no due date and done tasks are never overdue.
func Overdue(t Task, now time.Time) bool {
	if t.Status == StatusDone {
		return false
	}
	due, ok := t.DueAt()
	if !ok {
		return false
	}
	return due.Before(now)
}

// DoOverdue reports whether the task's do instant is strictly in the past.
// Used only for display emphasis, never for the overdue counter.
func DoOverdue(t Task, now time.Time) bool {
	if t.Status == StatusDone {
		return false
	}
	at, ok := t.DoAt()
	if !ok {
		return false
	}
	return at.Before(now)
}

// Filters narrows a task list by exact category/status match and free-text
// search. Zero values mean "no filter".
type Filters struct {
	// Category filters by exact category match when set.
	Category Category

	// Status filters by exact status match when set.
	Status Status

	// Search is a case-insensitive substring match against name or notes.
	Search string
}

// MatchesFilters reports whether the task passes every set filter. An empty
// search always matches.
func MatchesFilters(t Task, f Filters) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Search != "" {
		query := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Name), query) &&
			!strings.Contains(strings.ToLower(t.Notes), query) {
			return false
		}
	}
	return true
}
