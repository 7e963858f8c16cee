package task

import (
	"fmt"
	"time"
)

// Period is a named, recomputed-on-each-evaluation date window used to scope
// which tasks are in view.
type Period string

const (
	// PeriodDay covers today.
	PeriodDay Period = "day"

	// PeriodTomorrow covers the calendar day after today.
	PeriodTomorrow Period = "tomorrow"

	// PeriodWeek covers the Sunday-to-Saturday week containing today.
	PeriodWeek Period = "week"

	// PeriodMonth covers the current calendar month.
	PeriodMonth Period = "month"

	// PeriodTwoMonths covers the first day of the current month through
	// the last day of the next month. The window rolls with "now"; it is
	// never a fixed range.
	PeriodTwoMonths Period = "twomonths"

	// PeriodAll is unbounded.
	PeriodAll Period = "all"
)

// DefaultPeriod is the window shown when no period has been chosen.
const DefaultPeriod = PeriodTwoMonths

// ValidPeriods returns all valid period tokens.
func ValidPeriods() []Period {
	return []Period{PeriodDay, PeriodTomorrow, PeriodWeek, PeriodMonth, PeriodTwoMonths, PeriodAll}
}

// IsValid returns true if the period is a known valid token.
func (p Period) IsValid() bool {
	for _, valid := range ValidPeriods() {
		if p == valid {
			return true
		}
	}
	return false
}

// Range is an inclusive instant window with a display label. AllTime ranges
// have zero Start/End and match every task.
type Range struct {
	Start   time.Time
	End     time.Time
	Label   string
	AllTime bool
}

// Contains reports whether the instant falls inside the range.
func (r Range) Contains(at time.Time) bool {
	if r.AllTime {
		return true
	}
	return !at.Before(r.Start) && !at.After(r.End)
}

// ResolvePeriod computes the inclusive window for the token at the given
// moment. Day bounds are 00:00:00.000 through 23:59:59.999 local time. An
// unrecognized token is an error, not a silent fall-through to all time.
func ResolvePeriod(p Period, now time.Time) (Range, error) {
	today := startOfDay(now)

	switch p {
	case PeriodDay:
		return Range{
			Start: today,
			End:   endOfDay(today),
			Label: "Today",
		}, nil

	case PeriodTomorrow:
		tomorrow := today.AddDate(0, 0, 1)
		return Range{
			Start: tomorrow,
			End:   endOfDay(tomorrow),
			Label: tomorrow.Format("Monday, Jan 2"),
		}, nil

	case PeriodWeek:
		// Week starts on Sunday.
		sunday := today.AddDate(0, 0, -int(today.Weekday()))
		saturday := sunday.AddDate(0, 0, 6)
		return Range{
			Start: sunday,
			End:   endOfDay(saturday),
			Label: formatShort(sunday) + " – " + formatShort(saturday),
		}, nil

	case PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		last := first.AddDate(0, 1, -1)
		return Range{
			Start: first,
			End:   endOfDay(last),
			Label: now.Format("January 2006"),
		}, nil

	case PeriodTwoMonths:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		last := first.AddDate(0, 2, -1)
		return Range{
			Start: first,
			End:   endOfDay(last),
			Label: first.Format("January") + " – " + last.Format("January 2006"),
		}, nil

	case PeriodAll:
		return Range{AllTime: true, Label: "All time"}, nil

	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
	}
}

func startOfDay(at time.Time) time.Time {
	return time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.Local)
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)
}

func formatShort(at time.Time) string {
	return at.Format("Jan 2")
}
