package task

import (
	"errors"
	"testing"
	"time"
)

func TestResolvePeriod_Day(t *testing.T) {
	now := time.Date(2026, 6, 10, 14, 30, 0, 0, time.Local)

	window, err := ResolvePeriod(PeriodDay, now)
	if err != nil {
		t.Fatalf("resolve day: %v", err)
	}

	wantStart := time.Date(2026, 6, 10, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2026, 6, 10, 23, 59, 59, 999000000, time.Local)
	if !window.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", window.Start, wantStart)
	}
	if !window.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", window.End, wantEnd)
	}
	if window.Label != "Today" {
		t.Errorf("label = %q, want %q", window.Label, "Today")
	}
}

func TestResolvePeriod_Tomorrow(t *testing.T) {
	// Month boundary: tomorrow rolls into July.
	now := time.Date(2026, 6, 30, 9, 0, 0, 0, time.Local)

	window, err := ResolvePeriod(PeriodTomorrow, now)
	if err != nil {
		t.Fatalf("resolve tomorrow: %v", err)
	}

	wantStart := time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local)
	if !window.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", window.Start, wantStart)
	}
	if window.End.Day() != 1 || window.End.Month() != time.July {
		t.Errorf("end = %v, want July 1 end of day", window.End)
	}
}

func TestResolvePeriod_WeekOnWednesday(t *testing.T) {
	// 2026-06-10 is a Wednesday. The week runs Sunday Jun 7 through
	// Saturday Jun 13.
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.Local)
	if now.Weekday() != time.Wednesday {
		t.Fatalf("test date is %v, want Wednesday", now.Weekday())
	}

	window, err := ResolvePeriod(PeriodWeek, now)
	if err != nil {
		t.Fatalf("resolve week: %v", err)
	}

	wantStart := time.Date(2026, 6, 7, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2026, 6, 13, 23, 59, 59, 999000000, time.Local)
	if !window.Start.Equal(wantStart) {
		t.Errorf("start = %v, want preceding Sunday %v", window.Start, wantStart)
	}
	if !window.End.Equal(wantEnd) {
		t.Errorf("end = %v, want following Saturday %v", window.End, wantEnd)
	}
}

func TestResolvePeriod_WeekOnSunday(t *testing.T) {
	// 2026-06-07 is a Sunday; the week starts that same day.
	now := time.Date(2026, 6, 7, 8, 0, 0, 0, time.Local)

	window, err := ResolvePeriod(PeriodWeek, now)
	if err != nil {
		t.Fatalf("resolve week: %v", err)
	}

	if !window.Start.Equal(time.Date(2026, 6, 7, 0, 0, 0, 0, time.Local)) {
		t.Errorf("start = %v, want same Sunday", window.Start)
	}
}

func TestResolvePeriod_Month(t *testing.T) {
	now := time.Date(2026, 2, 15, 12, 0, 0, 0, time.Local)

	window, err := ResolvePeriod(PeriodMonth, now)
	if err != nil {
		t.Fatalf("resolve month: %v", err)
	}

	if !window.Start.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("start = %v, want Feb 1", window.Start)
	}
	// 2026 is not a leap year.
	if window.End.Day() != 28 || window.End.Month() != time.February {
		t.Errorf("end = %v, want Feb 28 end of day", window.End)
	}
	if window.Label != "February 2026" {
		t.Errorf("label = %q, want %q", window.Label, "February 2026")
	}
}

func TestResolvePeriod_TwoMonths(t *testing.T) {
	now := time.Date(2026, 12, 5, 12, 0, 0, 0, time.Local)

	window, err := ResolvePeriod(PeriodTwoMonths, now)
	if err != nil {
		t.Fatalf("resolve twomonths: %v", err)
	}

	if !window.Start.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("start = %v, want Dec 1", window.Start)
	}
	// Crosses the year boundary into January.
	if window.End.Year() != 2027 || window.End.Month() != time.January || window.End.Day() != 31 {
		t.Errorf("end = %v, want Jan 31 2027 end of day", window.End)
	}
}

func TestResolvePeriod_TwoMonthsRollsWithNow(t *testing.T) {
	first, err := ResolvePeriod(PeriodTwoMonths, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := ResolvePeriod(PeriodTwoMonths, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if first.Start.Equal(second.Start) {
		t.Error("window did not roll forward with now")
	}
}

func TestResolvePeriod_All(t *testing.T) {
	window, err := ResolvePeriod(PeriodAll, time.Now())
	if err != nil {
		t.Fatalf("resolve all: %v", err)
	}

	if !window.AllTime {
		t.Error("expected an all-time range")
	}
	if window.Label != "All time" {
		t.Errorf("label = %q, want %q", window.Label, "All time")
	}
	if !window.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("all-time range must contain every instant")
	}
}

func TestResolvePeriod_UnknownToken(t *testing.T) {
	_, err := ResolvePeriod(Period("fortnight"), time.Now())
	if !errors.Is(err, ErrUnknownPeriod) {
		t.Fatalf("expected ErrUnknownPeriod, got %v", err)
	}
}
