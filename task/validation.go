package task

import (
	"errors"
	"fmt"
	"time"

	"taskhub/internal/validation"
)

var (
	// ErrEmptyName is returned when a task name is empty after trimming.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong is returned when a task name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("name exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidCategory is returned when an invalid category is provided.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date (want YYYY-MM-DD)")

	// ErrInvalidTime is returned when a time is not in HH:MM form.
	ErrInvalidTime = errors.New("invalid time (want HH:MM)")

	// ErrTimeWithoutDate is returned when a time is set without its date.
	ErrTimeWithoutDate = errors.New("time requires a date")

	// ErrTaskNotFound is returned when no task with the given ID exists.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches multiple tasks.
	ErrAmbiguousIDPrefix = errors.New("ambiguous task ID prefix")

	// ErrUnknownPeriod is returned for an unrecognized period token.
	// Failing loudly here keeps a typo'd token from silently widening the
	// view to all time.
	ErrUnknownPeriod = errors.New("unknown period")

	// ErrUnknownSortMode is returned for an unrecognized sort mode.
	ErrUnknownSortMode = errors.New("unknown sort mode")

	// ErrUnknownStatCard is returned for an unrecognized stat card ID.
	ErrUnknownStatCard = errors.New("unknown stat card")

	// ErrInvalidDocument is returned when an import document is missing
	// its tasks array or otherwise malformed.
	ErrInvalidDocument = errors.New("invalid task document")
)

// MaxNameLength is the maximum allowed length for a task name.
const MaxNameLength = 500

// ValidateName checks if the name is valid. The caller is expected to have
// trimmed surrounding whitespace already.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %d > %d", ErrNameTooLong, len(name), MaxNameLength)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string. Empty is valid (no date).
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.ParseInLocation(dateLayout, date, time.Local); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// ValidateTime checks an HH:MM time string. Empty is valid (no time).
func ValidateTime(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.ParseInLocation(timeLayout, value, time.Local); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return nil
}

// Validate checks if a task record is valid.
func Validate(t *Task) error {
	if err := ValidateName(t.Name); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidStatus, t.Status, ValidStatuses())
	}
	if !t.Category.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidCategory, t.Category, ValidCategories())
	}

	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	if err := ValidateTime(t.Time); err != nil {
		return err
	}
	if t.Time != "" && t.Date == "" {
		return fmt.Errorf("%w: due time %q", ErrTimeWithoutDate, t.Time)
	}

	if err := ValidateDate(t.TargetDate); err != nil {
		return err
	}
	if err := ValidateTime(t.TargetTime); err != nil {
		return err
	}
	if t.TargetTime != "" && t.TargetDate == "" {
		return fmt.Errorf("%w: do time %q", ErrTimeWithoutDate, t.TargetTime)
	}

	return nil
}
