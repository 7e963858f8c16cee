package task

import (
	"fmt"
	"time"
)

// StatCard identifies one of the aggregate counters on the dashboard.
type StatCard string

const (
	CardTotal    StatCard = "total"
	CardTodo     StatCard = "todo"
	CardInProg   StatCard = "inprog"
	CardDone     StatCard = "done"
	CardOverdue  StatCard = "overdue"
	CardProgress StatCard = "progress"
)

// ValidStatCards returns all stat card IDs.
func ValidStatCards() []StatCard {
	return []StatCard{CardTotal, CardTodo, CardInProg, CardDone, CardOverdue, CardProgress}
}

// IsValid returns true if the card is a known valid ID.
func (c StatCard) IsValid() bool {
	for _, valid := range ValidStatCards() {
		if c == valid {
			return true
		}
	}
	return false
}

// ParseStatCard validates a stat card string.
func ParseStatCard(value string) (StatCard, error) {
	card := StatCard(value)
	if !card.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatCard, value)
	}
	return card, nil
}

// ProgressMode is the sub-selection the composite progress card cycles
// through: done -> todo -> inprog -> overdue -> done.
type ProgressMode string

const (
	ProgressDone    ProgressMode = "done"
	ProgressTodo    ProgressMode = "todo"
	ProgressInProg  ProgressMode = "inprog"
	ProgressOverdue ProgressMode = "overdue"
)

// Next returns the successor in the progress cycle.
func (m ProgressMode) Next() ProgressMode {
	switch m {
	case ProgressDone:
		return ProgressTodo
	case ProgressTodo:
		return ProgressInProg
	case ProgressInProg:
		return ProgressOverdue
	case ProgressOverdue:
		return ProgressDone
	default:
		return ProgressDone
	}
}

// ViewState is the set of active view parameters. It is ephemeral; only the
// hidden card set and theme persist across sessions, and those live in the
// store, not here.
type ViewState struct {
	// Period is the active window token. Empty means DefaultPeriod.
	Period Period

	// Search is the free-text filter.
	Search string

	// Category is the exact-match category filter, empty for none.
	Category Category

	// Status is the exact-match status filter, empty for none.
	Status Status

	// Card is the active stat-card filter, empty for none.
	Card StatCard

	// ProgressMode is the sub-mode applied when Card is CardProgress.
	ProgressMode ProgressMode

	// Sort is the active sort mode. Empty means DefaultSortMode.
	Sort SortMode
}

func (v ViewState) period() Period {
	if v.Period == "" {
		return DefaultPeriod
	}
	return v.Period
}

func (v ViewState) sortMode() SortMode {
	if v.Sort == "" {
		return DefaultSortMode
	}
	return v.Sort
}

func (v ViewState) progressMode() ProgressMode {
	if v.ProgressMode == "" {
		return ProgressDone
	}
	return v.ProgressMode
}

// VisibleTasks composes the full pipeline: period filter, field filters,
// stat-card narrowing, then sorting. The input slice is not modified.
func VisibleTasks(all []Task, view ViewState, now time.Time) ([]Task, error) {
	window, err := ResolvePeriod(view.period(), now)
	if err != nil {
		return nil, err
	}

	filters := Filters{
		Category: view.Category,
		Status:   view.Status,
		Search:   view.Search,
	}

	narrow, err := cardPredicate(view, now)
	if err != nil {
		return nil, err
	}

	var visible []Task
	for _, t := range all {
		if !inRange(t, window) {
			continue
		}
		if !MatchesFilters(t, filters) {
			continue
		}
		if narrow != nil && !narrow(t) {
			continue
		}
		visible = append(visible, t)
	}

	SortTasks(visible, view.sortMode())
	return visible, nil
}

// PeriodTasks returns the subset of tasks inside the view's period window,
// ignoring every other filter. Stat counters are computed over this subset.
func PeriodTasks(all []Task, view ViewState, now time.Time) ([]Task, error) {
	window, err := ResolvePeriod(view.period(), now)
	if err != nil {
		return nil, err
	}

	var inPeriod []Task
	for _, t := range all {
		if inRange(t, window) {
			inPeriod = append(inPeriod, t)
		}
	}
	return inPeriod, nil
}

func cardPredicate(view ViewState, now time.Time) (func(Task) bool, error) {
	card := view.Card
	if card == CardProgress {
		card = StatCard(view.progressMode())
	}

	switch card {
	case "", CardTotal:
		return nil, nil
	case CardTodo:
		return func(t Task) bool { return t.Status == StatusTodo }, nil
	case CardInProg:
		return func(t Task) bool { return t.Status == StatusInProg }, nil
	case CardDone:
		return func(t Task) bool { return t.Status == StatusDone }, nil
	case CardOverdue:
		return func(t Task) bool { return Overdue(t, now) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatCard, view.Card)
	}
}

// EmptyKind distinguishes the two empty-list states so the presentation
// layer can choose its message.
type EmptyKind int

const (
	// EmptyNone means the visible list is not empty.
	EmptyNone EmptyKind = iota

	// EmptyNoTasks means the unfiltered collection itself is empty.
	EmptyNoTasks

	// EmptyNoMatches means tasks exist but none pass the active view.
	EmptyNoMatches
)

// EmptyState classifies the visible list against the unfiltered collection.
func EmptyState(totalTasks, visibleTasks int) EmptyKind {
	if visibleTasks > 0 {
		return EmptyNone
	}
	if totalTasks == 0 {
		return EmptyNoTasks
	}
	return EmptyNoMatches
}
