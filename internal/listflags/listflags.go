// Package listflags wires the shared view-parameter flags onto list-style
// commands and converts them into a view state.
package listflags

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskhub/internal/validation"
	"taskhub/task"
)

// Values holds the raw flag strings before validation.
type Values struct {
	Period   string
	Category string
	Status   string
	Search   string
	Sort     string
	Card     string
}

// Add registers the shared view flags. Defaults come from config, so they
// are passed in rather than hard-coded here.
func Add(cmd *cobra.Command, values *Values, defaultPeriod, defaultSort string) {
	flags := cmd.Flags()
	flags.StringVarP(&values.Period, "period", "p", defaultPeriod, "Period window (day, tomorrow, week, month, twomonths, all)")
	flags.StringVarP(&values.Category, "category", "c", "", "Filter by category")
	flags.StringVarP(&values.Status, "status", "s", "", "Filter by status (todo, inprog, done)")
	flags.StringVar(&values.Search, "search", "", "Filter by name or notes substring")
	flags.StringVar(&values.Sort, "sort", defaultSort, "Sort mode (due, do)")
	flags.StringVar(&values.Card, "card", "", "Narrow to a stat card (total, todo, inprog, done, overdue, progress)")
}

// ViewState validates the raw flags and builds the view state.
func (v Values) ViewState() (task.ViewState, error) {
	view := task.ViewState{Search: v.Search}

	if v.Period != "" {
		period := task.Period(v.Period)
		if !period.IsValid() {
			return task.ViewState{}, fmt.Errorf("unknown period %q (valid: %s)", v.Period, validation.FormatValidValues(task.ValidPeriods()))
		}
		view.Period = period
	}

	if v.Category != "" {
		category := task.Category(v.Category)
		if !category.IsValid() {
			return task.ViewState{}, fmt.Errorf("unknown category %q (valid: %s)", v.Category, validation.FormatValidValues(task.ValidCategories()))
		}
		view.Category = category
	}

	if v.Status != "" {
		status := task.Status(v.Status)
		if !status.IsValid() {
			return task.ViewState{}, fmt.Errorf("unknown status %q (valid: %s)", v.Status, validation.FormatValidValues(task.ValidStatuses()))
		}
		view.Status = status
	}

	if v.Sort != "" {
		mode, err := task.ParseSortMode(v.Sort)
		if err != nil {
			return task.ViewState{}, err
		}
		view.Sort = mode
	}

	if v.Card != "" {
		card, err := task.ParseStatCard(v.Card)
		if err != nil {
			return task.ViewState{}, err
		}
		view.Card = card
	}

	return view, nil
}
