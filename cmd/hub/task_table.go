package main

import (
	"fmt"
	"time"

	"taskhub/internal/markdown"
	"taskhub/internal/ui"
	"taskhub/task"
)

// renderTaskTable renders the visible task list as an aligned table.
func renderTaskTable(tasks []task.Task, now time.Time) string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	prefixLengths := ui.UniqueIDPrefixLengths(ids)

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due, do := ui.FormatSchedule(t)
		if task.Overdue(t, now) {
			due += " " + ui.OverdueMark()
		}
		if do != "-" && task.DoOverdue(t, now) {
			do += " " + ui.OverdueMark()
		}
		rows = append(rows, []string{
			ui.HighlightID(t.ID, ui.PrefixLength(prefixLengths, t.ID)),
			ui.TruncateCell(t.Name),
			t.Category.Label(),
			ui.StatusBadge(t.Status),
			due,
			do,
		})
	}

	return ui.FormatTable([]string{"ID", "NAME", "CATEGORY", "STATUS", "DUE", "DO"}, rows)
}

// printTaskDetail prints the full record for one task.
func printTaskDetail(t task.Task, now time.Time) {
	due, do := ui.FormatSchedule(t)

	fmt.Printf("ID:       %s\n", t.ID)
	fmt.Printf("Name:     %s\n", t.Name)
	fmt.Printf("Category: %s\n", t.Category.Label())
	fmt.Printf("Status:   %s\n", ui.StatusBadge(t.Status))
	fmt.Printf("Due:      %s", due)
	if task.Overdue(t, now) {
		fmt.Printf(" %s", ui.OverdueMark())
	}
	fmt.Println()
	fmt.Printf("Do:       %s", do)
	if do != "-" && task.DoOverdue(t, now) {
		fmt.Printf(" %s", ui.OverdueMark())
	}
	fmt.Println()
	fmt.Printf("Created:  %s\n", ui.FormatTimeAgo(t.CreatedAt(), now))

	if t.Notes != "" {
		fmt.Println()
		if rendered := markdown.SafeRender(80, 2, []byte(t.Notes)); rendered != nil {
			fmt.Println(string(rendered))
		}
	}
}

// printTaskLine prints a one-line confirmation with the ID's unique prefix
// highlighted.
func printTaskLine(store *task.Store, verb string, t *task.Task) {
	tasks := store.Tasks()
	ids := make([]string, 0, len(tasks))
	for _, item := range tasks {
		ids = append(ids, item.ID)
	}
	prefixLengths := ui.UniqueIDPrefixLengths(ids)

	fmt.Printf("%s %s: %s\n", verb, ui.HighlightID(t.ID, ui.PrefixLength(prefixLengths, t.ID)), t.Name)
}

func printProgressRow(label string, percent int) {
	fmt.Printf("%-12s %s %3d%%\n", label, ui.ProgressBar(percent, 20), percent)
}
