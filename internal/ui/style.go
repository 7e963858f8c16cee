package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskhub/task"
)

var (
	todoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	inProgStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	barFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// StatusBadge renders a colored status label.
func StatusBadge(s task.Status) string {
	label := s.Label()
	switch s {
	case task.StatusTodo:
		return todoStyle.Render(label)
	case task.StatusInProg:
		return inProgStyle.Render(label)
	case task.StatusDone:
		return doneStyle.Render(label)
	default:
		return label
	}
}

// OverdueMark renders the overdue indicator appended to due columns.
func OverdueMark() string {
	return overdueStyle.Render("!")
}

// ProgressBar renders a percent value as a fixed-width bar.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}
