package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskhub/internal/ui"
	"taskhub/task"
)

type palette struct {
	title    lipgloss.Style
	card     lipgloss.Style
	active   lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	overdue  lipgloss.Style
}

func themePalette(theme string) palette {
	dim := "240"
	if theme == task.ThemeLight {
		dim = "245"
	}

	border := lipgloss.RoundedBorder()
	return palette{
		title:    lipgloss.NewStyle().Bold(true),
		card:     lipgloss.NewStyle().Border(border).Padding(0, 1),
		active:   lipgloss.NewStyle().Border(border).Padding(0, 1).BorderForeground(lipgloss.Color("12")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
		overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	styles := themePalette(m.theme)
	now := m.now()

	var b strings.Builder
	window, err := task.ResolvePeriod(m.activePeriod(), now)
	label := string(m.activePeriod())
	if err == nil {
		label = window.Label
	}
	b.WriteString(styles.title.Render("Task Hub") + "  " + styles.dim.Render(label))
	b.WriteString("\n\n")

	b.WriteString(m.renderCards(styles))
	b.WriteString("\n\n")

	b.WriteString(m.renderTasks(styles, now))
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("Add task: " + m.input.View() + "\n")
	case modeSearch:
		b.WriteString("Search: " + m.input.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(styles.dim.Render(helpLine))
	return b.String()
}

const helpLine = "j/k move · h/l cards · enter filter · H hide · R restore cards · space status · a add · d archive · / search · p period · s sort · t theme · n notify · q quit"

func (m Model) renderCards(styles palette) string {
	cards := m.shownCards()
	rendered := make([]string, 0, len(cards))

	for i, card := range cards {
		body := fmt.Sprintf("%s\n%d", cardLabel(card), m.cardValue(card))
		if card == task.CardProgress {
			body = fmt.Sprintf("%s\n%s", cardLabel(card), string(m.activeProgressMode()))
		}

		style := styles.card
		if i == m.card {
			style = styles.active
		}
		rendered = append(rendered, style.Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func cardLabel(card task.StatCard) string {
	switch card {
	case task.CardTotal:
		return "Total"
	case task.CardTodo:
		return "To Do"
	case task.CardInProg:
		return "In Progress"
	case task.CardDone:
		return "Done"
	case task.CardOverdue:
		return "Overdue"
	case task.CardProgress:
		return "Progress"
	default:
		return string(card)
	}
}

func (m Model) cardValue(card task.StatCard) int {
	switch card {
	case task.CardTotal:
		return m.stats.Total
	case task.CardTodo:
		return m.stats.Todo
	case task.CardInProg:
		return m.stats.InProg
	case task.CardDone:
		return m.stats.Done
	case task.CardOverdue:
		return m.stats.Overdue
	default:
		return 0
	}
}

func (m Model) renderTasks(styles palette, now time.Time) string {
	if len(m.visible) == 0 {
		if task.EmptyState(len(m.store.Tasks()), 0) == task.EmptyNoTasks {
			return styles.dim.Render("No tasks yet. Press 'a' to add one.")
		}
		return styles.dim.Render("No tasks match the current view.")
	}

	var b strings.Builder
	for i, t := range m.visible {
		cursor := "  "
		if i == m.cursor && m.mode == modeList {
			cursor = "> "
		}

		due, do := ui.FormatSchedule(t)
		line := fmt.Sprintf("%s[%s] %s", cursor, statusMark(t.Status), t.Name)

		meta := make([]string, 0, 3)
		meta = append(meta, t.Category.Label())
		if due != "-" {
			dueCell := "due " + due
			if task.Overdue(t, now) {
				dueCell = styles.overdue.Render(dueCell + " !")
			}
			meta = append(meta, dueCell)
		}
		if do != "-" {
			doCell := "do " + do
			if task.DoOverdue(t, now) {
				doCell = styles.overdue.Render(doCell + " !")
			}
			meta = append(meta, doCell)
		}
		line += styles.dim.Render("  · " + strings.Join(meta, " · "))

		if i == m.cursor && m.mode == modeList {
			line = styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func statusMark(s task.Status) string {
	switch s {
	case task.StatusTodo:
		return " "
	case task.StatusInProg:
		return "~"
	case task.StatusDone:
		return "x"
	default:
		return "?"
	}
}
