// Package tui implements the interactive dashboard: stat cards, the visible
// task list, and keyboard-driven view changes.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskhub/notify"
	"taskhub/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeSearch
	modeConfirmArchive
)

// notifyTick re-runs the notification check once an hour while the dashboard
// is open.
type notifyTick time.Time

// Options configures the dashboard.
type Options struct {
	// Notifier handles alerts fired by the hourly check. Nil disables the
	// check.
	Notifier notify.Notifier

	// Now returns the current moment; tests substitute a fixed clock.
	Now func() time.Time
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	store   *task.Store
	checker *notify.Checker
	now     func() time.Time

	view    task.ViewState
	hidden  map[task.StatCard]bool
	theme   string
	visible []task.Task
	stats   task.Stats

	cursor   int
	card     int
	mode     mode
	input    textinput.Model
	status   string
	pending  *task.Task
	quitting bool
}

// New builds the dashboard model over an open store.
func New(store *task.Store, kv task.KV, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	input := textinput.New()
	input.CharLimit = 256
	input.Width = 40

	m := Model{
		store:  store,
		now:    now,
		view:   task.ViewState{},
		hidden: store.HiddenCards(),
		theme:  store.Theme(),
		input:  input,
		status: "j/k move · space cycle status · a add · / search · p period",
	}
	if opts.Notifier != nil {
		m.checker = notify.NewChecker(kv, opts.Notifier)
	}
	m.reload()
	return m
}

// Run opens the dashboard and blocks until the user quits.
func Run(store *task.Store, kv task.KV, opts Options) error {
	program := tea.NewProgram(New(store, kv, opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if m.checker == nil {
		return nil
	}
	return tea.Batch(m.runNotifyCheck, scheduleNotifyTick())
}

func scheduleNotifyTick() tea.Cmd {
	return tea.Tick(time.Hour, func(at time.Time) tea.Msg {
		return notifyTick(at)
	})
}

func (m Model) runNotifyCheck() tea.Msg {
	m.checker.Run(m.store.Tasks(), m.now())
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case notifyTick:
		if m.checker == nil {
			return m, nil
		}
		return m, tea.Batch(m.runNotifyCheck, scheduleNotifyTick())
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.mode {
	case modeAdd:
		return m.updateAddMode(key, msg)
	case modeSearch:
		return m.updateSearchMode(key, msg)
	case modeConfirmArchive:
		return m.updateConfirmArchive(key)
	}
	return m.updateListMode(key)
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		created, err := m.store.Create(name, task.CreateOptions{})
		if err != nil {
			m.status = fmt.Sprintf("add failed: %v", err)
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.reload()
		m.status = fmt.Sprintf("Added %s", created.Name)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateSearchMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.mode = modeList
		m.view.Search = ""
		m.input.SetValue("")
		m.input.Blur()
		m.reload()
		m.status = "Search cleared"
		return m, nil
	case "enter":
		m.mode = modeList
		m.input.Blur()
		m.status = "Filtering by search"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.view.Search = m.input.Value()
		m.reload()
		return m, cmd
	}
}

func (m Model) updateConfirmArchive(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		if m.pending != nil {
			if _, err := m.store.Archive(m.pending.ID); err != nil {
				m.status = fmt.Sprintf("archive failed: %v", err)
			} else {
				m.status = fmt.Sprintf("Archived %s", m.pending.Name)
			}
			m.reload()
		}
	default:
		m.status = "Archive cancelled"
	}
	m.mode = modeList
	m.pending = nil
	return m, nil
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "left", "h":
		m.card = m.prevCardIndex()
	case "right", "l":
		m.card = m.nextCardIndex()

	case "enter":
		m.toggleCard()
		m.reload()

	case "H":
		m.hideCard()

	case "R":
		m.restoreCards()

	case "p":
		m.view.Period = nextPeriod(m.activePeriod())
		m.view.Card = ""
		m.reload()
		m.status = "Period: " + string(m.activePeriod())

	case "s":
		m.view.Sort = nextSortMode(m.activeSort())
		m.reload()
		m.status = "Sort: " + string(m.activeSort())

	case "t":
		m.theme = nextTheme(m.theme)
		m.store.SetTheme(m.theme)
		m.status = "Theme: " + m.theme

	case " ":
		if len(m.visible) == 0 {
			return m, nil
		}
		selected := m.visible[m.cursor]
		updated, err := m.store.CycleStatus(selected.ID)
		if err != nil {
			m.status = fmt.Sprintf("status change failed: %v", err)
			return m, nil
		}
		m.reload()
		m.status = fmt.Sprintf("%s: %s", updated.Name, updated.Status.Label())

	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "Task name"
		m.input.Focus()
		m.status = "Add mode: type a name and press Enter"
		return m, textinput.Blink

	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "Search name or notes"
		m.input.SetValue(m.view.Search)
		m.input.Focus()
		return m, textinput.Blink

	case "d":
		if len(m.visible) == 0 {
			return m, nil
		}
		selected := m.visible[m.cursor]
		m.pending = &selected
		m.mode = modeConfirmArchive
		m.status = fmt.Sprintf("Archive %q? y/n", selected.Name)

	case "n":
		if m.checker == nil {
			m.status = "Notifications disabled"
			return m, nil
		}
		fired := m.checker.Run(m.store.Tasks(), m.now())
		m.status = fmt.Sprintf("Fired %d notifications", fired)
	}
	return m, nil
}

// reload recomputes the visible list and counters from the store.
func (m *Model) reload() {
	now := m.now()
	all := m.store.Tasks()

	visible, err := task.VisibleTasks(all, m.view, now)
	if err != nil {
		m.status = fmt.Sprintf("view error: %v", err)
		return
	}
	m.visible = visible

	inPeriod, err := task.PeriodTasks(all, m.view, now)
	if err != nil {
		m.status = fmt.Sprintf("view error: %v", err)
		return
	}
	m.stats = task.ComputeStats(inPeriod, now)

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// shownCards returns the stat cards still visible after hiding.
func (m Model) shownCards() []task.StatCard {
	cards := make([]task.StatCard, 0, len(task.ValidStatCards()))
	for _, card := range task.ValidStatCards() {
		if !m.hidden[card] {
			cards = append(cards, card)
		}
	}
	return cards
}

func (m Model) nextCardIndex() int {
	cards := m.shownCards()
	if len(cards) == 0 {
		return 0
	}
	return (m.card + 1) % len(cards)
}

func (m Model) prevCardIndex() int {
	cards := m.shownCards()
	if len(cards) == 0 {
		return 0
	}
	return (m.card + len(cards) - 1) % len(cards)
}

// toggleCard narrows the list to the selected card, clears the narrowing
// when re-selected, and cycles the progress sub-mode on repeat selection.
func (m *Model) toggleCard() {
	cards := m.shownCards()
	if m.card >= len(cards) {
		return
	}
	selected := cards[m.card]

	if m.view.Card == selected {
		if selected == task.CardProgress {
			m.view.ProgressMode = m.activeProgressMode().Next()
			m.status = "Progress: " + string(m.activeProgressMode())
			return
		}
		m.view.Card = ""
		m.status = "Filter cleared"
		return
	}

	m.view.Card = selected
	if selected == task.CardProgress {
		m.view.ProgressMode = task.ProgressDone
	}
	m.status = "Filter: " + string(selected)
}

func (m *Model) hideCard() {
	cards := m.shownCards()
	if len(cards) <= 1 || m.card >= len(cards) {
		return
	}
	selected := cards[m.card]

	m.hidden[selected] = true
	m.store.SetHiddenCards(m.hidden)
	if m.view.Card == selected {
		m.view.Card = ""
		m.reload()
	}
	if m.card >= len(m.shownCards()) {
		m.card = 0
	}
	m.status = "Hid card: " + string(selected)
}

func (m *Model) restoreCards() {
	if len(m.hidden) == 0 {
		return
	}
	m.hidden = map[task.StatCard]bool{}
	m.store.SetHiddenCards(m.hidden)
	m.status = "Restored all cards"
}

func (m Model) activePeriod() task.Period {
	if m.view.Period == "" {
		return task.DefaultPeriod
	}
	return m.view.Period
}

func (m Model) activeSort() task.SortMode {
	if m.view.Sort == "" {
		return task.DefaultSortMode
	}
	return m.view.Sort
}

func (m Model) activeProgressMode() task.ProgressMode {
	if m.view.ProgressMode == "" {
		return task.ProgressDone
	}
	return m.view.ProgressMode
}

func nextPeriod(p task.Period) task.Period {
	periods := task.ValidPeriods()
	for i, candidate := range periods {
		if candidate == p {
			return periods[(i+1)%len(periods)]
		}
	}
	return task.DefaultPeriod
}

func nextSortMode(mode task.SortMode) task.SortMode {
	if mode == task.SortDue {
		return task.SortDo
	}
	return task.SortDue
}

func nextTheme(theme string) string {
	if theme == task.ThemeDark {
		return task.ThemeLight
	}
	return task.ThemeDark
}
