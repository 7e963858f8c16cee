package main

import (
	"github.com/spf13/cobra"

	"taskhub/internal/listflags"
	"taskhub/task"
)

// hub add
var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new task",
	Long: `Add a new task.

By default, opens $EDITOR to edit a TOML representation of the task
when running interactively and no name is given. Use --no-edit to skip
the editor, or --edit to force opening the editor even when not
interactive.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addCategory string
	addDate     string
	addTime     string
	addDoDate   string
	addDoTime   string
	addNotes    string
	addEdit     bool
	addNoEdit   bool
)

// hub update
var updateCmd = &cobra.Command{
	Use:   "update <id>...",
	Short: "Update one or more tasks",
	Long: `Update one or more tasks.

By default, opens $EDITOR to edit a TOML representation of the task
when running interactively and no update flags are provided (one editor
session per ID). Use --no-edit to skip the editor, or --edit to force
opening the editor even when not interactive.`,
	Aliases: []string{"edit"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runUpdate,
}

var (
	updateName     string
	updateCategory string
	updateDate     string
	updateTime     string
	updateDoDate   string
	updateDoTime   string
	updateNotes    string
	updateStatus   string
	updateEdit     bool
	updateNoEdit   bool
)

// hub show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// hub list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in the active view",
	RunE:  runList,
}

var (
	listValues listflags.Values
	listJSON   bool
)

// hub stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counters for a period",
	RunE:  runStats,
}

var statsPeriod string

// hub progress
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the percentage breakdown for a period",
	RunE:  runProgress,
}

var progressPeriod string

// hub status
var statusCmd = &cobra.Command{
	Use:   "status <id> <todo|inprog|done>",
	Short: "Set a task's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

// hub cycle
var cycleCmd = &cobra.Command{
	Use:   "cycle <id>...",
	Short: "Advance tasks one step around the status cycle",
	Long:  "Advance tasks one step around the status cycle: todo -> inprog -> done -> todo.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCycle,
}

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, showCmd, listCmd, statsCmd, progressCmd, statusCmd, cycleCmd)

	addCmd.Flags().StringVarP(&addCategory, "category", "c", string(task.CategoryOther), "Category (quiz, project, assignment, exam, study, review, output, online, facetoface, learning, other)")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addTime, "time", "t", "", "Due time (HH:MM)")
	addCmd.Flags().StringVar(&addDoDate, "do-date", "", "Work-on date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addDoTime, "do-time", "", "Work-on time (HH:MM)")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Notes")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no name given)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Never open $EDITOR")

	updateCmd.Flags().StringVar(&updateName, "name", "", "New name")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category")
	updateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "New due date (YYYY-MM-DD, empty string clears)")
	updateCmd.Flags().StringVarP(&updateTime, "time", "t", "", "New due time (HH:MM, empty string clears)")
	updateCmd.Flags().StringVar(&updateDoDate, "do-date", "", "New work-on date")
	updateCmd.Flags().StringVar(&updateDoTime, "do-time", "", "New work-on time")
	updateCmd.Flags().StringVarP(&updateNotes, "notes", "n", "", "New notes")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "New status (todo, inprog, done)")
	updateCmd.Flags().BoolVarP(&updateEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no update flags)")
	updateCmd.Flags().BoolVar(&updateNoEdit, "no-edit", false, "Never open $EDITOR")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output JSON")

	// Empty period/sort defaults here; the config file fills them at run
	// time.
	listflags.Add(listCmd, &listValues, "", "")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output JSON")

	statsCmd.Flags().StringVarP(&statsPeriod, "period", "p", "", "Period window (day, tomorrow, week, month, twomonths, all)")
	progressCmd.Flags().StringVarP(&progressPeriod, "period", "p", "", "Period window (day, tomorrow, week, month, twomonths, all)")

	addScheduleFlagAliases(addCmd, updateCmd)
}
