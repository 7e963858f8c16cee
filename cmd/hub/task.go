package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"taskhub/internal/editor"
	"taskhub/task"
)

func runAdd(cmd *cobra.Command, args []string) error {
	// --edit forces the editor, --no-edit skips it; otherwise open it when
	// interactive and no name was given on the command line.
	useEditor := addEdit || (!addNoEdit && len(args) == 0 && editor.IsInteractive())

	if useEditor {
		data := editor.DefaultCreateData()
		if len(args) > 0 {
			data.Name = args[0]
		}
		if cmd.Flags().Changed("category") {
			data.Category = addCategory
		}
		data.Date = addDate
		data.Time = addTime
		data.DoDate = addDoDate
		data.DoTime = addDoTime
		data.Notes = addNotes

		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}

		store, blobs, _, err := openStore()
		if err != nil {
			return err
		}
		defer blobs.Close()

		created, err := store.Create(parsed.Name, parsed.ToCreateOptions())
		if err != nil {
			return err
		}
		printTaskLine(store, "Added", created)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("name is required (use --edit to open the editor)")
	}

	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	created, err := store.Create(args[0], task.CreateOptions{
		Category:   task.Category(addCategory),
		Date:       addDate,
		Time:       addTime,
		TargetDate: addDoDate,
		TargetTime: addDoTime,
		Notes:      addNotes,
	})
	if err != nil {
		return err
	}
	printTaskLine(store, "Added", created)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	flagged := hasChangedFlags(cmd, "name", "category", "date", "time", "do-date", "do-time", "notes", "status")

	useEditor := updateEdit || (!updateNoEdit && !flagged && editor.IsInteractive())

	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	for _, id := range args {
		var opts task.UpdateOptions

		if useEditor {
			existing, err := store.Get(id)
			if err != nil {
				return err
			}
			parsed, err := editor.EditTask(existing)
			if err != nil {
				return err
			}
			opts = parsed.ToUpdateOptions()
		} else {
			opts = updateOptionsFromFlags(cmd)
		}

		updated, err := store.Update(id, opts)
		if err != nil {
			return err
		}
		printTaskLine(store, "Updated", updated)
	}
	return nil
}

func updateOptionsFromFlags(cmd *cobra.Command) task.UpdateOptions {
	var opts task.UpdateOptions
	if cmd.Flags().Changed("name") {
		opts.Name = &updateName
	}
	if cmd.Flags().Changed("category") {
		category := task.Category(updateCategory)
		opts.Category = &category
	}
	if cmd.Flags().Changed("date") {
		opts.Date = &updateDate
	}
	if cmd.Flags().Changed("time") {
		opts.Time = &updateTime
	}
	if cmd.Flags().Changed("do-date") {
		opts.TargetDate = &updateDoDate
	}
	if cmd.Flags().Changed("do-time") {
		opts.TargetTime = &updateDoTime
	}
	if cmd.Flags().Changed("notes") {
		opts.Notes = &updateNotes
	}
	if cmd.Flags().Changed("status") {
		status := task.Status(updateStatus)
		opts.Status = &status
	}
	return opts
}

func runShow(cmd *cobra.Command, args []string) error {
	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	tasks := make([]task.Task, 0, len(args))
	for _, id := range args {
		t, err := store.Get(id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		tasks = append(tasks, *t)
	}

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	now := time.Now()
	for i, t := range tasks {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(t, now)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, blobs, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	values := listValues
	if values.Period == "" {
		values.Period = cfg.View.Period
	}
	if values.Sort == "" {
		values.Sort = cfg.View.Sort
	}

	view, err := values.ViewState()
	if err != nil {
		return err
	}

	all := store.Tasks()
	now := time.Now()
	visible, err := task.VisibleTasks(all, view, now)
	if err != nil {
		return err
	}

	if listJSON {
		if visible == nil {
			visible = []task.Task{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(visible)
	}

	switch task.EmptyState(len(all), len(visible)) {
	case task.EmptyNoTasks:
		fmt.Println("No tasks yet. Add one with 'hub add'.")
		return nil
	case task.EmptyNoMatches:
		fmt.Println("No tasks match the current view.")
		return nil
	}

	fmt.Print(renderTaskTable(visible, now))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	store, blobs, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	view, now, err := periodView(statsPeriod, cfg.View.Period)
	if err != nil {
		return err
	}

	inPeriod, err := task.PeriodTasks(store.Tasks(), view, now)
	if err != nil {
		return err
	}

	window, err := task.ResolvePeriod(view.Period, now)
	if err != nil {
		return err
	}
	stats := task.ComputeStats(inPeriod, now)

	fmt.Printf("%s\n\n", window.Label)
	fmt.Printf("Total:       %d\n", stats.Total)
	fmt.Printf("To Do:       %d\n", stats.Todo)
	fmt.Printf("In Progress: %d\n", stats.InProg)
	fmt.Printf("Done:        %d\n", stats.Done)
	fmt.Printf("Overdue:     %d\n", stats.Overdue)
	return nil
}

func runProgress(cmd *cobra.Command, args []string) error {
	store, blobs, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	view, now, err := periodView(progressPeriod, cfg.View.Period)
	if err != nil {
		return err
	}

	inPeriod, err := task.PeriodTasks(store.Tasks(), view, now)
	if err != nil {
		return err
	}

	progress := task.ComputeProgress(inPeriod, now)
	if !progress.HasTasks {
		fmt.Println("No tasks in this period.")
		return nil
	}

	printProgressRow("Done", progress.Done)
	printProgressRow("To Do", progress.Todo)
	printProgressRow("In Progress", progress.InProg)
	printProgressRow("Overdue", progress.Overdue)
	return nil
}

func periodView(flagValue, configValue string) (task.ViewState, time.Time, error) {
	token := flagValue
	if token == "" {
		token = configValue
	}
	period := task.Period(token)
	if !period.IsValid() {
		return task.ViewState{}, time.Time{}, fmt.Errorf("unknown period %q", token)
	}
	return task.ViewState{Period: period}, time.Now(), nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	updated, err := store.SetStatus(args[0], task.Status(args[1]))
	if err != nil {
		return err
	}
	printTaskLine(store, "Marked "+updated.Status.Label(), updated)
	return nil
}

func runCycle(cmd *cobra.Command, args []string) error {
	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	for _, id := range args {
		updated, err := store.CycleStatus(id)
		if err != nil {
			return err
		}
		printTaskLine(store, "Marked "+updated.Status.Label(), updated)
	}
	return nil
}
