package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"taskhub/task"
)

// hub archive
var archiveCmd = &cobra.Command{
	Use:   "archive <id>...",
	Short: "Move tasks to the archive",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArchive,
}

// hub archive list
var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived tasks",
	Args:  cobra.NoArgs,
	RunE:  runArchiveList,
}

var archiveListJSON bool

// hub restore
var restoreCmd = &cobra.Command{
	Use:   "restore <id>...",
	Short: "Move archived tasks back to the active collection",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRestore,
}

// hub purge
var purgeCmd = &cobra.Command{
	Use:   "purge <id>...",
	Short: "Permanently delete archived tasks",
	Long:  "Permanently delete archived tasks. Only archived tasks can be purged; archive a task first.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPurge,
}

func init() {
	rootCmd.AddCommand(archiveCmd, restoreCmd, purgeCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveListCmd.Flags().BoolVar(&archiveListJSON, "json", false, "Output JSON")
}

func runArchive(cmd *cobra.Command, args []string) error {
	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	for _, id := range args {
		archived, err := store.Archive(id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		fmt.Printf("Archived %s: %s\n", archived.ID, archived.Name)
	}
	return nil
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	archived := store.Archived()
	if archiveListJSON {
		if archived == nil {
			archived = []task.Task{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(archived)
	}

	if len(archived) == 0 {
		fmt.Println("No archived tasks.")
		return nil
	}

	fmt.Print(renderTaskTable(archived, time.Now()))
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	for _, id := range args {
		restored, err := store.Restore(id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		printTaskLine(store, "Restored", restored)
	}
	return nil
}

func runPurge(cmd *cobra.Command, args []string) error {
	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	for _, id := range args {
		purged, err := store.Purge(id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		fmt.Printf("Purged %s: %s\n", purged.ID, purged.Name)
	}
	return nil
}
