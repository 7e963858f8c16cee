package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// hub export
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all tasks as a JSON document",
	Long:  "Export the active and archived collections as a JSON document. Writes to stdout when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

// hub import
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all tasks from a JSON document",
	Long: `Replace the active and archived collections from a JSON document.

The document must carry a "tasks" array. A rejected document leaves the
current collections untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	doc := store.ExportDocument(time.Now())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	data = append(data, '\n')

	if len(args) == 0 {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Printf("Exported %d tasks and %d archived tasks to %s\n", len(doc.Tasks), len(doc.ArchivedTasks), args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	store, blobs, _, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	active, archived, err := store.Import(data)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d tasks and %d archived tasks\n", active, archived)
	return nil
}
