// Package main implements the hub CLI, a personal task tracker.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"taskhub/internal/config"
	"taskhub/internal/kv"
	"taskhub/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "hub",
	Short:         "Task Hub - track tasks, due dates, and progress",
	SilenceUsage:  true,
	SilenceErrors: false,
}

const storeFileName = "taskhub.db"

// openStore loads config and opens the task store. The caller must close the
// returned kv store.
func openStore() (*task.Store, *kv.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, nil, nil, err
	}

	blobs, err := kv.Open(filepath.Join(dataDir, storeFileName))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open task store: %w", err)
	}

	return task.OpenStore(blobs), blobs, cfg, nil
}
