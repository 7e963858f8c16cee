package main

import (
	"github.com/spf13/cobra"

	"taskhub/internal/tui"
	"taskhub/notify"
)

// hub dash
var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive dashboard: stat cards, the visible task list,
and keyboard-driven filtering. Runs the hourly notification check while
open.`,
	Args: cobra.NoArgs,
	RunE: runDash,
}

func init() {
	rootCmd.AddCommand(dashCmd)
}

func runDash(cmd *cobra.Command, args []string) error {
	store, blobs, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer blobs.Close()

	var notifier notify.Notifier
	if cfg.Notifications.Enabled {
		notifier = notify.Desktop{AppName: cfg.Notifications.AppName}
	}

	return tui.Run(store, blobs, tui.Options{Notifier: notifier})
}
