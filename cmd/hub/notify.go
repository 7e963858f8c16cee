package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskhub/notify"
)

// hub notify
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Fire desktop notifications for due, do, and overdue tasks",
	Long: `Fire desktop notifications for tasks that are overdue, due today, or
scheduled to be worked on today. Each alert fires at most once per day.

With --watch, keeps running and re-checks every hour.`,
	Args: cobra.NoArgs,
	RunE: runNotify,
}

var notifyWatch bool

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().BoolVarP(&notifyWatch, "watch", "w", false, "Keep running and re-check hourly")
}

func runNotify(cmd *cobra.Command, args []string) error {
	fired, err := notifyOnce()
	if err != nil {
		return err
	}
	fmt.Printf("Fired %d notifications\n", fired)

	if !notifyWatch {
		return nil
	}

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		fired, err := notifyOnce()
		if err != nil {
			return err
		}
		fmt.Printf("Fired %d notifications\n", fired)
	}
	return nil
}

// notifyOnce opens the store fresh so a long-running watch sees changes made
// by other hub invocations.
func notifyOnce() (int, error) {
	store, blobs, cfg, err := openStore()
	if err != nil {
		return 0, err
	}
	defer blobs.Close()

	var notifier notify.Notifier
	if cfg.Notifications.Enabled {
		notifier = notify.Desktop{AppName: cfg.Notifications.AppName}
	} else {
		notifier = notify.Logger{}
	}

	checker := notify.NewChecker(blobs, notifier)
	return checker.Run(store.Tasks(), time.Now()), nil
}
