// Package notify computes which task alerts should fire and dispatches them
// through a Notifier, deduplicating per day through a small ledger kept in
// the key-value store.
package notify

import (
	"encoding/json"
	"log"
	"time"

	"taskhub/task"
)

// ledgerKey is the kv blob holding the per-day dedup ledger.
const ledgerKey = "notify-ledger"

// Alert is one pending user-facing notification.
type Alert struct {
	TaskID string
	Tag    string
	Title  string
	Body   string
}

// Notifier displays a user-facing alert. The tag identifies the alert for
// dedup and replacement; the task ID lets an interactive surface open the
// task.
type Notifier interface {
	Notify(title, body, taskID, tag string) error
}

// ledger records which alert tags already fired today. A date change resets
// it, so every alert may fire again the next day.
type ledger struct {
	Date  string            `json:"date"`
	Fired map[string]string `json:"fired"`
}

// ComputeAlerts derives the alert set for the active collection at the given
// moment. Done tasks never alert. A task that is both overdue and due today
// yields only the overdue alert.
func ComputeAlerts(tasks []task.Task, now time.Time) []Alert {
	today := now.Format("2006-01-02")

	var alerts []Alert
	for _, t := range tasks {
		if t.Status == task.StatusDone {
			continue
		}

		switch {
		case task.Overdue(t, now):
			alerts = append(alerts, Alert{
				TaskID: t.ID,
				Tag:    "overdue-" + t.ID,
				Title:  "Overdue: " + t.Name,
				Body:   "Was due " + dueLabel(t.Date, t.Time),
			})
		case t.Date == today:
			alerts = append(alerts, Alert{
				TaskID: t.ID,
				Tag:    "due-" + t.ID,
				Title:  "Due today: " + t.Name,
				Body:   "Due " + dueLabel(t.Date, t.Time),
			})
		}

		if t.TargetDate == today {
			alerts = append(alerts, Alert{
				TaskID: t.ID,
				Tag:    "do-" + t.ID,
				Title:  "Work on today: " + t.Name,
				Body:   "Scheduled for " + dueLabel(t.TargetDate, t.TargetTime),
			})
		}
	}
	return alerts
}

func dueLabel(date, clock string) string {
	if clock == "" {
		return date
	}
	return date + " " + clock
}

// Checker runs the notification cycle: compute alerts, drop the ones already
// fired today, dispatch the rest, record them in the ledger.
type Checker struct {
	kv       task.KV
	notifier Notifier
}

// NewChecker wires a checker to the kv store and a notifier.
func NewChecker(kv task.KV, notifier Notifier) *Checker {
	return &Checker{kv: kv, notifier: notifier}
}

// Run performs one notification check over the given tasks and returns how
// many alerts were dispatched. Dispatch failures are logged; the failed
// alert is not recorded as fired, so it retries on the next check.
func (c *Checker) Run(tasks []task.Task, now time.Time) int {
	today := now.Format("2006-01-02")

	led := c.loadLedger()
	if led.Date != today {
		led = ledger{Date: today, Fired: map[string]string{}}
	}

	fired := 0
	for _, alert := range ComputeAlerts(tasks, now) {
		if _, done := led.Fired[alert.Tag]; done {
			continue
		}
		if err := c.notifier.Notify(alert.Title, alert.Body, alert.TaskID, alert.Tag); err != nil {
			log.Printf("notify %s: %v", alert.Tag, err)
			continue
		}
		led.Fired[alert.Tag] = now.Format(time.RFC3339)
		fired++
	}

	c.saveLedger(led)
	return fired
}

// loadLedger reads the dedup ledger, treating any failure as absence.
func (c *Checker) loadLedger() ledger {
	data, ok, err := c.kv.Get(ledgerKey)
	if err != nil {
		log.Printf("load %s: %v", ledgerKey, err)
		return ledger{}
	}
	if !ok {
		return ledger{}
	}

	var led ledger
	if err := json.Unmarshal(data, &led); err != nil {
		log.Printf("load %s: malformed data discarded: %v", ledgerKey, err)
		return ledger{}
	}
	if led.Fired == nil {
		led.Fired = map[string]string{}
	}
	return led
}

func (c *Checker) saveLedger(led ledger) {
	data, err := json.Marshal(led)
	if err != nil {
		log.Printf("persist %s: %v", ledgerKey, err)
		return
	}
	if err := c.kv.Set(ledgerKey, data); err != nil {
		log.Printf("persist %s: %v", ledgerKey, err)
	}
}
