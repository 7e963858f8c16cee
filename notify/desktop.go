package notify

import (
	"log"

	"github.com/gen2brain/beeep"
)

// Desktop dispatches alerts through the operating system's notification
// facility.
type Desktop struct {
	// AppName labels the notification source.
	AppName string
}

// Notify displays a desktop notification. The task ID and tag are unused
// here; desktop notifications cannot call back into the process.
func (d Desktop) Notify(title, body, taskID, tag string) error {
	if d.AppName != "" {
		beeep.AppName = d.AppName
	}
	return beeep.Notify(title, body, "")
}

// Logger is the fallback notifier for environments without a desktop
// notification facility. It writes alerts to the process log.
type Logger struct{}

func (Logger) Notify(title, body, taskID, tag string) error {
	log.Printf("notification [%s]: %s: %s", tag, title, body)
	return nil
}
