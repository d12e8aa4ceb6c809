package bus

import (
	"github.com/wagoodman/go-partybus"

	"github.com/binver/binver/event"
)

var publisher partybus.Publisher

// Set the singleton event publisher (wired up by the application at startup).
func Set(p partybus.Publisher) {
	publisher = p
}

func Get() partybus.Publisher {
	return publisher
}

// Publish an event onto the bus. If there is no bus set by the application,
// this is a no-op.
func Publish(e partybus.Event) {
	if publisher != nil {
		publisher.Publish(e)
	}
}

// Report publishes a final result intended for stdout.
func Report(report string) {
	Publish(partybus.Event{
		Type:  event.CLIReport,
		Value: report,
	})
}

// Notify publishes auxiliary information intended for stderr.
func Notify(message string) {
	Publish(partybus.Event{
		Type:  event.CLINotification,
		Value: message,
	})
}
