package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/anchore/clio"
	"github.com/wagoodman/go-partybus"

	"github.com/binver/binver/event"
	"github.com/binver/binver/internal/log"
)

var _ clio.UI = (*NoUI)(nil)

// NoUI presents final reports and notifications without any interactive
// elements: reports go to stdout, notifications to stderr.
type NoUI struct {
	out            io.Writer
	err            io.Writer
	quiet          bool
	finalizeEvents []partybus.Event
	subscription   partybus.Unsubscribable
}

func None(quiet bool) *NoUI {
	return &NoUI{
		out:   os.Stdout,
		err:   os.Stderr,
		quiet: quiet,
	}
}

func (n *NoUI) Setup(subscription partybus.Unsubscribable) error {
	n.subscription = subscription
	return nil
}

func (n *NoUI) Handle(e partybus.Event) error {
	switch e.Type {
	case event.CLIReport, event.CLINotification:
		// keep these for when the UI is torn down to present to the screen
		n.finalizeEvents = append(n.finalizeEvents, e)
	}
	return nil
}

func (n NoUI) Teardown(_ bool) error {
	for _, e := range n.finalizeEvents {
		switch e.Type {
		case event.CLIReport:
			report, err := event.ParseCLIReport(e)
			if err != nil {
				log.WithFields("error", err).Warn("failed to parse report event")
				continue
			}
			fmt.Fprintln(n.out, report)
		case event.CLINotification:
			if n.quiet {
				continue
			}
			message, err := event.ParseCLINotification(e)
			if err != nil {
				log.WithFields("error", err).Warn("failed to parse notification event")
				continue
			}
			fmt.Fprintln(n.err, message)
		}
	}
	return nil
}
