package event

import (
	"github.com/wagoodman/go-partybus"
)

const (
	typePrefix    = "binver"
	cliTypePrefix = typePrefix + "-cli"

	// Events from the binver library

	// ArtifactFetchStartedEvent is a partybus event that occurs when an artifact download and verification has begun
	ArtifactFetchStartedEvent partybus.EventType = typePrefix + "-artifact-fetch-started"

	// Events exclusively for the CLI

	// CLIReport is a partybus event that occurs when a result is ready for final presentation to stdout
	CLIReport partybus.EventType = cliTypePrefix + "-report"

	// CLINotification is a partybus event that occurs when auxiliary information is ready for presentation to stderr
	CLINotification partybus.EventType = cliTypePrefix + "-notification"
)
