package event

import (
	"fmt"

	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

// ParseArtifactFetchStarted extracts the artifact name and download progress
// from an ArtifactFetchStartedEvent.
func ParseArtifactFetchStarted(e partybus.Event) (string, progress.Progressable, error) {
	if err := checkEventType(e.Type, ArtifactFetchStartedEvent); err != nil {
		return "", nil, err
	}

	name, ok := e.Source.(string)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Source", e.Source)
	}

	prog, ok := e.Value.(progress.Progressable)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return name, prog, nil
}

func ParseCLIReport(e partybus.Event) (string, error) {
	if err := checkEventType(e.Type, CLIReport); err != nil {
		return "", err
	}

	report, ok := e.Value.(string)
	if !ok {
		return "", newPayloadErr(e.Type, "Value", e.Value)
	}

	return report, nil
}

func ParseCLINotification(e partybus.Event) (string, error) {
	if err := checkEventType(e.Type, CLINotification); err != nil {
		return "", err
	}

	message, ok := e.Value.(string)
	if !ok {
		return "", newPayloadErr(e.Type, "Value", e.Value)
	}

	return message, nil
}
