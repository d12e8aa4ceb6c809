package tool

import (
	"context"
	"fmt"

	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/binver/binver/event"
	"github.com/binver/binver/internal"
	"github.com/binver/binver/internal/bus"
	"github.com/binver/binver/internal/log"
)

// Fetcher is any artifact that knows where its checksum manifest lives.
type Fetcher interface {
	Path() string
	ChecksumPath() string
	ChecksumURL() (string, error)
	VerifyChecksum(ctx context.Context, checksumPath, downloadPath string) (bool, error)
}

// Fetch downloads an artifact and its checksum manifest into the artifact's
// staging directory, then verifies the downloaded bytes against the manifest
// before handing the path back. Verification failure leaves the file on disk
// but returns an error; nothing should be trusted from the staging directory
// until Fetch returns.
func Fetch(ctx context.Context, url string, artifact Fetcher) (string, error) {
	prog := trackArtifactFetch(artifact.Path())
	defer prog.SetCompleted()

	if err := internal.DownloadFile(ctx, url, artifact.Path(), prog); err != nil {
		return "", fmt.Errorf("unable to download artifact: %w", err)
	}

	checksumURL, err := artifact.ChecksumURL()
	if err != nil {
		return "", err
	}

	if checksumURL != "" {
		log.FromContext(ctx).WithFields("url", checksumURL).Debug("downloading checksum manifest")

		if err := internal.DownloadFile(ctx, checksumURL, artifact.ChecksumPath(), nil); err != nil {
			return "", fmt.Errorf("unable to download checksum manifest: %w", err)
		}
	}

	if _, err := artifact.VerifyChecksum(ctx, artifact.ChecksumPath(), artifact.Path()); err != nil {
		return "", err
	}

	return artifact.Path(), nil
}

func trackArtifactFetch(name string) *progress.Manual {
	prog := progress.NewManual(-1)

	bus.Publish(partybus.Event{
		Type:   event.ArtifactFetchStartedEvent,
		Source: name,
		Value:  prog,
	})

	return prog
}
