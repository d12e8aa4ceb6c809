package verify

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/binver/binver"
)

// DefaultChecksumFile is the manifest name most release pipelines publish
// alongside their assets.
const DefaultChecksumFile = "checksums.txt"

var _ binver.Verifiable = (*Artifact)(nil)

// Artifact is a downloaded (or to-be-downloaded) file staged in a directory
// together with the checksum manifest that vouches for it.
type Artifact struct {
	// Name is the artifact file name exactly as it appears in manifest lines.
	Name string

	// DestDir is the staging directory holding the artifact and manifest.
	DestDir string

	// ChecksumFile is the manifest file name; DefaultChecksumFile when empty.
	ChecksumFile string

	// ChecksumURLTemplate optionally locates the manifest remotely and may
	// contain the {checksum_file} token.
	ChecksumURLTemplate string
}

// Path is the local path of the artifact itself.
func (a Artifact) Path() string {
	return filepath.Join(a.DestDir, a.Name)
}

func (a Artifact) checksumFile() string {
	if a.ChecksumFile == "" {
		return DefaultChecksumFile
	}
	return a.ChecksumFile
}

func (a Artifact) ChecksumPath() string {
	return filepath.Join(a.DestDir, a.checksumFile())
}

func (a Artifact) ChecksumURL() (string, error) {
	if a.ChecksumURLTemplate == "" {
		return "", nil
	}

	expanded := ExpandChecksumURL(a.ChecksumURLTemplate, a.checksumFile())

	if _, err := url.Parse(expanded); err != nil {
		return "", fmt.Errorf("invalid checksum URL %q: %w", expanded, err)
	}

	return expanded, nil
}

func (a Artifact) VerifyChecksum(ctx context.Context, checksumPath, downloadPath string) (bool, error) {
	return Checksum(ctx, checksumPath, downloadPath)
}
