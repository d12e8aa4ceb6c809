package binver

import (
	"context"

	"github.com/binver/binver/version"
)

// Tool is a developer tool whose active version can be resolved for the
// current working context.
type Tool interface {
	// ID is the stable identifier used in config file entries (e.g. "node").
	ID() string

	// EnvPrefix is the prefix used to form the tool's version override
	// environment variable, "<EnvPrefix>_VERSION" (e.g. "BINVER_NODE").
	EnvPrefix() string

	EcosystemDetector
}

// EcosystemDetector attempts to infer a version from tool-specific project
// files in a directory (a pinned-version file, a manifest, a lockfile).
type EcosystemDetector interface {
	// DetectVersionFrom returns the detected version and the file it came
	// from, or a nil spec when the directory holds nothing usable.
	DetectVersionFrom(ctx context.Context, dir string) (*version.Spec, string, error)
}

// Verifiable is the capability any downloadable artifact type implements so
// that its bytes can be checked against a checksum manifest before install.
type Verifiable interface {
	// ChecksumPath is the local path the checksum manifest is (or will be)
	// stored at.
	ChecksumPath() string

	// ChecksumURL is the remote location of the checksum manifest, or empty
	// when the artifact does not publish one.
	ChecksumURL() (string, error)

	// VerifyChecksum matches the digest of the file at downloadPath against
	// the manifest at checksumPath.
	VerifyChecksum(ctx context.Context, checksumPath, downloadPath string) (bool, error)
}

// Resolution is the outcome of a version resolution: the version to use and
// the provenance of the decision.
type Resolution struct {
	Version *version.Spec

	// Source is the path of the file that produced the version, or empty when
	// the version came from an explicit override or an environment variable.
	Source string
}
