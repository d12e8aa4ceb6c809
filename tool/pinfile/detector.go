package pinfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/binver/binver"
	"github.com/binver/binver/internal/log"
	"github.com/binver/binver/version"
)

var _ binver.EcosystemDetector = (*Detector)(nil)

// Detector reads pinned-version files: plain text files whose entire contents
// are a single version spec (e.g. ".ruby-version").
type Detector struct {
	config DetectorParameters
}

type DetectorParameters struct {
	// Files are the pinned-version file names to look for, in priority order.
	Files []string `json:"files" yaml:"files" mapstructure:"files"`
}

func NewDetector(cfg DetectorParameters) *Detector {
	return &Detector{
		config: cfg,
	}
}

func (d Detector) DetectVersionFrom(ctx context.Context, dir string) (*version.Spec, string, error) {
	for _, name := range d.config.Files {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		path := filepath.Join(dir, name)

		raw, ok, err := ReadVersionFile(path)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			continue
		}

		spec, err := version.Parse(raw)
		if err != nil {
			return nil, "", fmt.Errorf("unable to parse version from %q: %w", path, err)
		}

		log.FromContext(ctx).WithFields("file", path, "version", spec.String()).Trace("read pinned version file")

		return spec, path, nil
	}

	return nil, "", nil
}

// ReadVersionFile reads a pinned-version file: the first non-empty line,
// whitespace trimmed, with any leading "v" stripped. Reports ok=false when
// the file does not exist or holds nothing usable.
func ReadVersionFile(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("unable to read version file %q: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.TrimPrefix(line, "v"), true, nil
	}

	return "", false, nil
}
