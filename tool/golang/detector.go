package golang

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/binver/binver"
	"github.com/binver/binver/internal/log"
	"github.com/binver/binver/tool/pinfile"
	"github.com/binver/binver/version"
)

var _ binver.EcosystemDetector = (*Detector)(nil)

// Detector infers a go toolchain version from ".go-version" files and go.mod
// directives.
type Detector struct {
	config DetectorParameters
}

type DetectorParameters struct {
	// SkipGoMod disables consulting go.mod toolchain/go directives.
	SkipGoMod bool `json:"skip-go-mod" yaml:"skip-go-mod" mapstructure:"skip-go-mod"`
}

func NewDetector(cfg DetectorParameters) *Detector {
	return &Detector{
		config: cfg,
	}
}

func (d Detector) DetectVersionFrom(ctx context.Context, dir string) (*version.Spec, string, error) {
	path := filepath.Join(dir, ".go-version")

	raw, ok, err := pinfile.ReadVersionFile(path)
	if err != nil {
		return nil, "", err
	}
	if ok {
		spec, err := version.Parse(raw)
		if err != nil {
			return nil, "", fmt.Errorf("unable to parse go version from %q: %w", path, err)
		}
		return spec, path, nil
	}

	if d.config.SkipGoMod {
		return nil, "", nil
	}

	return detectFromGoMod(ctx, dir)
}

// detectFromGoMod prefers the toolchain directive (an exact toolchain
// version) over the go directive (a minimum language version).
func detectFromGoMod(ctx context.Context, dir string) (*version.Spec, string, error) {
	path := filepath.Join(dir, "go.mod")

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("unable to read %q: %w", path, err)
	}
	defer f.Close()

	var goDirective string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}

		switch fields[0] {
		case "toolchain":
			raw := strings.TrimPrefix(fields[1], "go")
			spec, err := version.Parse(raw)
			if err != nil {
				return nil, "", fmt.Errorf("unable to parse toolchain directive from %q: %w", path, err)
			}

			log.FromContext(ctx).WithFields("file", path, "version", spec.String()).Trace("read toolchain directive")

			return spec, path, nil
		case "go":
			goDirective = fields[1]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("unable to read %q: %w", path, err)
	}

	if goDirective == "" {
		return nil, "", nil
	}

	spec, err := version.Parse(goDirective)
	if err != nil {
		return nil, "", fmt.Errorf("unable to parse go directive from %q: %w", path, err)
	}

	log.FromContext(ctx).WithFields("file", path, "version", spec.String()).Trace("read go directive")

	return spec, path, nil
}
