package nodejs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/binver/binver"
	"github.com/binver/binver/internal/log"
	"github.com/binver/binver/tool/pinfile"
	"github.com/binver/binver/version"
)

var _ binver.EcosystemDetector = (*Detector)(nil)

// pinned-version files consulted before the project manifest, nearest-match
// conventions first
var pinFiles = []string{".nvmrc", ".node-version"}

// Detector infers a node version from the files the node ecosystem
// conventionally pins versions with.
type Detector struct {
	config DetectorParameters
}

type DetectorParameters struct {
	// SkipEngines disables consulting the package.json engines field.
	SkipEngines bool `json:"skip-engines" yaml:"skip-engines" mapstructure:"skip-engines"`
}

func NewDetector(cfg DetectorParameters) *Detector {
	return &Detector{
		config: cfg,
	}
}

func (d Detector) DetectVersionFrom(ctx context.Context, dir string) (*version.Spec, string, error) {
	for _, name := range pinFiles {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		path := filepath.Join(dir, name)

		raw, ok, err := pinfile.ReadVersionFile(path)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			continue
		}

		spec, err := version.Parse(raw)
		if err != nil {
			return nil, "", fmt.Errorf("unable to parse node version from %q: %w", path, err)
		}

		return spec, path, nil
	}

	if d.config.SkipEngines {
		return nil, "", nil
	}

	return detectFromPackageJSON(ctx, dir)
}

func detectFromPackageJSON(ctx context.Context, dir string) (*version.Spec, string, error) {
	path := filepath.Join(dir, "package.json")

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("unable to read %q: %w", path, err)
	}

	var manifest struct {
		Engines struct {
			Node string `json:"node"`
		} `json:"engines"`
	}

	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, "", fmt.Errorf("unable to parse %q: %w", path, err)
	}

	if manifest.Engines.Node == "" {
		return nil, "", nil
	}

	spec, err := version.Parse(manifest.Engines.Node)
	if err != nil {
		return nil, "", fmt.Errorf("unable to parse node engines range from %q: %w", path, err)
	}

	log.FromContext(ctx).WithFields("file", path, "range", spec.String()).Trace("read engines field from project manifest")

	return spec, path, nil
}
