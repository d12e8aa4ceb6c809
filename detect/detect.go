package detect

import (
	"context"
	"fmt"
	"os"

	"github.com/binver/binver"
	"github.com/binver/binver/config"
	"github.com/binver/binver/internal/log"
	"github.com/binver/binver/version"
)

// DetectedFromEnvVar is the process-visible marker naming the file that
// produced the resolved version. It is advisory only (for diagnostics and
// child processes) and is never read back by the engine itself. Last write
// wins when multiple tools are resolved concurrently.
const DetectedFromEnvVar = "BINVER_DETECTED_FROM"

type ErrDetectionFailed struct {
	Tool string
}

func (e *ErrDetectionFailed) Error() string {
	return fmt.Sprintf("unable to detect a version for tool %q: no explicit version, environment variable, config entry, or ecosystem file found", e.Tool)
}

// Resolve determines the single version that should be active for the tool.
// Priority, first success wins: the explicit override, the tool's
// <EnvPrefix>_VERSION environment variable, then a strategy-selected search
// over the config hierarchy (nearest directory first). The search is strictly
// sequential and short-circuiting.
func Resolve(ctx context.Context, tool binver.Tool, manager *config.Manager, override *version.Spec) (*binver.Resolution, error) {
	if override != nil {
		log.FromContext(ctx).WithFields("tool", tool.ID(), "version", override.String()).Debug("using explicit version override")
		return &binver.Resolution{Version: override}, nil
	}

	res, err := fromEnv(ctx, tool)
	if err != nil {
		return nil, err
	}
	if res != nil {
		return res, nil
	}

	strategy := manager.Strategy()
	log.FromContext(ctx).WithFields("tool", tool.ID(), "strategy", strategy).Trace("searching config hierarchy")

	switch strategy {
	case config.OnlyConfig:
		res, err = onlyConfig(ctx, tool, manager)
	case config.PreferConfig:
		res, err = preferConfig(ctx, tool, manager)
	default:
		res, err = firstAvailable(ctx, tool, manager)
	}
	if err != nil {
		return nil, err
	}
	if res != nil {
		return res, nil
	}

	return nil, &ErrDetectionFailed{Tool: tool.ID()}
}

// Export publishes the resolution's source path as DetectedFromEnvVar so that
// child processes can report provenance. Resolutions from an override or an
// environment variable have no source path and are not published.
func Export(res binver.Resolution) error {
	if res.Source == "" {
		return nil
	}
	return os.Setenv(DetectedFromEnvVar, res.Source)
}

func fromEnv(ctx context.Context, tool binver.Tool) (*binver.Resolution, error) {
	name := tool.EnvPrefix() + "_VERSION"

	value := os.Getenv(name)
	if value == "" {
		return nil, nil
	}

	// a malformed value is a hard error, never a silent fallthrough to the
	// file-based search
	spec, err := version.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("unable to parse version from environment variable %s: %w", name, err)
	}

	log.FromContext(ctx).WithFields("tool", tool.ID(), "var", name, "version", value).Debug("detected version from environment variable")

	return &binver.Resolution{Version: spec}, nil
}

// firstAvailable takes the first hit per directory level: the config entry at
// that level wins over ecosystem files at that same level, but ecosystem
// files at a nearer level win over config entries farther away.
func firstAvailable(ctx context.Context, tool binver.Tool, manager *config.Manager) (*binver.Resolution, error) {
	for _, file := range manager.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := fromConfigEntry(ctx, tool, file)
		if err != nil || res != nil {
			return res, err
		}

		res, err = fromEcosystem(ctx, tool, file.Dir())
		if err != nil || res != nil {
			return res, err
		}
	}

	return nil, nil
}

// onlyConfig consults config entries exclusively; ecosystem detection is
// never invoked.
func onlyConfig(ctx context.Context, tool binver.Tool, manager *config.Manager) (*binver.Resolution, error) {
	for _, file := range manager.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := fromConfigEntry(ctx, tool, file)
		if err != nil || res != nil {
			return res, err
		}
	}

	return nil, nil
}

// preferConfig checks every config entry across the whole hierarchy before
// any ecosystem detection begins. Directories probed in the second pass are
// deliberately not cached from the first.
func preferConfig(ctx context.Context, tool binver.Tool, manager *config.Manager) (*binver.Resolution, error) {
	res, err := onlyConfig(ctx, tool, manager)
	if err != nil || res != nil {
		return res, err
	}

	for _, file := range manager.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := fromEcosystem(ctx, tool, file.Dir())
		if err != nil || res != nil {
			return res, err
		}
	}

	return nil, nil
}

func fromConfigEntry(ctx context.Context, tool binver.Tool, file config.File) (*binver.Resolution, error) {
	raw, ok := file.ToolVersion(tool.ID())
	if !ok {
		return nil, nil
	}

	spec, err := version.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse version for tool %q from %q: %w", tool.ID(), file.Path, err)
	}

	log.FromContext(ctx).WithFields("tool", tool.ID(), "version", spec.String(), "file", file.Path).Debug("detected version from config file")

	return &binver.Resolution{Version: spec, Source: file.Path}, nil
}

func fromEcosystem(ctx context.Context, tool binver.Tool, dir string) (*binver.Resolution, error) {
	spec, sourcePath, err := tool.DetectVersionFrom(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("unable to detect version for tool %q from %q: %w", tool.ID(), dir, err)
	}
	if spec == nil {
		return nil, nil
	}

	log.FromContext(ctx).WithFields("tool", tool.ID(), "version", spec.String(), "file", sourcePath).Debug("detected version from tool ecosystem")

	return &binver.Resolution{Version: spec, Source: sourcePath}, nil
}
