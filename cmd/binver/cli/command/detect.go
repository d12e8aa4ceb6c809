package command

import (
	"context"
	"fmt"
	"os"

	"github.com/anchore/clio"
	"github.com/spf13/cobra"

	"github.com/binver/binver/cmd/binver/cli/option"
	"github.com/binver/binver/config"
	"github.com/binver/binver/detect"
	"github.com/binver/binver/internal/bus"
	"github.com/binver/binver/internal/log"
	"github.com/binver/binver/version"
)

type DetectConfig struct {
	Config           string `json:"config" yaml:"config" mapstructure:"config"`
	option.Detection `json:"" yaml:",inline" mapstructure:",squash"`
}

func Detect(app clio.Application) *cobra.Command {
	cfg := &DetectConfig{
		Detection: option.DefaultDetection(),
	}

	var toolName, override string

	return app.SetupCommand(&cobra.Command{
		Use:   "detect TOOL [VERSION]",
		Short: "Resolve the version of a tool that should be active in the current directory",
		Args:  cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			toolName = args[0]
			if len(args) > 1 {
				override = args[1]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd.Context(), *cfg, toolName, override)
		},
	}, cfg)
}

func runDetect(ctx context.Context, cfg DetectConfig, toolName, override string) error {
	var overrideSpec *version.Spec
	if override != "" {
		spec, err := version.Parse(override)
		if err != nil {
			return err
		}
		overrideSpec = spec
	}

	t, err := cfg.Tools.ToTool(toolName)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("unable to determine working directory: %w", err)
	}

	manager, err := config.LoadHierarchy(cwd)
	if err != nil {
		return err
	}

	if cfg.Strategy != "" {
		strategy, err := config.ParseDetectStrategy(cfg.Strategy)
		if err != nil {
			return err
		}
		manager = manager.WithStrategy(strategy)
	}

	res, err := detect.Resolve(ctx, t, manager, overrideSpec)
	if err != nil {
		return err
	}

	// publish provenance for child processes
	if err := detect.Export(*res); err != nil {
		log.WithFields("error", err).Warn("unable to export detection source")
	}

	if res.Source != "" {
		bus.Notify(fmt.Sprintf("detected from %s", res.Source))
	}
	bus.Report(res.Version.String())

	return nil
}
