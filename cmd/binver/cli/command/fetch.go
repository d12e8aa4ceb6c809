package command

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/anchore/clio"
	"github.com/spf13/cobra"

	"github.com/binver/binver/cmd/binver/cli/option"
	"github.com/binver/binver/internal/bus"
	"github.com/binver/binver/tool"
	"github.com/binver/binver/verify"
)

type FetchConfig struct {
	Config       string `json:"config" yaml:"config" mapstructure:"config"`
	option.Fetch `json:"" yaml:",inline" mapstructure:",squash"`
}

func Fetch(app clio.Application) *cobra.Command {
	cfg := &FetchConfig{
		Fetch: option.DefaultFetch(),
	}

	var rawURL string

	return app.SetupCommand(&cobra.Command{
		Use:   "fetch URL",
		Short: "Download an artifact and verify it against its checksum manifest",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			rawURL = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), *cfg, rawURL)
		},
	}, cfg)
}

func runFetch(ctx context.Context, cfg FetchConfig, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid artifact URL %q: %w", rawURL, err)
	}

	name := path.Base(parsed.Path)
	if name == "." || name == "/" {
		return fmt.Errorf("unable to derive a file name from URL %q", rawURL)
	}

	artifact := verify.Artifact{
		Name:                name,
		DestDir:             cfg.DestDir,
		ChecksumFile:        cfg.ChecksumFile,
		ChecksumURLTemplate: cfg.ChecksumURL,
	}

	binPath, err := tool.Fetch(ctx, rawURL, artifact)
	if err != nil {
		return err
	}

	bus.Report(binPath)

	return nil
}
