package command

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/anchore/clio"
	"github.com/spf13/cobra"

	"github.com/binver/binver/cmd/binver/cli/option"
	"github.com/binver/binver/internal/bus"
	"github.com/binver/binver/verify"
)

type VerifyConfig struct {
	Config              string `json:"config" yaml:"config" mapstructure:"config"`
	option.Verification `json:"" yaml:",inline" mapstructure:",squash"`
}

func Verify(app clio.Application) *cobra.Command {
	cfg := &VerifyConfig{}

	var downloadPath string

	return app.SetupCommand(&cobra.Command{
		Use:   "verify FILE",
		Short: "Verify a downloaded file against a checksum manifest",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			downloadPath = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.Context(), *cfg, downloadPath)
		},
	}, cfg)
}

func runVerify(ctx context.Context, cfg VerifyConfig, downloadPath string) error {
	checksumPath := cfg.Checksums
	if checksumPath == "" {
		checksumPath = filepath.Join(filepath.Dir(downloadPath), verify.DefaultChecksumFile)
	}

	if _, err := verify.Checksum(ctx, checksumPath, downloadPath); err != nil {
		return err
	}

	bus.Report(fmt.Sprintf("%s: OK", filepath.Base(downloadPath)))

	return nil
}
