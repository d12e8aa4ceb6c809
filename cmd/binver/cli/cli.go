package cli

import (
	"github.com/anchore/clio"
	"github.com/anchore/go-logger"

	"github.com/binver/binver/cmd/binver/cli/command"
	"github.com/binver/binver/cmd/binver/cli/internal/ui"
	"github.com/binver/binver/internal/bus"
	"github.com/binver/binver/internal/log"
)

// New constructs the binver CLI application: the detect, verify, and fetch
// commands plus the version command, wired with the application config and
// logging flags. `RunE` is the earliest that the complete application
// configuration can be loaded.
func New(id clio.Identification) clio.Application {
	clioCfg := clio.NewSetupConfig(id).
		WithGlobalConfigFlag().   // add persistent -c <path> for reading an application config from
		WithGlobalLoggingFlags(). // add persistent -v and -q flags tied to the logging config
		WithConfigInRootHelp().   // --help on the root command renders the full application config in the help text
		WithUIConstructor(
			func(cfg clio.Config) ([]clio.UI, error) {
				return []clio.UI{
					ui.None(cfg.Log.Quiet),
				}, nil
			},
		).
		WithLoggingConfig(clio.LoggingConfig{
			Level: logger.WarnLevel,
		}).
		WithInitializers(
			func(state *clio.State) error {
				// clio is setting up and providing the bus and logger to the
				// application. Once loaded, we can hoist them into the
				// internal packages for global use.
				bus.Set(state.Bus)
				log.Set(state.Logger)

				return nil
			},
		)

	app := clio.New(*clioCfg)

	root := command.Root(app)

	root.AddCommand(
		clio.VersionCommand(id),
		command.Detect(app),
		command.Verify(app),
		command.Fetch(app),
	)

	return app
}
