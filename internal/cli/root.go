// Package cli implements the archive-viewer command line.
package cli

import (
	"context"
	"time"

	"github.com/reshetovitsme/archive-viewer/internal/di"
	"github.com/reshetovitsme/archive-viewer/internal/shared/config"
	"github.com/reshetovitsme/archive-viewer/internal/shared/logging"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// app carries state shared by all subcommands of one invocation
type app struct {
	configPath string
	archiveDir string
	title      string
	timezone   string
	logLevel   string

	injector do.Injector
}

// Execute runs the command line
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "archive-viewer",
		Short:         "Render exported chat archives",
		Long:          "archive-viewer turns an exported messages.jsonp payload into a self-contained HTML page.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.shutdown()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: first of config.{yaml,yml,json,toml})")
	flags.StringVar(&a.archiveDir, "archive-dir", "", "exported archive directory")
	flags.StringVar(&a.title, "title", "", "page title")
	flags.StringVar(&a.timezone, "timezone", "", "zone for short message times")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	cmd.AddCommand(
		newRenderCmd(a),
		newServeCmd(a),
		newBundleCmd(a),
	)

	return cmd
}

// setup builds the container and applies flag overrides before any service
// reads the config
func (a *app) setup() error {
	injector, err := di.Setup(a.configPath)
	if err != nil {
		return err
	}
	a.injector = injector

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return err
	}

	if a.archiveDir != "" {
		// A derived bundle path follows the archive directory
		if cfg.BundleFile == config.DefaultBundleFile(cfg.ArchiveDir) {
			cfg.BundleFile = config.DefaultBundleFile(a.archiveDir)
		}
		cfg.ArchiveDir = a.archiveDir
	}
	if a.title != "" {
		cfg.Title = a.title
	}
	if a.timezone != "" {
		cfg.Timezone = a.timezone
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return oops.With("context", "invalid command line overrides").Wrap(err)
	}

	logging.Setup(cfg.LogLevel)
	return nil
}

func (a *app) shutdown() error {
	if a.injector == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return di.Shutdown(ctx, a.injector)
}

func (a *app) config() *config.Config {
	return do.MustInvoke[*config.Config](a.injector)
}
