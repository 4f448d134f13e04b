package cli

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	bundleService "github.com/reshetovitsme/archive-viewer/internal/modules/bundle/service"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func newBundleCmd(a *app) *cobra.Command {
	var (
		output     string
		skipRender bool
	)

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Render the archive and zip its directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config()
			if output != "" {
				cfg.BundleFile = output
			}

			if !skipRender {
				if _, err := a.render(); err != nil {
					return err
				}
			}

			bundle := do.MustInvoke[*bundleService.Service](a.injector)
			result, err := bundle.Bundle(cmd.Context(), cfg.ArchiveDir, cfg.BundleFile)
			if err != nil {
				return err
			}

			slog.Info("Archive bundled",
				"files", result.Files,
				"size", humanize.Bytes(uint64(result.Bytes)),
				"output", result.Path,
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "zip file (default: <archive-dir>.zip)")
	cmd.Flags().BoolVar(&skipRender, "skip-render", false, "zip the directory as is")

	return cmd
}
