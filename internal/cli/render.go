package cli

import (
	"bytes"
	"log/slog"
	"os"

	archiveService "github.com/reshetovitsme/archive-viewer/internal/modules/archive/service"
	renderService "github.com/reshetovitsme/archive-viewer/internal/modules/render/service"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the archive payload into a single HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				a.config().OutputFile = output
			}
			_, err := a.render()
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: archive.html in the archive directory)")

	return cmd
}

// render writes the archive page and returns its path. Nothing is written
// when the payload cannot be loaded.
func (a *app) render() (string, error) {
	cfg := a.config()
	archive := do.MustInvoke[*archiveService.Service](a.injector)
	render := do.MustInvoke[*renderService.Service](a.injector)

	loaded, err := archive.Load()
	if err != nil {
		return "", err
	}

	heading := renderService.Heading{Title: cfg.Title, Summary: loaded.Stats.Summary()}

	var page bytes.Buffer
	if err := render.Document(&page, heading, loaded.Messages); err != nil {
		return "", err
	}

	path := cfg.OutputPath()
	if err := os.WriteFile(path, page.Bytes(), 0644); err != nil {
		return "", oops.With("output", path, "context", "failed to write page").Wrap(err)
	}

	slog.Info("Archive rendered",
		"messages", loaded.Stats.Messages,
		"authors", loaded.Stats.Authors,
		"range", loaded.Stats.DateRange(),
		"output", path,
	)
	return path, nil
}
