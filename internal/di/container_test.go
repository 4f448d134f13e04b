package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/require"

	archiveService "github.com/reshetovitsme/archive-viewer/internal/modules/archive/service"
	bundleService "github.com/reshetovitsme/archive-viewer/internal/modules/bundle/service"
	feedService "github.com/reshetovitsme/archive-viewer/internal/modules/feed/service"
	renderService "github.com/reshetovitsme/archive-viewer/internal/modules/render/service"
	"github.com/reshetovitsme/archive-viewer/internal/shared/config"
	httpServer "github.com/reshetovitsme/archive-viewer/internal/transport/http"
)

func TestSetupWiresServices(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages.jsonp"),
		[]byte(`jsonp_parse([{"id":"1","author":{"id":"1","username":"a"},"content":"x","timestamp":"2023-05-01T09:30:00Z"}])`), 0644))

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("archive_dir: "+dir+"\ntimezone: UTC\n"), 0644))

	injector, err := Setup(configPath)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, Shutdown(context.Background(), injector)) })

	cfg := do.MustInvoke[*config.Config](injector)
	require.Equal(t, dir, cfg.ArchiveDir)

	archive, err := do.MustInvoke[*archiveService.Service](injector).Load()
	require.NoError(t, err)
	require.Len(t, archive.Messages, 1)

	render := do.MustInvoke[*renderService.Service](injector)
	require.Equal(t, "UTC", render.Location().String())

	require.NotNil(t, do.MustInvoke[*feedService.Service](injector))
	require.NotNil(t, do.MustInvoke[*bundleService.Service](injector))
	require.NotNil(t, do.MustInvoke[*httpServer.Server](injector))
}

func TestSetupReportsConfigErrors(t *testing.T) {
	injector, err := Setup(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	_, err = do.Invoke[*config.Config](injector)
	require.Error(t, err)
}
