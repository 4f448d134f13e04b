package di

import (
	"context"
	"log/slog"

	archiveRepo "github.com/reshetovitsme/archive-viewer/internal/modules/archive/repository"
	archiveService "github.com/reshetovitsme/archive-viewer/internal/modules/archive/service"
	bundleService "github.com/reshetovitsme/archive-viewer/internal/modules/bundle/service"
	feedService "github.com/reshetovitsme/archive-viewer/internal/modules/feed/service"
	renderService "github.com/reshetovitsme/archive-viewer/internal/modules/render/service"
	"github.com/reshetovitsme/archive-viewer/internal/shared/config"
	httpServer "github.com/reshetovitsme/archive-viewer/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container. Services are built
// lazily, so the config may still be adjusted before the first one is invoked.
func Setup(configPath string) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Archive Repository
	do.Provide(injector, func(i do.Injector) (archiveRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := archiveRepo.NewFileStorage(cfg.ArchiveDir, cfg.PayloadFile)
		if err != nil {
			return nil, oops.With("archive_dir", cfg.ArchiveDir, "context", "failed to initialize archive repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Archive Service
	do.Provide(injector, func(i do.Injector) (*archiveService.Service, error) {
		repo := do.MustInvoke[archiveRepo.Repository](i)
		return archiveService.New(repo), nil
	})

	// Register Render Service
	do.Provide(injector, func(i do.Injector) (*renderService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return renderService.New(cfg.Location()), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		archive := do.MustInvoke[*archiveService.Service](i)
		render := do.MustInvoke[*renderService.Service](i)
		return feedService.New(archive, render), nil
	})

	// Register Bundle Service
	do.Provide(injector, func(i do.Injector) (*bundleService.Service, error) {
		return bundleService.New(), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		archive := do.MustInvoke[*archiveService.Service](i)
		render := do.MustInvoke[*renderService.Service](i)
		feed := do.MustInvoke[*feedService.Service](i)
		server := httpServer.New(cfg, archive, render, feed)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(ctx context.Context, injector do.Injector) error {
	// Shutdown http server if it exists
	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return oops.With("context", "failed to stop http server").Wrap(err)
		}
	}

	return nil
}
