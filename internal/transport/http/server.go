package http

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	archiveService "github.com/reshetovitsme/archive-viewer/internal/modules/archive/service"
	feedDomain "github.com/reshetovitsme/archive-viewer/internal/modules/feed/domain"
	feedService "github.com/reshetovitsme/archive-viewer/internal/modules/feed/service"
	renderService "github.com/reshetovitsme/archive-viewer/internal/modules/render/service"
	"github.com/reshetovitsme/archive-viewer/internal/shared/config"
	"github.com/reshetovitsme/archive-viewer/internal/shared/errors"
	sloghttp "github.com/samber/slog-http"
)

// Server serves the rendered archive, its assets and feeds over HTTP
type Server struct {
	cfg           *config.Config
	archive       *archiveService.Service
	renderService *renderService.Service
	feedService   *feedService.Service
	metrics       *Metrics
	logger        *slog.Logger

	mu     sync.Mutex
	server *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, archive *archiveService.Service, render *renderService.Service, feed *feedService.Service) *Server {
	return &Server{
		cfg:           cfg,
		archive:       archive,
		renderService: render,
		feedService:   feed,
		metrics:       NewMetrics(),
		logger:        slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routed handler wrapped in logging and recovery middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Archive page, rendered from the payload on every request
	mux.HandleFunc("GET /{$}", s.handleArchive)

	// Exported avatars, emoji, stickers and attachments
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.cfg.AssetsDir()))))

	// Feed endpoints
	mux.HandleFunc("GET /feed.rss", s.handleFeed(feedDomain.FormatRss))
	mux.HandleFunc("GET /feed.atom", s.handleFeed(feedDomain.FormatAtom))
	mux.HandleFunc("GET /feed.json", s.handleFeed(feedDomain.FormatJson))

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.Handle("GET /metrics", s.metrics.Handler())

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start listens on the configured port until Shutdown is called
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Archive server starting", "addr", addr, "payload", s.archive.PayloadPath())

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.mu.Lock()
	s.server = server
	s.mu.Unlock()

	if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	archive, err := s.archive.Load()
	if err != nil {
		s.metrics.ObserveRender("error", 0, time.Since(start))
		s.writeLoadError(w, err)
		return
	}

	heading := renderService.Heading{Title: s.cfg.Title, Summary: archive.Stats.Summary()}

	var page bytes.Buffer
	if err := s.renderService.Document(&page, heading, archive.Messages); err != nil {
		s.metrics.ObserveRender("error", 0, time.Since(start))
		s.logger.Error("Error rendering archive", "error", err)
		http.Error(w, "Failed to render archive", http.StatusInternalServerError)
		return
	}
	s.metrics.ObserveRender("ok", len(archive.Messages), time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

func (s *Server) handleFeed(format feedDomain.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Get base URL from request
		baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)

		opts := feedDomain.Options{
			Title:   s.cfg.Title,
			BaseURL: baseURL,
			Limit:   s.cfg.FeedLimit,
		}

		var body bytes.Buffer
		if err := s.feedService.Write(&body, format, opts); err != nil {
			s.writeLoadError(w, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
		w.WriteHeader(http.StatusOK)
		w.Write(body.Bytes())
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) writeLoadError(w http.ResponseWriter, err error) {
	if stderrors.Is(err, errors.ErrPayloadNotFound) {
		http.Error(w, errors.ErrPayloadNotFound.Error()+"!", http.StatusNotFound)
		return
	}

	s.logger.Error("Error loading archive", "error", err)
	http.Error(w, "Failed to load archive", http.StatusInternalServerError)
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
