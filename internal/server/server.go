// Package server implements the HTTP API for browser-based plan editing.
//
// Each browser session owns a draft plan stored in a session.Store. The
// API mutates the plan through the same placement rules the CLI and TUI
// use, and renders it through the shared pipeline runner.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/pipeline"
	"github.com/plotplan/plotplan/pkg/session"
)

// Default server timeouts.
const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 60 * time.Second // PNG export shells out to rsvg-convert
	RequestTimeout  = 55 * time.Second
	ShutdownTimeout = 10 * time.Second
)

// Server holds the HTTP API dependencies.
type Server struct {
	store  session.Store
	runner *pipeline.Runner
	cat    *catalog.Catalog
	logger *log.Logger
	ttl    time.Duration
}

// Config configures a Server.
type Config struct {
	Store   session.Store    // required
	Runner  *pipeline.Runner // optional, defaults to an uncached runner
	Catalog *catalog.Catalog // optional, defaults to the built-in catalog
	Logger  *log.Logger      // optional, defaults to log.Default()
	TTL     time.Duration    // optional, defaults to session.DefaultTTL
}

// New creates a Server.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = session.DefaultTTL
	}
	return &Server{
		store:  cfg.Store,
		runner: cfg.Runner,
		cat:    cfg.Catalog,
		logger: cfg.Logger,
		ttl:    cfg.TTL,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)

				r.Get("/plot", s.handleGetPlot)
				r.Put("/plot", s.handleSetPlot)

				r.Post("/rooms", s.handleAddRoom)
				r.Delete("/rooms/{roomID}", s.handleRemoveRoom)

				r.Get("/render.{format}", s.handleRender)
			})
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs each request with the structured logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
