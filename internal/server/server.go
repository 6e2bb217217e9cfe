// Package server exposes the handout pipeline over HTTP: a multipart
// upload endpoint that returns the optimized PDF as a download.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	handout "github.com/bcarden/go-handout"
)

// Optimizer is the slice of the handout service the server needs.
type Optimizer interface {
	Optimize(ctx context.Context, input handout.Input) ([]byte, error)
}

// Config holds server settings.
type Config struct {
	Addr           string // listen address
	MaxUploadBytes int64  // multipart request body cap
}

// Server handles slide-deck uploads.
type Server struct {
	cfg    Config
	svc    Optimizer
	logger *log.Logger
	router chi.Router
}

// New creates a Server routing uploads to svc. A nil logger discards output.
func New(svc Optimizer, cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		cfg:    cfg,
		svc:    svc,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealthz)
	r.Post("/optimize", s.handleOptimize)
	s.router = r

	return s
}

// Handler returns the root HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
