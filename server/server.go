// Package server exposes the trace builders over HTTP.
//
// Routes:
//
//	GET  /healthz               liveness probe
//	GET  /v1/methods            supported MST methods
//	POST /v1/traces/{method}    graph in, trace out (?format=json|yaml, ?strict=true)
//	POST /v1/dot/{method}       graph in, Graphviz DOT of one step out (?step=N)
//
// Graphs are accepted as the text format (text/plain, the default) or as
// JSON (application/json, {"n": 4, "edges": [{"u":1,"v":2,"weight":5}]}).
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/mstviz/export"
)

const (
	defaultMaxBody  = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server is the HTTP front end. Create it with New; it holds no per-request
// state and serves requests concurrently.
type Server struct {
	logger  *log.Logger
	maxBody int64
	format  export.Format
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithMaxBodyBytes limits request bodies; n ≤ 0 keeps the default (1 MiB).
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithDefaultFormat sets the response format used when ?format is absent.
func WithDefaultFormat(f export.Format) Option {
	return func(s *Server) {
		s.format = f
	}
}

// New returns a Server that logs through logger (log.Default() when nil).
func New(logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		logger:  logger,
		maxBody: defaultMaxBody,
		format:  export.JSON,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, echoRequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/methods", s.handleMethods)
		r.Post("/traces/{method}", s.handleTrace)
		r.Post("/dot/{method}", s.handleDOT)
	})

	return r
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	s.logger.Info("stopped")

	return nil
}
