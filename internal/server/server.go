// Package server exposes the algorithm catalog over HTTP.
//
// # Routes
//
//	GET  /healthz                                  build info
//	GET  /api/algorithms                           catalog summaries
//	GET  /api/algorithms/{name}                    metadata with listing
//	POST /api/algorithms/{name}/trace              trace envelope
//	GET  /api/algorithms/{name}/steps/{index}/svg  diagram of one step
//	GET  /api/algorithms/{name}/steps/{index}/dot  Graphviz source of one step
//
// POST bodies are {"params": {"name": "value"}}; the step routes take
// algorithm parameters as query values. Parameters use the same text
// grammar as the CLI and missing ones take their defaults.
//
// Errors are JSON objects {"code", "message"}. Input errors map to 400,
// unknown algorithms and steps to 404, and steps without a diagram to 422.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Options configures a Server.
type Options struct {
	Addr        string
	ReadTimeout time.Duration
	// MaxSteps rejects traces longer than this; 0 disables the check.
	MaxSteps int
	Logger   *log.Logger
}

// Server serves the HTTP API.
type Server struct {
	opts   Options
	router chi.Router
}

// New creates a server with all routes registered.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	s := &Server{opts: opts}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/api/algorithms", func(r chi.Router) {
		r.Get("/", s.listAlgorithms)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.getAlgorithm)
			r.Post("/trace", s.postTrace)
			r.Get("/steps/{index}/svg", s.stepSVG)
			r.Get("/steps/{index}/dot", s.stepDOT)
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		ReadTimeout:       s.opts.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("server started", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.opts.Logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// logRequests logs every request at debug level with its status and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.opts.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
