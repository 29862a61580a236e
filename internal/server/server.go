// Package server implements the pitchplot render service: a small HTTP API
// that accepts event data and returns rendered pitch figures.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/orkonung/pitchplot/pkg/cache"
	"github.com/orkonung/pitchplot/pkg/pipeline"
)

// Server serves the render API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by the given cache. A nil cache disables
// artifact caching; a nil keyer uses the default key scheme. Pass a
// cache.ScopedKeyer to namespace this instance's keys on a shared store.
func New(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: pipeline.NewRunner(c, keyer, logger),
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases the runner's resources.
func (s *Server) Close() error {
	return s.runner.Close()
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/themes", s.handleThemes)
		r.Get("/presets", s.handlePresets)
		r.Post("/render", s.handleRender)
	})
	return r
}

type ctxKey int

const requestIDKey ctxKey = 0

// requestLogger assigns each request an ID and logs its outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		w.Header().Set("X-Request-ID", id.String())

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctx))

		s.logger.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

// requestID returns the request's ID, or the zero UUID outside a request.
func requestID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(requestIDKey).(uuid.UUID)
	return id
}
