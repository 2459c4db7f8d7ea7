package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/retentionlab/knapsack/dataprep"
	"github.com/retentionlab/knapsack/store"
)

// Server wires the knapsack solver, the dataprep EDA snapshot, and a Store
// behind an HTTP API. It is the Go equivalent of src/api/main.py's FastAPI
// app, scoped to the routes this repository's dashboards actually call.
type Server struct {
	router  chi.Router
	store   store.Store
	logger  zerolog.Logger
	metrics *Metrics

	mu  sync.RWMutex
	eda dataprep.EDAResult
}

// NewServer builds a Server backed by st, logging through logger.
func NewServer(st store.Store, logger zerolog.Logger) *Server {
	s := &Server{
		store:   st,
		logger:  logger,
		metrics: NewMetrics(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/greedy", s.handleGreedy)
		r.Get("/dashboard/overview", s.handleDashboardOverview)
		r.Get("/dashboard/optimization", s.handleDashboardOptimization)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	s.router = r

	return s
}

// Router returns the server's http.Handler, for use with http.Server or
// httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// SetEDA replaces the cached exploratory-analysis snapshot the overview
// dashboard endpoint serves. Safe for concurrent use.
func (s *Server) SetEDA(result dataprep.EDAResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eda = result
}

func (s *Server) currentEDA() dataprep.EDAResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eda
}

// requestLogger logs one zerolog event per request at Info level, the same
// access-log shape the retrieved corpus's zerolog-based services emit.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("http request")
		})
	}
}

// ListenAndServe starts an http.Server on addr and blocks until ctx is
// canceled, at which point it shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
