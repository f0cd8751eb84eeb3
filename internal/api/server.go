// Package api serves envelope generation and design point checks over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gorcc/internal/config"
)

// Idle rate limiter buckets are evicted on this schedule
const (
	limiterSweep = time.Minute
	limiterIdle  = 10 * time.Minute
)

// Server wires the handlers, middleware and metrics together
type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics
	router  *mux.Router
	limiter *IPRateLimiter
	handler http.Handler
}

// New builds a server; nothing listens until ListenAndServe
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(),
		router:  mux.NewRouter(),
	}
	s.routes()
	s.handler = requestID(accessLog(logger)(cors(cfg.Origins)(s.router)))
	return s
}

func (s *Server) routes() {
	s.router.Use(s.metrics.timing)
	s.router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.metrics.handler()).Methods(http.MethodGet)

	s.limiter = NewIPRateLimiter(rate.Limit(s.cfg.Rate), s.cfg.Burst)
	s.limiter.onReject = func() { s.metrics.rejected.WithLabelValues(reasonRateLimited).Inc() }

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.limiter.LimitMiddleware)
	api.HandleFunc("/column/envelope", s.envelope).Methods(http.MethodPost)
	api.HandleFunc("/column/check", s.check).Methods(http.MethodPost)
	api.HandleFunc("/column/svg", s.svg).Methods(http.MethodPost)
	api.HandleFunc("/marker", s.markers).Methods(http.MethodPost)
}

// Handler returns the full middleware chain, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves until ctx is cancelled, then drains open requests
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go s.limiter.Janitor(ctx, limiterSweep, limiterIdle)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr, "rate", s.cfg.Rate, "burst", s.cfg.Burst, "steps", s.cfg.Steps)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
