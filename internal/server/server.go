package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/game-reviews-service/internal/app/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/app/games"
	"github.com/preston-bernstein/game-reviews-service/internal/app/reviews"
	"github.com/preston-bernstein/game-reviews-service/internal/config"
	"github.com/preston-bernstein/game-reviews-service/internal/graph"
	httpserver "github.com/preston-bernstein/game-reviews-service/internal/http"
	"github.com/preston-bernstein/game-reviews-service/internal/http/handlers"
	"github.com/preston-bernstein/game-reviews-service/internal/http/middleware"
	"github.com/preston-bernstein/game-reviews-service/internal/logging"
	"github.com/preston-bernstein/game-reviews-service/internal/metrics"
	"github.com/preston-bernstein/game-reviews-service/internal/seed"
	"github.com/preston-bernstein/game-reviews-service/internal/store"
	"github.com/preston-bernstein/game-reviews-service/internal/tracing"
)

var (
	metricsSetup = metrics.Setup
	tracingSetup = tracing.Setup
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	services      graph.Services
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	tracingStop   func(context.Context) error
}

// New constructs a server over a store seeded from cfg.SeedFile (or the embedded dataset).
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	data, err := seed.LoadOrDefault(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	tracingShutdown := buildTracing(cfg, logger)

	memoryStore, svcs := buildServices()
	memoryStore.Seed(data)
	logger.Info("store seeded",
		slog.Int("games", len(data.Games)),
		slog.Int("reviews", len(data.Reviews)),
		slog.Int("authors", len(data.Authors)),
	)

	httpSrv, err := buildHTTPServer(cfg, memoryStore, svcs, logger, recorder)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		services:      svcs,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		tracingStop:   tracingShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices() (*store.MemoryStore, graph.Services) {
	memoryStore := store.NewMemoryStore()
	return memoryStore, graph.Services{
		Games:   games.NewService(memoryStore),
		Reviews: reviews.NewService(memoryStore),
		Authors: authors.NewService(memoryStore),
	}
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, svcs graph.Services, logger *slog.Logger, recorder *metrics.Recorder) (httpServer, error) {
	schema, err := graph.NewSchema(svcs, recorder, logger)
	if err != nil {
		return nil, err
	}

	handler := handlers.NewHandler(logger, memoryStore.Seeded)
	router := httpserver.NewRouter(handler, graph.NewHandler(schema))
	wrapped := middleware.TracingMiddleware(tracingServiceName(cfg), middleware.LoggingMiddleware(logger, recorder, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}, nil
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.tracingStop != nil {
		if err := s.tracingStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "tracing shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return shutdownTimeout
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func buildTracing(cfg config.Config, logger *slog.Logger) func(context.Context) error {
	shutdown, err := tracingSetup(context.Background(), tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		logging.Warn(logger, "tracing setup failed, continuing without spans", "err", err)
		return nil
	}
	return shutdown
}

func tracingServiceName(cfg config.Config) string {
	if cfg.Tracing.ServiceName != "" {
		return cfg.Tracing.ServiceName
	}
	return "game-reviews-service"
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
