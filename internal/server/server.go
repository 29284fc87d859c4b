package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	appfixtures "github.com/preston-bernstein/api-football-proxy/internal/app/fixtures"
	"github.com/preston-bernstein/api-football-proxy/internal/config"
	httpserver "github.com/preston-bernstein/api-football-proxy/internal/http"
	"github.com/preston-bernstein/api-football-proxy/internal/http/handlers"
	"github.com/preston-bernstein/api-football-proxy/internal/http/middleware"
	"github.com/preston-bernstein/api-football-proxy/internal/logging"
	"github.com/preston-bernstein/api-football-proxy/internal/metrics"
	"github.com/preston-bernstein/api-football-proxy/internal/providers"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	service       *appfixtures.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server wired to the API-Football upstream described by cfg.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithUpstream(cfg, logger, nil, nil)
}

// newServerWithUpstream allows tests to swap the upstream or the recorder.
// A non-nil upstream still goes through the instrumentation wrapper.
func newServerWithUpstream(cfg config.Config, logger *slog.Logger, upstream providers.Upstream, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newUpstreamFactory(logger, recorder)
	if upstream == nil {
		upstream = factory.build(cfg.APIFootball)
	} else {
		upstream = factory.wrap(upstream)
	}

	svc := appfixtures.NewService(upstream, cfg.APIFootball.HasCredential(), recorder)
	httpSrv := buildHTTPServer(cfg, svc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		service:       svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, metricsSrv httpServer, metricsStop func(context.Context) error) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsStop,
	}
}

func buildHTTPServer(cfg config.Config, svc *appfixtures.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(svc, logger)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder,
		middleware.Recover(logger,
			middleware.CORS(nil)(router),
		),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(cfg.APIFootball.Timeout),
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) <-chan struct{} {
	return launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() <-chan struct{} {
	if s.metricsServer == nil {
		return nil
	}
	return launchServer("metrics", s.metricsServer, s.logger, nil)
}

// gracefulShutdown stops the telemetry pipeline and both listeners concurrently,
// bounded by shutdownTimeout.
func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var g errgroup.Group
	if s.metricsStop != nil {
		g.Go(func() error {
			if err := s.metricsStop(shutdownCtx); err != nil {
				logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
				return fmt.Errorf("metrics provider: %w", err)
			}
			return nil
		})
	}
	if s.metricsServer != nil {
		g.Go(func() error {
			if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
				logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}
	if s.httpServer != nil {
		g.Go(func() error {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				logging.Error(s.logger, "graceful shutdown failed", err)
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logging.Warn(s.logger, "shutdown incomplete", logging.FieldError, err)
		return
	}
	logging.Info(s.logger, "shutdown complete")
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// launchServer runs srv under the supervisor. onError fires for any failure
// other than a normal close.
func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) <-chan struct{} {
	return supervise(logger, name+" server", func() {
		logging.Info(logger, "starting "+name+" server", logging.FieldAddr, srv.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	})
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
