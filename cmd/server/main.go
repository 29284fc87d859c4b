package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/api-football-proxy/internal/config"
	"github.com/preston-bernstein/api-football-proxy/internal/logging"
	"github.com/preston-bernstein/api-football-proxy/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "api-football-proxy"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})

	if err := startupChecks(cfg, logger); err != nil {
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

// startupChecks rejects invalid configuration and warns about a missing key.
// A missing key is not fatal: health and passthrough routes still work.
func startupChecks(cfg config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		logging.Error(logger, "invalid configuration", err)
		return err
	}
	if !cfg.APIFootball.HasCredential() {
		logging.Warn(logger, "API_FOOTBALL_KEY is not set; /fixtures/compact will answer 503")
	}
	logging.Info(logger, "configuration loaded",
		"port", cfg.Port,
		"upstream", cfg.APIFootball.BaseURL,
		"upstream_timeout", cfg.APIFootball.Timeout.String(),
		"metrics_enabled", cfg.Metrics.Enabled,
	)
	return nil
}
