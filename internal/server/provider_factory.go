package server

import (
	"log/slog"

	"github.com/preston-bernstein/api-football-proxy/internal/config"
	"github.com/preston-bernstein/api-football-proxy/internal/metrics"
	"github.com/preston-bernstein/api-football-proxy/internal/providers"
	"github.com/preston-bernstein/api-football-proxy/internal/providers/apifootball"
)

// upstreamFactory assembles the API-Football client with the shared instrumentation wrapper.
type upstreamFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newUpstreamFactory(logger *slog.Logger, metrics *metrics.Recorder) upstreamFactory {
	return upstreamFactory{logger: logger, metrics: metrics}
}

func (f upstreamFactory) build(cfg config.APIFootballConfig) providers.Upstream {
	client := apifootball.NewClient(apifootball.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	return f.wrap(client)
}

func (f upstreamFactory) wrap(inner providers.Upstream) providers.Upstream {
	return providers.NewInstrumentedUpstream(inner, f.logger, f.metrics, apifootball.Name)
}
