package config

import "time"

const (
	envPort         = "PORT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "3000"
	defaultMetricsPort = "9090"
	defaultServiceName = "api-football-proxy"
	// Upstream calls are abandoned after this long; callers see a 502.
	defaultUpstreamTimeout = 8 * Duration(time.Second)
)
