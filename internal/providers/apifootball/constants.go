package apifootball

import "time"

const (
	// Name identifies this upstream in logs and errors.
	Name = "api-football"

	defaultBaseURL     = "https://v3.football.api-sports.io"
	defaultHTTPTimeout = 8 * time.Second
	apiKeyHeader       = "x-apisports-key"
	maxErrorBodyBytes  = 4096
)
