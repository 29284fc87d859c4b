package config

const (
	envAPIFootballBaseURL = "API_FOOTBALL_BASE_URL"
	envAPIFootballKey     = "API_FOOTBALL_KEY"
	envAPIFootballTimeout = "API_FOOTBALL_TIMEOUT"

	defaultAPIFootballBaseURL = "https://v3.football.api-sports.io"
)

// APIFootballConfig controls how we talk to the API-Football upstream.
type APIFootballConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
}

// HasCredential reports whether an API key was configured.
func (c APIFootballConfig) HasCredential() bool {
	return c.APIKey != ""
}

func loadAPIFootball() APIFootballConfig {
	return APIFootballConfig{
		BaseURL: envOrDefault(envAPIFootballBaseURL, defaultAPIFootballBaseURL),
		APIKey:  envOrDefault(envAPIFootballKey, ""),
		Timeout: durationEnvOrDefault(envAPIFootballTimeout, defaultUpstreamTimeout),
	}
}
