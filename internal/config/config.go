package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server. It is read once at
// startup and passed by value to constructors.
type Config struct {
	Port        string
	APIFootball APIFootballConfig
	Metrics     MetricsConfig
}

// dotenvFiles lists the optional env files merged before the environment is read.
var dotenvFiles = []string{".env"}

// Load reads configuration from environment variables with sensible defaults.
// Values from a local .env file are used only when the variable is not already set.
func Load() Config {
	loadDotenv()
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		APIFootball: loadAPIFootball(),
		Metrics:     loadMetrics(),
	}
}

func loadDotenv() {
	for _, f := range dotenvFiles {
		// Missing files are expected outside local development.
		_ = godotenv.Load(f)
	}
}
