// Package config centralises configuration parsing for the Leggo client.
package config

import (
	"os"
	"time"
)

// Config captures runtime configuration values, with defaults for local dev.
type Config struct {
	SessionDBPath  string        // Path of the SQLite file holding the session blob.
	MockAuthDelay  time.Duration // Artificial latency for the mock credential exchange.
	CreateLatency  time.Duration // Artificial latency before an activity create commits.
	JWTSecret      string
	JWTIssuer      string
	MetricsAddress string // Empty disables the debug metrics listener.
}

// Load reads environment variables into Config.
func Load() Config {
	return Config{
		SessionDBPath:  getEnv("SESSION_DB_PATH", "leggo.db"),
		MockAuthDelay:  getDurationEnv("MOCK_AUTH_DELAY", time.Second),
		CreateLatency:  getDurationEnv("CREATE_LATENCY", time.Second),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:      getEnv("JWT_ISSUER", "leggo.mobile"),
		MetricsAddress: getEnv("METRICS_ADDRESS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
