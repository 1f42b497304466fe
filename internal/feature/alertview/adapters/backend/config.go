// Package backend provides a client for the risk analysis HTTP API.
package backend

import (
	"os"
	"time"
)

// DefaultBaseURL is used when ALERT_BACKEND_URL is not set.
const DefaultBaseURL = "http://127.0.0.1:8080"

// Config holds configuration for the analysis API client.
type Config struct {
	BaseURL string        // Base URL of the analysis service (e.g., "http://127.0.0.1:8080")
	Timeout time.Duration // HTTP request timeout; generation can take tens of seconds
}

// LoadConfig loads the client configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("ALERT_BACKEND_URL"),
		Timeout: 2 * time.Minute,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if d, err := time.ParseDuration(os.Getenv("ALERT_BACKEND_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}
