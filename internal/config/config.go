// Package config loads gridscout settings from the environment, with an
// optional .env file and a key-file fallback for the GRID API key.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Production GRID endpoints.
const (
	defaultCentralURL = "https://api-op.grid.gg/central-data/graphql"
	defaultStateURL   = "https://api-op.grid.gg/live-data-feed/series-state/graphql"
)

type Config struct {
	APIKey      string
	CentralURL  string
	StateURL    string
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment. A missing .env file is
// fine; a missing API key is too — only commands that reach the network
// need one, and they check via RequireAPIKey.
func Load() *Config {
	_ = godotenv.Load()

	timeout := 30 * time.Second
	if v := os.Getenv("GRID_HTTP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		APIKey:      loadAPIKey(),
		CentralURL:  getEnv("GRID_CENTRAL_URL", defaultCentralURL),
		StateURL:    getEnv("GRID_SERIES_STATE_URL", defaultStateURL),
		HTTPTimeout: timeout,
	}
}

// RequireAPIKey errors when no API key could be found anywhere.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("no GRID API key: set GRID_API_KEY or create ~/.gridscout/api_key")
	}
	return nil
}

// loadAPIKey checks the environment first, then ~/.gridscout/api_key.
func loadAPIKey() string {
	if key := os.Getenv("GRID_API_KEY"); key != "" {
		return key
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(home, ".gridscout", "api_key"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
