// Package config loads runtime settings for the moneytrack CLI from (in
// order of increasing precedence) defaults, a JSON file, environment
// variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the moneytrack CLI.
//
// Fields:
//   - BaseURL: scheme://host:port of the backend API.
//   - DatabasePath: sqlite file holding the persisted session.
//   - RequestTimeout: per-request HTTP timeout; 0 means the client waits
//     until the transport resolves or fails.
type Config struct {
	BaseURL        string        `envconfig:"BASE_URL"`
	DatabasePath   string        `envconfig:"DATABASE_PATH"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5000"
	c.DatabasePath = "tracker.db"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
