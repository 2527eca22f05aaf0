package config

import "github.com/kelseyhightower/envconfig"

// parseEnv overlays cfg with MONEYTRACK_* environment variables:
//
//	MONEYTRACK_BASE_URL
//	MONEYTRACK_DATABASE_PATH
//	MONEYTRACK_REQUEST_TIMEOUT (e.g. "30s")
//
// Variables that are not set leave the current values untouched.
func parseEnv(cfg *Config) {
	if err := envconfig.Process("moneytrack", cfg); err != nil {
		panic(err)
	}
}
