package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays cfg with FOCUSDECK_* environment variables. Unset
// variables leave the prior value in place.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
