// Package config loads runtime settings for the FocusDeck client.
//
// Sources are applied in order, later ones winning:
// defaults -> JSON file (-c/-config) -> environment -> command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the FocusDeck CLI.
type Config struct {
	// ServerBaseURL is the origin of the FocusDeck REST API.
	ServerBaseURL string `env:"FOCUSDECK_SERVER_URL"`

	// StateDir is where the persisted session blob lives.
	StateDir string `env:"FOCUSDECK_STATE_DIR"`

	// RequestTimeout bounds every API round-trip.
	RequestTimeout time.Duration `env:"FOCUSDECK_REQUEST_TIMEOUT"`

	// OAuthListenAddr is the loopback address for the federated-login
	// callback listener.
	OAuthListenAddr string `env:"FOCUSDECK_OAUTH_ADDR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.OAuthListenAddr = "127.0.0.1:53682"

	if dir, err := os.UserConfigDir(); err == nil {
		c.StateDir = filepath.Join(dir, "focusdeck")
	} else {
		c.StateDir = ".focusdeck"
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
