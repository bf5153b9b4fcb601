package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mkorolev/focusdeck/internal/flagx"
)

// duration lets JSON specify intervals either as strings like "15s" or as
// integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		d.Duration = time.Duration(t)
		return nil
	case string:
		parsed, err := time.ParseDuration(t)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration %q", string(data))
	}
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config afterwards. Empty fields leave the prior
// value in place.
type jsonConfig struct {
	ServerBaseURL   string   `json:"server_base_url"`
	StateDir        string   `json:"state_dir"`
	RequestTimeout  duration `json:"request_timeout"`
	OAuthListenAddr string   `json:"oauth_listen_addr"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Without the flag, nothing happens. Read or unmarshal errors panic; the
// config file is operator input and failing loudly beats a silent default.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}
	applyJSONFile(cfg, path)
}

func applyJSONFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.StateDir != "" {
		cfg.StateDir = jc.StateDir
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OAuthListenAddr != "" {
		cfg.OAuthListenAddr = jc.OAuthListenAddr
	}
}
