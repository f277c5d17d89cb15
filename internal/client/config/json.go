package config

import (
	"encoding/json"
	"os"
	"time"

	"datashare/internal/flagx"
	"datashare/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "2s" or
// as integer nanoseconds.
type jsonConfig struct {
	ServerURL           string         `json:"server_url"`
	Origin              string         `json:"origin"`
	DownloadDir         string         `json:"download_dir"`
	TokenPath           string         `json:"token_path"`
	SessionPollInterval timex.Duration `json:"session_poll_interval"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Missing flags mean no JSON is loaded; only fields present in the file
// override the current values. Read or unmarshal errors panic, as a broken
// explicit config should not be silently ignored.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	applyJSON(cfg, jc)
}

func applyJSON(cfg *Config, jc jsonConfig) {
	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.Origin != "" {
		cfg.Origin = jc.Origin
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.TokenPath != "" {
		cfg.TokenPath = jc.TokenPath
	}
	if jc.SessionPollInterval.Duration != 0 {
		cfg.SessionPollInterval = time.Duration(jc.SessionPollInterval.Duration)
	}
}
