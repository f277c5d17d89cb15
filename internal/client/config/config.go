// Package config assembles the client's runtime settings from defaults, an
// optional JSON file, environment variables, and command-line flags; later
// sources override earlier ones.
package config

import (
	"strings"
	"time"
)

// Config holds runtime settings for the DataShare CLI.
//
// Fields:
//   - ServerURL: base URL of the REST API, e.g. "http://localhost:8080/api".
//   - Origin: public web origin used to build share links. When empty it is
//     derived from ServerURL by trimming a trailing "/api".
//   - DownloadDir: where retrieved files are saved.
//   - TokenPath: credential file location; empty means the per-user default.
//   - SessionPollInterval: how often the session watcher checks for external
//     credential changes.
type Config struct {
	ServerURL           string
	Origin              string
	DownloadDir         string
	TokenPath           string
	SessionPollInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080/api"
	c.DownloadDir = "~/Downloads"
	c.SessionPollInterval = 2 * time.Second
}

// LoadConfig constructs a Config: defaults, then JSON (if a file is given),
// then environment, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	c.ServerURL = strings.TrimRight(c.ServerURL, "/")
	if c.Origin == "" {
		c.Origin = strings.TrimSuffix(c.ServerURL, "/api")
	}
}
