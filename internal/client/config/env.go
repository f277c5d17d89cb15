package config

import (
	"time"

	env "github.com/Netflix/go-env"
)

// envConfig maps the DATASHARE_* environment variables. Durations are given
// in seconds.
type envConfig struct {
	ServerURL           string `env:"DATASHARE_SERVER_URL"`
	Origin              string `env:"DATASHARE_ORIGIN"`
	DownloadDir         string `env:"DATASHARE_DOWNLOAD_DIR"`
	TokenPath           string `env:"DATASHARE_TOKEN_PATH"`
	SessionPollInterval int    `env:"DATASHARE_SESSION_POLL_SECONDS"`
}

// parseEnv overlays cfg with values from the environment; unset variables
// leave the current values untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if _, err := env.UnmarshalFromEnviron(&ec); err != nil {
		panic(err)
	}
	applyEnv(cfg, ec)
}

func applyEnv(cfg *Config, ec envConfig) {
	if ec.ServerURL != "" {
		cfg.ServerURL = ec.ServerURL
	}
	if ec.Origin != "" {
		cfg.Origin = ec.Origin
	}
	if ec.DownloadDir != "" {
		cfg.DownloadDir = ec.DownloadDir
	}
	if ec.TokenPath != "" {
		cfg.TokenPath = ec.TokenPath
	}
	if ec.SessionPollInterval > 0 {
		cfg.SessionPollInterval = time.Duration(ec.SessionPollInterval) * time.Second
	}
}
