package config

import (
	"flag"
	"os"
	"time"

	"datashare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-d string   download directory (default from Config)
//	-i int      session poll interval in seconds (default from Config)
//
// The function filters os.Args to the flags it owns, via flagx.FilterArgs,
// to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend API")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "download directory")
	pollSeconds := fs.Int("i", int(cfg.SessionPollInterval.Seconds()), "session poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionPollInterval = time.Duration(*pollSeconds) * time.Second
}
