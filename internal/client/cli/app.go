package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"datashare/internal/client/api"
	"datashare/internal/client/config"
	"datashare/internal/client/listing"
	"datashare/internal/client/session"
	"datashare/internal/client/upload"
	"datashare/internal/filex"
	"datashare/internal/logging"
)

// App holds the wired client: one session store, one API client, and the
// workflows the REPL commands drive.
type App struct {
	config   *config.Config
	log      logging.Logger
	sessions *session.Store
	client   api.Client
	listings *listing.Service
	uploads  *upload.Workflow

	downloadDir string
	reader      *bufio.Reader
}

// NewApp wires an App from the given configuration.
func NewApp(c *config.Config) (*App, error) {
	tokenPath := c.TokenPath
	if tokenPath == "" {
		var err error
		tokenPath, err = session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve token path: %w", err)
		}
	}
	sessions := session.NewStore(tokenPath)

	downloadDir, err := filex.EnsureDir(c.DownloadDir)
	if err != nil {
		return nil, fmt.Errorf("prepare download dir: %w", err)
	}

	client := api.NewHTTPClient(c.ServerURL, sessions.Credential)
	listings := listing.NewService(client)

	return &App{
		config:      c,
		log:         logging.NewSlogLogger(slog.Default()),
		sessions:    sessions,
		client:      client,
		listings:    listings,
		uploads:     upload.NewWorkflow(client, listings, c.Origin),
		downloadDir: downloadDir,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the session watcher and the REPL; it blocks until the user
// exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	unsubscribe := a.sessions.Subscribe(func(credential string) {
		if credential == "" {
			printlnFn("Session terminée. Identifiez-vous à nouveau avec 'login'.")
		}
	})
	defer unsubscribe()

	go a.sessions.Watch(ctx, a.config.SessionPollInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "(connecté)"
	}
	return ""
}
