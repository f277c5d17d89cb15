// Package download implements the token-addressed retrieval workflow as an
// explicit state machine.
//
// A workflow is created for one share token and starts in
// ResolvingMetadata. The metadata fetch settles it into MetadataReady or
// MetadataUnavailable; the latter deliberately collapses "token does not
// exist", "token expired" and server errors into a single state with one
// generic message, matching the service's UI contract. From MetadataReady
// the binary fetch is a distinct call, gated behind a non-empty password
// when the file is protected.
package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"datashare/internal/client/api"
	"datashare/internal/client/expiry"
	"datashare/internal/client/models"
	"datashare/internal/filex"
)

// State is the workflow's position in the retrieval lifecycle.
type State int

const (
	// StateResolvingMetadata: the info fetch has not settled yet.
	StateResolvingMetadata State = iota
	// StateMetadataUnavailable: the token is invalid, expired, or the
	// server failed; the client does not distinguish.
	StateMetadataUnavailable
	// StateMetadataReady: metadata resolved; the binary fetch is possible.
	StateMetadataReady
)

// UnavailableMessage is the single generic message for an unusable link.
const UnavailableMessage = "Ce lien n'existe pas ou a expiré."

// ErrNotReady is returned when a download is attempted outside
// MetadataReady or while its gating conditions are unmet.
var ErrNotReady = errors.New("download not available")

// ErrFetchInFlight is returned when a binary fetch is already running.
var ErrFetchInFlight = errors.New("a download is already in flight")

// Workflow drives the retrieval of one share token.
type Workflow struct {
	client api.Client
	token  string

	mu       sync.Mutex
	state    State
	info     models.FileInfo
	password string
	fetching bool
	failure  string

	// now is a seam for tests
	now func() time.Time
}

// NewWorkflow builds a workflow for the given share token.
func NewWorkflow(client api.Client, token string) *Workflow {
	return &Workflow{client: client, token: token, now: time.Now}
}

// Resolve performs the metadata fetch. Any failure, whatever its cause,
// collapses to MetadataUnavailable.
func (w *Workflow) Resolve(ctx context.Context) {
	info, err := w.client.FileInfo(ctx, w.token)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.state = StateMetadataUnavailable
		return
	}
	w.state = StateMetadataReady
	w.info = info
}

// SetPassword records the unlock password typed by the recipient.
func (w *Workflow) SetPassword(password string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.password = password
}

// CanDownload reports whether the download trigger should be enabled:
// metadata present, not expired, password supplied when required, and no
// fetch currently in flight.
func (w *Workflow) CanDownload() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canDownloadLocked()
}

func (w *Workflow) canDownloadLocked() bool {
	if w.state != StateMetadataReady || w.fetching {
		return false
	}
	if w.info.Expired {
		return false
	}
	if w.info.PasswordProtected && w.password == "" {
		return false
	}
	return true
}

// SaveTo fetches the binary and materializes it under dir, returning the
// final path. The body lands in a temporary file first; it is promoted to
// its final name exactly once on success and removed on any failure, so a
// failed fetch leaves nothing behind. The password travels only when the
// file is protected.
func (w *Workflow) SaveTo(ctx context.Context, dir string) (string, error) {
	w.mu.Lock()
	if w.fetching {
		w.mu.Unlock()
		return "", ErrFetchInFlight
	}
	if !w.canDownloadLocked() {
		w.mu.Unlock()
		return "", ErrNotReady
	}
	password := ""
	if w.info.PasswordProtected {
		password = w.password
	}
	name := filepath.Base(w.info.Name)
	w.fetching = true
	w.failure = ""
	w.mu.Unlock()

	path, err := w.fetchTo(ctx, dir, name, password)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.fetching = false
	if err != nil {
		w.failure = api.DisplayMessage(err)
		return "", err
	}
	return path, nil
}

func (w *Workflow) fetchTo(ctx context.Context, dir, name, password string) (string, error) {
	tmp, err := os.CreateTemp(dir, ".datashare-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := w.client.Download(ctx, w.token, password, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	final := filex.UniquePath(filepath.Join(dir, name))
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return final, nil
}

// State returns the current machine state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Info returns the resolved metadata; meaningful only in MetadataReady.
func (w *Workflow) Info() models.FileInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.info
}

// Failure returns the display message of the last failed fetch, "" when none.
func (w *Workflow) Failure() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failure
}

// Notice renders the expiry sentence for the resolved metadata, derived
// from the wall clock at call time.
func (w *Workflow) Notice() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return expiry.DownloadNotice(expiry.DaysUntil(w.info.ExpiredAt, w.now()))
}
