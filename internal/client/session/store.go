// Package session holds the bearer credential for the current user.
//
// The credential is the only piece of client state that survives a restart.
// It lives in a single file under the user's config directory; every
// authenticated request re-reads it, and any mutation notifies all
// subscribers. Other running processes of the same client observe external
// mutations through Watch, which polls the file and broadcasts changes, so
// a logout in one terminal is seen by the others without a restart.
//
// The store is a pure local cache of "do we currently hold a token": it never
// validates the credential against the server. A stale or forged token simply
// fails at the API boundary.
package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Store persists the credential and fans out change notifications.
type Store struct {
	path string

	mu     sync.Mutex
	subs   map[int]func(credential string)
	nextID int
	// last value seen by Watch, to detect external mutations
	last      string
	lastKnown bool
}

// NewStore creates a store backed by the file at path. The file does not
// have to exist; a missing file means no credential.
func NewStore(path string) *Store {
	return &Store{path: path, subs: make(map[int]func(string))}
}

// DefaultPath returns the conventional credential location under the user
// config directory, e.g. ~/.config/datashare/token.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "datashare", "token"), nil
}

// Credential returns the stored bearer token, or "" when logged out.
// The file is read on every call so external changes are always honored.
func (s *Store) Credential() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// IsAuthenticated reports whether a credential is currently held. Holding one
// does not guarantee it is still valid server-side.
func (s *Store) IsAuthenticated() bool {
	return s.Credential() != ""
}

// SetCredential overwrites the stored credential and notifies subscribers.
func (s *Store) SetCredential(credential string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(credential), 0o600); err != nil {
		return err
	}
	s.broadcast(credential)
	return nil
}

// Clear removes the stored credential and notifies subscribers. Clearing an
// already-empty store is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	s.broadcast("")
	return nil
}

// Subscribe registers fn to run on every credential change, local or
// external. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(credential string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Watch polls the credential file until ctx is done and broadcasts any value
// change it observes. This is how mutations made by another process of the
// same client reach this one's subscribers.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			current := s.Credential()

			s.mu.Lock()
			changed := s.lastKnown && current != s.last
			s.last = current
			s.lastKnown = true
			s.mu.Unlock()

			if changed {
				s.broadcast(current)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (s *Store) broadcast(credential string) {
	s.mu.Lock()
	s.last = credential
	s.lastKnown = true
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(credential)
	}
}
