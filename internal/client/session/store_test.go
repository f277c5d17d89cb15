package session

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token")
}

func TestStoreLifecycle(t *testing.T) {
	s := NewStore(tokenPath(t))

	assert.Empty(t, s.Credential())
	assert.False(t, s.IsAuthenticated())

	require.NoError(t, s.SetCredential("jwt-abc"))
	assert.Equal(t, "jwt-abc", s.Credential())
	assert.True(t, s.IsAuthenticated())

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Credential())
	assert.False(t, s.IsAuthenticated())

	// clearing twice is fine
	require.NoError(t, s.Clear())
}

func TestStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	s := NewStore(path)
	require.NoError(t, s.SetCredential("tok"))
	assert.Equal(t, "tok", s.Credential())
}

func TestSubscribeNotifiesEverySubscriber(t *testing.T) {
	s := NewStore(tokenPath(t))

	var mu sync.Mutex
	var got []string
	for i := 0; i < 3; i++ {
		s.Subscribe(func(c string) {
			mu.Lock()
			got = append(got, c)
			mu.Unlock()
		})
	}

	require.NoError(t, s.SetCredential("tok"))
	require.NoError(t, s.Clear())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 6)
	assert.ElementsMatch(t, []string{"tok", "tok", "tok", "", "", ""}, got)
}

func TestUnsubscribe(t *testing.T) {
	s := NewStore(tokenPath(t))

	calls := 0
	cancel := s.Subscribe(func(string) { calls++ })
	cancel()

	require.NoError(t, s.SetCredential("tok"))
	assert.Zero(t, calls)
}

func TestWatchObservesExternalLogout(t *testing.T) {
	path := tokenPath(t)

	// two stores over the same file simulate two processes of the client
	a := NewStore(path)
	b := NewStore(path)

	require.NoError(t, a.SetCredential("tok"))

	authed := make(chan bool, 1)
	b.Subscribe(func(c string) {
		authed <- c != ""
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Watch(ctx, 5*time.Millisecond)
	}()

	// let the watcher take its baseline before mutating
	time.Sleep(25 * time.Millisecond)
	require.NoError(t, a.Clear())

	select {
	case isAuthenticated := <-authed:
		assert.False(t, isAuthenticated)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never reported the external logout")
	}

	cancel()
	<-done
}
