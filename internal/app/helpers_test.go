package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salmatarekx/EventPlanner/internal/api"
	"github.com/salmatarekx/EventPlanner/internal/logger"
	"github.com/salmatarekx/EventPlanner/internal/session"
)

// recordingNav captures navigations for assertions.
type recordingNav struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNav) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *recordingNav) Paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

func newSessionStore(t *testing.T, token string) session.Store {
	t.Helper()
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if token != "" {
		require.NoError(t, store.Set(context.Background(), token))
	}
	return store
}

func newEventClient(t *testing.T, handler http.Handler) *api.EventClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewEventClient(server.URL+"/events", server.Client(), logger.NewQuietLogger(), newSessionStore(t, "test-token"))
}

func newEventClientWithStore(t *testing.T, handler http.Handler, store session.Store) *api.EventClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewEventClient(server.URL+"/events", server.Client(), logger.NewQuietLogger(), store)
}

func newAuthClient(t *testing.T, handler http.Handler) *api.AuthClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewAuthClient(server.URL, server.Client(), logger.NewQuietLogger())
}
