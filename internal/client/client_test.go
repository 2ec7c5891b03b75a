package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"taskdeck/internal/config"
	"taskdeck/internal/domain"
	httpServer "taskdeck/internal/http"
	"taskdeck/internal/http/handlers"
	"taskdeck/internal/repository"
	"taskdeck/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		BcryptCost:     bcrypt.MinCost,
		AuthRateLimit:  1000,
		AuthRateWindow: time.Minute,
		APIRateLimit:   1000,
		APIRateWindow:  time.Minute,
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(repository.NewMemUserStore(), tokens, cfg.BcryptCost)
	tasks := service.NewTaskService(repository.NewMemTaskStore())

	r := gin.New()
	httpServer.RegisterAPIRoutes(r, handlers.NewHandler(auth, tasks), tokens, cfg)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, &MemoryTokenStore{})
	ctx := context.Background()

	require.False(t, c.LoggedIn())
	require.NoError(t, c.Register(ctx, "alice", "secret1"))
	require.True(t, c.LoggedIn())

	task, err := c.CreateTask(ctx, "buy milk")
	require.NoError(t, err)
	require.Equal(t, "buy milk", task.Title)
	require.False(t, task.Completed)

	tasks, err := c.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	completed := true
	updated, err := c.UpdateTask(ctx, task.ID, domain.TaskUpdate{Completed: &completed})
	require.NoError(t, err)
	require.True(t, updated.Completed)

	title := "buy oat milk"
	updated, err = c.UpdateTask(ctx, task.ID, domain.TaskUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "buy oat milk", updated.Title)
	require.True(t, updated.Completed)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Username)

	require.NoError(t, c.DeleteTask(ctx, task.ID))

	tasks, err = c.Tasks(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestClientAPIErrors(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, &MemoryTokenStore{})
	ctx := context.Background()

	// short password surfaces the server's message
	err := c.Register(ctx, "alice", "123")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)
	require.Contains(t, apiErr.Message, "password")

	require.NoError(t, c.Register(ctx, "alice", "secret1"))

	// deleting a task that does not exist
	err = c.DeleteTask(ctx, 42)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)
}

func TestClientSessionExpiry(t *testing.T) {
	srv := newTestServer(t)
	store := &MemoryTokenStore{}
	c := New(srv.URL, store)
	ctx := context.Background()

	// a stale/forged token is treated as an expired session:
	// the client clears the store so route gating falls back to logged-out
	require.NoError(t, store.Save("stale-token"))
	require.True(t, c.LoggedIn())

	_, err := c.Tasks(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
	require.False(t, c.LoggedIn())
}

func TestClientLogout(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, &MemoryTokenStore{})
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, "alice", "secret1"))
	require.True(t, c.LoggedIn())
	require.NoError(t, c.Logout())
	require.False(t, c.LoggedIn())
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := &FileTokenStore{Path: path}

	// empty before anything is saved
	tok, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, store.Save("abc123"))
	tok, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "abc123", tok)

	require.NoError(t, store.Clear())
	tok, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, tok)

	// clearing twice is fine
	require.NoError(t, store.Clear())
}
