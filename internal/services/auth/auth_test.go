package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-client/internal/api"
	"restaurant-client/internal/common/config"
	"restaurant-client/internal/common/logger"
	"restaurant-client/internal/common/storage"
	"restaurant-client/internal/domain"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*AuthService, *api.Credentials) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	creds := api.NewCredentials(store)
	client := api.New(
		config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second},
		creds,
		logger.New("auth-test").WithOutput(io.Discard),
	)
	return NewAuthService(client, creds), creds
}

func TestLogin_PersistsToken(t *testing.T) {
	svc, creds := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login/", r.URL.Path)
		w.Write([]byte(`{"data": {"token": "tok-abc", "user": {"id": 1, "email": "a@b.c", "name": "Alice"}}}`))
	})

	resp, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.User.Name)

	tok, ok := creds.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-abc", tok)
}

func TestLogin_RequiresCredentials(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the backend")
	})

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@b.c"})
	assert.Error(t, err)
}

func TestLogout_ClearsTokenEvenWhenBackendFails(t *testing.T) {
	svc, creds := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	require.NoError(t, creds.Save("tok"))
	require.NoError(t, svc.Logout(context.Background()))

	_, ok := creds.Token()
	assert.False(t, ok)
}
