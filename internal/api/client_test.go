package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-client/internal/common/config"
	"restaurant-client/internal/common/logger"
	"restaurant-client/internal/common/storage"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *Credentials) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	creds := NewCredentials(store)

	cfg := config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second, UserAgent: "restaurant-client/test"}
	return New(cfg, creds, logger.New("api-test").WithOutput(io.Discard)), creds
}

func TestGet_UnwrapsDataEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"name": "Mario's"}}`))
	})

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.Get(context.Background(), "/api/v1/restaurants/1/", nil, &out))
	assert.Equal(t, "Mario's", out.Name)
}

func TestGet_AcceptsBarePayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Luigi's"}`))
	})

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.Get(context.Background(), "/", nil, &out))
	assert.Equal(t, "Luigi's", out.Name)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	require.NoError(t, creds.Save("opaque-token-123"))
	require.NoError(t, client.Get(context.Background(), "/", nil, nil))
	assert.Equal(t, "Bearer opaque-token-123", gotAuth)
}

func TestDo_NoHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	require.NoError(t, client.Get(context.Background(), "/", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestDo_401ClearsStoredCredentials(t *testing.T) {
	client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "token expired"}`))
	})

	require.NoError(t, creds.Save("stale"))
	err := client.Get(context.Background(), "/", nil, nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	_, ok := creds.Token()
	assert.False(t, ok, "credentials cleared after 401")
}

func TestDo_NormalizesBackendErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode string
	}{
		{"message field", 422, `{"message": "name required", "details": {"field": "name"}}`, "name required", "validation_error"},
		{"error field", 400, `{"error": "bad payload"}`, "bad payload", "validation_error"},
		{"detail field", 404, `{"detail": "no such order"}`, "no such order", "not_found"},
		{"backend code wins", 409, `{"message": "locked", "code": "session_locked"}`, "locked", "session_locked"},
		{"non-json body", 500, `upstream exploded`, "Internal Server Error", "server_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := client.Get(context.Background(), "/", nil, nil)
			require.Error(t, err)
			apiErr, ok := err.(*Error)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestDo_TransportFailure(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	cfg := config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}
	client := New(cfg, NewCredentials(store), logger.New("api-test").WithOutput(io.Discard))

	err = client.Get(context.Background(), "/", nil, nil)
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, CodeNetworkError, apiErr.Code)
	assert.Zero(t, apiErr.Status)
}

func TestGet_EncodesQueryParams(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	q := url.Values{"restaurant_id": {"7"}}
	var out []struct{}
	require.NoError(t, client.Get(context.Background(), "/api/v1/orders/", q, &out))
	assert.Equal(t, "7", gotQuery.Get("restaurant_id"))
}
