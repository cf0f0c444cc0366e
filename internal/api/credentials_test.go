package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-client/internal/common/storage"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newCreds(t *testing.T) *Credentials {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewCredentials(store)
}

func TestCredentials_RoundTrip(t *testing.T) {
	creds := newCreds(t)

	_, ok := creds.Token()
	assert.False(t, ok, "empty store has no token")

	require.NoError(t, creds.Save("opaque"))
	got, ok := creds.Token()
	require.True(t, ok)
	assert.Equal(t, "opaque", got)

	require.NoError(t, creds.Clear())
	_, ok = creds.Token()
	assert.False(t, ok)
}

func TestCredentials_ExpiredJWTNotAttached(t *testing.T) {
	creds := newCreds(t)
	require.NoError(t, creds.Save(signedToken(t, time.Now().Add(-time.Hour))))

	_, ok := creds.Token()
	assert.False(t, ok, "expired JWT must not be attached")
}

func TestCredentials_ValidJWTAttached(t *testing.T) {
	creds := newCreds(t)
	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, creds.Save(token))

	got, ok := creds.Token()
	require.True(t, ok)
	assert.Equal(t, token, got)
}

func TestCredentials_OpaqueTokenAlwaysAttached(t *testing.T) {
	creds := newCreds(t)
	require.NoError(t, creds.Save("not.a.jwt-really"))

	_, ok := creds.Token()
	assert.True(t, ok, "opaque tokens are the backend's problem")
}
