package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"restaurant-client/internal/common/storage"
)

// Credentials persists the bearer token in local storage and answers whether
// it is still worth attaching. Tokens that parse as JWTs are checked against
// their exp claim; opaque tokens are always attached and the backend decides.
type Credentials struct {
	store storage.Store
}

func NewCredentials(store storage.Store) *Credentials {
	return &Credentials{store: store}
}

func (c *Credentials) Token() (string, bool) {
	var token string
	ok, err := c.store.Get(storage.KeyAuthToken, &token)
	if err != nil || !ok || token == "" {
		return "", false
	}
	if expired(token) {
		return "", false
	}
	return token, true
}

func (c *Credentials) Save(token string) error {
	return c.store.Set(storage.KeyAuthToken, token)
}

func (c *Credentials) Clear() error {
	return c.store.Delete(storage.KeyAuthToken)
}

func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false // not a JWT, treat as opaque
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
