package auth

import (
	"context"
	"errors"

	"restaurant-client/internal/api"
	"restaurant-client/internal/domain"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (domain.User, error)
}

type AuthService struct {
	client *api.Client
	creds  *api.Credentials
}

func NewAuthService(client *api.Client, creds *api.Credentials) *AuthService {
	return &AuthService{client: client, creds: creds}
}

// Login authenticates and persists the returned bearer token.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return domain.AuthResponse{}, errors.New("email and password are required")
	}
	var resp domain.AuthResponse
	if err := s.client.Post(ctx, "/auth/login/", req, &resp); err != nil {
		return domain.AuthResponse{}, err
	}
	if err := s.creds.Save(resp.Token); err != nil {
		return domain.AuthResponse{}, err
	}
	return resp, nil
}

func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := s.client.Post(ctx, "/auth/register/", req, &resp); err != nil {
		return domain.AuthResponse{}, err
	}
	if err := s.creds.Save(resp.Token); err != nil {
		return domain.AuthResponse{}, err
	}
	return resp, nil
}

// Logout drops local credentials. The backend invalidates the session on a
// best-effort basis; a failed call still clears the local token.
func (s *AuthService) Logout(ctx context.Context) error {
	_ = s.client.Post(ctx, "/auth/logout/", nil, nil)
	return s.creds.Clear()
}

func (s *AuthService) Profile(ctx context.Context) (domain.User, error) {
	var u domain.User
	if err := s.client.Get(ctx, "/auth/profile/", nil, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
