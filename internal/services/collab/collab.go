package collab

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-client/internal/api"
	"restaurant-client/internal/domain"
)

type CollabServiceInterface interface {
	CreateSession(ctx context.Context, req domain.CreateSessionRequest) (domain.CollabSession, error)
	JoinSession(ctx context.Context, req domain.JoinSessionRequest) (domain.CollabSession, error)
	GetSession(ctx context.Context, id int64) (domain.CollabSession, error)
	LockSession(ctx context.Context, id int64) (domain.CollabSession, error)
	CompleteSession(ctx context.Context, id int64) (domain.CollabSession, error)
	LeaveSession(ctx context.Context, id int64) error
}

// CollabService wraps the collaborative group-ordering endpoints. All session
// invariants (locking, completion, participant limits) are enforced by the
// backend; the client only relays calls and displays the result.
type CollabService struct {
	client *api.Client
}

func NewCollabService(client *api.Client) *CollabService {
	return &CollabService{client: client}
}

func (s *CollabService) CreateSession(ctx context.Context, req domain.CreateSessionRequest) (domain.CollabSession, error) {
	if req.HostName == "" {
		return domain.CollabSession{}, errors.New("host name is required")
	}
	var out domain.CollabSession
	err := s.client.Post(ctx, "/api/v1/collaborative-sessions/create_session/", req, &out)
	return out, err
}

func (s *CollabService) JoinSession(ctx context.Context, req domain.JoinSessionRequest) (domain.CollabSession, error) {
	req.ShareCode = strings.ToUpper(strings.TrimSpace(req.ShareCode))
	if req.ShareCode == "" {
		return domain.CollabSession{}, errors.New("share code is required")
	}
	var out domain.CollabSession
	err := s.client.Post(ctx, "/api/v1/collaborative-sessions/join_session/", req, &out)
	return out, err
}

func (s *CollabService) GetSession(ctx context.Context, id int64) (domain.CollabSession, error) {
	var out domain.CollabSession
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/collaborative-sessions/%d/", id), nil, &out)
	return out, err
}

func (s *CollabService) LockSession(ctx context.Context, id int64) (domain.CollabSession, error) {
	var out domain.CollabSession
	err := s.client.Post(ctx, fmt.Sprintf("/api/v1/collaborative-sessions/%d/lock/", id), nil, &out)
	return out, err
}

func (s *CollabService) CompleteSession(ctx context.Context, id int64) (domain.CollabSession, error) {
	var out domain.CollabSession
	err := s.client.Post(ctx, fmt.Sprintf("/api/v1/collaborative-sessions/%d/complete/", id), nil, &out)
	return out, err
}

func (s *CollabService) LeaveSession(ctx context.Context, id int64) error {
	return s.client.Post(ctx, fmt.Sprintf("/api/v1/collaborative-sessions/%d/leave/", id), nil, nil)
}
