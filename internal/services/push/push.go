package push

import (
	"context"

	"github.com/google/uuid"

	"restaurant-client/internal/api"
	"restaurant-client/internal/common/storage"
	"restaurant-client/internal/domain"
)

type PushServiceInterface interface {
	RegisterDevice(ctx context.Context, pushToken, platform string) error
	UnregisterDevice(ctx context.Context) error
}

// PushService registers this device with the backend push gateway. Obtaining
// the platform push token is the host app's job; this service only caches it
// and keeps the backend registration in sync.
type PushService struct {
	client *api.Client
	store  storage.Store
}

func NewPushService(client *api.Client, store storage.Store) *PushService {
	return &PushService{client: client, store: store}
}

// deviceID returns the stable per-install id, minting one on first use.
func (s *PushService) deviceID() (string, error) {
	var id string
	ok, err := s.store.Get(storage.KeyDeviceID, &id)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := s.store.Set(storage.KeyDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *PushService) RegisterDevice(ctx context.Context, pushToken, platform string) error {
	id, err := s.deviceID()
	if err != nil {
		return err
	}
	req := domain.RegisterDeviceRequest{DeviceID: id, PushToken: pushToken, Platform: platform}
	if err := s.client.Post(ctx, "/api/v1/notifications/devices/", req, nil); err != nil {
		return err
	}
	return s.store.Set(storage.KeyPushToken, pushToken)
}

func (s *PushService) UnregisterDevice(ctx context.Context) error {
	id, err := s.deviceID()
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, "/api/v1/notifications/devices/"+id+"/"); err != nil {
		return err
	}
	return s.store.Delete(storage.KeyPushToken)
}
