package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"restaurant-client/internal/api"
	"restaurant-client/internal/common/storage"
	"restaurant-client/internal/domain"
)

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.Restaurant, error)

	ListCategories(ctx context.Context, restaurantID int64) ([]domain.MenuCategory, error)
	CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.MenuCategory, error)
	UpdateCategory(ctx context.Context, id int64, req domain.UpdateCategoryRequest) (domain.MenuCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListMenuItems(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, req domain.UpdateMenuItemRequest) (domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
	ToggleAvailability(ctx context.Context, id int64) (domain.MenuItem, error)
	ReorderMenuItems(ctx context.Context, req domain.ReorderRequest) error

	ListTables(ctx context.Context, restaurantID int64) ([]domain.Table, error)
	GetTable(ctx context.Context, id int64) (domain.Table, error)
	StartQRSession(ctx context.Context, tableID int64) (domain.QRSession, error)
}

// CatalogService covers restaurants, menu categories, menu items and tables.
// Pure endpoint glue: errors from the HTTP wrapper propagate unchanged.
type CatalogService struct {
	client *api.Client
	store  storage.Store
}

func NewCatalogService(client *api.Client, store storage.Store) *CatalogService {
	return &CatalogService{client: client, store: store}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	err := s.client.Get(ctx, "/api/v1/restaurants/", nil, &out)
	return out, err
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id int64) (domain.Restaurant, error) {
	var out domain.Restaurant
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/restaurants/%d/", id), nil, &out)
	return out, err
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.Restaurant, error) {
	var out domain.Restaurant
	err := s.client.Post(ctx, "/api/v1/restaurants/", req, &out)
	return out, err
}

func (s *CatalogService) ListCategories(ctx context.Context, restaurantID int64) ([]domain.MenuCategory, error) {
	q := url.Values{"restaurant_id": {strconv.FormatInt(restaurantID, 10)}}
	var out []domain.MenuCategory
	err := s.client.Get(ctx, "/api/v1/menu/categories/", q, &out)
	return out, err
}

func (s *CatalogService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.MenuCategory, error) {
	var out domain.MenuCategory
	err := s.client.Post(ctx, "/api/v1/menu/categories/", req, &out)
	return out, err
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, req domain.UpdateCategoryRequest) (domain.MenuCategory, error) {
	var out domain.MenuCategory
	err := s.client.Patch(ctx, fmt.Sprintf("/api/v1/menu/categories/%d/", id), req, &out)
	return out, err
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/v1/menu/categories/%d/", id))
}

func (s *CatalogService) ListMenuItems(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	q := url.Values{"restaurant_id": {strconv.FormatInt(restaurantID, 10)}}
	var out []domain.MenuItem
	err := s.client.Get(ctx, "/api/v1/menu/items/", q, &out)
	return out, err
}

func (s *CatalogService) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error) {
	var out domain.MenuItem
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/menu/items/%d/", id), nil, &out)
	return out, err
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItem, error) {
	var out domain.MenuItem
	err := s.client.Post(ctx, "/api/v1/menu/items/", req, &out)
	return out, err
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, id int64, req domain.UpdateMenuItemRequest) (domain.MenuItem, error) {
	var out domain.MenuItem
	err := s.client.Patch(ctx, fmt.Sprintf("/api/v1/menu/items/%d/", id), req, &out)
	return out, err
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/v1/menu/items/%d/", id))
}

func (s *CatalogService) ToggleAvailability(ctx context.Context, id int64) (domain.MenuItem, error) {
	var out domain.MenuItem
	err := s.client.Post(ctx, fmt.Sprintf("/api/v1/menu/items/%d/toggle_availability/", id), nil, &out)
	return out, err
}

func (s *CatalogService) ReorderMenuItems(ctx context.Context, req domain.ReorderRequest) error {
	return s.client.Post(ctx, "/api/v1/menu/items/reorder/", req, nil)
}

func (s *CatalogService) ListTables(ctx context.Context, restaurantID int64) ([]domain.Table, error) {
	q := url.Values{"restaurant_id": {strconv.FormatInt(restaurantID, 10)}}
	var out []domain.Table
	err := s.client.Get(ctx, "/api/v1/tables/", q, &out)
	return out, err
}

func (s *CatalogService) GetTable(ctx context.Context, id int64) (domain.Table, error) {
	var out domain.Table
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/tables/%d/", id), nil, &out)
	return out, err
}

// StartQRSession resolves a scanned table and caches the session record so
// later orders can default to this table.
func (s *CatalogService) StartQRSession(ctx context.Context, tableID int64) (domain.QRSession, error) {
	table, err := s.GetTable(ctx, tableID)
	if err != nil {
		return domain.QRSession{}, err
	}
	session := domain.QRSession{
		RestaurantID: table.RestaurantID,
		TableID:      table.ID,
		TableNumber:  table.Number,
		StartedAt:    time.Now().UTC(),
	}
	if err := s.store.Set(storage.KeyQRSession, session); err != nil {
		return domain.QRSession{}, err
	}
	return session, nil
}
