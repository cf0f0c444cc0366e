package ordering

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"restaurant-client/internal/api"
	"restaurant-client/internal/domain"
)

type OrderingServiceInterface interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	ListOrders(ctx context.Context, restaurantID int64) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (domain.Order, error)
	CancelOrder(ctx context.Context, id int64) (domain.Order, error)
	GetProgress(ctx context.Context, id int64) (domain.OrderProgress, error)
	ExportOrders(ctx context.Context, req domain.ExportRequest) (domain.ExportResult, error)
}

type OrderingService struct {
	client *api.Client
}

func NewOrderingService(client *api.Client) *OrderingService {
	return &OrderingService{client: client}
}

// CreateOrder submits an order. The only client-side rules are presence
// checks the backend would reject anyway; everything else is server-owned.
func (s *OrderingService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if req.CustomerName == "" {
		return domain.Order{}, errors.New("customer name is required")
	}
	if req.OrderType == "dine_in" && req.TableNumber == nil {
		return domain.Order{}, errors.New("table number is required for dine-in orders")
	}
	if req.OrderType == "delivery" && req.DeliveryAddr == nil {
		return domain.Order{}, errors.New("delivery address is required for delivery orders")
	}
	if len(req.Items) == 0 {
		return domain.Order{}, errors.New("at least one item is required")
	}
	var out domain.Order
	err := s.client.Post(ctx, "/api/v1/orders/", req, &out)
	return out, err
}

func (s *OrderingService) ListOrders(ctx context.Context, restaurantID int64) ([]domain.Order, error) {
	q := url.Values{"restaurant_id": {strconv.FormatInt(restaurantID, 10)}}
	var out []domain.Order
	err := s.client.Get(ctx, "/api/v1/orders/", q, &out)
	return out, err
}

func (s *OrderingService) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	var out domain.Order
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/orders/%d/", id), nil, &out)
	return out, err
}

func (s *OrderingService) CancelOrder(ctx context.Context, id int64) (domain.Order, error) {
	var out domain.Order
	err := s.client.Post(ctx, fmt.Sprintf("/api/v1/orders/%d/cancel/", id), nil, &out)
	return out, err
}

// GetProgress fetches the tracking payload consumed by internal/tracking.
func (s *OrderingService) GetProgress(ctx context.Context, id int64) (domain.OrderProgress, error) {
	var out domain.OrderProgress
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/orders/%d/progress/", id), nil, &out)
	return out, err
}

func (s *OrderingService) ExportOrders(ctx context.Context, req domain.ExportRequest) (domain.ExportResult, error) {
	if req.Format != "csv" && req.Format != "json" {
		return domain.ExportResult{}, fmt.Errorf("unsupported export format %q", req.Format)
	}
	var out domain.ExportResult
	err := s.client.Post(ctx, "/api/v1/accounting/exports/", req, &out)
	return out, err
}
