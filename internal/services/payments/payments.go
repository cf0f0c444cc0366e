package payments

import (
	"context"
	"errors"
	"fmt"

	"restaurant-client/internal/api"
	"restaurant-client/internal/domain"
)

type PaymentsServiceInterface interface {
	CreateStripeAccount(ctx context.Context, restaurantID int64) (domain.StripeAccountStatus, error)
	GetStripeAccountStatus(ctx context.Context, restaurantID int64) (domain.StripeAccountStatus, error)
	Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResponse, error)

	CreateSplitPayment(ctx context.Context, req domain.CreateSplitPaymentRequest) (domain.SplitPayment, error)
	GetSplitPayment(ctx context.Context, id int64) (domain.SplitPayment, error)
	PayShare(ctx context.Context, splitID int64, req domain.PayShareRequest) (domain.SplitPayment, error)
}

type PaymentsService struct {
	client *api.Client
}

func NewPaymentsService(client *api.Client) *PaymentsService {
	return &PaymentsService{client: client}
}

func (s *PaymentsService) CreateStripeAccount(ctx context.Context, restaurantID int64) (domain.StripeAccountStatus, error) {
	var out domain.StripeAccountStatus
	err := s.client.Post(ctx, "/api/v1/stripe/create-account/", map[string]int64{"restaurant_id": restaurantID}, &out)
	return out, err
}

func (s *PaymentsService) GetStripeAccountStatus(ctx context.Context, restaurantID int64) (domain.StripeAccountStatus, error) {
	var out domain.StripeAccountStatus
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/stripe/account-status/%d/", restaurantID), nil, &out)
	return out, err
}

func (s *PaymentsService) Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResponse, error) {
	if req.OrderID == 0 {
		return domain.CheckoutResponse{}, errors.New("order id is required")
	}
	var out domain.CheckoutResponse
	err := s.client.Post(ctx, "/api/v1/payments/checkout/", req, &out)
	return out, err
}

func (s *PaymentsService) CreateSplitPayment(ctx context.Context, req domain.CreateSplitPaymentRequest) (domain.SplitPayment, error) {
	switch req.Method {
	case "equal", "by_item", "custom":
	default:
		return domain.SplitPayment{}, fmt.Errorf("unsupported split method %q", req.Method)
	}
	var out domain.SplitPayment
	err := s.client.Post(ctx, "/api/v1/split-payments/", req, &out)
	return out, err
}

func (s *PaymentsService) GetSplitPayment(ctx context.Context, id int64) (domain.SplitPayment, error) {
	var out domain.SplitPayment
	err := s.client.Get(ctx, fmt.Sprintf("/api/v1/split-payments/%d/", id), nil, &out)
	return out, err
}

func (s *PaymentsService) PayShare(ctx context.Context, splitID int64, req domain.PayShareRequest) (domain.SplitPayment, error) {
	var out domain.SplitPayment
	err := s.client.Post(ctx, fmt.Sprintf("/api/v1/split-payments/%d/pay/", splitID), req, &out)
	return out, err
}
