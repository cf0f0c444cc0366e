package ordering

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

func newTestService(t *testing.T, handler http.HandlerFunc) *OrderingService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	client := api.New(
		config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second},
		api.NewCredentials(store),
		logger.New("ordering-test").WithOutput(io.Discard),
	)
	return NewOrderingService(client)
}

func validRequest() domain.CreateOrderRequest {
	table := 4
	return domain.CreateOrderRequest{
		RestaurantID: 1,
		CustomerName: "Alice",
		OrderType:    "dine_in",
		TableNumber:  &table,
		Items:        []domain.CreateOrderItem{{MenuItemID: 7, Quantity: 2}},
	}
}

func TestCreateOrder_Preconditions(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the backend")
	})

	tests := []struct {
		name   string
		mutate func(*domain.CreateOrderRequest)
	}{
		{"missing customer name", func(r *domain.CreateOrderRequest) { r.CustomerName = "" }},
		{"dine-in without table", func(r *domain.CreateOrderRequest) { r.TableNumber = nil }},
		{"delivery without address", func(r *domain.CreateOrderRequest) {
			r.OrderType = "delivery"
			r.TableNumber = nil
		}},
		{"no items", func(r *domain.CreateOrderRequest) { r.Items = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.CreateOrder(context.Background(), req)
			assert.Error(t, err)
		})
	}
}

func TestCreateOrder_Succeeds(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/orders/", r.URL.Path)
		w.Write([]byte(`{"data": {"id": 42, "status": "received", "total_amount": 19.0}}`))
	})

	order, err := svc.CreateOrder(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, "received", order.Status)
}

func TestGetProgress(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders/42/progress/", r.URL.Path)
		w.Write([]byte(`{"data": {
			"order_id": 42,
			"status": "preparing",
			"global_progress": 55,
			"categories": [{"category": "mains", "progress": 40, "items_total": 2, "items_ready": 1}],
			"gamification": {"level": 2, "points": 340, "badges": [{"code": "first_order", "tier": "bronze"}]}
		}}`))
	})

	p, err := svc.GetProgress(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 55.0, p.GlobalProgress)
	require.Len(t, p.Categories, 1)
	assert.Equal(t, "mains", p.Categories[0].Category)
	require.NotNil(t, p.Gamification)
	assert.Equal(t, 340, p.Gamification.Points)
}

func TestCancelOrder_PropagatesBackendError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "order already served", "code": "invalid_state"}`))
	})

	_, err := svc.CancelOrder(context.Background(), 42)
	require.Error(t, err)
	apiErr, ok := err.(*api.Error)
	require.True(t, ok)
	assert.Equal(t, "invalid_state", apiErr.Code)
}

func TestExportOrders_RejectsUnknownFormat(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the backend")
	})

	_, err := svc.ExportOrders(context.Background(), domain.ExportRequest{RestaurantID: 1, Format: "xlsx"})
	assert.Error(t, err)
}
