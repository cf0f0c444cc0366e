package domain

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type CreateRestaurantRequest struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateCategoryRequest struct {
	RestaurantID int64  `json:"restaurant_id"`
	Name         string `json:"name"`
	Position     int    `json:"position"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty"`
	Position *int    `json:"position,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type CreateMenuItemRequest struct {
	RestaurantID int64   `json:"restaurant_id"`
	CategoryID   int64   `json:"category_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     *string `json:"image_url,omitempty"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	CategoryID  *int64   `json:"category_id,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// ReorderRequest moves items into the given id order within a category.
type ReorderRequest struct {
	CategoryID int64   `json:"category_id"`
	ItemIDs    []int64 `json:"item_ids"`
}

type CreateOrderItem struct {
	MenuItemID          int64  `json:"menu_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

type CreateOrderRequest struct {
	RestaurantID int64             `json:"restaurant_id"`
	CustomerName string            `json:"customer_name"`
	OrderType    string            `json:"order_type"`
	TableNumber  *int              `json:"table_number,omitempty"`
	DeliveryAddr *string           `json:"delivery_address,omitempty"`
	SessionID    *int64            `json:"session_id,omitempty"`
	Items        []CreateOrderItem `json:"items"`
}

type CreateSessionRequest struct {
	RestaurantID int64  `json:"restaurant_id"`
	TableID      *int64 `json:"table_id,omitempty"`
	HostName     string `json:"host_name"`
}

type JoinSessionRequest struct {
	ShareCode       string `json:"share_code"`
	ParticipantName string `json:"participant_name"`
}

type CreateSplitPaymentRequest struct {
	OrderID int64        `json:"order_id"`
	Method  string       `json:"method"`
	Shares  []SplitShare `json:"shares,omitempty"`
}

type PayShareRequest struct {
	ShareID       int64  `json:"share_id"`
	PaymentMethod string `json:"payment_method"`
}

type CheckoutRequest struct {
	OrderID       int64  `json:"order_id"`
	PaymentMethod string `json:"payment_method"`
	TipAmount     *float64 `json:"tip_amount,omitempty"`
}

type CheckoutResponse struct {
	PaymentID   string  `json:"payment_id"`
	Status      string  `json:"status"`
	AmountPaid  float64 `json:"amount_paid"`
	CheckoutURL *string `json:"checkout_url,omitempty"`
}

type ExportRequest struct {
	RestaurantID int64     `json:"restaurant_id"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	Format       string    `json:"format"` // csv | json
}

type ExportResult struct {
	URL       string    `json:"url"`
	Format    string    `json:"format"`
	RowCount  int       `json:"row_count"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RegisterDeviceRequest struct {
	DeviceID  string `json:"device_id"`
	PushToken string `json:"push_token"`
	Platform  string `json:"platform"`
}
