package domain

import "time"

type Restaurant struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       *string `json:"phone,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	IsActive    bool    `json:"is_active"`
	OwnerID     int64   `json:"owner_id"`
	Description *string `json:"description,omitempty"`
}

type MenuCategory struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurant_id"`
	Name         string `json:"name"`
	Position     int    `json:"position"`
	IsActive     bool   `json:"is_active"`
}

type MenuItem struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurant_id"`
	CategoryID   int64   `json:"category_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     *string `json:"image_url,omitempty"`
	IsAvailable  bool    `json:"is_available"`
	Position     int     `json:"position"`
}

type Table struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurant_id"`
	Number       int     `json:"number"`
	Seats        int     `json:"seats"`
	QRCode       *string `json:"qr_code,omitempty"`
}

// QRSession is the record cached locally after scanning a table QR code.
type QRSession struct {
	RestaurantID int64     `json:"restaurant_id"`
	TableID      int64     `json:"table_id"`
	TableNumber  int       `json:"table_number"`
	StartedAt    time.Time `json:"started_at"`
}

type OrderItem struct {
	ID                  int64   `json:"id"`
	MenuItemID          int64   `json:"menu_item_id"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
	Status              string  `json:"status"`
}

type Order struct {
	ID           int64       `json:"id"`
	RestaurantID int64       `json:"restaurant_id"`
	CustomerName string      `json:"customer_name"`
	OrderType    string      `json:"order_type"` // dine_in | takeout | delivery
	TableNumber  *int        `json:"table_number,omitempty"`
	DeliveryAddr *string     `json:"delivery_address,omitempty"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"total_amount"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Order statuses as reported by the backend. "served" terminates tracking.
const (
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"
	OrderStatusCancelled = "cancelled"
)

// CollabSession is server-owned; the client displays it and never enforces
// its invariants.
type CollabSession struct {
	ID           int64         `json:"id"`
	ShareCode    string        `json:"share_code"`
	RestaurantID int64         `json:"restaurant_id"`
	TableID      *int64        `json:"table_id,omitempty"`
	HostName     string        `json:"host_name"`
	IsLocked     bool          `json:"is_locked"`
	IsCompleted  bool          `json:"is_completed"`
	Participants []Participant `json:"participants"`
	CreatedAt    time.Time     `json:"created_at"`
}

type Participant struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsHost   bool   `json:"is_host"`
	JoinedAt string `json:"joined_at"`
}

type SplitShare struct {
	ID              int64   `json:"id"`
	ParticipantName string  `json:"participant_name"`
	Amount          float64 `json:"amount"`
	IsPaid          bool    `json:"is_paid"`
}

type SplitPayment struct {
	ID          int64        `json:"id"`
	OrderID     int64        `json:"order_id"`
	Method      string       `json:"method"` // equal | by_item | custom
	TotalAmount float64      `json:"total_amount"`
	Shares      []SplitShare `json:"shares"`
	IsSettled   bool         `json:"is_settled"`
}

// StripeAccountStatus: Status is optional on the wire, so it stays a pointer
// instead of defaulting to an empty string.
type StripeAccountStatus struct {
	AccountID      string  `json:"account_id"`
	Status         *string `json:"status,omitempty"`
	ChargesEnabled bool    `json:"charges_enabled"`
	PayoutsEnabled bool    `json:"payouts_enabled"`
}
