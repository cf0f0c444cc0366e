package domain

// OrderProgress is the payload of GET /api/v1/orders/{id}/progress/.
type OrderProgress struct {
	OrderID        int64              `json:"order_id"`
	Status         string             `json:"status"`
	GlobalProgress float64            `json:"global_progress"` // 0..100
	Categories     []CategoryProgress `json:"categories"`
	Gamification   *Gamification      `json:"gamification,omitempty"`
}

type CategoryProgress struct {
	Category   string  `json:"category"`
	Progress   float64 `json:"progress"` // 0..100
	ItemsTotal int     `json:"items_total"`
	ItemsReady int     `json:"items_ready"`
}

// Gamification is computed server-side; the client only displays and scores it.
type Gamification struct {
	Level                int      `json:"level"`
	Points               int      `json:"points"`
	Badges               []Badge  `json:"badges"`
	EstimatedMinutesLeft *float64 `json:"estimated_minutes_left,omitempty"`
}

type Badge struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Tier  string `json:"tier"` // bronze | silver | gold
}
