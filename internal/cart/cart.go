package cart

import (
	"sync"

	"restaurant-client/internal/common/logger"
	"restaurant-client/internal/common/storage"
)

// Item is one cart line. Lines are identified by menu item id plus special
// instructions: the same dish with different instructions stays separate.
type Item struct {
	MenuItemID          int64   `json:"menu_item_id"`
	RestaurantID        int64   `json:"restaurant_id"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unit_price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

type state struct {
	RestaurantID int64  `json:"restaurant_id"`
	Items        []Item `json:"items"`
}

// Manager holds the cart in memory and mirrors every mutation to local
// storage under the cart key. The cart is scoped to one restaurant: adding an
// item from another restaurant resets it to just that item.
type Manager struct {
	mu    sync.Mutex
	st    state
	store storage.Store
	log   *logger.Logger
}

func NewManager(store storage.Store, log *logger.Logger) *Manager {
	m := &Manager{store: store, log: log}
	ok, err := store.Get(storage.KeyCart, &m.st)
	if err != nil {
		log.Error("cart_load_failed", err, nil)
	}
	if !ok {
		m.st = state{}
	}
	return m
}

func (m *Manager) persistLocked() {
	if err := m.store.Set(storage.KeyCart, m.st); err != nil {
		m.log.Error("cart_persist_failed", err, nil)
	}
}

// AddItem merges into an existing line when the item id and instructions
// match, otherwise appends. A quantity of 0 or less defaults to 1.
func (m *Manager) AddItem(item Item) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.st.RestaurantID != 0 && m.st.RestaurantID != item.RestaurantID {
		m.log.Info("cart_reset", map[string]any{"from_restaurant": m.st.RestaurantID, "to_restaurant": item.RestaurantID})
		m.st = state{}
	}
	m.st.RestaurantID = item.RestaurantID

	for i, line := range m.st.Items {
		if line.MenuItemID == item.MenuItemID && line.SpecialInstructions == item.SpecialInstructions {
			m.st.Items[i].Quantity += item.Quantity
			m.persistLocked()
			return
		}
	}
	m.st.Items = append(m.st.Items, item)
	m.persistLocked()
}

// SetQuantity updates a line; quantity <= 0 removes it.
func (m *Manager) SetQuantity(menuItemID int64, instructions string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, line := range m.st.Items {
		if line.MenuItemID == menuItemID && line.SpecialInstructions == instructions {
			if quantity <= 0 {
				m.st.Items = append(m.st.Items[:i], m.st.Items[i+1:]...)
			} else {
				m.st.Items[i].Quantity = quantity
			}
			if len(m.st.Items) == 0 {
				m.st = state{}
			}
			m.persistLocked()
			return
		}
	}
}

func (m *Manager) RemoveItem(menuItemID int64, instructions string) {
	m.SetQuantity(menuItemID, instructions, 0)
}

func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = state{}
	m.persistLocked()
}

func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Item, len(m.st.Items))
	copy(out, m.st.Items)
	return out
}

func (m *Manager) RestaurantID() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.RestaurantID
}

func (m *Manager) Subtotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum float64
	for _, line := range m.st.Items {
		sum += line.UnitPrice * float64(line.Quantity)
	}
	return sum
}

// Total equals Subtotal: tax and fees are computed server-side at checkout.
func (m *Manager) Total() float64 { return m.Subtotal() }

func (m *Manager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int
	for _, line := range m.st.Items {
		n += line.Quantity
	}
	return n
}
