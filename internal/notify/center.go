package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultDuration = 4 * time.Second
	// Grace period between flipping to leaving and removal, matching the
	// 300ms exit animation the UI plays.
	exitDelay = 300 * time.Millisecond
)

type Notification struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"` // info | success | warning | error
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Action   *Action       `json:"action,omitempty"`
	Duration time.Duration `json:"-"`
	Leaving  bool          `json:"leaving"`
}

type Action struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// Center holds the transient toast list. Each pushed notification flips to
// leaving after its duration and is removed after the exit delay; Dismiss
// removes immediately. Listeners get the full list after every change.
type Center struct {
	mu        sync.Mutex
	active    []Notification
	timers    map[string]*time.Timer
	listeners []func([]Notification)
}

func NewCenter() *Center {
	return &Center{timers: make(map[string]*time.Timer)}
}

// Subscribe registers a listener for list changes. Listeners are invoked
// synchronously with a snapshot, never with internal slices.
func (c *Center) Subscribe(fn func([]Notification)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// Push shows a notification and returns its id.
func (c *Center) Push(n Notification) string {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Duration <= 0 {
		n.Duration = DefaultDuration
	}

	c.mu.Lock()
	c.active = append(c.active, n)
	id := n.ID
	c.timers[id] = time.AfterFunc(n.Duration, func() { c.beginExit(id) })
	c.notifyLocked()
	c.mu.Unlock()
	return id
}

func (c *Center) beginExit(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.active {
		if c.active[i].ID == id {
			c.active[i].Leaving = true
			c.timers[id] = time.AfterFunc(exitDelay, func() { c.Dismiss(id) })
			c.notifyLocked()
			return
		}
	}
}

// Dismiss removes a notification immediately and cancels its timers.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	for i := range c.active {
		if c.active[i].ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			c.notifyLocked()
			return
		}
	}
}

// DismissAll clears every notification.
func (c *Center) DismissAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.active = nil
	c.notifyLocked()
}

// Active returns a snapshot of the current list.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Center) snapshotLocked() []Notification {
	out := make([]Notification, len(c.active))
	copy(out, c.active)
	return out
}

func (c *Center) notifyLocked() {
	snap := c.snapshotLocked()
	for _, fn := range c.listeners {
		fn(snap)
	}
}
