package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestPush_AssignsIDAndShows(t *testing.T) {
	c := NewCenter()
	id := c.Push(Notification{Type: "info", Title: "Hi", Message: "there"})

	require.NotEmpty(t, id)
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.False(t, active[0].Leaving)
}

func TestAutoDismiss_LeavesThenRemoves(t *testing.T) {
	c := NewCenter()
	id := c.Push(Notification{Title: "bye", Duration: 30 * time.Millisecond})

	waitFor(t, func() bool {
		a := c.Active()
		return len(a) == 1 && a[0].Leaving
	}, "notification never flipped to leaving")

	waitFor(t, func() bool { return len(c.Active()) == 0 }, "notification never removed")
	_ = id
}

func TestDismiss_RemovesImmediately(t *testing.T) {
	c := NewCenter()
	id := c.Push(Notification{Title: "stay", Duration: time.Hour})

	c.Dismiss(id)
	assert.Empty(t, c.Active())

	// A later timer fire for the same id must be harmless.
	c.Dismiss(id)
}

func TestDismissAll(t *testing.T) {
	c := NewCenter()
	c.Push(Notification{Title: "a", Duration: time.Hour})
	c.Push(Notification{Title: "b", Duration: time.Hour})

	c.DismissAll()
	assert.Empty(t, c.Active())
}

func TestSubscribe_ReceivesSnapshots(t *testing.T) {
	c := NewCenter()

	var mu sync.Mutex
	var calls int
	var last []Notification
	c.Subscribe(func(list []Notification) {
		mu.Lock()
		calls++
		last = list
		mu.Unlock()
	})

	id := c.Push(Notification{Title: "x", Duration: time.Hour})
	mu.Lock()
	assert.Equal(t, 1, calls)
	require.Len(t, last, 1)
	mu.Unlock()

	c.Dismiss(id)
	mu.Lock()
	assert.Equal(t, 2, calls)
	assert.Empty(t, last)
	mu.Unlock()
}

func TestManualDismissCancelsTimers(t *testing.T) {
	c := NewCenter()
	id := c.Push(Notification{Title: "x", Duration: 20 * time.Millisecond})
	c.Dismiss(id)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, c.Active(), "nothing reappears after timers would have fired")
}
