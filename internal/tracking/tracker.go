package tracking

import (
	"context"
	"math"
	"sync"
	"time"

	"restaurant-client/internal/common/logger"
	"restaurant-client/internal/domain"
)

const (
	historyCap = 50

	// A poll whose absolute progress delta is below this counts as no change.
	noChangeThreshold = 1.0
	// Consecutive no-change polls before the interval starts stretching.
	noChangeLimit = 3
	// Stretch factor once the order looks quiet.
	backoffFactor = 1.5

	rateWindow     = 5
	stagnantWindow = 3
	stagnantDelta  = 5.0
)

// Fetcher is the single endpoint the tracker needs. *ordering.OrderingService
// satisfies it.
type Fetcher interface {
	GetProgress(ctx context.Context, orderID int64) (domain.OrderProgress, error)
}

// Options control one subscription's pacing. Zero fields fall back to the
// tracker defaults.
type Options struct {
	InitialInterval time.Duration
	MinInterval     time.Duration
	MaxInterval     time.Duration
}

func DefaultOptions() Options {
	return Options{
		InitialInterval: 30 * time.Second,
		MinInterval:     15 * time.Second,
		MaxInterval:     60 * time.Second,
	}
}

func (o Options) merged(def Options) Options {
	if o.InitialInterval <= 0 {
		o.InitialInterval = def.InitialInterval
	}
	if o.MinInterval <= 0 {
		o.MinInterval = def.MinInterval
	}
	if o.MaxInterval <= 0 {
		o.MaxInterval = def.MaxInterval
	}
	return o
}

// Snapshot is one recorded progress sample, used for trend estimation.
type Snapshot struct {
	At       time.Time
	Progress float64
	Status   string
}

type Callback func(domain.OrderProgress)

// Tracker polls order progress on a self-rescheduling single-shot timer per
// order, stretching the interval while nothing moves and snapping back to the
// minimum when progress jumps. It keeps a bounded snapshot history per order
// for rate and stagnation estimates.
//
// It is an explicit instance: construct one and hand it to whoever needs it.
// Polls for one order are strictly sequential; the next timer is armed only
// after the previous fetch finished. Orders never share state beyond their
// own map entries.
type Tracker struct {
	fetcher Fetcher
	opts    Options
	log     *logger.Logger

	mu        sync.Mutex
	histories map[int64][]Snapshot
	subs      map[int64]*subscription

	now func() time.Time
}

type subscription struct {
	orderID      int64
	cb           Callback
	opts         Options
	timer        *time.Timer
	delay        time.Duration
	noChange     int
	lastProgress float64
	hasLast      bool
	stopped      bool
}

func New(fetcher Fetcher, opts Options, log *logger.Logger) *Tracker {
	return &Tracker{
		fetcher:   fetcher,
		opts:      opts.merged(DefaultOptions()),
		log:       log,
		histories: make(map[int64][]Snapshot),
		subs:      make(map[int64]*subscription),
		now:       time.Now,
	}
}

// GetOrderProgress does a single fetch and records the snapshot.
func (t *Tracker) GetOrderProgress(ctx context.Context, orderID int64) (domain.OrderProgress, error) {
	p, err := t.fetcher.GetProgress(ctx, orderID)
	if err != nil {
		return domain.OrderProgress{}, err
	}
	t.record(orderID, p)
	return p, nil
}

// Subscribe starts polling orderID and returns an unsubscribe func. The
// first poll fires immediately; each later poll is scheduled by the previous
// one so the delay can change between polls. Subscribing twice for the same
// order cancels the earlier subscription's pending timer.
func (t *Tracker) Subscribe(orderID int64, cb Callback, opts Options) func() {
	opts = opts.merged(t.opts)

	sub := &subscription{
		orderID: orderID,
		cb:      cb,
		opts:    opts,
		delay:   opts.InitialInterval,
	}

	t.mu.Lock()
	if old, ok := t.subs[orderID]; ok {
		old.stopLocked()
	}
	t.subs[orderID] = sub
	sub.timer = time.AfterFunc(0, func() { t.poll(sub) })
	t.mu.Unlock()

	t.log.Info("tracking_started", map[string]any{"order_id": orderID, "interval_ms": opts.InitialInterval.Milliseconds()})

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if cur, ok := t.subs[orderID]; ok && cur == sub {
			delete(t.subs, orderID)
		}
		sub.stopLocked()
	}
}

// stopLocked cancels the pending timer. An in-flight fetch cannot be
// cancelled; it will finish, record its snapshot, and then see the flag.
func (s *subscription) stopLocked() {
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
	}
}

func (t *Tracker) poll(sub *subscription) {
	t.mu.Lock()
	if sub.stopped {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	p, err := t.fetcher.GetProgress(context.Background(), sub.orderID)
	if err != nil {
		// Errors never reach the subscriber: log, double the delay, retry.
		// The error path delay is not capped at MaxInterval.
		t.log.Error("poll_failed", err, map[string]any{"order_id": sub.orderID})
		t.mu.Lock()
		if !sub.stopped {
			sub.delay *= 2
			t.armLocked(sub)
		}
		t.mu.Unlock()
		return
	}

	t.record(sub.orderID, p)

	t.mu.Lock()
	if sub.stopped {
		t.mu.Unlock()
		return
	}

	if sub.hasLast {
		delta := math.Abs(p.GlobalProgress - sub.lastProgress)
		sub.delay, sub.noChange = nextDelay(sub.delay, sub.noChange, delta, sub.opts)
	}
	sub.lastProgress = p.GlobalProgress
	sub.hasLast = true

	done := p.Status == domain.OrderStatusServed || p.GlobalProgress >= 100
	if done {
		sub.stopped = true
		if cur, ok := t.subs[sub.orderID]; ok && cur == sub {
			delete(t.subs, sub.orderID)
		}
	} else {
		t.armLocked(sub)
	}
	t.mu.Unlock()

	sub.cb(p)

	if done {
		t.log.Info("tracking_finished", map[string]any{"order_id": sub.orderID, "status": p.Status, "progress": p.GlobalProgress})
	}
}

// nextDelay applies the adaptive interval rules to one successful poll:
// three consecutive quiet polls start stretching the delay by backoffFactor
// up to MaxInterval; any real movement snaps it back to MinInterval.
func nextDelay(cur time.Duration, noChange int, delta float64, opts Options) (time.Duration, int) {
	if delta < noChangeThreshold {
		noChange++
		if noChange >= noChangeLimit {
			cur = minDuration(time.Duration(float64(cur)*backoffFactor), opts.MaxInterval)
		}
		return cur, noChange
	}
	return opts.MinInterval, 0
}

func (t *Tracker) armLocked(sub *subscription) {
	sub.timer = time.AfterFunc(sub.delay, func() { t.poll(sub) })
}

func (t *Tracker) record(orderID int64, p domain.OrderProgress) {
	snap := Snapshot{At: t.now(), Progress: p.GlobalProgress, Status: p.Status}
	t.mu.Lock()
	defer t.mu.Unlock()
	h := append(t.histories[orderID], snap)
	if len(h) > historyCap {
		h = h[len(h)-historyCap:]
	}
	t.histories[orderID] = h
}

// History returns a copy of the recorded snapshots for an order.
func (t *Tracker) History(orderID int64) []Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := t.histories[orderID]
	out := make([]Snapshot, len(h))
	copy(out, h)
	return out
}

// ClearHistory discards the snapshot buffer for an order.
func (t *Tracker) ClearHistory(orderID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.histories, orderID)
}

// StopAll cancels every active subscription. Histories are kept.
func (t *Tracker) StopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, sub := range t.subs {
		sub.stopLocked()
		delete(t.subs, id)
	}
}

// ProgressionRate returns the finite-difference slope over the last (at most
// five) snapshots, in progress points per minute. ok is false with fewer than
// two snapshots or zero elapsed time.
func (t *Tracker) ProgressionRate(orderID int64) (float64, bool) {
	window := t.lastSnapshots(orderID, rateWindow)
	if len(window) < 2 {
		return 0, false
	}
	first, last := window[0], window[len(window)-1]
	elapsed := last.At.Sub(first.At)
	if elapsed <= 0 {
		return 0, false
	}
	return (last.Progress - first.Progress) / elapsed.Minutes(), true
}

// PredictRemainingTime estimates minutes until completion: from the local
// rate when it is positive, else from the server estimate when present.
func (t *Tracker) PredictRemainingTime(orderID int64, cur domain.OrderProgress) (float64, bool) {
	if rate, ok := t.ProgressionRate(orderID); ok && rate > 0 {
		return (100 - cur.GlobalProgress) / rate, true
	}
	if cur.Gamification != nil && cur.Gamification.EstimatedMinutesLeft != nil {
		return *cur.Gamification.EstimatedMinutesLeft, true
	}
	return 0, false
}

// IsStagnant reports whether the last (at most three) snapshots span more
// than threshold while progress moved by less than five points.
func (t *Tracker) IsStagnant(orderID int64, threshold time.Duration) bool {
	window := t.lastSnapshots(orderID, stagnantWindow)
	if len(window) < 2 {
		return false
	}
	first, last := window[0], window[len(window)-1]
	elapsed := last.At.Sub(first.At)
	return elapsed > threshold && math.Abs(last.Progress-first.Progress) < stagnantDelta
}

func (t *Tracker) lastSnapshots(orderID int64, n int) []Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := t.histories[orderID]
	if len(h) > n {
		h = h[len(h)-n:]
	}
	out := make([]Snapshot, len(h))
	copy(out, h)
	return out
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
