// Package countdown provides a cancellable one-second countdown clock
// for the active-challenge phase. One Timer is created per challenge
// activation; its lifetime equals the lifetime of that phase.
package countdown

import (
	"sync"
	"time"
)

// Timer counts down from a fixed duration, reporting each remaining
// second and signalling expiry exactly once. Cancel is idempotent; no
// callbacks fire after cancellation or after expiry.
type Timer struct {
	interval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	stopped bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithInterval overrides the one-second tick interval. Used by tests.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) { t.interval = d }
}

// New creates an unstarted Timer.
func New(opts ...Option) *Timer {
	t := &Timer{interval: time.Second}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins the countdown. onTick is invoked after every elapsed
// interval with the remaining duration (the final tick reports zero);
// onExpire is invoked exactly once when the countdown reaches zero,
// unless Cancel was called first. Start must be called at most once.
func (t *Timer) Start(d time.Duration, onTick func(remaining time.Duration), onExpire func()) {
	t.mu.Lock()
	if t.stop != nil {
		t.mu.Unlock()
		return
	}
	t.stop = make(chan struct{})
	stop := t.stop
	t.mu.Unlock()

	go t.run(d, stop, onTick, onExpire)
}

func (t *Timer) run(d time.Duration, stop chan struct{}, onTick func(time.Duration), onExpire func()) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	remaining := d
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		remaining -= t.interval
		if remaining < 0 {
			remaining = 0
		}

		// Expiry wins the race against a concurrent Cancel: once claim
		// succeeds, the callbacks below are the timer's last.
		if remaining == 0 {
			if t.claimStop() {
				if onTick != nil {
					onTick(0)
				}
				if onExpire != nil {
					onExpire()
				}
			}
			return
		}

		if t.cancelled() {
			return
		}
		if onTick != nil {
			onTick(remaining)
		}
	}
}

// Cancel stops the countdown. Safe to call any number of times, before
// or after expiry.
func (t *Timer) Cancel() {
	t.claimStop()
}

// claimStop transitions the timer to its terminal state. It reports true
// for exactly one caller.
func (t *Timer) claimStop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	if t.stop != nil {
		close(t.stop)
	} else {
		// Cancelled before Start; leave a closed channel so a late
		// Start exits immediately.
		t.stop = make(chan struct{})
		close(t.stop)
	}
	return true
}

func (t *Timer) cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
