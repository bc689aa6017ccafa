package wizard

import (
	"context"
	"sync"
	"time"
)

// tickInterval is a test seam; production countdowns tick once per second.
var tickInterval = time.Second

// Countdown is the resend gate used by phone-verification steps: a counter
// started at a fixed number of seconds, decremented by exactly one per tick,
// never going below zero. While Remaining() > 0 the resend control is
// disabled. Restarting stops the previous run first, so at most one ticker
// is active per countdown.
type Countdown struct {
	mu        sync.Mutex
	seconds   int
	remaining int
	cancel    context.CancelFunc
}

// NewCountdown builds a countdown of the given length. It starts expired:
// resend is enabled until Start is called.
func NewCountdown(seconds int) *Countdown {
	return &Countdown{seconds: seconds}
}

// Start begins (or restarts) the countdown, bound to ctx. The owning wizard
// passes its own scope so a closed wizard tears the ticker down.
func (c *Countdown) Start(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.remaining = c.seconds
	c.mu.Unlock()

	go c.run(runCtx)
}

func (c *Countdown) run(ctx context.Context) {
	t := time.NewTicker(tickInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if c.tick() == 0 {
				return
			}
		}
	}
}

// tick decrements the counter by one, clamping at zero, and returns the new
// value.
func (c *Countdown) tick() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining
}

// Remaining returns the seconds left until resend is enabled.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// CanResend reports whether the countdown has expired.
func (c *Countdown) CanResend() bool {
	return c.Remaining() == 0
}

// Stop halts the countdown without waiting for expiry. Idempotent.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
