// Package wizard implements the generic async step machine shared by the
// auth, event-creation, and registration-payment flows. The web client
// repeated the same step/busy/error pattern in three modals; here it is
// factored into one abstraction so the busy-flag, cleanup, and
// error-display contract lives in a single place.
package wizard

import (
	"context"
	"errors"
	"sync"
)

// Step names a state of a wizard instance ("login", "form", "payment", ...).
type Step string

var (
	// ErrBusy is returned when a submission arrives while another request
	// of the same wizard instance is still in flight.
	ErrBusy = errors.New("request already in flight")

	// ErrClosed is returned when the wizard has been closed; its state is
	// frozen and late completions are ignored.
	ErrClosed = errors.New("wizard closed")
)

// Wizard is a modal-scoped, multi-step state machine: the current step, a
// busy flag held exactly for the duration of one in-flight request, and an
// inline error message. Each instance owns a cancellation scope; Close
// tears it down so in-flight requests are cancelled and their results,
// should they still arrive, no longer mutate state.
type Wizard struct {
	mu      sync.Mutex
	initial Step
	step    Step
	busy    bool
	errMsg  string
	closed  bool
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(initial Step) *Wizard {
	ctx, cancel := context.WithCancel(context.Background())
	return &Wizard{initial: initial, step: initial, ctx: ctx, cancel: cancel}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// SetStep moves the wizard without running anything (user-driven
// navigation, e.g. "change number"). The inline error is cleared.
func (w *Wizard) SetStep(s Step) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.step = s
	w.errMsg = ""
}

// Busy reports whether a request of this instance is in flight.
func (w *Wizard) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// Err returns the inline error message for the active step, or "".
func (w *Wizard) Err() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// Context is the wizard's cancellation scope. Countdown timers and other
// helpers owned by this instance should be bound to it.
func (w *Wizard) Context() context.Context {
	return w.ctx
}

// Advance runs fn while holding the busy flag and, if fn succeeds, moves
// the wizard to next. The busy flag is cleared in a deferred block, so no
// outcome — success, server-reported failure, transport failure, or panic —
// can leave the instance permanently locked. On failure the wizard stays on
// its current step with fn's message displayed inline.
//
// fn receives a context cancelled when either the caller's ctx or the
// wizard's own scope is done; a completion arriving after Close is
// discarded without touching state.
func (w *Wizard) Advance(ctx context.Context, next Step, fn func(ctx context.Context) error) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	if w.busy {
		w.mu.Unlock()
		return ErrBusy
	}
	w.busy = true
	w.errMsg = ""
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}()

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	go func() {
		select {
		case <-w.ctx.Done():
			stop()
		case <-runCtx.Done():
		}
	}()

	err := fn(runCtx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if err != nil {
		w.errMsg = err.Error()
		return err
	}
	w.step = next
	return nil
}

// Reset returns an open wizard to its initial step, clearing the error.
// Used after the success-display delay.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.step = w.initial
	w.errMsg = ""
}

// Close cancels the wizard's scope and freezes its state. Idempotent.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	w.cancel()
}

// Closed reports whether Close has been called.
func (w *Wizard) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
