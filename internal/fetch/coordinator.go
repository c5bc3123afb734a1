package fetch

import (
	"context"
	"errors"

	"github.com/rshade/roster/internal/engine"
)

// Status is the lifecycle state of one fetch attempt.
type Status int

const (
	// StatusLoading means the attempt is still in flight.
	StatusLoading Status = iota
	// StatusReady means the attempt resolved with records.
	StatusReady
	// StatusFailed means the attempt resolved with an error.
	StatusFailed
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the observable outcome of a fetch attempt. ErrMessage is set
// only for StatusFailed.
type State struct {
	Status     Status
	Records    []engine.Record
	ErrMessage string
}

// Coordinator ties a single fetch attempt to one consumer lifetime. It
// transitions loading -> ready or loading -> failed at most once; after
// Cancel, a late resolution is suppressed entirely, so a cancelled attempt
// never mutates state and never reads as an error. There is no retry: a
// failed attempt stays failed until a new Coordinator replaces it.
type Coordinator struct {
	state     State
	cancel    context.CancelFunc
	cancelled bool
}

// NewCoordinator creates a Coordinator in the loading state.
func NewCoordinator() *Coordinator {
	return &Coordinator{state: State{Status: StatusLoading}}
}

// Start derives the cancellation context for the attempt from parent.
// Cancelling the Coordinator cancels that context.
func (c *Coordinator) Start(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	return ctx
}

// Resolve applies the outcome of the fetch attempt and reports whether
// state changed. Results arriving after Cancel, after an earlier
// resolution, or from a cancelled context are dropped.
func (c *Coordinator) Resolve(records []engine.Record, err error) bool {
	if c.cancelled || c.state.Status != StatusLoading {
		return false
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return false
		}
		c.state = State{Status: StatusFailed, ErrMessage: err.Error()}
		return true
	}

	c.state = State{Status: StatusReady, Records: records}
	return true
}

// Cancel detaches the consumer: the in-flight request is aborted and any
// eventual resolution becomes a no-op.
func (c *Coordinator) Cancel() {
	c.cancelled = true
	if c.cancel != nil {
		c.cancel()
	}
}

// State returns the current fetch state.
func (c *Coordinator) State() State {
	return c.state
}
