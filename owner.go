package rubikscube

import (
	"context"
	"fmt"
)

// request is one unit of work for the owning goroutine.
type request struct {
	fn   func(*Engine)
	done chan struct{}
}

// Owner serializes access to an Engine from many goroutines. A single
// goroutine started by Run performs every request in arrival order, so each
// move is fully applied before the next one is read.
type Owner struct {
	engine   *Engine
	requests chan request
	stopped  chan struct{}
}

// NewOwner wraps an engine. Call Run before issuing requests.
func NewOwner(e *Engine) *Owner {
	return &Owner{
		engine:   e,
		requests: make(chan request),
		stopped:  make(chan struct{}),
	}
}

// Run processes requests until ctx is done.
func (o *Owner) Run(ctx context.Context) {
	defer close(o.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-o.requests:
			req.fn(o.engine)
			close(req.done)
		}
	}
}

// Do runs fn on the owning goroutine and waits for it to finish.
func (o *Owner) Do(ctx context.Context, fn func(*Engine)) error {
	req := request{fn: fn, done: make(chan struct{})}

	select {
	case o.requests <- req:
	case <-o.stopped:
		return ErrOwnerStopped
	case <-ctx.Done():
		return fmt.Errorf("submitting request: %w", ctx.Err())
	}

	// Once accepted the request always runs to completion.
	<-req.done
	return nil
}

// Apply performs one move token.
func (o *Owner) Apply(ctx context.Context, token string) (Outcome, error) {
	var (
		outcome Outcome
		moveErr error
	)
	if err := o.Do(ctx, func(e *Engine) {
		outcome, moveErr = e.ApplyToken(token)
	}); err != nil {
		return Unrecognized, err
	}
	return outcome, moveErr
}

// Randomize shuffles the cube using the engine's configured mode.
func (o *Owner) Randomize(ctx context.Context) ([]Move, error) {
	var moves []Move
	err := o.Do(ctx, func(e *Engine) {
		moves = e.Randomize()
	})
	return moves, err
}

// Reset returns the cube to the solved state.
func (o *Owner) Reset(ctx context.Context) error {
	return o.Do(ctx, func(e *Engine) {
		e.Reset()
	})
}

// Snapshot returns a copy of the current cube.
func (o *Owner) Snapshot(ctx context.Context) (*Cube, error) {
	var c *Cube
	err := o.Do(ctx, func(e *Engine) {
		c = e.Cube()
	})
	return c, err
}
