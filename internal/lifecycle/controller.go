// Package lifecycle drives a long-running pipeline under a single
// cancellation signal that is set either by an operator interrupt or by the
// pipeline finishing on its own.
package lifecycle

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/x/cancellation"
)

// State is the controller's position in its lifecycle.
type State int32

const (
	// Running is the initial state: the pipeline is executing and no
	// interrupt has been seen.
	Running State = iota

	// Cancelling means an interrupt set the signal and the pipeline has not
	// returned yet.
	Cancelling

	// Done means the pipeline returned, whatever its outcome.
	Done
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Cancelling:
		return "cancelling"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Pipeline is the work supervised by a Controller. It receives the shared
// cancellation signal and must poll it cooperatively.
type Pipeline func(ctx context.Context, sig *cancellation.Signal) error

// Controller owns the cancellation signal for one pipeline run.
type Controller struct {
	state      atomic.Int32
	signal     *cancellation.Signal
	interrupts <-chan os.Signal
	done       chan struct{}
}

// New creates a Controller that treats the first value received on
// interrupts as an operator request to stop. A nil channel disables
// interrupt handling.
func New(interrupts <-chan os.Signal) *Controller {
	return &Controller{
		signal:     cancellation.NewSignal(),
		interrupts: interrupts,
		done:       make(chan struct{}),
	}
}

// Signal returns the cancellation signal shared with the pipeline.
func (c *Controller) Signal() *cancellation.Signal {
	return c.signal
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Wait blocks until the pipeline started by Run has returned or ctx is done.
// After Run reports cancellation.Cancelled it gives the pipeline a bounded
// chance to observe the signal before its collaborators are released.
func (c *Controller) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// awaitInterrupt blocks until an interrupt arrives or ctx is done. On
// interrupt it moves Running to Cancelling and sets the signal.
func (c *Controller) awaitInterrupt(ctx context.Context) {
	var sig os.Signal
	select {
	case <-ctx.Done():
		return
	case s, ok := <-c.interrupts:
		if !ok {
			return
		}
		sig = s
	}

	logger.Info(ctx, "interrupt received, requesting cooperative shutdown", "signal", sig.String())
	c.state.CompareAndSwap(int32(Running), int32(Cancelling))
	c.signal.Cancel()
}

// Run executes p and returns as soon as either p returns or the signal is
// set by an interrupt. It must be called at most once per Controller.
//
// When p returns first, its error is returned with cancellation.Completed and
// the signal is set, marking natural completion. When the interrupt wins,
// Run returns cancellation.Cancelled without waiting for p; p keeps running
// until it observes the signal, and the state moves to Done only then. Use
// Wait to block until that happens.
func (c *Controller) Run(ctx context.Context, p Pipeline) (cancellation.Outcome, error) {
	waitCtx, stopWaiting := context.WithCancel(ctx)
	defer stopWaiting()

	if c.interrupts != nil {
		go c.awaitInterrupt(waitCtx)
	}

	outcome, err := cancellation.Run(ctx, c.signal, func(ctx context.Context) error {
		defer func() {
			c.state.Store(int32(Done))
			close(c.done)
		}()
		return p(ctx, c.signal)
	})

	c.signal.Cancel()
	return outcome, err
}
