// Package cancellation provides a write-once cancellation flag that any number
// of goroutines can poll or wait on, plus Run, which races a task against it.
//
// Unlike context cancellation, cancelling a Signal never interrupts work that
// is already in flight: consumers decide when to look at the flag.
package cancellation

import (
	"context"
	"sync"
	"sync/atomic"
)

// Signal is a process-wide cancellation flag. It starts unset and can only
// transition to set; it is never reset.
//
// The zero value is not usable, create one with NewSignal.
type Signal struct {
	once sync.Once
	set  atomic.Bool
	done chan struct{}
}

// NewSignal returns an unset Signal.
func NewSignal() *Signal {
	return &Signal{
		done: make(chan struct{}),
	}
}

// Cancel sets the flag and wakes every waiter. Calling it more than once has
// the same effect as calling it once.
func (s *Signal) Cancel() {
	s.once.Do(func() {
		s.set.Store(true)
		close(s.done)
	})
}

// IsCancelled reports whether Cancel has been called. It never blocks.
func (s *Signal) IsCancelled() bool {
	return s.set.Load()
}

// Done returns a channel that is closed once the flag is set.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Outcome tells which side of Run finished first.
type Outcome int

const (
	// Completed means the task returned before cancellation was observed.
	Completed Outcome = iota

	// Cancelled means the signal (or the parent context) fired first.
	Cancelled
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Task is the unit of work raced by Run.
type Task func(ctx context.Context) error

// Run starts task in its own goroutine and returns as soon as either the task
// returns or sig is cancelled, whichever happens first. A done ctx counts as
// cancellation.
//
// When the task wins, its error is returned with Completed. When cancellation
// wins, Run returns Cancelled and a nil error without waiting for the task:
// the task keeps the context it was given and is expected to notice the
// signal on its own.
func Run(ctx context.Context, sig *Signal, task Task) (Outcome, error) {
	resultCh := make(chan error, 1)
	go func() {
		resultCh <- task(ctx)
	}()

	select {
	case err := <-resultCh:
		return Completed, err
	case <-sig.Done():
		return Cancelled, nil
	case <-ctx.Done():
		return Cancelled, nil
	}
}
