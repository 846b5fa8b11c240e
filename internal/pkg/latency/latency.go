// Package latency models the artificial delay of the mock backend as an async
// boundary: an operation is handed back as a Future immediately and resolves
// once the configured delay has elapsed.
package latency

import (
	"context"
	"time"
)

// Simulator holds the delay applied before an operation runs.
// A nil or zero Simulator runs operations synchronously.
type Simulator struct {
	delay time.Duration
}

// NewSimulator creates a Simulator with the given delay
func NewSimulator(delay time.Duration) *Simulator {
	if delay < 0 {
		delay = 0
	}
	return &Simulator{delay: delay}
}

// Delay returns the configured delay
func (s *Simulator) Delay() time.Duration {
	if s == nil {
		return 0
	}
	return s.delay
}

// Future is the pending result of an operation started with Go.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Done is closed once the operation has run.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the operation has run or ctx is done. Abandoning the wait
// does not cancel the operation; its effect still applies when the delay ends.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Go schedules fn to run after the simulator's delay and returns immediately.
func Go[T any](s *Simulator, fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	if s.Delay() == 0 {
		f.value, f.err = fn()
		close(f.done)
		return f
	}

	go func() {
		timer := time.NewTimer(s.Delay())
		defer timer.Stop()
		<-timer.C
		f.value, f.err = fn()
		close(f.done)
	}()
	return f
}

// Run is Go followed by Await.
func Run[T any](ctx context.Context, s *Simulator, fn func() (T, error)) (T, error) {
	return Go(s, fn).Await(ctx)
}

// Exec is Run for operations without a result value.
func Exec(ctx context.Context, s *Simulator, fn func() error) error {
	_, err := Run(ctx, s, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
