package sched

import (
	"fmt"
	"sync"
)

// Future is the handle a scheduled action's caller awaits. It settles
// exactly once, either with the action's return value or with the error
// it raised.
type Future[R any] struct {
	done  chan struct{}
	mu    sync.Mutex
	value R
	err   error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

func (f *Future[R]) settle(value R, err error) {
	f.mu.Lock()
	select {
	case <-f.done:
		f.mu.Unlock()
		return
	default:
	}
	f.value, f.err = value, err
	close(f.done)
	f.mu.Unlock()
}

// Done returns a channel closed once the future has settled.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future settles and returns its value and error.
func (f *Future[R]) Wait() (R, error) {
	<-f.done
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

// Task is one unit of scheduled work. Run performs the action and
// settles whatever future it closes over; Fail settles that same future
// with an error without running the action, used when a scheduler
// discards a queued task (e.g. on Shutdown).
type Task struct {
	Run  func()
	Fail func(error)
}

// Scheduler accepts Task values and runs them. It is the interface a
// concrete backend, including a platform dispatch-queue adapter outside
// this module's scope, must satisfy.
type Scheduler interface {
	Enqueue(t Task)
}

// Schedule runs action on s and returns a Future for its result.
// Generic over R: when R is sinkline.Unit, it uniformly threads an
// unused zero value instead of needing a separate void specialization.
func Schedule[R any](s Scheduler, action func() (R, error)) *Future[R] {
	future := newFuture[R]()
	s.Enqueue(Task{
		Run: func() {
			runPromisedAction(future, action)
		},
		Fail: func(err error) {
			var zero R
			future.settle(zero, err)
		},
	})
	return future
}

func runPromisedAction[R any](future *Future[R], action func() (R, error)) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			future.settle(zero, fmt.Errorf("sched: action panicked: %v", r))
		}
	}()
	value, err := action()
	future.settle(value, err)
}

// Reschedule adapts action, a callable of arity 1, into a new callable
// of the same signature whose invocation merely enqueues the original on
// s; the result is discarded. Arguments are captured by value at the
// call site.
func Reschedule[A any](s Scheduler, action func(A)) func(A) {
	return func(a A) {
		s.Enqueue(Task{
			Run:  func() { action(a) },
			Fail: func(error) {},
		})
	}
}
