package sched

import (
	"log"
	"math"
	"runtime"
	"sync"
)

// Background is a scheduler owning one worker goroutine, a FIFO queue of
// Tasks, and a suspend/resume gate. Actions enqueued on the same
// Background run in enqueue order and never concurrently.
type Background struct {
	mu                  sync.Mutex
	cond                *sync.Cond
	queue               []Task
	running             bool
	suspendCount        int
	yieldBetweenActions bool
	logger              *log.Logger
}

// NewBackground starts a Background scheduler and its worker goroutine.
func NewBackground(opts ...Option) *Background {
	var cfg backgroundConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Background{
		running:             true,
		yieldBetweenActions: cfg.yieldBetweenActions,
		logger:              cfg.logger,
	}
	b.cond = sync.NewCond(&b.mu)
	go b.loop()
	runtime.SetFinalizer(b, (*Background).Shutdown)
	return b
}

// Enqueue implements Scheduler. A task submitted after Shutdown fails
// immediately with ErrShutdown instead of being silently dropped.
func (b *Background) Enqueue(t Task) {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		t.Fail(ErrShutdown)
		return
	}
	b.queue = append(b.queue, t)
	b.mu.Unlock()
	b.cond.Signal()
}

// Suspend gates the worker without tearing it down: it increments the
// suspension count, blocking the worker from draining the queue until a
// matching Resume. Overflow of the signed counter is reported rather
// than silently wrapping.
func (b *Background) Suspend() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.suspendCount == math.MaxInt {
		return ErrSuspendOverflow
	}
	b.suspendCount++
	return nil
}

// Resume reverses one Suspend. Calling Resume without a matching prior
// Suspend is reported as ErrResumeUnderflow rather than wrapping past
// zero.
func (b *Background) Resume() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.suspendCount == 0 {
		return ErrResumeUnderflow
	}
	b.suspendCount--
	if b.suspendCount == 0 {
		b.cond.Broadcast()
	}
	return nil
}

// Shutdown stops the worker after it finishes whatever batch it is
// currently executing. Any task still queued, not yet run, fails its
// future with ErrShutdown. Shutdown is idempotent and safe to call more
// than once, including from the finalizer NewBackground installs.
func (b *Background) Shutdown() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	b.running = false
	b.mu.Unlock()
	b.cond.Broadcast()
}

func (b *Background) loop() {
	for {
		b.mu.Lock()
		for b.running && (len(b.queue) == 0 || b.suspendCount > 0) {
			b.cond.Wait()
		}
		if !b.running {
			pending := b.queue
			b.queue = nil
			b.mu.Unlock()
			for _, t := range pending {
				t.Fail(ErrShutdown)
			}
			return
		}
		batch := b.queue
		b.queue = nil
		b.mu.Unlock()

		for _, t := range batch {
			b.runTask(t)
			if b.yieldBetweenActions {
				runtime.Gosched()
			}
		}
	}
}

func (b *Background) runTask(t Task) {
	defer func() {
		if r := recover(); r != nil && b.logger != nil {
			b.logger.Printf("sched: task panicked: %v", r)
		}
	}()
	t.Run()
}
