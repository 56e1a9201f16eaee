package sched

import "log"

// backgroundConfig collects Background construction options.
type backgroundConfig struct {
	yieldBetweenActions bool
	logger              *log.Logger
}

// Option configures a Background scheduler at construction, the
// functional-options idiom used throughout the retrieved pack's
// constructors (e.g. concurrentqueue.Option, queue.Option).
type Option func(*backgroundConfig)

// WithWorkerYield makes the worker yield the OS scheduler between
// actions drained from the same batch.
func WithWorkerYield() Option {
	return func(c *backgroundConfig) {
		c.yieldBetweenActions = true
	}
}

// WithLogger reports a task that panicked instead of leaving it silent;
// nil (the default) means silent, matching a small library's "no forced
// dependency" texture.
func WithLogger(logger *log.Logger) Option {
	return func(c *backgroundConfig) {
		c.logger = logger
	}
}
