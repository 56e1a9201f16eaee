package sched

import "errors"

// ErrShutdown is the error a Future settles with when its action was
// still queued, not yet run, at the moment the scheduler it was
// scheduled on was shut down.
var ErrShutdown = errors.New("sched: scheduler shut down before action ran")

// ErrSuspendOverflow is returned by Background.Suspend when the
// suspension counter would overflow its signed range.
var ErrSuspendOverflow = errors.New("sched: suspend counter overflow")

// ErrResumeUnderflow is returned by Background.Resume when called
// without a matching prior Suspend.
var ErrResumeUnderflow = errors.New("sched: resume without matching suspend")
