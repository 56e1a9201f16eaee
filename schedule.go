package sinkline

import (
	"github.com/sinkline-go/sinkline/sched"
)

// ScheduleOn1 returns an operator that runs next(input) on s and returns
// immediately with the resulting future. Because input is a parameter of
// the returned consumer, it is captured by value in the closure passed
// to the scheduler; no reference into the caller's stack frame survives
// the suspension.
func ScheduleOn1[A, R any](s sched.Scheduler) func(next Consumer1[A, R]) Consumer1[A, *sched.Future[R]] {
	return func(next Consumer1[A, R]) Consumer1[A, *sched.Future[R]] {
		return func(a A) *sched.Future[R] {
			return sched.Schedule(s, func() (R, error) {
				return next(a), nil
			})
		}
	}
}

// ScheduleOn2 is ScheduleOn1 generalized to two arguments.
func ScheduleOn2[A1, A2, R any](s sched.Scheduler) func(next Consumer2[A1, A2, R]) Consumer2[A1, A2, *sched.Future[R]] {
	return func(next Consumer2[A1, A2, R]) Consumer2[A1, A2, *sched.Future[R]] {
		return func(a1 A1, a2 A2) *sched.Future[R] {
			return sched.Schedule(s, func() (R, error) {
				return next(a1, a2), nil
			})
		}
	}
}

// ScheduleOn3 is ScheduleOn1 generalized to three arguments.
func ScheduleOn3[A1, A2, A3, R any](s sched.Scheduler) func(next Consumer3[A1, A2, A3, R]) Consumer3[A1, A2, A3, *sched.Future[R]] {
	return func(next Consumer3[A1, A2, A3, R]) Consumer3[A1, A2, A3, *sched.Future[R]] {
		return func(a1 A1, a2 A2, a3 A3) *sched.Future[R] {
			return sched.Schedule(s, func() (R, error) {
				return next(a1, a2, a3), nil
			})
		}
	}
}
