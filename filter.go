package sinkline

import (
	O "github.com/IBM/fp-go/v2/option"
)

// CondCall calls f only when should is true and reports whether it
// fired as an Option (Some when fired, None when not). Option[Unit]
// stands in for a plain boolean result when R is Unit.
func CondCall[R any](should bool, f func() R) O.Option[R] {
	if !should {
		return O.None[R]()
	}
	return O.Some(f())
}

// Filter1 returns an operator that calls next only when p accepts the
// pushed value. Composed consumer returns Some(next(input)) when p(input)
// is true, None otherwise; next is never invoked on a dropped value.
func Filter1[A, R any](p func(A) bool) func(next Consumer1[A, R]) Consumer1[A, O.Option[R]] {
	return func(next Consumer1[A, R]) Consumer1[A, O.Option[R]] {
		return func(a A) O.Option[R] {
			return CondCall(p(a), func() R { return next(a) })
		}
	}
}

// Filter2 is Filter1 generalized to a two-argument predicate and next.
func Filter2[A1, A2, R any](p func(A1, A2) bool) func(next Consumer2[A1, A2, R]) Consumer2[A1, A2, O.Option[R]] {
	return func(next Consumer2[A1, A2, R]) Consumer2[A1, A2, O.Option[R]] {
		return func(a1 A1, a2 A2) O.Option[R] {
			return CondCall(p(a1, a2), func() R { return next(a1, a2) })
		}
	}
}

// Filter3 is Filter1 generalized to a three-argument predicate and next.
func Filter3[A1, A2, A3, R any](p func(A1, A2, A3) bool) func(next Consumer3[A1, A2, A3, R]) Consumer3[A1, A2, A3, O.Option[R]] {
	return func(next Consumer3[A1, A2, A3, R]) Consumer3[A1, A2, A3, O.Option[R]] {
		return func(a1 A1, a2 A2, a3 A3) O.Option[R] {
			return CondCall(p(a1, a2, a3), func() R { return next(a1, a2, a3) })
		}
	}
}
