package sinkline

import (
	O "github.com/IBM/fp-go/v2/option"
)

// SinklineIf1 wraps inner with an enabled flag fixed at construction.
// The wrapper is a terminator: compose further operators onto inner
// before wrapping, not after. Wrapping again would treat Option[R] as an
// ordinary result type instead of special-casing it, which is never what
// callers want.
func SinklineIf1[A, R any](enabled bool, inner Consumer1[A, R]) Consumer1[A, O.Option[R]] {
	return func(a A) O.Option[R] {
		return CondCall(enabled, func() R { return inner(a) })
	}
}

// SinklineIfSink1 tests inner != nil at construction and behaves exactly
// like SinklineIf1 thereafter.
func SinklineIfSink1[A, R any](inner Consumer1[A, R]) Consumer1[A, O.Option[R]] {
	return SinklineIf1(inner != nil, inner)
}

// SinklineIf2 is SinklineIf1 generalized to two arguments.
func SinklineIf2[A1, A2, R any](enabled bool, inner Consumer2[A1, A2, R]) Consumer2[A1, A2, O.Option[R]] {
	return func(a1 A1, a2 A2) O.Option[R] {
		return CondCall(enabled, func() R { return inner(a1, a2) })
	}
}

// SinklineIfSink2 is SinklineIfSink1 generalized to two arguments.
func SinklineIfSink2[A1, A2, R any](inner Consumer2[A1, A2, R]) Consumer2[A1, A2, O.Option[R]] {
	return SinklineIf2(inner != nil, inner)
}
