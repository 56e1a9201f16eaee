package sinkline

import (
	O "github.com/IBM/fp-go/v2/option"
	T "github.com/IBM/fp-go/v2/tuple"
)

// ApplyTuple2 invokes f with the elements of a 2-tuple as positional
// arguments. Reduce2 is this same operation lifted to an operator.
func ApplyTuple2[A, B, R any](t T.Tuple2[A, B], f func(A, B) R) R {
	return f(t.F1, t.F2)
}

// ApplyTuple3 is ApplyTuple2 generalized to three elements.
func ApplyTuple3[A, B, C, R any](t T.Tuple3[A, B, C], f func(A, B, C) R) R {
	return f(t.F1, t.F2, t.F3)
}

// Flatten2 flattens a 2-tuple of Options into an Option of a 2-tuple:
// populated iff every slot is populated. Combine2 uses exactly this to
// decide whether to fire.
func Flatten2[A, B any](a O.Option[A], b O.Option[B]) O.Option[T.Tuple2[A, B]] {
	return O.SequenceT2(a, b)
}

// Flatten3 is Flatten2 generalized to three slots.
func Flatten3[A, B, C any](a O.Option[A], b O.Option[B], c O.Option[C]) O.Option[T.Tuple3[A, B, C]] {
	return O.SequenceT3(a, b, c)
}

// Flatten4 is Flatten2 generalized to four slots.
func Flatten4[A, B, C, D any](
	a O.Option[A], b O.Option[B], c O.Option[C], d O.Option[D],
) O.Option[T.Tuple4[A, B, C, D]] {
	return O.SequenceT4(a, b, c, d)
}
