package sinkline

import (
	T "github.com/IBM/fp-go/v2/tuple"
)

// Reduce2 returns an operator that splats a 2-tuple into next's two
// positional arguments: next(t.F1, t.F2).
func Reduce2[A1, A2, R any]() func(next Consumer2[A1, A2, R]) Consumer1[T.Tuple2[A1, A2], R] {
	return func(next Consumer2[A1, A2, R]) Consumer1[T.Tuple2[A1, A2], R] {
		return func(t T.Tuple2[A1, A2]) R {
			return next(t.F1, t.F2)
		}
	}
}

// Reduce3 returns an operator that splats a 3-tuple into next's three
// positional arguments.
func Reduce3[A1, A2, A3, R any]() func(next Consumer3[A1, A2, A3, R]) Consumer1[T.Tuple3[A1, A2, A3], R] {
	return func(next Consumer3[A1, A2, A3, R]) Consumer1[T.Tuple3[A1, A2, A3], R] {
		return func(t T.Tuple3[A1, A2, A3]) R {
			return next(t.F1, t.F2, t.F3)
		}
	}
}
