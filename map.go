package sinkline

// Map1 returns an operator that applies f to the pushed value and
// forwards the result to next. Composed consumer: next(f(input)).
func Map1[A, B, R any](f func(A) B) Operator1[A, B, R] {
	return func(next Consumer1[B, R]) Consumer1[A, R] {
		return func(a A) R {
			return next(f(a))
		}
	}
}

// Map2 applies f to two pushed values, folding them into the single
// value the next stage expects.
func Map2[A1, A2, B, R any](f func(A1, A2) B) func(next Consumer1[B, R]) Consumer2[A1, A2, R] {
	return func(next Consumer1[B, R]) Consumer2[A1, A2, R] {
		return func(a1 A1, a2 A2) R {
			return next(f(a1, a2))
		}
	}
}

// Map3 applies f to three pushed values, folding them into the single
// value the next stage expects.
func Map3[A1, A2, A3, B, R any](f func(A1, A2, A3) B) func(next Consumer1[B, R]) Consumer3[A1, A2, A3, R] {
	return func(next Consumer1[B, R]) Consumer3[A1, A2, A3, R] {
		return func(a1 A1, a2 A2, a3 A3) R {
			return next(f(a1, a2, a3))
		}
	}
}
