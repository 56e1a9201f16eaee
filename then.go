package sinkline

// Then1 returns an operator for bridging callback-based APIs: g receives
// the pushed value and the next stage's consumer, and decides whether,
// how, and how many times to invoke it. next may be invoked zero or more
// times, including after g itself has returned, if the caller retains it.
func Then1[A, B, R any](g func(A, Consumer1[B, R]) R) Operator1[A, B, R] {
	return func(next Consumer1[B, R]) Consumer1[A, R] {
		return func(a A) R {
			return g(a, next)
		}
	}
}

// ThenTo2 is Then1 generalized to a next stage that itself takes two
// arguments, matching scenarios like
//
//	then(func(s string, next func(int, float64) R) R {
//	    return next(len(s), float64(len(s))*2) * 1.5
//	})
func ThenTo2[A, B1, B2, R any](g func(A, Consumer2[B1, B2, R]) R) func(next Consumer2[B1, B2, R]) Consumer1[A, R] {
	return func(next Consumer2[B1, B2, R]) Consumer1[A, R] {
		return func(a A) R {
			return g(a, next)
		}
	}
}
