package sinkline

// SideEffect1 returns an operator that calls g for its effect, then
// forwards the unchanged input to next.
func SideEffect1[A, R any](g func(A)) Operator1[A, A, R] {
	return func(next Consumer1[A, R]) Consumer1[A, R] {
		return func(a A) R {
			g(a)
			return next(a)
		}
	}
}

// SideEffect2 is SideEffect1 generalized to two arguments.
func SideEffect2[A1, A2, R any](g func(A1, A2)) Operator2[A1, A2, A1, A2, R] {
	return func(next Consumer2[A1, A2, R]) Consumer2[A1, A2, R] {
		return func(a1 A1, a2 A2) R {
			g(a1, a2)
			return next(a1, a2)
		}
	}
}

// SideEffect3 is SideEffect1 generalized to three arguments.
func SideEffect3[A1, A2, A3, R any](g func(A1, A2, A3)) Operator3[A1, A2, A3, A1, A2, A3, R] {
	return func(next Consumer3[A1, A2, A3, R]) Consumer3[A1, A2, A3, R] {
		return func(a1 A1, a2 A2, a3 A3) R {
			g(a1, a2, a3)
			return next(a1, a2, a3)
		}
	}
}
