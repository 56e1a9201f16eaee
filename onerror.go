package sinkline

// OnErrorFunc returns an operator fixed at arity 2, error first: the
// composed consumer extracts e, and when truthy(e) is true it calls
// h(e) and returns the result without invoking next; otherwise it calls
// next(v). Callers whose E is a plain Go error should use OnError
// instead, which fixes truthy to err != nil.
func OnErrorFunc[E, V, R any](
	h func(E) R, truthy func(E) bool) func(next Consumer1[V, R]) Consumer2[E, V, R] {
	return func(next Consumer1[V, R]) Consumer2[E, V, R] {
		return func(e E, v V) R {
			if truthy(e) {
				return h(e)
			}
			return next(v)
		}
	}
}

// OnErrorFuncLast is OnErrorFunc with the error argument last instead of
// first.
func OnErrorFuncLast[V, E, R any](
	h func(E) R, truthy func(E) bool) func(next Consumer1[V, R]) Consumer2[V, E, R] {
	return func(next Consumer1[V, R]) Consumer2[V, E, R] {
		return func(v V, e E) R {
			if truthy(e) {
				return h(e)
			}
			return next(v)
		}
	}
}

// OnError is OnErrorFunc specialized to a plain Go error: truthy is
// err != nil, the ordinary case for in-pipeline domain errors.
func OnError[V, R any](h func(error) R) func(next Consumer1[V, R]) Consumer2[error, V, R] {
	return OnErrorFunc[error, V, R](h, func(err error) bool { return err != nil })
}

// OnErrorLast is OnError with the error argument last.
func OnErrorLast[V, R any](h func(error) R) func(next Consumer1[V, R]) Consumer2[V, error, R] {
	return OnErrorFuncLast[V, error, R](h, func(err error) bool { return err != nil })
}
