package sinkline

import "sync"

// scanCell holds the single accumulator shared by one composed scan
// consumer, across however many times it is called.
type scanCell[A any] struct {
	mu  sync.Mutex
	acc A
}

// Scan1 returns an operator with accumulator type A and single input
// In. On each call it computes new = g(old_acc, input), stores new, and
// forwards new to next. The accumulator is guarded by a mutex that is
// released before next is invoked, so downstream work can never deadlock
// with the accumulator.
func Scan1[A, In, R any](initial A, g func(A, In) A) Operator1[In, A, R] {
	cell := &scanCell[A]{acc: initial}
	return func(next Consumer1[A, R]) Consumer1[In, R] {
		return func(in In) R {
			cell.mu.Lock()
			newAcc := g(cell.acc, in)
			cell.acc = newAcc
			cell.mu.Unlock()
			return next(newAcc)
		}
	}
}

// ScanUnlocked1 is Scan1 without the mutex. It is unsafe under
// concurrent callers; use it only when the composed consumer is known
// to be called from a single goroutine.
func ScanUnlocked1[A, In, R any](initial A, g func(A, In) A) Operator1[In, A, R] {
	cell := &scanCell[A]{acc: initial}
	return func(next Consumer1[A, R]) Consumer1[In, R] {
		return func(in In) R {
			cell.acc = g(cell.acc, in)
			return next(cell.acc)
		}
	}
}

// Scan2 is Scan1 generalized to a two-argument accumulation function.
// There is no unlocked variant at this arity; add one the same way as
// ScanUnlocked1 if a caller needs it.
func Scan2[A, In1, In2, R any](initial A, g func(A, In1, In2) A) func(next Consumer1[A, R]) Consumer2[In1, In2, R] {
	cell := &scanCell[A]{acc: initial}
	return func(next Consumer1[A, R]) Consumer2[In1, In2, R] {
		return func(in1 In1, in2 In2) R {
			cell.mu.Lock()
			newAcc := g(cell.acc, in1, in2)
			cell.acc = newAcc
			cell.mu.Unlock()
			return next(newAcc)
		}
	}
}
