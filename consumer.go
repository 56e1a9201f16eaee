package sinkline

// Consumer1 is a terminal or composed pipeline stage taking one argument.
// R is Unit for a void-producing consumer.
type Consumer1[A1, R any] func(A1) R

// Consumer2 is a terminal or composed pipeline stage taking two arguments.
type Consumer2[A1, A2, R any] func(A1, A2) R

// Consumer3 is a terminal or composed pipeline stage taking three
// arguments.
type Consumer3[A1, A2, A3, R any] func(A1, A2, A3) R

// Operator1 is the compose contract for a stage whose input and output
// arity is both one: given the next stage's consumer, produce a new
// consumer carrying the operator's captured state.
//
// An Operator1 value never runs on its own. Only applying it to a next
// consumer produces something callable.
type Operator1[A, B, R any] func(next Consumer1[B, R]) Consumer1[A, R]

// Operator2 is the compose contract for a stage that forwards two
// arguments to the next stage unchanged in shape.
type Operator2[A1, A2, B1, B2, R any] func(next Consumer2[B1, B2, R]) Consumer2[A1, A2, R]

// Operator3 is the compose contract for a stage that forwards three
// arguments to the next stage unchanged in shape.
type Operator3[A1, A2, A3, B1, B2, B3, R any] func(next Consumer3[B1, B2, B3, R]) Consumer3[A1, A2, A3, R]

// Sinkline1 composes a lone terminal consumer. Per the identity
// composition law, Sinkline1(t) is t itself.
func Sinkline1[A, R any](terminal Consumer1[A, R]) Consumer1[A, R] {
	return terminal
}

// Sinkline2 composes one operator with a terminal consumer.
func Sinkline2[A, B, R any](
	op1 Operator1[A, B, R], terminal Consumer1[B, R]) Consumer1[A, R] {
	return op1(terminal)
}

// Sinkline3 composes two operators with a terminal consumer, right to
// left: op1 is applied first to the pushed value, its output flows into
// op2, then into terminal.
func Sinkline3[A, B, C, R any](
	op1 Operator1[A, B, R],
	op2 Operator1[B, C, R],
	terminal Consumer1[C, R],
) Consumer1[A, R] {
	return op1(op2(terminal))
}

// Sinkline4 composes three operators with a terminal consumer.
func Sinkline4[A, B, C, D, R any](
	op1 Operator1[A, B, R],
	op2 Operator1[B, C, R],
	op3 Operator1[C, D, R],
	terminal Consumer1[D, R],
) Consumer1[A, R] {
	return op1(op2(op3(terminal)))
}

// Join1 joins two Operator1 values into a single Operator1. Composition
// is associative: Join1(a, Join1(b, c)) and Join1(Join1(a, b), c)
// produce equivalent consumers.
func Join1[A, B, C, R any](
	first Operator1[A, B, R], second Operator1[B, C, R]) Operator1[A, C, R] {
	return func(next Consumer1[C, R]) Consumer1[A, R] {
		return first(second(next))
	}
}
