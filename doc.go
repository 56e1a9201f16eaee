// Package sinkline builds push-based processing pipelines from a small
// vocabulary of typed stages ("operators") terminated by a consumer.
//
// A pipeline is constructed once, by composing operators (Map, Filter,
// Scan, OnError, Recover, SideEffect, Then, ScheduleOn, Combine) with a
// terminal consumer. Values are then pushed in at the head, repeatedly:
// each operator transforms, filters, accumulates, routes, or reschedules
// the push before handing it to the next stage. Composed consumers are
// immutable after construction and safe to call arbitrarily many times.
//
// Every operator shares a single composition rule: it is a function that
// takes the next stage's consumer and returns a new consumer carrying the
// operator's captured state. Sinkline1..Sinkline4 (and Join1, for two
// operators) fold a sequence of operators into one head consumer by
// right-folding that application,
// generalized to stages that may drop, fan-in, or reschedule a push
// rather than only transform it.
//
// Go has no variadic generics, so operator arity is monomorphized by
// hand at 1, 2, and 3 arguments (Map1/Map2/Map3, Filter1/Filter2/Filter3,
// and so on) rather than expressed as a single arbitrary-arity type.
// Combine mirrors this at up to 4 inputs, the same ceiling
// github.com/IBM/fp-go/v2/tuple uses for its Tuple1..Tuple4 family.
package sinkline
