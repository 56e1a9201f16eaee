package sinkline

import (
	O "github.com/IBM/fp-go/v2/option"

	"github.com/sinkline-go/sinkline/internal/nullprobe"
)

// IgnoreNull1 returns an operator equivalent to Filter1 that passes the
// pushed value iff it is not null. It panics at construction time if A's
// type is never null-comparable: a single non-nilable argument can
// never be filtered on nullness, so building the stage at all is a
// programmer error.
func IgnoreNull1[A, R any]() func(next Consumer1[A, R]) Consumer1[A, O.Option[R]] {
	if !nullprobe.IsNilable[A]() {
		panic("sinkline: IgnoreNull1[A] requires A to be a null-comparable type")
	}
	return Filter1[A, R](func(a A) bool {
		return nullprobe.Probe(a) != nullprobe.True
	})
}

// IgnoreNull2 is IgnoreNull1 generalized to two arguments: the composed
// consumer passes iff neither argument is null. Construction panics only
// if neither A1 nor A2 is ever null-comparable.
func IgnoreNull2[A1, A2, R any]() func(next Consumer2[A1, A2, R]) Consumer2[A1, A2, O.Option[R]] {
	if !nullprobe.IsNilable[A1]() && !nullprobe.IsNilable[A2]() {
		panic("sinkline: IgnoreNull2[A1,A2] requires at least one null-comparable argument")
	}
	return Filter2[A1, A2, R](func(a1 A1, a2 A2) bool {
		combined := nullprobe.Probe(a1).Or(nullprobe.Probe(a2))
		return combined != nullprobe.True
	})
}

// IgnoreNull3 is IgnoreNull1 generalized to three arguments.
func IgnoreNull3[A1, A2, A3, R any]() func(next Consumer3[A1, A2, A3, R]) Consumer3[A1, A2, A3, O.Option[R]] {
	if !nullprobe.IsNilable[A1]() && !nullprobe.IsNilable[A2]() && !nullprobe.IsNilable[A3]() {
		panic("sinkline: IgnoreNull3[A1,A2,A3] requires at least one null-comparable argument")
	}
	return Filter3[A1, A2, A3, R](func(a1 A1, a2 A2, a3 A3) bool {
		combined := nullprobe.Probe(a1).Or(nullprobe.Probe(a2)).Or(nullprobe.Probe(a3))
		return combined != nullprobe.True
	})
}
