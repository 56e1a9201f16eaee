package sinkline

import (
	E "github.com/IBM/fp-go/v2/either"
	O "github.com/IBM/fp-go/v2/option"
)

// ToEither disjoins a conditional-call result into an Either: Right of
// the produced value when the stage fired, Left of ifNone() when it did
// not. Useful for callers that want to disjoin a Filter/Combine/
// SinklineIf result without matching on Option directly.
func ToEither[L, R any](result O.Option[R], ifNone func() L) E.Either[L, R] {
	return O.MonadFold(result,
		func() E.Either[L, R] { return E.Left[R](ifNone()) },
		func(r R) E.Either[L, R] { return E.Right[L](r) },
	)
}
