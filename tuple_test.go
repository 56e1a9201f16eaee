package sinkline_test

import (
	"testing"

	O "github.com/IBM/fp-go/v2/option"
	T "github.com/IBM/fp-go/v2/tuple"
	"github.com/sinkline-go/sinkline"
	"github.com/stretchr/testify/assert"
)

func TestApplyTuple2(t *testing.T) {
	result := sinkline.ApplyTuple2(T.MakeTuple2(3, 4), func(a, b int) int { return a + b })
	assert.Equal(t, 7, result)
}

func TestFlatten2(t *testing.T) {
	assert.True(t, O.IsNone(sinkline.Flatten2(O.Some(1), O.None[string]())))

	flattened := sinkline.Flatten2(O.Some(1), O.Some("x"))
	assert.Equal(t, O.Some(T.MakeTuple2(1, "x")), flattened)
}
