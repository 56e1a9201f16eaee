package sinkline_test

import (
	"testing"

	O "github.com/IBM/fp-go/v2/option"
	"github.com/sinkline-go/sinkline"
	"github.com/stretchr/testify/assert"
)

func TestIgnoreNull1DropsNilPassesNonNil(t *testing.T) {
	ignoreNull := sinkline.IgnoreNull1[*string, string]()
	next := sinkline.Consumer1[*string, string](func(s *string) string { return *s })
	composed := ignoreNull(next)

	assert.True(t, O.IsNone(composed(nil)))

	foobar := "foobar"
	assert.Equal(t, O.Some("foobar"), composed(&foobar))
}

func TestIgnoreNull1PanicsWhenNeverComparable(t *testing.T) {
	assert.Panics(t, func() {
		sinkline.IgnoreNull1[int, string]()
	})
}

func TestIgnoreNull2PassesWhenOnlyOneArgNullable(t *testing.T) {
	ignoreNull := sinkline.IgnoreNull2[int, *string, string]()
	next := sinkline.Consumer2[int, *string, string](func(n int, s *string) string {
		return *s
	})
	composed := ignoreNull(next)

	assert.True(t, O.IsNone(composed(1, nil)))

	foobar := "foobar"
	assert.Equal(t, O.Some("foobar"), composed(1, &foobar))
}
