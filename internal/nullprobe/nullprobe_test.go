package nullprobe_test

import (
	"testing"

	"github.com/sinkline-go/sinkline/internal/nullprobe"
	"github.com/stretchr/testify/assert"
)

func TestIsNilable(t *testing.T) {
	assert.False(t, nullprobe.IsNilable[int]())
	assert.False(t, nullprobe.IsNilable[string]())
	assert.True(t, nullprobe.IsNilable[*int]())
	assert.True(t, nullprobe.IsNilable[[]int]())
	assert.True(t, nullprobe.IsNilable[map[string]int]())
	assert.True(t, nullprobe.IsNilable[error]())
}

func TestProbeIncomparable(t *testing.T) {
	assert.Equal(t, nullprobe.Incomparable, nullprobe.Probe(42))
	assert.Equal(t, nullprobe.Incomparable, nullprobe.Probe("x"))
}

func TestProbeNilable(t *testing.T) {
	var nilPtr *int
	x := 5
	assert.Equal(t, nullprobe.True, nullprobe.Probe(nilPtr))
	assert.Equal(t, nullprobe.False, nullprobe.Probe(&x))

	var nilSlice []int
	assert.Equal(t, nullprobe.True, nullprobe.Probe(nilSlice))
	assert.Equal(t, nullprobe.False, nullprobe.Probe([]int{1}))
}

func TestOr(t *testing.T) {
	assert.Equal(t, nullprobe.True, nullprobe.True.Or(nullprobe.Incomparable))
	assert.Equal(t, nullprobe.True, nullprobe.Incomparable.Or(nullprobe.True))
	assert.Equal(t, nullprobe.False, nullprobe.False.Or(nullprobe.Incomparable))
	assert.Equal(t, nullprobe.False, nullprobe.False.Or(nullprobe.False))
	assert.Equal(t, nullprobe.Incomparable,
		nullprobe.Incomparable.Or(nullprobe.Incomparable))
	assert.Equal(t, nullprobe.True, nullprobe.True.Or(nullprobe.False))
}
