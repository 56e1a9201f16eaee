package sinkline_test

import (
	"strconv"
	"testing"

	"github.com/sinkline-go/sinkline"
	"github.com/stretchr/testify/assert"
)

func TestSideEffectRunsThenForwards(t *testing.T) {
	var observed []int
	effect := sinkline.SideEffect1[int, string](func(x int) {
		observed = append(observed, x)
	})
	composed := effect(sinkline.Consumer1[int, string](strconv.Itoa))

	assert.Equal(t, "3", composed(3))
	assert.Equal(t, []int{3}, observed)
}
