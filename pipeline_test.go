package sinkline_test

import (
	"strconv"
	"testing"

	"github.com/sinkline-go/sinkline"
	"github.com/stretchr/testify/assert"
)

func TestSinkline1Identity(t *testing.T) {
	terminal := sinkline.Consumer1[int, string](strconv.Itoa)
	composed := sinkline.Sinkline1(terminal)
	assert.Equal(t, "42", composed(42))
}

func TestMap1DoublesThenFormats(t *testing.T) {
	terminal := sinkline.Consumer1[int, string](strconv.Itoa)
	composed := sinkline.Sinkline2(
		sinkline.Map1[int, int, string](func(x int) int { return x * 2 }),
		terminal,
	)
	results := sinkline.FromSlice([]int{0, 1, 2, 21}, composed)
	assert.Equal(t, []string{"0", "2", "4", "42"}, results)
}

func TestSinkline3ChainsTwoOperators(t *testing.T) {
	terminal := sinkline.Consumer1[int, string](strconv.Itoa)
	composed := sinkline.Sinkline3(
		sinkline.Map1[int, int, string](func(x int) int { return x + 1 }),
		sinkline.Map1[int, int, string](func(x int) int { return x * 2 }),
		terminal,
	)
	assert.Equal(t, "6", composed(2)) // (2+1)*2 == 6
}

func TestJoin1Associative(t *testing.T) {
	terminal := sinkline.Consumer1[int, string](strconv.Itoa)
	addOne := sinkline.Map1[int, int, string](func(x int) int { return x + 1 })
	double := sinkline.Map1[int, int, string](func(x int) int { return x * 2 })
	triple := sinkline.Map1[int, int, string](func(x int) int { return x * 3 })

	left := sinkline.Join1(sinkline.Join1(addOne, double), triple)(terminal)
	right := sinkline.Join1(addOne, sinkline.Join1(double, triple))(terminal)

	assert.Equal(t, left(4), right(4))
	assert.Equal(t, "30", left(4)) // ((4+1)*2)*3 == 30
}
