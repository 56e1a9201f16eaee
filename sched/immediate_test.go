package sched_test

import (
	"errors"
	"testing"

	"github.com/sinkline-go/sinkline/sched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmediateRunsBeforeReturning(t *testing.T) {
	ran := false
	future := sched.Schedule[int](sched.Immediate, func() (int, error) {
		ran = true
		return 42, nil
	})

	assert.True(t, ran)
	select {
	case <-future.Done():
	default:
		t.Fatal("future should already be settled")
	}

	value, err := future.Wait()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestImmediatePropagatesActionError(t *testing.T) {
	boom := errors.New("boom")
	future := sched.Schedule[int](sched.Immediate, func() (int, error) {
		return 0, boom
	})

	_, err := future.Wait()
	assert.Equal(t, boom, err)
}
