package sinkline

import (
	"sync"

	O "github.com/IBM/fp-go/v2/option"
	T "github.com/IBM/fp-go/v2/tuple"
)

// combineCell2 is the shared storage cell for a 2-input combine node: a
// tuple of options, one per input, that is never cleared after firing.
// Every subsequent update re-fires with the latest value of the other
// inputs.
type combineCell2[V1, V2 any] struct {
	mu    sync.Mutex
	slot1 O.Option[V1]
	slot2 O.Option[V2]
}

// Combine2 builds a 2-input join: sink is called with the unwrapped
// values the moment every slot holds one, and again on every subsequent
// update of either input. Each returned input consumer writes its slot
// and takes a snapshot of both slots under one mutex, then flattens and
// calls sink after releasing the lock, so concurrent writers always see
// a coherent snapshot and sink never runs while the node is held.
func Combine2[R, V1, V2 any](sink func(V1, V2) R) (
	input1 Consumer1[V1, O.Option[R]], input2 Consumer1[V2, O.Option[R]]) {
	cell := &combineCell2[V1, V2]{
		slot1: O.None[V1](),
		slot2: O.None[V2](),
	}
	input1 = func(v1 V1) O.Option[R] {
		cell.mu.Lock()
		cell.slot1 = O.Some(v1)
		flattened := O.SequenceT2(cell.slot1, cell.slot2)
		cell.mu.Unlock()
		return O.MonadMap(flattened, func(t T.Tuple2[V1, V2]) R {
			return sink(t.F1, t.F2)
		})
	}
	input2 = func(v2 V2) O.Option[R] {
		cell.mu.Lock()
		cell.slot2 = O.Some(v2)
		flattened := O.SequenceT2(cell.slot1, cell.slot2)
		cell.mu.Unlock()
		return O.MonadMap(flattened, func(t T.Tuple2[V1, V2]) R {
			return sink(t.F1, t.F2)
		})
	}
	return
}

// combineCell3 is the storage cell for a 3-input combine node.
type combineCell3[V1, V2, V3 any] struct {
	mu    sync.Mutex
	slot1 O.Option[V1]
	slot2 O.Option[V2]
	slot3 O.Option[V3]
}

// Combine3 is Combine2 generalized to three inputs.
func Combine3[R, V1, V2, V3 any](sink func(V1, V2, V3) R) (
	input1 Consumer1[V1, O.Option[R]],
	input2 Consumer1[V2, O.Option[R]],
	input3 Consumer1[V3, O.Option[R]]) {
	cell := &combineCell3[V1, V2, V3]{
		slot1: O.None[V1](),
		slot2: O.None[V2](),
		slot3: O.None[V3](),
	}
	apply := func(t T.Tuple3[V1, V2, V3]) R {
		return sink(t.F1, t.F2, t.F3)
	}
	input1 = func(v1 V1) O.Option[R] {
		cell.mu.Lock()
		cell.slot1 = O.Some(v1)
		flattened := O.SequenceT3(cell.slot1, cell.slot2, cell.slot3)
		cell.mu.Unlock()
		return O.MonadMap(flattened, apply)
	}
	input2 = func(v2 V2) O.Option[R] {
		cell.mu.Lock()
		cell.slot2 = O.Some(v2)
		flattened := O.SequenceT3(cell.slot1, cell.slot2, cell.slot3)
		cell.mu.Unlock()
		return O.MonadMap(flattened, apply)
	}
	input3 = func(v3 V3) O.Option[R] {
		cell.mu.Lock()
		cell.slot3 = O.Some(v3)
		flattened := O.SequenceT3(cell.slot1, cell.slot2, cell.slot3)
		cell.mu.Unlock()
		return O.MonadMap(flattened, apply)
	}
	return
}

// combineCell4 is the storage cell for a 4-input combine node.
type combineCell4[V1, V2, V3, V4 any] struct {
	mu    sync.Mutex
	slot1 O.Option[V1]
	slot2 O.Option[V2]
	slot3 O.Option[V3]
	slot4 O.Option[V4]
}

// Combine4 is Combine2 generalized to four inputs, the ceiling the
// IBM/fp-go/v2/tuple family itself stops at (Tuple1..Tuple4).
func Combine4[R, V1, V2, V3, V4 any](sink func(V1, V2, V3, V4) R) (
	input1 Consumer1[V1, O.Option[R]],
	input2 Consumer1[V2, O.Option[R]],
	input3 Consumer1[V3, O.Option[R]],
	input4 Consumer1[V4, O.Option[R]]) {
	cell := &combineCell4[V1, V2, V3, V4]{
		slot1: O.None[V1](),
		slot2: O.None[V2](),
		slot3: O.None[V3](),
		slot4: O.None[V4](),
	}
	apply := func(t T.Tuple4[V1, V2, V3, V4]) R {
		return sink(t.F1, t.F2, t.F3, t.F4)
	}
	input1 = func(v1 V1) O.Option[R] {
		cell.mu.Lock()
		cell.slot1 = O.Some(v1)
		flattened := O.SequenceT4(cell.slot1, cell.slot2, cell.slot3, cell.slot4)
		cell.mu.Unlock()
		return O.MonadMap(flattened, apply)
	}
	input2 = func(v2 V2) O.Option[R] {
		cell.mu.Lock()
		cell.slot2 = O.Some(v2)
		flattened := O.SequenceT4(cell.slot1, cell.slot2, cell.slot3, cell.slot4)
		cell.mu.Unlock()
		return O.MonadMap(flattened, apply)
	}
	input3 = func(v3 V3) O.Option[R] {
		cell.mu.Lock()
		cell.slot3 = O.Some(v3)
		flattened := O.SequenceT4(cell.slot1, cell.slot2, cell.slot3, cell.slot4)
		cell.mu.Unlock()
		return O.MonadMap(flattened, apply)
	}
	input4 = func(v4 V4) O.Option[R] {
		cell.mu.Lock()
		cell.slot4 = O.Some(v4)
		flattened := O.SequenceT4(cell.slot1, cell.slot2, cell.slot3, cell.slot4)
		cell.mu.Unlock()
		return O.MonadMap(flattened, apply)
	}
	return
}
