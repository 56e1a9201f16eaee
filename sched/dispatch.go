package sched

// HasDispatchQueueBackend reports whether this module ships a concrete
// platform dispatch-queue Scheduler. It does not: a concrete backend is
// expected to satisfy Scheduler itself and is wired in by its own
// platform-specific package, not by sched.
const HasDispatchQueueBackend = false

// HasNativeBlockCallables reports whether the host platform offers a
// native block/closure-with-ABI value sinkline can coerce callables
// into. Go has no such ABI, so this is always false and AsBlock is the
// identity adapter.
const HasNativeBlockCallables = false

// AsBlock coerces a callable into the platform's native block-callable
// representation for interop with platform APIs that expect one. When
// HasNativeBlockCallables is false, as it always is in this module,
// AsBlock is the identity function.
func AsBlock[F any](f F) F {
	return f
}
