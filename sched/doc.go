// Package sched provides the minimal concurrency substrate sinkline's
// ScheduleOn operator needs: a Scheduler interface that accepts Task
// values and runs them, an Immediate and a Background implementation,
// and Future[R]/Schedule as the uniform value/void futures plumbing
// used by every scheduler.
package sched
