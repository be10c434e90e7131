// Package schedule arms delayed callbacks and guarantees they can be
// cancelled. It ships a wall-clock scheduler, a manually advanced clock for
// deterministic tests, and Slot, a single owned timer guarded by a
// generation token.
package schedule

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer; false means it already fired or was stopped.
	Stop() bool
}

// Scheduler arms callbacks to run after a delay and reports the current time.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is a Scheduler backed by the runtime timer wheel. Callbacks run on
// their own goroutines.
type Real struct{}

// NewReal returns a wall-clock scheduler.
func NewReal() Real {
	return Real{}
}

// Now returns the current wall-clock time.
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc arms f to run once d has elapsed.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Compile-time interface checks.
var (
	_ Scheduler = Real{}
	_ Scheduler = (*Manual)(nil)
)
