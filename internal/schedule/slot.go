package schedule

import "time"

// Slot owns at most one pending timer. Every Arm or Cancel bumps a
// generation counter, and a fire is only current when it carries the
// generation of the timer still armed in the slot. Stop alone cannot rule
// out a callback that is already running, so callers check Current before
// acting on a fire.
//
// Slot is not safe for concurrent use; the owner serializes access.
type Slot struct {
	sched Scheduler
	gen   uint64
	timer Timer
	armed bool
}

// NewSlot returns an empty slot that arms timers on sched.
func NewSlot(sched Scheduler) *Slot {
	return &Slot{sched: sched}
}

// Arm cancels any pending timer and arms fire to run after d. The callback
// receives the generation it was armed with.
func (s *Slot) Arm(d time.Duration, fire func(gen uint64)) uint64 {
	s.Cancel()
	gen := s.gen
	s.armed = true
	s.timer = s.sched.AfterFunc(d, func() { fire(gen) })
	return gen
}

// Cancel stops the pending timer, if any, and retires its generation.
// Cancelling an empty slot still bumps the generation.
func (s *Slot) Cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.armed = false
	s.gen++
}

// Current reports whether gen belongs to the timer still armed in the slot.
func (s *Slot) Current(gen uint64) bool {
	return s.armed && gen == s.gen
}

// Consume marks the armed timer as fired. It reports false, and changes
// nothing, when gen is stale.
func (s *Slot) Consume(gen uint64) bool {
	if !s.Current(gen) {
		return false
	}
	s.timer = nil
	s.armed = false
	return true
}

// Generation returns the current generation.
func (s *Slot) Generation() uint64 {
	return s.gen
}

// Armed reports whether a timer is pending.
func (s *Slot) Armed() bool {
	return s.armed
}
