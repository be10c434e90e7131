package intro

import (
	"time"

	"github.com/papapumpkin/warren/internal/phase"
)

// Event is an input to Machine.Advance.
type Event interface {
	isEvent()
}

// Activation is the user's primary activation (a click or key press). It is
// only meaningful while the machine is idle.
type Activation struct{}

// TimerFired reports that the timer armed on entry to Phase has elapsed.
// Generation identifies the arming; fires from an earlier arming are stale.
type TimerFired struct {
	Phase      phase.Phase
	Generation uint64
}

func (Activation) isEvent() {}
func (TimerFired) isEvent() {}

// Change describes a phase transition.
type Change struct {
	From   phase.Phase
	To     phase.Phase
	At     time.Time
	Action phase.Action
	// Forced is set when the transition came from the debug controls.
	Forced bool
	// Generation is the timer generation armed on entry to To.
	Generation uint64
}

// Initial reports whether c is the start-up entry into idle.
func (c Change) Initial() bool {
	return c.From == c.To && c.To == phase.Idle && !c.Forced
}
