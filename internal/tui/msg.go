package tui

import (
	"time"

	"github.com/papapumpkin/warren/internal/particles"
)

// MsgNavigate asks the app to switch to the screen registered for Target.
// It is the only way the intro leaves its screen.
type MsgNavigate struct {
	Target string
}

// msgFrame drives the animation clock of one mounted intro.
type msgFrame struct {
	owner *introState
	at    time.Time
}

// msgFieldReady reports that a particle field finished populating. A message
// for a field that is no longer mounted is ignored.
type msgFieldReady struct {
	field *particles.Field
}
