// Package phase defines the ordered stages of the rabbit intro and the fixed
// timeline that moves one stage to the next.
package phase

import (
	"errors"
	"fmt"
	"time"
)

// Phase is one stage of the intro sequence. Phases are totally ordered;
// a larger value is a later stage.
type Phase int

const (
	Idle Phase = iota
	Clicked
	Transforming
	LookingWatch
	HoleAppearing
	HoleSpinning
	EnteringHole
	Falling
	Transitioning
)

// First and Last bound the sequence.
const (
	First = Idle
	Last  = Transitioning
)

// NavigateDelay is how long the terminal phase settles before navigation fires.
const NavigateDelay = 1000 * time.Millisecond

// ErrUnknown is returned by Parse for names that do not denote a phase.
var ErrUnknown = errors.New("phase: unknown phase")

var names = [...]string{
	Idle:          "idle",
	Clicked:       "clicked",
	Transforming:  "transforming",
	LookingWatch:  "looking-watch",
	HoleAppearing: "hole-appearing",
	HoleSpinning:  "hole-spinning",
	EnteringHole:  "entering-hole",
	Falling:       "falling",
	Transitioning: "transitioning",
}

// delays holds the time spent in each phase before the next one begins.
// Idle waits for the user and Transitioning is terminal, so both are zero.
var delays = [...]time.Duration{
	Idle:          0,
	Clicked:       500 * time.Millisecond,
	Transforming:  1000 * time.Millisecond,
	LookingWatch:  2000 * time.Millisecond,
	HoleAppearing: 1500 * time.Millisecond,
	HoleSpinning:  2000 * time.Millisecond,
	EnteringHole:  1000 * time.Millisecond,
	Falling:       2000 * time.Millisecond,
	Transitioning: 0,
}

// String returns the kebab-case name of the phase.
func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return names[p]
}

// Valid reports whether p is one of the defined phases.
func (p Phase) Valid() bool {
	return p >= First && p <= Last
}

// Terminal reports whether p is the final phase, from which navigation fires.
func (p Phase) Terminal() bool {
	return p == Last
}

// MarshalText implements encoding.TextMarshaler so phases serialize by name.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, int(p))
	}
	return []byte(names[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Parse resolves a phase name. It also accepts the numeric index of the phase.
func Parse(s string) (Phase, error) {
	for i, n := range names {
		if n == s {
			return Phase(i), nil
		}
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		if p := Phase(s[0] - '0'); p.Valid() {
			return p, nil
		}
	}
	return Idle, fmt.Errorf("%w: %q", ErrUnknown, s)
}

// All returns every phase in timeline order.
func All() []Phase {
	out := make([]Phase, 0, len(names))
	for p := First; p <= Last; p++ {
		out = append(out, p)
	}
	return out
}

// Next returns the phase that follows p on the natural timeline.
// It reports false for the terminal phase.
func Next(p Phase) (Phase, bool) {
	if !p.Valid() || p.Terminal() {
		return p, false
	}
	return p + 1, true
}

// Delay returns how long p lasts before the timeline advances on its own.
// It reports false for idle, which only the user can leave, and for the
// terminal phase, which never advances.
func Delay(p Phase) (time.Duration, bool) {
	if !p.Valid() || delays[p] == 0 {
		return 0, false
	}
	return delays[p], true
}

// Offset returns when p begins, measured from the activation that leaves idle.
// Idle and clicked both start at zero.
func Offset(p Phase) time.Duration {
	var total time.Duration
	for q := Clicked; q < p && q.Valid(); q++ {
		total += delays[q]
	}
	return total
}
