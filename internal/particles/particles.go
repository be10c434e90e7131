// Package particles generates the decorative sparkle field drawn behind the
// intro. Specs are random but immutable once created; a Field builds its
// skeleton synchronously and fills in the random values off the caller's
// goroutine.
package particles

import (
	"math"
	"math/rand/v2"
	"slices"
	"time"
)

// Point is a position in normalized screen space, both axes in [0, 1].
type Point struct {
	X float64
	Y float64
}

// Spec describes how one particle animates. Fields are read through
// accessors so a Spec cannot change after Generate returns it.
type Spec struct {
	pos      Point
	duration time.Duration
	delay    time.Duration
	drift    []Point
}

// Position returns the particle's resting position.
func (s Spec) Position() Point { return s.pos }

// Duration returns the length of one drift cycle.
func (s Spec) Duration() time.Duration { return s.duration }

// Delay returns how long the particle waits before it first appears.
func (s Spec) Delay() time.Duration { return s.delay }

// Drift returns a copy of the points the particle drifts through.
func (s Spec) Drift() []Point { return slices.Clone(s.drift) }

// At returns where the particle is after elapsed time since the field
// mounted. It reports false while the particle is still waiting out its delay.
// The particle travels from its position through each drift target and back,
// once per Duration.
func (s Spec) At(elapsed time.Duration) (Point, bool) {
	if elapsed < s.delay {
		return Point{}, false
	}
	if s.duration <= 0 || len(s.drift) == 0 {
		return s.pos, true
	}

	path := make([]Point, 0, len(s.drift)+2)
	path = append(path, s.pos)
	path = append(path, s.drift...)
	path = append(path, s.pos)

	cycle := float64((elapsed-s.delay)%s.duration) / float64(s.duration)
	legs := float64(len(path) - 1)
	leg := int(cycle * legs)
	if leg >= len(path)-1 {
		leg = len(path) - 2
	}
	frac := cycle*legs - float64(leg)
	a, b := path[leg], path[leg+1]
	return Point{X: a.X + (b.X-a.X)*frac, Y: a.Y + (b.Y-a.Y)*frac}, true
}

// Ranges bounds the random values Generate draws.
type Ranges struct {
	MinDuration time.Duration
	MaxDuration time.Duration
	MaxDelay    time.Duration
	DriftPoints int
	DriftRadius float64
}

// DefaultRanges returns the jitter ranges used by the intro field.
func DefaultRanges() Ranges {
	return Ranges{
		MinDuration: 3 * time.Second,
		MaxDuration: 6 * time.Second,
		MaxDelay:    2 * time.Second,
		DriftPoints: 3,
		DriftRadius: 0.08,
	}
}

// Generate draws n particle specs from r using uniform distributions over
// the given ranges.
func Generate(r *rand.Rand, n int, rng Ranges) []Spec {
	if n <= 0 {
		return nil
	}
	specs := make([]Spec, 0, n)
	for range n {
		pos := Point{X: r.Float64(), Y: r.Float64()}
		drift := make([]Point, 0, max(rng.DriftPoints, 0))
		for range rng.DriftPoints {
			angle := r.Float64() * 2 * math.Pi
			dist := r.Float64() * rng.DriftRadius
			drift = append(drift, Point{
				X: clamp01(pos.X + dist*math.Cos(angle)),
				Y: clamp01(pos.Y + dist*math.Sin(angle)),
			})
		}
		specs = append(specs, Spec{
			pos:      pos,
			duration: uniformDuration(r, rng.MinDuration, rng.MaxDuration),
			delay:    uniformDuration(r, 0, rng.MaxDelay),
			drift:    drift,
		})
	}
	return specs
}

func uniformDuration(r *rand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(r.Int64N(int64(hi-lo)))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
