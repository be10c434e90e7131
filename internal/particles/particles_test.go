package particles

import (
	"math/rand/v2"
	"testing"
	"time"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestGenerateRanges(t *testing.T) {
	t.Parallel()

	rng := DefaultRanges()
	specs := Generate(newRand(7), 200, rng)
	if len(specs) != 200 {
		t.Fatalf("Generate returned %d specs, want 200", len(specs))
	}

	for i, s := range specs {
		p := s.Position()
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Errorf("spec %d position %+v outside [0,1)", i, p)
		}
		if s.Duration() < rng.MinDuration || s.Duration() >= rng.MaxDuration {
			t.Errorf("spec %d duration %v outside [%v,%v)", i, s.Duration(), rng.MinDuration, rng.MaxDuration)
		}
		if s.Delay() < 0 || s.Delay() >= rng.MaxDelay {
			t.Errorf("spec %d delay %v outside [0,%v)", i, s.Delay(), rng.MaxDelay)
		}
		drift := s.Drift()
		if len(drift) != rng.DriftPoints {
			t.Errorf("spec %d has %d drift points, want %d", i, len(drift), rng.DriftPoints)
		}
		for _, d := range drift {
			if d.X < 0 || d.X > 1 || d.Y < 0 || d.Y > 1 {
				t.Errorf("spec %d drift %+v outside unit square", i, d)
			}
		}
	}
}

func TestGenerateZero(t *testing.T) {
	t.Parallel()

	if got := Generate(newRand(1), 0, DefaultRanges()); got != nil {
		t.Errorf("Generate(0) = %v, want nil", got)
	}
}

func TestGenerateSameSeedSameShape(t *testing.T) {
	t.Parallel()

	a := Generate(newRand(99), 10, DefaultRanges())
	b := Generate(newRand(99), 10, DefaultRanges())
	c := Generate(newRand(100), 10, DefaultRanges())

	for i := range a {
		if a[i].Position() != b[i].Position() {
			t.Fatalf("same seed produced different position at %d", i)
		}
	}
	same := true
	for i := range a {
		if a[i].Position() != c[i].Position() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}

func TestSpecDriftIsCopy(t *testing.T) {
	t.Parallel()

	s := Generate(newRand(3), 1, DefaultRanges())[0]
	d := s.Drift()
	orig := d[0]
	d[0] = Point{X: -5, Y: -5}
	if s.Drift()[0] != orig {
		t.Error("mutating Drift() result changed the spec")
	}
}

func TestSpecAt(t *testing.T) {
	t.Parallel()

	s := Spec{
		pos:      Point{X: 0, Y: 0},
		duration: 4 * time.Second,
		delay:    time.Second,
		drift:    []Point{{X: 1, Y: 0}},
	}

	if _, ok := s.At(500 * time.Millisecond); ok {
		t.Error("particle should be hidden during its delay")
	}

	tests := []struct {
		elapsed time.Duration
		want    Point
	}{
		{time.Second, Point{X: 0, Y: 0}},
		{2 * time.Second, Point{X: 0.5, Y: 0}},
		{3 * time.Second, Point{X: 1, Y: 0}},
		{4 * time.Second, Point{X: 0.5, Y: 0}},
		{5 * time.Second, Point{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		got, ok := s.At(tt.elapsed)
		if !ok {
			t.Fatalf("At(%v) reported hidden", tt.elapsed)
		}
		if got != tt.want {
			t.Errorf("At(%v) = %+v, want %+v", tt.elapsed, got, tt.want)
		}
	}
}

func TestSpecAtWithoutDrift(t *testing.T) {
	t.Parallel()

	s := Spec{pos: Point{X: 0.3, Y: 0.7}, duration: time.Second}
	got, ok := s.At(10 * time.Second)
	if !ok || got != s.Position() {
		t.Errorf("At() = %+v, %v; want resting position", got, ok)
	}
}
