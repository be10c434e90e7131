package intro

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/warren/internal/phase"
	"github.com/papapumpkin/warren/internal/schedule"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type navCall struct {
	target string
	at     time.Duration
}

// harness drives a machine on a manual clock and records every hook call.
type harness struct {
	clk     *schedule.Manual
	m       *Machine
	ctl     *Controls
	changes []Change
	navs    []navCall
}

func newHarness(t *testing.T, debug bool) *harness {
	t.Helper()
	h := &harness{clk: schedule.NewManual(epoch)}
	h.m, h.ctl = New(Options{
		Scheduler: h.clk,
		Debug:     debug,
		Navigator: NavigatorFunc(func(target string) {
			h.navs = append(h.navs, navCall{target: target, at: h.clk.Now().Sub(epoch)})
		}),
		OnChange: func(c Change) { h.changes = append(h.changes, c) },
	})
	h.m.Start()
	return h
}

// phases returns the phases entered after the initial idle entry.
func (h *harness) phases() []phase.Phase {
	var out []phase.Phase
	for _, c := range h.changes {
		if c.Initial() {
			continue
		}
		out = append(out, c.To)
	}
	return out
}

func TestStartEntersIdle(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false)
	if len(h.changes) != 1 {
		t.Fatalf("got %d changes after Start, want 1", len(h.changes))
	}
	c := h.changes[0]
	if !c.Initial() || c.Action != phase.ActionShowEntry {
		t.Errorf("initial change = %+v, want idle entry with show-entry", c)
	}
	if h.clk.Pending() != 0 {
		t.Errorf("idle armed %d timers, want 0", h.clk.Pending())
	}

	h.m.Start()
	if len(h.changes) != 1 {
		t.Error("second Start emitted another change")
	}
}

func TestNewArmsNothing(t *testing.T) {
	t.Parallel()

	clk := schedule.NewManual(epoch)
	var changes int
	m, ctl := New(Options{Scheduler: clk, OnChange: func(Change) { changes++ }})
	if ctl != nil {
		t.Error("Controls should be nil outside debug mode")
	}
	m.Activate()
	if changes != 0 || clk.Pending() != 0 || m.Phase() != phase.Idle {
		t.Error("an unstarted machine reacted to activation")
	}
	if m.Target() != DefaultTarget {
		t.Errorf("Target() = %q, want %q", m.Target(), DefaultTarget)
	}
	if m.SessionID() == "" {
		t.Error("SessionID() should default to a fresh id")
	}
}

func TestNaturalTimeline(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false)
	h.m.Activate()
	h.clk.Advance(20 * time.Second)

	want := []phase.Phase{
		phase.Clicked, phase.Transforming, phase.LookingWatch, phase.HoleAppearing,
		phase.HoleSpinning, phase.EnteringHole, phase.Falling, phase.Transitioning,
	}
	if diff := cmp.Diff(want, h.phases()); diff != "" {
		t.Fatalf("phase sequence (-want +got):\n%s", diff)
	}

	wantAt := map[phase.Phase]time.Duration{
		phase.Clicked:       0,
		phase.Transforming:  500 * time.Millisecond,
		phase.LookingWatch:  1500 * time.Millisecond,
		phase.HoleAppearing: 3500 * time.Millisecond,
		phase.HoleSpinning:  5000 * time.Millisecond,
		phase.EnteringHole:  7000 * time.Millisecond,
		phase.Falling:       8000 * time.Millisecond,
		phase.Transitioning: 10000 * time.Millisecond,
	}
	prev := phase.Idle
	for _, c := range h.changes[1:] {
		if got := c.At.Sub(epoch); got != wantAt[c.To] {
			t.Errorf("%v entered at %v, want %v", c.To, got, wantAt[c.To])
		}
		if c.From != prev {
			t.Errorf("%v entered from %v, want %v", c.To, c.From, prev)
		}
		if c.Forced {
			t.Errorf("%v marked forced on a natural run", c.To)
		}
		if c.Action != phase.EntryAction(c.To) {
			t.Errorf("%v action = %v, want %v", c.To, c.Action, phase.EntryAction(c.To))
		}
		prev = c.To
	}

	if diff := cmp.Diff([]navCall{{target: DefaultTarget, at: 11 * time.Second}}, h.navs, cmp.AllowUnexported(navCall{})); diff != "" {
		t.Errorf("navigation calls (-want +got):\n%s", diff)
	}
	if !h.m.Navigated() {
		t.Error("Navigated() = false after the terminal timer")
	}
	if h.clk.Pending() != 0 {
		t.Errorf("%d timers still pending after navigation", h.clk.Pending())
	}
}

func TestActivationOutsideIdleIsNoOp(t *testing.T) {
	t.Parallel()

	for _, p := range phase.All()[1:] {
		t.Run(p.String(), func(t *testing.T) {
			t.Parallel()
			h := newHarness(t, true)
			if err := h.ctl.ForcePhase(p); err != nil {
				t.Fatal(err)
			}
			before := len(h.changes)
			if h.m.Advance(Activation{}) {
				t.Error("Advance(Activation) reported a transition")
			}
			h.ctl.Activate()
			if h.m.Phase() != p {
				t.Errorf("phase = %v, want %v", h.m.Phase(), p)
			}
			if len(h.changes) != before {
				t.Error("activation outside idle produced a change")
			}
		})
	}
}

func TestActivationIsOneShot(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false)
	h.m.Activate()
	h.m.Activate()
	h.clk.Advance(100 * time.Millisecond)
	h.m.Activate()

	if diff := cmp.Diff([]phase.Phase{phase.Clicked}, h.phases()); diff != "" {
		t.Errorf("repeated activation (-want +got):\n%s", diff)
	}
}

func TestStaleTimerSuppressed(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	h.m.Activate()
	clickedGen := h.changes[len(h.changes)-1].Generation

	h.clk.Advance(200 * time.Millisecond)
	if err := h.ctl.ForcePhase(phase.HoleSpinning); err != nil {
		t.Fatal(err)
	}
	spinGen := h.changes[len(h.changes)-1].Generation

	// The clicked timer would have fired at 500ms.
	h.clk.Advance(400 * time.Millisecond)
	if h.m.Phase() != phase.HoleSpinning {
		t.Fatalf("phase = %v after clicked deadline, want hole-spinning", h.m.Phase())
	}

	// A hand-delivered fire for the old phase is dropped too.
	if h.m.Advance(TimerFired{Phase: phase.Clicked, Generation: clickedGen}) {
		t.Error("stale clicked fire caused a transition")
	}
	// So is a fire tagged with the right phase but an old generation.
	if h.m.Advance(TimerFired{Phase: phase.HoleSpinning, Generation: clickedGen}) {
		t.Error("fire with retired generation caused a transition")
	}
	if h.m.Phase() != phase.HoleSpinning {
		t.Fatalf("phase = %v, want hole-spinning", h.m.Phase())
	}

	// Hole-spinning's own timer still runs its full duration from the force.
	h.clk.Advance(1599 * time.Millisecond)
	if h.m.Phase() != phase.HoleSpinning {
		t.Fatalf("hole-spinning left early: %v", h.m.Phase())
	}
	h.clk.Advance(time.Millisecond)
	if h.m.Phase() != phase.EnteringHole {
		t.Fatalf("phase = %v, want entering-hole", h.m.Phase())
	}
	if h.m.Advance(TimerFired{Phase: phase.HoleSpinning, Generation: spinGen}) {
		t.Error("already-consumed fire caused a second transition")
	}
}

func TestTeardownMidSequence(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	h.m.Activate()
	h.clk.Advance(5 * time.Second)
	if h.m.Phase() != phase.HoleSpinning {
		t.Fatalf("phase at 5s = %v, want hole-spinning", h.m.Phase())
	}
	seen := len(h.changes)

	h.m.Close()
	h.m.Close()
	if !h.m.Closed() {
		t.Error("Closed() = false after Close")
	}
	if h.clk.Pending() != 0 {
		t.Errorf("%d timers pending after teardown", h.clk.Pending())
	}

	h.clk.Advance(time.Minute)
	h.m.Activate()
	if h.ctl.ForceNavigate("") {
		t.Error("ForceNavigate fired after teardown")
	}
	if err := h.ctl.ForcePhase(phase.Transitioning); !errors.Is(err, ErrClosed) {
		t.Errorf("ForcePhase after teardown = %v, want ErrClosed", err)
	}
	h.m.Start()

	if len(h.changes) != seen {
		t.Errorf("got %d changes after teardown", len(h.changes)-seen)
	}
	if len(h.navs) != 0 {
		t.Errorf("navigation fired after teardown: %+v", h.navs)
	}
	if h.ctl.Phase() != phase.HoleSpinning {
		t.Errorf("Controls.Phase() = %v, want hole-spinning", h.ctl.Phase())
	}
}

func TestTeardownInTerminalPhase(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false)
	h.m.Activate()
	h.clk.Advance(10500 * time.Millisecond)
	h.m.Close()
	h.clk.Advance(time.Minute)
	if len(h.navs) != 0 {
		t.Errorf("navigation fired after teardown in transitioning: %+v", h.navs)
	}
}

func TestHooksMayReenter(t *testing.T) {
	t.Parallel()

	clk := schedule.NewManual(epoch)
	var m *Machine
	var ctl *Controls
	var order []string
	m, ctl = New(Options{
		Scheduler: clk,
		Debug:     true,
		Navigator: NavigatorFunc(func(string) { order = append(order, "navigate") }),
		OnChange: func(c Change) {
			order = append(order, c.To.String())
			if c.To == phase.Falling {
				// Re-entering from inside a hook must not deadlock, and the
				// nested navigation is delivered after this hook returns.
				_ = m.Phase()
				ctl.ForceNavigate("")
				order = append(order, "hook-done")
			}
		},
	})
	m.Start()
	if err := ctl.ForcePhase(phase.EnteringHole); err != nil {
		t.Fatal(err)
	}
	clk.Advance(time.Minute)

	want := []string{"idle", "entering-hole", "falling", "hook-done", "navigate", "transitioning"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("hook order (-want +got):\n%s", diff)
	}
}

func TestRealClockTeardown(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var changes []phase.Phase
	navigated := false

	m, _ := New(Options{
		Scheduler: schedule.NewReal(),
		OnChange: func(c Change) {
			mu.Lock()
			defer mu.Unlock()
			changes = append(changes, c.To)
		},
		Navigator: NavigatorFunc(func(string) {
			mu.Lock()
			defer mu.Unlock()
			navigated = true
		}),
	})
	m.Start()
	m.Activate()
	m.Close()

	time.Sleep(700 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff([]phase.Phase{phase.Idle, phase.Clicked}, changes); diff != "" {
		t.Errorf("changes after teardown (-want +got):\n%s", diff)
	}
	if navigated {
		t.Error("navigation fired after teardown")
	}
	if m.Phase() != phase.Clicked {
		t.Errorf("phase = %v, want clicked", m.Phase())
	}
}
