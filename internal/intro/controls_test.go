package intro

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/warren/internal/phase"
)

func TestForcePhaseMatchesNaturalEntry(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	if err := h.ctl.ForcePhase(phase.LookingWatch); err != nil {
		t.Fatal(err)
	}
	forced := h.changes[len(h.changes)-1]
	if !forced.Forced || forced.Action != phase.ActionHideCaption || forced.From != phase.Idle {
		t.Errorf("forced change = %+v", forced)
	}
	if h.clk.Pending() != 1 {
		t.Fatalf("forced phase armed %d timers, want 1", h.clk.Pending())
	}
	deadline, _ := h.clk.NextDeadline()
	if got := deadline.Sub(epoch); got != 2*time.Second {
		t.Errorf("looking-watch timer due at %v, want 2s", got)
	}

	h.clk.Advance(time.Minute)
	want := []phase.Phase{
		phase.LookingWatch, phase.HoleAppearing, phase.HoleSpinning,
		phase.EnteringHole, phase.Falling, phase.Transitioning,
	}
	if diff := cmp.Diff(want, h.phases()); diff != "" {
		t.Errorf("sequence after force (-want +got):\n%s", diff)
	}
	if len(h.navs) != 1 {
		t.Errorf("got %d navigations, want 1", len(h.navs))
	}
}

func TestForceSamePhaseRestartsTimer(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	h.m.Activate()
	h.clk.Advance(400 * time.Millisecond)
	if err := h.ctl.ForcePhase(phase.Clicked); err != nil {
		t.Fatal(err)
	}
	h.clk.Advance(400 * time.Millisecond)
	if h.m.Phase() != phase.Clicked {
		t.Fatalf("re-forced clicked left after 400ms: %v", h.m.Phase())
	}
	h.clk.Advance(100 * time.Millisecond)
	if h.m.Phase() != phase.Transforming {
		t.Fatalf("phase = %v, want transforming", h.m.Phase())
	}
}

func TestForceIdleAwaitsActivation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	h.m.Activate()
	h.clk.Advance(2 * time.Second)
	if err := h.ctl.ForcePhase(phase.Idle); err != nil {
		t.Fatal(err)
	}
	if h.clk.Pending() != 0 {
		t.Errorf("idle left %d timers armed", h.clk.Pending())
	}
	h.clk.Advance(time.Minute)
	if h.m.Phase() != phase.Idle {
		t.Fatalf("idle advanced on its own to %v", h.m.Phase())
	}
	h.ctl.Activate()
	if h.m.Phase() != phase.Clicked {
		t.Fatalf("phase = %v after activation, want clicked", h.m.Phase())
	}
}

func TestNavigationAtMostOnce(t *testing.T) {
	t.Parallel()

	t.Run("forced then natural", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, true)
		h.m.Activate()
		if !h.ctl.ForceNavigate("") {
			t.Fatal("first ForceNavigate should fire")
		}
		h.clk.Advance(time.Minute)
		if len(h.navs) != 1 || h.navs[0].at != 0 {
			t.Errorf("navs = %+v, want one immediate call", h.navs)
		}
		if h.m.Phase() != phase.Transitioning {
			t.Errorf("timeline should still finish, phase = %v", h.m.Phase())
		}
	})

	t.Run("terminal phase re-entered", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, true)
		for range 3 {
			if err := h.ctl.ForcePhase(phase.Transitioning); err != nil {
				t.Fatal(err)
			}
			h.clk.Advance(2 * time.Second)
		}
		if len(h.navs) != 1 {
			t.Errorf("got %d navigations, want 1", len(h.navs))
		}
	})

	t.Run("natural then forced", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, true)
		h.m.Activate()
		h.clk.Advance(time.Minute)
		if h.ctl.ForceNavigate("elsewhere") {
			t.Error("ForceNavigate after natural navigation should not fire")
		}
		if len(h.navs) != 1 {
			t.Errorf("got %d navigations, want 1", len(h.navs))
		}
	})

	t.Run("explicit target", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, true)
		h.ctl.ForceNavigate("about")
		if len(h.navs) != 1 || h.navs[0].target != "about" {
			t.Errorf("navs = %+v, want one call to about", h.navs)
		}
	})
}

func TestForcePhaseRejectsUnknown(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	for _, p := range []phase.Phase{-1, phase.Last + 1} {
		if err := h.ctl.ForcePhase(p); !errors.Is(err, ErrUnknownPhase) {
			t.Errorf("ForcePhase(%d) = %v, want ErrUnknownPhase", int(p), err)
		}
	}
	if h.m.Phase() != phase.Idle {
		t.Errorf("phase changed to %v", h.m.Phase())
	}
}
