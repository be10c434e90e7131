package timeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/papapumpkin/warren/internal/intro"
	"github.com/papapumpkin/warren/internal/phase"
	"github.com/papapumpkin/warren/internal/schedule"
)

// DefaultHorizon bounds a simulated run. It is well past the organic
// navigation offset.
const DefaultHorizon = 30 * time.Second

// simEpoch is the fixed start of every simulated clock.
var simEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Force enters Phase through the debug controls At after activation.
type Force struct {
	At    time.Duration
	Phase phase.Phase
}

// SimulateOptions scripts a deterministic run.
type SimulateOptions struct {
	// Target is the navigation route. Defaults to intro.DefaultTarget.
	Target string
	// Forces are applied in At order; ties keep slice order.
	Forces []Force
	// NavigateAt, when set, forces navigation that long after activation.
	NavigateAt *time.Duration
	// TeardownAt, when set, closes the machine that long after activation.
	TeardownAt *time.Duration
	// Horizon is how far the clock runs. Defaults to DefaultHorizon.
	Horizon time.Duration
}

// Simulate runs a fresh machine on a manual clock: start, activate at offset
// zero, apply the scripted forces, then advance to the horizon. Identical
// options always produce identical timelines.
func Simulate(opts SimulateOptions) (Timeline, error) {
	if opts.Horizon <= 0 {
		opts.Horizon = DefaultHorizon
	}
	for _, f := range opts.Forces {
		if !f.Phase.Valid() {
			return Timeline{}, fmt.Errorf("timeline: force at %v: %w", f.At, intro.ErrUnknownPhase)
		}
		if f.At < 0 || f.At > opts.Horizon {
			return Timeline{}, fmt.Errorf("timeline: force %s at %v: outside horizon %v", f.Phase, f.At, opts.Horizon)
		}
	}

	clk := schedule.NewManual(simEpoch)
	rec := NewRecorder(clk.Now)
	m, ctl := intro.New(intro.Options{
		Scheduler: clk,
		Navigator: rec,
		Target:    opts.Target,
		Debug:     true,
		OnChange:  rec.OnChange,
		SessionID: "simulation",
	})

	m.Start()
	m.Activate()

	var errs []error
	for _, f := range opts.Forces {
		clk.AfterFunc(f.At, func() {
			if err := ctl.ForcePhase(f.Phase); err != nil && !errors.Is(err, intro.ErrClosed) {
				errs = append(errs, err)
			}
		})
	}
	if opts.NavigateAt != nil {
		clk.AfterFunc(*opts.NavigateAt, func() { ctl.ForceNavigate("") })
	}
	if opts.TeardownAt != nil {
		clk.AfterFunc(*opts.TeardownAt, m.Close)
	}

	clk.Advance(opts.Horizon)
	m.Close()

	if err := errors.Join(errs...); err != nil {
		return Timeline{}, fmt.Errorf("timeline: simulate: %w", err)
	}
	return rec.Timeline(), nil
}
