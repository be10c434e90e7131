package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/warren/internal/intro"
	"github.com/papapumpkin/warren/internal/phase"
	"github.com/papapumpkin/warren/internal/schedule"
	"github.com/papapumpkin/warren/internal/timeline"
	"github.com/papapumpkin/warren/internal/ui"
)

// errTraceTimeout is returned when a trace does not navigate in time.
var errTraceTimeout = errors.New("trace timed out before navigation")

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run the intro headless and print each phase change",
	Long: `Run the intro orchestrator on the wall clock without a renderer. The rabbit
is activated immediately and every phase change is printed with its offset from
activation until the intro navigates.

--force enters a phase through the debug controls (after --force-at), --fast
navigates right after activation, and --record writes the observed timeline as
TOML for use with ` + "`warren verify --golden`.",
	Args: cobra.NoArgs,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().String("route", "home", "navigation target")
	traceCmd.Flags().String("telemetry", "", "append JSONL telemetry events to this file")
	traceCmd.Flags().Bool("fast", false, "force navigation right after activation")
	traceCmd.Flags().String("force", "", "phase to force (name or index)")
	traceCmd.Flags().Duration("force-at", 0, "delay after activation before forcing")
	traceCmd.Flags().String("record", "", "write the observed timeline to this TOML file")
	traceCmd.Flags().Duration("timeout", 30*time.Second, "give up if no navigation happens within this time")
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fast, _ := cmd.Flags().GetBool("fast")
	forceName, _ := cmd.Flags().GetString("force")
	forceAt, _ := cmd.Flags().GetDuration("force-at")
	record, _ := cmd.Flags().GetString("record")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	var force *phase.Phase
	if forceName != "" {
		p, err := phase.Parse(forceName)
		if err != nil {
			return fmt.Errorf("--force: %w", err)
		}
		force = &p
	}

	emitter, err := openEmitter(cfg.TelemetryPath)
	if err != nil {
		return err
	}
	defer emitter.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	printer := ui.NewWriter(cmd.ErrOrStderr())
	if cfg.Verbose {
		printer.Banner()
	}

	sched := schedule.NewReal()
	rec := timeline.NewRecorder(sched.Now)
	done := make(chan struct{})
	var start time.Time

	m, ctl := intro.New(intro.Options{
		Scheduler: sched,
		Target:    cfg.Route,
		Debug:     true,
		Emitter:   emitter,
		OnChange: func(c intro.Change) {
			rec.OnChange(c)
			if !c.Initial() {
				printer.PhaseChange(c, c.At.Sub(start))
			}
		},
		Navigator: intro.NavigatorFunc(func(target string) {
			rec.Navigate(target)
			printer.Navigate(target, sched.Now().Sub(start))
			close(done)
		}),
	})

	m.Start()
	start = sched.Now()
	m.Activate()
	if force != nil {
		p := *force
		sched.AfterFunc(forceAt, func() {
			if err := ctl.ForcePhase(p); err != nil && !errors.Is(err, intro.ErrClosed) {
				printer.Error(err.Error())
			}
		})
	}
	if fast {
		ctl.ForceNavigate("")
	}

	var runErr error
	select {
	case <-done:
	case <-time.After(timeout):
		runErr = fmt.Errorf("%w: still in %s after %v", errTraceTimeout, m.Phase(), timeout)
	case <-ctx.Done():
		printer.Teardown(m.Phase())
	}
	m.Close()

	if record != "" {
		tl := rec.Timeline()
		tl.Name = "trace"
		if err := timeline.Save(record, tl); err != nil {
			return err
		}
		printer.Info("timeline written to " + record)
	}
	return runErr
}
