package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/warren/internal/phase"
	"github.com/papapumpkin/warren/internal/timeline"
	"github.com/papapumpkin/warren/internal/ui"
)

// errTimelineMismatch is returned when a simulated run differs from the golden.
var errTimelineMismatch = errors.New("timeline mismatch")

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Simulate the intro and compare it against a golden timeline",
	Long: `Run the intro on a simulated clock, which is instant and deterministic, and
compare the phase timeline against a golden TOML file. Without --golden the run
is compared against the built-in organic timeline. --update rewrites the golden
file from the simulation instead of comparing.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().String("golden", "", "golden timeline TOML file (default: built-in organic timeline)")
	verifyCmd.Flags().Duration("tolerance", 0, "allowed drift per offset")
	verifyCmd.Flags().String("route", "home", "navigation target")
	verifyCmd.Flags().String("force", "", "phase to force (name or index)")
	verifyCmd.Flags().Duration("force-at", 0, "simulated delay after activation before forcing")
	verifyCmd.Flags().Duration("navigate-at", -1, "force navigation at this simulated offset (negative: never)")
	verifyCmd.Flags().Duration("teardown-at", -1, "tear down at this simulated offset (negative: never)")
	verifyCmd.Flags().Bool("update", false, "write the simulated timeline to --golden")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	golden, _ := cmd.Flags().GetString("golden")
	tolerance, _ := cmd.Flags().GetDuration("tolerance")
	update, _ := cmd.Flags().GetBool("update")

	opts, err := simulateOptions(cmd)
	if err != nil {
		return err
	}
	opts.Target = cfg.Route

	got, err := timeline.Simulate(opts)
	if err != nil {
		return err
	}

	printer := ui.NewWriter(cmd.OutOrStdout())

	if update {
		if golden == "" {
			return errors.New("--update requires --golden")
		}
		got.Name = "golden"
		if err := timeline.Save(golden, got); err != nil {
			return err
		}
		printer.Info("golden timeline written to " + golden)
		return nil
	}

	want := timeline.Expected()
	if golden != "" {
		if want, err = timeline.Load(golden); err != nil {
			return err
		}
	}

	ms := timeline.Compare(want, got, tolerance)
	printer.VerifyResult(want.Name, ms)
	if len(ms) > 0 {
		return fmt.Errorf("%w: %d difference(s)", errTimelineMismatch, len(ms))
	}
	return nil
}

// simulateOptions builds the scripted run from the verify flags.
func simulateOptions(cmd *cobra.Command) (timeline.SimulateOptions, error) {
	var opts timeline.SimulateOptions

	if name, _ := cmd.Flags().GetString("force"); name != "" {
		p, err := phase.Parse(name)
		if err != nil {
			return opts, fmt.Errorf("--force: %w", err)
		}
		at, _ := cmd.Flags().GetDuration("force-at")
		opts.Forces = []timeline.Force{{At: at, Phase: p}}
	}
	if at, _ := cmd.Flags().GetDuration("navigate-at"); at >= 0 {
		opts.NavigateAt = durationPtr(at)
	}
	if at, _ := cmd.Flags().GetDuration("teardown-at"); at >= 0 {
		opts.TeardownAt = durationPtr(at)
	}
	return opts, nil
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
