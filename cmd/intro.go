package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/warren/internal/config"
	"github.com/papapumpkin/warren/internal/telemetry"
	"github.com/papapumpkin/warren/internal/tui"
	"github.com/papapumpkin/warren/internal/ui"
)

// errNoTTY is returned when the intro is started without a terminal.
var errNoTTY = errors.New("warren intro requires a TTY (terminal); try `warren trace`")

var introCmd = &cobra.Command{
	Use:   "intro",
	Short: "Play the rabbit intro",
	Long: `Play the rabbit intro in the terminal. The rabbit waits until you press
enter, space, or click it, then runs through its timeline and navigates to the
home screen. With --debug, the keys 0-8 force a phase and n forces navigation.`,
	Args: cobra.NoArgs,
	RunE: runIntro,
}

func init() {
	addIntroFlags(introCmd)
	rootCmd.AddCommand(introCmd)
}

// addIntroFlags registers the flags shared by every command that builds an
// intro machine.
func addIntroFlags(c *cobra.Command) {
	c.Flags().String("route", config.DefaultRoute, "navigation target once the intro finishes")
	c.Flags().Int("particles", config.DefaultParticles, "number of background particles")
	c.Flags().Uint64("seed", 0, "particle seed (0 picks one at random)")
	c.Flags().Bool("debug", false, "enable debug controls")
	c.Flags().String("telemetry", "", "append JSONL telemetry events to this file")
	c.Flags().Int("fps", config.DefaultFPS, "animation frames per second")
}

// openEmitter opens the telemetry file, or returns a nil (no-op) emitter
// when path is empty.
func openEmitter(path string) (*telemetry.Emitter, error) {
	if path == "" {
		return nil, nil
	}
	return telemetry.NewEmitter(path)
}

func runIntro(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !isStderrTTY() {
		return errNoTTY
	}

	emitter, err := openEmitter(cfg.TelemetryPath)
	if err != nil {
		return err
	}
	defer emitter.Close()

	app, err := tui.Run(tui.IntroOptions{
		Target:    cfg.Route,
		Particles: cfg.Particles,
		Seed:      cfg.Seed,
		Debug:     cfg.Debug,
		FPS:       cfg.FPS,
		Emitter:   emitter,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := ui.New()
		printer.Info(fmt.Sprintf("navigations: %d", app.Navigations))
		if p := emitter.Path(); p != "" {
			printer.Info("telemetry written to " + p)
		}
	}
	return nil
}
