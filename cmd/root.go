package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/warren/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "warren",
	Short: "Follow the white rabbit",
	Long: `Warren plays an interactive rabbit intro in the terminal and then
navigates to the home screen. Press enter, space, or click the rabbit to begin.`,
	Args: cobra.NoArgs,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .warren.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	addIntroFlags(rootCmd)
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".warren")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("WARREN")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault plays the intro, the same as `warren intro`.
func runRootDefault(cmd *cobra.Command, args []string) error {
	return runIntro(cmd, args)
}

// loadConfig loads the layered config and applies any flags the user set
// explicitly on cmd. Flags that cmd does not define are left alone.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("route") {
		cfg.Route, _ = flags.GetString("route")
	}
	if flags.Changed("particles") {
		cfg.Particles, _ = flags.GetInt("particles")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("telemetry") {
		cfg.TelemetryPath, _ = flags.GetString("telemetry")
	}
	if flags.Changed("fps") {
		cfg.FPS, _ = flags.GetInt("fps")
	}
	if v, _ := flags.GetBool("verbose"); v {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// isStderrTTY reports whether stderr is attached to a terminal.
func isStderrTTY() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
