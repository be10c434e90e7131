package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a warren session.
// Values are populated from .warren.yaml, WARREN_* env vars, and CLI flags.
type Config struct {
	Route         string `mapstructure:"route"`
	Particles     int    `mapstructure:"particles"`
	Seed          uint64 `mapstructure:"seed"`
	Debug         bool   `mapstructure:"debug"`
	TelemetryPath string `mapstructure:"telemetry_path"`
	FPS           int    `mapstructure:"fps"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Default values applied when nothing else sets a key.
const (
	DefaultRoute     = "home"
	DefaultParticles = 25
	DefaultFPS       = 30
	MaxParticles     = 500
	MaxFPS           = 120
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("route", DefaultRoute)
	viper.SetDefault("particles", DefaultParticles)
	viper.SetDefault("seed", 0)
	viper.SetDefault("debug", false)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("fps", DefaultFPS)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. A seed of zero means "pick one at runtime".
func (c Config) Validate() error {
	var errs []error
	if c.Route == "" {
		errs = append(errs, fmt.Errorf("%w: route must not be empty", ErrInvalid))
	}
	if c.Particles < 0 || c.Particles > MaxParticles {
		errs = append(errs, fmt.Errorf("%w: particles must be within [0, %d], got %d", ErrInvalid, MaxParticles, c.Particles))
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("%w: fps must be within [1, %d], got %d", ErrInvalid, MaxFPS, c.FPS))
	}
	return errors.Join(errs...)
}
