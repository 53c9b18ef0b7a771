// Package config loads executor settings from TOML files and watches
// them for changes.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vimkit/internal/executor"
	"github.com/dshills/vimkit/internal/mode"
)

// Config is the on-disk settings file.
type Config struct {
	// SequenceTimeoutMS bounds pending multi-key sequences, in
	// milliseconds. Zero disables the deadline.
	SequenceTimeoutMS int `toml:"sequence_timeout_ms"`

	// RecoverFromPanic converts plugin panics into dispatched errors.
	RecoverFromPanic bool `toml:"recover_from_panic"`

	// EnableMetrics records per-pattern execution statistics.
	EnableMetrics bool `toml:"enable_metrics"`

	// MotionStep is the directional motion distance per keystroke.
	MotionStep int `toml:"motion_step"`

	// InitialMode is the mode the session starts in.
	InitialMode string `toml:"initial_mode"`

	// Keymaps binds extra key patterns to registered plugin names,
	// e.g. `"<C-f>" = "motion.word-forward"`.
	Keymaps map[string]string `toml:"keymaps"`
}

// Default returns the standard settings.
func Default() Config {
	return Config{
		SequenceTimeoutMS: 1000,
		RecoverFromPanic:  true,
		EnableMetrics:     true,
		MotionStep:        1,
		InitialMode:       mode.Normal,
	}
}

// Load reads path and merges it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	if c.SequenceTimeoutMS < 0 {
		return fmt.Errorf("sequence_timeout_ms must not be negative: %d", c.SequenceTimeoutMS)
	}
	if c.MotionStep < 1 {
		return fmt.Errorf("motion_step must be at least 1: %d", c.MotionStep)
	}
	if !mode.Valid(c.InitialMode) {
		return fmt.Errorf("unknown initial_mode %q", c.InitialMode)
	}
	return nil
}

// ExecutorConfig converts the settings to the executor's form.
func (c Config) ExecutorConfig() executor.Config {
	return executor.Config{
		SequenceTimeout:  time.Duration(c.SequenceTimeoutMS) * time.Millisecond,
		RecoverFromPanic: c.RecoverFromPanic,
		EnableMetrics:    c.EnableMetrics,
		MotionStep:       c.MotionStep,
	}
}
