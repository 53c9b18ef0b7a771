package executor

import "time"

// DefaultSequenceTimeout bounds how long a partially-typed key
// sequence may stay pending before it is abandoned.
const DefaultSequenceTimeout = 1000 * time.Millisecond

// Config carries the executor's tunable settings.
type Config struct {
	// SequenceTimeout is the idle deadline for pending multi-key
	// sequences. Zero disables the deadline.
	SequenceTimeout time.Duration

	// RecoverFromPanic converts plugin panics into dispatched errors
	// instead of crashing the keystroke loop.
	RecoverFromPanic bool

	// EnableMetrics records per-pattern execution counts and timings.
	EnableMetrics bool

	// MotionStep is the per-keystroke distance of the directional
	// motions.
	MotionStep int
}

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	return Config{
		SequenceTimeout:  DefaultSequenceTimeout,
		RecoverFromPanic: true,
		EnableMetrics:    true,
		MotionStep:       1,
	}
}

// WithSequenceTimeout returns a copy with the sequence deadline set.
func (c Config) WithSequenceTimeout(d time.Duration) Config {
	c.SequenceTimeout = d
	return c
}

// WithRecoverFromPanic returns a copy with panic recovery toggled.
func (c Config) WithRecoverFromPanic(on bool) Config {
	c.RecoverFromPanic = on
	return c
}

// WithMetrics returns a copy with metrics collection toggled.
func (c Config) WithMetrics(on bool) Config {
	c.EnableMetrics = on
	return c
}

// WithMotionStep returns a copy with the directional step set.
func (c Config) WithMotionStep(step int) Config {
	if step < 1 {
		step = 1
	}
	c.MotionStep = step
	return c
}
