package ik

import (
	"math"

	"github.com/pkg/errors"
)

// default values for the CCD solver.
const (
	// Number of tip-to-base sweeps before giving up.
	defaultMaxIterations = 10

	// How close the end effector must get to the target, in chain length units.
	defaultToleranceDistance = 0.01

	// Fraction of each computed correction that is applied. 1 applies it in full.
	defaultDampingFactor = 1.
)

// Config holds the tunables of the CCD solver. Zero values select the defaults.
type Config struct {
	// Max number of tip-to-base sweeps
	MaxIterations int `json:"max_iterations"`

	// The target counts as reached once the end effector is within this distance of it
	ToleranceDistance float64 `json:"tolerance_distance"`

	// Each joint correction is scaled by this factor, in (0, 1]. Lower values trade speed for less oscillation
	DampingFactor float64 `json:"damping_factor"`
}

// NewDefaultConfig returns a Config with every field set to its default.
func NewDefaultConfig() Config {
	return Config{
		MaxIterations:     defaultMaxIterations,
		ToleranceDistance: defaultToleranceDistance,
		DampingFactor:     defaultDampingFactor,
	}
}

// withDefaults replaces zero and out of range fields with their defaults.
func (cfg Config) withDefaults() Config {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	if !(cfg.ToleranceDistance > 0) || math.IsInf(cfg.ToleranceDistance, 0) {
		cfg.ToleranceDistance = defaultToleranceDistance
	}
	if !(cfg.DampingFactor > 0 && cfg.DampingFactor <= 1) {
		cfg.DampingFactor = defaultDampingFactor
	}
	return cfg
}

// Validate returns an error if any field is set to a value the solver cannot use. Zero fields are valid and
// mean "use the default".
func (cfg Config) Validate() error {
	if cfg.MaxIterations < 0 {
		return errors.Errorf("max_iterations must not be negative, got %d", cfg.MaxIterations)
	}
	if cfg.ToleranceDistance < 0 || math.IsNaN(cfg.ToleranceDistance) || math.IsInf(cfg.ToleranceDistance, 0) {
		return errors.Errorf("tolerance_distance must be a non-negative number, got %v", cfg.ToleranceDistance)
	}
	if cfg.DampingFactor < 0 || cfg.DampingFactor > 1 || math.IsNaN(cfg.DampingFactor) {
		return errors.Errorf("damping_factor must be in (0, 1], got %v", cfg.DampingFactor)
	}
	return nil
}
