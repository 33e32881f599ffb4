// SPDX-License-Identifier: MIT
// Package: phonxs/grid
//
// options.go: functional options for Thermal.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package grid

import "math"

const (
	// DefaultBins is the number of tabulation points of a thermal grid.
	DefaultBins = 200

	// DefaultLowerBound is the lowest tabulated energy (eV).
	DefaultLowerBound = 1e-5

	// DefaultUpperCap caps the highest tabulated energy (eV).
	DefaultUpperCap = 1.0

	// MinBins is the smallest grid that still defines one segment.
	MinBins = 2
)

// Option customizes Thermal.
type Option func(*config)

// config aggregates the knobs of Thermal. Passed by value.
type config struct {
	bins     int
	lower    float64
	upperCap float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		bins:     DefaultBins,
		lower:    DefaultLowerBound,
		upperCap: DefaultUpperCap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBins sets the number of grid points. Panics if n < MinBins.
func WithBins(n int) Option {
	if n < MinBins {
		panic("grid: WithBins(n<2)")
	}
	return func(c *config) {
		c.bins = n
	}
}

// WithLowerBound sets the lowest energy (eV). Panics unless e is finite and > 0.
func WithLowerBound(e float64) Option {
	if !(e > 0) || math.IsInf(e, 0) {
		panic("grid: WithLowerBound(e<=0)")
	}
	return func(c *config) {
		c.lower = e
	}
}

// WithUpperCap sets the cap applied to the thermal upper bound (eV).
// Panics unless e is finite and > 0.
func WithUpperCap(e float64) Option {
	if !(e > 0) || math.IsInf(e, 0) {
		panic("grid: WithUpperCap(e<=0)")
	}
	return func(c *config) {
		c.upperCap = e
	}
}
