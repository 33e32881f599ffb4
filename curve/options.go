// SPDX-License-Identifier: MIT
// Package: phonxs/curve
//
// options.go: functional options for NewBuilder.
//
// Defaults:
//   • extrapolateFromPeak = true
//   • cropThreshold       = DefaultCropThreshold (0.075)
//   • logger              = discard

package curve

import (
	"io"
	"log/slog"
	"math"
)

// DefaultCropThreshold is the fraction of the saturated cross-section below
// which dσ/dλ no longer counts as rapid growth (hand-tuned, barn/Å per barn).
const DefaultCropThreshold = 0.075

// Option customizes a Builder.
type Option func(*config)

type config struct {
	extrapolateFromPeak bool
	cropThreshold       float64
	logger              *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		extrapolateFromPeak: true,
		cropThreshold:       DefaultCropThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}

// WithExtrapolateFromPeak toggles cropping of the unreliable tail and the
// saturating extrapolation above the grid. When off, the full tabulation is
// kept and σ is 0 above the last grid point.
func WithExtrapolateFromPeak(on bool) Option {
	return func(c *config) {
		c.extrapolateFromPeak = on
	}
}

// WithCropThreshold overrides DefaultCropThreshold. Panics unless t is
// finite and >= 0.
func WithCropThreshold(t float64) Option {
	if !(t >= 0) || math.IsInf(t, 0) {
		panic("curve: WithCropThreshold(t<0)")
	}
	return func(c *config) {
		c.cropThreshold = t
	}
}

// WithLogger sets the diagnostic logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("curve: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
