// SPDX-License-Identifier: MIT

package curve

import (
	"math"

	"github.com/katalvlaran/phonxs/units"
)

// Method names used as error prefixes.
const (
	MethodNewBuilder = "NewBuilder"
	MethodAccumulate = "Accumulate"
	MethodFinalize   = "Finalize"
)

// Builder accumulates weighted per-element cross-section tabulations on a
// shared energy grid and finalizes them into a Curve.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	energies  []float64 // owned copy, strictly increasing
	xs        []float64 // composite tabulation; nil once finalized
	finalized bool
	cfg       config
}

// NewBuilder returns a Builder over a copy of energies.
//
// Errors:
//   - ErrGridTooShort      if len(energies) < 2.
//   - ErrGridNotIncreasing if energies are not finite, positive and strictly increasing.
func NewBuilder(energies []float64, opts ...Option) (*Builder, error) {
	if len(energies) < 2 {
		return nil, curveErrorf(MethodNewBuilder, "len=%d", ErrGridTooShort, len(energies))
	}
	for i, e := range energies {
		if math.IsNaN(e) || math.IsInf(e, 0) || e <= 0 {
			return nil, curveErrorf(MethodNewBuilder, "energy[%d]=%g", ErrGridNotIncreasing, i, e)
		}
		if i > 0 && !(e > energies[i-1]) {
			return nil, curveErrorf(MethodNewBuilder, "energy[%d]=%g after %g", ErrGridNotIncreasing, i, e, energies[i-1])
		}
	}

	return &Builder{
		energies: append([]float64(nil), energies...),
		xs:       make([]float64, len(energies)),
		cfg:      newConfig(opts...),
	}, nil
}

// Energies returns a copy of the builder grid. Engines evaluate their
// contributions on exactly these points.
func (b *Builder) Energies() []float64 {
	return append([]float64(nil), b.energies...)
}

// Len is the number of grid points before any cropping.
func (b *Builder) Len() int { return len(b.energies) }

// Finalized reports whether Finalize has been called.
func (b *Builder) Finalized() bool { return b.finalized }

// Accumulate adds xs[i]·weight to the composite tabulation for every i.
// The result does not depend on the order of calls. Weights are expected to
// be the per-cell fraction of the element; their sum is not checked.
//
// Errors:
//   - ErrFinalized      after Finalize.
//   - ErrBadWeight      if weight is not in (0,1].
//   - ErrLengthMismatch if len(xs) != Len().
func (b *Builder) Accumulate(xs []float64, weight float64) error {
	if b.finalized {
		return curveErrorf(MethodAccumulate, "weight=%g", ErrFinalized, weight)
	}
	if !(weight > 0 && weight <= 1) {
		return curveErrorf(MethodAccumulate, "weight=%g", ErrBadWeight, weight)
	}
	if len(xs) != len(b.xs) {
		return curveErrorf(MethodAccumulate, "got %d want %d", ErrLengthMismatch, len(xs), len(b.xs))
	}
	for i, v := range xs {
		b.xs[i] += v * weight
	}

	return nil
}

// Tabulation returns a copy of the composite tabulation accumulated so far,
// or nil once the builder is finalized.
func (b *Builder) Tabulation() []float64 {
	if b.xs == nil {
		return nil
	}

	return append([]float64(nil), b.xs...)
}

// Finalize fixes the saturated (free-atom) cross-section, crops the
// unreliable high-energy tail when extrapolating from the peak, and
// precomputes the query coefficients.
//
// Finalize may be called once. Any later call fails with ErrFinalized, even
// if the first call returned an error other than ErrBadSaturation.
//
// Errors:
//   - ErrFinalized     on a repeated call.
//   - ErrBadSaturation if saturation is negative or not finite.
//   - ErrNoConvergence if no bin satisfies the cropping stop rule.
func (b *Builder) Finalize(saturation float64) (*Curve, error) {
	if b.finalized {
		return nil, curveErrorf(MethodFinalize, "saturation=%g", ErrFinalized, saturation)
	}
	if !(saturation >= 0) || math.IsInf(saturation, 0) {
		return nil, curveErrorf(MethodFinalize, "saturation=%g", ErrBadSaturation, saturation)
	}
	b.finalized = true
	xs := b.xs
	b.xs = nil

	n := len(b.energies)
	if b.cfg.extrapolateFromPeak {
		var err error
		n, err = cropIndex(b.energies, xs, b.cfg.cropThreshold*saturation)
		if err != nil {
			return nil, curveErrorf(MethodFinalize, "saturation=%g threshold=%g", err, saturation, b.cfg.cropThreshold)
		}
		n++ // keep bins 0..n
	}

	c := newCurve(b.energies[:n:n], xs[:n], saturation, b.cfg.extrapolateFromPeak)
	if b.cfg.extrapolateFromPeak {
		b.cfg.logger.Debug("multi-phonon cross-section extrapolated below edge wavelength",
			"wavelength_aa", c.edgeWavelength,
			"kept_bins", n,
			"dropped_bins", len(b.energies)-n)
	}

	return c, nil
}

// cropIndex returns the index of the last bin to keep. It scans n from the
// top bin down, with d = Δσ/Δλ between bins n-1 and n:
//
//	top bin and d <= 0  -> keep everything
//	d < limit           -> keep 0..n
//	otherwise           -> drop bin n, continue
//
// Reaching n == 0 yields ErrNoConvergence.
func cropIndex(energies, xs []float64, limit float64) (int, error) {
	last := len(energies) - 1
	for n := last; n > 0; n-- {
		dxs := xs[n] - xs[n-1]
		dwl := units.EkinToWavelength(energies[n]) - units.EkinToWavelength(energies[n-1])
		d := dxs / dwl
		if n == last && d <= 0 {
			return last, nil
		}
		if d < limit {
			return n, nil
		}
	}

	return 0, ErrNoConvergence
}
