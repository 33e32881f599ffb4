// SPDX-License-Identifier: MIT

package grid

import "math"

// Method names used as error prefixes.
const (
	MethodLogspace = "Logspace"
	MethodThermal  = "Thermal"
)

// Logspace returns n energies whose log10 values are evenly spaced between
// log10(lo) and log10(hi). The end points are exact.
//
// Errors:
//   - ErrBadSize   if n < MinBins.
//   - ErrBadBounds if lo or hi is not finite and positive, or lo >= hi.
//
// Complexity: O(n) time and memory.
func Logspace(lo, hi float64, n int) ([]float64, error) {
	if n < MinBins {
		return nil, gridErrorf(MethodLogspace, "n=%d", ErrBadSize, n)
	}
	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 0) {
		return nil, gridErrorf(MethodLogspace, "lo=%g hi=%g", ErrBadBounds, lo, hi)
	}

	a, b := math.Log10(lo), math.Log10(hi)
	step := (b - a) / float64(n-1)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Pow(10, a+step*float64(i))
	}
	// pin the ends so callers can rely on exact bounds
	out[0], out[n-1] = lo, hi

	return out, nil
}

// ThermalUpperBound returns min(upperCap, ln(MaxFloat64)·kT·2): beyond that
// energy the Boltzmann factors of the phonon expansion leave the float64
// range.
func ThermalUpperBound(kT, upperCap float64) float64 {
	return math.Min(upperCap, math.Log(math.MaxFloat64)*kT*2)
}

// Thermal returns the tabulation grid for a material with thermal energy kT
// (eV): log-spaced from the lower bound up to ThermalUpperBound(kT, cap).
//
// Errors:
//   - ErrBadTemperature if kT is not finite and positive.
//   - ErrBadBounds      if the thermal upper bound does not exceed the lower bound.
func Thermal(kT float64, opts ...Option) ([]float64, error) {
	if !(kT > 0) || math.IsInf(kT, 0) {
		return nil, gridErrorf(MethodThermal, "kT=%g", ErrBadTemperature, kT)
	}
	cfg := newConfig(opts...)
	hi := ThermalUpperBound(kT, cfg.upperCap)
	if !(hi > cfg.lower) {
		return nil, gridErrorf(MethodThermal, "upper bound %g eV not above %g eV", ErrBadBounds, hi, cfg.lower)
	}

	return Logspace(cfg.lower, hi, cfg.bins)
}
