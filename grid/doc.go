// SPDX-License-Identifier: MIT
// Package grid builds the energy grids on which phonon-expansion
// cross-sections are tabulated.
//
// What it provides:
//
//   - Logspace(lo, hi, n): n energies with log10 evenly spaced in [lo, hi].
//   - Thermal(kT, opts...): the standard tabulation grid for a material at
//     thermal energy kT. The domain runs from DefaultLowerBound (1e-5 eV) to
//     min(DefaultUpperCap, ln(MaxFloat64)·kT·2), sampled at DefaultBins
//     points.
//
// Contract:
//
//   - Every returned grid is strictly increasing and has at least 2 points.
//   - Both ends are reproduced exactly (grid[0] == lo, grid[n-1] == hi).
//   - Functions never panic; option constructors (WithX) do panic on
//     meaningless values.
//
// Usage:
//
//	kT := units.ThermalEnergy(293.15)
//	energies, err := grid.Thermal(kT)
//	if err != nil {
//	    // errors.Is(err, grid.ErrBadTemperature) ...
//	}
package grid
