// SPDX-License-Identifier: MIT

// Package phonxs computes the inelastic (multi-phonon) background
// cross-section of crystalline materials for neutron scattering.
//
// A material's per-element phonon expansions are accumulated on a
// log-spaced energy grid, weighted by composition, and turned into a
// continuous curve σ(E). Below the grid the curve follows the 1/v law;
// above it, σ approaches the free-atom cross-section from the last
// retained grid point. An optional cropping step discards the unreliable
// high-energy tail before extrapolating.
//
// Packages:
//
//	units/    neutron energy/wavelength conversion and thermal energy
//	grid/     log-spaced tabulation grids
//	curve/    accumulate, crop and evaluate cross-section curves
//	phonon/   phonon-expansion engine contract and a tabulated engine
//	element/  atomic number to element symbol lookup
//	material/ material metadata (composition, temperature, Debye data)
//	bkgd/     the end-to-end background cross-section builder
//
// Quick start:
//
//	c, err := bkgd.New(mat, engine, nil, bkgd.DefaultOptions())
//	if err != nil { ... }
//	sigma := c.XS(0.025) // barn at 25 meV
//
// The cmd/phonxs CLI wraps the same pipeline for YAML material documents.
package phonxs
