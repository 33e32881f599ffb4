// SPDX-License-Identifier: MIT
// Package phonon defines the contract between the background cross-section
// model and whatever computes multi-phonon inelastic cross-sections.
//
// An Engine receives the element, its Debye energy, the thermal energy, the
// requested phonon order (0 = let the engine choose) and the energy grid,
// and returns one cross-section per grid energy together with the order it
// actually summed.
//
// Two implementations ship with the package:
//
//   - EngineFunc adapts a plain function (tests, custom backends).
//   - TableEngine serves cross-sections pre-computed by an external code,
//     stored per element and per phonon order, and linearly interpolated
//     onto the requested grid.
package phonon
