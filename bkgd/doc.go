// SPDX-License-Identifier: MIT
// Package bkgd builds the multi-phonon background cross-section curve of a
// material from its metadata and a phonon-expansion engine.
//
// Steps performed by New:
//  1. Validate metadata (composition, temperature, free cross-section,
//     Debye temperature) and the option combination.
//  2. Build the thermal energy grid for kT = T·k_B.
//  3. For every species: resolve its symbol, pick its Debye temperature
//     (per element when all species have one, else the bulk value), expand
//     on the grid, and accumulate with weight count/total atoms per cell.
//  4. Finalize with the free-atom cross-section.
//
// Errors are fatal for the construction attempt; no partial curve is
// returned.
package bkgd
