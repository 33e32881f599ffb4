// SPDX-License-Identifier: MIT
// Package: phonxs/bkgd
//
// errors.go: sentinel errors for the bkgd package.
//
// Priority (checked in this order by New):
//   ErrNilInput -> ErrMissingAtomInfo -> ErrMissingTemperature
//   -> ErrMissingXSectFree -> ErrMissingDebyeTemperature -> ErrBadInput
//   -> ErrNoAtoms.

package bkgd

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned when the material info or the engine is nil.
	ErrNilInput = errors.New("bkgd: nil material info or engine")

	// ErrMissingAtomInfo is returned when the composition is absent.
	ErrMissingAtomInfo = errors.New("bkgd: material lacks atom information")

	// ErrMissingTemperature is returned when the temperature is absent.
	ErrMissingTemperature = errors.New("bkgd: material lacks temperature information")

	// ErrMissingXSectFree is returned when the free-atom cross-section is absent.
	ErrMissingXSectFree = errors.New("bkgd: material lacks free cross-section information")

	// ErrMissingDebyeTemperature is returned when neither per-element nor
	// bulk Debye temperatures are available.
	ErrMissingDebyeTemperature = errors.New("bkgd: material lacks Debye temperature information")

	// ErrBadInput is returned for inconsistent options.
	ErrBadInput = errors.New("bkgd: invalid input")

	// ErrNoAtoms is returned when the composition counts no atoms per cell.
	ErrNoAtoms = errors.New("bkgd: no atoms per unit cell")

	// ErrEngineOutput is returned when an engine result is not aligned with
	// the grid.
	ErrEngineOutput = errors.New("bkgd: engine output length differs from grid")
)

func bkgdErrorf(format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", MethodNew, fmt.Sprintf(format, args...), err)
}
