// SPDX-License-Identifier: MIT
// Package: phonxs/curve
//
// errors.go: sentinel errors for the curve package.
//
// Error priority inside Finalize:
//   ErrFinalized -> ErrBadSaturation -> ErrNoConvergence.

package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrGridTooShort is returned when a grid has fewer than two points.
	ErrGridTooShort = errors.New("curve: energy grid needs at least 2 points")

	// ErrGridNotIncreasing is returned when grid energies are not strictly
	// increasing, not finite, or not positive.
	ErrGridNotIncreasing = errors.New("curve: energy grid must be strictly increasing")

	// ErrLengthMismatch is returned when a contribution is not index-aligned
	// with the grid.
	ErrLengthMismatch = errors.New("curve: contribution length differs from grid")

	// ErrBadWeight is returned for weights outside (0,1].
	ErrBadWeight = errors.New("curve: weight must be in (0,1]")

	// ErrBadSaturation is returned for negative or non-finite saturated
	// cross-sections.
	ErrBadSaturation = errors.New("curve: saturated cross-section must be finite and >= 0")

	// ErrFinalized is returned by any mutation after Finalize was called,
	// including a second Finalize.
	ErrFinalized = errors.New("curve: builder already finalized")

	// ErrNoConvergence is returned when the cross-section keeps increasing
	// rapidly over all wavelengths, so no extrapolation anchor exists.
	ErrNoConvergence = errors.New("curve: cross sections from phonon expansion keep increasing rapidly over all wavelengths")
)

// curveErrorf wraps err with the method name and a formatted detail.
func curveErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
