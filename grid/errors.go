// SPDX-License-Identifier: MIT
// Package: phonxs/grid
//
// errors.go: sentinel errors for the grid package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Call sites attach context with gridErrorf(method, ..., ErrX).

package grid

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a requested number of grid points below MinBins.
var ErrBadSize = errors.New("grid: invalid number of points")

// ErrBadBounds indicates non-positive, non-finite or non-increasing bounds.
var ErrBadBounds = errors.New("grid: invalid bounds")

// ErrBadTemperature indicates a non-positive or non-finite thermal energy.
var ErrBadTemperature = errors.New("grid: invalid thermal energy")

// gridErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable for errors.Is.
func gridErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
