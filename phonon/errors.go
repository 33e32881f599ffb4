// SPDX-License-Identifier: MIT
// Package: phonxs/phonon
//
// errors.go: sentinel errors for the phonon package.

package phonon

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownElement is returned when an engine has no data for the element.
	ErrUnknownElement = errors.New("phonon: no data for element")

	// ErrOrderUnavailable is returned when the requested phonon order is not tabulated.
	ErrOrderUnavailable = errors.New("phonon: phonon order not available")

	// ErrNoZeroPhonon is returned when the zero-phonon incoherent term is
	// requested but not tabulated.
	ErrNoZeroPhonon = errors.New("phonon: zero-phonon incoherent term not available")

	// ErrBadTable is returned for malformed tables (lengths, ordering, values).
	ErrBadTable = errors.New("phonon: malformed table")

	// ErrBadRequest is returned for requests without a usable energy grid.
	ErrBadRequest = errors.New("phonon: invalid request")
)

func phononErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
