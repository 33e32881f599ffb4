// SPDX-License-Identifier: MIT

package bkgd

import (
	"log/slog"

	"github.com/katalvlaran/phonxs/phonon"
)

// Options configures New.
//
//   - Phonons: phonon order passed to the engine; 0 lets the
//     engine choose and the choice is logged.
//   - IncludeZeroIncoherent: add the zero-phonon incoherent term.
//   - OnlyZeroIncoherent: use only that term; requires
//     IncludeZeroIncoherent and forces Phonons to 1.
//   - ExtrapolateFromPeak: crop the unreliable tail and extrapolate towards
//     the free cross-section (see package curve).
//   - Logger: diagnostics; nil discards.
type Options struct {
	Phonons               int
	IncludeZeroIncoherent bool
	OnlyZeroIncoherent    bool
	ExtrapolateFromPeak   bool
	Logger                *slog.Logger
}

// DefaultOptions returns auto-selected order, zero-phonon term included,
// extrapolation from the peak enabled.
func DefaultOptions() Options {
	return Options{
		Phonons:               0,
		IncludeZeroIncoherent: true,
		OnlyZeroIncoherent:    false,
		ExtrapolateFromPeak:   true,
	}
}

// zeroIncoherentMode maps the two flags onto the engine mode. Only without
// Include is rejected before this is called.
func (o Options) zeroIncoherentMode() phonon.ZeroIncoherentMode {
	switch {
	case o.OnlyZeroIncoherent:
		return phonon.OnlyZeroIncoherent
	case o.IncludeZeroIncoherent:
		return phonon.IncludeZeroIncoherent
	default:
		return phonon.ExcludeZeroIncoherent
	}
}
