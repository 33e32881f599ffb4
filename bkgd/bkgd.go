// SPDX-License-Identifier: MIT

package bkgd

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/phonxs/curve"
	"github.com/katalvlaran/phonxs/element"
	"github.com/katalvlaran/phonxs/grid"
	"github.com/katalvlaran/phonxs/material"
	"github.com/katalvlaran/phonxs/phonon"
	"github.com/katalvlaran/phonxs/units"
)

// MethodNew prefixes every error returned by New.
const MethodNew = "New"

// New builds the background cross-section curve of info using engine for
// the per-species expansions. A nil resolver falls back to
// element.Periodic.
func New(info material.Info, engine phonon.Engine, resolver element.Resolver, opts Options) (*curve.Curve, error) {
	if info == nil || engine == nil {
		return nil, bkgdErrorf("info=%v engine=%v", ErrNilInput, info != nil, engine != nil)
	}
	if err := checkInfo(info); err != nil {
		return nil, bkgdErrorf("%s", err, materialName(info))
	}
	if opts.OnlyZeroIncoherent && !opts.IncludeZeroIncoherent {
		return nil, bkgdErrorf("OnlyZeroIncoherent requires IncludeZeroIncoherent", ErrBadInput)
	}
	if opts.Phonons < 0 {
		return nil, bkgdErrorf("Phonons=%d", ErrBadInput, opts.Phonons)
	}
	if resolver == nil {
		resolver = element.Periodic
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	order := opts.Phonons
	if opts.OnlyZeroIncoherent {
		order = 1
	}
	mode := opts.zeroIncoherentMode()

	kT := units.ThermalEnergy(info.Temperature())
	energies, err := grid.Thermal(kT)
	if err != nil {
		return nil, bkgdErrorf("T=%gK", err, info.Temperature())
	}
	b, err := curve.NewBuilder(energies,
		curve.WithExtrapolateFromPeak(opts.ExtrapolateFromPeak),
		curve.WithLogger(logger))
	if err != nil {
		return nil, bkgdErrorf("grid", err)
	}

	atoms := info.Atoms()
	total := 0
	for _, a := range atoms {
		if a.PerCell < 0 {
			return nil, bkgdErrorf("Z=%d per_cell=%d", ErrBadInput, a.Z, a.PerCell)
		}
		total += a.PerCell
	}
	if total <= 0 {
		return nil, bkgdErrorf("total=%d", ErrNoAtoms, total)
	}

	perElement := info.HasPerElementDebyeTemperature()
	for _, a := range atoms {
		if a.PerCell == 0 {
			continue
		}
		symbol, err := resolver.Symbol(a.Z)
		if err != nil {
			return nil, bkgdErrorf("Z=%d", err, a.Z)
		}
		debye := info.DebyeTemperature()
		if perElement {
			debye = a.DebyeTemperature
		}

		res, err := engine.Expand(phonon.Request{
			Element:        symbol,
			DebyeEnergy:    units.ThermalEnergy(debye),
			KT:             kT,
			Order:          order,
			ZeroIncoherent: mode,
			Energies:       b.Energies(),
		})
		if err != nil {
			return nil, bkgdErrorf("expand %s", err, symbol)
		}
		if order == 0 {
			logger.Debug("phonon order automatically selected", "element", symbol, "order", res.Order)
		}
		if len(res.XS) != b.Len() {
			return nil, bkgdErrorf("%s: got %d want %d", ErrEngineOutput, symbol, len(res.XS), b.Len())
		}
		if err := b.Accumulate(res.XS, float64(a.PerCell)/float64(total)); err != nil {
			return nil, bkgdErrorf("accumulate %s", err, symbol)
		}
	}

	c, err := b.Finalize(info.XSectFree())
	if err != nil {
		return nil, bkgdErrorf("finalize", err)
	}

	return c, nil
}

func checkInfo(info material.Info) error {
	switch {
	case !info.HasAtomInfo():
		return ErrMissingAtomInfo
	case !info.HasTemperature():
		return ErrMissingTemperature
	case !info.HasXSectFree():
		return ErrMissingXSectFree
	case !info.HasPerElementDebyeTemperature() && !info.HasDebyeTemperature():
		return ErrMissingDebyeTemperature
	}

	return nil
}

func materialName(info material.Info) string {
	if m, ok := info.(*material.Material); ok && m.Name != "" {
		return m.Name
	}

	return "material"
}
