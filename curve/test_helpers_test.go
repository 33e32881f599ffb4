// SPDX-License-Identifier: MIT

package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phonxs/grid"
	"github.com/katalvlaran/phonxs/units"
)

const (
	testBins       = 200
	testKeep       = 195 // last retained index of the cropping fixture
	testSaturation = 10.0
	slopeCalm      = 0.1 // dσ/dλ below 0.075·testSaturation
	slopeSteep     = 2.0 // dσ/dλ above 0.075·testSaturation
)

// testGrid is the default thermal-style grid: 200 points from 1e-5 to 1 eV.
func testGrid(t testing.TB) []float64 {
	t.Helper()
	g, err := grid.Logspace(grid.DefaultLowerBound, 1, testBins)
	require.NoError(t, err)

	return g
}

func wavelengths(energies []float64) []float64 {
	out := make([]float64, len(energies))
	for i, e := range energies {
		out[i] = units.EkinToWavelength(e)
	}

	return out
}

// linearInWavelength returns σ_i = base + slope·λ_i.
func linearInWavelength(energies []float64, base, slope float64) []float64 {
	wl := wavelengths(energies)
	out := make([]float64, len(wl))
	for i := range wl {
		out[i] = base + slope*wl[i]
	}

	return out
}

// cropFixture has dσ/dλ == slopeCalm up to bin testKeep and slopeSteep
// above it, so the scan must stop exactly at testKeep.
func cropFixture(energies []float64) []float64 {
	wl := wavelengths(energies)
	ref := wl[testKeep]
	out := make([]float64, len(wl))
	for i := range wl {
		if i <= testKeep {
			out[i] = 9.5 + slopeCalm*(wl[i]-ref)
		} else {
			out[i] = 9.5 + slopeSteep*(wl[i]-ref)
		}
	}

	return out
}
