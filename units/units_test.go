// SPDX-License-Identifier: MIT

package units_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phonxs/units"
)

func TestEkinToWavelength_RoundTrip(t *testing.T) {
	for _, e := range []float64{1e-5, 0.0253, 0.5, 1, 10} {
		wl := units.EkinToWavelength(e)
		require.Greater(t, wl, 0.0)
		assert.InEpsilon(t, e, units.WavelengthToEkin(wl), 1e-12)
	}
}

func TestEkinToWavelength_ThermalNeutron(t *testing.T) {
	// 25.3 meV ≈ 1.798 Å
	assert.InDelta(t, 1.798, units.EkinToWavelength(0.0253), 1e-3)
}

func TestEkinToWavelength_ZeroEnergy(t *testing.T) {
	assert.True(t, math.IsInf(units.EkinToWavelength(0), 1))
	assert.True(t, math.IsInf(units.WavelengthToEkin(0), 1))
}

func TestThermalEnergy(t *testing.T) {
	assert.InDelta(t, 0.025262, units.ThermalEnergy(293.15), 1e-6)
	assert.Equal(t, 0.0, units.ThermalEnergy(0))
}
