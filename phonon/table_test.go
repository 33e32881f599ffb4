// SPDX-License-Identifier: MIT

package phonon_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phonxs/phonon"
)

func sampleTables() map[string][]phonon.Table {
	return map[string][]phonon.Table{
		"Al": {
			{Order: 5, Energies: []float64{0.01, 0.1, 1}, XS: []float64{1, 2, 3}, ZeroPhonon: []float64{0.5, 0.25, 0}},
			{Order: 2, Energies: []float64{0.01, 1}, XS: []float64{1, 1}},
		},
		"O": {
			{Order: 3, Energies: []float64{0.01, 1}, XS: []float64{4, 2}},
		},
	}
}

func newEngine(t *testing.T) *phonon.TableEngine {
	t.Helper()
	e, err := phonon.NewTableEngine(sampleTables())
	require.NoError(t, err)

	return e
}

func TestTableEngine_Elements(t *testing.T) {
	assert.Equal(t, []string{"Al", "O"}, newEngine(t).Elements())
}

func TestTableEngine_AutoOrderPicksHighest(t *testing.T) {
	res, err := newEngine(t).Expand(phonon.Request{
		Element:  "Al",
		Energies: []float64{0.001, 0.01, 0.055, 0.1, 1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Order)
	assert.InDeltaSlice(t, []float64{1, 1, 1.5, 2, 3, 3}, res.XS, 1e-12)
}

func TestTableEngine_ExplicitOrder(t *testing.T) {
	res, err := newEngine(t).Expand(phonon.Request{Element: "Al", Order: 2, Energies: []float64{0.5}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Order)
	assert.Equal(t, []float64{1}, res.XS)

	_, err = newEngine(t).Expand(phonon.Request{Element: "Al", Order: 3, Energies: []float64{0.5}})
	assert.True(t, errors.Is(err, phonon.ErrOrderUnavailable))

	_, err = newEngine(t).Expand(phonon.Request{Element: "Al", Order: 9, Energies: []float64{0.5}})
	assert.True(t, errors.Is(err, phonon.ErrOrderUnavailable))
}

func TestTableEngine_ZeroIncoherentModes(t *testing.T) {
	e := newEngine(t)
	grid := []float64{0.01, 0.1}

	res, err := e.Expand(phonon.Request{Element: "Al", ZeroIncoherent: phonon.IncludeZeroIncoherent, Energies: grid})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 2.25}, res.XS, 1e-12)

	res, err = e.Expand(phonon.Request{Element: "Al", ZeroIncoherent: phonon.OnlyZeroIncoherent, Energies: grid})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.25}, res.XS, 1e-12)

	_, err = e.Expand(phonon.Request{Element: "O", ZeroIncoherent: phonon.IncludeZeroIncoherent, Energies: grid})
	assert.True(t, errors.Is(err, phonon.ErrNoZeroPhonon))

	_, err = e.Expand(phonon.Request{Element: "O", ZeroIncoherent: phonon.ZeroIncoherentMode(7), Energies: grid})
	assert.True(t, errors.Is(err, phonon.ErrBadRequest))
}

func TestTableEngine_RequestErrors(t *testing.T) {
	e := newEngine(t)

	_, err := e.Expand(phonon.Request{Element: "Xx", Energies: []float64{1}})
	assert.True(t, errors.Is(err, phonon.ErrUnknownElement))

	_, err = e.Expand(phonon.Request{Element: "Al"})
	assert.True(t, errors.Is(err, phonon.ErrBadRequest))
}

func TestNewTableEngine_Rejects(t *testing.T) {
	cases := map[string]phonon.Table{
		"order zero":      {Order: 0, Energies: []float64{1, 2}, XS: []float64{1, 1}},
		"single point":    {Order: 1, Energies: []float64{1}, XS: []float64{1}},
		"length mismatch": {Order: 1, Energies: []float64{1, 2}, XS: []float64{1}},
		"zero phonon len": {Order: 1, Energies: []float64{1, 2}, XS: []float64{1, 1}, ZeroPhonon: []float64{1}},
		"not increasing":  {Order: 1, Energies: []float64{2, 1}, XS: []float64{1, 1}},
		"zero energy":     {Order: 1, Energies: []float64{0, 1}, XS: []float64{1, 1}},
		"negative xs":     {Order: 1, Energies: []float64{1, 2}, XS: []float64{1, -1}},
	}
	for name, tbl := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := phonon.NewTableEngine(map[string][]phonon.Table{"Al": {tbl}})
			assert.True(t, errors.Is(err, phonon.ErrBadTable), "got %v", err)
		})
	}

	_, err := phonon.NewTableEngine(map[string][]phonon.Table{"Al": nil})
	assert.True(t, errors.Is(err, phonon.ErrBadTable))

	ok := phonon.Table{Order: 1, Energies: []float64{1, 2}, XS: []float64{1, 1}}
	_, err = phonon.NewTableEngine(map[string][]phonon.Table{"Al": {ok, ok}})
	assert.True(t, errors.Is(err, phonon.ErrBadTable))
}

func TestEngineFunc(t *testing.T) {
	var e phonon.Engine = phonon.EngineFunc(func(req phonon.Request) (phonon.Result, error) {
		return phonon.Result{XS: make([]float64, len(req.Energies)), Order: 1}, nil
	})
	res, err := e.Expand(phonon.Request{Energies: []float64{1, 2, 3}})
	require.NoError(t, err)
	assert.Len(t, res.XS, 3)
}

func TestZeroIncoherentMode_String(t *testing.T) {
	assert.Equal(t, "exclude", phonon.ExcludeZeroIncoherent.String())
	assert.Equal(t, "include", phonon.IncludeZeroIncoherent.String())
	assert.Equal(t, "only", phonon.OnlyZeroIncoherent.String())
	assert.Equal(t, "unknown", phonon.ZeroIncoherentMode(-1).String())
}
