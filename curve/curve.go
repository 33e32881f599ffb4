// SPDX-License-Identifier: MIT

package curve

import (
	"sort"

	"github.com/katalvlaran/phonxs/units"
)

// segment is the linear model σ = intercept + slope·E on (E[i-1], E[i]].
type segment struct {
	intercept float64
	slope     float64
}

// Curve is a finalized, read-only cross-section curve. It is safe for
// concurrent use by multiple goroutines.
type Curve struct {
	energies       []float64
	segments       []segment // segments[0] is unused
	saturation     float64
	kLow           float64 // σ = kLow·λ below energies[0]
	kHigh          float64 // σ = saturation + kHigh·λ² above energies[n-1]
	edgeWavelength float64
	extrapolate    bool
}

// newCurve precomputes the per-segment coefficients and both extrapolation
// anchors from the retained tabulation. len(energies) == len(xs) >= 2.
func newCurve(energies, xs []float64, saturation float64, extrapolate bool) *Curve {
	n := len(energies)
	c := &Curve{
		energies:    energies,
		segments:    make([]segment, n),
		saturation:  saturation,
		extrapolate: extrapolate,
	}
	for u := 1; u < n; u++ {
		l := u - 1
		slope := (xs[u] - xs[l]) / (energies[u] - energies[l])
		c.segments[u] = segment{intercept: xs[l] - energies[l]*slope, slope: slope}
	}

	wlFirst := units.EkinToWavelength(energies[0])
	c.edgeWavelength = units.EkinToWavelength(energies[n-1])
	c.kLow = xs[0] / wlFirst
	c.kHigh = (xs[n-1] - saturation) / (c.edgeWavelength * c.edgeWavelength)

	return c
}

// XS returns the cross-section (barn) at kinetic energy ekin (eV).
//
// Regimes, located by binary search for the first grid energy > ekin:
//   - below the grid: kLow·λ(ekin), so XS(0) is +Inf for a non-zero first point;
//   - inside the grid: linear interpolation in energy;
//   - above the grid: saturation + kHigh·λ(ekin)², or 0 when extrapolation
//     from the peak is disabled.
//
// The last grid energy itself is evaluated on the last segment. Negative
// energies are not checked.
//
// Complexity: O(log n).
func (c *Curve) XS(ekin float64) float64 {
	n := len(c.energies)
	idx := sort.Search(n, func(i int) bool { return c.energies[i] > ekin })
	switch {
	case idx == n && ekin > c.energies[n-1]:
		if !c.extrapolate {
			return 0
		}
		wl := units.EkinToWavelength(ekin)
		return c.saturation + c.kHigh*wl*wl
	case idx == n:
		idx = n - 1
	case idx == 0:
		return c.kLow * units.EkinToWavelength(ekin)
	}
	s := c.segments[idx]

	return s.intercept + s.slope*ekin
}

// XSMany evaluates XS at every energy and appends the results to dst.
func (c *Curve) XSMany(dst, energies []float64) []float64 {
	for _, e := range energies {
		dst = append(dst, c.XS(e))
	}

	return dst
}

// Energies returns a copy of the retained grid.
func (c *Curve) Energies() []float64 {
	return append([]float64(nil), c.energies...)
}

// Len is the number of retained grid points.
func (c *Curve) Len() int { return len(c.energies) }

// Domain returns the first and last retained grid energies (eV).
func (c *Curve) Domain() (lo, hi float64) {
	return c.energies[0], c.energies[len(c.energies)-1]
}

// Saturation returns the saturated cross-section passed to Finalize.
func (c *Curve) Saturation() float64 { return c.saturation }

// EdgeWavelength is the wavelength (Å) of the last retained grid point;
// shorter wavelengths are extrapolated.
func (c *Curve) EdgeWavelength() float64 { return c.edgeWavelength }

// ExtrapolatesFromPeak reports the extrapolation policy the curve was built with.
func (c *Curve) ExtrapolatesFromPeak() bool { return c.extrapolate }
