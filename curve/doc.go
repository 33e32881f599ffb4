// SPDX-License-Identifier: MIT
// Package curve turns a truncated multi-phonon cross-section tabulation into
// a continuous σ(E) curve that can be queried anywhere in [0, ∞).
//
// Lifecycle:
//
//	b, _ := curve.NewBuilder(energies, curve.WithExtrapolateFromPeak(true))
//	for each element:
//	    b.Accumulate(xs, fraction)     // σ_comp[i] += xs[i]·fraction
//	c, err := b.Finalize(saturatedXS)  // crop + precompute, exactly once
//	σ := c.XS(ekin)                    // O(log n), safe for concurrent use
//
// Three regimes:
//
//	E < E[0]          σ = kLow·λ(E)                 (1/v law)
//	E[0] ≤ E ≤ E[n-1] σ = intercept[i] + slope[i]·E (linear in energy)
//	E > E[n-1]        σ = σ_sat + kHigh·λ(E)²       (saturating, in wavelength)
//
// kLow and kHigh are fixed by continuity with the first and last retained
// tabulation points. With extrapolation from the peak disabled, the top
// regime returns 0.
//
// Cropping:
//
//	The phonon expansion loses accuracy at short wavelengths when too few
//	orders are summed; σ then drops off instead of saturating. Finalize scans
//	from the top bin downwards and discards bins while dσ/dλ exceeds
//	threshold·σ_sat (DefaultCropThreshold = 0.075). If σ is already
//	non-increasing in λ at the top bin nothing is cropped. If no bin stops
//	the scan, Finalize fails with ErrNoConvergence.
//
// Concurrency:
//
//	Builder is single-goroutine. *Curve is immutable and may be shared.
package curve
