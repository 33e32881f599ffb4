// SPDX-License-Identifier: MIT

package phonon

// ZeroIncoherentMode selects how the zero-phonon incoherent (elastic
// incoherent) term enters the expansion.
type ZeroIncoherentMode int

const (
	// ExcludeZeroIncoherent sums only the inelastic orders.
	ExcludeZeroIncoherent ZeroIncoherentMode = iota
	// IncludeZeroIncoherent adds the zero-phonon incoherent term.
	IncludeZeroIncoherent
	// OnlyZeroIncoherent returns the zero-phonon incoherent term alone.
	OnlyZeroIncoherent
)

func (m ZeroIncoherentMode) String() string {
	switch m {
	case ExcludeZeroIncoherent:
		return "exclude"
	case IncludeZeroIncoherent:
		return "include"
	case OnlyZeroIncoherent:
		return "only"
	default:
		return "unknown"
	}
}

// Request describes one per-element expansion.
type Request struct {
	Element        string  // element symbol, e.g. "Al"
	DebyeEnergy    float64 // k_B·T_Debye in eV
	KT             float64 // k_B·T in eV
	Order          int     // phonon order; 0 lets the engine choose
	ZeroIncoherent ZeroIncoherentMode
	Energies       []float64 // strictly increasing grid (eV)
}

// Result is the outcome of an expansion.
type Result struct {
	XS    []float64 // barn per atom, len(XS) == len(Request.Energies)
	Order int       // order actually summed
}

// Engine computes per-element multi-phonon cross-sections on a grid.
type Engine interface {
	Expand(req Request) (Result, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(req Request) (Result, error)

// Expand calls f(req).
func (f EngineFunc) Expand(req Request) (Result, error) {
	return f(req)
}
