// SPDX-License-Identifier: MIT
// Package element resolves atomic numbers to element symbols.
//
// Resolver is the pluggable contract used by the bkgd package; Periodic is
// the built-in table covering Z = 1…118.
package element

import (
	"errors"
	"fmt"
)

// ErrUnknownElement is returned for atomic numbers a resolver has no data for.
var ErrUnknownElement = errors.New("element: unknown atomic number")

// Resolver maps an atomic number to a canonical element symbol.
type Resolver interface {
	Symbol(z int) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(z int) (string, error)

// Symbol calls f(z).
func (f ResolverFunc) Symbol(z int) (string, error) { return f(z) }

// symbols is indexed by Z; index 0 is unused.
var symbols = [...]string{"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

type periodic struct{}

// Periodic resolves Z = 1…118 to IUPAC symbols.
var Periodic Resolver = periodic{}

func (periodic) Symbol(z int) (string, error) {
	if z < 1 || z >= len(symbols) {
		return "", fmt.Errorf("Symbol: Z=%d: %w", z, ErrUnknownElement)
	}

	return symbols[z], nil
}

// Number returns the atomic number of a symbol, or 0 if unknown.
func Number(symbol string) int {
	for z := 1; z < len(symbols); z++ {
		if symbols[z] == symbol {
			return z
		}
	}

	return 0
}
