// SPDX-License-Identifier: MIT

package phonon

import (
	"math"
	"sort"
)

// Method names used as error prefixes.
const (
	MethodNewTableEngine = "NewTableEngine"
	MethodExpand         = "Expand"
)

// Table is a pre-computed expansion for one element at one phonon order.
type Table struct {
	Order      int       `yaml:"order" json:"order"`
	Energies   []float64 `yaml:"energies" json:"energies"`
	XS         []float64 `yaml:"xs" json:"xs"`
	ZeroPhonon []float64 `yaml:"zero_phonon,omitempty" json:"zero_phonon,omitempty"`
}

// Validate checks order >= 1, at least two strictly increasing positive
// energies, aligned non-negative finite columns.
func (t Table) Validate() error {
	if t.Order < 1 {
		return ErrBadTable
	}
	if len(t.Energies) < 2 || len(t.XS) != len(t.Energies) {
		return ErrBadTable
	}
	if t.ZeroPhonon != nil && len(t.ZeroPhonon) != len(t.Energies) {
		return ErrBadTable
	}
	for i, e := range t.Energies {
		if !(e > 0) || math.IsInf(e, 0) || (i > 0 && !(e > t.Energies[i-1])) {
			return ErrBadTable
		}
	}
	if !nonNegative(t.XS) || !nonNegative(t.ZeroPhonon) {
		return ErrBadTable
	}

	return nil
}

func nonNegative(v []float64) bool {
	for _, x := range v {
		if !(x >= 0) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// TableEngine serves pre-computed tables. The tables are expected to match
// the material's temperature and Debye temperature; DebyeEnergy and KT of a
// Request are not used. Safe for concurrent use once constructed.
type TableEngine struct {
	tables map[string][]Table // sorted by ascending order
}

// NewTableEngine validates and indexes tables by element symbol. Every
// element needs at least one table, and orders must be unique per element.
func NewTableEngine(tables map[string][]Table) (*TableEngine, error) {
	idx := make(map[string][]Table, len(tables))
	for elem, list := range tables {
		if len(list) == 0 {
			return nil, phononErrorf(MethodNewTableEngine, "element %q has no tables", ErrBadTable, elem)
		}
		sorted := append([]Table(nil), list...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
		for i, t := range sorted {
			if err := t.Validate(); err != nil {
				return nil, phononErrorf(MethodNewTableEngine, "element %q order %d", err, elem, t.Order)
			}
			if i > 0 && sorted[i-1].Order == t.Order {
				return nil, phononErrorf(MethodNewTableEngine, "element %q duplicate order %d", ErrBadTable, elem, t.Order)
			}
		}
		idx[elem] = sorted
	}

	return &TableEngine{tables: idx}, nil
}

// Elements lists the tabulated element symbols in sorted order.
func (e *TableEngine) Elements() []string {
	out := make([]string, 0, len(e.tables))
	for k := range e.tables {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Expand picks the table of the requested order (the highest order when
// req.Order is 0) and interpolates the column selected by req.ZeroIncoherent
// onto req.Energies.
func (e *TableEngine) Expand(req Request) (Result, error) {
	if len(req.Energies) == 0 {
		return Result{}, phononErrorf(MethodExpand, "element %q: empty grid", ErrBadRequest, req.Element)
	}
	list, ok := e.tables[req.Element]
	if !ok {
		return Result{}, phononErrorf(MethodExpand, "element %q", ErrUnknownElement, req.Element)
	}

	var t Table
	if req.Order == 0 {
		t = list[len(list)-1]
	} else {
		i := sort.Search(len(list), func(i int) bool { return list[i].Order >= req.Order })
		if i == len(list) || list[i].Order != req.Order {
			return Result{}, phononErrorf(MethodExpand, "element %q order %d", ErrOrderUnavailable, req.Element, req.Order)
		}
		t = list[i]
	}

	var column []float64
	switch req.ZeroIncoherent {
	case ExcludeZeroIncoherent:
		column = t.XS
	case IncludeZeroIncoherent, OnlyZeroIncoherent:
		if t.ZeroPhonon == nil {
			return Result{}, phononErrorf(MethodExpand, "element %q order %d", ErrNoZeroPhonon, req.Element, t.Order)
		}
		column = t.ZeroPhonon
		if req.ZeroIncoherent == IncludeZeroIncoherent {
			column = make([]float64, len(t.XS))
			for i := range column {
				column[i] = t.XS[i] + t.ZeroPhonon[i]
			}
		}
	default:
		return Result{}, phononErrorf(MethodExpand, "zero-incoherent mode %d", ErrBadRequest, int(req.ZeroIncoherent))
	}

	out := make([]float64, len(req.Energies))
	for i, en := range req.Energies {
		out[i] = interpolate(t.Energies, column, en)
	}

	return Result{XS: out, Order: t.Order}, nil
}

// interpolate evaluates the piecewise-linear function (xs over energies) at
// en, holding the end values outside the tabulated range.
func interpolate(energies, xs []float64, en float64) float64 {
	n := len(energies)
	if en <= energies[0] {
		return xs[0]
	}
	if en >= energies[n-1] {
		return xs[n-1]
	}
	u := sort.SearchFloat64s(energies, en)
	if energies[u] == en {
		return xs[u]
	}
	l := u - 1
	f := (en - energies[l]) / (energies[u] - energies[l])

	return xs[l] + f*(xs[u]-xs[l])
}
