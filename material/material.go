// SPDX-License-Identifier: MIT
// Package material describes the crystal metadata the background
// cross-section model needs: composition, temperature, free-atom
// cross-section and Debye temperatures.
//
// Info is the read-only contract; every field has a presence check because
// material sources (data files, databases) may omit any of them.
package material

// Atom is one species of the unit cell.
type Atom struct {
	Z       int `yaml:"z" json:"z"`
	PerCell int `yaml:"per_cell" json:"per_cell"`
	// DebyeTemperature (K) of this species; 0 when not known per element.
	DebyeTemperature float64 `yaml:"debye_temperature,omitempty" json:"debye_temperature,omitempty"`
}

// Info exposes material metadata with explicit presence flags.
type Info interface {
	HasAtomInfo() bool
	Atoms() []Atom
	HasTemperature() bool
	Temperature() float64 // K
	HasXSectFree() bool
	XSectFree() float64 // barn per atom
	HasPerElementDebyeTemperature() bool
	HasDebyeTemperature() bool
	DebyeTemperature() float64 // bulk value, K
}

// Material is a plain Info implementation; nil pointers mean "absent".
type Material struct {
	Name                 string   `yaml:"name,omitempty" json:"name,omitempty"`
	Composition          []Atom   `yaml:"atoms,omitempty" json:"atoms,omitempty"`
	TemperatureK         *float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	FreeXS               *float64 `yaml:"xsect_free,omitempty" json:"xsect_free,omitempty"`
	BulkDebyeTemperature *float64 `yaml:"debye_temperature,omitempty" json:"debye_temperature,omitempty"`
}

var _ Info = (*Material)(nil)

// HasAtomInfo reports a non-empty composition.
func (m *Material) HasAtomInfo() bool { return len(m.Composition) > 0 }

// Atoms returns a copy of the composition.
func (m *Material) Atoms() []Atom { return append([]Atom(nil), m.Composition...) }

func (m *Material) HasTemperature() bool { return m.TemperatureK != nil }

func (m *Material) Temperature() float64 { return deref(m.TemperatureK) }

func (m *Material) HasXSectFree() bool { return m.FreeXS != nil }

func (m *Material) XSectFree() float64 { return deref(m.FreeXS) }

// HasPerElementDebyeTemperature is true when every atom carries its own
// positive Debye temperature.
func (m *Material) HasPerElementDebyeTemperature() bool {
	if len(m.Composition) == 0 {
		return false
	}
	for _, a := range m.Composition {
		if !(a.DebyeTemperature > 0) {
			return false
		}
	}

	return true
}

func (m *Material) HasDebyeTemperature() bool { return m.BulkDebyeTemperature != nil }

func (m *Material) DebyeTemperature() float64 { return deref(m.BulkDebyeTemperature) }

// Float returns a pointer to v, for filling optional fields.
func Float(v float64) *float64 { return &v }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}
