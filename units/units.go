// SPDX-License-Identifier: MIT
// Package units holds the physical constants and the neutron
// energy ↔ wavelength conversions shared by the grid, curve and bkgd
// packages.
//
// Conventions:
//   - Energies are kinetic energies in eV.
//   - Wavelengths are in Ångström (Å).
//   - Temperatures are in Kelvin.
//
// The conversion is non-relativistic: E = WavelengthEnergyConst / λ².
package units

import "math"

const (
	// Boltzmann is the Boltzmann constant in eV/K.
	Boltzmann = 8.6173303e-5

	// WavelengthEnergyConst is h²/(2·m_n) expressed in eV·Å².
	WavelengthEnergyConst = 0.081804209605330899
)

// EkinToWavelength converts a neutron kinetic energy (eV) to its de Broglie
// wavelength (Å). Zero energy maps to +Inf.
func EkinToWavelength(ekin float64) float64 {
	return math.Sqrt(WavelengthEnergyConst / ekin)
}

// WavelengthToEkin converts a wavelength (Å) to a kinetic energy (eV).
// Zero wavelength maps to +Inf.
func WavelengthToEkin(wl float64) float64 {
	return WavelengthEnergyConst / (wl * wl)
}

// ThermalEnergy returns k_B·T in eV for a temperature in Kelvin.
func ThermalEnergy(temperature float64) float64 {
	return temperature * Boltzmann
}
