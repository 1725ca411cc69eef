// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package earth provides the ambient physics shared by all models:
// standard atmosphere, gas data, stagnation relations and fuel
// properties. All quantities are SI.
package earth

import (
	"fmt"
	"math"
)

// Gravity returns the standard acceleration of gravity in m/s2.
func Gravity() float64 { return 9.80665 }

// GasData returns the air gas constants: r, gamma, Cp, Cv.
func GasData() (r, gam, cp, cv float64) {
	r = 287.053
	gam = 1.4
	cv = r / (gam - 1.)
	cp = gam * cv
	return r, gam, cp, cv
}

// SoundSpeed returns the speed of sound for a static temperature.
func SoundSpeed(tamb float64) float64 {
	r, gam, _, _ := GasData()
	return math.Sqrt(gam * r * tamb)
}

// AirDensity returns the air density and the density ratio sigma versus
// sea level standard.
func AirDensity(pamb, tamb float64) (rho, sig float64) {
	r, _, _, _ := GasData()
	rho0 := 101325. / (r * 288.15)
	rho = pamb / (r * tamb)
	return rho, rho / rho0
}

// TotalPressure returns the stagnation pressure at a flight Mach number.
func TotalPressure(pamb, mach float64) float64 {
	_, gam, _, _ := GasData()
	return pamb * math.Pow(1.+0.5*(gam-1.)*mach*mach, gam/(gam-1.))
}

// TotalTemperature returns the stagnation temperature at a flight Mach number.
func TotalTemperature(tamb, mach float64) float64 {
	_, gam, _, _ := GasData()
	return tamb * (1. + 0.5*(gam-1.)*mach*mach)
}

// Atmosphere returns ambient pressure, ambient temperature, standard
// temperature and temperature gradient for a pressure altitude and a
// temperature shift versus ISA. Valid from ground to 50 km.
func Atmosphere(altp, disa float64) (pamb, tamb, tstd, dtodz float64, err error) {
	g := Gravity()
	r, _, _, _ := GasData()

	z := [6]float64{0., 11000., 20000., 32000., 47000., 50000.}
	dtdz := [5]float64{-0.0065, 0., 0.0010, 0.0028, 0.}

	var p, t [6]float64
	p[0] = 101325.
	t[0] = 288.15

	if z[5] < altp {
		return 0, 0, 0, 0, fmt.Errorf("earth: altitude %.0f m exceeds atmosphere model ceiling (50 km)", altp)
	}

	// The top of model (z[5] exactly) resolves inside the last layer.
	j := 0
	for j+1 < len(dtdz) && z[j+1] <= altp {
		t[j+1] = t[j] + dtdz[j]*(z[j+1]-z[j])
		if 0. < math.Abs(dtdz[j]) {
			p[j+1] = p[j] * math.Pow(1.+(dtdz[j]/t[j])*(z[j+1]-z[j]), -g/(r*dtdz[j]))
		} else {
			p[j+1] = p[j] * math.Exp(-(g/r)*((z[j+1]-z[j])/t[j]))
		}
		j++
	}

	if 0. < math.Abs(dtdz[j]) {
		pamb = p[j] * math.Pow(1.+(dtdz[j]/t[j])*(altp-z[j]), -g/(r*dtdz[j]))
	} else {
		pamb = p[j] * math.Exp(-(g/r)*((altp-z[j])/t[j]))
	}
	tstd = t[j] + dtdz[j]*(altp-z[j])
	tamb = tstd + disa
	return pamb, tamb, tstd, dtdz[j], nil
}

// EnergySource identifies what feeds the power architecture.
type EnergySource string

const (
	Kerosene EnergySource = "kerosene"
	Methane  EnergySource = "methane"
	LiquidH2 EnergySource = "liquid_h2"
	Battery  EnergySource = "battery"
)

// FuelHeat returns the lower heating value of an energy source in J/kg.
// For batteries the value is the pack energy density.
func FuelHeat(src EnergySource) (float64, error) {
	switch src {
	case Kerosene:
		return 43.1e6, nil
	case Methane:
		return 50.3e6, nil
	case LiquidH2:
		return 121.0e6, nil
	case Battery:
		return 1.2 * 3.6e6, nil // J/kg, pack level
	default:
		return 0, fmt.Errorf("earth: unknown energy source %q", src)
	}
}

// FuelDensity returns the density of an energy source in kg/m3.
// For batteries the value is the pack density.
func FuelDensity(src EnergySource) (float64, error) {
	switch src {
	case Kerosene:
		return 803., nil
	case Methane:
		return 422.6, nil
	case LiquidH2:
		return 70.8, nil
	case Battery:
		return 2800., nil
	default:
		return 0, fmt.Errorf("earth: unknown energy source %q", src)
	}
}
