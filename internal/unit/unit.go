// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package unit converts between SI units and the usual aeronautical units.
// All model code works in SI; conversions belong at the boundaries
// (flags, config files, reports).
package unit

import (
	"fmt"
	"math"
)

const (
	meterPerNM   = 1852.
	meterPerFoot = 0.3048
	meterPerKm   = 1000.
	secondPerMin = 60.
	secondPerH   = 3600.
	wattPerKW    = 1000.
	joulePerKWh  = 3.6e6
	newtonPerDaN = 10.
)

// MFromNM converts nautical miles to meters.
func MFromNM(nm float64) float64 { return nm * meterPerNM }

// NMFromM converts meters to nautical miles.
func NMFromM(m float64) float64 { return m / meterPerNM }

// MFromFt converts feet to meters.
func MFromFt(ft float64) float64 { return ft * meterPerFoot }

// FtFromM converts meters to feet.
func FtFromM(m float64) float64 { return m / meterPerFoot }

// MFromKm converts kilometers to meters.
func MFromKm(km float64) float64 { return km * meterPerKm }

// KmFromM converts meters to kilometers.
func KmFromM(m float64) float64 { return m / meterPerKm }

// RadFromDeg converts degrees to radians.
func RadFromDeg(deg float64) float64 { return deg * math.Pi / 180. }

// DegFromRad converts radians to degrees.
func DegFromRad(rad float64) float64 { return rad * 180. / math.Pi }

// JFromKWh converts kilowatt hours to joules.
func JFromKWh(kwh float64) float64 { return kwh * joulePerKWh }

// KWhFromJ converts joules to kilowatt hours.
func KWhFromJ(j float64) float64 { return j / joulePerKWh }

// WFromKW converts kilowatts to watts.
func WFromKW(kw float64) float64 { return kw * wattPerKW }

// KWFromW converts watts to kilowatts.
func KWFromW(w float64) float64 { return w / wattPerKW }

// SFromMin converts minutes to seconds.
func SFromMin(min float64) float64 { return min * secondPerMin }

// MinFromS converts seconds to minutes.
func MinFromS(s float64) float64 { return s / secondPerMin }

// SFromH converts hours to seconds.
func SFromH(h float64) float64 { return h * secondPerH }

// HFromS converts seconds to hours.
func HFromS(s float64) float64 { return s / secondPerH }

// MpsFromKmph converts km/h to m/s.
func MpsFromKmph(kmph float64) float64 { return kmph * meterPerKm / secondPerH }

// KmphFromMps converts m/s to km/h.
func KmphFromMps(mps float64) float64 { return mps * secondPerH / meterPerKm }

// SI-per-unit factors for the generic converters. The SFC unit
// "kg/daN/h" is the one the design model quotes its techno assumptions in.
var siFactor = map[string]float64{
	"m":        1.,
	"NM":       meterPerNM,
	"ft":       meterPerFoot,
	"km":       meterPerKm,
	"deg":      math.Pi / 180.,
	"rad":      1.,
	"kg":       1.,
	"t":        1000.,
	"s":        1.,
	"min":      secondPerMin,
	"h":        secondPerH,
	"W":        1.,
	"kW":       wattPerKW,
	"N":        1.,
	"daN":      newtonPerDaN,
	"kN":       1000.,
	"J":        1.,
	"kWh":      joulePerKWh,
	"m/s":      1.,
	"km/h":     meterPerKm / secondPerH,
	"kg/daN/h": 1. / (newtonPerDaN * secondPerH),
}

// ConvertFrom converts a value expressed in the named unit into SI.
func ConvertFrom(u string, val float64) (float64, error) {
	f, ok := siFactor[u]
	if !ok {
		return 0, fmt.Errorf("unit: unknown unit %q", u)
	}
	return val * f, nil
}

// ConvertTo converts an SI value into the named unit.
func ConvertTo(u string, val float64) (float64, error) {
	f, ok := siFactor[u]
	if !ok {
		return 0, fmt.Errorf("unit: unknown unit %q", u)
	}
	return val / f, nil
}
