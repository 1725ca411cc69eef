// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package design holds the top level sizing model: a mass-mission
// adaptation built on a structural regression and the Breguet range
// equation. It produces the characteristic weights, the payload-range
// envelope and the off-design operation of one airplane.
package design

import (
	"fmt"
	"math"

	"github.com/cadolab/oadkit/internal/earth"
	"github.com/cadolab/oadkit/internal/solver"
	"github.com/cadolab/oadkit/internal/unit"
)

// Aircraft is one sized airplane. NewAircraft runs the mass-mission
// adaptation so every field is ready after construction.
type Aircraft struct {
	Name string `yaml:"name"`

	CruiseAltp  float64 `yaml:"cruise_altp"` // m
	CruiseMach  float64 `yaml:"cruise_mach"`
	CruiseSpeed float64 `yaml:"cruise_speed"` // m/s
	Range       float64 `yaml:"range"`        // m, design mission
	NPax        float64 `yaml:"npax"`
	MPax        float64 `yaml:"mpax"` // kg per passenger, bags included
	KR          float64 `yaml:"kr"`   // fraction of mission fuel kept as reserve

	Payload     float64 `yaml:"payload"` // kg, design mission
	MTOW        float64 `yaml:"mtow"`
	OWE         float64 `yaml:"owe"`
	LDW         float64 `yaml:"ldw"`
	FuelMission float64 `yaml:"fuel_mission"`
	FuelReserve float64 `yaml:"fuel_reserve"`

	PayloadMax     float64 `yaml:"payload_max"`
	RangePlMax     float64 `yaml:"range_pl_max"`
	PayloadFuelMax float64 `yaml:"payload_fuel_max"`
	RangeFuelMax   float64 `yaml:"range_fuel_max"`
	RangeNoPl      float64 `yaml:"range_no_pl"`

	LoD      float64 `yaml:"lod"` // techno assumption
	SFC      float64 `yaml:"sfc"` // kg/s/N, techno assumption
	EffRatio float64 `yaml:"-"`   // lod/sfc, specific air range driver

	OweCoef [3]float64 `yaml:"-"` // structural regression
}

// NewAircraft sizes an airplane for a capacity, a design range (m) and
// a cruise Mach number.
func NewAircraft(npax, designRange, mach float64) (*Aircraft, error) {
	sfc, err := unit.ConvertFrom("kg/daN/h", 0.54)
	if err != nil {
		return nil, err
	}
	ac := &Aircraft{
		CruiseAltp: unit.MFromFt(35000.),
		CruiseMach: mach,
		Range:      designRange,
		NPax:       npax,
		MPax:       130.,
		KR:         0.05,
		LoD:        lOverD(npax),
		SFC:        sfc,
		OweCoef:    [3]float64{-1.478e-07, 5.459e-01, 8.40e+02},
	}
	if err := ac.Design(); err != nil {
		return nil, err
	}
	return ac, nil
}

// lOverD interpolates the lift over drag assumption versus capacity,
// clamped between a regional and a long range level.
func lOverD(npax float64) float64 {
	const (
		pax1, lod1 = 60., 15.
		pax2, lod2 = 160., 20.
	)
	lod := lod1 + (lod2-lod1)*(npax-pax1)/(pax2-pax1)
	return math.Max(lod1, math.Min(lod, lod2))
}

// Structure is the structural design rule: OWE versus MTOW.
func (ac *Aircraft) Structure(mtow float64) float64 {
	return (ac.OweCoef[0]*mtow+ac.OweCoef[1])*mtow + ac.OweCoef[2]
}

// Mission returns the range flown with a take off weight and a mission
// fuel, from the Breguet equation.
func (ac *Aircraft) Mission(tow, fuelMission float64) (float64, error) {
	_, tamb, _, _, err := earth.Atmosphere(ac.CruiseAltp, 0.)
	if err != nil {
		return 0, err
	}
	vsnd := earth.SoundSpeed(tamb)
	rangeFactor := (ac.CruiseMach * vsnd * ac.EffRatio) / earth.Gravity()
	return rangeFactor * math.Log(tow/(tow-fuelMission)), nil
}

// evalDesign closes the sizing loop: x is [mtow, fuel_mission], the
// residuals are the OWE gap between the structural rule and the weight
// breakdown, and the range gap against the requirement.
func (ac *Aircraft) evalDesign(x []float64) ([]float64, error) {
	ac.MTOW = x[0]
	ac.FuelMission = x[1]

	oweEff := ac.Structure(ac.MTOW)
	rangeEff, err := ac.Mission(ac.MTOW, ac.FuelMission)
	if err != nil {
		return nil, err
	}

	ac.FuelReserve = ac.KR * ac.FuelMission
	ac.LDW = ac.MTOW - ac.FuelMission
	ac.Payload = ac.NPax * ac.MPax
	ac.OWE = ac.MTOW - ac.Payload - ac.FuelMission - ac.FuelReserve

	return []float64{ac.OWE - oweEff, ac.Range - rangeEff}, nil
}

// Design runs the mass-mission adaptation and computes the
// payload-range envelope anchors.
func (ac *Aircraft) Design() error {
	ac.EffRatio = ac.LoD / ac.SFC

	x0 := []float64{ac.NPax * ac.MPax * 4., ac.NPax * ac.MPax * 1.}
	sol, err := solver.Solve(ac.evalDesign, x0, solver.Options{})
	if err != nil {
		return fmt.Errorf("design: mass-mission adaptation: %w", err)
	}
	if _, err := ac.evalDesign(sol); err != nil {
		return err
	}

	_, tamb, _, _, err := earth.Atmosphere(ac.CruiseAltp, 0.)
	if err != nil {
		return err
	}
	ac.CruiseSpeed = ac.CruiseMach * earth.SoundSpeed(tamb)

	// Envelope anchors: max payload, max fuel and zero payload missions.
	ac.PayloadMax = ac.Payload * 1.20
	fuel := (ac.MTOW - ac.OWE - ac.PayloadMax) / (1. + ac.KR)
	if ac.RangePlMax, err = ac.Mission(ac.MTOW, fuel); err != nil {
		return err
	}

	ac.PayloadFuelMax = ac.Payload * 0.40
	fuelMax := (ac.MTOW - ac.OWE - ac.PayloadFuelMax) / (1. + ac.KR)
	if ac.RangeFuelMax, err = ac.Mission(ac.MTOW, fuelMax); err != nil {
		return err
	}

	tow := ac.OWE + fuelMax*(1.+ac.KR)
	if ac.RangeNoPl, err = ac.Mission(tow, fuelMax); err != nil {
		return err
	}
	return nil
}

// Operation solves an off-design mission: fly npax passengers over a
// distance with the sized airplane. It returns the mission fuel, the
// block time and the take off weight.
func (ac *Aircraft) Operation(npax, dist float64) (fuel, time, tow float64, err error) {
	residual := func(x []float64) ([]float64, error) {
		tow, fuelMission := x[0], x[1]
		rangeEff, err := ac.Mission(tow, fuelMission)
		if err != nil {
			return nil, err
		}
		oweEff := tow - (ac.MPax*npax + (1.+ac.KR)*fuelMission)
		return []float64{ac.OWE - oweEff, dist - rangeEff}, nil
	}

	x0 := []float64{ac.NPax * ac.MPax * 4., ac.NPax * ac.MPax * 1.}
	sol, err := solver.Solve(residual, x0, solver.Options{})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("design: operational mission: %w", err)
	}
	tow = sol[0]
	fuel = sol[1]
	// 20 minutes of taxi and maneuver around the cruise segment.
	time = 20.*60. + dist/ac.CruiseSpeed
	return fuel, time, tow, nil
}

// MaxCapacity returns the number of passengers the envelope allows at a
// distance.
func (ac *Aircraft) MaxCapacity(dist float64) float64 {
	switch {
	case dist <= ac.RangePlMax:
		return math.Floor(ac.PayloadMax / ac.MPax)
	case dist <= ac.RangeFuelMax:
		payload := ac.PayloadFuelMax + (ac.PayloadMax-ac.PayloadFuelMax)*
			(dist-ac.RangeFuelMax)/(ac.RangePlMax-ac.RangeFuelMax)
		return math.Floor(payload / ac.MPax)
	case dist <= ac.RangeNoPl:
		payload := ac.PayloadFuelMax * (dist - ac.RangeNoPl) /
			(ac.RangeFuelMax - ac.RangeNoPl)
		return math.Floor(payload / ac.MPax)
	default:
		return 0.
	}
}

// MaxRange returns the distance the envelope allows with a number of
// passengers.
func (ac *Aircraft) MaxRange(npax float64) float64 {
	payload := ac.MPax * npax
	switch {
	case ac.PayloadMax < payload:
		return 0.
	case ac.PayloadFuelMax < payload:
		return ac.RangeFuelMax + (payload-ac.PayloadFuelMax)*
			(ac.RangePlMax-ac.RangeFuelMax)/(ac.PayloadMax-ac.PayloadFuelMax)
	default:
		return ac.RangeNoPl + payload*
			(ac.RangeFuelMax-ac.RangeNoPl)/ac.PayloadFuelMax
	}
}

// MissionCheck tells whether a mission fits the payload-range envelope
// and which limit pushes it out.
type MissionCheck struct {
	Capa bool // false: out because of capacity
	Dist bool // false: out because of range
	Both bool // false: out because of both
}

// Flyable reports whether the mission fits the envelope.
func (m MissionCheck) Flyable() bool { return m.Capa && m.Dist && m.Both }

// InPayloadRange assesses a mission against the envelope.
func (ac *Aircraft) InPayloadRange(npax, dist float64) MissionCheck {
	payload := npax * ac.MPax
	out := MissionCheck{Capa: true, Dist: true, Both: true}

	c1 := ac.PayloadMax - payload // max payload limit
	c2 := (payload-ac.PayloadFuelMax)*(ac.RangePlMax-ac.RangeFuelMax) -
		(ac.PayloadMax-ac.PayloadFuelMax)*(dist-ac.RangeFuelMax) // max take off weight limit
	c3 := payload*(ac.RangeFuelMax-ac.RangeNoPl) -
		ac.PayloadMax*(dist-ac.RangeNoPl) // max fuel limit
	c4 := ac.RangeNoPl - dist // max range limit

	if (c1 < 0 || c2 < 0 || c3 < 0) && c4 >= 0 {
		out.Capa = false
	}
	if c1 >= 0 && (c2 < 0 || c3 < 0 || c4 < 0) {
		out.Dist = false
	}
	if c1 < 0 && c4 < 0 {
		out.Both = false
	}
	return out
}

// PayloadRangePoint is one vertex of the payload-range diagram.
type PayloadRangePoint struct {
	Range   float64 // m
	Payload float64 // kg
}

// PayloadRange returns the envelope polyline, from max payload at zero
// range to the ferry mission.
func (ac *Aircraft) PayloadRange() []PayloadRangePoint {
	return []PayloadRangePoint{
		{Range: 0., Payload: ac.PayloadMax},
		{Range: ac.RangePlMax, Payload: ac.PayloadMax},
		{Range: ac.RangeFuelMax, Payload: ac.PayloadFuelMax},
		{Range: ac.RangeNoPl, Payload: 0.},
	}
}
