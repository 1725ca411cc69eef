// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package propulsion designs the turbofan cycle at a flight point. It
// complements the statistical nacelle model with a thermodynamic sizing
// of the air veins: the semi-empirical model answers "how heavy, how
// wide", the cycle answers "which fan pressure ratio, which nozzle".
package propulsion

import (
	"fmt"
	"math"

	"github.com/cadolab/oadkit/internal/earth"
	"github.com/cadolab/oadkit/internal/solver"
)

// CycleSpec fixes the design assumptions of the cycle. Zero fields get
// the defaults of a modern high bypass ratio engine.
type CycleSpec struct {
	T4      float64 // turbine entry temperature, K
	OPR     float64 // overall pressure ratio
	BPR     float64 // bypass ratio
	PwSplit float64 // share of usable power sent to the fan shaft
	MachFan float64 // axial Mach number at fan face
	HubWidth float64 // m

	EffFan        float64
	EffCompressor float64
	EffThermal    float64
	EffMechanical float64
}

func (s CycleSpec) withDefaults() CycleSpec {
	if s.T4 <= 0 {
		s.T4 = 1700.
	}
	if s.OPR <= 0 {
		s.OPR = 50.
	}
	if s.BPR <= 0 {
		s.BPR = 12.
	}
	if s.PwSplit <= 0 {
		s.PwSplit = 0.90
	}
	if s.MachFan <= 0 {
		s.MachFan = 0.55
	}
	if s.HubWidth <= 0 {
		s.HubWidth = 0.2
	}
	if s.EffFan <= 0 {
		s.EffFan = 0.95
	}
	if s.EffCompressor <= 0 {
		s.EffCompressor = 0.95
	}
	if s.EffThermal <= 0 {
		s.EffThermal = 0.46
	}
	if s.EffMechanical <= 0 {
		s.EffMechanical = 0.99
	}
	return s
}

// CycleDesign is the output of a cycle design.
type CycleDesign struct {
	FN  float64 // N
	SFC float64 // kg/s/N
	FPR float64 // fan pressure ratio

	FanWidth        float64 // m
	FanNozzleArea   float64 // m2
	FanNozzleWidth  float64 // m
	CoreNozzleArea  float64 // m2
	CoreNozzleWidth float64 // m

	FuelFlow float64 // kg/s, echoes the input
}

// DesignCycle sizes the engine cycle for a fuel flow at a flight point.
// Nozzles are assumed adapted.
func DesignCycle(altp, disa, mach, fuelFlow float64, spec CycleSpec) (CycleDesign, error) {
	spec = spec.withDefaults()

	r, gam, cp, _ := earth.GasData()
	fhv, err := earth.FuelHeat(earth.Kerosene)
	if err != nil {
		return CycleDesign{}, err
	}

	pamb, tamb, _, _, err := earth.Atmosphere(altp, disa)
	if err != nil {
		return CycleDesign{}, err
	}
	ptot := earth.TotalPressure(pamb, mach)
	ttot := earth.TotalTemperature(tamb, mach)
	vair := mach * earth.SoundSpeed(tamb)

	// Engine cycle definition.
	pwFuel := fuelFlow * fhv
	pwuCore := pwFuel * spec.EffThermal * spec.EffMechanical // effective usable power

	// Stagnation temperature after compressors.
	t3 := ttot * (1. + (math.Pow(spec.OPR, (gam-1.)/gam)-1.)/spec.EffCompressor)
	if spec.T4 <= t3 {
		return CycleDesign{}, fmt.Errorf("propulsion: turbine temperature %.0f K below compressor exit %.0f K", spec.T4, t3)
	}
	qCore := pwFuel / ((spec.T4 - t3) * cp) // core air flow that holds T4
	vjCore := math.Sqrt(vair*vair + 2.*pwuCore*(1.-spec.PwSplit)/qCore)
	fnCore := qCore * (vjCore - vair)

	qFan := qCore * spec.BPR
	pwsFan := pwuCore * spec.PwSplit // fan shaft power per the power sharing
	pwuFan := pwsFan * spec.EffFan
	vjFan := math.Sqrt(vair*vair + 2.*pwuFan/qFan)
	fnFan := qFan * (vjFan - vair)

	fn := fnCore + fnFan

	// Air vein sizing.
	ttotFanJet := ttot + pwsFan/(qFan*cp)
	tstatFanJet := ttotFanJet - 0.5*vjFan*vjFan/cp

	// Fan nozzle is adapted so its static exhaust pressure is pamb.
	ptotFanJet := pamb * math.Pow(ttotFanJet/tstatFanJet, gam/(gam-1.))
	fpr := ptotFanJet / ptot

	ttotCoreJet := ttotFanJet + pwFuel/(qCore*cp) // core inlet is behind the fan
	tstatCoreJet := ttotCoreJet - 0.5*vjCore*vjCore/cp
	machCoreJet := vjCore / earth.SoundSpeed(tstatCoreJet)
	ptotCoreJet := pamb * math.Pow(ttotCoreJet/tstatCoreJet, gam/(gam-1.))

	cqoaCore := correctedAirFlow(ptotCoreJet, ttotCoreJet, machCoreJet)
	coreNozzleArea := qCore / cqoaCore
	coreNozzleWidth := math.Sqrt(4. * coreNozzleArea / math.Pi)

	cqoaInlet := correctedAirFlow(ptot, ttot, spec.MachFan)
	fanArea := qFan / cqoaInlet
	fanWidth := math.Sqrt(spec.HubWidth*spec.HubWidth + 4.*fanArea/math.Pi)

	machFanJet := vjFan / math.Sqrt(gam*r*tstatFanJet)
	ptotFanJetNozzle := earth.TotalPressure(pamb, machFanJet)

	cqoaFanJet := correctedAirFlow(ptotFanJetNozzle, ttotFanJet, machFanJet)
	fanNozzleArea := qFan / cqoaFanJet
	fanNozzleWidth := math.Sqrt(coreNozzleWidth*coreNozzleWidth + 4.*fanNozzleArea/math.Pi)

	return CycleDesign{
		FN:              fn,
		SFC:             fuelFlow / fn,
		FPR:             fpr,
		FanWidth:        fanWidth,
		FanNozzleArea:   fanNozzleArea,
		FanNozzleWidth:  fanNozzleWidth,
		CoreNozzleArea:  coreNozzleArea,
		CoreNozzleWidth: coreNozzleWidth,
		FuelFlow:        fuelFlow,
	}, nil
}

// DesignCycleForThrust finds the fuel flow that produces a required
// thrust at the flight point, then sizes the cycle there.
func DesignCycleForThrust(altp, disa, mach, thrust float64, spec CycleSpec) (CycleDesign, error) {
	spec = spec.withDefaults()

	residual := func(x []float64) ([]float64, error) {
		d, err := DesignCycle(altp, disa, mach, x[0], spec)
		if err != nil {
			return nil, err
		}
		return []float64{d.FN - thrust}, nil
	}

	// Modern engines burn roughly 15 g/s per kN of cruise thrust.
	x0 := []float64{thrust * 15.e-6}
	sol, err := solver.Solve(residual, x0, solver.Options{})
	if err != nil {
		return CycleDesign{}, fmt.Errorf("propulsion: thrust matching: %w", err)
	}
	return DesignCycle(altp, disa, mach, sol[0], spec)
}

// correctedAirFlow computes the corrected air flow per square meter.
func correctedAirFlow(ptot, ttot, mach float64) float64 {
	r, gam, _, _ := earth.GasData()
	fM := mach * math.Pow(1.+0.5*(gam-1.)*mach*mach, -(gam+1.)/(2.*(gam-1.)))
	return (math.Sqrt(gam/r) * ptot / math.Sqrt(ttot)) * fM
}
