// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package airframe

import (
	"fmt"
	"math"
)

// Systems lumps all on-board systems of a thermal airplane into one
// mass item. The CG is a fixed blend of the other component positions,
// so it must be evaluated after them.
type Systems struct {
	base
}

// NewSystems creates an unevaluated systems component.
func NewSystems() *Systems {
	return &Systems{}
}

// EvalGeometry does nothing, systems have no own geometry.
func (s *Systems) EvalGeometry(af *Airframe) error { return nil }

// EvalMass applies the MTOW regression and blends the CG over the
// airframe components.
func (s *Systems) EvalMass(af *Airframe) error {
	s.mass = 0.545 * math.Pow(af.Weight.MTOW, 0.8) // global mass of all systems

	s.cg = af.Fuselage.CG().Scale(0.50).
		Add(af.Wing.CG().Scale(0.20)).
		Add(af.LandingGear.CG().Scale(0.10)).
		Add(af.HorizontalStab.CG().Scale(0.05)).
		Add(af.VerticalStab.CG().Scale(0.05)).
		Add(af.Nacelle.CG().Scale(0.10))
	return nil
}

// SystemsEF extends the systems item with the power electric chain of
// an electrofan airplane: wiring and cooling sized by power density
// against the total shaft power.
type SystemsEF struct {
	base

	WiringEfficiency float64
	WiringPwDensity  float64 // W/kg
	CoolingPwDensity float64 // W/kg

	PowerElecMass float64
	PowerElecCG   Vec3
}

// NewSystemsEF creates an unevaluated electric systems component.
func NewSystemsEF() *SystemsEF {
	return &SystemsEF{
		WiringEfficiency: 0.995,
		WiringPwDensity:  20.e3,
		CoolingPwDensity: 15.e3,
	}
}

// EvalGeometry does nothing, systems have no own geometry.
func (s *SystemsEF) EvalGeometry(af *Airframe) error { return nil }

// EvalMass adds the power electric chain to the classic systems
// regression. The chain sits between the nacelles and the fuselage.
func (s *SystemsEF) EvalMass(af *Airframe) error {
	efn, ok := af.Nacelle.(*ElectrofanNacelle)
	if !ok {
		return fmt.Errorf("airframe: electric systems require an electrofan nacelle")
	}

	shaftPowerMax := efn.ReferencePower
	s.PowerElecMass = (1./s.WiringPwDensity + 1./s.CoolingPwDensity) *
		shaftPowerMax * float64(efn.EngineCount())
	s.PowerElecCG = af.Nacelle.CG().Scale(0.70).Add(af.Fuselage.CG().Scale(0.30))

	s.mass = 0.545*math.Pow(af.Weight.MTOW, 0.8) + s.PowerElecMass

	s.cg = af.Fuselage.CG().Scale(0.40).
		Add(af.Wing.CG().Scale(0.20)).
		Add(af.LandingGear.CG().Scale(0.10)).
		Add(af.HorizontalStab.CG().Scale(0.05)).
		Add(af.VerticalStab.CG().Scale(0.05)).
		Add(af.Nacelle.CG().Scale(0.10)).
		Add(s.PowerElecCG.Scale(0.10))
	return nil
}
