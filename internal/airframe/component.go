// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package airframe evaluates the geometry and mass of every airplane
// component from the requirements and the architectural arrangement.
// The regressions are statistical pre-design laws; all values are SI.
package airframe

import (
	"fmt"

	"github.com/cadolab/oadkit/internal/model"
)

// Vec3 is a position in the aircraft coordinate system (x aft, y right,
// z up, origin at the fuselage nose).
type Vec3 [3]float64

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Scale returns v scaled by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{k * v[0], k * v[1], k * v[2]}
}

// WeightCG carries the characteristic masses the component regressions
// depend on. They come from the mass-mission adaptation and are set on
// the airframe before evaluation.
type WeightCG struct {
	MTOW float64 // maximum take off weight, kg
	MZFW float64 // maximum zero fuel weight, kg
	MLW  float64 // maximum landing weight, kg
	OWE  float64 // operating empty weight, kg
}

// Aerodynamics carries the few aerodynamic assumptions the component
// regressions need.
type Aerodynamics struct {
	HldConfTO float64 // high lift device setting at take off, 0..1
	HldConfLD float64 // high lift device setting at landing, 0..1
}

// DefaultAerodynamics returns the usual settings: full deflection at
// landing, partial at take off.
func DefaultAerodynamics() Aerodynamics {
	return Aerodynamics{HldConfTO: 0.30, HldConfLD: 1.00}
}

// Component is the common surface of every airframe part. Geometry is
// always evaluated before mass; the airframe drives the ordering.
type Component interface {
	EvalGeometry(af *Airframe) error
	EvalMass(af *Airframe) error
	Mass() float64
	CG() Vec3
	NetWetArea() float64
	AeroLength() float64
	FormFactor() float64
}

// base holds the features shared by all components.
type base struct {
	FrameOrigin Vec3

	mass float64
	cg   Vec3

	grossWetArea float64 // wetted area of the component alone
	netWetArea   float64 // wetted area in the assembly (without footprints)
	aeroLength   float64 // characteristic length in the flow direction
	formFactor   float64 // pressure drag factor on skin friction
}

func (b *base) Mass() float64       { return b.mass }
func (b *base) CG() Vec3            { return b.cg }
func (b *base) NetWetArea() float64 { return b.netWetArea }
func (b *base) AeroLength() float64 { return b.aeroLength }
func (b *base) FormFactor() float64 { return b.formFactor }

// Airframe is the component assembly for one arrangement. Components
// read each other through the airframe during evaluation, mirroring the
// couplings of the pre-design laws.
type Airframe struct {
	Arrangement model.Arrangement
	Requirement model.Requirement
	Weight      WeightCG
	Aero        Aerodynamics

	Cabin          *Cabin
	Fuselage       *Fuselage
	Wing           *Wing
	VerticalStab   *VerticalStab
	HorizontalStab *HorizontalStab
	Tank           *WingBoxTank
	LandingGear    *LandingGear
	Nacelle        Nacelle
	Systems        Component
}

// Build assembles an airframe for the arrangement. The component set
// follows the architectural enums; unsupported combinations are
// rejected here rather than during evaluation.
func Build(arr model.Arrangement, req model.Requirement) (*Airframe, error) {
	if err := arr.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	af := &Airframe{
		Arrangement: arr,
		Requirement: req,
		Aero:        DefaultAerodynamics(),
	}

	af.Cabin = NewCabin(req)

	if arr.BodyType != "fuselage" {
		return nil, fmt.Errorf("airframe: body type %q is not supported", arr.BodyType)
	}
	af.Fuselage = NewFuselage()

	if arr.WingType != "classic" {
		return nil, fmt.Errorf("airframe: wing type %q is not supported", arr.WingType)
	}
	af.Wing = NewWing(req)

	switch arr.StabArchitecture {
	case "classic", "t_tail", "h_tail":
		af.VerticalStab = NewVerticalStab(arr.StabArchitecture, af.Wing.Area)
		af.HorizontalStab = NewHorizontalStab(arr.StabArchitecture, af.Wing.Area)
	default:
		return nil, fmt.Errorf("airframe: stab architecture %q is unknown", arr.StabArchitecture)
	}

	if arr.TankArchitecture != "wing_box" {
		return nil, fmt.Errorf("airframe: tank architecture %q is not supported", arr.TankArchitecture)
	}
	af.Tank = NewWingBoxTank()

	af.LandingGear = NewLandingGear()

	ne, err := arr.EngineCount()
	if err != nil {
		return nil, err
	}
	switch arr.PowerArchitecture {
	case "tf":
		af.Nacelle = NewTurbofanNacelle(req, arr, ne)
		af.Systems = NewSystems()
	case "ef":
		af.Nacelle = NewElectrofanNacelle(req, arr, ne)
		af.Systems = NewSystemsEF()
	default:
		return nil, fmt.Errorf("airframe: power architecture %q is unknown", arr.PowerArchitecture)
	}

	return af, nil
}

// EvalGeometry runs the geometry pre-design in dependency order. The
// stabilizer order depends on the architecture: the H tail anchors its
// fins on the horizontal tips, the others anchor the horizontal on the
// fin.
func (af *Airframe) EvalGeometry() error {
	seq := []Component{af.Cabin, af.Fuselage, af.Wing}
	if af.Arrangement.StabArchitecture == "h_tail" {
		seq = append(seq, af.HorizontalStab, af.VerticalStab)
	} else {
		seq = append(seq, af.VerticalStab, af.HorizontalStab)
	}
	seq = append(seq, af.Nacelle, af.Tank, af.LandingGear, af.Systems)

	for _, c := range seq {
		if err := c.EvalGeometry(af); err != nil {
			return err
		}
	}
	return nil
}

// EvalMass runs the mass regressions. Systems is last: its CG is a
// weighted blend of every other component CG.
func (af *Airframe) EvalMass() error {
	seq := []Component{
		af.Cabin, af.Fuselage, af.Wing,
		af.VerticalStab, af.HorizontalStab,
		af.Tank, af.LandingGear, af.Nacelle, af.Systems,
	}
	for _, c := range seq {
		if err := c.EvalMass(af); err != nil {
			return err
		}
	}
	return nil
}

// ComponentMap returns the named components for reporting.
func (af *Airframe) ComponentMap() map[string]Component {
	return map[string]Component{
		"cabin":           af.Cabin,
		"fuselage":        af.Fuselage,
		"wing":            af.Wing,
		"vertical_stab":   af.VerticalStab,
		"horizontal_stab": af.HorizontalStab,
		"tank":            af.Tank,
		"landing_gear":    af.LandingGear,
		"nacelle":         af.Nacelle,
		"systems":         af.Systems,
	}
}

// TotalMass sums the component masses (airframe contribution to OWE).
func (af *Airframe) TotalMass() float64 {
	m := 0.
	for _, c := range af.ComponentMap() {
		m += c.Mass()
	}
	return m
}
