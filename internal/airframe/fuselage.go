// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package airframe

import "math"

// Fuselage wraps the cabin and carries the tail cone.
type Fuselage struct {
	base

	Width          float64
	Height         float64
	Length         float64
	TailConeLength float64
}

// NewFuselage creates an unevaluated fuselage.
func NewFuselage() *Fuselage {
	return &Fuselage{}
}

// EvalGeometry derives the fuselage from the cabin dimensions and
// positions the cabin inside it.
func (f *Fuselage) EvalGeometry(af *Airframe) error {
	f.FrameOrigin = Vec3{0., 0., 0.}

	cabinWidth := af.Cabin.Width
	cabinLength := af.Cabin.Length

	// Cabin starts 4 meters behind the fuselage nose.
	const fwdLimit = 4.
	af.Cabin.FrameOrigin = Vec3{fwdLimit, 0., 0.}

	f.Width = cabinWidth + 0.4 // walls are supposed 0.2 m thick
	f.Height = 1.25 * (cabinWidth - 0.15)
	f.Length = fwdLimit + cabinLength + 1.50*f.Width
	f.TailConeLength = 3.45 * f.Width

	f.grossWetArea = 2.70 * f.Length * math.Sqrt(f.Width*f.Height)
	f.netWetArea = f.grossWetArea

	f.aeroLength = f.Length
	f.formFactor = 1.05
	return nil
}

// EvalMass applies the statistical regression versus built surface.
func (f *Fuselage) EvalMass(af *Airframe) error {
	kfus := math.Pi * f.Length * math.Sqrt(f.Width*f.Height)
	f.mass = 5.47 * math.Pow(kfus, 1.2)
	f.cg = Vec3{0.50 * f.Length, 0., 0.40 * f.Height}
	return nil
}
