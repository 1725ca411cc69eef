// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package airframe

import "math"

// LandingGear is sized against MTOW. The main legs sit slightly behind
// the wing MAC so the airplane can rotate.
type LandingGear struct {
	base
}

// NewLandingGear creates an unevaluated landing gear.
func NewLandingGear() *LandingGear {
	return &LandingGear{}
}

// EvalGeometry anchors the gear under the wing.
func (g *LandingGear) EvalGeometry(af *Airframe) error {
	g.FrameOrigin = Vec3{af.Wing.LocMac[0] + 0.60*af.Wing.Mac, 0., af.Wing.LocRoot[2]}
	return nil
}

// EvalMass applies the MTOW regression.
func (g *LandingGear) EvalMass(af *Airframe) error {
	mtow := af.Weight.MTOW
	g.mass = 0.02*math.Pow(mtow, 1.03) + 0.012*mtow
	g.cg = g.FrameOrigin
	return nil
}
