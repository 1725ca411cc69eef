// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package airframe

import (
	"github.com/cadolab/oadkit/internal/earth"
)

// WingBoxTank stores the fuel inside the wing box: cantilever parts in
// the outer wing plus a central box under the fuselage. The tank
// structure itself is part of the wing mass, so the component mass is
// the empty-tank zero; what matters is the volume-limited fuel capacity
// and the fuel CG.
type WingBoxTank struct {
	base

	// StructureRatio is the share of the box volume taken by structure
	// and system equipment.
	StructureRatio float64

	CantileverVolume float64 // m3
	CentralVolume    float64 // m3
	MaxVolume        float64 // m3
	FuelDensity      float64 // kg/m3, battery pack density for battery source
	MfwVolumeLimited float64 // kg

	FuelCantileverCG Vec3
	FuelCentralCG    Vec3
	FuelTotalCG      Vec3
}

// NewWingBoxTank creates an unevaluated wing box tank.
func NewWingBoxTank() *WingBoxTank {
	return &WingBoxTank{StructureRatio: 0.10}
}

// EvalGeometry computes the usable volumes and the fuel CGs from the
// wing planform.
func (t *WingBoxTank) EvalGeometry(af *Airframe) error {
	w := af.Wing

	t.CantileverVolume = 0.275 *
		(w.Area * w.Mac * (0.50*w.TocRoot + 0.30*w.TocKink + 0.20*w.TocTip)) *
		(1. - t.StructureRatio)

	t.CentralVolume = 1.3 *
		af.Fuselage.Width * w.TocRoot * w.Mac * w.Mac *
		(1. - t.StructureRatio)

	// If the energy source is a battery, the fuel density is the pack density.
	density, err := earth.FuelDensity(af.Arrangement.EnergySource)
	if err != nil {
		return err
	}
	t.FuelDensity = density

	t.MaxVolume = t.CentralVolume + t.CantileverVolume
	t.MfwVolumeLimited = t.MaxVolume * t.FuelDensity

	t.FuelCantileverCG = w.LocRoot.Add(Vec3{0.40 * w.CRoot, 0., 0.}).Scale(0.25).
		Add(w.LocKink.Add(Vec3{0.40 * w.CKink, 0., 0.}).Scale(0.65)).
		Add(w.LocTip.Add(Vec3{0.40 * w.CTip, 0., 0.}).Scale(0.10))

	t.FuelCentralCG = Vec3{w.LocRoot[0] + 0.30*w.CRoot, 0., w.LocRoot[2]}

	t.FuelTotalCG = t.FuelCentralCG.Scale(t.CentralVolume / t.MaxVolume).
		Add(t.FuelCantileverCG.Scale(t.CantileverVolume / t.MaxVolume))

	t.FrameOrigin = Vec3{w.LocRoot[0], 0., w.LocRoot[2]}
	return nil
}

// EvalMass is the empty-tank zero; the box structure is counted in the
// wing regression.
func (t *WingBoxTank) EvalMass(af *Airframe) error {
	t.mass = 0.
	t.cg = t.FuelTotalCG
	return nil
}
