// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package airframe

import (
	"fmt"
	"math"

	"github.com/cadolab/oadkit/internal/unit"
)

// VerticalStab is the fin. Depending on the stabilizer architecture it
// is anchored on the rear fuselage (classic, t_tail) or doubled at the
// horizontal tips (h_tail).
type VerticalStab struct {
	base

	Arch string // "classic", "t_tail" or "h_tail"

	Area        float64 // coupling variable versus wing area
	Height      float64
	AspectRatio float64
	TaperRatio  float64
	Toc         float64
	Sweep25     float64
	Volume      float64
	LeverArm    float64

	LocRoot Vec3
	CRoot   float64
	LocTip  Vec3
	CTip    float64
	LocMac  Vec3
	Mac     float64
}

// NewVerticalStab seeds the fin with the design rules of its
// architecture.
func NewVerticalStab(arch string, wingArea float64) *VerticalStab {
	v := &VerticalStab{
		Arch:       arch,
		Area:       0.20 * wingArea,
		TaperRatio: 0.40,
		Toc:        0.10,
		Volume:     0.4,
	}
	switch arch {
	case "t_tail":
		v.AspectRatio = 1.2
		v.TaperRatio = 0.80
	case "h_tail":
		v.AspectRatio = 1.5
	default:
		v.AspectRatio = 1.7
	}
	return v
}

// EvalGeometry positions the fin. For the H tail the two fins hang at
// the horizontal tips and each carries half the area.
func (v *VerticalStab) EvalGeometry(af *Airframe) error {
	wingSweep25 := af.Wing.Sweep25

	refArea := v.Area
	if v.Arch == "h_tail" {
		refArea = 0.5 * v.Area // per fin
	}

	v.Height = math.Sqrt(v.AspectRatio * refArea)
	v.CRoot = 2. * refArea / (v.Height * (1. + v.TaperRatio))
	v.CTip = v.TaperRatio * v.CRoot

	v.Sweep25 = math.Max(unit.RadFromDeg(25.), wingSweep25+unit.RadFromDeg(10.)) // empirical law

	var xRoot, yRoot, zRoot float64
	switch v.Arch {
	case "h_tail":
		htpTip := af.HorizontalStab.LocTip
		xRoot = htpTip[0]
		yRoot = htpTip[1]
		zRoot = htpTip[2]
	default:
		fuselageLength := af.Fuselage.Length
		fuselageHeight := af.Fuselage.Height
		tailConeLength := af.Fuselage.TailConeLength

		const xAnchor = 0.85 // locate versus end fuselage length
		xRoot = fuselageLength*(1.-tailConeLength/fuselageLength*(1.-xAnchor)) - v.CRoot
		yRoot = 0.
		zRoot = fuselageHeight
	}
	xTip := xRoot + 0.25*(v.CRoot-v.CTip) + v.Height*math.Tan(v.Sweep25)
	yTip := yRoot
	zTip := zRoot + v.Height

	v.Mac = v.Height * (v.CRoot*v.CRoot + v.CTip*v.CTip + v.CRoot*v.CTip) / (3. * refArea)
	xMac := xRoot + (xTip-xRoot)*v.Height*(2.*v.CTip+v.CRoot)/(6.*refArea)
	yMac := yTip
	zMac := zTip * zTip * (2.*v.CTip + v.CRoot) / (6. * refArea)

	v.LeverArm = (xMac + 0.25*v.Mac) - (af.Wing.LocMac[0] + 0.25*af.Wing.Mac)

	v.LocRoot = Vec3{xRoot, yRoot, zRoot}
	v.LocTip = Vec3{xTip, yTip, zTip}
	v.LocMac = Vec3{xMac, yMac, zMac}

	v.FrameOrigin = Vec3{xRoot, yRoot, zRoot}

	v.grossWetArea = 2.01 * v.Area
	v.netWetArea = v.grossWetArea

	v.aeroLength = v.Mac
	v.formFactor = 1.40
	return nil
}

// EvalMass applies the area regression. The T tail is heavier because
// it carries the horizontal tail loads.
func (v *VerticalStab) EvalMass(af *Airframe) error {
	switch v.Arch {
	case "t_tail":
		v.mass = 28. * v.Area
	default:
		v.mass = 25. * v.Area
	}
	v.cg = v.LocMac.Add(Vec3{0.20 * v.Mac, 0., 0.})
	return nil
}

// HorizontalStab is the horizontal tail plane.
type HorizontalStab struct {
	base

	Arch string

	Area        float64 // coupling variable versus wing area
	Span        float64
	AspectRatio float64
	TaperRatio  float64
	Toc         float64
	Sweep25     float64
	Dihedral    float64
	Volume      float64
	LeverArm    float64

	LocAxe Vec3
	CAxe   float64
	LocTip Vec3
	CTip   float64
	LocMac Vec3
	Mac    float64
}

// NewHorizontalStab seeds the horizontal tail with the design rules of
// its architecture.
func NewHorizontalStab(arch string, wingArea float64) *HorizontalStab {
	h := &HorizontalStab{
		Arch:        arch,
		Area:        0.33 * wingArea,
		AspectRatio: 5.0,
		TaperRatio:  0.35,
		Toc:         0.10,
		Dihedral:    unit.RadFromDeg(5.),
		Volume:      0.94,
	}
	if arch == "h_tail" {
		h.TaperRatio = 0.45
	}
	return h
}

// EvalGeometry positions the horizontal tail. The anchor depends on the
// architecture: mid fin root (classic), fin tip (t_tail) or rear
// fuselage (h_tail).
func (h *HorizontalStab) EvalGeometry(af *Airframe) error {
	fuselageHeight := af.Fuselage.Height
	wingSweep25 := af.Wing.Sweep25
	wingLocMac := af.Wing.LocMac
	wingMac := af.Wing.Mac

	h.Span = math.Sqrt(h.AspectRatio * h.Area)
	yAxe := 0.
	yTip := 0.5 * h.Span

	const zWiseAnchor = 0.80 // locate versus end fuselage height

	h.CAxe = 2. * h.Area / (h.Span * (1. + h.TaperRatio))
	h.CTip = h.TaperRatio * h.CAxe

	h.Sweep25 = wingSweep25 + unit.RadFromDeg(5.) // design rule

	var zAxe float64
	var xAxe float64
	switch h.Arch {
	case "classic":
		zAxe = zWiseAnchor * fuselageHeight
		xAxe = af.VerticalStab.LocRoot[0] + 0.50*af.VerticalStab.CRoot - 0.2*h.CAxe
	case "t_tail":
		zAxe = fuselageHeight + af.VerticalStab.Height
		xAxe = af.VerticalStab.LocTip[0] + 0.30*af.VerticalStab.CTip - 0.80*h.CTip
	case "h_tail":
		fuselageLength := af.Fuselage.Length
		tailConeLength := af.Fuselage.TailConeLength
		zAxe = zWiseAnchor * fuselageHeight
		const xWiseAnchor = 0.85
		xAxe = fuselageLength*(1.-tailConeLength/fuselageLength*(1.-xWiseAnchor)) - h.CAxe
	default:
		return fmt.Errorf("airframe: stab architecture %q is unknown", h.Arch)
	}
	zTip := zAxe + yTip*math.Tan(h.Dihedral)

	h.Mac = h.Span * (h.CAxe*h.CAxe + h.CTip*h.CTip + h.CAxe*h.CTip) / (3. * h.Area)
	yMac := yTip * yTip * (2.*h.CTip + h.CAxe) / (3. * h.Area)
	zMac := zTip * zTip * (2.*h.CTip + h.CAxe) / (3. * h.Area)
	xTipLocal := 0.25*(h.CAxe-h.CTip) + yTip*math.Tan(h.Sweep25)
	xMacLocal := yTip * xTipLocal * (h.CTip*2. + h.CAxe) / (3. * h.Area)

	xTip := xAxe + xTipLocal
	xMac := xAxe + xMacLocal

	h.LeverArm = (xMac + 0.25*h.Mac) - (wingLocMac[0] + 0.25*wingMac)

	h.LocAxe = Vec3{xAxe, yAxe, zAxe}
	h.LocTip = Vec3{xTip, yTip, zTip}
	h.LocMac = Vec3{xMac, yMac, zMac}

	h.FrameOrigin = h.LocAxe

	if h.Arch == "t_tail" {
		h.grossWetArea = 2.01 * h.Area
	} else {
		h.grossWetArea = 1.63 * h.Area
	}
	h.netWetArea = h.grossWetArea

	h.aeroLength = h.Mac
	h.formFactor = 1.40
	return nil
}

// EvalMass applies the area regression.
func (h *HorizontalStab) EvalMass(af *Airframe) error {
	h.mass = 22. * h.Area
	h.cg = h.LocMac.Add(Vec3{0.20 * h.Mac, 0., 0.})
	return nil
}
