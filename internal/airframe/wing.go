// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package airframe

import (
	"fmt"
	"math"

	"github.com/cadolab/oadkit/internal/earth"
	"github.com/cadolab/oadkit/internal/model"
	"github.com/cadolab/oadkit/internal/unit"
)

// Wing morphing modes: either the aspect ratio or the span drives the
// planform.
const (
	AspectRatioDriven = "aspect_ratio_driven"
	SpanDriven        = "span_driven"
)

// Wing computes the cranked planform, the mean aerodynamic chord, the
// lift gradient and the wing setting at cruise.
type Wing struct {
	base

	Morphing    string
	Area        float64
	Span        float64
	AspectRatio float64
	TaperRatio  float64
	Sweep25     float64
	Dihedral    float64
	Setting     float64
	HldType     int

	LocRoot Vec3    // leading edge of the root chord
	TocRoot float64 // thickness over chord at root
	CRoot   float64

	LocKink Vec3
	TocKink float64
	CKink   float64

	LocTip Vec3
	TocTip float64
	CTip   float64

	LocMac Vec3
	Mac    float64
}

// NewWing seeds the planform from the requirement. Area and aspect
// ratio are starting values for the morphing.
func NewWing(req model.Requirement) *Wing {
	w := &Wing{
		Morphing:    AspectRatioDriven,
		Area:        60. + 88.*req.NPaxRef*req.DesignRange*1.e-9,
		AspectRatio: 9.,
		TaperRatio:  0.25,
		HldType:     9,
	}
	// Kink chord leading edge stays clear of the belly fairing.
	xKink := 1.2 * (0.38*req.NPaxFront + 1.05*req.NAisle + 0.55)
	w.LocKink = Vec3{xKink, xKink, 0.}
	return w
}

// EvalGeometry computes the cranked planform and the wing setting.
func (w *Wing) EvalGeometry(af *Airframe) error {
	wingAttachment := af.Arrangement.WingAttachment
	cruiseMach := af.Requirement.CruiseMach
	fuselageWidth := af.Fuselage.Width
	fuselageLength := af.Fuselage.Length
	fuselageHeight := af.Fuselage.Height

	w.TocTip = 0.10
	w.TocKink = w.TocTip + 0.01
	w.TocRoot = w.TocKink + 0.03

	w.Sweep25 = 1.6 * math.Max(0., cruiseMach-0.5) // empirical law

	w.Dihedral = unit.RadFromDeg(5.)

	switch w.Morphing {
	case AspectRatioDriven:
		w.Span = math.Sqrt(w.AspectRatio * w.Area)
	case SpanDriven:
		w.AspectRatio = w.Span * w.Span / w.Area
	default:
		return fmt.Errorf("airframe: wing morphing %q is unknown", w.Morphing)
	}

	yRoot := 0.5 * fuselageWidth
	yKink := w.LocKink[1]
	yTip := 0.5 * w.Span

	if 15. < unit.DegFromRad(w.Sweep25) {
		// Cranked planform with a trailing edge break at the kink.
		phi100 := math.Max(0., 2.*(w.Sweep25-unit.RadFromDeg(32.)))
		tanPhi100 := math.Tan(phi100)
		a := ((1.-0.25*w.TaperRatio)*yKink + 0.25*w.TaperRatio*yRoot - yTip) / (0.75*yKink + 0.25*yRoot - yTip)
		b := (math.Tan(w.Sweep25) - tanPhi100) * ((yTip - yKink) * (yKink - yRoot)) / (0.25*yRoot + 0.75*yKink - yTip)
		w.CRoot = (w.Area - b*(yTip-yRoot)) / (yRoot + yKink + a*(yTip-yRoot) + w.TaperRatio*(yTip-yKink))
		w.CKink = a*w.CRoot + b
		w.CTip = w.TaperRatio * w.CRoot
	} else {
		// Straight taper, the kink chord interpolates root and tip.
		w.CRoot = 2. * w.Area / (2.*yRoot*(1.-w.TaperRatio) + (1.+w.TaperRatio)*math.Sqrt(w.AspectRatio*w.Area))
		w.CTip = w.TaperRatio * w.CRoot
		w.CKink = ((yTip-yKink)*w.CRoot + (yKink-yRoot)*w.CTip) / (yTip - yRoot)
	}

	tanPhi0 := 0.25*(w.CKink-w.CTip)/(yTip-yKink) + math.Tan(w.Sweep25)

	w.Mac = 2. * (3.*yRoot*w.CRoot*w.CRoot +
		(yKink-yRoot)*(w.CRoot*w.CRoot+w.CKink*w.CKink+w.CRoot*w.CKink) +
		(yTip-yKink)*(w.CKink*w.CKink+w.CTip*w.CTip+w.CKink*w.CTip)) / (3. * w.Area)

	yMac := (3.*w.CRoot*yRoot*yRoot +
		(yKink-yRoot)*(w.CKink*(yRoot+yKink*2.)+w.CRoot*(yKink+yRoot*2.)) +
		(yTip-yKink)*(w.CTip*(yKink+yTip*2.)+w.CKink*(yTip+yKink*2.))) / (3. * w.Area)

	xMacLocal := ((yKink-yRoot)*tanPhi0*((yKink-yRoot)*(w.CKink*2.+w.CRoot)+
		(yTip-yKink)*(w.CKink*2.+w.CTip)) +
		(yTip-yRoot)*tanPhi0*(yTip-yKink)*(w.CTip*2.+w.CKink)) / (3. * w.Area)

	xRoot := 0.33*math.Pow(fuselageLength, 1.1) - (xMacLocal + 0.25*w.Mac)
	xKink := xRoot + (yKink-yRoot)*tanPhi0
	xTip := xRoot + (yTip-yRoot)*tanPhi0

	xMac := xRoot + ((xKink-xRoot)*((yKink-yRoot)*(w.CKink*2.+w.CRoot)+
		(yTip-yKink)*(w.CKink*2.+w.CTip))+
		(xTip-xRoot)*(yTip-yKink)*(w.CTip*2.+w.CKink)) / (w.Area * 3.)

	var zRoot float64
	if wingAttachment == "low" {
		zRoot = 0.
	} else {
		zRoot = fuselageHeight - 0.5*w.TocRoot*w.CRoot
	}
	zKink := zRoot + (yKink-yRoot)*math.Tan(w.Dihedral)
	zTip := zRoot + (yTip-yRoot)*math.Tan(w.Dihedral)

	w.LocRoot = Vec3{xRoot, yRoot, zRoot}
	w.LocKink = Vec3{xKink, yKink, zKink}
	w.LocTip = Vec3{xTip, yTip, zTip}
	w.LocMac = Vec3{xMac, yMac, 0.}

	w.FrameOrigin = Vec3{xRoot, 0., zRoot}

	w.grossWetArea = 2.00 * (w.Area - w.CRoot*fuselageWidth)
	w.netWetArea = w.grossWetArea

	w.aeroLength = w.Mac
	w.formFactor = 1.40

	// Wing setting so that AoA = 2.5 deg at cruise start.
	g := earth.Gravity()
	_, gam, _, _ := earth.GasData()

	pamb, _, _, _, err := earth.Atmosphere(af.Requirement.CruiseAltp, 0.)
	if err != nil {
		return err
	}
	mach := af.Requirement.CruiseMach
	mass := 0.95 * af.Weight.MTOW

	czaWing := w.Cza(mach, fuselageWidth, w.AspectRatio, w.Span, w.Sweep25)
	w.Setting = (0.97*mass*g)/(0.5*gam*pamb*mach*mach*w.Area*czaWing) - unit.RadFromDeg(2.5)
	return nil
}

// EvalMass applies the Shevell formula plus a high lift device
// regression.
func (w *Wing) EvalMass(af *Airframe) error {
	mtow := af.Weight.MTOW
	mzfw := af.Weight.MZFW
	hldConfLD := af.Aero.HldConfLD

	czMaxLD, _, err := w.HighLift(hldConfLD)
	if err != nil {
		return err
	}

	a := 32. * math.Pow(w.Area, 1.1)
	b := 4. * w.Span * w.Span * math.Sqrt(mtow*mzfw)
	c := 1.1e-6 * (1. + 2.*w.AspectRatio) / (1. + w.AspectRatio)
	d := (0.6*w.TocRoot + 0.3*w.TocKink + 0.1*w.TocTip) * (w.Area / w.Span)
	e := math.Pow(math.Cos(w.Sweep25), 2.)
	f := 1200. * math.Pow(math.Max(0., czMaxLD-1.8), 1.5)

	w.mass = a + (b*c)/(d*e) + f

	w.cg = w.LocRoot.Add(Vec3{0.40 * w.CRoot, 0., 0.}).Scale(0.25).
		Add(w.LocKink.Add(Vec3{0.40 * w.CKink, 0., 0.}).Scale(0.55)).
		Add(w.LocTip.Add(Vec3{0.40 * w.CTip, 0., 0.}).Scale(0.20))
	return nil
}

// Cza returns the wing lift gradient from the Polhamus formula.
func (w *Wing) Cza(mach, fuselageWidth, aspectRatio, span, sweep float64) float64 {
	return (math.Pi * aspectRatio * (1.07 * math.Pow(1.+fuselageWidth/span, 2.)) * (1. - fuselageWidth/span)) /
		(1. + math.Sqrt(1.+0.25*aspectRatio*aspectRatio*(1.+math.Pow(math.Tan(sweep), 2.)-mach*mach)))
}

// Maximum landing lift coefficients of different airfoils, DUBS 1987.
var czMaxLDByHldType = map[int]float64{
	0:  1.45, // clean
	1:  2.25, // flap only, rotation without slot
	2:  2.60, // flap only, rotation single slot (ATR)
	3:  2.80, // flap only, rotation double slot
	4:  2.80, // Fowler flap
	5:  2.00, // slat only
	6:  2.45, // slat + flap rotation without slot
	7:  2.70, // slat + flap rotation single slot
	8:  2.90, // slat + flap rotation double slot
	9:  3.00, // slat + Fowler (A320)
	10: 3.20, // slat + Fowler + Fowler double slot (A321)
}

// HighLift returns cz_max and cz_0 for a high lift device setting.
// hldConf = 1 gives the landing configuration, 0.1 to 0.5 the take off
// ones.
func (w *Wing) HighLift(hldConf float64) (czMax, cz0 float64, err error) {
	czMaxLD, ok := czMaxLDByHldType[w.HldType]
	if !ok {
		return 0, 0, fmt.Errorf("airframe: high lift device type %d out of range", w.HldType)
	}

	var czMaxBase float64
	if w.HldType < 5 {
		czMaxBase = 1.45 // flap only
	} else if hldConf == 0 {
		czMaxBase = 1.45 // clean
	} else {
		czMaxBase = 2.00 // slat + flap
	}

	czMax = (1.-hldConf)*czMaxBase + hldConf*czMaxLD
	// The lift versus AoA curve is assumed translated upward, clean cz0 = 0.
	cz0 = czMax - czMaxBase
	return czMax, cz0, nil
}
