// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package airframe

import (
	"math"
	"testing"

	"github.com/cadolab/oadkit/internal/earth"
	"github.com/cadolab/oadkit/internal/model"
	"github.com/cadolab/oadkit/internal/unit"
)

// singleAisleWeights is the sized weight set of the 150 pax / 3000 NM
// reference case, rounded.
func singleAisleWeights() WeightCG {
	return WeightCG{
		MTOW: 77000.,
		MZFW: 62000.,
		MLW:  66000.,
		OWE:  42000.,
	}
}

func evalDefault(t *testing.T, arr model.Arrangement) *Airframe {
	t.Helper()
	af, err := Build(arr, model.DefaultRequirement())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	af.Weight = singleAisleWeights()
	if err := af.EvalGeometry(); err != nil {
		t.Fatalf("EvalGeometry failed: %v", err)
	}
	if err := af.EvalMass(); err != nil {
		t.Fatalf("EvalMass failed: %v", err)
	}
	return af
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	arr := model.DefaultArrangement()
	arr.PowerArchitecture = "steam"
	if _, err := Build(arr, model.DefaultRequirement()); err == nil {
		t.Fatal("expected error for unknown power architecture")
	}

	req := model.DefaultRequirement()
	req.NPaxRef = 0
	if _, err := Build(model.DefaultArrangement(), req); err == nil {
		t.Fatal("expected error for invalid requirement")
	}
}

func TestGeometrySingleAisleClass(t *testing.T) {
	af := evalDefault(t, model.DefaultArrangement())

	if af.Fuselage.Length < 25. || af.Fuselage.Length > 50. {
		t.Fatalf("fuselage length %v m out of the single-aisle class", af.Fuselage.Length)
	}
	if af.Fuselage.Width < 3. || af.Fuselage.Width > 5. {
		t.Fatalf("fuselage width %v m out of the single-aisle class", af.Fuselage.Width)
	}
	if af.Wing.Area < 100. || af.Wing.Area > 200. {
		t.Fatalf("wing area %v m2 out of the single-aisle class", af.Wing.Area)
	}
	if af.Wing.Span < 25. || af.Wing.Span > 45. {
		t.Fatalf("wing span %v m out of the single-aisle class", af.Wing.Span)
	}
	if af.Wing.Mac <= 0 {
		t.Fatalf("wing MAC %v must be positive", af.Wing.Mac)
	}
	// The tips sit aft of and outboard of the root.
	if af.Wing.LocTip[0] <= af.Wing.LocRoot[0] || af.Wing.LocTip[1] <= af.Wing.LocRoot[1] {
		t.Fatalf("wing tip %v not aft/outboard of root %v", af.Wing.LocTip, af.Wing.LocRoot)
	}
}

func TestGeometryTailsBehindWing(t *testing.T) {
	af := evalDefault(t, model.DefaultArrangement())

	if af.VerticalStab.LocRoot[0] <= af.Wing.LocRoot[0] {
		t.Fatalf("fin root %v not behind wing root %v", af.VerticalStab.LocRoot, af.Wing.LocRoot)
	}
	if af.HorizontalStab.LocAxe[0] <= af.Wing.LocRoot[0] {
		t.Fatalf("HTP axis %v not behind wing root %v", af.HorizontalStab.LocAxe, af.Wing.LocRoot)
	}
}

func TestMassBreakdown(t *testing.T) {
	af := evalDefault(t, model.DefaultArrangement())

	for name, c := range af.ComponentMap() {
		if c.Mass() <= 0 {
			t.Fatalf("%s mass %v must be positive", name, c.Mass())
		}
		cg := c.CG()
		if cg[0] < 0 || cg[0] > af.Fuselage.Length+af.HorizontalStab.CAxe {
			t.Fatalf("%s CG x %v out of the airplane", name, cg[0])
		}
	}

	// The airframe contribution lands in the OWE class without the
	// operator items.
	total := af.TotalMass()
	if total < 0.5*af.Weight.OWE || total > 1.1*af.Weight.OWE {
		t.Fatalf("airframe mass %v out of proportion with OWE %v", total, af.Weight.OWE)
	}
}

func TestStabArchitectures(t *testing.T) {
	for _, arch := range []string{"classic", "t_tail", "h_tail"} {
		arr := model.DefaultArrangement()
		arr.StabArchitecture = arch
		af := evalDefault(t, arr)
		if af.VerticalStab.Mass() <= 0 || af.HorizontalStab.Mass() <= 0 {
			t.Fatalf("%s: tail masses must be positive", arch)
		}
	}
}

func TestTurbofanNacelle(t *testing.T) {
	af := evalDefault(t, model.DefaultArrangement())

	n, ok := af.Nacelle.(*TurbofanNacelle)
	if !ok {
		t.Fatalf("expected a turbofan nacelle, got %T", af.Nacelle)
	}
	if n.EngineCount() != 2 {
		t.Fatalf("engine count = %d, want 2", n.EngineCount())
	}
	if n.ReferenceThrust() < 50.e3 || n.ReferenceThrust() > 200.e3 {
		t.Fatalf("reference thrust %v N out of class", n.ReferenceThrust())
	}
	w, l := n.Dimensions()
	if w <= 0 || l <= 0 {
		t.Fatalf("nacelle dimensions %v x %v must be positive", w, l)
	}

	// Takeoff thrust at sea level recovers the reference thrust at full
	// throttle by construction of the tune factor.
	pamb, tamb, _, _, err := earth.Atmosphere(0., 15.)
	if err != nil {
		t.Fatalf("Atmosphere failed: %v", err)
	}
	th, err := n.UnitaryThrust(pamb, tamb, 0.25, RatingMTO, 1., 0.)
	if err != nil {
		t.Fatalf("UnitaryThrust failed: %v", err)
	}
	if math.Abs(th.FN/0.80-n.ReferenceThrust())/n.ReferenceThrust() > 1e-6 {
		t.Fatalf("takeoff thrust %v does not calibrate on the reference %v", th.FN/0.80, n.ReferenceThrust())
	}

	// Cruise consumption sits in the usual SFC band.
	pamb, tamb, _, _, err = earth.Atmosphere(unit.MFromFt(35000.), 0.)
	if err != nil {
		t.Fatalf("Atmosphere failed: %v", err)
	}
	cons, err := n.UnitaryConsumption(pamb, tamb, 0.78, RatingMCR, 20.e3, 0.)
	if err != nil {
		t.Fatalf("UnitaryConsumption failed: %v", err)
	}
	sfc, err := unit.ConvertTo("kg/daN/h", cons.SFC)
	if err != nil {
		t.Fatalf("ConvertTo failed: %v", err)
	}
	if sfc < 0.40 || sfc > 0.80 {
		t.Fatalf("cruise SFC %v kg/daN/h out of class", sfc)
	}
}

func TestElectrofanNacelle(t *testing.T) {
	arr := model.DefaultArrangement()
	arr.PowerArchitecture = "ef"
	arr.EnergySource = earth.Battery
	af := evalDefault(t, arr)

	n, ok := af.Nacelle.(*ElectrofanNacelle)
	if !ok {
		t.Fatalf("expected an electrofan nacelle, got %T", af.Nacelle)
	}
	if n.Mass() <= 0 {
		t.Fatalf("electrofan nacelle mass %v must be positive", n.Mass())
	}

	pamb, tamb, _, _, err := earth.Atmosphere(unit.MFromFt(35000.), 0.)
	if err != nil {
		t.Fatalf("Atmosphere failed: %v", err)
	}
	th, err := n.UnitaryThrust(pamb, tamb, 0.78, RatingMCR, 1., 0.)
	if err != nil {
		t.Fatalf("UnitaryThrust failed: %v", err)
	}
	if th.FN <= 0 {
		t.Fatalf("electrofan thrust %v must be positive", th.FN)
	}
	cons, err := n.UnitaryConsumption(pamb, tamb, 0.78, RatingMCR, th.FN, 0.)
	if err != nil {
		t.Fatalf("UnitaryConsumption failed: %v", err)
	}
	if cons.SEC <= 0 {
		t.Fatalf("electrofan SEC %v must be positive", cons.SEC)
	}
}

func TestQuadriNacelleStations(t *testing.T) {
	arr := model.DefaultArrangement()
	arr.NumberOfEngine = "quadri"
	af := evalDefault(t, arr)

	n := af.Nacelle.(*TurbofanNacelle)
	if n.EngineCount() != 4 {
		t.Fatalf("engine count = %d, want 4", n.EngineCount())
	}
	// Four wing-mounted engines split over two stations per side.
	if n.LocOutboard[1] <= n.FrameOrigin[1] {
		t.Fatalf("outboard station %v not outboard of inboard %v", n.LocOutboard, n.FrameOrigin)
	}
	// The bank CG sits between the two stations.
	if n.CG()[1] <= n.FrameOrigin[1] || n.LocOutboard[1] <= n.CG()[1] {
		t.Fatalf("nacelle bank CG y %v outside stations [%v, %v]", n.CG()[1], n.FrameOrigin[1], n.LocOutboard[1])
	}
	lo := math.Min(n.FrameOrigin[0], n.LocOutboard[0])
	hi := math.Max(n.FrameOrigin[0], n.LocOutboard[0])
	if n.CG()[0] <= lo || hi+n.Length <= n.CG()[0] {
		t.Fatalf("nacelle bank CG x %v outside pod stations [%v, %v]", n.CG()[0], lo, hi+n.Length)
	}

	// A twin keeps a single station.
	twin := evalDefault(t, model.DefaultArrangement()).Nacelle.(*TurbofanNacelle)
	if twin.LocOutboard != twin.FrameOrigin {
		t.Fatalf("twin outboard station %v should collapse on %v", twin.LocOutboard, twin.FrameOrigin)
	}
}

func TestRearNacelleAttachment(t *testing.T) {
	arr := model.DefaultArrangement()
	arr.NacelleAttachment = "rear"
	af := evalDefault(t, arr)

	n := af.Nacelle.(*TurbofanNacelle)
	// Rear nacelles hang on the tail cone, aft of the wing.
	if n.FrameOrigin[0] <= af.Wing.LocRoot[0] {
		t.Fatalf("rear nacelle %v not aft of wing root %v", n.FrameOrigin, af.Wing.LocRoot)
	}
}

func TestWingCza(t *testing.T) {
	af := evalDefault(t, model.DefaultArrangement())
	w := af.Wing
	cza := w.Cza(0.78, af.Fuselage.Width, w.AspectRatio, w.Span, w.Sweep25)
	// Polhamus sits around 5 per radian for this class of wing.
	if cza < 3. || cza > 8. {
		t.Fatalf("Cza %v out of class", cza)
	}
	// Lift slope grows with Mach.
	if w.Cza(0.50, af.Fuselage.Width, w.AspectRatio, w.Span, w.Sweep25) >= cza {
		t.Fatal("Cza should grow with Mach")
	}
}

func TestWingHighLift(t *testing.T) {
	af := evalDefault(t, model.DefaultArrangement())
	czTO, _, err := af.Wing.HighLift(af.Aero.HldConfTO)
	if err != nil {
		t.Fatalf("HighLift failed: %v", err)
	}
	czLD, _, err := af.Wing.HighLift(af.Aero.HldConfLD)
	if err != nil {
		t.Fatalf("HighLift failed: %v", err)
	}
	if czLD <= czTO {
		t.Fatalf("landing cz max %v should exceed takeoff %v", czLD, czTO)
	}
}

func TestVec3(t *testing.T) {
	v := Vec3{1, 2, 3}.Add(Vec3{1, 1, 1}).Scale(2)
	if v != (Vec3{4, 6, 8}) {
		t.Fatalf("Vec3 arithmetic = %v", v)
	}
}
