// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package design

import (
	"math"
	"testing"

	"github.com/cadolab/oadkit/internal/unit"
)

func newReference(t *testing.T) *Aircraft {
	t.Helper()
	ac, err := NewAircraft(150., unit.MFromNM(3000.), 0.78)
	if err != nil {
		t.Fatalf("sizing failed: %v", err)
	}
	return ac
}

func TestDesignConverges(t *testing.T) {
	ac := newReference(t)

	// The weight breakdown must close.
	sum := ac.OWE + ac.Payload + ac.FuelMission + ac.FuelReserve
	if math.Abs(sum-ac.MTOW) > 1. {
		t.Fatalf("weight breakdown %v does not close on MTOW %v", sum, ac.MTOW)
	}
	// The structural rule must be honored.
	if math.Abs(ac.OWE-ac.Structure(ac.MTOW)) > 1. {
		t.Fatalf("OWE %v does not match the structural rule %v", ac.OWE, ac.Structure(ac.MTOW))
	}
	// The design mission must cover the required range.
	r, err := ac.Mission(ac.MTOW, ac.FuelMission)
	if err != nil {
		t.Fatalf("Mission failed: %v", err)
	}
	if math.Abs(r-ac.Range)/ac.Range > 1e-6 {
		t.Fatalf("design mission range %v, want %v", r, ac.Range)
	}
}

func TestDesignOrderOfMagnitude(t *testing.T) {
	// A 150 pax / 3000 NM airplane sizes in the single-aisle class.
	ac := newReference(t)
	if ac.MTOW < 50000. || ac.MTOW > 110000. {
		t.Fatalf("MTOW %v out of the single-aisle class", ac.MTOW)
	}
	if ac.Payload != 150.*130. {
		t.Fatalf("design payload = %v, want %v", ac.Payload, 150.*130.)
	}
	if ac.OWE >= ac.MTOW {
		t.Fatalf("OWE %v not below MTOW %v", ac.OWE, ac.MTOW)
	}
}

func TestEnvelopeAnchorsOrdered(t *testing.T) {
	ac := newReference(t)

	if ac.PayloadMax != 1.20*ac.Payload {
		t.Fatalf("max payload = %v, want 1.2 x design", ac.PayloadMax)
	}
	if ac.PayloadFuelMax != 0.40*ac.Payload {
		t.Fatalf("payload at max fuel = %v, want 0.4 x design", ac.PayloadFuelMax)
	}
	if !(ac.RangePlMax < ac.Range && ac.Range < ac.RangeFuelMax && ac.RangeFuelMax < ac.RangeNoPl) {
		t.Fatalf("envelope anchors not ordered: %v %v %v %v",
			ac.RangePlMax, ac.Range, ac.RangeFuelMax, ac.RangeNoPl)
	}
}

func TestOperationDesignPoint(t *testing.T) {
	ac := newReference(t)

	fuel, time, tow, err := ac.Operation(ac.NPax, ac.Range)
	if err != nil {
		t.Fatalf("Operation failed: %v", err)
	}
	if math.Abs(fuel-ac.FuelMission)/ac.FuelMission > 1e-3 {
		t.Fatalf("design point fuel %v, want %v", fuel, ac.FuelMission)
	}
	if math.Abs(tow-ac.MTOW)/ac.MTOW > 1e-3 {
		t.Fatalf("design point tow %v, want %v", tow, ac.MTOW)
	}
	wantTime := 20.*60. + ac.Range/ac.CruiseSpeed
	if math.Abs(time-wantTime) > 1. {
		t.Fatalf("block time %v, want %v", time, wantTime)
	}
}

func TestOperationPartialLoad(t *testing.T) {
	ac := newReference(t)

	fuel, _, tow, err := ac.Operation(100., unit.MFromNM(1500.))
	if err != nil {
		t.Fatalf("Operation failed: %v", err)
	}
	if fuel >= ac.FuelMission {
		t.Fatalf("shorter lighter mission should burn less than %v, got %v", ac.FuelMission, fuel)
	}
	if tow >= ac.MTOW {
		t.Fatalf("shorter lighter mission tow should be below MTOW, got %v", tow)
	}
}

func TestInPayloadRange(t *testing.T) {
	ac := newReference(t)

	if !ac.InPayloadRange(ac.NPax, ac.Range).Flyable() {
		t.Fatal("the design mission must be flyable")
	}
	// Beyond ferry range.
	if ac.InPayloadRange(10., ac.RangeNoPl*1.1).Flyable() {
		t.Fatal("beyond ferry range must not be flyable")
	}
	// Above maximum payload.
	tooMany := ac.PayloadMax/ac.MPax + 10.
	if ac.InPayloadRange(tooMany, unit.MFromNM(500.)).Flyable() {
		t.Fatal("above max payload must not be flyable")
	}
	// Full payload at long range exceeds the take off weight limit.
	if ac.InPayloadRange(ac.PayloadMax/ac.MPax, ac.RangeFuelMax).Flyable() {
		t.Fatal("max payload at max fuel range must not be flyable")
	}
}

func TestMaxCapacityAndMaxRange(t *testing.T) {
	ac := newReference(t)

	// Short range allows the full cabin.
	if got := ac.MaxCapacity(ac.RangePlMax * 0.5); got != math.Floor(ac.PayloadMax/ac.MPax) {
		t.Fatalf("short range capacity = %v", got)
	}
	// Beyond ferry range allows nobody.
	if got := ac.MaxCapacity(ac.RangeNoPl * 1.1); got != 0. {
		t.Fatalf("capacity beyond ferry range = %v, want 0", got)
	}
	// Capacity decreases with distance.
	if ac.MaxCapacity(ac.RangeFuelMax) > ac.MaxCapacity(ac.RangePlMax) {
		t.Fatal("capacity should not grow with distance")
	}
	// Too much payload means no range at all.
	if got := ac.MaxRange(ac.PayloadMax/ac.MPax + 5.); got != 0. {
		t.Fatalf("MaxRange above max payload = %v, want 0", got)
	}
	// No payload means ferry range.
	if got := ac.MaxRange(0.); math.Abs(got-ac.RangeNoPl) > 1. {
		t.Fatalf("MaxRange(0) = %v, want %v", got, ac.RangeNoPl)
	}
}

func TestPayloadRangePolyline(t *testing.T) {
	ac := newReference(t)
	pts := ac.PayloadRange()
	if len(pts) != 4 {
		t.Fatalf("envelope polyline has %d points, want 4", len(pts))
	}
	if pts[0].Range != 0. || pts[0].Payload != ac.PayloadMax {
		t.Fatalf("first point %+v, want max payload at zero range", pts[0])
	}
	if pts[3].Payload != 0. || pts[3].Range != ac.RangeNoPl {
		t.Fatalf("last point %+v, want ferry mission", pts[3])
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Range < pts[i-1].Range || pts[i].Payload > pts[i-1].Payload {
			t.Fatalf("envelope not monotonic at point %d: %+v", i, pts)
		}
	}
}

func TestLoDClamped(t *testing.T) {
	if got := lOverD(30.); got != 15. {
		t.Fatalf("lOverD(30) = %v, want clamp at 15", got)
	}
	if got := lOverD(300.); got != 20. {
		t.Fatalf("lOverD(300) = %v, want clamp at 20", got)
	}
	mid := lOverD(110.)
	if mid <= 15. || mid >= 20. {
		t.Fatalf("lOverD(110) = %v, want interior value", mid)
	}
}
