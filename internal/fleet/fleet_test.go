// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package fleet

import (
	"math"
	"testing"

	"github.com/cadolab/oadkit/internal/design"
	"github.com/cadolab/oadkit/internal/unit"
)

func newTestFleet(t *testing.T) *Fleet {
	t.Helper()
	small, err := design.NewAircraft(70., unit.MFromNM(1500.), 0.70)
	if err != nil {
		t.Fatalf("sizing small failed: %v", err)
	}
	small.Name = "small"
	large, err := design.NewAircraft(150., unit.MFromNM(3000.), 0.78)
	if err != nil {
		t.Fatalf("sizing large failed: %v", err)
	}
	large.Name = "large"

	// Deliberately out of MTOW order; New sorts the allocation order.
	f, err := New([]*design.Aircraft{large, small})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return f
}

func TestNewRequiresAircraft(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty fleet")
	}
}

func TestDemandMatrixValidate(t *testing.T) {
	good := DemandMatrix{NPaxStep: 40, RangeStep: 400, Flights: [][]float64{{1, 2}, {3, 4}}}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid matrix rejected: %v", err)
	}
	bad := DemandMatrix{NPaxStep: 0, RangeStep: 400, Flights: [][]float64{{1}}}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero step")
	}
	ragged := DemandMatrix{NPaxStep: 40, RangeStep: 400, Flights: [][]float64{{1, 2}, {3}}}
	if err := ragged.Validate(); err == nil {
		t.Fatal("expected error for ragged matrix")
	}
	empty := DemandMatrix{NPaxStep: 40, RangeStep: 400}
	if err := empty.Validate(); err == nil {
		t.Fatal("expected error for empty matrix")
	}
}

func TestAnalyzeAllocatesSmallestCapable(t *testing.T) {
	f := newTestFleet(t)

	// One cell: 40 pax over 400 km great circle. Both airplanes can fly
	// it; the allocation must pick the smaller one.
	m := DemandMatrix{
		NPaxStep:  40,
		RangeStep: 400,
		Flights:   [][]float64{{10}},
	}
	total, err := f.Analyze(m)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	smallIdx := 0
	if f.Aircraft[0].Name != "small" {
		smallIdx = 1
	}
	if f.Usage[smallIdx].Trips != 10 {
		t.Fatalf("small airplane trips = %v, want 10", f.Usage[smallIdx].Trips)
	}
	if f.Usage[1-smallIdx].Trips != 0 {
		t.Fatalf("large airplane should stay idle, got %v trips", f.Usage[1-smallIdx].Trips)
	}
	if total.Trips != 10 {
		t.Fatalf("total trips = %v, want 10", total.Trips)
	}
	if total.NPax != 400 {
		t.Fatalf("total pax = %v, want 400", total.NPax)
	}
}

func TestAnalyzeUsesOperationalDistance(t *testing.T) {
	f := newTestFleet(t)
	m := DemandMatrix{
		NPaxStep:  40,
		RangeStep: 400,
		Flights:   [][]float64{{1}},
	}
	total, err := f.Analyze(m)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	// 400 km great circle flies as 460 km.
	want := 400. * 1000. * 1.15
	if math.Abs(total.Dist-want) > 1. {
		t.Fatalf("total distance = %v, want %v", total.Dist, want)
	}
}

func TestAnalyzeSplitsOverCapacity(t *testing.T) {
	f := newTestFleet(t)

	// 240 pax exceeds both airplanes; the demand splits over repeated
	// flights of the largest one.
	m := DemandMatrix{
		NPaxStep:  240,
		RangeStep: 400,
		Flights:   [][]float64{{1}},
	}
	if _, err := f.Analyze(m); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	largeIdx := 0
	if f.Aircraft[0].Name != "large" {
		largeIdx = 1
	}
	if f.Usage[largeIdx].Trips < 1 {
		t.Fatal("expected split flights on the largest airplane")
	}
	if f.Usage[1-largeIdx].Trips != 0 {
		t.Fatalf("small airplane should stay idle, got %v trips", f.Usage[1-largeIdx].Trips)
	}
}

func TestAnalyzeSkipsOutOfRange(t *testing.T) {
	f := newTestFleet(t)

	// 10000 km is beyond the ferry range of both airplanes; the cell is
	// logged and skipped, no usage accumulates.
	m := DemandMatrix{
		NPaxStep:  40,
		RangeStep: 10000,
		Flights:   [][]float64{{5}},
	}
	total, err := f.Analyze(m)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if total.Trips != 0 {
		t.Fatalf("out of range demand should not fly, got %v trips", total.Trips)
	}
}

func TestAnalyzeRejectsBadMatrix(t *testing.T) {
	f := newTestFleet(t)
	if _, err := f.Analyze(DemandMatrix{}); err == nil {
		t.Fatal("expected validation error")
	}
}
