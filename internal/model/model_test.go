// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/cadolab/oadkit/internal/earth"
)

func TestDefaultArrangementIsValid(t *testing.T) {
	if err := DefaultArrangement().Validate(); err != nil {
		t.Fatalf("default arrangement should validate: %v", err)
	}
}

func TestArrangementValidateRejectsUnknown(t *testing.T) {
	arr := DefaultArrangement()
	arr.StabArchitecture = "canard"
	err := arr.Validate()
	if err == nil {
		t.Fatal("expected error for unknown stab architecture")
	}
	if !strings.Contains(err.Error(), "stab_architecture") {
		t.Fatalf("error should name the field, got %v", err)
	}

	arr = DefaultArrangement()
	arr.EnergySource = earth.EnergySource("coal")
	if err := arr.Validate(); err == nil {
		t.Fatal("expected error for unknown energy source")
	}
}

func TestArrangementEngineCount(t *testing.T) {
	arr := DefaultArrangement()
	n, err := arr.EngineCount()
	if err != nil || n != 2 {
		t.Fatalf("EngineCount(twin) = %d, %v, want 2", n, err)
	}
	arr.NumberOfEngine = "quadri"
	n, err = arr.EngineCount()
	if err != nil || n != 4 {
		t.Fatalf("EngineCount(quadri) = %d, %v, want 4", n, err)
	}
	arr.NumberOfEngine = "tri"
	if _, err := arr.EngineCount(); err == nil {
		t.Fatal("expected error for unknown engine count")
	}
}

func TestArrangementYAMLRoundTrip(t *testing.T) {
	arr := DefaultArrangement()
	arr.StabArchitecture = "t_tail"

	raw, err := yaml.Marshal(arr)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var got Arrangement
	if err := yaml.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got != arr {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, arr)
	}
}

func TestDefaultRequirementIsValid(t *testing.T) {
	if err := DefaultRequirement().Validate(); err != nil {
		t.Fatalf("default requirement should validate: %v", err)
	}
}

func TestRequirementValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Requirement)
	}{
		{"zero pax", func(r *Requirement) { r.NPaxRef = 0 }},
		{"no aisle", func(r *Requirement) { r.NAisle = 0 }},
		{"negative range", func(r *Requirement) { r.DesignRange = -1 }},
		{"supersonic", func(r *Requirement) { r.CruiseMach = 1.2 }},
		{"negative altitude", func(r *Requirement) { r.CruiseAltp = -100 }},
	}
	for _, tc := range cases {
		r := DefaultRequirement()
		tc.mutate(&r)
		if err := r.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestStudyString(t *testing.T) {
	s := Study{Name: "medium", NPax: 150, MTOW: 77000}
	got := s.String()
	if !strings.Contains(got, "medium") || !strings.Contains(got, "150") {
		t.Fatalf("String() = %q, want name and capacity", got)
	}
}
