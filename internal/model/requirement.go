// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"fmt"

	"github.com/cadolab/oadkit/internal/unit"
)

// Requirement holds the top-level requirements a design is sized for.
// All values are SI.
type Requirement struct {
	NPaxRef     float64 `yaml:"n_pax_ref"`    // reference passenger count
	NPaxFront   float64 `yaml:"n_pax_front"`  // seats abreast
	NAisle      float64 `yaml:"n_aisle"`      // number of aisles
	DesignRange float64 `yaml:"design_range"` // m
	CruiseMach  float64 `yaml:"cruise_mach"`
	CruiseAltp  float64 `yaml:"cruise_altp"` // m, pressure altitude
	CruiseDisa  float64 `yaml:"cruise_disa"` // K, shift versus ISA
}

// DefaultRequirement returns the 150 pax / 3000 NM single-aisle study
// point used as the reference case throughout the toolkit.
func DefaultRequirement() Requirement {
	return Requirement{
		NPaxRef:     150.,
		NPaxFront:   6.,
		NAisle:      1.,
		DesignRange: unit.MFromNM(3000.),
		CruiseMach:  0.78,
		CruiseAltp:  unit.MFromFt(35000.),
		CruiseDisa:  0.,
	}
}

// Validate performs sanity checks before a design run.
func (r Requirement) Validate() error {
	if r.NPaxRef <= 0 {
		return fmt.Errorf("requirement: n_pax_ref must be positive, got %g", r.NPaxRef)
	}
	if r.NPaxFront <= 0 || r.NAisle <= 0 {
		return fmt.Errorf("requirement: cabin cross section needs seats abreast and aisles")
	}
	if r.DesignRange <= 0 {
		return fmt.Errorf("requirement: design_range must be positive, got %g", r.DesignRange)
	}
	if r.CruiseMach <= 0 || r.CruiseMach >= 1 {
		return fmt.Errorf("requirement: cruise_mach %g out of (0,1)", r.CruiseMach)
	}
	if r.CruiseAltp < 0 {
		return fmt.Errorf("requirement: cruise_altp must not be negative")
	}
	return nil
}
