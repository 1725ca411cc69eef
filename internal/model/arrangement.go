// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the top-level data structures a design study is
// built from: the architectural arrangement and the requirements.
package model

import (
	"fmt"

	"github.com/cadolab/oadkit/internal/earth"
)

// Arrangement captures the architectural choices of the airplane.
// Only one sub-level of options is allowed; every field is a flat enum.
type Arrangement struct {
	BodyType          string             `yaml:"body_type"`          // "fuselage"
	WingType          string             `yaml:"wing_type"`          // "classic"
	WingAttachment    string             `yaml:"wing_attachment"`    // "low" or "high"
	StabArchitecture  string             `yaml:"stab_architecture"`  // "classic", "t_tail" or "h_tail"
	TankArchitecture  string             `yaml:"tank_architecture"`  // "wing_box"
	NumberOfEngine    string             `yaml:"number_of_engine"`   // "twin" or "quadri"
	NacelleAttachment string             `yaml:"nacelle_attachment"` // "wing" or "rear"
	PowerArchitecture string             `yaml:"power_architecture"` // "tf" or "ef"
	EnergySource      earth.EnergySource `yaml:"energy_source"`      // "kerosene", "methane", "liquid_h2" or "battery"
}

// DefaultArrangement returns the classic tube-and-wing twin turbofan.
func DefaultArrangement() Arrangement {
	return Arrangement{
		BodyType:          "fuselage",
		WingType:          "classic",
		WingAttachment:    "low",
		StabArchitecture:  "classic",
		TankArchitecture:  "wing_box",
		NumberOfEngine:    "twin",
		NacelleAttachment: "wing",
		PowerArchitecture: "tf",
		EnergySource:      earth.Kerosene,
	}
}

var arrangementDomains = map[string][]string{
	"body_type":          {"fuselage"},
	"wing_type":          {"classic"},
	"wing_attachment":    {"low", "high"},
	"stab_architecture":  {"classic", "t_tail", "h_tail"},
	"tank_architecture":  {"wing_box", "piggy_back", "pods"},
	"number_of_engine":   {"twin", "quadri"},
	"nacelle_attachment": {"wing", "rear"},
	"power_architecture": {"tf", "ef"},
	"energy_source":      {"kerosene", "methane", "liquid_h2", "battery"},
}

// Validate rejects any out-of-domain value. The factory relies on this
// being called before assembling components.
func (a Arrangement) Validate() error {
	checks := []struct {
		field string
		value string
	}{
		{"body_type", a.BodyType},
		{"wing_type", a.WingType},
		{"wing_attachment", a.WingAttachment},
		{"stab_architecture", a.StabArchitecture},
		{"tank_architecture", a.TankArchitecture},
		{"number_of_engine", a.NumberOfEngine},
		{"nacelle_attachment", a.NacelleAttachment},
		{"power_architecture", a.PowerArchitecture},
		{"energy_source", string(a.EnergySource)},
	}
	for _, c := range checks {
		if !contains(arrangementDomains[c.field], c.value) {
			return fmt.Errorf("arrangement: %s %q is unknown (one of %v)", c.field, c.value, arrangementDomains[c.field])
		}
	}
	return nil
}

// EngineCount maps the number_of_engine enum to a count.
func (a Arrangement) EngineCount() (int, error) {
	switch a.NumberOfEngine {
	case "twin":
		return 2, nil
	case "quadri":
		return 4, nil
	default:
		return 0, fmt.Errorf("arrangement: number of engine %q is unknown", a.NumberOfEngine)
	}
}

func contains(domain []string, v string) bool {
	for _, d := range domain {
		if d == v {
			return true
		}
	}
	return false
}
