// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "fmt"

// Study is one sized airplane stored in the catalog: the requirement,
// the arrangement and the characteristic results of the sizing.
type Study struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	NPax  float64 `json:"npax" yaml:"npax"`
	Range float64 `json:"range" yaml:"range"` // m
	Mach  float64 `json:"mach" yaml:"mach"`

	// Arrangement is the architectural choice set serialized as YAML.
	Arrangement string `json:"arrangement" yaml:"arrangement"`

	MTOW        float64 `json:"mtow" yaml:"mtow"`
	OWE         float64 `json:"owe" yaml:"owe"`
	Payload     float64 `json:"payload" yaml:"payload"`
	FuelMission float64 `json:"fuel_mission" yaml:"fuel_mission"`

	PayloadMax     float64 `json:"payload_max" yaml:"payload_max"`
	RangePlMax     float64 `json:"range_pl_max" yaml:"range_pl_max"`
	PayloadFuelMax float64 `json:"payload_fuel_max" yaml:"payload_fuel_max"`
	RangeFuelMax   float64 `json:"range_fuel_max" yaml:"range_fuel_max"`
	RangeNoPl      float64 `json:"range_no_pl" yaml:"range_no_pl"`

	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// String returns the name and the headline figures.
func (s Study) String() string {
	return fmt.Sprintf("%s (%.0f pax, mtow %.0f kg)", s.Name, s.NPax, s.MTOW)
}

// AuditLogEntry represents a single event in the catalog audit trail.
type AuditLogEntry struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// BackupData is the portable snapshot of the whole catalog.
type BackupData struct {
	Studies  []Study         `json:"studies"`
	AuditLog []AuditLogEntry `json:"audit_log"`
}
