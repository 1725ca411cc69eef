// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package fleet allocates a demand matrix over a set of sized airplanes
// and accumulates the operating totals per airplane.
package fleet

import (
	"fmt"
	"sort"

	"github.com/cadolab/oadkit/internal/design"
	"github.com/cadolab/oadkit/internal/logging"
	"github.com/cadolab/oadkit/internal/unit"
)

// DemandMatrix discretizes a network demand: Flights[c][r] flights
// carrying (c+1)*NPaxStep passengers over (r+1)*RangeStep km great
// circle.
type DemandMatrix struct {
	NPaxStep  float64     `yaml:"npax_step"`
	RangeStep float64     `yaml:"range_step"` // km
	Flights   [][]float64 `yaml:"matrix"`
}

// Validate checks the matrix is rectangular and the steps positive.
func (m DemandMatrix) Validate() error {
	if m.NPaxStep <= 0 || m.RangeStep <= 0 {
		return fmt.Errorf("fleet: demand matrix steps must be positive")
	}
	if len(m.Flights) == 0 {
		return fmt.Errorf("fleet: demand matrix is empty")
	}
	width := len(m.Flights[0])
	for _, row := range m.Flights {
		if len(row) != width {
			return fmt.Errorf("fleet: demand matrix is not rectangular")
		}
	}
	return nil
}

// Usage accumulates the operating totals of one airplane over the
// allocation.
type Usage struct {
	Trips float64
	NPax  float64
	Capa  float64
	Dist  float64 // m
	Fuel  float64 // kg
	Time  float64 // s
	PaxKm float64
	TonKm float64
}

// Fleet is a set of sized airplanes and their accumulated usage.
type Fleet struct {
	Aircraft []*design.Aircraft
	Usage    []Usage

	// byMTOW indexes Aircraft in increasing MTOW order so the
	// allocation tries the smallest capable airplane first.
	byMTOW []int
}

// New builds a fleet. At least one airplane is required.
func New(aircraft []*design.Aircraft) (*Fleet, error) {
	if len(aircraft) == 0 {
		return nil, fmt.Errorf("fleet: at least one airplane is required")
	}
	f := &Fleet{
		Aircraft: aircraft,
		Usage:    make([]Usage, len(aircraft)),
		byMTOW:   make([]int, len(aircraft)),
	}
	for i := range f.byMTOW {
		f.byMTOW[i] = i
	}
	sort.Slice(f.byMTOW, func(a, b int) bool {
		return aircraft[f.byMTOW[a]].MTOW < aircraft[f.byMTOW[b]].MTOW
	})
	return f, nil
}

// flyIt books one mission on airplane i.
func (f *Fleet) flyIt(i int, nFlight, capa, npax, dist float64) error {
	fuel, time, _, err := f.Aircraft[i].Operation(npax, dist)
	if err != nil {
		return err
	}
	u := &f.Usage[i]
	u.Trips += nFlight
	u.NPax += npax * nFlight
	u.Capa += capa * nFlight
	u.Dist += dist * nFlight
	u.Fuel += fuel * nFlight
	u.Time += time * nFlight
	u.PaxKm += npax * (dist * 1.e-3) * nFlight
	u.TonKm += (dist * 1.e-3) * (npax * f.Aircraft[i].MPax * 1.e-3) * nFlight
	return nil
}

// Analyze allocates the demand matrix over the fleet. Each demand cell
// goes to the smallest airplane whose payload-range envelope accepts
// it; over-capacity demand is split over repeated flights of the
// largest airplane while the load factor stays above 40 percent.
// Unflyable demand is logged and skipped.
func (f *Fleet) Analyze(m DemandMatrix) (Usage, error) {
	if err := m.Validate(); err != nil {
		return Usage{}, err
	}

	for c := range m.Flights {
		for r := range m.Flights[c] {
			npax := m.NPaxStep * float64(1+c)
			// Operational distance is longer than great circle.
			dist := m.RangeStep * 1000. * float64(1+r) * 1.15
			nFlight := m.Flights[c][r]
			if nFlight == 0 {
				continue
			}

			flown := false
			for _, i := range f.byMTOW {
				if f.Aircraft[i].InPayloadRange(npax, dist).Flyable() {
					capa := f.Aircraft[i].MaxCapacity(dist)
					if err := f.flyIt(i, nFlight, capa, npax, dist); err != nil {
						return Usage{}, err
					}
					flown = true
					break
				}
			}
			if flown {
				continue
			}

			largest := f.byMTOW[len(f.byMTOW)-1]
			check := f.Aircraft[largest].InPayloadRange(npax, dist)
			switch {
			case !check.Capa:
				capa := f.Aircraft[largest].MaxCapacity(dist)
				split := 0
				for npax > 0.40*capa {
					if err := f.flyIt(largest, nFlight, capa, capa, dist); err != nil {
						return Usage{}, err
					}
					npax -= capa
					split++
				}
				logging.Debug("demand split at max capacity",
					"npax", m.NPaxStep*float64(1+c), "capa", capa,
					"range_nm", unit.NMFromM(dist), "flights", split)
			case !check.Dist:
				logging.Warn("mission out of range",
					"npax", npax, "range_nm", unit.NMFromM(dist))
			default:
				logging.Warn("mission not fly-able",
					"npax", npax, "range_nm", unit.NMFromM(dist))
			}
		}
	}

	var total Usage
	for _, u := range f.Usage {
		total.Trips += u.Trips
		total.NPax += u.NPax
		total.Capa += u.Capa
		total.Dist += u.Dist
		total.Fuel += u.Fuel
		total.Time += u.Time
		total.PaxKm += u.PaxKm
		total.TonKm += u.TonKm
	}
	return total, nil
}
