// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/cadolab/oadkit/internal/design"
	"github.com/cadolab/oadkit/internal/fleet"
	"github.com/cadolab/oadkit/internal/i18n"
	"github.com/cadolab/oadkit/internal/unit"
)

// fleetFile is the YAML layout of a fleet study: the airplanes to size
// and the demand matrix to allocate over them.
type fleetFile struct {
	Aircraft []struct {
		Name    string  `yaml:"name"`
		NPax    float64 `yaml:"npax"`
		RangeNM float64 `yaml:"range_nm"`
		Mach    float64 `yaml:"mach"`
	} `yaml:"aircraft"`
	Demand fleet.DemandMatrix `yaml:"demand"`
}

// fleetCmd sizes a set of airplanes and allocates a demand matrix.
var fleetCmd = &cobra.Command{
	Use:   "fleet <fleet-file.yaml>",
	Short: "Analyze a fleet against a demand matrix",
	Long: `Reads a YAML fleet description, sizes each airplane, allocates the
demand matrix over the fleet and prints the operating totals. Each
demand cell goes to the smallest airplane whose payload-range envelope
accepts it.

The file lists the airplanes and the demand:

  aircraft:
    - name: short
      npax: 70
      range_nm: 1500
      mach: 0.70
    - name: medium
      npax: 150
      range_nm: 3000
      mach: 0.78
  demand:
    npax_step: 40
    range_step: 400    # km, great circle
    matrix:
      - [500, 300, 100]
      - [300, 200, 80]

Example:
  oadkit fleet network.yaml`,
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("could not read fleet file: %v", err)
		}
		var ff fleetFile
		if err := yaml.Unmarshal(raw, &ff); err != nil {
			log.Fatalf("could not parse fleet file: %v", err)
		}
		if len(ff.Aircraft) == 0 {
			log.Fatalf("fleet file lists no aircraft")
		}

		aircraft := make([]*design.Aircraft, 0, len(ff.Aircraft))
		for _, a := range ff.Aircraft {
			ac, err := design.NewAircraft(a.NPax, unit.MFromNM(a.RangeNM), a.Mach)
			if err != nil {
				log.Fatalf("could not size %q: %v", a.Name, err)
			}
			ac.Name = a.Name
			aircraft = append(aircraft, ac)
		}

		fl, err := fleet.New(aircraft)
		if err != nil {
			log.Fatalf("%v", err)
		}
		total, err := fl.Analyze(ff.Demand)
		if err != nil {
			log.Fatalf("fleet analysis failed: %v", err)
		}

		printTitle(i18n.T("fleet.header"))
		rows := make([][]string, 0, len(fl.Aircraft)+1)
		for i, ac := range fl.Aircraft {
			rows = append(rows, usageRow(ac.Name, fl.Usage[i]))
		}
		rows = append(rows, usageRow(i18n.T("fleet.totals"), total))
		fmt.Print(renderTable(
			[]string{"airplane", "trips", "pax", "fuel (t)", "time (h)", "pax.km (M)", "ton.km (M)"},
			rows,
		))
	},
}

func usageRow(name string, u fleet.Usage) []string {
	return []string{
		name,
		fmt.Sprintf("%.0f", u.Trips),
		fmt.Sprintf("%.0f", u.NPax),
		fmt.Sprintf("%.1f", u.Fuel*1.e-3),
		fmt.Sprintf("%.0f", unit.HFromS(u.Time)),
		fmt.Sprintf("%.1f", u.PaxKm*1.e-6),
		fmt.Sprintf("%.1f", u.TonKm*1.e-6),
	}
}
