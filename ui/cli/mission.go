// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cadolab/oadkit/internal/db"
	"github.com/cadolab/oadkit/internal/design"
	"github.com/cadolab/oadkit/internal/i18n"
	"github.com/cadolab/oadkit/internal/model"
	"github.com/cadolab/oadkit/internal/unit"
)

var (
	missionNPax   float64
	missionDistNM float64
)

func init() {
	missionCmd.Flags().Float64Var(&missionNPax, "npax", 0, "Passengers on board (defaults to the design capacity)")
	missionCmd.Flags().Float64Var(&missionDistNM, "dist", 0, "Mission distance in NM (defaults to the design range)")
}

// missionCmd flies an off-design mission with a catalog study.
var missionCmd = &cobra.Command{
	Use:   "mission <study-name>",
	Short: "Fly an operational mission with a stored study",
	Long: `Loads a study from the catalog, checks the requested mission against
its payload-range envelope and solves the mission fuel, block time and
take off weight.

Examples:
  # Fly the design mission
  oadkit mission medium-tf

  # Fly 120 passengers over 1500 NM
  oadkit mission medium-tf --npax 120 --dist 1500`,
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		study := loadStudy(args[0])
		ac := rebuildAircraft(study)

		npax := missionNPax
		if npax == 0 {
			npax = study.NPax
		}
		dist := study.Range
		if missionDistNM != 0 {
			dist = unit.MFromNM(missionDistNM)
		}

		if !ac.InPayloadRange(npax, dist).Flyable() {
			log.Fatalf("%s", i18n.T("mission.not_flyable"))
		}

		fuel, time, tow, err := ac.Operation(npax, dist)
		if err != nil {
			log.Fatalf("mission evaluation failed: %v", err)
		}

		printTitle(i18n.T("mission.header"))
		fmt.Print(renderTable(
			[]string{i18n.T("report.quantity"), i18n.T("report.value")},
			[][]string{
				{"study", study.Name},
				{"npax", fmt.Sprintf("%.0f", npax)},
				{"distance (NM)", fmt.Sprintf("%.0f", unit.NMFromM(dist))},
				{"mission fuel (kg)", fmt.Sprintf("%.0f", fuel)},
				{"block time (h)", fmt.Sprintf("%.2f", unit.HFromS(time))},
				{"take off weight (kg)", fmt.Sprintf("%.0f", tow)},
			},
		))
	},
}

// loadStudy fetches a study by name or exits with a catalog message.
func loadStudy(name string) *model.Study {
	study, err := db.GetStudyByName(name)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			log.Fatalf("%s: %s", i18n.T("catalog.not_found"), name)
		}
		log.Fatalf("could not load study: %v", err)
	}
	return study
}

// rebuildAircraft re-runs the sizing from the stored requirement. The
// adaptation is deterministic so the stored figures are reproduced.
func rebuildAircraft(study *model.Study) *design.Aircraft {
	ac, err := design.NewAircraft(study.NPax, study.Range, study.Mach)
	if err != nil {
		log.Fatalf("could not rebuild study %q: %v", study.Name, err)
	}
	ac.Name = study.Name
	return ac
}
