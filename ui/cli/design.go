// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"sort"

	log "github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/cadolab/oadkit/internal/airframe"
	"github.com/cadolab/oadkit/internal/db"
	"github.com/cadolab/oadkit/internal/design"
	"github.com/cadolab/oadkit/internal/drawing"
	"github.com/cadolab/oadkit/internal/earth"
	"github.com/cadolab/oadkit/internal/i18n"
	"github.com/cadolab/oadkit/internal/model"
	"github.com/cadolab/oadkit/internal/propulsion"
	"github.com/cadolab/oadkit/internal/unit"
)

var (
	designName     string
	designNPax     float64
	designRangeNM  float64
	designMach     float64
	designNPaxFrt  float64
	designNAisle   float64
	designStab     string
	designPower    string
	designEngines  string
	designAttach   string
	designEnergy   string
	designSave     bool
	designGeometry bool
	designSVG      string
)

func init() {
	designCmd.Flags().StringVar(&designName, "name", "", "Study name (required with --save)")
	designCmd.Flags().Float64Var(&designNPax, "npax", 150, "Reference passenger capacity")
	designCmd.Flags().Float64Var(&designRangeNM, "range", 3000, "Design range in NM")
	designCmd.Flags().Float64Var(&designMach, "mach", 0.78, "Cruise Mach number")
	designCmd.Flags().Float64Var(&designNPaxFrt, "npax-front", 6, "Seats abreast")
	designCmd.Flags().Float64Var(&designNAisle, "naisle", 1, "Number of aisles")
	designCmd.Flags().StringVar(&designStab, "stab", "classic", `Stabilizer architecture ("classic", "t_tail", "h_tail")`)
	designCmd.Flags().StringVar(&designPower, "power", "tf", `Power architecture ("tf", "ef")`)
	designCmd.Flags().StringVar(&designEngines, "engines", "twin", `Engine count ("twin", "quadri")`)
	designCmd.Flags().StringVar(&designAttach, "attachment", "wing", `Nacelle attachment ("wing", "rear")`)
	designCmd.Flags().StringVar(&designEnergy, "energy", "kerosene", `Energy source ("kerosene", "methane", "liquid_h2", "battery")`)
	designCmd.Flags().BoolVar(&designSave, "save", false, "Save the study in the catalog")
	designCmd.Flags().BoolVar(&designGeometry, "geometry", false, "Evaluate component geometry and masses")
	designCmd.Flags().StringVar(&designSVG, "svg", "", "Write a top view SVG to this file (implies --geometry)")
}

// designCmd sizes one airplane from top level requirements.
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Size an airplane from top level requirements",
	Long: `Runs the mass-mission adaptation for the given capacity, range and
cruise Mach number, then optionally evaluates the component geometry
and masses for the chosen architectural arrangement.

Examples:
  # Size a 150-seat, 3000 NM airplane
  oadkit design --npax 150 --range 3000

  # Size, evaluate the geometry and save the study
  oadkit design --name medium-tf --npax 150 --range 3000 --geometry --save`,
	Args:    cobra.NoArgs,
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		ac, err := design.NewAircraft(designNPax, unit.MFromNM(designRangeNM), designMach)
		if err != nil {
			log.Fatalf("sizing failed: %v", err)
		}

		arr := buildArrangement()
		if err := arr.Validate(); err != nil {
			log.Fatalf("%v", err)
		}

		printTitle(i18n.T("design.sizing_done"))
		sfcOut, _ := unit.ConvertTo("kg/daN/h", ac.SFC)
		fmt.Print(renderTable(
			[]string{i18n.T("report.quantity"), i18n.T("report.value")},
			[][]string{
				{"npax", fmt.Sprintf("%.0f", ac.NPax)},
				{"range (NM)", fmt.Sprintf("%.0f", unit.NMFromM(ac.Range))},
				{"cruise mach", fmt.Sprintf("%.2f", ac.CruiseMach)},
				{"mtow (kg)", fmt.Sprintf("%.0f", ac.MTOW)},
				{"owe (kg)", fmt.Sprintf("%.0f", ac.OWE)},
				{"payload (kg)", fmt.Sprintf("%.0f", ac.Payload)},
				{"mission fuel (kg)", fmt.Sprintf("%.0f", ac.FuelMission)},
				{"reserve fuel (kg)", fmt.Sprintf("%.0f", ac.FuelReserve)},
				{"l/d", fmt.Sprintf("%.1f", ac.LoD)},
				{"sfc (kg/daN/h)", fmt.Sprintf("%.3f", sfcOut)},
			},
		))

		if designGeometry || designSVG != "" {
			af := evalAirframe(ac, arr)
			printComponentTable(af)
			if arr.PowerArchitecture == "tf" {
				printEngineCycle(ac, af)
			}
			if designSVG != "" {
				svg := drawing.TopView(af, designName)
				if err := drawing.WriteFile(designSVG, svg); err != nil {
					log.Fatalf("could not write SVG: %v", err)
				}
				fmt.Printf("top view written to %s\n", designSVG)
			}
		}

		if designSave {
			if designName == "" {
				log.Fatalf("--save requires --name")
			}
			saveStudy(ac, arr)
		}
	},
}

func buildArrangement() model.Arrangement {
	arr := model.DefaultArrangement()
	arr.StabArchitecture = designStab
	arr.PowerArchitecture = designPower
	arr.NumberOfEngine = designEngines
	arr.NacelleAttachment = designAttach
	arr.EnergySource = earth.EnergySource(designEnergy)
	return arr
}

// evalAirframe runs the component pre-design with the sized weights.
func evalAirframe(ac *design.Aircraft, arr model.Arrangement) *airframe.Airframe {
	req := model.DefaultRequirement()
	req.NPaxRef = designNPax
	req.NPaxFront = designNPaxFrt
	req.NAisle = designNAisle
	req.DesignRange = ac.Range
	req.CruiseMach = ac.CruiseMach

	af, err := airframe.Build(arr, req)
	if err != nil {
		log.Fatalf("%v", err)
	}
	mzfw := ac.OWE + ac.Payload
	af.Weight = airframe.WeightCG{
		MTOW: ac.MTOW,
		MZFW: mzfw,
		MLW:  1.07 * mzfw, // statistical pre-design assumption
		OWE:  ac.OWE,
	}
	if err := af.EvalGeometry(); err != nil {
		log.Fatalf("geometry evaluation failed: %v", err)
	}
	if err := af.EvalMass(); err != nil {
		log.Fatalf("mass evaluation failed: %v", err)
	}
	return af
}

func printComponentTable(af *airframe.Airframe) {
	comps := af.ComponentMap()
	names := make([]string, 0, len(comps))
	for name := range comps {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names)+1)
	for _, name := range names {
		c := comps[name]
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%.0f", c.Mass()),
			fmt.Sprintf("%.2f", c.CG()[0]),
		})
	}
	rows = append(rows, []string{"total", fmt.Sprintf("%.0f", af.TotalMass()), ""})

	fmt.Print(renderTable(
		[]string{i18n.T("report.component"), i18n.T("report.mass"), i18n.T("report.cg_x")},
		rows,
	))
}

// printEngineCycle sizes the thermodynamic cycle at the cruise point for
// the thrust one engine has to hold there.
func printEngineCycle(ac *design.Aircraft, af *airframe.Airframe) {
	ne := af.Nacelle.EngineCount()
	cruiseThrust := ac.MTOW * earth.Gravity() / ac.LoD / float64(ne)

	cycle, err := propulsion.DesignCycleForThrust(ac.CruiseAltp, 0., ac.CruiseMach, cruiseThrust, propulsion.CycleSpec{})
	if err != nil {
		log.Warnf("engine cycle design failed: %v", err)
		return
	}

	sfc, _ := unit.ConvertTo("kg/daN/h", cycle.SFC)
	fmt.Print(renderTable(
		[]string{i18n.T("report.quantity"), i18n.T("report.value")},
		[][]string{
			{"cruise thrust (kN)", fmt.Sprintf("%.1f", cruiseThrust*1.e-3)},
			{"cycle sfc (kg/daN/h)", fmt.Sprintf("%.3f", sfc)},
			{"fan pressure ratio", fmt.Sprintf("%.2f", cycle.FPR)},
			{"fan width (m)", fmt.Sprintf("%.2f", cycle.FanWidth)},
			{"fan nozzle area (m2)", fmt.Sprintf("%.2f", cycle.FanNozzleArea)},
			{"core nozzle area (m2)", fmt.Sprintf("%.3f", cycle.CoreNozzleArea)},
		},
	))
}

func saveStudy(ac *design.Aircraft, arr model.Arrangement) {
	arrYAML, err := yaml.Marshal(arr)
	if err != nil {
		log.Fatalf("could not serialize arrangement: %v", err)
	}
	study := &model.Study{
		Name:           designName,
		NPax:           ac.NPax,
		Range:          ac.Range,
		Mach:           ac.CruiseMach,
		Arrangement:    string(arrYAML),
		MTOW:           ac.MTOW,
		OWE:            ac.OWE,
		Payload:        ac.Payload,
		FuelMission:    ac.FuelMission,
		PayloadMax:     ac.PayloadMax,
		RangePlMax:     ac.RangePlMax,
		PayloadFuelMax: ac.PayloadFuelMax,
		RangeFuelMax:   ac.RangeFuelMax,
		RangeNoPl:      ac.RangeNoPl,
	}
	if _, err := db.AddStudy(study); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			log.Fatalf("%s", i18n.T("design.exists"))
		}
		log.Fatalf("could not save study: %v", err)
	}
	fmt.Println(i18n.T("design.saved"))
}
