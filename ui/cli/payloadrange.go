// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cadolab/oadkit/internal/drawing"
	"github.com/cadolab/oadkit/internal/i18n"
	"github.com/cadolab/oadkit/internal/unit"
)

var payloadRangeSVG string

func init() {
	payloadRangeCmd.Flags().StringVar(&payloadRangeSVG, "svg", "", "Write the envelope as SVG to this file")
}

// payloadRangeCmd prints the envelope anchors of a catalog study.
var payloadRangeCmd = &cobra.Command{
	Use:   "payload-range <study-name>",
	Short: "Show the payload-range envelope of a stored study",
	Long: `Loads a study from the catalog and prints the anchors of its
payload-range envelope: maximum payload, maximum fuel and ferry
missions. With --svg the envelope is also rendered as a diagram.

Examples:
  oadkit payload-range medium-tf
  oadkit payload-range medium-tf --svg envelope.svg`,
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		study := loadStudy(args[0])
		ac := rebuildAircraft(study)

		printTitle(i18n.T("payload_range.header"))
		fmt.Print(renderTable(
			[]string{"mission", "payload (kg)", "range (NM)"},
			[][]string{
				{"design", fmt.Sprintf("%.0f", ac.Payload), fmt.Sprintf("%.0f", unit.NMFromM(ac.Range))},
				{"max payload", fmt.Sprintf("%.0f", ac.PayloadMax), fmt.Sprintf("%.0f", unit.NMFromM(ac.RangePlMax))},
				{"max fuel", fmt.Sprintf("%.0f", ac.PayloadFuelMax), fmt.Sprintf("%.0f", unit.NMFromM(ac.RangeFuelMax))},
				{"ferry", "0", fmt.Sprintf("%.0f", unit.NMFromM(ac.RangeNoPl))},
			},
		))

		if payloadRangeSVG != "" {
			svg := drawing.PayloadRange(ac, study.Name)
			if err := drawing.WriteFile(payloadRangeSVG, svg); err != nil {
				log.Fatalf("could not write SVG: %v", err)
			}
			fmt.Printf("envelope written to %s\n", payloadRangeSVG)
		}
	},
}
