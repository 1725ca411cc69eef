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
	"github.com/cadolab/oadkit/internal/i18n"
	"github.com/cadolab/oadkit/internal/unit"
)

// catalogCmd groups the study catalog operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the study catalog",
	Long:  `Lists, inspects and deletes the studies stored in the catalog database.`,
}

var catalogListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all stored studies",
	Args:    cobra.NoArgs,
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		studies, err := db.GetAllStudies()
		if err != nil {
			log.Fatalf("could not list studies: %v", err)
		}
		if len(studies) == 0 {
			fmt.Println(i18n.T("catalog.empty"))
			return
		}

		printTitle(i18n.T("catalog.header"))
		rows := make([][]string, 0, len(studies))
		for _, s := range studies {
			rows = append(rows, []string{
				s.Name,
				fmt.Sprintf("%.0f", s.NPax),
				fmt.Sprintf("%.0f", unit.NMFromM(s.Range)),
				fmt.Sprintf("%.2f", s.Mach),
				fmt.Sprintf("%.0f", s.MTOW),
				s.CreatedAt,
			})
		}
		fmt.Print(renderTable(
			[]string{"name", "npax", "range (NM)", "mach", "mtow (kg)", "created"},
			rows,
		))
	},
}

var catalogShowCmd = &cobra.Command{
	Use:     "show <study-name>",
	Short:   "Show one stored study in detail",
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		s := loadStudy(args[0])

		printTitle(s.String())
		fmt.Print(renderTable(
			[]string{i18n.T("report.quantity"), i18n.T("report.value")},
			[][]string{
				{"npax", fmt.Sprintf("%.0f", s.NPax)},
				{"range (NM)", fmt.Sprintf("%.0f", unit.NMFromM(s.Range))},
				{"cruise mach", fmt.Sprintf("%.2f", s.Mach)},
				{"mtow (kg)", fmt.Sprintf("%.0f", s.MTOW)},
				{"owe (kg)", fmt.Sprintf("%.0f", s.OWE)},
				{"payload (kg)", fmt.Sprintf("%.0f", s.Payload)},
				{"mission fuel (kg)", fmt.Sprintf("%.0f", s.FuelMission)},
				{"max payload (kg)", fmt.Sprintf("%.0f", s.PayloadMax)},
				{"range at max payload (NM)", fmt.Sprintf("%.0f", unit.NMFromM(s.RangePlMax))},
				{"payload at max fuel (kg)", fmt.Sprintf("%.0f", s.PayloadFuelMax)},
				{"range at max fuel (NM)", fmt.Sprintf("%.0f", unit.NMFromM(s.RangeFuelMax))},
				{"ferry range (NM)", fmt.Sprintf("%.0f", unit.NMFromM(s.RangeNoPl))},
				{"created", s.CreatedAt},
			},
		))
		if s.Arrangement != "" {
			fmt.Println("arrangement:")
			fmt.Println(s.Arrangement)
		}
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:     "delete <study-name>",
	Short:   "Delete a stored study",
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		if err := db.DeleteStudy(args[0]); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				log.Fatalf("%s: %s", i18n.T("catalog.not_found"), args[0])
			}
			log.Fatalf("could not delete study: %v", err)
		}
		fmt.Println(i18n.T("catalog.deleted"))
	},
}

var auditLogCmd = &cobra.Command{
	Use:     "audit",
	Short:   "Show the catalog audit trail",
	Args:    cobra.NoArgs,
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := db.GetAllAuditLogEntries()
		if err != nil {
			log.Fatalf("could not read audit log: %v", err)
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Timestamp, e.Username, e.Action, e.Details})
		}
		fmt.Print(renderTable(
			[]string{"timestamp", "user", "action", "details"},
			rows,
		))
	},
}
