// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

// renderTable renders a simple left-aligned table with a styled header.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if i < len(widths) && len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}

	var sb strings.Builder
	var hdr []string
	for i, h := range headers {
		hdr = append(hdr, headerStyle.Render(pad(h, widths[i])))
	}
	sb.WriteString(cellStyle.Render(strings.Join(hdr, "  ")))
	sb.WriteString("\n")
	for _, row := range rows {
		var cells []string
		for i, c := range row {
			cells = append(cells, pad(c, widths[i]))
		}
		sb.WriteString(cellStyle.Render(strings.Join(cells, "  ")))
		sb.WriteString("\n")
	}
	return sb.String()
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

// printTitle prints a styled section title.
func printTitle(s string) {
	fmt.Println(titleStyle.Render(s))
}
