// Package cli provides table helpers for human-readable output.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themekit/internal/color"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// swatch renders a two-cell color sample, or nothing when color output is
// disabled or value is not a color. The sample is wrapped in tabwriter escapes
// so ANSI codes do not skew column widths.
func swatch(value string) string {
	if noColor {
		return ""
	}
	if _, err := color.Decode(value); err != nil {
		return ""
	}
	sample := lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ")
	return "\xff" + sample + "\xff"
}
