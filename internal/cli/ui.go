package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - names
	colorYellow = lipgloss.Color("220") // Amber - stacks
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleName   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleStack  = lipgloss.NewStyle().Foreground(colorYellow)
	styleFrame  = lipgloss.NewStyle().Foreground(colorDim)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Bold(true).Underline(true)
)

const (
	treeBranch = "├─ "
	treeLast   = "└─ "
	treePipe   = "│  "
	treeSpace  = "   "
)

// printRow writes one table row of right-aligned columns.
func printRow(w io.Writer, widths []int, cols ...string) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprint(w, lipgloss.NewStyle().Width(widths[i]).Align(lipgloss.Right).Render(c))
	}
	fmt.Fprintln(w)
}

// printHeader writes a styled table header.
func printHeader(w io.Writer, widths []int, cols ...string) {
	styled := make([]string, len(cols))
	for i, c := range cols {
		styled[i] = styleHeader.Render(c)
	}
	printRow(w, widths, styled...)
}
