package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mstviz/prim_kruskal"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - examining
	colorRed    = lipgloss.Color("167") // Soft red - rejections
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// statusStyle colours a step status the way the step log is coloured:
// acceptances green, rejections red, everything else neutral.
func statusStyle(s prim_kruskal.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Width(13)
	switch s {
	case prim_kruskal.StatusSelected, prim_kruskal.StatusSelectedNode:
		return base.Foreground(colorGreen)
	case prim_kruskal.StatusRejected:
		return base.Foreground(colorRed)
	case prim_kruskal.StatusExamining, prim_kruskal.StatusUpdateDist:
		return base.Foreground(colorYellow)
	case prim_kruskal.StatusInitial, prim_kruskal.StatusFinal:
		return base.Foreground(colorCyan).Bold(true)
	default:
		return base
	}
}

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printStep prints one trace step on a single line.
func printStep(w io.Writer, i int, s prim_kruskal.Step) {
	fmt.Fprintf(w, "%s %s %s\n", styleDim.Render(fmt.Sprintf("%4d", i)), statusStyle(s.Status).Render(string(s.Status)), s.Log)
}
