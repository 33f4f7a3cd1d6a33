package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorCyan  = lipgloss.Color("36")  // values
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleValue   = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// successLine formats a check-marked status line, e.g.
// "✓ wrote cutlist.svg (12 bars)".
func successLine(msg, detail string) string {
	line := styleSuccess.Render("✓") + " " + msg
	if detail != "" {
		line += " " + styleDim.Render("("+detail+")")
	}
	return line
}

// errorLine formats a cross-marked failure line.
func errorLine(msg string) string {
	return styleError.Render("✗") + " " + msg
}

// valueText highlights a value within a status line.
func valueText(v any) string {
	return styleValue.Render(fmt.Sprint(v))
}
