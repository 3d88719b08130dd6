package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorSand  = lipgloss.Color("220") // Amber - sand grains
	colorGlass = lipgloss.Color("245") // Gray - glass walls
	colorGreen = lipgloss.Color("35")  // Green - done state
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleDone for the elapsed message.
	StyleDone = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)

	styleSand  = lipgloss.NewStyle().Foreground(colorSand)
	styleGlass = lipgloss.NewStyle().Foreground(colorGlass)
)

// styleGlassFrame colorizes a rendered glass: sand glyphs amber, everything
// else (walls and the corruption marker) gray. The renderer emits one rune
// per cell so per-rune styling is safe.
func styleGlassFrame(frame string) string {
	var b strings.Builder
	for _, line := range strings.Split(frame, "\n") {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		for _, r := range line {
			switch r {
			case '.', ':':
				b.WriteString(styleSand.Render(string(r)))
			case ' ':
				b.WriteByte(' ')
			default:
				b.WriteString(styleGlass.Render(string(r)))
			}
		}
	}
	return b.String()
}
