package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-breaker/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Hex values are
// downsampled by lipgloss on terminals without true color.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRose:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f43f5e")),
	core.ColorAmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
	core.ColorEmerald: lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
	core.ColorViolet:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8b5cf6")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("#06b6d4")),
	core.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ec4899")),
	core.ColorSky:     lipgloss.NewStyle().Foreground(lipgloss.Color("#38bdf8")),
	core.ColorIce:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e0f2fe")).Bold(true),
	core.ColorSlate:   lipgloss.NewStyle().Foreground(lipgloss.Color("#475569")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f8fafc")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true),
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
