package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	skyHigh = lipgloss.Color("75")
	sky     = lipgloss.Color("117")

	onSky = lipgloss.NewStyle().Background(sky)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Scoreboard
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorSky:           onSky,
	core.ColorSkyHigh:       lipgloss.NewStyle().Background(skyHigh),
	core.ColorCloud:         onSky.Foreground(lipgloss.Color("255")),
	core.ColorPipe:          lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorPipeCap:       lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorPipeShine:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	core.ColorParticle:      onSky.Foreground(lipgloss.Color("230")),
	core.ColorParticleFaint: onSky.Foreground(lipgloss.Color("250")),
	core.ColorBird:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorBeak:          onSky.Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorGrass:         lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Background(lipgloss.Color("94")),
	core.ColorGrassTip:      lipgloss.NewStyle().Foreground(lipgloss.Color("113")).Background(lipgloss.Color("94")),
	core.ColorDirt:          lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Background(lipgloss.Color("94")),
	core.ColorScore:         onSky.Foreground(lipgloss.Color("231")).Bold(true),
	core.ColorTitle:         onSky.Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorGameOver:      onSky.Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorHint:          onSky.Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
