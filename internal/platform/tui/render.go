package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// palette holds the ANSI 256-color code for each screen color. High tiles
// use the bright entries and are drawn bold so they stand out on the board.
var palette = map[core.Color]struct {
	code string
	bold bool
}{
	core.ColorRed:           {"1", false},
	core.ColorGreen:         {"2", false},
	core.ColorYellow:        {"3", false},
	core.ColorBlue:          {"4", false},
	core.ColorMagenta:       {"5", false},
	core.ColorCyan:          {"6", false},
	core.ColorWhite:         {"7", false},
	core.ColorBrightRed:     {"9", true},
	core.ColorBrightGreen:   {"10", true},
	core.ColorBrightYellow:  {"11", true},
	core.ColorBrightBlue:    {"12", true},
	core.ColorBrightMagenta: {"13", true},
	core.ColorBrightCyan:    {"14", true},
	core.ColorBrightWhite:   {"15", true},
	core.ColorOrange:        {"208", false},
	core.ColorGray:          {"245", false},
}

var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, p := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.code)).Bold(p.bold)
	}
	return styles
}

// ColorStyle returns the lipgloss style used for a screen color. Unknown
// colors render unstyled.
func ColorStyle(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes one screen row, styling each run of same-colored cells
// once so board borders and blank space do not repeat escape codes per cell.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	runColor := core.ColorDefault

	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(ColorStyle(runColor).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}
