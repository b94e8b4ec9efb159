package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilematch/internal/core"
)

// Palette maps screen colors to the styles used for board output.
type Palette map[core.Color]lipgloss.Style

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// ColorPalette draws item glyphs bold on top of the ANSI colors so they
// stand out against the gray frame and HUD.
func ColorPalette() Palette {
	return Palette{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           fg("1").Bold(true),
		core.ColorGreen:         fg("2").Bold(true),
		core.ColorYellow:        fg("3").Bold(true),
		core.ColorBlue:          fg("4").Bold(true),
		core.ColorMagenta:       fg("5").Bold(true),
		core.ColorCyan:          fg("6").Bold(true),
		core.ColorWhite:         fg("7"),
		core.ColorBrightRed:     fg("9").Bold(true),
		core.ColorBrightGreen:   fg("10").Bold(true),
		core.ColorBrightYellow:  fg("11").Bold(true),
		core.ColorBrightBlue:    fg("12").Bold(true),
		core.ColorBrightMagenta: fg("13").Bold(true),
		core.ColorBrightCyan:    fg("14").Bold(true),
		core.ColorBrightWhite:   fg("15").Bold(true),
		core.ColorOrange:        fg("208").Bold(true),
		core.ColorGray:          fg("245"),
	}
}

// MonoPalette drops colors. Items are told apart by glyph only; the pop
// flash stays bold and the frame stays faint.
func MonoPalette() Palette {
	plain := lipgloss.NewStyle()
	p := Palette{}
	for c := range ColorPalette() {
		p[c] = plain
	}
	p[core.ColorBrightWhite] = plain.Bold(true)
	p[core.ColorGray] = plain.Faint(true)
	return p
}

func (p Palette) style(c core.Color) (lipgloss.Style, bool) {
	if st, ok := p[c]; ok {
		return st, true
	}
	st, ok := p[core.ColorDefault]
	return st, ok
}

// RenderScreen converts a Screen buffer to a styled string with the
// current theme's palette.
func RenderScreen(s *core.Screen) string {
	return renderWith(s, theme.Board)
}

// renderWith groups adjacent cells of one color into a single styled run.
// Runs of blanks are written unstyled since color does not show on them.
func renderWith(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			blank := true

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				blank = blank && cell.Rune == ' '
				run.WriteRune(cell.Rune)
			}

			style, ok := p.style(color)
			if blank || !ok {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
