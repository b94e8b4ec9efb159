package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles of the menu and scoreboard screens and
// the palette the board is drawn with.
type Theme struct {
	Board       Palette
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style
	Error       lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Board:       ColorPalette(),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// MonochromeTheme returns a theme without colors, for terminals that
// render them poorly.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Board:       MonoPalette(),
		Title:       plain.Bold(true),
		Subtitle:    plain,
		ItemNormal:  plain,
		ItemActive:  plain.Reverse(true),
		Description: plain.Faint(true),
		Controls:    plain.Faint(true),
		Error:       plain.Bold(true),
	}
}

var theme = DefaultTheme()

// SetTheme sets the theme used by screens created afterwards and by every
// later board render.
func SetTheme(t Theme) {
	theme = t
}
