package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tilematch/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'R', core.ColorRed)
	s.DrawTextColored(0, 1, "xyz", core.ColorBrightCyan)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "abR       " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "xyz       " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}

func TestPalettesCoverEveryColor(t *testing.T) {
	for name, p := range map[string]Palette{"color": ColorPalette(), "mono": MonoPalette()} {
		for c := core.ColorDefault; c <= core.ColorGray; c++ {
			if _, ok := p[c]; !ok {
				t.Errorf("%s palette misses color %d", name, c)
			}
		}
	}
}

func TestPaletteStyles(t *testing.T) {
	color := ColorPalette()
	if !color[core.ColorRed].GetBold() {
		t.Error("item glyphs should be bold")
	}
	if got := color[core.ColorRed].GetForeground(); got != lipgloss.Color("1") {
		t.Errorf("red foreground = %v", got)
	}

	mono := MonoPalette()
	for c, st := range mono {
		if _, ok := st.GetForeground().(lipgloss.NoColor); !ok {
			t.Errorf("mono color %d has foreground %v", c, st.GetForeground())
		}
	}
	if !mono[core.ColorGray].GetFaint() {
		t.Error("mono frame should be faint")
	}
	if !mono[core.ColorBrightWhite].GetBold() {
		t.Error("mono pop flash should be bold")
	}
}

func TestRenderWithMonochromeTheme(t *testing.T) {
	SetTheme(MonochromeTheme())
	t.Cleanup(func() { SetTheme(DefaultTheme()) })

	s := core.NewScreen(5, 1)
	s.DrawTextColored(0, 0, "R", core.ColorRed)
	s.SetColored(2, 0, '+', core.ColorGray)
	s.SetColored(4, 0, '?', core.Color(200))

	if got := ansi.Strip(RenderScreen(s)); got != "R + ?" {
		t.Errorf("render = %q", got)
	}
}

func TestRenderWithEmptyPalette(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.DrawTextColored(0, 0, "abc", core.ColorBlue)
	if got := renderWith(s, Palette{}); got != "abc" {
		t.Errorf("render = %q, want unstyled text", got)
	}
}
