package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '●', ColorMagenta)

	cell := s.GetCell(1, 1)
	if cell.Rune != '●' || cell.Color != ColorMagenta {
		t.Errorf("GetCell(1, 1) = %+v, expected magenta ●", cell)
	}

	// Plain Set resets the color
	s.Set(1, 1, 'x')
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("Set should reset color, got %d", got)
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')
	if s.Get(4, 4) != '#' {
		t.Errorf("After Fill, expected '#', got %q", s.Get(4, 4))
	}

	s.SetColored(2, 2, 'A', ColorRed)
	s.Clear()
	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("After Clear, expected blank cell, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); got != "  Hello   " {
		t.Errorf("Row(1) = %q, expected %q", got, "  Hello   ")
	}

	// Clipping at the right edge
	s.DrawText(8, 0, "ABCD")
	if got := s.Row(0); got != "        AB" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(7, 1)
	s.DrawTextCenteredColored(0, "●●●", ColorYellow)

	if got := s.Row(0); got != "  ●●●  " {
		t.Errorf("Row(0) = %q, expected %q", got, "  ●●●  ")
	}
	if s.GetCell(2, 0).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	want := []string{"┌──┐", "│  │", "└──┘"}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box corner should carry the box color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize gave %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.Row(1); got != "efgh  " {
		t.Errorf("Row(1) after grow = %q, expected %q", got, "efgh  ")
	}

	s.Resize(2, 1)
	if got := s.String(); got != "ab" {
		t.Errorf("String() after shrink = %q, expected %q", got, "ab")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('.')
	got := s.String()
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should join 2 rows with one newline, got %q", got)
	}
	if got != "...\n..." {
		t.Errorf("String() = %q, expected %q", got, "...\n...")
	}
}
