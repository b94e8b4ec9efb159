package board

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout is a board fixture stored as YAML, one string of glyphs per row.
//
//	name: corner-l
//	rows:
//	  - "RRG"
//	  - "GBR"
type Layout struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Parse builds a grid from text rows of item glyphs. Rows are separated by
// newlines or spaces; blank rows are skipped. Each glyph must belong to
// exactly one of items.
func Parse(text string, items []ItemType) (*Grid, error) {
	return fromRows(strings.Fields(text), items)
}

// LoadLayout decodes a YAML layout from r and builds its grid.
func LoadLayout(r io.Reader, items []ItemType) (*Grid, *Layout, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, nil, fmt.Errorf("board: decode layout: %w", err)
	}
	g, err := fromRows(l.Rows, items)
	if err != nil {
		return nil, nil, fmt.Errorf("board: layout %q: %w", l.Name, err)
	}
	return g, &l, nil
}

func fromRows(rows []string, items []ItemType) (*Grid, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	byGlyph := make(map[rune]ItemType, len(items))
	for _, it := range items {
		byGlyph[it.Glyph] = it
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	width := len([]rune(rows[0]))
	g, err := newGrid(width, len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		glyphs := []rune(row)
		if len(glyphs) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(glyphs), width)
		}
		for x, r := range glyphs {
			it, ok := byGlyph[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, r, x, y)
			}
			g.SetItem(x, y, it)
		}
	}
	return g, nil
}

// String renders the grid as rows of item glyphs joined by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			sb.WriteRune(g.cells[y*g.w+x].Item.Glyph)
		}
	}
	return sb.String()
}
