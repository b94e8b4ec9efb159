package board

import "fmt"

// Cell is one board position. X and Y never change once the grid is built;
// Item is overwritten in place when the cell is refilled.
type Cell struct {
	X, Y int
	Item ItemType
}

// SameSpot reports whether two cells refer to the same coordinates.
func (c Cell) SameSpot(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// IsNeighbor reports whether a and b are 4-directionally adjacent.
func IsNeighbor(a, b Cell) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// neighborOffsets lists left, up, right, down.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Grid is a fully populated W×H board. Cells are stored row-major:
// index = y*W + x.
type Grid struct {
	w, h  int
	cells []Cell
}

// newGrid allocates a grid whose cells carry coordinates but no items.
func newGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = Cell{X: x, Y: y}
		}
	}
	return g, nil
}

// NewGrid builds a w×h grid with every cell drawn at random from catalog.
func NewGrid(w, h int, catalog Catalog) (*Grid, error) {
	if catalog == nil || len(catalog.Items()) == 0 {
		return nil, ErrEmptyCatalog
	}
	g, err := newGrid(w, h)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i].Item = catalog.Random()
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) is on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y). ok is false when out of range.
func (g *Grid) At(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.w+x], true
}

// Neighbors returns the in-bounds cells left, up, right and down of c.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		if n, ok := g.At(c.X+d[0], c.Y+d[1]); ok {
			out = append(out, n)
		}
	}
	return out
}

// SetItem places item into the cell at (x, y). It reports false when the
// coordinates are off the board.
func (g *Grid) SetItem(x, y int, item ItemType) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.w+x].Item = item
	return true
}

// Swap exchanges the items of the cells at a's and b's coordinates.
// Coordinates never move.
func (g *Grid) Swap(a, b Cell) bool {
	if !g.InBounds(a.X, a.Y) || !g.InBounds(b.X, b.Y) {
		return false
	}
	i, j := a.Y*g.w+a.X, b.Y*g.w+b.X
	g.cells[i].Item, g.cells[j].Item = g.cells[j].Item, g.cells[i].Item
	return true
}

// Cells returns a row-major copy of every cell.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: g.Cells()}
}

// Equal reports whether both grids have the same size and the same item
// kind in every cell.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if !c.Item.Is(other.cells[i].Item) {
			return false
		}
	}
	return true
}
