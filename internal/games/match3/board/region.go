package board

import "slices"

// Region returns the maximal set of cells reachable from seed through
// same-item 4-directional adjacency, seed included, in row-major order.
// The seed's item is read from the grid. Returns nil if seed is off the
// board. The grid is never modified.
func (g *Grid) Region(seed Cell) []Cell {
	start, ok := g.At(seed.X, seed.Y)
	if !ok {
		return nil
	}

	visited := make([]bool, len(g.cells))
	visited[start.Y*g.w+start.X] = true
	stack := []Cell{start}
	region := []Cell{}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, cur)

		for _, n := range g.Neighbors(cur) {
			idx := n.Y*g.w + n.X
			if visited[idx] || !n.Item.Is(start.Item) {
				continue
			}
			visited[idx] = true
			stack = append(stack, n)
		}
	}

	slices.SortFunc(region, func(a, b Cell) int {
		return (a.Y*g.w + a.X) - (b.Y*g.w + b.X)
	})
	return region
}

// FindMatch scans the grid row-major and returns the region of the first
// cell whose region holds at least minMatch cells. The scanned cell comes
// first in the result. Returns nil when the board has no match.
func (g *Grid) FindMatch(minMatch int) []Cell {
	seen := make([]bool, len(g.cells))
	for i, c := range g.cells {
		if seen[i] {
			continue
		}
		region := g.Region(c)
		for _, rc := range region {
			seen[rc.Y*g.w+rc.X] = true
		}
		if len(region) >= minMatch {
			return region
		}
	}
	return nil
}

// HasMatch reports whether any region on the board holds at least
// minMatch cells.
func (g *Grid) HasMatch(minMatch int) bool {
	return g.FindMatch(minMatch) != nil
}

// Matches returns every distinct region of at least minMatch cells,
// ordered by their first cell in row-major order.
func (g *Grid) Matches(minMatch int) [][]Cell {
	var out [][]Cell
	seen := make([]bool, len(g.cells))
	for i, c := range g.cells {
		if seen[i] {
			continue
		}
		region := g.Region(c)
		for _, rc := range region {
			seen[rc.Y*g.w+rc.X] = true
		}
		if len(region) >= minMatch {
			out = append(out, region)
		}
	}
	return out
}
