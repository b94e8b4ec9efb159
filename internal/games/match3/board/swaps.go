package board

import "fmt"

// Swap is a pair of adjacent cells whose exchange produces a match.
type Swap struct {
	A, B Cell
}

// maxSettleRounds bounds the redraw passes Settle makes.
const maxSettleRounds = 256

// FindSwaps probes every right and down neighbor pair, swapping, checking
// for a match of at least minMatch cells and swapping back. The grid is
// left unchanged. Pairs holding the same item are skipped since exchanging
// them changes nothing.
func FindSwaps(g *Grid, minMatch int) []Swap {
	var swaps []Swap
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			a, _ := g.At(x, y)
			for _, d := range [2][2]int{{1, 0}, {0, 1}} {
				b, ok := g.At(x+d[0], y+d[1])
				if !ok || a.Item.Is(b.Item) {
					continue
				}
				g.Swap(a, b)
				if g.HasMatch(minMatch) {
					swaps = append(swaps, Swap{A: a, B: b})
				}
				g.Swap(a, b)
			}
		}
	}
	return swaps
}

// Settle redraws the cells of every existing match until the board holds
// none. No score is involved; it prepares a freshly drawn board for play.
func Settle(g *Grid, catalog Catalog, minMatch int) error {
	for round := 0; round < maxSettleRounds; round++ {
		matches := g.Matches(minMatch)
		if len(matches) == 0 {
			return nil
		}
		for _, region := range matches {
			for _, c := range region {
				g.SetItem(c.X, c.Y, catalog.Random())
			}
		}
	}
	return fmt.Errorf("%w after %d rounds", ErrUnsettled, maxSettleRounds)
}
