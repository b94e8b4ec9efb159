// Package engine runs the selection, swap and cascade rules of a match3
// board. One Engine owns one grid and its score; every write to either
// happens inside Select.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilematch/internal/games/match3/board"
)

// ErrNoPresenter is returned by New when no Presenter is given.
var ErrNoPresenter = errors.New("engine: no presenter")

// DefaultMinMatch is the smallest region that counts as a match.
const DefaultMinMatch = 3

// maxResolutions caps one swap's cascade. Only a catalog too small to ever
// break up a match can reach it.
const maxResolutions = 4096

// State is the selection state machine's position.
type State int

const (
	Idle      State = iota // nothing picked
	OnePicked              // first cell picked
	Resolving              // swap in progress, selections ignored
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case OnePicked:
		return "one-picked"
	case Resolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Outcome tells the caller what a selection did.
type Outcome int

const (
	Ignored  Outcome = iota // rejected pick, nothing changed
	Picked                  // first cell recorded
	Accepted                // swap made a match and was resolved
	Reverted                // swap made no match and was undone
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Picked:
		return "picked"
	case Accepted:
		return "accepted"
	case Reverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// Resolution is one match collected during a swap.
type Resolution struct {
	Seed   board.Cell   // first cell of the region in row-major order
	Cells  []board.Cell // the matched region before refill
	Gained int          // Seed.Item.Value * len(Cells)
}

// Result describes one call to Select.
type Result struct {
	Outcome     Outcome
	Gained      int
	Resolutions []Resolution
}

// Chain returns how many matches the swap resolved, cascades included.
func (r Result) Chain() int {
	return len(r.Resolutions)
}

// Stats counts what an engine has done since it was built.
type Stats struct {
	Moves        int // swaps attempted
	Accepted     int
	Reverted     int
	Resolutions  int // matches collected, cascades included
	LongestChain int
}

// View is a consistent copy of the engine's state for readers.
type View struct {
	Grid      *board.Grid
	Score     int
	State     State
	Selection []board.Cell
	Stats     Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMinMatch sets the region size that counts as a match.
func WithMinMatch(n int) Option {
	return func(e *Engine) {
		if n >= 2 {
			e.minMatch = n
		}
	}
}

// WithRemoteSwap lets the second pick be any other cell instead of a
// 4-directional neighbor of the first.
func WithRemoteSwap(allow bool) Option {
	return func(e *Engine) {
		e.remoteSwap = allow
	}
}

// Engine holds a grid, the running score and the selection state machine.
type Engine struct {
	mu sync.RWMutex

	grid      *board.Grid
	catalog   board.Catalog
	presenter Presenter
	logger    *log.Logger

	minMatch   int
	remoteSwap bool

	state     State
	selection []board.Cell
	score     int
	stats     Stats
}

// New builds an engine that takes ownership of grid.
func New(grid *board.Grid, catalog board.Catalog, p Presenter, opts ...Option) (*Engine, error) {
	if grid == nil {
		return nil, board.ErrInvalidDimensions
	}
	if catalog == nil || len(catalog.Items()) == 0 {
		return nil, board.ErrEmptyCatalog
	}
	if err := board.CheckValues(catalog.Items()); err != nil {
		return nil, err
	}
	for _, c := range grid.Cells() {
		if c.Item.Value < 0 {
			return nil, fmt.Errorf("%w: %q at %d,%d", board.ErrNegativeValue, c.Item.ID, c.X, c.Y)
		}
	}
	if p == nil {
		return nil, ErrNoPresenter
	}

	e := &Engine{
		grid:      grid,
		catalog:   catalog,
		presenter: p,
		logger:    log.New(io.Discard),
		minMatch:  DefaultMinMatch,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Score returns the running score. It never decreases.
func (e *Engine) Score() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.score
}

// State returns the selection state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Selection returns the currently picked cells.
func (e *Engine) Selection() []board.Cell {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]board.Cell(nil), e.selection...)
}

// Stats returns the engine's counters.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}

// MinMatch returns the region size that counts as a match.
func (e *Engine) MinMatch() int {
	return e.minMatch
}

// Snapshot copies the grid and state under one read lock.
func (e *Engine) Snapshot() View {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return View{
		Grid:      e.grid.Clone(),
		Score:     e.score,
		State:     e.state,
		Selection: append([]board.Cell(nil), e.selection...),
		Stats:     e.stats,
	}
}

// Hint returns a swap that would make a match, if one exists.
func (e *Engine) Hint() (board.Swap, bool) {
	e.mu.RLock()
	g := e.grid.Clone()
	e.mu.RUnlock()

	swaps := board.FindSwaps(g, e.minMatch)
	if len(swaps) == 0 {
		return board.Swap{}, false
	}
	return swaps[0], true
}

// Cancel drops a pending first pick. It does nothing while a swap resolves.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == OnePicked {
		e.selection = e.selection[:0]
		e.state = Idle
	}
}

// Select picks the cell at (x, y). The first pick is recorded. A second
// pick that neighbors the first swaps the two items and blocks until the
// swap is accepted and resolved or reverted, waiting on the presenter at
// every step. Off-board picks, re-picking the first cell, non-neighbors
// and picks made while another swap resolves are Ignored.
//
// ctx is checked before a swap starts: a second pick on a done ctx is
// Ignored, keeps the first pick and returns ctx.Err(). Once started, a
// resolution always runs to the end and awaits every presenter signal.
func (e *Engine) Select(ctx context.Context, x, y int) (Result, error) {
	e.mu.Lock()
	if e.state == Resolving {
		e.mu.Unlock()
		e.logger.Debug("selection ignored", "x", x, "y", y, "reason", "resolving")
		return Result{Outcome: Ignored}, nil
	}

	cell, ok := e.grid.At(x, y)
	if !ok {
		e.mu.Unlock()
		e.logger.Debug("selection ignored", "x", x, "y", y, "reason", "off board")
		return Result{Outcome: Ignored}, nil
	}

	if e.state == Idle {
		e.selection = append(e.selection[:0], cell)
		e.state = OnePicked
		e.mu.Unlock()
		return Result{Outcome: Picked}, nil
	}

	first := e.selection[0]
	if first.SameSpot(cell) || (!e.remoteSwap && !board.IsNeighbor(first, cell)) {
		e.mu.Unlock()
		e.logger.Debug("selection ignored", "x", x, "y", y, "first_x", first.X, "first_y", first.Y)
		return Result{Outcome: Ignored}, nil
	}

	if err := ctx.Err(); err != nil {
		e.mu.Unlock()
		return Result{Outcome: Ignored}, err
	}

	e.selection = append(e.selection, cell)
	e.state = Resolving
	e.mu.Unlock()

	res := e.resolve(first, cell)

	e.mu.Lock()
	e.selection = e.selection[:0]
	e.state = Idle
	e.mu.Unlock()

	return res, nil
}

func (e *Engine) resolve(a, b board.Cell) Result {
	e.mu.Lock()
	e.grid.Swap(a, b)
	sa, _ := e.grid.At(a.X, a.Y)
	sb, _ := e.grid.At(b.X, b.Y)
	e.stats.Moves++
	e.mu.Unlock()

	e.presenter.PlaySound(CueSwap)
	<-e.presenter.AnimateSwap(sa, sb)

	e.mu.RLock()
	matched := e.grid.HasMatch(e.minMatch)
	e.mu.RUnlock()

	if !matched {
		e.mu.Lock()
		e.grid.Swap(a, b)
		ra, _ := e.grid.At(a.X, a.Y)
		rb, _ := e.grid.At(b.X, b.Y)
		e.stats.Reverted++
		e.mu.Unlock()

		e.presenter.PlaySound(CueRevert)
		<-e.presenter.AnimateSwap(ra, rb)
		e.logger.Debug("swap reverted", "ax", a.X, "ay", a.Y, "bx", b.X, "by", b.Y)
		return Result{Outcome: Reverted}
	}

	e.logger.Debug("swap accepted", "ax", a.X, "ay", a.Y, "bx", b.X, "by", b.Y)
	res := Result{Outcome: Accepted}

	for len(res.Resolutions) < maxResolutions {
		e.mu.Lock()
		region := e.grid.FindMatch(e.minMatch)
		if region == nil {
			e.mu.Unlock()
			break
		}
		seed := region[0]
		// Refills come from Catalog.Random, which New cannot check.
		gained := max(seed.Item.Value, 0) * len(region)
		e.score += gained
		e.stats.Resolutions++
		score := e.score
		e.mu.Unlock()

		cue := CuePop
		if len(res.Resolutions) > 0 {
			cue = CueCascade
		}
		e.presenter.PlaySound(cue)
		<-e.presenter.AnimatePop(region)

		e.mu.Lock()
		refilled := make([]board.Cell, 0, len(region))
		for _, c := range region {
			e.grid.SetItem(c.X, c.Y, e.catalog.Random())
			nc, _ := e.grid.At(c.X, c.Y)
			refilled = append(refilled, nc)
		}
		e.mu.Unlock()

		<-e.presenter.AnimateRefill(refilled)

		res.Resolutions = append(res.Resolutions, Resolution{Seed: seed, Cells: region, Gained: gained})
		res.Gained += gained
		e.logger.Debug("match resolved",
			"x", seed.X, "y", seed.Y, "item", seed.Item.ID,
			"size", len(region), "gained", gained, "score", score,
			"chain", len(res.Resolutions))
	}
	if len(res.Resolutions) == maxResolutions {
		e.logger.Warn("cascade cut short", "resolutions", maxResolutions)
	}

	e.mu.Lock()
	e.stats.Accepted++
	e.stats.LongestChain = max(e.stats.LongestChain, res.Chain())
	e.mu.Unlock()

	return res
}
