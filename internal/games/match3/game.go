// Package match3 is the playable tile-matching game: a cursor-driven board
// on top of the match3 engine, registered once per configured variant.
package match3

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/match3/board"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
)

const (
	messageTicks = 90  // ~1.5s at 60fps
	hintTicks    = 180 // ~3s at 60fps
)

// Game implements one match3 variant.
type Game struct {
	variantID string

	variant config.VariantConfig
	logger  *log.Logger
	tick    uint64

	engine *engine.Engine
	driver *engine.Driver
	anim   *Animator
	cancel context.CancelFunc

	// Screen layout
	screenW, screenH int
	originX, originY int // top-left board cell on screen

	cursorX, cursorY int
	hint             *board.Swap
	hintLeft         int
	message          string
	messageLeft      int

	needCheck  bool // re-evaluate game over once the board is idle
	gameOver   bool
	overReason string
	paused     bool
	tooSmall   bool
}

// New creates a game for the variant with the given ID.
func New(variantID string) *Game {
	return &Game{variantID: variantID}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variantID
}

// Title returns the display name.
func (g *Game) Title() string {
	s := currentSettings()
	if v, ok := s.Config.Variant(g.variantID); ok {
		return s.Config.Resolve(v).Title
	}
	return g.variantID
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Close()

	s := currentSettings()
	g.logger = s.Logger.With("game", g.variantID)

	if err := g.build(s, g.variantID, cfg.Seed); err != nil {
		g.logger.Error("cannot build board, using defaults", "error", err)
		s.Config = config.DefaultMatch3Config()
		id := g.variantID
		if _, ok := s.Config.Variant(id); !ok {
			id = s.Config.Variants[0].ID
		}
		if err := g.build(s, id, cfg.Seed); err != nil {
			panic(fmt.Sprintf("match3: default board failed: %v", err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	go g.driver.Run(ctx)

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursorX = g.variant.Width / 2
	g.cursorY = g.variant.Height / 2
	g.hint = nil
	g.hintLeft = 0
	g.message = ""
	g.messageLeft = 0
	g.needCheck = true
	g.gameOver = false
	g.overReason = ""
	g.paused = false
	g.layout()
}

// build deals the board and wires the animator, engine and driver.
func (g *Game) build(s Settings, id string, seed int64) error {
	anim := NewAnimator(s.Config.Animation, s.Sound)
	setup, err := NewSetup(s, id, seed, anim)
	if err != nil {
		return err
	}

	g.variant = setup.Variant
	g.anim = anim
	g.engine = setup.Engine
	g.driver = engine.NewDriver(setup.Engine)
	return nil
}

// layout computes the board position and checks the screen size.
func (g *Game) layout() {
	boardW := g.variant.Width*cellWidth + 2
	boardH := g.variant.Height + 2
	g.tooSmall = g.screenW < max(boardW, minScreenW) || g.screenH < boardH+hudHeight+footerHeight

	g.originX = (g.screenW-boardW)/2 + 1
	g.originY = hudHeight + 1
}

// Resize follows a terminal resize without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout()
}

// Close stops the background driver. The game can be Reset again.
func (g *Game) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	if g.anim != nil {
		g.anim.Close()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	g.drainEvents()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.anim.Tick()
	if g.hintLeft > 0 {
		g.hintLeft--
		if g.hintLeft == 0 {
			g.hint = nil
		}
	}
	if g.messageLeft > 0 {
		g.messageLeft--
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.pick(g.cursorX, g.cursorY)
	case in.Has(core.ActionHint):
		g.showHint()
	case in.Has(core.ActionBack):
		g.engine.Cancel()
	}

	g.checkGameOver()
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursorX = core.Clamp(g.cursorX+dx, 0, g.variant.Width-1)
	g.cursorY = core.Clamp(g.cursorY+dy, 0, g.variant.Height-1)
}

// pick hands a selection to the driver. Picks made while a swap resolves
// are dropped.
func (g *Game) pick(x, y int) {
	if !g.driver.Submit(x, y) {
		g.logger.Debug("pick dropped", "x", x, "y", y)
	}
}

// Click selects the board cell under screen position (x, y).
func (g *Game) Click(x, y int) {
	if g.engine == nil || g.tooSmall || g.paused || g.gameOver {
		return
	}
	c, ok := g.cellAt(x, y)
	if !ok {
		return
	}
	g.cursorX, g.cursorY = c.X, c.Y
	g.pick(c.X, c.Y)
}

func (g *Game) showHint() {
	if swap, ok := g.engine.Hint(); ok {
		g.hint = &swap
		g.hintLeft = hintTicks
	}
}

// drainEvents applies results the driver has published since the last tick.
func (g *Game) drainEvents() {
	for {
		select {
		case ev := <-g.driver.Events():
			g.handleEvent(ev)
		default:
			return
		}
	}
}

func (g *Game) handleEvent(ev engine.Event) {
	if ev.Err != nil {
		g.logger.Warn("selection failed", "x", ev.X, "y", ev.Y, "error", ev.Err)
	}

	res := ev.Result
	switch res.Outcome {
	case engine.Accepted:
		g.hint = nil
		g.hintLeft = 0
		g.needCheck = true
		if res.Chain() > 1 {
			g.flash(fmt.Sprintf("Chain x%d! +%d", res.Chain(), res.Gained))
		} else {
			g.flash(fmt.Sprintf("+%d", res.Gained))
		}
	case engine.Reverted:
		g.needCheck = true
		g.flash("No match")
	}
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageLeft = messageTicks
}

// movesUsed counts accepted swaps; reverted swaps are free.
func (g *Game) movesUsed() int {
	return g.engine.Stats().Accepted
}

// MovesLeft returns the remaining move budget, or -1 when unlimited.
func (g *Game) MovesLeft() int {
	if g.variant.MoveLimit <= 0 {
		return -1
	}
	return max(0, g.variant.MoveLimit-g.movesUsed())
}

// checkGameOver ends the game once the board is idle and either the move
// budget is spent or no swap can make a match.
func (g *Game) checkGameOver() {
	if !g.needCheck || g.busy() {
		return
	}
	g.needCheck = false

	switch {
	case g.MovesLeft() == 0:
		g.endGame("Out of moves")
	default:
		if _, ok := g.engine.Hint(); !ok {
			g.endGame("No moves left")
		}
	}
}

func (g *Game) endGame(reason string) {
	g.gameOver = true
	g.overReason = reason
	g.engine.Cancel()
	stats := g.engine.Stats()
	g.logger.Info("game over",
		"reason", reason, "score", g.engine.Score(),
		"moves", stats.Moves, "matches", stats.Resolutions, "best_chain", stats.LongestChain)
}

// busy reports whether a swap is resolving, animating or waiting to be
// reported.
func (g *Game) busy() bool {
	return g.engine.State() == engine.Resolving || !g.anim.Idle() || len(g.driver.Events()) > 0
}

// SessionStats returns the counters stored with a finished game: swaps
// attempted, regions collected and the longest cascade.
func (g *Game) SessionStats() (moves, matches, bestChain int) {
	s := g.engine.Stats()
	return s.Moves, s.Resolutions, s.LongestChain
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
		Busy:     g.engine.State() == engine.Resolving,
	}
}
