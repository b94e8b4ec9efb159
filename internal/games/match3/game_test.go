package match3

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
	"github.com/vovakirdan/tilematch/internal/registry"
)

const (
	waitFor = 2 * time.Second
	pollIn  = time.Millisecond
)

// instantConfig is the default config without animations, so swaps resolve
// as soon as the driver picks them up.
func instantConfig() config.Match3Config {
	cfg := config.DefaultMatch3Config()
	cfg.Animation = config.AnimationConfig{}
	return cfg
}

func useSettings(t *testing.T, s Settings) {
	t.Helper()
	Configure(s)
	t.Cleanup(func() {
		Configure(Settings{Config: config.DefaultMatch3Config()})
	})
}

func newTestGame(t *testing.T, id string, seed int64) *Game {
	t.Helper()
	g := New(id)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	t.Cleanup(g.Close)
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// submit retries until the driver goroutine takes the pick.
func submit(t *testing.T, g *Game, x, y int) {
	t.Helper()
	require.Eventually(t, func() bool { return g.driver.Submit(x, y) }, waitFor, pollIn)
}

// playHint makes the swap the engine suggests and steps until it is reported.
func playHint(t *testing.T, g *Game) {
	t.Helper()
	swap, ok := g.engine.Hint()
	require.True(t, ok, "board has no swap")

	accepted := g.engine.Stats().Accepted
	submit(t, g, swap.A.X, swap.A.Y)
	submit(t, g, swap.B.X, swap.B.Y)
	require.Eventually(t, func() bool {
		g.Step(input())
		return g.engine.Stats().Accepted == accepted+1 && g.message != ""
	}, waitFor, pollIn)
}

func TestDefaultVariantsRegistered(t *testing.T) {
	for _, v := range config.DefaultMatch3Config().Variants {
		assert.True(t, registry.Exists(v.ID), v.ID)
	}

	g, err := registry.Create("classic")
	require.NoError(t, err)
	assert.Equal(t, "classic", g.ID())
	assert.Implements(t, (*registry.Pointer)(nil), g)
	assert.Implements(t, (*registry.Closer)(nil), g)
}

func TestConfigureRegistersNewVariant(t *testing.T) {
	cfg := instantConfig()
	cfg.Variants = append(cfg.Variants, config.VariantConfig{ID: "zz_tiny", Title: "Tiny", Width: 5, Height: 5})
	useSettings(t, Settings{Config: cfg})

	require.True(t, registry.Exists("zz_tiny"))
	g := newTestGame(t, "zz_tiny", 1)
	assert.Equal(t, "Tiny", g.Title())
	assert.Equal(t, 5, g.variant.Width)
}

func TestResetIsDeterministic(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})

	a := newTestGame(t, "classic", 42)
	b := newTestGame(t, "classic", 42)
	c := newTestGame(t, "classic", 43)

	assert.Equal(t, a.Snapshot().Board, b.Snapshot().Board)
	assert.NotEqual(t, a.Snapshot().Board, c.Snapshot().Board)
}

func TestResetBoardIsPlayable(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})
	g := newTestGame(t, "classic", 7)

	snap := g.Snapshot()
	rows := strings.Split(snap.Board, "\n")
	assert.Len(t, rows, 8)
	assert.False(t, g.engine.Snapshot().Grid.HasMatch(3), "settled board has no match")
	_, ok := g.engine.Hint()
	assert.True(t, ok)
	assert.Equal(t, 30, snap.MovesLeft)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestDifficultyAdjustsVariant(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig(), Difficulty: config.DifficultyEasy})
	g := newTestGame(t, "classic", 1)
	assert.Equal(t, 45, g.MovesLeft())
	assert.Equal(t, 5, g.variant.Items)
}

func TestUnknownVariantFallsBack(t *testing.T) {
	g := newTestGame(t, "zz_missing", 1)
	assert.Equal(t, "classic", g.variant.ID)
	assert.Equal(t, "zz_missing", g.Title())
}

func TestCursorMovesAndClamps(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})
	g := newTestGame(t, "classic", 1)
	require.Equal(t, 4, g.cursorX)
	require.Equal(t, 4, g.cursorY)

	for range 10 {
		g.Step(input(core.ActionLeft))
		g.Step(input(core.ActionUp))
	}
	assert.Equal(t, 0, g.cursorX)
	assert.Equal(t, 0, g.cursorY)

	for range 10 {
		g.Step(input(core.ActionRight))
		g.Step(input(core.ActionDown))
	}
	assert.Equal(t, 7, g.cursorX)
	assert.Equal(t, 7, g.cursorY)
}

func TestConfirmPicksAndBackCancels(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})
	g := newTestGame(t, "classic", 1)

	require.Eventually(t, func() bool {
		g.Step(input(core.ActionConfirm))
		return len(g.engine.Selection()) == 1
	}, waitFor, pollIn)
	assert.Equal(t, engine.OnePicked, g.engine.State())

	g.Step(input(core.ActionBack))
	assert.Equal(t, engine.Idle, g.engine.State())
	assert.Empty(t, g.engine.Selection())
}

func TestAcceptedSwapScores(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})
	g := newTestGame(t, "classic", 3)

	playHint(t, g)

	snap := g.Snapshot()
	assert.Positive(t, snap.Score)
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, 29, snap.MovesLeft)
	assert.GreaterOrEqual(t, snap.Matches, 1)
	assert.Equal(t, snap.Score, g.State().Score)
	assert.Nil(t, g.hint)
}

func TestMoveLimitEndsGame(t *testing.T) {
	cfg := instantConfig()
	cfg.Variants = append(cfg.Variants, config.VariantConfig{ID: "zz_one_move", MoveLimit: 1})
	useSettings(t, Settings{Config: cfg})
	g := newTestGame(t, "zz_one_move", 5)

	playHint(t, g)
	require.Eventually(t, func() bool {
		g.Step(input())
		return g.State().GameOver
	}, waitFor, pollIn)

	assert.Equal(t, "Out of moves", g.overReason)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	// Picks are ignored once the game is over.
	g.Step(input(core.ActionConfirm))
	assert.Empty(t, g.engine.Selection())
}

func TestHintMarksSwap(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})
	g := newTestGame(t, "classic", 9)

	g.Step(input(core.ActionHint))
	require.NotNil(t, g.hint)
	assert.Equal(t, hintTicks, g.hintLeft)

	for range hintTicks {
		g.Step(input())
	}
	assert.Nil(t, g.hint)
}

func TestPauseToggles(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})
	g := newTestGame(t, "classic", 1)

	g.Step(input(core.ActionPause))
	assert.True(t, g.State().Paused)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	g.Step(input(core.ActionLeft))
	assert.Equal(t, 4, g.cursorX, "paused game ignores movement")

	g.Step(input(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestClickSelectsCell(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})
	g := newTestGame(t, "classic", 1)

	x := g.originX + 2*cellWidth + 1
	y := g.originY + 5
	require.Eventually(t, func() bool {
		g.Click(x, y)
		return len(g.engine.Selection()) == 1
	}, waitFor, pollIn)

	assert.Equal(t, 2, g.cursorX)
	assert.Equal(t, 5, g.cursorY)
	sel := g.engine.Selection()[0]
	assert.Equal(t, 2, sel.X)
	assert.Equal(t, 5, sel.Y)

	// Outside the board
	g.Click(0, 0)
	assert.Equal(t, 2, g.cursorX)
}

func TestTooSmallScreen(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})
	g := New("classic")
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1})
	t.Cleanup(g.Close)

	assert.True(t, g.State().Paused)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	scr := core.NewScreen(20, 8)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")
}

func TestRenderDrawsBoard(t *testing.T) {
	useSettings(t, Settings{Config: instantConfig()})
	g := newTestGame(t, "classic", 11)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	view := g.engine.Snapshot()
	for _, c := range view.Grid.Cells() {
		cell := scr.GetCell(g.originX+c.X*cellWidth+1, g.originY+c.Y)
		require.Equal(t, c.Item.Glyph, cell.Rune, "cell %d,%d", c.X, c.Y)
		require.Equal(t, c.Item.Color, cell.Color)
	}

	cx := g.originX + g.cursorX*cellWidth
	assert.Equal(t, '[', scr.Get(cx, g.originY+g.cursorY))
	assert.Equal(t, ']', scr.Get(cx+2, g.originY+g.cursorY))
	assert.Contains(t, scr.Row(1), "Score: 0")
	assert.Contains(t, scr.Row(1), "Moves: 30")
}

func TestItemsConversion(t *testing.T) {
	items := Items([]config.ItemConfig{
		{ID: "ruby", Name: "Ruby", Glyph: "R", Color: "red", Value: 10},
		{ID: "star", Glyph: "★", Color: "nope", Value: 5},
	})
	require.Len(t, items, 2)

	assert.Equal(t, 'R', items[0].Glyph)
	assert.Equal(t, core.ColorRed, items[0].Color)
	assert.Equal(t, "Ruby", items[0].Name)

	assert.Equal(t, '★', items[1].Glyph)
	assert.Equal(t, core.ColorDefault, items[1].Color)
	assert.Equal(t, "star", items[1].Name)
}
