package match3

import (
	"fmt"

	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/match3/board"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
)

const (
	cellWidth    = 3 // Glyph plus one column of padding on each side
	hudHeight    = 3
	footerHeight = 2
	minScreenW   = 40
)

// cellMarks are the brackets drawn around a cell's glyph.
type cellMarks struct {
	left, right rune
	color       core.Color
}

var (
	markCursor   = cellMarks{'[', ']', core.ColorBrightWhite}
	markSelected = cellMarks{'(', ')', core.ColorBrightYellow}
	markHint     = cellMarks{'<', '>', core.ColorBrightCyan}
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	view := g.engine.Snapshot()
	boardW := g.variant.Width*cellWidth + 2
	boardH := g.variant.Height + 2
	boxX := g.originX - 1
	boxY := g.originY - 1

	g.renderHUD(dst, view, boxX, boardW)
	dst.DrawBox(core.NewRect(boxX, boxY, boardW, boardH), core.ColorGray)
	g.renderBoard(dst, view)
	g.renderOverlays(dst, view, boxX+boardW/2, boxY+boardH/2)

	dst.DrawTextCenteredColored(boxY+boardH+1, g.Controls(), core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score, move budget and the last message.
func (g *Game) renderHUD(dst *core.Screen, view engine.View, boxX, boardW int) {
	dst.DrawTextCenteredColored(0, g.variant.Title, core.ColorBrightYellow)

	dst.DrawText(boxX, 1, fmt.Sprintf("Score: %d", view.Score))

	var info string
	if left := g.MovesLeft(); left >= 0 {
		info = fmt.Sprintf("Moves: %d", left)
	} else {
		info = fmt.Sprintf("Chain: %d", view.Stats.LongestChain)
	}
	dst.DrawText(max(boxX, boxX+boardW-len(info)), 1, info)

	if g.messageLeft > 0 {
		dst.DrawTextCenteredColored(2, g.message, core.ColorBrightGreen)
	}
}

// renderBoard draws every cell, then the animation and the markers on top.
func (g *Game) renderBoard(dst *core.Screen, view engine.View) {
	for _, c := range view.Grid.Cells() {
		g.drawGlyph(dst, c.X, c.Y, c.Item.Glyph, c.Item.Color)
	}

	if frame, ok := g.anim.Frame(); ok {
		g.renderFrame(dst, frame)
	}

	if g.hint != nil {
		g.drawMarks(dst, g.hint.A.X, g.hint.A.Y, markHint)
		g.drawMarks(dst, g.hint.B.X, g.hint.B.Y, markHint)
	}
	for _, c := range view.Selection {
		g.drawMarks(dst, c.X, c.Y, markSelected)
	}
	if !g.gameOver {
		g.drawMarks(dst, g.cursorX, g.cursorY, markCursor)
	}
}

// renderFrame draws the running animation over the settled cells.
func (g *Game) renderFrame(dst *core.Screen, f Frame) {
	switch f.Phase {
	case PhaseSwap:
		// The board already holds the swapped items; show them in their
		// old places for the first half.
		if len(f.Cells) != 2 || f.Progress >= 0.5 {
			return
		}
		a, b := f.Cells[0], f.Cells[1]
		g.drawGlyph(dst, a.X, a.Y, b.Item.Glyph, b.Item.Color)
		g.drawGlyph(dst, b.X, b.Y, a.Item.Glyph, a.Item.Color)

	case PhasePop:
		for _, c := range f.Cells {
			switch {
			case f.Progress < 0.25:
				g.drawGlyph(dst, c.X, c.Y, c.Item.Glyph, core.ColorBrightWhite)
			case f.Progress < 0.5:
				g.drawGlyph(dst, c.X, c.Y, '*', c.Item.Color)
			case f.Progress < 0.75:
				g.drawGlyph(dst, c.X, c.Y, '·', core.ColorGray)
			default:
				g.drawGlyph(dst, c.X, c.Y, ' ', core.ColorDefault)
			}
		}

	case PhaseRefill:
		for _, c := range f.Cells {
			switch {
			case f.Progress < 0.33:
				g.drawGlyph(dst, c.X, c.Y, '·', core.ColorGray)
			case f.Progress < 0.66:
				g.drawGlyph(dst, c.X, c.Y, '+', c.Item.Color)
			}
		}
	}
}

func (g *Game) drawGlyph(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetColored(g.originX+x*cellWidth+1, g.originY+y, r, c)
}

func (g *Game) drawMarks(dst *core.Screen, x, y int, m cellMarks) {
	px := g.originX + x*cellWidth
	py := g.originY + y
	dst.SetColored(px, py, m.left, m.color)
	dst.SetColored(px+cellWidth-1, py, m.right, m.color)
}

// renderOverlays draws pause and game over boxes.
func (g *Game) renderOverlays(dst *core.Screen, view engine.View, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			g.overReason,
			fmt.Sprintf("Score: %d", view.Score),
			fmt.Sprintf("Best chain: %d", view.Stats.LongestChain),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move  Enter: Pick  H: Hint  Esc: Cancel  P: Pause  R: Restart  Q: Quit"
}

// cellAt reports the board cell under a screen position.
func (g *Game) cellAt(x, y int) (board.Cell, bool) {
	if x < g.originX || y < g.originY {
		return board.Cell{}, false
	}
	view := g.engine.Snapshot()
	return view.Grid.At((x-g.originX)/cellWidth, y-g.originY)
}
