package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and the
// simulate command.
type Snapshot struct {
	Tick         uint64
	Variant      string
	Score        int
	Moves        int // Accepted swaps
	MovesLeft    int // -1 when unlimited
	Matches      int
	LongestChain int
	State        GameStateType
	Board        string // One line per row of glyphs
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	view := g.engine.Snapshot()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.busy():
		state = StateResolving
	}

	return Snapshot{
		Tick:         g.tick,
		Variant:      g.variant.ID,
		Score:        view.Score,
		Moves:        view.Stats.Accepted,
		MovesLeft:    g.MovesLeft(),
		Matches:      view.Stats.Resolutions,
		LongestChain: view.Stats.LongestChain,
		State:        state,
		Board:        view.Grid.String(),
	}
}
