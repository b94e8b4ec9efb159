package main

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/games/match3"
	"github.com/vovakirdan/tilematch/internal/games/match3/board"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
)

func newSetup(t *testing.T, variant string, seed int64) *match3.Setup {
	t.Helper()
	s := match3.Settings{
		Config:     config.DefaultMatch3Config(),
		Difficulty: config.DifficultyNormal,
		Logger:     log.New(io.Discard),
	}
	setup, err := match3.NewSetup(s, variant, seed, engine.Instant{})
	require.NoError(t, err)
	return setup
}

func TestAutoplayHintsOnly(t *testing.T) {
	setup := newSetup(t, "endless", 42)
	rng := rand.New(rand.NewPCG(1, 2))

	res, err := autoplay(context.Background(), setup, 25, 0, rng, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, res.Swaps, res.Stats.Moves)
	assert.Zero(t, res.Stats.Reverted, "hinted swaps always match")
	assert.Equal(t, res.Swaps, res.Stats.Accepted)
	assert.Positive(t, res.Score)
	assert.GreaterOrEqual(t, res.Stats.Resolutions, res.Stats.Accepted)
}

func TestAutoplayStopsAtMoveLimit(t *testing.T) {
	setup := newSetup(t, "mini", 3)
	rng := rand.New(rand.NewPCG(1, 2))

	res, err := autoplay(context.Background(), setup, 1000, 0, rng, log.New(io.Discard))
	require.NoError(t, err)

	if res.Reason == "out of moves" {
		assert.Equal(t, 20, res.Stats.Accepted)
	} else {
		assert.Equal(t, "no moves left", res.Reason)
		assert.Less(t, res.Stats.Accepted, 20)
	}
}

func TestAutoplayIsDeterministic(t *testing.T) {
	run := func() simResult {
		setup := newSetup(t, "classic", 9)
		rng := rand.New(rand.NewPCG(5, 6))
		res, err := autoplay(context.Background(), setup, 30, 0.3, rng, log.New(io.Discard))
		require.NoError(t, err)
		return res
	}
	assert.Equal(t, run(), run())
}

func TestRandomSwapIsNeighborPair(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for range 200 {
		s := randomSwap(rng, 6, 4)
		assert.True(t, board.IsNeighbor(s.A, s.B), "%v", s)
		assert.True(t, s.A.X >= 0 && s.A.X < 6 && s.B.X < 6)
		assert.True(t, s.A.Y >= 0 && s.A.Y < 4 && s.B.Y < 4)
	}
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("localhost:2222"))
	assert.Equal(t, "nope", portOf("nope"))
}
