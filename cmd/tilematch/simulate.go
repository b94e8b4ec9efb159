package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/games/match3"
	"github.com/vovakirdan/tilematch/internal/games/match3/board"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
)

var (
	flagSimMoves   int
	flagSimExplore float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Let the autoplayer play a variant headless",
	Long: `Play a variant without a terminal UI. Each move takes the hinted
swap, or with probability --explore a random neighbor swap, which is
usually reverted. Every move is logged; the final board and stats are
printed at the end.

The run stops after --moves swaps, when the variant's move budget is
spent or when no swap can make a match.

Examples:
  tilematch simulate
  tilematch simulate endless --moves 1000 --seed 7
  tilematch simulate mini --explore 0.5 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 100, "Maximum number of swaps")
	simulateCmd.Flags().Float64Var(&flagSimExplore, "explore", 0.1, "Chance of a random swap instead of the hint (0..1)")
}

// simResult summarizes an autoplayer run.
type simResult struct {
	Swaps  int
	Reason string
	Score  int
	Stats  engine.Stats
	Board  string
}

func runSimulate(cmd *cobra.Command, args []string) error {
	variantID := "classic"
	if len(args) > 0 {
		variantID = args[0]
	}

	a, err := prepare(false)
	if err != nil {
		return err
	}
	defer a.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	setup, err := match3.NewSetup(a.settings, variantID, seed, engine.Instant{Sound: a.settings.Sound})
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0x5eed))
	res, err := autoplay(cmd.Context(), setup, flagSimMoves, flagSimExplore, rng, a.logger)
	if err != nil {
		return err
	}

	fmt.Printf("Variant: %s  Seed: %d\n", setup.Variant.ID, seed)
	fmt.Println()
	fmt.Println(res.Board)
	fmt.Println()
	fmt.Printf("Stopped: %s after %d swaps\n", res.Reason, res.Swaps)
	fmt.Printf("Score: %d\n", res.Score)
	fmt.Printf("Accepted: %d  Reverted: %d  Matches: %d  Longest chain: %d\n",
		res.Stats.Accepted, res.Stats.Reverted, res.Stats.Resolutions, res.Stats.LongestChain)
	return nil
}

// autoplay makes up to maxMoves swaps on the setup's engine.
func autoplay(ctx context.Context, setup *match3.Setup, maxMoves int, explore float64, rng *rand.Rand, logger *log.Logger) (simResult, error) {
	eng := setup.Engine
	v := setup.Variant
	res := simResult{Reason: "move limit of the run"}

	for res.Swaps < maxMoves {
		if v.MoveLimit > 0 && eng.Stats().Accepted >= v.MoveLimit {
			res.Reason = "out of moves"
			break
		}

		swap, ok := eng.Hint()
		if !ok {
			res.Reason = "no moves left"
			break
		}
		if rng.Float64() < explore {
			swap = randomSwap(rng, v.Width, v.Height)
		}

		out, err := playSwap(ctx, eng, swap)
		if err != nil {
			return res, err
		}
		res.Swaps++

		logger.Info("swap",
			"n", res.Swaps,
			"ax", swap.A.X, "ay", swap.A.Y, "bx", swap.B.X, "by", swap.B.Y,
			"outcome", out.Outcome, "gained", out.Gained, "chain", out.Chain(),
			"score", eng.Score())
	}

	view := eng.Snapshot()
	res.Score = view.Score
	res.Stats = view.Stats
	res.Board = view.Grid.String()
	return res, nil
}

// playSwap picks both cells of a swap.
func playSwap(ctx context.Context, eng *engine.Engine, s board.Swap) (engine.Result, error) {
	first, err := eng.Select(ctx, s.A.X, s.A.Y)
	if err != nil {
		return first, err
	}
	if first.Outcome != engine.Picked {
		return first, fmt.Errorf("simulate: first pick at %d,%d was %s", s.A.X, s.A.Y, first.Outcome)
	}
	return eng.Select(ctx, s.B.X, s.B.Y)
}

// randomSwap returns a random pair of horizontal or vertical neighbors.
func randomSwap(rng *rand.Rand, w, h int) board.Swap {
	if w < 2 || (h >= 2 && rng.IntN(2) == 0) {
		x, y := rng.IntN(w), rng.IntN(h-1)
		return board.Swap{A: board.Cell{X: x, Y: y}, B: board.Cell{X: x, Y: y + 1}}
	}
	x, y := rng.IntN(w-1), rng.IntN(h)
	return board.Swap{A: board.Cell{X: x, Y: y}, B: board.Cell{X: x + 1, Y: y}}
}
