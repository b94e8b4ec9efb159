package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/registry"
	"github.com/vovakirdan/tilematch/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores for the specified variant, with
per-game counters and totals.

Examples:
  tilematch scores classic
  tilematch scores mini --limit 25
  tilematch scores endless --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	a, err := prepare(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'tilematch list' to see available variants)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Scores for %s cleared.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tilematch play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-7s  %-5s  %s\n", "Rank", "Player", "Score", "Moves", "Matches", "Chain", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-7s  %-5s  %s\n", "----", "------", "-----", "-----", "-------", "-----", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-7d  %-5d  %s\n",
			i+1, player, e.Score, e.Moves, e.Matches, e.BestChain, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.1f  Matches: %d  Longest chain: %d\n",
		stats.HighScore, stats.Games, stats.AvgScore, stats.Matches, stats.BestChain)
	return nil
}
