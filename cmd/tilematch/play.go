package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/platform/tui"
	"github.com/vovakirdan/tilematch/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Arrows/WASD/hjkl - Move cursor
  Enter/Space      - Pick cell (pick a neighbor to swap)
  Mouse click      - Pick clicked cell
  ?/H              - Show a hint
  Esc/X            - Drop the first pick
  P                - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Half again as many moves, one item kind fewer
  normal - Variant as configured
  hard   - A third fewer moves, one more item kind if available

Examples:
  tilematch play classic
  tilematch play mini --difficulty easy
  tilematch play endless --seed 42
  tilematch play classic --config ./my-match3.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	a, err := prepare(true)
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

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), tui.WithLogger(a.logger)); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
