package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every variant in the active config, built-in or from --config.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := prepare(false)
	if err != nil {
		return err
	}
	defer a.Close()

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Board")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		board := "-"
		if v, ok := a.settings.Config.Variant(g.ID); ok {
			v = a.settings.Config.Resolve(v)
			moves := "unlimited"
			if v.MoveLimit > 0 {
				moves = fmt.Sprintf("%d moves", v.MoveLimit)
			}
			board = fmt.Sprintf("%dx%d, %d items, %s", v.Width, v.Height, v.Items, moves)
		}
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, g.ID, g.Title, board)
	}

	fmt.Println()
	fmt.Println("Run 'tilematch play <id>' to play a variant.")
	return nil
}
