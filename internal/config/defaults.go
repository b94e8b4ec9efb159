package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in match3 configuration.
// It mirrors defaults/match3.yaml and is used if the embedded file is unreadable.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
		},
		Rules: RulesConfig{
			MinMatch:        3,
			AllowRemoteSwap: false,
			SettleOnSetup:   true,
		},
		Items: []ItemConfig{
			{ID: "ruby", Name: "Ruby", Glyph: "R", Color: "red", Value: 10},
			{ID: "emerald", Name: "Emerald", Glyph: "E", Color: "green", Value: 10},
			{ID: "sapphire", Name: "Sapphire", Glyph: "S", Color: "blue", Value: 10},
			{ID: "topaz", Name: "Topaz", Glyph: "T", Color: "yellow", Value: 15},
			{ID: "amethyst", Name: "Amethyst", Glyph: "A", Color: "magenta", Value: 15},
			{ID: "pearl", Name: "Pearl", Glyph: "P", Color: "bright_white", Value: 20},
		},
		Animation: AnimationConfig{
			SwapTicks:   9,
			PopTicks:    12,
			RefillTicks: 9,
		},
		Variants: []VariantConfig{
			{ID: "classic", Title: "Match3 Classic", Width: 8, Height: 8, Items: 6, MoveLimit: 30},
			{ID: "endless", Title: "Match3 Endless", Width: 8, Height: 8, Items: 6, MoveLimit: 0},
			{ID: "mini", Title: "Match3 Mini", Width: 6, Height: 6, Items: 4, MoveLimit: 20},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match3":
		return defaultMatch3YAML
	default:
		return nil
	}
}
