// Package config provides YAML-based configuration for the match3 board:
// items, rules, animation timing and playable variants.
package config

// Match3Config contains all configuration for the match3 game.
type Match3Config struct {
	Board     BoardConfig     `yaml:"board"`
	Rules     RulesConfig     `yaml:"rules"`
	Items     []ItemConfig    `yaml:"items"`
	Animation AnimationConfig `yaml:"animation"`
	Variants  []VariantConfig `yaml:"variants"`
}

// BoardConfig is the board size used by variants that do not set their own.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines how selections and matches behave.
type RulesConfig struct {
	MinMatch int `yaml:"min_match"` // Smallest region that counts as a match

	// AllowRemoteSwap lets the second pick be any cell, not only a
	// neighbor of the first. Off by default.
	AllowRemoteSwap bool `yaml:"allow_remote_swap"`

	SettleOnSetup bool `yaml:"settle_on_setup"` // Redraw matches present on a new board
}

// ItemConfig describes one item type.
type ItemConfig struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"` // Single character drawn on the board
	Color string `yaml:"color"` // core color name, e.g. "red", "bright_cyan"
	Value int    `yaml:"value"` // Points per matched cell
}

// AnimationConfig holds animation lengths in simulation ticks.
type AnimationConfig struct {
	SwapTicks   int `yaml:"swap_ticks"`
	PopTicks    int `yaml:"pop_ticks"`
	RefillTicks int `yaml:"refill_ticks"`
}

// VariantConfig is one playable mode.
type VariantConfig struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`      // 0 uses board.width
	Height    int    `yaml:"height"`     // 0 uses board.height
	Items     int    `yaml:"items"`      // Number of items used, from the start of the list; 0 uses all
	MoveLimit int    `yaml:"move_limit"` // 0 means unlimited
}

// Variant returns the variant with the given ID.
func (c Match3Config) Variant(id string) (VariantConfig, bool) {
	for _, v := range c.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return VariantConfig{}, false
}

// Resolve fills a variant's zero fields from the board and item settings.
func (c Match3Config) Resolve(v VariantConfig) VariantConfig {
	if v.Width <= 0 {
		v.Width = c.Board.Width
	}
	if v.Height <= 0 {
		v.Height = c.Board.Height
	}
	if v.Items <= 0 || v.Items > len(c.Items) {
		v.Items = len(c.Items)
	}
	if v.Title == "" {
		v.Title = v.ID
	}
	return v
}

// VariantItems returns the items a variant plays with.
func (c Match3Config) VariantItems(v VariantConfig) []ItemConfig {
	v = c.Resolve(v)
	return c.Items[:v.Items]
}
