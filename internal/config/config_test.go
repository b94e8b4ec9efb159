package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Match3Config
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("match3"), &cfg))
	assert.Equal(t, DefaultMatch3Config(), cfg)
	assert.NoError(t, cfg.Validate())

	assert.Nil(t, GetDefaultYAML("flappy"))
}

func TestLoadMatch3CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match3.yaml")
	src := `
board: {width: 5, height: 4}
rules: {min_match: 3}
items:
  - {id: x, glyph: "X", color: red, value: 1}
  - {id: y, glyph: "Y", color: cyan, value: 2}
  - {id: z, glyph: "Z", value: 3}
variants:
  - {id: tiny, move_limit: 5}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := LoadMatch3(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Width)
	require.Len(t, cfg.Items, 3)

	v, ok := cfg.Variant("tiny")
	require.True(t, ok)
	v = cfg.Resolve(v)
	assert.Equal(t, VariantConfig{ID: "tiny", Title: "tiny", Width: 5, Height: 4, Items: 3, MoveLimit: 5}, v)

	_, ok = cfg.Variant("missing")
	assert.False(t, ok)
}

func TestLoadMatch3MissingFile(t *testing.T) {
	_, err := LoadMatch3(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMatch3RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: {width: 0, height: 3}\n"), 0o644))

	_, err := LoadMatch3(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
	}{
		{"zero width", func(c *Match3Config) { c.Board.Width = 0 }},
		{"min match too small", func(c *Match3Config) { c.Rules.MinMatch = 1 }},
		{"no items", func(c *Match3Config) { c.Items = nil }},
		{"duplicate item", func(c *Match3Config) { c.Items[1].ID = c.Items[0].ID }},
		{"empty item id", func(c *Match3Config) { c.Items[2].ID = "" }},
		{"long glyph", func(c *Match3Config) { c.Items[0].Glyph = "RR" }},
		{"shared glyph", func(c *Match3Config) { c.Items[1].Glyph = c.Items[0].Glyph }},
		{"unknown color", func(c *Match3Config) { c.Items[0].Color = "plaid" }},
		{"negative value", func(c *Match3Config) { c.Items[0].Value = -1 }},
		{"negative ticks", func(c *Match3Config) { c.Animation.PopTicks = -2 }},
		{"no variants", func(c *Match3Config) { c.Variants = nil }},
		{"duplicate variant", func(c *Match3Config) { c.Variants[1].ID = c.Variants[0].ID }},
		{"too many variant items", func(c *Match3Config) { c.Variants[0].Items = 99 }},
		{"negative move limit", func(c *Match3Config) { c.Variants[0].MoveLimit = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestVariantItems(t *testing.T) {
	cfg := DefaultMatch3Config()
	mini, ok := cfg.Variant("mini")
	require.True(t, ok)

	items := cfg.VariantItems(mini)
	require.Len(t, items, 4)
	assert.Equal(t, "ruby", items[0].ID)
	assert.Equal(t, "topaz", items[3].ID)
}

func TestApplyMatch3Preset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		in     VariantConfig
		want   VariantConfig
	}{
		{DifficultyNormal, VariantConfig{Items: 5, MoveLimit: 30}, VariantConfig{Items: 5, MoveLimit: 30}},
		{DifficultyEasy, VariantConfig{Items: 5, MoveLimit: 30}, VariantConfig{Items: 4, MoveLimit: 45}},
		{DifficultyEasy, VariantConfig{Items: 3, MoveLimit: 0}, VariantConfig{Items: 3, MoveLimit: 0}},
		{DifficultyHard, VariantConfig{Items: 5, MoveLimit: 30}, VariantConfig{Items: 6, MoveLimit: 20}},
		{DifficultyHard, VariantConfig{Items: 6, MoveLimit: 1}, VariantConfig{Items: 6, MoveLimit: 1}},
	}

	for _, tc := range tests {
		got := tc.in
		ApplyMatch3Preset(&got, tc.preset, 6)
		if got != tc.want {
			t.Errorf("ApplyMatch3Preset(%+v, %s) = %+v, want %+v", tc.in, tc.preset, got, tc.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyEasy, ParseDifficulty("easy"))
	assert.Equal(t, DifficultyHard, ParseDifficulty("hard"))
	assert.Equal(t, DifficultyNormal, ParseDifficulty(""))
	assert.Equal(t, DifficultyNormal, ParseDifficulty("fixed"))
}
