package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilematch/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadMatch3 loads match3 configuration.
// Search order: customPath -> ~/.tilematch/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
func LoadMatch3(customPath string) (Match3Config, error) {
	cfg, err := loadMatch3(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadMatch3(customPath string) (Match3Config, error) {
	var cfg Match3Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match3.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/match3.yaml"); err == nil {
		cfg = Match3Config{}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = Match3Config{}
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilematch", "configs", filename)
}

// Validate checks that the configuration can build a playable board.
func (c Match3Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Rules.MinMatch < 2 {
		return fmt.Errorf("%w: min_match %d is below 2", ErrInvalidConfig, c.Rules.MinMatch)
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidConfig)
	}

	ids := make(map[string]bool, len(c.Items))
	glyphs := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		switch {
		case it.ID == "":
			return fmt.Errorf("%w: item %d has no id", ErrInvalidConfig, i)
		case ids[it.ID]:
			return fmt.Errorf("%w: duplicate item id %q", ErrInvalidConfig, it.ID)
		case utf8.RuneCountInString(it.Glyph) != 1:
			return fmt.Errorf("%w: item %q glyph must be one character", ErrInvalidConfig, it.ID)
		case glyphs[it.Glyph]:
			return fmt.Errorf("%w: item %q reuses glyph %q", ErrInvalidConfig, it.ID, it.Glyph)
		case it.Value < 0:
			return fmt.Errorf("%w: item %q has negative value", ErrInvalidConfig, it.ID)
		}
		if _, ok := core.ParseColor(it.Color); !ok && it.Color != "" {
			return fmt.Errorf("%w: item %q has unknown color %q", ErrInvalidConfig, it.ID, it.Color)
		}
		ids[it.ID] = true
		glyphs[it.Glyph] = true
	}

	if c.Animation.SwapTicks < 0 || c.Animation.PopTicks < 0 || c.Animation.RefillTicks < 0 {
		return fmt.Errorf("%w: negative animation ticks", ErrInvalidConfig)
	}

	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: no variants", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if v.ID == "" {
			return fmt.Errorf("%w: variant without id", ErrInvalidConfig)
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalidConfig, v.ID)
		}
		seen[v.ID] = true
		if v.Width < 0 || v.Height < 0 || v.Items < 0 || v.MoveLimit < 0 {
			return fmt.Errorf("%w: variant %q has negative settings", ErrInvalidConfig, v.ID)
		}
		if v.Items > len(c.Items) {
			return fmt.Errorf("%w: variant %q uses %d items, only %d defined", ErrInvalidConfig, v.ID, v.Items, len(c.Items))
		}
	}
	return nil
}
