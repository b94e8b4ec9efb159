package match3

import (
	"io"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/match3/board"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
	"github.com/vovakirdan/tilematch/internal/registry"
)

// Settings are shared by every game the package creates.
type Settings struct {
	Config     config.Match3Config
	Difficulty config.DifficultyPreset
	Logger     *log.Logger
	Sound      func(engine.SoundCue) // nil for silence
}

var (
	settingsMu sync.RWMutex
	settings   = Settings{
		Config:     config.DefaultMatch3Config(),
		Difficulty: config.DifficultyNormal,
		Logger:     log.New(io.Discard),
	}
)

func init() {
	for _, v := range settings.Config.Variants {
		register(v.ID)
	}
}

func register(id string) {
	registry.Register(id, func() registry.Game {
		return New(id)
	})
}

// Configure replaces the shared settings and registers any variant the
// new config adds. Games already running keep their old settings until
// their next Reset.
func Configure(s Settings) {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Difficulty == "" {
		s.Difficulty = config.DifficultyNormal
	}

	settingsMu.Lock()
	settings = s
	settingsMu.Unlock()

	for _, v := range s.Config.Variants {
		if !registry.Exists(v.ID) {
			register(v.ID)
		}
	}
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Items converts configured items into board item types.
func Items(cfgs []config.ItemConfig) []board.ItemType {
	items := make([]board.ItemType, 0, len(cfgs))
	for _, c := range cfgs {
		glyph, _ := utf8.DecodeRuneInString(c.Glyph)
		color, _ := core.ParseColor(c.Color)
		name := c.Name
		if name == "" {
			name = c.ID
		}
		items = append(items, board.ItemType{
			ID:    c.ID,
			Name:  name,
			Glyph: glyph,
			Color: color,
			Value: c.Value,
		})
	}
	return items
}
