package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tilematch/internal/audio"
	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/match3"
	"github.com/vovakirdan/tilematch/internal/platform/tui"
	"github.com/vovakirdan/tilematch/internal/storage"
)

// app is what every command shares: logger, game settings and sound.
type app struct {
	logger   *log.Logger
	settings match3.Settings
	sound    *audio.SoundManager
	logFile  io.Closer
}

// prepare builds the logger, loads the config and configures the game
// package. Interactive commands log to a file so the alt screen stays clean.
func prepare(interactive bool) (*app, error) {
	a := &app{}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	path := flagLogFile
	if path == "" && interactive {
		path = filepath.Join("~", ".tilematch", "tilematch.log")
	}
	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, err
		}
		out = f
		a.logFile = f
	}
	a.logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "tilematch",
	})

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	difficulty := config.ParseDifficulty(flagDifficulty)
	if string(difficulty) != strings.ToLower(flagDifficulty) {
		a.logger.Warn("unknown difficulty, using normal", "difficulty", flagDifficulty)
	}

	if flagMono || os.Getenv("NO_COLOR") != "" {
		tui.SetTheme(tui.MonochromeTheme())
	}

	a.settings = match3.Settings{
		Config:     cfg,
		Difficulty: difficulty,
		Logger:     a.logger,
	}

	if flagSound {
		sm := audio.NewSoundManager(0.5)
		if err := sm.Initialize(); err != nil {
			a.logger.Warn("sound disabled", "error", err)
		} else {
			a.sound = sm
			a.settings.Sound = sm.Play
		}
	}

	match3.Configure(a.settings)
	return a, nil
}

// Close releases sound and the log file.
func (a *app) Close() {
	if a.sound != nil {
		a.sound.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// openStore opens the scores database. Play goes on without it.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		a.logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig returns the game config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
