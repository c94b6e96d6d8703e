package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bamboo-breakout/internal/arena"
	"github.com/vovakirdan/bamboo-breakout/internal/audio"
	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/game"
	"github.com/vovakirdan/bamboo-breakout/internal/platform/tui"
	"github.com/vovakirdan/bamboo-breakout/internal/registry"
	"github.com/vovakirdan/bamboo-breakout/internal/storage"
)

// scoreStore is what every command needs from storage.
type scoreStore interface {
	game.HighScoreStore
	game.ScoreRecorder
	tui.ScoreSource
}

// fail prints err the way every command reports errors and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger writes to w, or to the --log-file when w is nil. The returned
// closer releases the file.
func newLogger(w io.Writer) (*log.Logger, func(), error) {
	closer := func() {}
	if w == nil {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bamboo",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig reads the game config and applies the command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if !variantFlagSet() && cfg.Result.Variant != "" {
		flagVariant = cfg.Result.Variant
	}
	if !registry.Exists(flagVariant) {
		return cfg, fmt.Errorf("unknown variant %q; run 'bamboo list' to see variants", flagVariant)
	}
	return cfg, nil
}

// variantFlagSet reports whether --variant was given on the command line,
// which takes precedence over result.variant in the config.
func variantFlagSet() bool {
	f := rootCmd.PersistentFlags().Lookup("variant")
	return f != nil && f.Changed
}

// openStore opens the scores database, falling back to memory so the game
// still runs when the database is unavailable.
func openStore(logger *log.Logger) (scoreStore, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "path", flagDBPath, "error", err)
		return storage.NewMemory(), func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "error", err)
		}
	}
}

// openAudio returns the audio sink for local play and, when it can be
// muted, the same value as a muter. The muter is nil for silent play.
func openAudio(cfg config.AudioConfig, logger *log.Logger) (game.Audio, tui.Muter, func()) {
	if !cfg.Enabled {
		return audio.Nop{}, nil, func() {}
	}
	p := audio.NewPlayer(cfg, logger.With("component", "audio"))
	if err := p.Init(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Nop{}, nil, func() {}
	}
	return p, p, p.Close
}

// directorFactory builds directors that share cfg, store and sound.
func directorFactory(cfg config.Config, store scoreStore, sound game.Audio) tui.DirectorFactory {
	return func(logger *log.Logger, seed int64) (*tui.Director, error) {
		return game.NewDirector(func() (*arena.World, error) {
			return arena.New(cfg), nil
		}, game.Options{
			Config:  cfg,
			Variant: flagVariant,
			Store:   store,
			History: store,
			Audio:   sound,
			Logger:  logger,
			Seed:    seed,
		})
	}
}
