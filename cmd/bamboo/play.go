package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Bamboo Breakout in the terminal. The mouse drags the paddles:
press on the left or right quarter of the arena and drag up or down.

Controls:
  Space/Enter  - Tap (start, or restart after game over)
  Mouse drag   - Move the paddle on that side
  W/S          - Move left paddle
  Up/Down      - Move right paddle
  M            - Mute
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Logs go to --log-file so they do not disturb the game screen.

Examples:
  bamboo play
  bamboo play --variant classic
  bamboo play --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, closeStore := openStore(logger)
	defer closeStore()
	sound, muter, closeAudio := openAudio(cfg.Audio, logger)
	defer closeAudio()

	d, err := directorFactory(cfg, store, sound)(logger, rc.Seed)
	if err != nil {
		fail("cannot start game: %v", err)
	}

	logger.Info("starting terminal game", "variant", flagVariant, "session", d.Session().ID())
	if err := tui.Run(d, rc, muter, logger); err != nil {
		closeAudio()
		closeStore()
		fail("running game: %v", err)
	}
}
