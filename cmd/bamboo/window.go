package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Bamboo Breakout in a window. Every finger on a touch screen can
hold its own paddle, so two players can share one device; the left mouse
button works as a single pointer.

Controls:
  Tap/Click    - Start, or restart after game over
  Drag         - Move the paddle on that side
  W/S          - Move left paddle
  Up/Down      - Move right paddle
  M            - Mute
  Esc          - Quit

Examples:
  bamboo window
  bamboo window --width 1280 --height 960`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 1024, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 768, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, _, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, closeStore := openStore(logger)
	defer closeStore()
	sound, muter, closeAudio := openAudio(cfg.Audio, logger)
	defer closeAudio()

	d, err := directorFactory(cfg, store, sound)(logger, flagSeed)
	if err != nil {
		fail("cannot start game: %v", err)
	}

	rc := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("opening window", "variant", flagVariant, "session", d.Session().ID())
	if err := window.Run(d, rc, muter, logger); err != nil {
		closeAudio()
		closeStore()
		fail("running game: %v", err)
	}
}
