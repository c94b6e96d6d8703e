// bamboo is a two-paddle breakout game for the terminal, a desktop window
// or SSH.
//
// Usage:
//
//	bamboo list              - List game variants
//	bamboo play              - Play in the terminal
//	bamboo window            - Play in a desktop window (mouse and multi-touch)
//	bamboo serve             - Start SSH server for remote play
//	bamboo scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bamboo/scores.db)
//	--config <path>       - Load a YAML or TOML game config
//	--variant <id>        - Game variant (default: tiered)
//	--difficulty <preset> - easy, normal or hard
//	--mute                - Disable sound and music
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bamboo-breakout/internal/game"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagLogFile    string
	flagVariant    string
	flagDifficulty string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bamboo",
	Short: "Bamboo Breakout - keep the ball off the side walls",
	Long: `Bamboo Breakout is a two-paddle breakout game. Drag the left and right
paddles to keep the ball bouncing; every paddle hit scores a point, and the
game ends when a ball reaches a side wall. Extra balls join at 2, 10 and 20
points.

Available commands:
  list     - Show game variants
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View or reset high scores

Examples:
  bamboo play
  bamboo play --variant classic --difficulty hard
  bamboo window --config ./bamboo.toml
  bamboo serve --ssh :2222
  bamboo scores --browse`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.bamboo/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.bamboo/bamboo.log", "Log file for terminal play")
	pf.StringVar(&flagVariant, "variant", game.VariantTiered, "Game variant (see 'bamboo list'; overrides result.variant)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound and music")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
