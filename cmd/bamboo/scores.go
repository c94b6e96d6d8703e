package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bamboo-breakout/internal/platform/tui"
	"github.com/vovakirdan/bamboo-breakout/internal/registry"
	"github.com/vovakirdan/bamboo-breakout/internal/storage"
)

var (
	flagReset  bool
	flagBrowse bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores of the selected variant and the stored high score.

With --browse, opens an interactive scoreboard with one tab per variant.
With --reset, deletes the variant's score history. The stored high score is
shared by every variant, so it is deleted only once no variant has history left.

Examples:
  bamboo scores
  bamboo scores --variant classic
  bamboo scores --browse
  bamboo scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the variant's scores (and the shared high score once no history remains)")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores interactively")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagReset {
		cleared, err := resetScores(store, flagVariant, cfg.Storage.HighScoreKey)
		if err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Printf("Scores for %s cleared.\n", flagVariant)
		if !cleared {
			fmt.Println("The shared high score is kept while other variants have scores.")
		}
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagVariant, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	scores, err := store.TopScores(flagVariant, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	title := flagVariant
	if v, err := registry.Create(flagVariant); err == nil {
		title = v.Title()
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bamboo play --variant %s' to set the first high score!\n", flagVariant)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(flagVariant); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if high, err := store.Get(cfg.Storage.HighScoreKey, 0); err == nil {
		fmt.Printf("Stored high score: %d\n", high)
	}
}

// scoreResetter is the part of a store that --reset touches.
type scoreResetter interface {
	tui.ScoreSource
	ClearScores(variant string) error
	Delete(key string) error
}

// resetScores clears the history of variant. The high score key is shared
// by all variants, so it is deleted only when no variant has history left;
// the result reports whether it was.
func resetScores(store scoreResetter, variant, key string) (bool, error) {
	if err := store.ClearScores(variant); err != nil {
		return false, fmt.Errorf("clearing scores: %w", err)
	}
	for _, v := range registry.List() {
		entries, err := store.TopScores(v.ID, 1)
		if err != nil {
			return false, fmt.Errorf("checking %s scores: %w", v.ID, err)
		}
		if len(entries) > 0 {
			return false, nil
		}
	}
	if err := store.Delete(key); err != nil {
		return false, fmt.Errorf("clearing high score: %w", err)
	}
	return true, nil
}
