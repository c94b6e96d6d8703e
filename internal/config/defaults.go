package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/bamboo.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/bamboo.yaml and is used when the embedded file fails to parse.
func DefaultConfig() Config {
	tracks := make([]string, 10)
	for i := range tracks {
		tracks[i] = fmt.Sprintf("bamboo-%02d", i+1)
	}

	return Config{
		Arena: ArenaConfig{
			Width:         1024,
			Height:        768,
			WallThickness: 1,
			ClickerWidth:  256,
		},
		Paddle: PaddleConfig{
			Width:  24,
			Height: 150,
			Offset: 48,
		},
		Ball: BallConfig{
			Radius:      14,
			Speed:       420,
			Restitution: 1,
			Damping:     0,
		},
		Scoring: ScoringConfig{
			SpawnThresholds:     []int{2, 10, 20},
			InvertSpawnVelocity: false,
		},
		Result: ResultConfig{
			Variant: "tiered",
			Tiers: []TierConfig{
				{Below: 15, Asset: "GameOver"},
				{Below: 25, Asset: "GameOverBronze"},
				{Below: 40, Asset: "GameOverSilver"},
			},
			TopAsset: "GameOverGold",
			WonAsset: "YouWon",
		},
		Storage: StorageConfig{
			HighScoreKey: "HighestScore",
		},
		Audio: AudioConfig{
			Enabled:       true,
			Music:         true,
			AssetsDir:     "~/.bamboo/sounds",
			Volume:        0.8,
			GameOverSound: "game-over",
			Tracks:        tracks,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
