// Package config provides YAML/TOML game configuration loading and
// difficulty presets for Bamboo Breakout.
package config

// Config contains all tunables of the arena, the scoring rules and the hosts.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena" toml:"arena"`
	Paddle  PaddleConfig  `yaml:"paddle" toml:"paddle"`
	Ball    BallConfig    `yaml:"ball" toml:"ball"`
	Scoring ScoringConfig `yaml:"scoring" toml:"scoring"`
	Result  ResultConfig  `yaml:"result" toml:"result"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Audio   AudioConfig   `yaml:"audio" toml:"audio"`
}

// ArenaConfig defines the arena frame in world units.
type ArenaConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	WallThickness float64 `yaml:"wall_thickness" toml:"wall_thickness"`
	ClickerWidth  float64 `yaml:"clicker_width" toml:"clicker_width"` // Width of the leftClicker/rightClicker strips
}

// PaddleConfig defines both paddles.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Offset float64 `yaml:"offset" toml:"offset"` // Distance of the paddle center from its side wall
}

// BallConfig defines the primary ball.
type BallConfig struct {
	Radius      float64 `yaml:"radius" toml:"radius"`
	Speed       float64 `yaml:"speed" toml:"speed"` // Launch speed in units per second
	Restitution float64 `yaml:"restitution" toml:"restitution"`
	Damping     float64 `yaml:"damping" toml:"damping"`
}

// ScoringConfig defines paddle-hit scoring and extra ball spawns.
type ScoringConfig struct {
	SpawnThresholds     []int `yaml:"spawn_thresholds" toml:"spawn_thresholds"` // Exact scores that spawn a ball
	InvertSpawnVelocity bool  `yaml:"invert_spawn_velocity" toml:"invert_spawn_velocity"`
}

// ResultConfig selects the texture shown on game over.
type ResultConfig struct {
	Variant  string       `yaml:"variant" toml:"variant"` // Used when --variant is not given
	Tiers    []TierConfig `yaml:"tiers" toml:"tiers"`     // Ascending by Below
	TopAsset string       `yaml:"top_asset" toml:"top_asset"`
	WonAsset string       `yaml:"won_asset" toml:"won_asset"`
}

// TierConfig maps scores strictly below Below to Asset.
type TierConfig struct {
	Below int    `yaml:"below" toml:"below"`
	Asset string `yaml:"asset" toml:"asset"`
}

// StorageConfig defines persisted keys.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key" toml:"high_score_key"`
}

// AudioConfig defines sound cues and background music.
type AudioConfig struct {
	Enabled       bool     `yaml:"enabled" toml:"enabled"`
	Music         bool     `yaml:"music" toml:"music"`
	AssetsDir     string   `yaml:"assets_dir" toml:"assets_dir"`
	Volume        float64  `yaml:"volume" toml:"volume"` // 0.0 - 1.0
	GameOverSound string   `yaml:"game_over_sound" toml:"game_over_sound"`
	Tracks        []string `yaml:"tracks" toml:"tracks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset adjusts ball speed and paddle height for a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed *= 0.75
		cfg.Paddle.Height *= 1.35
	case DifficultyHard:
		cfg.Ball.Speed *= 1.3
		cfg.Paddle.Height *= 0.75
	}
}
