package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const configName = "bamboo"

// Load loads the game configuration.
// Search order: customPath -> ~/.bamboo/configs/bamboo.{yaml,toml} ->
// ./configs/bamboo.{yaml,toml} -> embedded default -> DefaultConfig.
// Files are decoded on top of DefaultConfig so partial files are valid.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultConfig(), err
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, ext := range []string{".yaml", ".toml"} {
			path := filepath.Join(dir, configName+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := loadFile(path); err == nil {
				return cfg, nil
			}
		}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes one config file, choosing the codec by extension.
func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// searchDirs returns the user and local config directories in lookup order.
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".bamboo", "configs"))
	}
	return append(dirs, "configs")
}

// ErrInvalid is returned by Validate for an unusable configuration.
var ErrInvalid = errors.New("invalid configuration")

// Validate reports values the arena and scoring rules cannot work with.
func (c Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: arena size %vx%v", ErrInvalid, c.Arena.Width, c.Arena.Height)
	}
	if c.Paddle.Height <= 0 || c.Paddle.Height >= c.Arena.Height {
		return fmt.Errorf("%w: paddle height %v", ErrInvalid, c.Paddle.Height)
	}
	if c.Ball.Radius <= 0 || c.Ball.Speed <= 0 {
		return fmt.Errorf("%w: ball radius %v speed %v", ErrInvalid, c.Ball.Radius, c.Ball.Speed)
	}
	for _, t := range c.Scoring.SpawnThresholds {
		if t <= 0 {
			return fmt.Errorf("%w: spawn threshold %d", ErrInvalid, t)
		}
	}
	for i := 1; i < len(c.Result.Tiers); i++ {
		if c.Result.Tiers[i].Below <= c.Result.Tiers[i-1].Below {
			return fmt.Errorf("%w: result tiers must ascend", ErrInvalid)
		}
	}
	if c.Storage.HighScoreKey == "" {
		return fmt.Errorf("%w: empty high score key", ErrInvalid)
	}
	return nil
}
