package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/game"
	"github.com/vovakirdan/bamboo-breakout/internal/storage"
)

// withFlags sets the global flags for one test and restores them after.
// An empty variant behaves as if --variant was not passed.
func withFlags(t *testing.T, variant, difficulty string, mute bool) {
	t.Helper()
	vf := rootCmd.PersistentFlags().Lookup("variant")
	oldVariant, oldDifficulty, oldMute, oldConfig := flagVariant, flagDifficulty, flagMute, flagConfig
	oldChanged := vf.Changed
	t.Cleanup(func() {
		flagVariant, flagDifficulty, flagMute, flagConfig = oldVariant, oldDifficulty, oldMute, oldConfig
		vf.Changed = oldChanged
	})
	t.Setenv("HOME", t.TempDir())
	flagVariant, flagDifficulty, flagMute = variant, difficulty, mute
	vf.Changed = variant != ""
	if variant == "" {
		flagVariant = vf.DefValue
	}
	flagConfig = ""
}

// writeConfig writes a YAML config into the test's temp dir.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bamboo.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	def := config.DefaultConfig()

	tests := []struct {
		name       string
		variant    string
		difficulty string
		mute       bool
		wantErr    string
		check      func(config.Config) bool
	}{
		{"defaults", game.VariantTiered, "", false, "", func(c config.Config) bool {
			return c.Ball.Speed == def.Ball.Speed && c.Audio.Enabled == def.Audio.Enabled
		}},
		{"hard", game.VariantClassic, "hard", false, "", func(c config.Config) bool {
			return c.Ball.Speed > def.Ball.Speed
		}},
		{"mute", game.VariantTiered, "", true, "", func(c config.Config) bool {
			return !c.Audio.Enabled
		}},
		{"unknown difficulty", game.VariantTiered, "brutal", false, "unknown difficulty", nil},
		{"unknown variant", "arcade", "", false, "unknown variant", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, tt.variant, tt.difficulty, tt.mute)

			cfg, err := loadConfig()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("loadConfig() error = %v, expected %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("loadConfig() = %+v, unexpected values", cfg)
			}
		})
	}
}

func TestLoadConfigVariant(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		config  string
		want    string
		wantErr string
	}{
		{"embedded default", "", "", game.VariantTiered, ""},
		{"config selects classic", "", "result:\n  variant: classic\n", game.VariantClassic, ""},
		{"flag overrides config", game.VariantTiered, "result:\n  variant: classic\n", game.VariantTiered, ""},
		{"unknown config variant", "", "result:\n  variant: neon\n", "", "unknown variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, tt.flag, "", false)
			if tt.config != "" {
				flagConfig = writeConfig(t, tt.config)
			}

			_, err := loadConfig()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("loadConfig() error = %v, expected %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if flagVariant != tt.want {
				t.Errorf("variant = %q, expected %q", flagVariant, tt.want)
			}
		})
	}
}

func TestResetScores(t *testing.T) {
	tests := []struct {
		name        string
		saved       []string
		reset       string
		wantCleared bool
	}{
		{"other variant has history", []string{game.VariantClassic, game.VariantTiered}, game.VariantClassic, false},
		{"last history cleared", []string{game.VariantClassic}, game.VariantClassic, true},
		{"nothing recorded", nil, game.VariantTiered, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemory()
			for _, v := range tt.saved {
				store.SaveScore(v, 12)
			}
			store.Set("HighestScore", 12)

			cleared, err := resetScores(store, tt.reset, "HighestScore")
			if err != nil {
				t.Fatalf("resetScores() error = %v", err)
			}
			if cleared != tt.wantCleared {
				t.Errorf("resetScores() = %v, expected %v", cleared, tt.wantCleared)
			}
			if got, _ := store.TopScores(tt.reset, 10); len(got) != 0 {
				t.Errorf("TopScores(%s) = %v, expected none", tt.reset, got)
			}
			want := 12
			if tt.wantCleared {
				want = 0
			}
			if got, _ := store.Get("HighestScore", 0); got != want {
				t.Errorf("high score = %d, expected %d", got, want)
			}
		})
	}
}

func TestDirectorFactory(t *testing.T) {
	withFlags(t, game.VariantClassic, "", true)
	oldLevel := flagLogLevel
	t.Cleanup(func() { flagLogLevel = oldLevel })
	flagLogLevel = "debug"

	var buf bytes.Buffer
	logger, closeLog, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer closeLog()

	store := storage.NewMemory()
	factory := directorFactory(config.DefaultConfig(), store, nil)

	d, err := factory(logger, 9)
	if err != nil {
		t.Fatalf("factory() error = %v", err)
	}
	if got := d.Session().Variant(); got != game.VariantClassic {
		t.Errorf("Variant() = %q, expected %q", got, game.VariantClassic)
	}
	if got := d.Session().State(); got != game.StateWaitingForTap {
		t.Errorf("State() = %v, expected %v", got, game.StateWaitingForTap)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	oldLevel := flagLogLevel
	t.Cleanup(func() { flagLogLevel = oldLevel })
	flagLogLevel = "loud"

	var buf bytes.Buffer
	if _, _, err := newLogger(&buf); err == nil {
		t.Error("newLogger() error = nil, expected invalid level")
	}
}
