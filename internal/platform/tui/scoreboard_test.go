package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bamboo-breakout/internal/game"
	"github.com/vovakirdan/bamboo-breakout/internal/storage"
)

type failingSource struct{}

func (failingSource) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("disk on fire")
}

func TestScoreboardRows(t *testing.T) {
	mem := storage.NewMemory()
	for _, s := range []int{12, 40, 7} {
		if err := mem.SaveScore(game.VariantTiered, s); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}
	if err := mem.SaveScore(game.VariantClassic, 99); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	m := NewScoreboardModel(mem, game.VariantTiered, 80, 24)
	if got := m.Variant(); got != game.VariantTiered {
		t.Fatalf("Variant() = %q, expected %q", got, game.VariantTiered)
	}

	rows := m.Rows()
	if len(rows) != 3 {
		t.Fatalf("len(Rows()) = %d, expected 3", len(rows))
	}
	for i, want := range []string{"40", "12", "7"} {
		if rows[i][1] != want {
			t.Errorf("row %d score = %q, expected %q", i, rows[i][1], want)
		}
	}
	if rows[0][0] != "#1" {
		t.Errorf("row 0 rank = %q, expected #1", rows[0][0])
	}
}

func TestScoreboardSwitchVariant(t *testing.T) {
	mem := storage.NewMemory()
	if err := mem.SaveScore(game.VariantClassic, 99); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	m := NewScoreboardModel(mem, game.VariantTiered, 80, 24)
	if len(m.Rows()) != 0 {
		t.Fatalf("len(Rows()) = %d, expected 0", len(m.Rows()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.Variant(); got != game.VariantClassic {
		t.Fatalf("Variant() after tab = %q, expected %q", got, game.VariantClassic)
	}
	if len(m.Rows()) != 1 || m.Rows()[0][1] != "99" {
		t.Errorf("Rows() = %v, expected one row scoring 99", m.Rows())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if got := m.Variant(); got != game.VariantTiered {
		t.Errorf("Variant() after shift+tab = %q, expected %q", got, game.VariantTiered)
	}
}

func TestScoreboardView(t *testing.T) {
	tests := []struct {
		name   string
		source ScoreSource
		want   string
	}{
		{"empty", storage.NewMemory(), "No scores recorded yet."},
		{"error", failingSource{}, "disk on fire"},
		{"nil source", nil, "No scores recorded yet."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.source, game.VariantTiered, 80, 24)
			if view := m.View(); !strings.Contains(view, tt.want) {
				t.Errorf("View() does not contain %q", tt.want)
			}
		})
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(storage.NewMemory(), game.VariantTiered, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if got := next.(ScoreboardModel).View(); got != "" {
		t.Errorf("View() after quit = %q, expected empty", got)
	}
}
