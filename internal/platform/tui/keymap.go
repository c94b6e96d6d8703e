package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bamboo-breakout/internal/game"
)

// KeyMap holds the keyboard bindings of the terminal host.
// The mouse drives the paddles too; keys are the fallback.
type KeyMap struct {
	Tap        key.Binding
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tap: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "tap"),
		),
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w/s", "left paddle"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "right paddle"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.LeftUp, k.RightUp, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.LeftUp, k.RightUp},
		{k.Mute, k.Screenshot, k.Help, k.Quit},
	}
}

// Nudge returns the paddle a key moves and the direction, +1 up or -1 down.
func (k KeyMap) Nudge(msg tea.KeyMsg) (game.Paddle, float64, bool) {
	switch {
	case key.Matches(msg, k.LeftUp):
		return game.PaddleLeft, 1, true
	case key.Matches(msg, k.LeftDown):
		return game.PaddleLeft, -1, true
	case key.Matches(msg, k.RightUp):
		return game.PaddleRight, 1, true
	case key.Matches(msg, k.RightDown):
		return game.PaddleRight, -1, true
	}
	return game.PaddleNone, 0, false
}
