package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bamboo-breakout/internal/arena"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/game"
)

// MousePointer is the pointer ID the terminal host uses for the mouse.
const MousePointer core.PointerID = 0

// Director is the director type the terminal host drives.
type Director = game.Director[*arena.World]

// Muter is implemented by audio backends that can be silenced.
type Muter interface {
	ToggleMute() bool
}

// helpRows is the height of the expanded help footer.
const helpRows = 3

var hudStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model running one Bamboo Breakout director.
type Model struct {
	director *Director
	screen   *core.Screen
	view     Viewport
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	muter    Muter
	logger   *log.Logger

	nudge    float64 // Arena units per key press
	muted    bool
	quitting bool
	err      error
}

// NewModel creates a Bubble Tea model for d sized by cfg.
// muter may be nil.
func NewModel(d *Director, cfg core.RuntimeConfig, muter Muter, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}
	m := Model{
		director: d,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		muter:    muter,
		logger:   logger,
	}
	m.layout()
	return m
}

// layout fits the arena and its border into the rows the help footer leaves.
func (m *Model) layout() {
	reserve := 1
	if m.help.ShowAll {
		reserve = helpRows
	}
	height := max(m.config.ScreenH-reserve, 3)
	m.screen.Resize(max(m.config.ScreenW, 3), height)

	frame := m.director.Host().Frame()
	m.view = NewViewport(frame, 1, 1, m.screen.Width()-2, height-2)
	m.nudge = frame.H / float64(m.view.Rows)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if m.muter != nil {
			m.muted = m.muter.ToggleMute()
		}
		return m, nil
	case key.Matches(msg, m.keys.Tap):
		return m.check(m.director.Tap())
	}

	if p, dir, ok := m.keys.Nudge(msg); ok {
		m.director.Session().Nudge(p, dir*m.nudge)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := m.pointerEvent(msg)
	if !ok {
		return m, nil
	}
	return m.check(m.director.HandlePointer(ev))
}

// pointerEvent converts a left-button mouse message to a pointer event.
func (m Model) pointerEvent(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{ID: MousePointer, Location: m.view.ToArena(msg.X, msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Phase = core.PointerDown
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Phase = core.PointerMove
	case tea.MouseActionRelease:
		ev.Phase = core.PointerUp
	default:
		return ev, false
	}
	return ev, true
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := m.config.TickSeconds()
	m.director.Host().Step(dt)
	next, cmd := m.check(m.director.Update(dt))
	if cmd != nil {
		return next, cmd
	}
	return next, tickCmd(m.config.TickRate)
}

// check stops the program when the director could not rebuild the scene.
func (m Model) check(err error) (Model, tea.Cmd) {
	if err == nil {
		return m, nil
	}
	m.logger.Error("restart failed", "error", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".bamboo", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bamboo_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
	}
}

func (m *Model) draw() {
	m.screen.Clear()
	DrawWorld(m.screen, m.director.Host(), m.view)

	s := m.director.Session()
	status := fmt.Sprintf(" %s  %s  balls %d", s.Variant(), s.State(), len(m.director.Host().Balls()))
	if m.muted {
		status += "  muted"
	}
	m.screen.DrawText(1, 0, status, core.ColorGray)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + hudStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program on the local terminal.
func Run(d *Director, cfg core.RuntimeConfig, muter Muter, logger *log.Logger) error {
	model := NewModel(d, cfg, muter, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
