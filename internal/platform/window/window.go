// Package window is the desktop and mobile host: an ebiten game loop with
// multi-touch and mouse input driving the game director.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bamboo-breakout/internal/arena"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/game"
	"github.com/vovakirdan/bamboo-breakout/internal/platform/touch"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// MousePointer is the pointer ID of the mouse; touch IDs from ebiten
// are never negative.
const MousePointer core.PointerID = -1

// nudgeSpeed is how fast held keys move a paddle, in arena heights per second.
const nudgeSpeed = 1.2

// Director is the director type the window host drives.
type Director = game.Director[*arena.World]

// Muter is implemented by audio backends that can be silenced.
type Muter interface {
	ToggleMute() bool
}

var (
	colorBackground = color.RGBA{0x10, 0x1c, 0x14, 0xff}
	colorArena      = color.RGBA{0x18, 0x2a, 0x1e, 0xff}
	colorWall       = color.RGBA{0xc8, 0x3c, 0x32, 0xff}
	colorPaddle     = color.RGBA{0x7c, 0xd9, 0x5a, 0xff}
	colorBall       = color.RGBA{0xf4, 0xd0, 0x3f, 0xff}
	colorMessage    = color.RGBA{0x00, 0x00, 0x00, 0xc0}
	colorMessageRim = color.RGBA{0xf0, 0x8c, 0x28, 0xff}
)

// Game implements ebiten.Game.
type Game struct {
	director *Director
	config   core.RuntimeConfig
	muter    Muter
	logger   *log.Logger

	tracker *touch.Tracker
	proj    touch.Projection
	width   int
	height  int
	touches []ebiten.TouchID
	muted   bool
}

// NewGame creates the ebiten game for d. muter may be nil.
func NewGame(d *Director, cfg core.RuntimeConfig, muter Muter, logger *log.Logger) *Game {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		director: d,
		config:   cfg,
		muter:    muter,
		logger:   logger,
		tracker:  touch.NewTracker(),
	}
	g.resize(cfg.ScreenW, cfg.ScreenH)
	return g
}

func (g *Game) resize(w, h int) {
	g.width, g.height = max(w, 1), max(h, 1)
	g.proj = touch.Fit(g.director.Host().Frame(), g.width, g.height)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// Update implements ebiten.Game. It runs once per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.muter != nil {
		g.muted = g.muter.ToggleMute()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := g.director.Tap(); err != nil {
			return g.fail(err)
		}
	}

	restarts := g.director.Restarts()
	for _, ev := range g.tracker.Events(g.sample(), g.proj) {
		if err := g.director.HandlePointer(ev); err != nil {
			return g.fail(err)
		}
	}
	if g.director.Restarts() != restarts {
		// Bindings belong to the replaced session.
		g.tracker.Reset()
	}

	dt := g.config.TickSeconds()
	g.nudge(dt)
	g.director.Host().Step(dt)
	if err := g.director.Update(dt); err != nil {
		return g.fail(err)
	}
	return nil
}

func (g *Game) fail(err error) error {
	g.logger.Error("restart failed", "error", err)
	return fmt.Errorf("window: %w", err)
}

// sample reads this tick's mouse and touch state.
func (g *Game) sample() touch.Frame {
	var f touch.Frame

	mx, my := ebiten.CursorPosition()
	mouse := touch.Sample{ID: MousePointer, X: float64(mx), Y: float64(my)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Pressed = append(f.Pressed, mouse)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		f.Held = append(f.Held, mouse)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		f.Released = append(f.Released, MousePointer)
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		f.Pressed = append(f.Pressed, touch.Sample{ID: core.PointerID(id), X: float64(x), Y: float64(y)})
	}
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		f.Held = append(f.Held, touch.Sample{ID: core.PointerID(id), X: float64(x), Y: float64(y)})
	}
	g.touches = inpututil.AppendJustReleasedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		f.Released = append(f.Released, core.PointerID(id))
	}
	return f
}

// nudge moves paddles while W/S or the arrow keys are held.
func (g *Game) nudge(dt float64) {
	step := nudgeSpeed * g.director.Host().Frame().H * dt
	s := g.director.Session()
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		s.Nudge(game.PaddleLeft, step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		s.Nudge(game.PaddleLeft, -step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.Nudge(game.PaddleRight, step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.Nudge(game.PaddleRight, -step)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	w := g.director.Host()
	frame := w.Frame()
	g.fillRect(screen, frame, colorArena)

	wall := core.NewRect(frame.X, frame.Y, 4/g.proj.Scale, frame.H)
	g.fillRect(screen, wall, colorWall)
	wall.X = frame.MaxX() - wall.W
	g.fillRect(screen, wall, colorWall)

	for _, n := range w.DrawOrder() {
		switch node := n.(type) {
		case *arena.Static:
			g.fillRect(screen, core.RectAround(node.Position(), node.Size()), colorPaddle)
		case *arena.Ball:
			x, y := g.proj.ToWindow(node.Position())
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(node.Radius()*g.proj.Scale), colorBall, true)
		case *arena.Label:
			g.text(screen, node.Text(), node.Position())
		case *arena.Sprite:
			g.drawMessage(screen, node)
		}
	}

	s := g.director.Session()
	status := fmt.Sprintf("%s  %s  balls %d  fps %.0f", s.Variant(), s.State(), len(w.Balls()), ebiten.ActualFPS())
	if g.muted {
		status += "  muted"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 4)
}

func (g *Game) drawMessage(screen *ebiten.Image, m *arena.Sprite) {
	if m.Scale() <= 0 {
		return
	}
	size := m.Size().Scale(m.Scale())
	r := core.RectAround(m.Position(), size)
	g.fillRect(screen, r, colorMessage)

	x, y := g.proj.ToWindow(core.V(r.X, r.MaxY()))
	vector.StrokeRect(screen, float32(x), float32(y), float32(r.W*g.proj.Scale), float32(r.H*g.proj.Scale), 2, colorMessageRim, false)

	if m.Scale() >= 0.5 {
		g.text(screen, scene.Caption(m.Texture()), m.Position())
	}
}

// fillRect draws arena rectangle r.
func (g *Game) fillRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	x, y := g.proj.ToWindow(core.V(r.X, r.MaxY()))
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.W*g.proj.Scale), float32(r.H*g.proj.Scale), c, false)
}

// text prints s centered on arena point p with the debug font, whose
// glyphs are 6x16 pixels.
func (g *Game) text(screen *ebiten.Image, s string, p core.Vec) {
	x, y := g.proj.ToWindow(p)
	ebitenutil.DebugPrintAt(screen, s, int(x)-3*len(s), int(y)-8)
}

// Run opens the window and blocks until it is closed.
func Run(d *Director, cfg core.RuntimeConfig, muter Muter, logger *log.Logger) error {
	g := NewGame(d, cfg, muter, logger)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Bamboo Breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.config.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
