// Package arena is a small kinematic host for the game core. It keeps the
// scene graph of the Bamboo Breakout arena and moves the balls, reporting
// contact-begin events the way a physics engine would.
package arena

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/physics"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// Body names of the static bodies.
const (
	NameLeftWall  = "leftWall"
	NameRightWall = "rightWall"
	NameBorder    = "border"
)

// MaxBalls bounds Clone.
const MaxBalls = 64

type hitNode interface {
	scene.Node
	Bounds() core.Rect
	Z() int
	hittable() bool
}

// World is the arena scene and its physics bodies. It is not safe for
// concurrent use; the host loop owns it.
type World struct {
	frame core.Rect
	nodes []hitNode // Insertion order

	balls   []*Ball
	paddles [2]*Static
	walls   [2]*Static
	border  *Static
	message *Sprite
	board   *Label
	high    *Label

	handler  physics.ContactHandler
	touching map[[2]int]bool
	nextID   int
	tick     uint64
}

// New builds the arena described by cfg.
func New(cfg config.Config) *World {
	a := cfg.Arena
	frame := core.NewRect(0, 0, a.Width, a.Height)
	center := frame.Center()
	w := &World{
		frame:    frame,
		touching: make(map[[2]int]bool),
	}

	clicker := a.ClickerWidth
	if clicker <= 0 {
		clicker = a.Width / 4
	}
	w.add(&Region{base{name: scene.NameLeftClicker, pos: core.V(frame.X+clicker/2, center.Y), size: core.V(clicker, a.Height), z: zClicker}})
	w.add(&Region{base{name: scene.NameRightClicker, pos: core.V(frame.MaxX()-clicker/2, center.Y), size: core.V(clicker, a.Height), z: zClicker}})

	p := cfg.Paddle
	psize := core.V(p.Width, p.Height)
	w.paddles[0] = &Static{base: base{name: scene.NamePaddleLeft, pos: core.V(frame.X+p.Offset, center.Y), size: psize, z: zPaddle}, id: w.id(), cat: physics.CategoryPaddle}
	w.paddles[1] = &Static{base: base{name: scene.NamePaddleRight, pos: core.V(frame.MaxX()-p.Offset, center.Y), size: psize, z: zPaddle}, id: w.id(), cat: physics.CategoryPaddle}
	w.add(w.paddles[0])
	w.add(w.paddles[1])

	b := cfg.Ball
	ball := &Ball{
		base:        base{name: scene.NameBall, pos: center, size: core.V(2*b.Radius, 2*b.Radius), z: zBall},
		id:          w.id(),
		radius:      b.Radius,
		restitution: b.Restitution,
		damping:     b.Damping,
	}
	w.balls = append(w.balls, ball)
	w.add(ball)

	w.board = &Label{base: base{name: scene.NameScoreboard, pos: core.V(center.X, frame.MaxY()-40), size: core.V(120, 48), z: zLabel}, text: "0"}
	w.high = &Label{base: base{name: scene.NameHighScore, pos: core.V(frame.MaxX()-clicker/2, frame.MaxY()-40), size: core.V(120, 32), z: zLabel}, text: "0"}
	w.add(w.board)
	w.add(w.high)

	w.message = &Sprite{base: base{name: scene.NameGameMessage, pos: center, size: core.V(a.Width*0.45, a.Height*0.2), z: zMessage}, texture: scene.TextureTapToPlay}
	w.add(w.message)

	t := a.WallThickness
	if t <= 0 {
		t = 1
	}
	w.walls[0] = &Static{base: base{name: NameLeftWall, pos: core.V(frame.X+t/2, center.Y), size: core.V(t, a.Height)}, id: w.id(), cat: physics.CategoryWall}
	w.walls[1] = &Static{base: base{name: NameRightWall, pos: core.V(frame.MaxX()-t/2, center.Y), size: core.V(t, a.Height)}, id: w.id(), cat: physics.CategoryWall}
	w.border = &Static{base: base{name: NameBorder, pos: center, size: core.V(a.Width, a.Height)}, id: w.id(), cat: physics.CategoryBorder}

	return w
}

func (w *World) id() int {
	w.nextID++
	return w.nextID
}

func (w *World) add(n hitNode) {
	w.nodes = append(w.nodes, n)
}

// Frame returns the arena rectangle.
func (w *World) Frame() core.Rect { return w.frame }

// Node returns the first node named name.
func (w *World) Node(name string) (scene.Node, bool) {
	for _, n := range w.nodes {
		if n.Name() == name {
			return n, true
		}
	}
	return nil, false
}

// NodeAt returns the topmost hittable node containing p. Among nodes with
// equal z the most recently added wins.
func (w *World) NodeAt(p core.Vec) (scene.Node, bool) {
	var (
		best  hitNode
		bestZ int
	)
	for _, n := range w.nodes {
		if !n.hittable() || !n.Bounds().Contains(p) {
			continue
		}
		if best == nil || n.Z() >= bestZ {
			best, bestZ = n, n.Z()
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// Body returns the first body attached to the named node.
func (w *World) Body(name string) (physics.Body, bool) {
	for _, b := range w.balls {
		if b.name == name {
			return b, true
		}
	}
	for _, s := range w.statics() {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// Clone copies a ball, adding the copy to the world and the scene.
func (w *World) Clone(b physics.Body) (physics.Body, error) {
	src, ok := b.(*Ball)
	if !ok {
		return nil, fmt.Errorf("arena: cannot clone %s body %q", b.Category(), b.Name())
	}
	if len(w.balls) >= MaxBalls {
		return nil, fmt.Errorf("arena: ball limit %d reached", MaxBalls)
	}
	c := *src
	c.id = w.id()
	w.balls = append(w.balls, &c)
	w.add(&c)
	return &c, nil
}

// SetContactHandler installs the receiver of contact-begin events.
func (w *World) SetContactHandler(h physics.ContactHandler) {
	w.handler = h
}

// Balls returns the balls in creation order. The slice must not be modified.
func (w *World) Balls() []*Ball { return w.balls }

// Paddles returns the left and right paddles.
func (w *World) Paddles() (left, right *Static) { return w.paddles[0], w.paddles[1] }

// Message returns the gameMessage sprite.
func (w *World) Message() *Sprite { return w.message }

// Scoreboard returns the score label.
func (w *World) Scoreboard() *Label { return w.board }

// HighScore returns the high score label.
func (w *World) HighScore() *Label { return w.high }

// Tick returns the number of steps taken.
func (w *World) Tick() uint64 { return w.tick }

// DrawOrder returns the visible nodes sorted by z, lowest first.
func (w *World) DrawOrder() []scene.Node {
	out := make([]hitNode, 0, len(w.nodes))
	for _, n := range w.nodes {
		if _, ok := n.(*Region); ok {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z() < out[j].Z() })

	nodes := make([]scene.Node, len(out))
	for i, n := range out {
		nodes[i] = n
	}
	return nodes
}

func (w *World) statics() []*Static {
	return []*Static{w.paddles[0], w.paddles[1], w.walls[0], w.walls[1], w.border}
}
