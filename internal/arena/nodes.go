package arena

import (
	"time"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/physics"
)

// Z order of node kinds; higher is drawn and hit-tested first.
const (
	zClicker = 0
	zPaddle  = 1
	zBall    = 2
	zLabel   = 3
	zMessage = 4
)

type base struct {
	name string
	pos  core.Vec
	size core.Vec
	z    int
}

func (b *base) Name() string           { return b.name }
func (b *base) Position() core.Vec     { return b.pos }
func (b *base) SetPosition(p core.Vec) { b.pos = p }
func (b *base) Size() core.Vec         { return b.size }

// Bounds returns the node rectangle centered on its position.
func (b *base) Bounds() core.Rect { return core.RectAround(b.pos, b.size) }

// Z returns the node's draw order.
func (b *base) Z() int { return b.z }

func (b *base) hittable() bool { return b.size.X > 0 && b.size.Y > 0 }

// Region is an invisible hit area such as a clicker strip.
type Region struct {
	base
}

// Label is a text node.
type Label struct {
	base
	text string
}

func (l *Label) Text() string     { return l.text }
func (l *Label) SetText(s string) { l.text = s }

// Sprite is a textured node with an animated scale.
type Sprite struct {
	base
	texture string
	scale   float64

	from, target float64
	elapsed      float64
	duration     float64 // Seconds; 0 when idle
}

func (s *Sprite) Texture() string        { return s.texture }
func (s *Sprite) SetTexture(name string) { s.texture = name }
func (s *Sprite) Scale() float64         { return s.scale }

// ScaleTo starts a linear scale animation. A non-positive duration applies
// the scale immediately.
func (s *Sprite) ScaleTo(v float64, d time.Duration) {
	if d <= 0 {
		s.scale, s.target, s.duration = v, v, 0
		return
	}
	s.from, s.target = s.scale, v
	s.elapsed = 0
	s.duration = d.Seconds()
}

func (s *Sprite) animate(dt float64) {
	if s.duration == 0 {
		return
	}
	s.elapsed += dt
	if s.elapsed >= s.duration {
		s.scale, s.duration = s.target, 0
		return
	}
	s.scale = s.from + (s.target-s.from)*s.elapsed/s.duration
}

func (s *Sprite) hittable() bool { return s.scale > 0 && s.base.hittable() }

// Ball is a dynamic circular body.
type Ball struct {
	base
	id          int
	radius      float64
	vel         core.Vec
	restitution float64
	damping     float64
}

func (b *Ball) Category() physics.Category { return physics.CategoryBall }
func (b *Ball) Velocity() core.Vec         { return b.vel }
func (b *Ball) SetVelocity(v core.Vec)     { b.vel = v }
func (b *Ball) SetRestitution(r float64)   { b.restitution = r }
func (b *Ball) SetDamping(d float64)       { b.damping = d }

// Radius returns the ball radius.
func (b *Ball) Radius() float64 { return b.radius }

// Damping returns the linear damping factor.
func (b *Ball) Damping() float64 { return b.damping }

// Static is a body that never moves on its own: paddles, walls and the border.
type Static struct {
	base
	id  int
	cat physics.Category
}

func (s *Static) Category() physics.Category { return s.cat }
func (s *Static) Velocity() core.Vec         { return core.Vec{} }
func (s *Static) SetVelocity(core.Vec)       {}
func (s *Static) SetRestitution(float64)     {}
func (s *Static) SetDamping(float64)         {}
