package arena

import (
	"math"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/physics"
)

// Step advances the world by dt seconds. Contact-begin events are delivered
// after every ball has moved, so handlers may clone balls safely.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.tick++
	w.message.animate(dt)

	var begun []physics.Contact
	for _, b := range w.balls {
		b.integrate(dt)
		for _, s := range w.statics() {
			var touching bool
			if s.cat == physics.CategoryBorder {
				touching = w.containBall(b)
			} else {
				touching = bounceOffRect(b, s.Bounds())
			}

			key := [2]int{b.id, s.id}
			if !touching {
				delete(w.touching, key)
				continue
			}
			if w.touching[key] {
				continue
			}
			w.touching[key] = true
			if reports(s) {
				begun = append(begun, physics.Contact{A: b, B: s})
			}
		}
	}

	if w.handler == nil {
		return
	}
	for _, c := range begun {
		w.handler(c)
	}
}

// reports applies the contact-test masks. Only balls carry one.
func reports(s *Static) bool {
	return physics.BallContactMask.Has(s.cat)
}

func (b *Ball) integrate(dt float64) {
	if b.damping > 0 {
		b.vel = b.vel.Scale(math.Max(0, 1-b.damping*dt))
	}
	b.pos = b.pos.Add(b.vel.Scale(dt))
}

// containBall keeps b inside the frame, reflecting off its edges.
func (w *World) containBall(b *Ball) bool {
	f := w.frame
	r := b.radius
	hit := false

	if b.pos.Y-r <= f.Y {
		b.pos.Y = f.Y + r
		b.vel.Y = math.Abs(b.vel.Y) * b.restitution
		hit = true
	} else if b.pos.Y+r >= f.MaxY() {
		b.pos.Y = f.MaxY() - r
		b.vel.Y = -math.Abs(b.vel.Y) * b.restitution
		hit = true
	}
	if b.pos.X-r <= f.X {
		b.pos.X = f.X + r
		b.vel.X = math.Abs(b.vel.X) * b.restitution
		hit = true
	} else if b.pos.X+r >= f.MaxX() {
		b.pos.X = f.MaxX() - r
		b.vel.X = -math.Abs(b.vel.X) * b.restitution
		hit = true
	}
	return hit
}

// bounceOffRect separates b from a solid rectangle and reflects its
// velocity. It reports whether the two overlapped.
func bounceOffRect(b *Ball, r core.Rect) bool {
	q := core.V(
		core.ClampF(b.pos.X, r.X, r.MaxX()),
		core.ClampF(b.pos.Y, r.Y, r.MaxY()),
	)
	d := b.pos.Sub(q)
	if d.X*d.X+d.Y*d.Y >= b.radius*b.radius {
		return false
	}

	c := r.Center()
	insideX := b.pos.X >= r.X && b.pos.X <= r.MaxX()
	switch {
	case !insideX && b.pos.X < c.X:
		b.pos.X = r.X - b.radius
		b.vel.X = -math.Abs(b.vel.X) * b.restitution
	case !insideX:
		b.pos.X = r.MaxX() + b.radius
		b.vel.X = math.Abs(b.vel.X) * b.restitution
	case b.pos.Y < c.Y:
		b.pos.Y = r.Y - b.radius
		b.vel.Y = -math.Abs(b.vel.Y) * b.restitution
	default:
		b.pos.Y = r.MaxY() + b.radius
		b.vel.Y = math.Abs(b.vel.Y) * b.restitution
	}
	return true
}
