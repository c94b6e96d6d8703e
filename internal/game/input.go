package game

import (
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// MaxPointers is the number of pointers that can drive paddles at once.
const MaxPointers = 10

type binding struct {
	id     core.PointerID
	paddle Paddle
	lastY  float64
	active bool
}

// Router binds pointer identifiers to paddles and turns their motion into
// paddle offsets. Several identifiers may drive the same paddle.
type Router struct {
	scene   scene.Scene
	paddles *PaddleController
	table   [MaxPointers]binding
}

// NewRouter returns a router hit-testing against s.
func NewRouter(s scene.Scene, paddles *PaddleController) *Router {
	return &Router{scene: s, paddles: paddles}
}

// Bind hit-tests loc and binds id to the paddle it selects.
// It returns PaddleNone when nothing was bound.
func (r *Router) Bind(id core.PointerID, loc core.Vec) Paddle {
	node, ok := r.scene.NodeAt(loc)
	if !ok {
		return PaddleNone
	}
	p := PaddleForNode(node.Name())
	if p == PaddleNone {
		return PaddleNone
	}

	slot := r.find(id)
	if slot < 0 {
		slot = r.free()
	}
	if slot < 0 {
		return PaddleNone
	}
	r.table[slot] = binding{id: id, paddle: p, lastY: loc.Y, active: true}
	return p
}

// Move applies the vertical motion of id since its last event.
// Unbound identifiers are ignored.
func (r *Router) Move(id core.PointerID, loc core.Vec) bool {
	slot := r.find(id)
	if slot < 0 {
		return false
	}
	b := &r.table[slot]
	dy := loc.Y - b.lastY
	b.lastY = loc.Y
	r.paddles.Move(b.paddle, dy)
	return true
}

// Release removes the binding of id. Unknown identifiers are a no-op.
func (r *Router) Release(id core.PointerID) bool {
	slot := r.find(id)
	if slot < 0 {
		return false
	}
	r.table[slot] = binding{}
	return true
}

// Nudge moves a paddle directly, for keyboard hosts.
func (r *Router) Nudge(p Paddle, dy float64) {
	r.paddles.Move(p, dy)
}

// Bound returns the paddle bound to id.
func (r *Router) Bound(id core.PointerID) Paddle {
	if slot := r.find(id); slot >= 0 {
		return r.table[slot].paddle
	}
	return PaddleNone
}

// Active returns the number of bound identifiers.
func (r *Router) Active() int {
	n := 0
	for _, b := range r.table {
		if b.active {
			n++
		}
	}
	return n
}

// Clear drops all bindings.
func (r *Router) Clear() {
	r.table = [MaxPointers]binding{}
}

func (r *Router) find(id core.PointerID) int {
	for i, b := range r.table {
		if b.active && b.id == id {
			return i
		}
	}
	return -1
}

func (r *Router) free() int {
	for i, b := range r.table {
		if !b.active {
			return i
		}
	}
	return -1
}
