package physics

import "github.com/vovakirdan/bamboo-breakout/internal/core"

// Body is a handle to a physics body owned by the host engine.
type Body interface {
	// Name is the scene node name the body is attached to (e.g. "ball").
	Name() string
	// Category is the body's category bitmask.
	Category() Category

	Position() core.Vec
	SetPosition(p core.Vec)
	Velocity() core.Vec
	SetVelocity(v core.Vec)
	SetRestitution(r float64)
	SetDamping(d float64)
}

// World is the query/mutation surface of the host physics world.
type World interface {
	// Body returns the first body attached to the node with the given name.
	Body(name string) (Body, bool)
	// Clone duplicates a body (and its node) and adds the copy to the world.
	Clone(b Body) (Body, error)
}

// Contact is a contact-begin event between two bodies, in no particular order.
type Contact struct {
	A, B Body
}

// ContactHandler receives contact-begin events from the host.
type ContactHandler func(c Contact)

// Pair is an ordered pair of categories, lower category first.
type Pair struct {
	First, Second Category
}

// PairOf builds the canonical pair for two categories.
func PairOf(a, b Category) Pair {
	if a < b {
		return Pair{First: a, Second: b}
	}
	return Pair{First: b, Second: a}
}

// Ordered returns the contact's bodies sorted so the first has the lower
// category. When both categories are equal, B is returned first.
func (c Contact) Ordered() (first, second Body) {
	if c.A.Category() < c.B.Category() {
		return c.A, c.B
	}
	return c.B, c.A
}

// Pair returns the canonical category pair of the contact.
func (c Contact) Pair() Pair {
	return PairOf(c.A.Category(), c.B.Category())
}

// String returns e.g. "Ball/Wall".
func (p Pair) String() string {
	return p.First.String() + "/" + p.Second.String()
}
