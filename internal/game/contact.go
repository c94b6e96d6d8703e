package game

import (
	"github.com/vovakirdan/bamboo-breakout/internal/physics"
)

// Rule reacts to a contact whose bodies are ordered lower category first.
type Rule func(first, second physics.Body)

// Dispatcher routes contact-begin events to the rule of their category pair.
// Contacts are only dispatched while the gate reports StatePlaying.
type Dispatcher struct {
	gate  func() State
	rules map[physics.Pair]Rule
}

// NewDispatcher returns a dispatcher with no rules.
func NewDispatcher(gate func() State) *Dispatcher {
	return &Dispatcher{
		gate:  gate,
		rules: make(map[physics.Pair]Rule),
	}
}

// On registers the rule for the pair of categories a and b, in any order.
func (d *Dispatcher) On(a, b physics.Category, r Rule) {
	d.rules[physics.PairOf(a, b)] = r
}

// Dispatch runs the matching rule and reports whether one ran.
// Pairs without a rule are ignored.
func (d *Dispatcher) Dispatch(c physics.Contact) bool {
	if c.A == nil || c.B == nil {
		return false
	}
	if d.gate() != StatePlaying {
		return false
	}

	first, second := c.Ordered()
	r, ok := d.rules[physics.PairOf(first.Category(), second.Category())]
	if !ok {
		return false
	}
	r(first, second)
	return true
}
