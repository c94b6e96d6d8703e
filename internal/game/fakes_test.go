package game

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/physics"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

type fakeBody struct {
	name        string
	cat         physics.Category
	pos, vel    core.Vec
	restitution float64
	damping     float64
}

func (b *fakeBody) Name() string               { return b.name }
func (b *fakeBody) Category() physics.Category { return b.cat }
func (b *fakeBody) Position() core.Vec         { return b.pos }
func (b *fakeBody) SetPosition(p core.Vec)     { b.pos = p }
func (b *fakeBody) Velocity() core.Vec         { return b.vel }
func (b *fakeBody) SetVelocity(v core.Vec)     { b.vel = v }
func (b *fakeBody) SetRestitution(r float64)   { b.restitution = r }
func (b *fakeBody) SetDamping(d float64)       { b.damping = d }

type fakeNode struct {
	name string
	pos  core.Vec
	size core.Vec
}

func (n *fakeNode) Name() string           { return n.name }
func (n *fakeNode) Position() core.Vec     { return n.pos }
func (n *fakeNode) SetPosition(p core.Vec) { n.pos = p }
func (n *fakeNode) Size() core.Vec         { return n.size }

type fakeLabel struct {
	fakeNode
	text string
}

func (l *fakeLabel) Text() string     { return l.text }
func (l *fakeLabel) SetText(s string) { l.text = s }

type fakeSprite struct {
	fakeNode
	texture string
	scale   float64
	scales  []float64 // Every ScaleTo target, in order
}

func (s *fakeSprite) Texture() string        { return s.texture }
func (s *fakeSprite) SetTexture(name string) { s.texture = name }
func (s *fakeSprite) Scale() float64         { return s.scale }
func (s *fakeSprite) ScaleTo(v float64, _ time.Duration) {
	s.scale = v
	s.scales = append(s.scales, v)
}

// fakeHost is a scene and world with no simulation.
type fakeHost struct {
	frame    core.Rect
	nodes    []scene.Node // Later entries are on top
	bodies   []*fakeBody
	cloneErr error
	handler  physics.ContactHandler
}

func newFakeHost() *fakeHost {
	h := &fakeHost{frame: core.NewRect(0, 0, 1000, 800)}

	ball := &fakeBody{name: scene.NameBall, cat: physics.CategoryBall, pos: core.V(500, 400), vel: core.V(0, 0)}
	h.bodies = append(h.bodies, ball)

	h.nodes = append(h.nodes,
		&fakeNode{name: scene.NameLeftClicker, pos: core.V(125, 400), size: core.V(250, 800)},
		&fakeNode{name: scene.NameRightClicker, pos: core.V(875, 400), size: core.V(250, 800)},
		&fakeNode{name: scene.NamePaddleLeft, pos: core.V(40, 400), size: core.V(20, 100)},
		&fakeNode{name: scene.NamePaddleRight, pos: core.V(960, 400), size: core.V(20, 100)},
		&fakeLabel{fakeNode: fakeNode{name: scene.NameScoreboard, pos: core.V(500, 760)}, text: "7"},
		&fakeLabel{fakeNode: fakeNode{name: scene.NameHighScore, pos: core.V(900, 760)}},
		&fakeSprite{fakeNode: fakeNode{name: scene.NameGameMessage, pos: core.V(500, 400), size: core.V(300, 100)}},
	)
	return h
}

func (h *fakeHost) Node(name string) (scene.Node, bool) {
	for _, n := range h.nodes {
		if n.Name() == name {
			return n, true
		}
	}
	return nil, false
}

func (h *fakeHost) NodeAt(p core.Vec) (scene.Node, bool) {
	for i := len(h.nodes) - 1; i >= 0; i-- {
		n := h.nodes[i]
		if _, ok := n.(scene.Label); ok {
			continue
		}
		if s, ok := n.(scene.Sprite); ok && s.Scale() == 0 {
			continue
		}
		if core.RectAround(n.Position(), n.Size()).Contains(p) {
			return n, true
		}
	}
	return nil, false
}

func (h *fakeHost) Frame() core.Rect { return h.frame }

func (h *fakeHost) Body(name string) (physics.Body, bool) {
	for _, b := range h.bodies {
		if b.name == name {
			return b, true
		}
	}
	return nil, false
}

func (h *fakeHost) Clone(b physics.Body) (physics.Body, error) {
	if h.cloneErr != nil {
		return nil, h.cloneErr
	}
	src, ok := b.(*fakeBody)
	if !ok {
		return nil, errors.New("foreign body")
	}
	c := *src
	h.bodies = append(h.bodies, &c)
	return &c, nil
}

func (h *fakeHost) SetContactHandler(fn physics.ContactHandler) { h.handler = fn }

func (h *fakeHost) remove(name string) {
	out := h.nodes[:0]
	for _, n := range h.nodes {
		if n.Name() != name {
			out = append(out, n)
		}
	}
	h.nodes = out
}

func (h *fakeHost) label(name string) *fakeLabel {
	n, _ := h.Node(name)
	return n.(*fakeLabel)
}

func (h *fakeHost) sprite() *fakeSprite {
	n, _ := h.Node(scene.NameGameMessage)
	return n.(*fakeSprite)
}

func (h *fakeHost) node(name string) *fakeNode {
	n, _ := h.Node(name)
	return n.(*fakeNode)
}

func (h *fakeHost) primary() *fakeBody { return h.bodies[0] }

func (h *fakeHost) body(cat physics.Category) *fakeBody {
	return &fakeBody{name: cat.String(), cat: cat}
}

func (h *fakeHost) contact(a, b physics.Category) physics.Contact {
	var first physics.Body = h.body(a)
	if a == physics.CategoryBall {
		first = h.primary()
	}
	var second physics.Body = h.body(b)
	if b == physics.CategoryBall {
		second = h.primary()
	}
	return physics.Contact{A: first, B: second}
}

// memStore is a HighScoreStore without compare-then-set.
type memStore struct {
	values map[string]int
	sets   int
	err    error
}

func newMemStore() *memStore { return &memStore{values: make(map[string]int)} }

func (m *memStore) Get(key string, def int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	v, ok := m.values[key]
	if !ok {
		m.values[key] = def
		return def, nil
	}
	return v, nil
}

func (m *memStore) Set(key string, value int) error {
	if m.err != nil {
		return m.err
	}
	m.sets++
	m.values[key] = value
	return nil
}

// condStore adds SetIfGreater.
type condStore struct {
	memStore
	conditional int
}

func (c *condStore) SetIfGreater(key string, value int) (bool, error) {
	c.conditional++
	cur := c.values[key]
	if value > cur {
		c.values[key] = value
		return true, nil
	}
	return false, nil
}

type history struct {
	variants []string
	scores   []int
}

func (h *history) SaveScore(variant string, score int) error {
	h.variants = append(h.variants, variant)
	h.scores = append(h.scores, score)
	return nil
}

type recordAudio struct {
	sounds []string
	music  []string
}

func (a *recordAudio) PlaySound(name string) { a.sounds = append(a.sounds, name) }
func (a *recordAudio) PlayMusic(name string) { a.music = append(a.music, name) }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testOptions(store HighScoreStore) Options {
	return Options{
		Config: config.DefaultConfig(),
		Store:  store,
		Logger: quietLogger(),
		Seed:   42,
	}
}
