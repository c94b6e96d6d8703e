package game

import (
	"fmt"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/physics"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// Host is a scene graph and physics world built together, delivering
// contacts to a single handler.
type Host interface {
	scene.Scene
	physics.World
	SetContactHandler(h physics.ContactHandler)
}

// Director owns the current scene instance and its session, replacing
// both when a restart is requested from StateGameOver.
type Director[H Host] struct {
	build func() (H, error)
	opts  Options

	host     H
	session  *Session
	restarts int
}

// NewDirector builds the first scene and session.
func NewDirector[H Host](build func() (H, error), opts Options) (*Director[H], error) {
	d := &Director[H]{build: build, opts: opts}
	if err := d.load(); err != nil {
		return nil, err
	}
	return d, nil
}

// Host returns the current scene instance.
func (d *Director[H]) Host() H { return d.host }

// Session returns the current session.
func (d *Director[H]) Session() *Session { return d.session }

// Restarts returns how many times the scene has been replaced.
func (d *Director[H]) Restarts() int { return d.restarts }

// HandlePointer forwards ev to the session and restarts if it asked to.
func (d *Director[H]) HandlePointer(ev core.PointerEvent) error {
	d.session.HandlePointer(ev)
	return d.checkRestart()
}

// Tap forwards a tap to the session and restarts if it asked to.
func (d *Director[H]) Tap() error {
	d.session.Tap()
	return d.checkRestart()
}

// Update advances the session clock by dt seconds.
func (d *Director[H]) Update(dt float64) error {
	d.session.Update(dt)
	return d.checkRestart()
}

// Restart replaces the scene and session unconditionally.
func (d *Director[H]) Restart() error {
	d.restarts++
	return d.load()
}

func (d *Director[H]) checkRestart() error {
	if !d.session.RestartRequested() {
		return nil
	}
	return d.Restart()
}

func (d *Director[H]) load() error {
	host, err := d.build()
	if err != nil {
		return fmt.Errorf("game: cannot build scene: %w", err)
	}

	opts := d.opts
	if opts.Seed != 0 {
		opts.Seed += int64(d.restarts)
	}
	s, err := NewSession(host, host, opts)
	if err != nil {
		return fmt.Errorf("game: cannot start session: %w", err)
	}

	host.SetContactHandler(s.HandleContact)
	d.host = host
	d.session = s
	return nil
}
