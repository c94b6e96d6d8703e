package arena

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/game"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
	"github.com/vovakirdan/bamboo-breakout/internal/storage"
)

func newDirector(t *testing.T, store *storage.Memory, seed int64) *game.Director[*World] {
	t.Helper()
	cfg := config.DefaultConfig()
	d, err := game.NewDirector(func() (*World, error) { return New(cfg), nil }, game.Options{
		Config:  cfg,
		Store:   store,
		History: store,
		Logger:  log.New(io.Discard),
		Seed:    seed,
	})
	if err != nil {
		t.Fatalf("NewDirector() error = %v", err)
	}
	return d
}

func run(d *game.Director[*World], frames int) {
	for i := 0; i < frames; i++ {
		d.Host().Step(dt)
		d.Update(dt)
	}
}

func TestFullGameOnArena(t *testing.T) {
	store := storage.NewMemory()
	d := newDirector(t, store, 7)

	if err := d.HandlePointer(core.PointerEvent{ID: 1, Phase: core.PointerDown, Location: core.V(512, 384)}); err != nil {
		t.Fatal(err)
	}
	if d.Session().State() != game.StatePlaying {
		t.Fatalf("State() = %v, expected Playing", d.Session().State())
	}

	// Aim the ball at the left paddle, then at the left wall.
	w := d.Host()
	ball := primary(t, w)
	ball.SetPosition(core.V(200, 384))
	ball.SetVelocity(core.V(-600, 0))
	run(d, 30)
	if got := w.Scoreboard().Text(); got != "1" {
		t.Fatalf("scoreboard = %q after paddle hit, expected 1", got)
	}

	ball.SetPosition(core.V(200, 700))
	ball.SetVelocity(core.V(-600, 0))
	run(d, 30)
	if d.Session().State() != game.StateGameOver {
		t.Fatalf("State() = %v, expected GameOver", d.Session().State())
	}
	if ball.Damping() != 1 {
		t.Errorf("ball damping = %v, expected 1", ball.Damping())
	}
	run(d, 30)
	if w.Message().Scale() != 1 || w.Message().Texture() != "GameOver" {
		t.Errorf("gameMessage = (%q, %v), expected (GameOver, 1)", w.Message().Texture(), w.Message().Scale())
	}
	if v, _ := store.Get("HighestScore", 0); v != 1 {
		t.Errorf("high score = %d, expected 1", v)
	}

	if err := d.Tap(); err != nil {
		t.Fatal(err)
	}
	if d.Host() == w {
		t.Fatal("arena not rebuilt after restart")
	}
	if got := d.Host().HighScore().Text(); got != "1" {
		t.Errorf("highscore label = %q, expected 1", got)
	}
	if top, _ := store.TopScores(game.VariantTiered, 5); len(top) != 1 {
		t.Errorf("history = %v, expected one entry", top)
	}
}

func TestDragPaddleOnArena(t *testing.T) {
	d := newDirector(t, storage.NewMemory(), 3)
	d.Tap()
	run(d, 30) // Let the message shrink away.

	_, rp := d.Host().Paddles()
	start := rp.Position().Y

	d.HandlePointer(core.PointerEvent{ID: 5, Phase: core.PointerDown, Location: core.V(900, 200)})
	d.HandlePointer(core.PointerEvent{ID: 5, Phase: core.PointerMove, Location: core.V(900, 250)})
	if got := rp.Position().Y; got != start+50 {
		t.Errorf("right paddle Y = %v, expected %v", got, start+50)
	}

	d.HandlePointer(core.PointerEvent{ID: 5, Phase: core.PointerMove, Location: core.V(900, 5000)})
	if got, want := rp.Position().Y, d.Host().Frame().MaxY()-rp.Size().Y/2; got != want {
		t.Errorf("right paddle Y = %v, expected clamp at %v", got, want)
	}
	d.HandlePointer(core.PointerEvent{ID: 5, Phase: core.PointerUp})
	if d.Session().Router().Active() != 0 {
		t.Error("binding survived pointer up")
	}
}

func TestArenaDeterminism(t *testing.T) {
	play := func() Snapshot {
		d := newDirector(t, storage.NewMemory(), 12345)
		d.Tap()
		for i := 0; i < 600; i++ {
			if i%20 == 0 {
				d.Session().Nudge(game.PaddleLeft, float64(i%7-3)*10)
			}
			d.Host().Step(dt)
			d.Update(dt)
		}
		return d.Host().Snapshot()
	}

	s1 := play()
	s2 := play()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%s, Run2=%s", s1.Score, s2.Score)
	}
	if s1.Tick != 600 {
		t.Errorf("Tick = %d, expected 600", s1.Tick)
	}
}

func TestMessageHiddenDuringPlay(t *testing.T) {
	d := newDirector(t, storage.NewMemory(), 9)
	run(d, 30)
	if s := d.Host().Message().Scale(); s != 1 {
		t.Errorf("message scale while waiting = %v, expected 1", s)
	}
	if tex := d.Host().Message().Texture(); tex != scene.TextureTapToPlay {
		t.Errorf("texture = %q, expected TapToPlay", tex)
	}
	d.Tap()
	run(d, 30)
	if s := d.Host().Message().Scale(); s != 0 {
		t.Errorf("message scale while playing = %v, expected 0", s)
	}
}
