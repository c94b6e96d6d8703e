// Package game implements the Bamboo Breakout rules: the session state
// machine, contact scoring, high score tracking and pointer routing.
// It drives a host scene and physics world through narrow interfaces
// and has no knowledge of rendering or simulation.
package game

import (
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/physics"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// Message animation timings.
const (
	messageShow = 250 * time.Millisecond
	messageHide = 400 * time.Millisecond
)

// Audio is a fire-and-forget sound sink.
type Audio interface {
	PlaySound(name string)
	PlayMusic(name string)
}

type nopAudio struct{}

func (nopAudio) PlaySound(string) {}
func (nopAudio) PlayMusic(string) {}

// Options configures a session.
type Options struct {
	Config  config.Config
	Variant string       // Registered variant ID; defaults to VariantTiered
	Policy  ResultPolicy // Overrides the variant's policy when set
	Store   HighScoreStore
	History ScoreRecorder // Optional
	Audio   Audio         // Optional
	Logger  *log.Logger   // Optional
	Seed    int64         // 0 means seed from the clock
}

// Session is one instance of the scene: state machine, score and input.
type Session struct {
	id      string
	variant string
	cfg     config.Config

	scene scene.Scene
	world physics.World

	machine    *Machine
	dispatcher *Dispatcher
	tracker    *Tracker
	paddles    *PaddleController
	router     *Router
	message    scene.Sprite

	policy  ResultPolicy
	audio   Audio
	history ScoreRecorder
	logger  *log.Logger
	rng     *rand.Rand

	won      bool
	wonAsset string
	final    int
	spawned  int
	restart  bool
}

// NewSession binds a session to a freshly built scene and enters
// StateWaitingForTap. It fails with a *scene.MissingEntityError when a
// required node or body is absent.
func NewSession(sc scene.Scene, w physics.World, opts Options) (*Session, error) {
	if opts.Variant == "" {
		opts.Variant = VariantTiered
	}
	if opts.Audio == nil {
		opts.Audio = nopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	policy := opts.Policy
	if policy == nil {
		p, err := PolicyFor(opts.Variant, opts.Config.Result)
		if err != nil {
			return nil, err
		}
		policy = p
	}
	wonAsset := opts.Config.Result.WonAsset
	if wonAsset == "" {
		wonAsset = scene.TextureYouWon
	}

	if _, ok := w.Body(scene.NameBall); !ok {
		return nil, &scene.MissingEntityError{Name: scene.NameBall, Kind: "body"}
	}
	board, err := scene.Lookup[scene.Label](sc, scene.NameScoreboard, "label")
	if err != nil {
		return nil, err
	}
	left, err := scene.Lookup[scene.Node](sc, scene.NamePaddleLeft, "node")
	if err != nil {
		return nil, err
	}
	right, err := scene.Lookup[scene.Node](sc, scene.NamePaddleRight, "node")
	if err != nil {
		return nil, err
	}
	message, err := scene.Lookup[scene.Sprite](sc, scene.NameGameMessage, "sprite")
	if err != nil {
		return nil, err
	}
	high, _ := scene.Lookup[scene.Label](sc, scene.NameHighScore, "label")

	id := uuid.New().String()
	logger := opts.Logger.With("session", id[:8])

	s := &Session{
		id:       id,
		variant:  opts.Variant,
		cfg:      opts.Config,
		scene:    sc,
		world:    w,
		machine:  NewMachine(),
		message:  message,
		policy:   policy,
		wonAsset: wonAsset,
		audio:    opts.Audio,
		history:  opts.History,
		logger:   logger,
		rng:      rand.New(rand.NewSource(opts.Seed)),
	}
	s.tracker = NewTracker(board, high, opts.Store, opts.Config.Storage.HighScoreKey, logger)
	s.paddles = NewPaddleController(sc.Frame(), left, right)
	s.router = NewRouter(sc, s.paddles)

	s.dispatcher = NewDispatcher(s.machine.State)
	s.dispatcher.On(physics.CategoryBall, physics.CategoryWall, s.ballHitWall)
	s.dispatcher.On(physics.CategoryBall, physics.CategoryPaddle, s.ballHitPaddle)

	s.machine.Bind(StateWaitingForTap, Hooks{
		OnEnter: s.enterWaiting,
		OnExit:  s.exitWaiting,
	})
	s.machine.Bind(StatePlaying, Hooks{OnEnter: s.enterPlaying})
	s.machine.Bind(StateGameOver, Hooks{OnEnter: s.enterGameOver})

	s.tracker.Reset()
	s.machine.Start()
	s.startMusic()

	logger.Debug("session created", "variant", s.variant, "seed", opts.Seed)
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Variant returns the variant ID the session plays.
func (s *Session) Variant() string { return s.variant }

// State returns the current machine state.
func (s *Session) State() State { return s.machine.State() }

// Elapsed returns the seconds spent in the current state.
func (s *Session) Elapsed() float64 { return s.machine.Elapsed() }

// Won reports the win flag; no rule sets it.
func (s *Session) Won() bool { return s.won }

// FinalScore returns the score recorded when the session ended.
func (s *Session) FinalScore() int { return s.final }

// Spawned returns the number of extra balls added.
func (s *Session) Spawned() int { return s.spawned }

// Score returns the current scoreboard value, or 0 when unreadable.
func (s *Session) Score() int {
	n, err := s.tracker.Score()
	if err != nil {
		return 0
	}
	return n
}

// RestartRequested reports whether a tap arrived during StateGameOver.
func (s *Session) RestartRequested() bool { return s.restart }

// Router returns the pointer router.
func (s *Session) Router() *Router { return s.router }

// Tap starts play from StateWaitingForTap or requests a restart from
// StateGameOver. Taps during play do nothing.
func (s *Session) Tap() {
	switch s.machine.State() {
	case StateWaitingForTap:
		s.machine.Fire(TriggerTap)
	case StateGameOver:
		s.restart = true
	}
}

// HandlePointer applies one pointer event.
func (s *Session) HandlePointer(ev core.PointerEvent) {
	switch ev.Phase {
	case core.PointerDown:
		switch s.machine.State() {
		case StateWaitingForTap, StateGameOver:
			s.Tap()
		case StatePlaying:
			if p := s.router.Bind(ev.ID, ev.Location); p != PaddleNone {
				s.logger.Debug("pointer bound", "pointer", ev.ID, "paddle", p)
			}
		}
	case core.PointerMove:
		s.router.Move(ev.ID, ev.Location)
	case core.PointerUp:
		s.router.Release(ev.ID)
	}
}

// Nudge moves a paddle by dy, for keyboard control.
func (s *Session) Nudge(p Paddle, dy float64) {
	s.router.Nudge(p, dy)
}

// HandleContact is the session's physics.ContactHandler.
func (s *Session) HandleContact(c physics.Contact) {
	s.dispatcher.Dispatch(c)
}

// Update is called once per simulation tick with the tick length in seconds.
func (s *Session) Update(dt float64) {
	s.machine.Update(dt)
}

func (s *Session) ballHitWall(_, _ physics.Body) {
	final, improved := s.tracker.Finish()
	s.final = final

	if s.history != nil {
		if err := s.history.SaveScore(s.variant, final); err != nil {
			s.logger.Warn("cannot save score", "err", err)
		}
	}

	s.machine.Fire(TriggerWallContact)
	s.won = false
	s.logger.Info("game over", "score", final, "high_score", improved)
}

func (s *Session) ballHitPaddle(_, _ physics.Body) {
	score, ok := s.tracker.Increment()
	if !ok {
		return
	}
	if slices.Contains(s.cfg.Scoring.SpawnThresholds, score) {
		s.spawnBall()
	}
}

// spawnBall duplicates the primary ball at the arena center.
func (s *Session) spawnBall() {
	primary, ok := s.world.Body(scene.NameBall)
	if !ok {
		s.logger.Warn("cannot spawn ball", "err", &scene.MissingEntityError{Name: scene.NameBall, Kind: "body"})
		return
	}
	b, err := s.world.Clone(primary)
	if err != nil {
		s.logger.Warn("cannot spawn ball", "err", err)
		return
	}

	b.SetRestitution(1)
	b.SetDamping(0)
	if s.cfg.Scoring.InvertSpawnVelocity {
		v := b.Velocity()
		v.X = -v.X
		b.SetVelocity(v)
	}
	b.SetPosition(s.scene.Frame().Center())
	s.spawned++
	s.logger.Debug("ball spawned", "balls", s.spawned+1)
}

func (s *Session) enterWaiting(State) {
	s.message.SetTexture(scene.TextureTapToPlay)
	s.message.ScaleTo(1, messageShow)
}

func (s *Session) exitWaiting(State) {
	s.message.ScaleTo(0, messageHide)
}

func (s *Session) enterPlaying(State) {
	ball, ok := s.world.Body(scene.NameBall)
	if !ok {
		s.logger.Warn("cannot launch ball", "err", &scene.MissingEntityError{Name: scene.NameBall, Kind: "body"})
		return
	}
	ball.SetVelocity(s.launchVelocity())
}

// launchVelocity returns full speed horizontally and 30-70% of it
// vertically, each with a random sign.
func (s *Session) launchVelocity() core.Vec {
	speed := s.cfg.Ball.Speed
	v := core.V(speed, speed*(0.3+0.4*s.rng.Float64()))
	if s.rng.Intn(2) == 0 {
		v.X = -v.X
	}
	if s.rng.Intn(2) == 0 {
		v.Y = -v.Y
	}
	return v
}

func (s *Session) enterGameOver(State) {
	s.audio.PlaySound(s.cfg.Audio.GameOverSound)

	texture := s.policy.ResultAsset(s.final)
	if s.won {
		texture = s.wonAsset
	}
	s.message.SetTexture(texture)
	s.message.ScaleTo(1, messageShow)

	if ball, ok := s.world.Body(scene.NameBall); ok {
		ball.SetDamping(1)
	}
}

func (s *Session) startMusic() {
	if !s.cfg.Audio.Music || len(s.cfg.Audio.Tracks) == 0 {
		return
	}
	track := s.cfg.Audio.Tracks[s.rng.Intn(len(s.cfg.Audio.Tracks))]
	s.audio.PlayMusic(track)
}
