// Package audio plays the game's sound cues and background music through
// the system speaker.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Nop discards every cue.
type Nop struct{}

func (Nop) PlaySound(string) {}
func (Nop) PlayMusic(string) {}

// Player mixes cues and one looping music track onto the speaker.
type Player struct {
	mu          sync.Mutex
	dir         string
	volume      float64
	mixer       *beep.Mixer
	master      *beep.Ctrl
	music       *beep.Ctrl
	logger      *log.Logger
	initialized bool
}

// NewPlayer returns a player reading <assets_dir>/<name>.wav files.
// Call Init before playing.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	dir, err := config.ExpandHome(cfg.AssetsDir)
	if err != nil {
		dir = cfg.AssetsDir
	}
	mixer := &beep.Mixer{}
	return &Player{
		dir:    dir,
		volume: cfg.Volume,
		mixer:  mixer,
		master: &beep.Ctrl{Streamer: mixer},
		logger: logger,
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Close stops all sound and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// PlaySound plays a one-shot cue. A missing file falls back to a built-in tone.
func (p *Player) PlaySound(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := p.load(name)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			p.logger.Warn("cannot load sound", "name", name, "err", err)
		}
		s = Cue(name)
	}
	p.add(s)
}

// PlayMusic loops a track, replacing the current one. A missing file is
// logged and leaves the game silent.
func (p *Player) PlayMusic(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := p.loadLooped(name)
	if err != nil {
		p.logger.Info("music unavailable", "track", name, "err", err)
		return
	}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
		p.music.Streamer = nil
	}
	p.music = &beep.Ctrl{Streamer: p.withVolume(s)}
	p.mixer.Add(p.music)
	speaker.Unlock()
}

// ToggleMute pauses or resumes all output and returns the new mute state.
func (p *Player) ToggleMute() bool {
	speaker.Lock()
	defer speaker.Unlock()

	p.master.Paused = !p.master.Paused
	return p.master.Paused
}

func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(p.withVolume(s))
	speaker.Unlock()
}

func (p *Player) path(name string) string {
	return filepath.Join(p.dir, name+".wav")
}

// load decodes a wav file fully into memory, resampled to the mixer rate.
func (p *Player) load(name string) (beep.Streamer, error) {
	buf, err := p.buffer(name)
	if err != nil {
		return nil, err
	}
	return buf.Streamer(0, buf.Len()), nil
}

func (p *Player) loadLooped(name string) (beep.Streamer, error) {
	buf, err := p.buffer(name)
	if err != nil {
		return nil, err
	}
	return beep.Loop(-1, buf.Streamer(0, buf.Len())), nil
}

func (p *Player) buffer(name string) (*beep.Buffer, error) {
	f, err := os.Open(p.path(name))
	if err != nil {
		return nil, err
	}

	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", name, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, s)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return buf, nil
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	return Volume(s, p.volume)
}

// Volume scales a stream by a linear 0-1 factor.
func Volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1)), Silent: false}
}

// Cue returns the built-in tone sequence for a sound name.
func Cue(name string) beep.Streamer {
	switch name {
	case "game-over":
		return tones(
			tone{440, 150 * time.Millisecond},
			tone{330, 150 * time.Millisecond},
			tone{220, 350 * time.Millisecond},
		)
	default:
		return tones(tone{660, 80 * time.Millisecond})
	}
}

type tone struct {
	freq float64
	d    time.Duration
}

func tones(ts ...tone) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(ts))
	for _, t := range ts {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(t.d), Volume(sine, 0.3)))
	}
	return beep.Seq(parts...)
}
