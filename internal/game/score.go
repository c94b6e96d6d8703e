package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// HighScoreStore persists integers by key.
type HighScoreStore interface {
	// Get returns the value stored under key, storing def first if absent.
	Get(key string, def int) (int, error)
	Set(key string, value int) error
}

// conditionalStore is implemented by stores that can compare-then-set atomically.
type conditionalStore interface {
	SetIfGreater(key string, value int) (bool, error)
}

// ScoreRecorder appends finished sessions to a history.
type ScoreRecorder interface {
	SaveScore(variant string, score int) error
}

// Tracker keeps the score in the scoreboard label and the high score in the store.
type Tracker struct {
	board  scene.Label
	high   scene.Label // Optional mirror of the persisted high score
	store  HighScoreStore
	key    string
	logger *log.Logger
}

// NewTracker returns a tracker over board. high may be nil.
func NewTracker(board, high scene.Label, store HighScoreStore, key string, logger *log.Logger) *Tracker {
	return &Tracker{
		board:  board,
		high:   high,
		store:  store,
		key:    key,
		logger: logger,
	}
}

// Reset shows a zero score and the persisted high score.
func (t *Tracker) Reset() {
	t.board.SetText("0")
	if t.high == nil || t.store == nil {
		return
	}
	best, err := t.store.Get(t.key, 0)
	if err != nil {
		t.logger.Warn("cannot read high score", "key", t.key, "err", err)
		return
	}
	t.high.SetText(strconv.Itoa(best))
}

// Score parses the scoreboard text.
func (t *Tracker) Score() (int, error) {
	text := strings.TrimSpace(t.board.Text())
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("game: scoreboard text %q: %w", text, err)
	}
	return n, nil
}

// Increment adds one to the scoreboard. When the text does not parse the
// label is left alone and ok is false.
func (t *Tracker) Increment() (score int, ok bool) {
	cur, err := t.Score()
	if err != nil {
		t.logger.Warn("score unchanged", "err", err)
		return 0, false
	}
	cur++
	t.board.SetText(strconv.Itoa(cur))
	return cur, true
}

// Finish records the final score and persists it when it beats the high score.
// It returns the final score and whether the high score changed.
func (t *Tracker) Finish() (final int, improved bool) {
	final, err := t.Score()
	if err != nil {
		t.logger.Warn("final score unreadable", "err", err)
		return 0, false
	}
	if t.store == nil {
		return final, false
	}

	best := 0
	if cs, ok := t.store.(conditionalStore); ok {
		improved, err = cs.SetIfGreater(t.key, final)
		if err != nil {
			t.logger.Warn("cannot update high score", "key", t.key, "err", err)
			return final, false
		}
		best, err = t.store.Get(t.key, final)
		if err != nil {
			best = final
		}
	} else {
		best, err = t.store.Get(t.key, 0)
		if err != nil {
			t.logger.Warn("cannot read high score", "key", t.key, "err", err)
			return final, false
		}
		if final > best {
			if err := t.store.Set(t.key, final); err != nil {
				t.logger.Warn("cannot update high score", "key", t.key, "err", err)
				return final, false
			}
			best, improved = final, true
		}
	}

	if t.high != nil {
		t.high.SetText(strconv.Itoa(best))
	}
	if improved {
		t.logger.Info("new high score", "score", final)
	}
	return final, improved
}
