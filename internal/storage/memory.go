package storage

import (
	"sort"
	"sync"
	"time"
)

// Memory is an in-process store used when no database is available.
// It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	values map[string]int
	scores []ScoreEntry
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

// Get returns the value under key, storing def first if absent.
func (m *Memory) Get(key string, def int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		m.values[key] = def
		return def, nil
	}
	return v, nil
}

// Set stores value under key.
func (m *Memory) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// SetIfGreater stores value only if it exceeds the current value.
func (m *Memory) SetIfGreater(key string, value int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if value <= m.values[key] {
		if _, ok := m.values[key]; !ok {
			m.values[key] = 0
		}
		return false, nil
	}
	m.values[key] = value
	return true, nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// SaveScore appends a finished session.
func (m *Memory) SaveScore(variant string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scores = append(m.scores, ScoreEntry{
		ID:        int64(len(m.scores) + 1),
		Variant:   variant,
		Score:     score,
		CreatedAt: time.Now(),
	})
	return nil
}

// TopScores returns the best scores of variant, highest first.
func (m *Memory) TopScores(variant string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	var out []ScoreEntry
	for _, e := range m.scores {
		if e.Variant == variant {
			out = append(out, e)
		}
	}
	m.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ClearScores drops the history of variant.
func (m *Memory) ClearScores(variant string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.scores[:0]
	for _, e := range m.scores {
		if e.Variant != variant {
			kept = append(kept, e)
		}
	}
	m.scores = kept
	return nil
}
