package storage

import (
	"sync"
	"testing"
)

func TestMemoryKV(t *testing.T) {
	m := NewMemory()

	if v, _ := m.Get("HighestScore", 4); v != 4 {
		t.Errorf("Get() = %d, expected 4", v)
	}
	if v, _ := m.Get("HighestScore", 9); v != 4 {
		t.Errorf("Get() = %d, expected stored 4", v)
	}

	if ok, _ := m.SetIfGreater("HighestScore", 3); ok {
		t.Error("SetIfGreater(3) = true, expected false")
	}
	if ok, _ := m.SetIfGreater("HighestScore", 8); !ok {
		t.Error("SetIfGreater(8) = false, expected true")
	}
	if err := m.Set("HighestScore", 1); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get("HighestScore", 0); v != 1 {
		t.Errorf("Get() = %d, expected 1", v)
	}
}

func TestMemoryConcurrent(t *testing.T) {
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			m.SetIfGreater("k", v)
			m.SaveScore("tiered", v)
		}(i)
	}
	wg.Wait()

	if v, _ := m.Get("k", 0); v != 50 {
		t.Errorf("Get() = %d, expected 50", v)
	}
	top, _ := m.TopScores("tiered", 3)
	if len(top) != 3 || top[0].Score != 50 || top[2].Score != 48 {
		t.Errorf("TopScores() = %v, expected 50 49 48", top)
	}
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory()
	m.SaveScore("classic", 5)
	m.SaveScore("tiered", 7)
	m.Set("HighestScore", 7)

	if err := m.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() error = %v", err)
	}
	if got, _ := m.TopScores("classic", 10); len(got) != 0 {
		t.Errorf("TopScores(classic) = %v, expected none", got)
	}
	if got, _ := m.TopScores("tiered", 10); len(got) != 1 {
		t.Errorf("TopScores(tiered) = %v, expected one entry", got)
	}

	if err := m.Delete("HighestScore"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if v, _ := m.Get("HighestScore", 0); v != 0 {
		t.Errorf("Get() after Delete = %d, expected 0", v)
	}
}
