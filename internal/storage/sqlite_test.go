package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreGetInitializesDefault(t *testing.T) {
	store := openTestStore(t)

	v, err := store.Get("HighestScore", 0)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != 0 {
		t.Errorf("Get() = %d, expected 0", v)
	}

	// The stored default wins over later defaults.
	v, err = store.Get("HighestScore", 99)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != 0 {
		t.Errorf("Get() = %d, expected stored 0", v)
	}
}

func TestStoreSet(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("HighestScore", 12); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("HighestScore", 7); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if v, _ := store.Get("HighestScore", 0); v != 7 {
		t.Errorf("Get() = %d, expected 7", v)
	}

	if err := store.Delete("HighestScore"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if v, _ := store.Get("HighestScore", 3); v != 3 {
		t.Errorf("Get() after Delete = %d, expected 3", v)
	}
}

func TestStoreSetIfGreater(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		value   int
		written bool
		stored  int
	}{
		{5, true, 5},
		{5, false, 5},
		{3, false, 5},
		{20, true, 20},
	}

	for _, tt := range tests {
		written, err := store.SetIfGreater("HighestScore", tt.value)
		if err != nil {
			t.Fatalf("SetIfGreater(%d) failed: %v", tt.value, err)
		}
		if written != tt.written {
			t.Errorf("SetIfGreater(%d) = %v, expected %v", tt.value, written, tt.written)
		}
		if v, _ := store.Get("HighestScore", 0); v != tt.stored {
			t.Errorf("after SetIfGreater(%d): Get() = %d, expected %d", tt.value, v, tt.stored)
		}
	}
}

func TestStoreSetIfGreaterConcurrent(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			if _, err := store.SetIfGreater("HighestScore", v); err != nil {
				t.Errorf("SetIfGreater(%d) failed: %v", v, err)
			}
		}(i)
	}
	wg.Wait()

	if v, _ := store.Get("HighestScore", 0); v != 20 {
		t.Errorf("Get() = %d, expected 20", v)
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 5, 30} {
		if err := store.SaveScore("tiered", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if err := store.SaveScore("classic", 99); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tiered", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("len(TopScores()) = %d, expected 2", len(scores))
	}
	if scores[0].Score != 30 || scores[1].Score != 10 {
		t.Errorf("TopScores() = %v, expected [30 10]", scores)
	}
	if scores[0].Variant != "tiered" {
		t.Errorf("Variant = %q, expected tiered", scores[0].Variant)
	}

	high, err := store.HighScore("tiered")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("HighScore() = %d, expected 30", high)
	}

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if st := stats["tiered"]; st == nil || st.GamesCount != 3 || st.HighScore != 30 || st.AvgScore != 15 {
		t.Errorf("AllStats()[tiered] = %+v, expected 3 games, high 30, avg 15", st)
	}

	if err := store.ClearScores("tiered"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ := store.HighScore("tiered"); high != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", high)
	}
	if high, _ := store.HighScore("classic"); high != 99 {
		t.Errorf("HighScore(classic) = %d, expected 99", high)
	}
}
