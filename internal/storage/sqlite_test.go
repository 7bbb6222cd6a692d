package storage

import (
	"errors"
	"os"
	"path/filepath"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got %v", err)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}
}

func TestStoreKeepsOnlyBest(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		score     int
		newRecord bool
		best      int
	}{
		{100, true, 100},
		{300, true, 300},
		{200, false, 300},
		{300, false, 300},
		{301, true, 301},
	}
	for _, s := range steps {
		got, err := store.SaveScore("tetris", s.score)
		if err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", s.score, err)
		}
		if got != s.newRecord {
			t.Errorf("SaveScore(%d) new record = %v, want %v", s.score, got, s.newRecord)
		}

		high, err := store.HighScore("tetris")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high != s.best {
			t.Errorf("after %d: high score = %d, want %d", s.score, high, s.best)
		}
	}
}

func TestStoreIgnoresZeroScore(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveScore("tetris", 0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if saved {
		t.Error("zero score should not count as a record")
	}

	entries, _ := store.AllHighScores()
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestStoreModesAreSeparate(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris_endless", 900)
	store.SaveScore("tetris", 500)

	entries, err := store.AllHighScores()
	if err != nil {
		t.Fatalf("AllHighScores() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	// Ordered by game ID
	if entries[0].GameID != "tetris" || entries[0].Score != 500 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].GameID != "tetris_endless" || entries[1].Score != 900 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if entries[0].UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 200)
	store.SaveScore("tetris_endless", 300)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if high, _ := store.HighScore("tetris"); high != 0 {
		t.Errorf("Expected cleared score to be 0, got %d", high)
	}
	if high, _ := store.HighScore("tetris_endless"); high != 300 {
		t.Errorf("Endless score should not be affected, got %d", high)
	}

	// A lower score is a record again after clearing
	if saved, _ := store.SaveScore("tetris", 50); !saved {
		t.Error("Expected new record after clear")
	}
}

func TestStoreNotOpen(t *testing.T) {
	var store *Store

	if _, err := store.HighScore("tetris"); !errors.Is(err, ErrNotOpen) {
		t.Errorf("HighScore() on nil store: got %v, want ErrNotOpen", err)
	}
	if _, err := store.SaveScore("tetris", 10); !errors.Is(err, ErrNotOpen) {
		t.Errorf("SaveScore() on nil store: got %v, want ErrNotOpen", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() on nil store: %v", err)
	}

	closed := openTestStore(t)
	closed.Close()
	if _, err := closed.AllHighScores(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("AllHighScores() after Close: got %v, want ErrNotOpen", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.plastic-tetris/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	want := filepath.Join(home, ".plastic-tetris", "scores.db")
	if got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
