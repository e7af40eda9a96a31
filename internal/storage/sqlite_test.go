package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{GameID: "neonbreaker", Score: 100, Level: 1},
		{GameID: "neonbreaker", Score: 50, Level: 1},
		{GameID: "neonbreaker", Score: 200, Level: 2},
		{GameID: "other", Score: 500, Level: 9},
	} {
		saved, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if saved.ID == 0 {
			t.Error("SaveRun() did not set ID")
		}
		if _, err := uuid.Parse(saved.RunID); err != nil {
			t.Errorf("RunID %q is not a uuid: %v", saved.RunID, err)
		}
	}

	runs, err := store.TopRuns("neonbreaker", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	expected := []int{200, 100, 50}
	for i, r := range runs {
		if r.Score != expected[i] {
			t.Errorf("runs[%d].Score = %d, expected %d", i, r.Score, expected[i])
		}
	}
	if runs[0].Level != 2 {
		t.Errorf("runs[0].Level = %d, expected 2", runs[0].Level)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	limited, _ := store.TopRuns("neonbreaker", 2)
	if len(limited) != 2 {
		t.Errorf("TopRuns(limit 2) returned %d runs", len(limited))
	}
}

func TestStoreKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	saved, err := store.SaveRun(Run{RunID: id, GameID: "g", Score: 1, Level: 1})
	if err != nil {
		t.Fatal(err)
	}
	if saved.RunID != id {
		t.Errorf("RunID = %q, expected %q", saved.RunID, id)
	}

	if _, err := store.SaveRun(Run{RunID: id, GameID: "g", Score: 2, Level: 1}); err == nil {
		t.Error("duplicate RunID should be rejected")
	}
}

func TestStoreBestRunAndStats(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("neonbreaker")
	if err != nil {
		t.Fatal(err)
	}
	if best != 0 {
		t.Errorf("BestRun() on empty store = %d, expected 0", best)
	}

	store.SaveRun(Run{GameID: "neonbreaker", Score: 120, Level: 2})
	store.SaveRun(Run{GameID: "neonbreaker", Score: 60, Level: 3})

	best, _ = store.BestRun("neonbreaker")
	if best != 120 {
		t.Errorf("BestRun() = %d, expected 120", best)
	}

	stats, err := store.Stats("neonbreaker")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 2 || stats.Best != 120 || stats.AvgScore != 90 || stats.MaxLevel != 3 {
		t.Errorf("Stats() = %+v", stats)
	}

	if err := store.ClearRuns("neonbreaker"); err != nil {
		t.Fatal(err)
	}
	runs, _ := store.TopRuns("neonbreaker", 10)
	if len(runs) != 0 {
		t.Errorf("ClearRuns() left %d runs", len(runs))
	}
}

func TestStoreHighScoreKeepsMaximum(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadHighScore("neonbreaker")
	if err != nil || got != 0 {
		t.Fatalf("LoadHighScore() = %d, %v; expected 0, nil", got, err)
	}

	for _, s := range []int{50, 300, 120} {
		if err := store.SaveHighScore("neonbreaker", s); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s, err)
		}
	}

	got, _ = store.LoadHighScore("neonbreaker")
	if got != 300 {
		t.Errorf("LoadHighScore() = %d, expected 300", got)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	store.SaveHighScore("k", 42)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if got, _ := store.LoadHighScore("k"); got != 42 {
		t.Errorf("LoadHighScore() after reopen = %d, expected 42", got)
	}
}
