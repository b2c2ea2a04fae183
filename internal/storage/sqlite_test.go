package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("pacman", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatal(err)
	}

	scores, err := store.TopScores("pacman", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}

	limited, err := store.TopScores("pacman", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d rows", len(limited))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, expected 0", high)
	}

	store.SaveScore("pacman", 1290)
	store.SaveScore("pacman", 440)

	high, err = store.HighScore("pacman")
	if err != nil {
		t.Fatal(err)
	}
	if high != 1290 {
		t.Errorf("HighScore() = %d, expected 1290", high)
	}
}

func TestRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "pacman", Score: 300, Outcome: "lost", ItemsLeft: 100, Ticks: 2700, Duration: 30 * time.Second},
		{GameID: "pacman", Score: 1890, Outcome: "won", LivesLeft: 2, Ticks: 9000, Duration: 100 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("pacman", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecentRuns returned %d rows, expected 2", len(got))
	}
	if got[0].Outcome != "won" || got[0].Score != 1890 || got[0].LivesLeft != 2 {
		t.Errorf("newest run = %+v", got[0])
	}
	if got[1].Duration != 30*time.Second || got[1].ItemsLeft != 100 || got[1].Ticks != 2700 {
		t.Errorf("oldest run = %+v", got[1])
	}

	if _, err := store.SaveRun(Run{GameID: "pacman"}); err == nil {
		t.Error("SaveRun without outcome should fail")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "pacman", Score: 100, Outcome: "lost", Duration: time.Second})
	store.SaveRun(Run{GameID: "pacman", Score: 300, Outcome: "won", Duration: 2 * time.Second})

	stats, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalTime != 3*time.Second {
		t.Errorf("TotalTime = %v, expected 3s", stats.TotalTime)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacman", 10)
	store.SaveRun(Run{GameID: "pacman", Score: 10, Outcome: "lost"})
	store.SaveScore("other", 20)

	if err := store.ClearScores("pacman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("pacman", 10)
	runs, _ := store.RecentRuns("pacman", 10)
	if len(scores) != 0 || len(runs) != 0 {
		t.Errorf("after clear: %d scores, %d runs", len(scores), len(runs))
	}
	if other, _ := store.TopScores("other", 10); len(other) != 1 {
		t.Error("ClearScores removed another game's scores")
	}
}
