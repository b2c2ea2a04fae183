package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func seedHistory(t *testing.T, store *storage.Store) {
	t.Helper()
	runs := []storage.Run{
		{GameID: "stub", Score: 300, Outcome: "lost", LivesLeft: 0, ItemsLeft: 40, Duration: 90 * time.Second},
		{GameID: "stub", Score: 2500, Outcome: "won", LivesLeft: 2, ItemsLeft: 0, Duration: 4 * time.Minute},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if _, err := store.SaveScore(r.GameID, r.Score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func TestScoreboardLoadsHistory(t *testing.T) {
	store := openStore(t)
	seedHistory(t, store)

	m := NewScoreboardModel(store, "stub", "Stub", 100, 30)
	if len(m.scores) != 2 || len(m.runs) != 2 {
		t.Fatalf("loaded %d scores and %d runs, want 2 and 2", len(m.scores), len(m.runs))
	}
	if m.scores[0].Score != 2500 {
		t.Errorf("top score = %d, want 2500", m.scores[0].Score)
	}

	line := m.statsLine()
	for _, want := range []string{"Runs 2", "Wins 1", "Best 2500", "Avg 1400", "Played 5:30"} {
		if !strings.Contains(line, want) {
			t.Errorf("stats line %q missing %q", line, want)
		}
	}
}

func TestScoreboardSwitchView(t *testing.T) {
	store := openStore(t)
	seedHistory(t, store)

	m := NewScoreboardModel(store, "stub", "Stub", 100, 30)
	if got := len(m.table.Columns()); got != 3 {
		t.Fatalf("top scores columns = %d, want 3", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecentRuns {
		t.Fatalf("view = %v, want recent runs", m.view)
	}
	if got := len(m.table.Columns()); got != 6 {
		t.Errorf("recent runs columns = %d, want 6", got)
	}
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "won" {
		t.Errorf("unexpected rows: %v", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).view != viewTopScores {
		t.Error("second tab should return to top scores")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "stub", "Stub", 80, 24)

	if got := m.statsLine(); got != "No runs recorded yet" {
		t.Errorf("statsLine() = %q", got)
	}
	if !strings.Contains(m.View(), "Nothing recorded yet") {
		t.Error("empty scoreboard should say nothing is recorded")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "stub", "Stub", 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59*time.Second + 600*time.Millisecond, "1:00"},
		{5*time.Minute + 30*time.Second, "5:30"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
