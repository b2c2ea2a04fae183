package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, "stub", "Stub", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := next.(MenuModel).cursor; got != len(menuItems)-1 {
		t.Errorf("cursor = %d, want %d", got, len(menuItems)-1)
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command after select")
	}
	if got := next.(MenuModel).Choice(); got != ChoiceScores {
		t.Errorf("Choice() = %v, want ChoiceScores", got)
	}
}

func TestMenuShortcuts(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuChoice
	}{
		{"enter plays", tea.KeyMsg{Type: tea.KeyEnter}, ChoicePlay},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, ChoiceScores},
		{"q quits", runeKey('q'), ChoiceQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, ChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, "stub", "Stub", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
			next, _ := m.Update(tt.msg)
			if got := next.(MenuModel).Choice(); got != tt.want {
				t.Errorf("Choice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("stub", 4200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, "stub", "Stub", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
	view := m.View()
	if !strings.Contains(view, "Best score: 4200") {
		t.Errorf("view missing best score:\n%s", view)
	}
	if !strings.Contains(view, "S T U B") {
		t.Errorf("view missing title:\n%s", view)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() = %q", got)
	}
}
