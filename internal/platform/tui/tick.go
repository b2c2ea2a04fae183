// Package tui hosts a game in a Bubble Tea program: it drives display
// frames, maps keys to actions, styles the screen buffer and shows the run
// history.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one display frame. Games run their own fixed-step simulation
// inside Step, so the display rate only bounds input latency and redraws.
type TickMsg time.Time

// tickCmd schedules the next display frame at fps frames per second.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
