package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

// FromConfig turns a tuning file into the classic layout and engine tuning.
// Ghost entries are matched to the layout's ghosts by position; extra
// entries are ignored and missing ones keep the layout defaults.
func FromConfig(c config.PacmanConfig) (engine.Layout, engine.Tuning, error) {
	t := engine.DefaultTuning()
	t.PlayerSpeed = c.Player.Speed
	t.MouthSpeed = c.Player.MouthSpeed
	t.ItemScore = c.Scoring.Item
	t.PowerItemScore = c.Scoring.PowerItem
	t.CaptureBonus = c.Scoring.GhostCapture
	t.Lives = c.Gameplay.Lives
	t.PowerDuration = c.Gameplay.PowerDuration
	t.Step = c.Timing.Step()
	t.MaxTicksPerFrame = c.Timing.MaxTicksPerFrame

	layout := engine.ClassicLayout
	layout.Ghosts = append([]engine.Spawn(nil), engine.ClassicLayout.Ghosts...)

	for i, gc := range c.Ghosts {
		if i >= len(layout.Ghosts) {
			break
		}
		if gc.Name != "" {
			layout.Ghosts[i].Name = gc.Name
		}
		if gc.Color != "" {
			col, err := core.ParseColor(gc.Color)
			if err != nil {
				return engine.Layout{}, engine.Tuning{}, fmt.Errorf("pacman: ghosts[%d]: %w", i, err)
			}
			layout.Ghosts[i].Color = col
		}
		t.GhostSpeeds = append(t.GhostSpeeds, gc.Speed)
	}
	return layout, t, nil
}
