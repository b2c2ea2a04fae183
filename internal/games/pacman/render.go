package pacman

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

// Each maze tile is drawn two cells wide so the board looks square.
const cellW = 2

// Glyphs.
const (
	wallGlyph   = '█'
	itemGlyph   = '·'
	powerGlyph  = '●'
	ghostGlyph  = 'ᗣ'
	closedGlyph = 'O'
	lifeGlyph   = '♥'
)

// frightBlinkMs is how much power time is left when frightened ghosts start
// flashing.
const frightBlinkMs = 2000

// Render draws the HUD, the maze, the actors and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.eng.Snapshot()

	boardW, boardH := s.Width*cellW, s.Height
	needW, needH := boardW, boardH+2
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", needW, needH), core.ColorRed)
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := (dst.Height()-needH)/2 + 2

	drawHUD(dst, s, ox, oy-2, boardW)
	drawMaze(dst, s, ox, oy)
	drawGhosts(dst, s, ox, oy)
	drawPlayer(dst, s, ox, oy)

	if g.err != nil {
		dst.DrawTextColored(ox, oy-1, truncate("config: "+g.err.Error(), boardW), core.ColorRed)
	}

	switch {
	case s.Outcome == engine.OutcomeWon:
		drawOverlay(dst, core.ColorBrightGreen, "YOU WIN!", fmt.Sprintf("Score %d", s.Score), "R restart  Q quit")
	case s.Outcome == engine.OutcomeLost:
		drawOverlay(dst, core.ColorBrightRed, "GAME OVER", fmt.Sprintf("Score %d", s.Score), "R restart  Q quit")
	case s.Paused:
		drawOverlay(dst, core.ColorYellow, "PAUSED", "P resume")
	case !g.started:
		drawOverlay(dst, core.ColorBrightYellow, "READY!", "Arrows/WASD/HJKL to move")
	}
}

func drawHUD(dst *core.Screen, s engine.Snapshot, x, y, w int) {
	dst.DrawTextColored(x, y, fmt.Sprintf("SCORE %d", s.Score), core.ColorBrightWhite)

	lives := strings.Repeat(string(lifeGlyph), core.Max(s.Lives, 0))
	right := fmt.Sprintf("ITEMS %d  %s", s.ItemsRemaining, lives)
	dst.DrawTextColored(x+w-runeLen(right), y, right, core.ColorBrightYellow)

	if s.PowerActive {
		power := fmt.Sprintf("POWER %.1fs", s.PowerRemaining.Seconds())
		dst.DrawTextColored(x+(w-runeLen(power))/2, y, power, core.ColorBrightCyan)
	}
}

func drawMaze(dst *core.Screen, s engine.Snapshot, ox, oy int) {
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			x, y := ox+col*cellW, oy+row
			switch s.TileAt(col, row) {
			case engine.TileWall:
				dst.SetColored(x, y, wallGlyph, core.ColorBlue)
				dst.SetColored(x+1, y, wallGlyph, core.ColorBlue)
			case engine.TileItem:
				dst.SetColored(x, y, itemGlyph, core.ColorGray)
			case engine.TilePowerItem:
				dst.SetColored(x, y, powerGlyph, core.ColorBrightWhite)
			}
		}
	}
}

func drawGhosts(dst *core.Screen, s engine.Snapshot, ox, oy int) {
	for _, gh := range s.Ghosts {
		color := gh.Color
		if gh.Frightened {
			color = core.ColorBlue
			if s.PowerRemaining.Milliseconds() < frightBlinkMs && (s.Tick/15)%2 == 0 {
				color = core.ColorBrightWhite
			}
		}
		x, y := screenPos(s, gh.X, gh.Y)
		dst.SetColored(ox+x, oy+y, ghostGlyph, color)
	}
}

func drawPlayer(dst *core.Screen, s engine.Snapshot, ox, oy int) {
	x, y := screenPos(s, s.Player.X, s.Player.Y)
	dst.SetColored(ox+x, oy+y, playerGlyph(s.Player), core.ColorBrightYellow)
}

// playerGlyph shows the mouth opening toward the heading while the mouth
// phase is in its open half.
func playerGlyph(p engine.PlayerView) rune {
	if p.Mouth < (engine.MouthMax-engine.MouthMin)/2 {
		return closedGlyph
	}
	switch p.Dir {
	case engine.DirUp:
		return 'V'
	case engine.DirDown:
		return 'Λ'
	case engine.DirLeft:
		return '>'
	default:
		return '<'
	}
}

// screenPos maps a continuous grid position to board cell offsets. The
// horizontal axis keeps half-tile resolution.
func screenPos(s engine.Snapshot, x, y float64) (int, int) {
	sx := int(math.Round(x * cellW))
	if sx >= s.Width*cellW {
		sx -= s.Width * cellW
	}
	return sx, int(math.Round(y))
}

func drawOverlay(dst *core.Screen, color core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, runeLen(l))
	}
	box := core.CenteredRect(dst.Width(), dst.Height(), w+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextColored(box.X+2+(w-runeLen(l))/2, box.Y+1+i, l, color)
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
