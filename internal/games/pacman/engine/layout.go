package engine

import "github.com/vovakirdan/tui-pacman/internal/core"

// Spawn describes where an actor starts and how it is identified.
type Spawn struct {
	Name  string
	Color core.Color
	Pos   Vec
	Dir   Direction
	Speed float64 // used when the tuning does not override it
}

// Layout is a static level: the maze rows plus actor origins.
type Layout struct {
	Rows   []string
	Player Spawn
	Ghosts []Spawn
}

// ClassicLayout is the 19x19 maze. Rows 7, 9 and 11 are tunnels.
var ClassicLayout = Layout{
	Rows: []string{
		"###################",
		"#........#........#",
		"#o##.###.#.###.##o#",
		"#.................#",
		"#.##.#.#####.#.##.#",
		"#....#...#...#....#",
		"####.### # ###.####",
		"   #.#       #.#   ",
		"####.# ## ## #.####",
		"    .  #   #  .    ",
		"####.# ##### #.####",
		"   #.#       #.#   ",
		"####.# ##### #.####",
		"#........#........#",
		"#.##.###.#.###.##.#",
		"#o.#..... .....#.o#",
		"##.#.#.#####.#.#.##",
		"#....#...#...#....#",
		"###################",
	},
	Player: Spawn{Name: "player", Color: core.ColorBrightYellow, Pos: V(9, 15), Dir: DirRight},
	Ghosts: []Spawn{
		{Name: "blinky", Color: core.ColorRed, Pos: V(9, 9), Dir: DirRight, Speed: 0.06},
		{Name: "inky", Color: core.ColorCyan, Pos: V(8, 9), Dir: DirLeft, Speed: 0.055},
		{Name: "pinky", Color: core.ColorBrightMagenta, Pos: V(10, 9), Dir: DirRight, Speed: 0.065},
		{Name: "clyde", Color: core.ColorOrange, Pos: V(9, 8), Dir: DirUp, Speed: 0.06},
	},
}
