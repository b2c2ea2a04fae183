// Package engine implements the maze-chase simulation: a tile maze, a
// tolerant collision oracle, continuous grid motion for the player and the
// ghosts, encounter resolution and a fixed-timestep scheduler.
//
// The package has no dependencies beyond the arcade core types. It never
// blocks, never logs and never reads the clock on its own; callers feed it
// timestamps or elapsed durations.
package engine

import (
	"errors"
	"fmt"
)

// Tile classifies a maze cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileItem
	TilePowerItem

	// TileOutOfBounds is returned for queries outside the maze.
	TileOutOfBounds
)

// IsItem reports whether the tile holds something collectable.
func (t Tile) IsItem() bool {
	return t == TileItem || t == TilePowerItem
}

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileItem:
		return "item"
	case TilePowerItem:
		return "power"
	default:
		return "out-of-bounds"
	}
}

// Layout characters.
const (
	glyphWall  = '#'
	glyphItem  = '.'
	glyphPower = 'o'
	glyphEmpty = ' '
)

// Layout construction errors.
var (
	ErrEmptyLayout  = errors.New("engine: empty maze layout")
	ErrRaggedLayout = errors.New("engine: maze rows differ in width")
	ErrUnknownTile  = errors.New("engine: unknown maze glyph")
)

// Maze is the static tile grid. Cells are stored in row-major order:
// index = row*w + col. Only item cells ever change, and only to empty.
type Maze struct {
	w, h    int
	cells   []Tile
	initial []Tile
	items   int
}

// NewMaze builds a maze from text rows: '#' wall, '.' item, 'o' power item,
// ' ' empty. All rows must have the same width.
func NewMaze(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	w := len(rows[0])
	m := &Maze{
		w:     w,
		h:     len(rows),
		cells: make([]Tile, 0, w*len(rows)),
	}

	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			var t Tile
			switch row[x] {
			case glyphWall:
				t = TileWall
			case glyphItem:
				t = TileItem
			case glyphPower:
				t = TilePowerItem
			case glyphEmpty:
				t = TileEmpty
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownTile, row[x], x, y)
			}
			m.cells = append(m.cells, t)
		}
	}

	m.initial = make([]Tile, len(m.cells))
	copy(m.initial, m.cells)
	m.items = m.countItems()
	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.w
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.h
}

// InBounds reports whether (col, row) is inside the maze.
func (m *Maze) InBounds(col, row int) bool {
	return col >= 0 && col < m.w && row >= 0 && row < m.h
}

// CellAt returns the tile at (col, row), or TileOutOfBounds.
func (m *Maze) CellAt(col, row int) Tile {
	if !m.InBounds(col, row) {
		return TileOutOfBounds
	}
	return m.cells[row*m.w+col]
}

// IsWall reports whether (col, row) is a wall. Out-of-bounds is not a wall;
// callers that need "blocked" semantics check bounds themselves.
func (m *Maze) IsWall(col, row int) bool {
	return m.CellAt(col, row) == TileWall
}

// ConsumeItem empties an item or power-item cell and returns what was there.
// Consuming an empty, wall or out-of-bounds cell returns (TileEmpty, false).
func (m *Maze) ConsumeItem(col, row int) (Tile, bool) {
	t := m.CellAt(col, row)
	if !t.IsItem() {
		return TileEmpty, false
	}
	m.cells[row*m.w+col] = TileEmpty
	m.items--
	return t, true
}

// CountRemainingItems returns how many item and power-item cells are left.
func (m *Maze) CountRemainingItems() int {
	return m.items
}

// Reset restores every cell to its construction-time tag.
func (m *Maze) Reset() {
	copy(m.cells, m.initial)
	m.items = m.countItems()
}

// IsTunnelRow reports whether both edge cells of the row are open, so actors
// leaving one side reappear on the other.
func (m *Maze) IsTunnelRow(row int) bool {
	if row < 0 || row >= m.h {
		return false
	}
	return m.CellAt(0, row) != TileWall && m.CellAt(m.w-1, row) != TileWall
}

// Tiles returns a row-major copy of the current cells.
func (m *Maze) Tiles() []Tile {
	out := make([]Tile, len(m.cells))
	copy(out, m.cells)
	return out
}

func (m *Maze) countItems() int {
	n := 0
	for _, t := range m.cells {
		if t.IsItem() {
			n++
		}
	}
	return n
}
