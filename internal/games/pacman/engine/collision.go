package engine

import "math"

// CanOccupy reports whether an actor centered at (x, y) is clear of walls.
//
// The containing tile must be inside the maze and not a wall. On top of that,
// a neighbouring tile is sampled on each side where the point has drifted past
// the forgiveness threshold, so an actor may overlap up to ~30% of a tile near
// corners. Sampled tiles outside the maze are ignored, which keeps tunnel
// mouths open.
func (m *Maze) CanOccupy(x, y float64) bool {
	col := int(math.Floor(x))
	row := int(math.Floor(y))
	if !m.InBounds(col, row) || m.cells[row*m.w+col] == TileWall {
		return false
	}

	fracX := x - math.Floor(x)
	fracY := y - math.Floor(y)

	if fracX > EdgeForgivenessHigh && m.IsWall(int(math.Ceil(x)), int(math.Floor(y+0.5))) {
		return false
	}
	if fracX < EdgeForgivenessLow && m.IsWall(int(math.Floor(x)), int(math.Floor(y+0.5))) {
		return false
	}
	if fracY > EdgeForgivenessHigh && m.IsWall(int(math.Floor(x+0.5)), int(math.Ceil(y))) {
		return false
	}
	if fracY < EdgeForgivenessLow && m.IsWall(int(math.Floor(x+0.5)), int(math.Floor(y))) {
		return false
	}
	return true
}

// canOccupyVec is CanOccupy for a Vec.
func (m *Maze) canOccupyVec(p Vec) bool {
	return m.CanOccupy(p.X, p.Y)
}

// wrap applies the horizontal tunnel teleport: x < 0 becomes width-1 and
// x >= width becomes 0. Only tunnel rows wrap; elsewhere the border walls
// keep actors inside anyway.
func (m *Maze) wrap(p Vec) Vec {
	row := int(math.Floor(p.Y))
	if !m.IsTunnelRow(row) {
		return p
	}
	if p.X < 0 {
		p.X = float64(m.w - 1)
	} else if p.X >= float64(m.w) {
		p.X = 0
	}
	return p
}
