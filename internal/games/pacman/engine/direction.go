package engine

import (
	"fmt"
	"math"
	"strings"
)

// Direction is a cardinal heading on the grid.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every heading in the order ghosts evaluate them.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit vector for the heading. Y grows downward.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// IsVertical reports whether the heading moves along the Y axis.
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection resolves a heading name as printed by String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// Vec is a continuous position in grid units.
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Step returns v moved dist units along d.
func (v Vec) Step(d Direction, dist float64) Vec {
	dx, dy := d.Delta()
	return Vec{X: v.X + dx*dist, Y: v.Y + dy*dist}
}

// Round snaps both axes to the nearest whole grid coordinate.
func (v Vec) Round() Vec {
	return Vec{X: math.Round(v.X), Y: math.Round(v.Y)}
}

// CenterOffset returns the per-axis distance to the nearest tile center.
func (v Vec) CenterOffset() (dx, dy float64) {
	return math.Abs(v.X - math.Round(v.X)), math.Abs(v.Y - math.Round(v.Y))
}

// DistSq returns the squared Euclidean distance to o.
func (v Vec) DistSq(o Vec) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance to o.
func (v Vec) Dist(o Vec) float64 {
	return math.Sqrt(v.DistSq(o))
}

// Tile returns the grid cell containing v.
func (v Vec) Tile() (col, row int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}
