package engine

import "testing"

func TestCanOccupy(t *testing.T) {
	m, err := NewMaze(ClassicLayout.Rows)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"open center", 1, 1, true},
		{"player spawn", 9, 15, true},
		{"wall center", 0, 0, false},
		{"outside left", -0.5, 1, false},
		{"outside bottom", 1, 19.2, false},
		{"right fraction inside forgiveness", 8.4, 1, true},
		{"right edge touches wall", 8.75, 1, false},
		{"bottom edge touches wall", 2, 1.75, false},
		{"left fraction open", 8.2, 1, true},
		{"tunnel mouth ignores outside sample", 18.8, 9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.CanOccupy(tt.x, tt.y); got != tt.want {
				t.Errorf("CanOccupy(%g, %g) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCanOccupyTileCentersMatchWalls(t *testing.T) {
	m, err := NewMaze(ClassicLayout.Rows)
	if err != nil {
		t.Fatal(err)
	}

	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			want := !m.IsWall(col, row)
			if got := m.CanOccupy(float64(col), float64(row)); got != want {
				t.Errorf("CanOccupy(%d,%d) = %v, want %v", col, row, got, want)
			}
		}
	}
}

func TestWrap(t *testing.T) {
	m, err := NewMaze(ClassicLayout.Rows)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in, want Vec
	}{
		{V(-0.08, 9), V(18, 9)},
		{V(19, 9), V(0, 9)},
		{V(19.04, 11), V(0, 11)},
		{V(5, 9), V(5, 9)},
		{V(-0.5, 1), V(-0.5, 1)}, // not a tunnel row
	}
	for _, tt := range tests {
		if got := m.wrap(tt.in); got != tt.want {
			t.Errorf("wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite changed direction", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v: opposite delta mismatch", d)
		}
	}
	if !DirUp.IsVertical() || DirLeft.IsVertical() {
		t.Error("IsVertical wrong")
	}
	if got := V(2.2, 3.7).Round(); got != V(2, 4) {
		t.Errorf("Round = %v", got)
	}
	if col, row := V(-0.1, 2.9).Tile(); col != -1 || row != 2 {
		t.Errorf("Tile = (%d,%d), want (-1,2)", col, row)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if got, err := ParseDirection("LEFT"); err != nil || got != DirLeft {
		t.Errorf("ParseDirection(LEFT) = %v, %v", got, err)
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("ParseDirection(north) should fail")
	}
}
