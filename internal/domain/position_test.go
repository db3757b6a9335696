package domain

import "testing"

func TestDirection_NextPosition(t *testing.T) {
	origin := Position{X: 2, Y: 2}

	tests := []struct {
		dir  Direction
		want Position
	}{
		{North, Position{X: 2, Y: 1}},
		{South, Position{X: 2, Y: 3}},
		{East, Position{X: 3, Y: 2}},
		{West, Position{X: 1, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := tt.dir.NextPosition(origin)
			if got != tt.want {
				t.Errorf("%v.NextPosition(%v) = %v, want %v", tt.dir, origin, got, tt.want)
			}
			// Исходная позиция не должна измениться
			if origin != (Position{X: 2, Y: 2}) {
				t.Fatalf("NextPosition mutated its input: %v", origin)
			}
		})
	}
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range Directions() {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
		back := d.Opposite().NextPosition(d.NextPosition(Position{X: 5, Y: 5}))
		if back != (Position{X: 5, Y: 5}) {
			t.Errorf("%v then %v should return to start, got %v", d, d.Opposite(), back)
		}
	}
}

func TestPosition_Inside(t *testing.T) {
	dim := Dimension{Width: 3, Height: 2}

	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{X: 0, Y: 0}, true},
		{Position{X: 2, Y: 1}, true},
		{Position{X: 3, Y: 1}, false},
		{Position{X: 0, Y: 2}, false},
		{Position{X: -1, Y: 0}, false},
	}

	for _, tt := range tests {
		if got := tt.pos.Inside(dim); got != tt.want {
			t.Errorf("%v.Inside(%v) = %v, want %v", tt.pos, dim, got, tt.want)
		}
	}
}
