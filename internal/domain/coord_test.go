package domain

import "testing"

func TestCoord_IsValid(t *testing.T) {
	s := Size{Width: 3, Height: 2}

	valid := []Coord{{0, 0}, {2, 0}, {0, 1}, {2, 1}}
	for _, c := range valid {
		if !c.IsValid(s) {
			t.Errorf("%v must be valid in %v", c, s)
		}
	}

	invalid := []Coord{{-1, 0}, {3, 0}, {0, -1}, {0, 2}}
	for _, c := range invalid {
		if c.IsValid(s) {
			t.Errorf("%v must be invalid in %v", c, s)
		}
	}
}

func TestSize_Index(t *testing.T) {
	s := Size{Width: 4, Height: 3}
	if got := s.Index(Coord{X: 2, Y: 1}); got != 6 {
		t.Errorf("Index = %d, want 6", got)
	}
	if s.Count() != 12 {
		t.Errorf("Count = %d, want 12", s.Count())
	}
}

func TestCardinalDirection_Coord(t *testing.T) {
	// Ось Y растет вниз
	if North.Coord() != (Coord{X: 0, Y: -1}) || South.Coord() != (Coord{X: 0, Y: 1}) {
		t.Error("north/south must move along the downward Y axis")
	}
	if East.Coord() != (Coord{X: 1, Y: 0}) || West.Coord() != (Coord{X: -1, Y: 0}) {
		t.Error("east/west must move along the X axis")
	}

	total := Coord{}
	for _, d := range []CardinalDirection{North, East, South, West} {
		total = total.Add(d.Coord())
	}
	if total != (Coord{}) {
		t.Errorf("the four directions must cancel out, got %v", total)
	}
}
