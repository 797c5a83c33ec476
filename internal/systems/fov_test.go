package systems

import (
	"testing"

	"rogue-server/internal/domain"
)

func TestComputeVisibleCoords_OpenRoom(t *testing.T) {
	v := newMapView(t, []string{
		".....",
		".....",
		".....",
	})
	origin := domain.Coord{X: 2, Y: 1}

	visible := ComputeVisibleCoords(v, origin, 8)

	if !visible[origin] {
		t.Error("origin must always be visible")
	}
	// Маленькая открытая комната видна целиком
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if !visible[domain.Coord{X: x, Y: y}] {
				t.Errorf("cell (%d,%d) must be visible in an open room", x, y)
			}
		}
	}
}

func TestComputeVisibleCoords_WallCastsShadow(t *testing.T) {
	v := newMapView(t, []string{
		".......",
		"..#....",
		".......",
	})
	origin := domain.Coord{X: 0, Y: 1}

	visible := ComputeVisibleCoords(v, origin, 8)

	if !visible[domain.Coord{X: 2, Y: 1}] {
		t.Error("the wall itself must be visible")
	}
	// Клетки строго за стеной затенены
	for x := 3; x < 7; x++ {
		if visible[domain.Coord{X: x, Y: 1}] {
			t.Errorf("cell (%d,1) behind the wall must be shadowed", x)
		}
	}
	// Соседние ряды остаются видимыми
	if !visible[domain.Coord{X: 3, Y: 0}] {
		t.Error("cell (3,0) beside the shadow must stay visible")
	}
}

func TestComputeVisibleCoords_RadiusLimit(t *testing.T) {
	v := newMapView(t, []string{
		"............",
	})
	origin := domain.Coord{X: 0, Y: 0}
	radius := 5

	visible := ComputeVisibleCoords(v, origin, radius)

	if !visible[domain.Coord{X: radius - 1, Y: 0}] {
		t.Errorf("cell inside the radius must be visible")
	}
	if visible[domain.Coord{X: radius + 1, Y: 0}] {
		t.Error("cell beyond the radius must not be visible")
	}
}

func TestComputeVisibleCoords_BlindObserver(t *testing.T) {
	v := newMapView(t, []string{"..."})

	visible := ComputeVisibleCoords(v, domain.Coord{X: 1, Y: 0}, 0)

	if len(visible) != 0 {
		t.Errorf("blind observer must see nothing, got %d cells", len(visible))
	}
}
