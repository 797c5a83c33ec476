package systems

import (
	"testing"

	"rogue-server/internal/domain"
)

// mapView - тестовая реализация WorldView поверх ASCII-карты:
// # стена, все остальное - пол. Персонажи регистрируются явно.
type mapView struct {
	size   domain.Size
	walls  map[domain.Coord]bool
	coords map[domain.Entity]domain.Coord
	npcs   map[domain.Coord]bool
	dead   map[domain.Entity]bool
}

func newMapView(t *testing.T, rows []string) *mapView {
	t.Helper()
	v := &mapView{
		size:   domain.Size{Width: len(rows[0]), Height: len(rows)},
		walls:  map[domain.Coord]bool{},
		coords: map[domain.Entity]domain.Coord{},
		npcs:   map[domain.Coord]bool{},
		dead:   map[domain.Entity]bool{},
	}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				v.walls[domain.Coord{X: x, Y: y}] = true
			}
		}
	}
	return v
}

func (v *mapView) place(a *domain.EntityAllocator, c domain.Coord, isNpc bool) domain.Entity {
	e := a.Alloc()
	v.coords[e] = c
	if isNpc {
		v.npcs[c] = true
	}
	return e
}

func (v *mapView) Size() domain.Size { return v.size }

func (v *mapView) OpacityAt(c domain.Coord) uint8 {
	if v.walls[c] {
		return 255
	}
	return 0
}

func (v *mapView) CanNpcEnter(c domain.Coord) bool {
	return c.IsValid(v.size) && !v.walls[c] && !v.npcs[c]
}

func (v *mapView) CanNpcEnterIgnoringOtherNpcs(c domain.Coord) bool {
	return c.IsValid(v.size) && !v.walls[c]
}

func (v *mapView) CanNpcSeeThroughCell(c domain.Coord) bool {
	return c.IsValid(v.size) && !v.walls[c]
}

func (v *mapView) EntityCoord(e domain.Entity) (domain.Coord, bool) {
	c, ok := v.coords[e]
	return c, ok
}

func (v *mapView) IsLivingCharacter(e domain.Entity) bool {
	_, placed := v.coords[e]
	return placed && !v.dead[e]
}
