package domain

import (
	"errors"
	"testing"
)

func testGrid() (*SpatialGrid, *EntityAllocator) {
	return NewSpatialGrid(Size{Width: 5, Height: 5}), NewEntityAllocator()
}

func TestSpatialGrid_PlaceAndMove(t *testing.T) {
	g, a := testGrid()
	e := a.Alloc()

	loc := Location{Coord: Coord{X: 1, Y: 1}, Layer: LayerCharacter}
	if err := g.Update(e, loc); err != nil {
		t.Fatal(err)
	}

	if c, ok := g.CoordOf(e); !ok || c != loc.Coord {
		t.Errorf("CoordOf = (%v, %t), want (%v, true)", c, ok, loc.Coord)
	}
	if l, ok := g.LayerOf(e); !ok || l != LayerCharacter {
		t.Errorf("LayerOf = (%v, %t), want (character, true)", l, ok)
	}

	// Перемещение освобождает старую клетку
	if err := g.UpdateCoord(e, Coord{X: 2, Y: 1}); err != nil {
		t.Fatal(err)
	}
	if g.LayersAtChecked(Coord{X: 1, Y: 1}).Character != (Entity{}) {
		t.Error("old cell should be vacated after move")
	}
	if g.LayersAtChecked(Coord{X: 2, Y: 1}).Character != e {
		t.Error("new cell should hold the entity")
	}
}

func TestSpatialGrid_OccupiedConflict(t *testing.T) {
	g, a := testGrid()
	e1, e2 := a.Alloc(), a.Alloc()

	loc := Location{Coord: Coord{X: 3, Y: 3}, Layer: LayerObject}
	if err := g.Update(e1, loc); err != nil {
		t.Fatal(err)
	}

	err := g.Update(e2, loc)
	var occ *OccupiedError
	if !errors.As(err, &occ) {
		t.Fatalf("expected *OccupiedError, got %v", err)
	}
	if occ.Occupant != e1 {
		t.Errorf("conflict must report the occupant, got %v", occ.Occupant)
	}

	// Неудачное размещение ничего не меняет
	if _, ok := g.CoordOf(e2); ok {
		t.Error("failed update must not place the entity")
	}
	if g.LayersAtChecked(loc.Coord).Object != e1 {
		t.Error("occupant must keep its cell")
	}
}

func TestSpatialGrid_IndependentLayers(t *testing.T) {
	g, a := testGrid()
	c := Coord{X: 2, Y: 2}

	// Все пять планов одной клетки занимаются независимо
	for _, layer := range []Layer{LayerFloor, LayerCharacter, LayerObject, LayerFeature, LayerProjectile} {
		if err := g.Update(a.Alloc(), Location{Coord: c, Layer: layer}); err != nil {
			t.Fatalf("layer %s: %v", layer, err)
		}
	}
}

func TestSpatialGrid_UpdateLayerConflict(t *testing.T) {
	g, a := testGrid()
	c := Coord{X: 1, Y: 2}

	character := a.Alloc()
	corpse := a.Alloc()
	g.Update(character, Location{Coord: c, Layer: LayerCharacter})
	g.Update(corpse, Location{Coord: c, Layer: LayerObject})

	// Смена плана на занятый сообщает владельца
	err := g.UpdateLayer(character, LayerObject)
	var occ *OccupiedError
	if !errors.As(err, &occ) || occ.Occupant != corpse {
		t.Fatalf("expected conflict with %v, got %v", corpse, err)
	}

	// После вытеснения владельца повтор обязан пройти
	g.Remove(corpse)
	if err := g.UpdateLayer(character, LayerObject); err != nil {
		t.Fatalf("retry after eviction failed: %v", err)
	}
	if g.LayersAtChecked(c).Character != (Entity{}) {
		t.Error("character layer should be vacated after layer change")
	}
}

func TestSpatialGrid_Remove(t *testing.T) {
	g, a := testGrid()
	e := a.Alloc()
	loc := Location{Coord: Coord{X: 4, Y: 0}, Layer: LayerObject}
	g.Update(e, loc)

	g.Remove(e)
	if _, ok := g.CoordOf(e); ok {
		t.Error("removed entity must not be placed")
	}
	if g.LayersAtChecked(loc.Coord).Object != (Entity{}) {
		t.Error("cell must be vacated")
	}

	// Повторное удаление - no-op
	g.Remove(e)
}

func TestSpatialGrid_LayersAtOutOfBounds(t *testing.T) {
	g, _ := testGrid()
	if g.LayersAt(Coord{X: -1, Y: 0}) != nil {
		t.Error("expected nil for out-of-bounds coord")
	}
	if g.LayersAt(Coord{X: 0, Y: 5}) != nil {
		t.Error("expected nil for out-of-bounds coord")
	}
	if g.LayersAt(Coord{X: 0, Y: 0}) == nil {
		t.Error("expected non-nil for valid coord")
	}
}

func TestSpatialGrid_UpdateUnplacedPanics(t *testing.T) {
	g, a := testGrid()
	e := a.Alloc()

	defer func() {
		if recover() == nil {
			t.Error("UpdateCoord on unplaced entity must panic")
		}
	}()
	g.UpdateCoord(e, Coord{X: 1, Y: 1})
}
