package domain

import "fmt"

// Layer - один из фиксированных планов занятости клетки. Планы независимы:
// одна клетка может одновременно содержать по одной сущности на каждом плане
// (пол + стена + персонаж на одной координате - нормальная ситуация).
type Layer uint8

const (
	LayerFloor Layer = iota
	LayerCharacter
	LayerObject
	LayerFeature
	LayerProjectile

	layerCount = 5
)

func (l Layer) String() string {
	switch l {
	case LayerFloor:
		return "floor"
	case LayerCharacter:
		return "character"
	case LayerObject:
		return "object"
	case LayerFeature:
		return "feature"
	case LayerProjectile:
		return "projectile"
	}
	return "?"
}

// Location - координата плюс план. Сущность без записи в индексе
// считается не размещенной в пространстве.
type Location struct {
	Coord Coord
	Layer Layer
}

// OccupiedError возвращается, когда целевая пара (координата, план)
// уже занята. Вызывающий обязан разрешить конфликт перед повтором.
type OccupiedError struct {
	Occupant Entity
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("cell is occupied by %s", e.Occupant)
}

// Layers - сущности, занимающие планы одной клетки.
// Нулевая сущность означает свободный план.
type Layers struct {
	Floor      Entity
	Character  Entity
	Object     Entity
	Feature    Entity
	Projectile Entity
}

func (l *Layers) slot(layer Layer) *Entity {
	switch layer {
	case LayerFloor:
		return &l.Floor
	case LayerCharacter:
		return &l.Character
	case LayerObject:
		return &l.Object
	case LayerFeature:
		return &l.Feature
	case LayerProjectile:
		return &l.Projectile
	}
	panic("unknown layer")
}

// SpatialGrid - слоистая сетка занятости: (координата, план) -> сущность,
// плюс обратный индекс "сущность -> ее текущая Location".
// Инвариант: на паре (координата, план) не больше одной сущности.
type SpatialGrid struct {
	size      Size
	cells     []Layers
	locations map[Entity]Location
}

// NewSpatialGrid создает пустую сетку заданного размера.
func NewSpatialGrid(size Size) *SpatialGrid {
	return &SpatialGrid{
		size:      size,
		cells:     make([]Layers, size.Count()),
		locations: make(map[Entity]Location),
	}
}

// Size возвращает размеры сетки.
func (g *SpatialGrid) Size() Size {
	return g.size
}

// Update размещает или перемещает сущность в (loc.Coord, loc.Layer).
// При занятой целевой паре возвращает *OccupiedError с текущим владельцем,
// ничего не меняя.
func (g *SpatialGrid) Update(e Entity, loc Location) error {
	dest := g.cells[g.size.Index(loc.Coord)].slot(loc.Layer)
	if !dest.IsNil() && *dest != e {
		return &OccupiedError{Occupant: *dest}
	}
	// Освобождаем старое место, если сущность уже была размещена.
	if old, ok := g.locations[e]; ok {
		*g.cells[g.size.Index(old.Coord)].slot(old.Layer) = Entity{}
	}
	*dest = e
	g.locations[e] = loc
	return nil
}

// UpdateCoord перемещает сущность на новую координату в ее текущем плане.
func (g *SpatialGrid) UpdateCoord(e Entity, coord Coord) error {
	loc, ok := g.locations[e]
	if !ok {
		panic(fmt.Sprintf("entity %s is not placed", e))
	}
	return g.Update(e, Location{Coord: coord, Layer: loc.Layer})
}

// UpdateLayer меняет план сущности на ее текущей координате.
// При неудаче *OccupiedError сообщает, кто занимает целевой план,
// чтобы вызывающий мог вытеснить владельца и повторить.
func (g *SpatialGrid) UpdateLayer(e Entity, layer Layer) error {
	loc, ok := g.locations[e]
	if !ok {
		panic(fmt.Sprintf("entity %s is not placed", e))
	}
	return g.Update(e, Location{Coord: loc.Coord, Layer: layer})
}

// Remove убирает сущность из пространства (сущность остается живой,
// просто нигде не размещена - например, предмет в инвентаре).
func (g *SpatialGrid) Remove(e Entity) {
	loc, ok := g.locations[e]
	if !ok {
		return
	}
	*g.cells[g.size.Index(loc.Coord)].slot(loc.Layer) = Entity{}
	delete(g.locations, e)
}

// CoordOf возвращает координату сущности, если она размещена.
func (g *SpatialGrid) CoordOf(e Entity) (Coord, bool) {
	loc, ok := g.locations[e]
	return loc.Coord, ok
}

// LayerOf возвращает план сущности, если она размещена.
func (g *SpatialGrid) LayerOf(e Entity) (Layer, bool) {
	loc, ok := g.locations[e]
	return loc.Layer, ok
}

// LayersAtChecked возвращает планы клетки. Границы не проверяются -
// вызывающий отвечает за валидность координаты.
func (g *SpatialGrid) LayersAtChecked(c Coord) *Layers {
	return &g.cells[g.size.Index(c)]
}

// LayersAt возвращает планы клетки или nil для координаты вне карты.
func (g *SpatialGrid) LayersAt(c Coord) *Layers {
	if !c.IsValid(g.size) {
		return nil
	}
	return &g.cells[g.size.Index(c)]
}
