package dungeon

import "rogue-server/internal/domain"

// TerrainKind - вид клетки в описании местности.
type TerrainKind uint8

const (
	TerrainWall TerrainKind = iota
	TerrainFloor
	TerrainPlayer
	TerrainNpc
	TerrainItem
)

// TerrainTile - клетка описания местности, потребляемого миром один раз
// при заселении. Payload-поля читаются только для соответствующего Kind.
type TerrainTile struct {
	Kind TerrainKind
	Npc  domain.NpcType
	Item domain.ItemType
}

// Terrain - перечислимая сетка клеток местности.
type Terrain struct {
	size  domain.Size
	tiles []TerrainTile
}

// NewTerrain создает местность, целиком заполненную стенами.
func NewTerrain(size domain.Size) *Terrain {
	return &Terrain{
		size:  size,
		tiles: make([]TerrainTile, size.Count()),
	}
}

// Size возвращает размеры местности.
func (t *Terrain) Size() domain.Size {
	return t.size
}

// Get возвращает клетку по координате.
func (t *Terrain) Get(c domain.Coord) TerrainTile {
	return t.tiles[t.size.Index(c)]
}

// Set записывает клетку по координате.
func (t *Terrain) Set(c domain.Coord, tile TerrainTile) {
	t.tiles[t.size.Index(c)] = tile
}

// Enumerate обходит все клетки в порядке (Y, X).
func (t *Terrain) Enumerate(fn func(domain.Coord, TerrainTile)) {
	for y := 0; y < t.size.Height; y++ {
		for x := 0; x < t.size.Width; x++ {
			c := domain.Coord{X: x, Y: y}
			fn(c, t.tiles[t.size.Index(c)])
		}
	}
}
