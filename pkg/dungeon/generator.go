package dungeon

import (
	"math/rand"

	"rogue-server/internal/domain"
)

// Константы генерации
const (
	MaxRooms = 8
	MinSize  = 4
	MaxSize  = 10

	npcChance  = 0.7 // шанс врага в комнате
	itemChance = 0.5 // шанс предмета в комнате
	orcWeight  = 0.8 // доля орков среди врагов (остальное - тролли)
)

// Rect - вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() domain.Coord {
	return domain.Coord{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Generate строит описание местности: комнаты, коридоры, игрок в первой
// комнате, враги и предметы в остальных. Источник случайности передается
// снаружи - генератор сам его не сеет.
func Generate(size domain.Size, rng *rand.Rand) *Terrain {
	// 1. Всё - стены
	terrain := NewTerrain(size)

	var rooms []Rect

	// 2. Генерируем комнаты
	for i := 0; i < MaxRooms; i++ {
		w := randRange(rng, MinSize, MaxSize)
		h := randRange(rng, MinSize, MaxSize)
		if size.Width-w-2 < 1 || size.Height-h-2 < 1 {
			continue // карта меньше комнаты
		}
		x := randRange(rng, 1, size.Width-w-1)
		y := randRange(rng, 1, size.Height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}
		failed := false

		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}

		if !failed {
			carveRoom(terrain, newRoom)

			if len(rooms) > 0 {
				// Соединяем с предыдущей комнатой
				prev := rooms[len(rooms)-1].Center()
				curr := newRoom.Center()

				if rng.Intn(2) == 0 {
					carveHCorridor(terrain, prev.X, curr.X, prev.Y)
					carveVCorridor(terrain, prev.Y, curr.Y, curr.X)
				} else {
					carveVCorridor(terrain, prev.Y, curr.Y, prev.X)
					carveHCorridor(terrain, prev.X, curr.X, curr.Y)
				}
			}
			rooms = append(rooms, newRoom)
		}
	}

	// 3. Игрок - в центре первой комнаты
	if len(rooms) > 0 {
		terrain.Set(rooms[0].Center(), TerrainTile{Kind: TerrainPlayer})
	}

	// 4. Враги и предметы - во всех комнатах кроме первой
	for i := 1; i < len(rooms); i++ {
		room := rooms[i]
		center := room.Center()

		if rng.Float64() < npcChance {
			npc := domain.NpcTroll
			if rng.Float64() < orcWeight {
				npc = domain.NpcOrc
			}
			terrain.Set(center, TerrainTile{Kind: TerrainNpc, Npc: npc})
		}

		if rng.Float64() < itemChance {
			item := domain.ItemHealthPotion
			if rng.Intn(2) == 0 {
				item = domain.ItemFireballScroll
			}
			// Сдвиг от центра, чтобы предмет не лег под врага
			c := domain.Coord{
				X: center.X + randRange(rng, -1, 1),
				Y: center.Y + randRange(rng, -1, 1),
			}
			if terrain.Get(c).Kind == TerrainFloor {
				terrain.Set(c, TerrainTile{Kind: TerrainItem, Item: item})
			}
		}
	}

	return terrain
}

// --- Вспомогательные функции ---

func carveRoom(t *Terrain, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			t.Set(domain.Coord{X: x, Y: y}, TerrainTile{Kind: TerrainFloor})
		}
	}
}

func carveHCorridor(t *Terrain, x1, x2, y int) {
	start, end := min(x1, x2), max(x1, x2)
	for x := start; x <= end; x++ {
		t.Set(domain.Coord{X: x, Y: y}, TerrainTile{Kind: TerrainFloor})
	}
}

func carveVCorridor(t *Terrain, y1, y2, x int) {
	start, end := min(y1, y2), max(y1, y2)
	for y := start; y <= end; y++ {
		t.Set(domain.Coord{X: x, Y: y}, TerrainTile{Kind: TerrainFloor})
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
