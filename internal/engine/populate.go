package engine

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"rogue-server/internal/domain"
	"rogue-server/internal/systems"
	"rogue-server/pkg/dungeon"
	"rogue-server/pkg/logger"
)

// PopulateResult - результат заселения мира. Таблица агентов принадлежит
// вызывающему: мир ее не хранит и больше никогда не читает.
type PopulateResult struct {
	Player  domain.Entity
	AIState *domain.ComponentTable[*systems.Agent]
}

// Populate генерирует местность и заселяет мир. Источник случайности -
// внешняя способность, используется только делегированием в генератор.
func (w *World) Populate(rng *rand.Rand) PopulateResult {
	terrain := dungeon.Generate(w.spatial.Size(), rng)
	return w.PopulateTerrain(terrain)
}

// PopulateTerrain заселяет мир по готовому описанию местности,
// клетка за клеткой. Под каждой клеткой спавнится пол; поверх -
// стена, игрок, NPC или предмет в зависимости от вида клетки.
func (w *World) PopulateTerrain(terrain *dungeon.Terrain) PopulateResult {
	var player domain.Entity
	aiState := domain.NewComponentTable[*systems.Agent]()

	terrain.Enumerate(func(coord domain.Coord, tile dungeon.TerrainTile) {
		switch tile.Kind {
		case dungeon.TerrainPlayer:
			w.spawnFloor(coord)
			player = w.spawnPlayer(coord)
		case dungeon.TerrainFloor:
			w.spawnFloor(coord)
		case dungeon.TerrainWall:
			w.spawnFloor(coord)
			w.spawnWall(coord)
		case dungeon.TerrainNpc:
			npc := w.spawnNpc(coord, tile.Npc)
			w.spawnFloor(coord)
			aiState.Insert(npc, systems.NewAgent())
		case dungeon.TerrainItem:
			w.spawnItem(coord, tile.Item)
			w.spawnFloor(coord)
		}
	})

	if player.IsNil() {
		panic("terrain contains no player spawn")
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"player":    player.String(),
		"npc_count": aiState.Len(),
	}).Info("World populated.")

	return PopulateResult{Player: player, AIState: aiState}
}
