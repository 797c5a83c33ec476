package engine

import (
	"fmt"

	"rogue-server/internal/domain"
)

// Боевые константы правил
const (
	PlayerMaxHitPoints      = 20
	PlayerInventoryCapacity = 10
	BumpAttackDamage        = 1
	HealthPotionHeal        = 5
)

// World - ядро симуляции. Единолично владеет аллокатором сущностей,
// таблицами атрибутов и пространственным индексом; никакой другой
// компонент не держит ссылку на них дольше одного вызова. Все методы
// вызываются строго последовательно одним обработчиком ходов.
type World struct {
	allocator  *domain.EntityAllocator
	components *domain.Components
	spatial    *domain.SpatialGrid
}

// NewWorld создает пустой мир заданного размера.
func NewWorld(size domain.Size) *World {
	return &World{
		allocator:  domain.NewEntityAllocator(),
		components: domain.NewComponents(),
		spatial:    domain.NewSpatialGrid(size),
	}
}

// --- СПАВН ---

// mustPlace - размещение, которое по построению не может конфликтовать.
// Конфликт здесь означает сломанный инвариант выше по стеку.
func (w *World) mustPlace(e domain.Entity, loc domain.Location) {
	if err := w.spatial.Update(e, loc); err != nil {
		panic(fmt.Sprintf("spawn placement conflict for %s at (%d,%d)/%s: %v",
			e, loc.Coord.X, loc.Coord.Y, loc.Layer, err))
	}
}

func (w *World) spawnFloor(coord domain.Coord) {
	e := w.allocator.Alloc()
	w.mustPlace(e, domain.Location{Coord: coord, Layer: domain.LayerFloor})
	w.components.Tile.Insert(e, domain.Tile{Kind: domain.TileFloor})
}

func (w *World) spawnWall(coord domain.Coord) {
	e := w.allocator.Alloc()
	w.mustPlace(e, domain.Location{Coord: coord, Layer: domain.LayerFeature})
	w.components.Tile.Insert(e, domain.Tile{Kind: domain.TileWall})
}

func (w *World) spawnPlayer(coord domain.Coord) domain.Entity {
	e := w.allocator.Alloc()
	w.mustPlace(e, domain.Location{Coord: coord, Layer: domain.LayerCharacter})
	w.components.Tile.Insert(e, domain.Tile{Kind: domain.TilePlayer})
	w.components.HitPoints.Insert(e, domain.NewFullHitPoints(PlayerMaxHitPoints))
	w.components.Inventory.Insert(e, domain.NewInventory(PlayerInventoryCapacity))
	return e
}

func (w *World) spawnNpc(coord domain.Coord, npcType domain.NpcType) domain.Entity {
	e := w.allocator.Alloc()
	w.mustPlace(e, domain.Location{Coord: coord, Layer: domain.LayerCharacter})
	w.components.Tile.Insert(e, domain.NewNpcTile(npcType))
	w.components.NpcType.Insert(e, npcType)
	w.components.HitPoints.Insert(e, domain.NewFullHitPoints(npcType.MaxHitPoints()))
	return e
}

func (w *World) spawnItem(coord domain.Coord, itemType domain.ItemType) domain.Entity {
	e := w.allocator.Alloc()
	w.mustPlace(e, domain.Location{Coord: coord, Layer: domain.LayerObject})
	w.components.Tile.Insert(e, domain.NewItemTile(itemType))
	w.components.Item.Insert(e, itemType)
	return e
}

func (w *World) spawnProjectile(from, to domain.Coord, projectileType domain.ProjectileType) domain.Entity {
	e := w.allocator.Alloc()
	w.mustPlace(e, domain.Location{Coord: from, Layer: domain.LayerProjectile})
	w.components.Tile.Insert(e, domain.NewProjectileTile(projectileType))
	w.components.Projectile.Insert(e, projectileType)
	w.components.Trajectory.Insert(e, domain.NewTrajectory(to.Sub(from)))
	return e
}

// RemoveEntity уничтожает сущность целиком: атрибуты, размещение,
// идентификатор - одним вызовом, чтобы наблюдатель не мог застать
// частично удаленную сущность.
func (w *World) RemoveEntity(e domain.Entity) {
	w.components.RemoveEntity(e)
	w.spatial.Remove(e)
	w.allocator.Free(e)
}
