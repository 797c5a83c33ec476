package engine

import "rogue-server/internal/domain"

// Read-only поверхность запросов для коллабораторов (рендеринг, AI).
// Ни один из методов не мутирует мир.

// HasProjectiles возвращает true, пока в мире есть снаряды с траекторией.
func (w *World) HasProjectiles() bool {
	return !w.components.Trajectory.IsEmpty()
}

// Inventory возвращает инвентарь сущности, если он есть.
func (w *World) Inventory(e domain.Entity) (*domain.Inventory, bool) {
	return w.components.Inventory.Get(e)
}

// ItemTypeOf возвращает вид предмета-сущности, если он есть.
func (w *World) ItemTypeOf(e domain.Entity) (domain.ItemType, bool) {
	return w.components.Item.Get(e)
}

// IsLivingCharacter: живой персонаж - тот, кто размещен на плане
// Character. Погибшие переезжают на план Object и перестают им быть.
func (w *World) IsLivingCharacter(e domain.Entity) bool {
	layer, ok := w.spatial.LayerOf(e)
	return ok && layer == domain.LayerCharacter
}

// HitPoints возвращает здоровье сущности, если оно есть.
func (w *World) HitPoints(e domain.Entity) (domain.HitPoints, bool) {
	return w.components.HitPoints.Get(e)
}

// EntityCoord возвращает координату сущности, если она размещена.
func (w *World) EntityCoord(e domain.Entity) (domain.Coord, bool) {
	return w.spatial.CoordOf(e)
}

// TileOf возвращает текущий Tile сущности, если он есть.
func (w *World) TileOf(e domain.Entity) (domain.Tile, bool) {
	return w.components.Tile.Get(e)
}

// Size возвращает размеры мира.
func (w *World) Size() domain.Size {
	return w.spatial.Size()
}

// LayersAt возвращает сущности на планах клетки (nil вне карты).
func (w *World) LayersAt(c domain.Coord) *domain.Layers {
	return w.spatial.LayersAt(c)
}

// OpacityAt - непрозрачность клетки для расчета видимости: 255, если
// план Feature занят (стена), иначе 0. Координата должна быть в границах.
func (w *World) OpacityAt(c domain.Coord) uint8 {
	if !w.spatial.LayersAtChecked(c).Feature.IsNil() {
		return 255
	}
	return 0
}

// CanNpcEnterIgnoringOtherNpcs: клетка проходима для NPC, если на ней
// нет стены. Занятость другими NPC не учитывается.
func (w *World) CanNpcEnterIgnoringOtherNpcs(c domain.Coord) bool {
	layers := w.spatial.LayersAt(c)
	return layers != nil && layers.Feature.IsNil()
}

// CanNpcEnter: клетка проходима для NPC - нет стены и план Character
// не занят другим NPC.
func (w *World) CanNpcEnter(c domain.Coord) bool {
	layers := w.spatial.LayersAt(c)
	if layers == nil {
		return false
	}
	containsNpc := !layers.Character.IsNil() && w.components.NpcType.Contains(layers.Character)
	return !containsNpc && layers.Feature.IsNil()
}

// CanNpcSeeThroughCell: взгляд NPC проходит через клетку без стены.
func (w *World) CanNpcSeeThroughCell(c domain.Coord) bool {
	layers := w.spatial.LayersAt(c)
	return layers != nil && layers.Feature.IsNil()
}

// ExamineCell описывает обитателя клетки (Character, затем Object) для
// осмотра. Не всякий Tile описуем: пол и стены не возвращаются.
func (w *World) ExamineCell(c domain.Coord) (domain.ExamineCell, bool) {
	layers := w.spatial.LayersAt(c)
	if layers == nil {
		return domain.ExamineCell{}, false
	}
	entity := layers.Character
	if entity.IsNil() {
		entity = layers.Object
	}
	if entity.IsNil() {
		return domain.ExamineCell{}, false
	}
	tile, ok := w.components.Tile.Get(entity)
	if !ok {
		return domain.ExamineCell{}, false
	}
	switch tile.Kind {
	case domain.TileNpc:
		return domain.ExamineCell{Kind: domain.ExamineNpc, Npc: tile.Npc}, true
	case domain.TileNpcCorpse:
		return domain.ExamineCell{Kind: domain.ExamineNpcCorpse, Npc: tile.Npc}, true
	case domain.TileItem:
		return domain.ExamineCell{Kind: domain.ExamineItem, Item: tile.Item}, true
	case domain.TilePlayer:
		return domain.ExamineCell{Kind: domain.ExaminePlayer}, true
	}
	return domain.ExamineCell{}, false
}
