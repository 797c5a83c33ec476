package engine

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

// Восстановимые исходы действий. Каждый сопровождается записью в игровом
// логе (кроме ErrInvalidAimTarget, у которого нет варианта сообщения);
// вызывающий по ним решает, был ли потрачен ход.
var (
	ErrNoItemOnGround   = errors.New("no item on the ground")
	ErrNoSpaceToDrop    = errors.New("no space to drop item")
	ErrInvalidAimTarget = errors.New("cannot aim at own position")
)

// ItemUsage - результат двухшагового использования предмета: либо эффект
// применен сразу, либо вызывающий обязан запросить цель и вызвать
// MaybeUseItemAim следующим шагом. Состояние живет в этом результате,
// а не на предмете.
type ItemUsage uint8

const (
	UsageImmediate ItemUsage = iota
	UsageAim
)

// mustCoordOf - координата персонажа, обязанного быть размещенным.
func (w *World) mustCoordOf(e domain.Entity) domain.Coord {
	coord, ok := w.spatial.CoordOf(e)
	if !ok {
		panic(fmt.Sprintf("character %s has no coord", e))
	}
	return coord
}

// mustInventoryOf - инвентарь персонажа, обязанного им владеть.
// Вызов инвентарных операций на сущности без инвентаря - сломанный
// контракт оркестровки.
func (w *World) mustInventoryOf(e domain.Entity) *domain.Inventory {
	inv, ok := w.components.Inventory.Get(e)
	if !ok {
		panic(fmt.Sprintf("character %s has no inventory", e))
	}
	return inv
}

// --- ДВИЖЕНИЕ И БОЙ ---

// MaybeMoveCharacter пытается сдвинуть персонажа на одну клетку.
// Выход за границы - no-op. Занятая персонажем клетка - bump: атака, если
// ровно один из двух (идущий, стоящий) является NPC; NPC-на-NPC и
// игрок-на-игрока молча игнорируются. Клетка со стеной - no-op.
func (w *World) MaybeMoveCharacter(character domain.Entity, direction domain.CardinalDirection, log *domain.MessageLog) {
	coord := w.mustCoordOf(character)
	newCoord := coord.Add(direction.Coord())
	if !newCoord.IsValid(w.spatial.Size()) {
		return
	}

	dest := w.spatial.LayersAtChecked(newCoord)
	if !dest.Character.IsNil() {
		occupant := dest.Character
		moverNpc, moverIsNpc := w.components.NpcType.Get(character)
		occupantNpc, occupantIsNpc := w.components.NpcType.Get(occupant)
		if moverIsNpc == occupantIsNpc {
			// Бой возможен только между игроком и NPC.
			return
		}
		victimDies := w.characterBumpAttack(occupant)
		npcType := moverNpc
		if occupantIsNpc {
			npcType = occupantNpc
		}
		writeCombatLogMessages(!moverIsNpc, victimDies, npcType, log)
		return
	}

	if dest.Feature.IsNil() {
		if err := w.spatial.UpdateCoord(character, newCoord); err != nil {
			panic(fmt.Sprintf("move into vacant cell failed: %v", err))
		}
	}
}

func writeCombatLogMessages(attackerIsPlayer, victimDies bool, npcType domain.NpcType, log *domain.MessageLog) {
	switch {
	case attackerIsPlayer && victimDies:
		log.Append(domain.Message{Kind: domain.MsgPlayerKillsNpc, Npc: npcType})
	case attackerIsPlayer:
		log.Append(domain.Message{Kind: domain.MsgPlayerAttacksNpc, Npc: npcType})
	case victimDies:
		log.Append(domain.Message{Kind: domain.MsgNpcKillsPlayer, Npc: npcType})
	default:
		log.Append(domain.Message{Kind: domain.MsgNpcAttacksPlayer, Npc: npcType})
	}
}

func (w *World) characterBumpAttack(victim domain.Entity) bool {
	return w.characterDamage(victim, BumpAttackDamage)
}

// characterDamage наносит урон. Возвращает true, если жертва погибла
// (здоровье дошло до нуля и сработал переход в труп).
func (w *World) characterDamage(victim domain.Entity, amount int) bool {
	hp, ok := w.components.HitPoints.Get(victim)
	if !ok || hp.Current == 0 {
		// Труп не умирает второй раз (два снаряда в один тик).
		return false
	}
	died := hp.Damage(amount)
	w.components.HitPoints.Insert(victim, hp)
	if died {
		w.characterDie(victim)
	}
	return died
}

// characterDie переводит персонажа в труп: план Object, Tile - корпс.
// Если план Object на этой клетке занят предметом, предмет уничтожается
// (труп приоритетнее лута), и размещение повторяется - второй раз оно
// обязано пройти.
func (w *World) characterDie(entity domain.Entity) {
	if err := w.spatial.UpdateLayer(entity, domain.LayerObject); err != nil {
		var occupied *domain.OccupiedError
		if !errors.As(err, &occupied) {
			panic(fmt.Sprintf("corpse placement failed: %v", err))
		}
		w.RemoveEntity(occupied.Occupant)
		if err := w.spatial.UpdateLayer(entity, domain.LayerObject); err != nil {
			panic(fmt.Sprintf("corpse placement retry failed: %v", err))
		}
	}

	tile, ok := w.components.Tile.Get(entity)
	if !ok {
		panic(fmt.Sprintf("dying character %s has no tile", entity))
	}
	switch tile.Kind {
	case domain.TilePlayer:
		w.components.Tile.Insert(entity, domain.Tile{Kind: domain.TilePlayerCorpse})
	case domain.TileNpc:
		w.components.Tile.Insert(entity, domain.NewNpcCorpseTile(tile.Npc))
	default:
		panic(fmt.Sprintf("unexpected tile %s on dying character %s", tile.Kind, entity))
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"entity":    entity.String(),
	}).Debug("Character died.")
}

// --- ПРЕДМЕТЫ ---

// MaybeGetItem поднимает предмет с плана Object под персонажем в первый
// свободный слот инвентаря. Поднятый предмет убирается из пространства,
// но не уничтожается - он живет только внутри инвентаря.
func (w *World) MaybeGetItem(character domain.Entity, log *domain.MessageLog) error {
	coord := w.mustCoordOf(character)
	object := w.spatial.LayersAtChecked(coord).Object
	if !object.IsNil() {
		if itemType, ok := w.components.Item.Get(object); ok {
			inventory := w.mustInventoryOf(character)
			if err := inventory.Insert(object); err != nil {
				log.Append(domain.Message{Kind: domain.MsgPlayerInventoryIsFull})
				return err
			}
			w.spatial.Remove(object)
			log.Append(domain.Message{Kind: domain.MsgPlayerGets, Item: itemType})
			return nil
		}
	}
	log.Append(domain.Message{Kind: domain.MsgNoItemUnderPlayer})
	return ErrNoItemOnGround
}

// MaybeUseItem применяет предмет из слота. Зелье лечит сразу и тратит
// слот; свиток требует прицеливания - слот пока не тратится, вызывающий
// обязан запросить цель и вызвать MaybeUseItemAim.
func (w *World) MaybeUseItem(character domain.Entity, slot int, log *domain.MessageLog) (ItemUsage, error) {
	inventory := w.mustInventoryOf(character)
	item, err := inventory.Get(slot)
	if err != nil {
		log.Append(domain.Message{Kind: domain.MsgNoItemInInventorySlot})
		return 0, err
	}
	itemType, ok := w.components.Item.Get(item)
	if !ok {
		panic(fmt.Sprintf("non-item %s in inventory", item))
	}

	switch itemType {
	case domain.ItemHealthPotion:
		hp, ok := w.components.HitPoints.Get(character)
		if !ok {
			panic(fmt.Sprintf("character %s has no hit points", character))
		}
		hp.Heal(HealthPotionHeal)
		w.components.HitPoints.Insert(character, hp)
		if _, err := inventory.Remove(slot); err != nil {
			panic(fmt.Sprintf("consume of occupied slot %d failed: %v", slot, err))
		}
		w.RemoveEntity(item)
		log.Append(domain.Message{Kind: domain.MsgPlayerHeals})
		return UsageImmediate, nil
	case domain.ItemFireballScroll:
		return UsageAim, nil
	}
	panic(fmt.Sprintf("unknown item type %d", itemType))
}

// MaybeUseItemAim - шаг прицеливания. Цель на собственной клетке -
// восстановимый отказ. Прицеливание зельем - сломанный контракт.
func (w *World) MaybeUseItemAim(character domain.Entity, slot int, target domain.Coord, log *domain.MessageLog) error {
	coord := w.mustCoordOf(character)
	if coord == target {
		return ErrInvalidAimTarget
	}
	inventory := w.mustInventoryOf(character)
	item, err := inventory.Remove(slot)
	if err != nil {
		panic(fmt.Sprintf("aim at empty slot %d: %v", slot, err))
	}
	itemType, ok := w.components.Item.Get(item)
	if !ok {
		panic(fmt.Sprintf("non-item %s in inventory", item))
	}

	switch itemType {
	case domain.ItemHealthPotion:
		panic("health potion is not an aimed item")
	case domain.ItemFireballScroll:
		log.Append(domain.Message{
			Kind:       domain.MsgPlayerLaunchesProjectile,
			Projectile: domain.ProjectileFireball,
		})
		w.spawnProjectile(coord, target, domain.ProjectileFireball)
		w.RemoveEntity(item)
	}
	return nil
}

// MaybeDropItem кладет предмет из слота на план Object под персонажем.
// Занятый план - восстановимый отказ, инвентарь не меняется.
func (w *World) MaybeDropItem(character domain.Entity, slot int, log *domain.MessageLog) error {
	coord := w.mustCoordOf(character)
	if !w.spatial.LayersAtChecked(coord).Object.IsNil() {
		log.Append(domain.Message{Kind: domain.MsgNoSpaceToDropItem})
		return ErrNoSpaceToDrop
	}
	inventory := w.mustInventoryOf(character)
	item, err := inventory.Remove(slot)
	if err != nil {
		log.Append(domain.Message{Kind: domain.MsgNoItemInInventorySlot})
		return err
	}
	if err := w.spatial.Update(item, domain.Location{Coord: coord, Layer: domain.LayerObject}); err != nil {
		panic(fmt.Sprintf("drop on vacant object layer failed: %v", err))
	}
	itemType, ok := w.components.Item.Get(item)
	if !ok {
		panic(fmt.Sprintf("non-item %s in inventory", item))
	}
	log.Append(domain.Message{Kind: domain.MsgPlayerDrops, Item: itemType})
	return nil
}

// --- СНАРЯДЫ ---

// MoveProjectiles продвигает каждый снаряд на один шаг траектории.
// Двухфазная мутация: сначала один проход по всем снарядам в порядке
// индексов (отметки на удаление, очередь попаданий), затем удаление и
// урон - чтобы удаление не возмущало обход.
func (w *World) MoveProjectiles(log *domain.MessageLog) {
	var toRemove []domain.Entity
	var fireballHits []domain.Entity

	for _, e := range w.components.Trajectory.Entities() {
		trajectory, _ := w.components.Trajectory.Get(e)
		direction, ok := trajectory.Next()
		if !ok {
			// Траектория исчерпана
			toRemove = append(toRemove, e)
			continue
		}
		coord := w.mustCoordOf(e)
		newCoord := coord.Add(direction.Coord())
		dest := w.spatial.LayersAtChecked(newCoord)
		if !dest.Feature.IsNil() {
			// Стена гасит снаряд без урона
			toRemove = append(toRemove, e)
		} else if !dest.Character.IsNil() {
			toRemove = append(toRemove, e)
			if projectileType, ok := w.components.Projectile.Get(e); ok {
				switch projectileType {
				case domain.ProjectileFireball:
					fireballHits = append(fireballHits, dest.Character)
				}
			}
		}

		// Коллизии снарядов между собой игнорируем
		_ = w.spatial.UpdateCoord(e, newCoord)
	}

	for _, e := range toRemove {
		w.RemoveEntity(e)
	}

	for _, victim := range fireballHits {
		npcType, isNpc := w.components.NpcType.Get(victim)
		if w.characterDamage(victim, domain.ProjectileFireball.Damage()) && isNpc {
			log.Append(domain.Message{Kind: domain.MsgNpcDies, Npc: npcType})
		}
	}
}
