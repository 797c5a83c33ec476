package api

import (
	"fmt"

	"rogue-server/internal/domain"
)

// FormatMessage превращает структурированную запись игрового лога в текст
// для клиента. Ядро текстов не знает - форматирование живет здесь,
// на презентационной стороне.
func FormatMessage(m domain.Message) string {
	switch m.Kind {
	case domain.MsgPlayerAttacksNpc:
		return fmt.Sprintf("You attack the %s.", m.Npc.Name())
	case domain.MsgPlayerKillsNpc:
		return fmt.Sprintf("You kill the %s!", m.Npc.Name())
	case domain.MsgNpcAttacksPlayer:
		return fmt.Sprintf("The %s attacks you.", m.Npc.Name())
	case domain.MsgNpcKillsPlayer:
		return fmt.Sprintf("The %s kills you!", m.Npc.Name())
	case domain.MsgPlayerGets:
		return fmt.Sprintf("You get the %s.", m.Item.Name())
	case domain.MsgPlayerDrops:
		return fmt.Sprintf("You drop the %s.", m.Item.Name())
	case domain.MsgPlayerInventoryIsFull:
		return "Your inventory is full."
	case domain.MsgNoItemUnderPlayer:
		return "There is no item here."
	case domain.MsgNoItemInInventorySlot:
		return "That inventory slot is empty."
	case domain.MsgNoSpaceToDropItem:
		return "There is no space to drop an item here."
	case domain.MsgPlayerHeals:
		return "You feel better."
	case domain.MsgPlayerLaunchesProjectile:
		return fmt.Sprintf("You launch a %s!", m.Projectile.Name())
	case domain.MsgNpcDies:
		return fmt.Sprintf("The %s dies.", m.Npc.Name())
	}
	return ""
}

// FormatExamineCell превращает результат осмотра клетки в текст.
func FormatExamineCell(e domain.ExamineCell) string {
	switch e.Kind {
	case domain.ExamineNpc:
		return fmt.Sprintf("%s.", withArticle(e.Npc.Name()))
	case domain.ExamineNpcCorpse:
		return fmt.Sprintf("%s.", withArticle("dead "+e.Npc.Name()))
	case domain.ExamineItem:
		return fmt.Sprintf("%s.", withArticle(e.Item.Name()))
	case domain.ExaminePlayer:
		return "It's you."
	}
	return ""
}

// withArticle подбирает неопределенный артикль по первой букве ("an orc").
func withArticle(name string) string {
	if name == "" {
		return "A"
	}
	switch name[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "An " + name
	}
	return "A " + name
}
