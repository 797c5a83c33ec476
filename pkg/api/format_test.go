package api

import (
	"testing"

	"rogue-server/internal/domain"
)

func TestFormatMessage(t *testing.T) {
	cases := []struct {
		msg  domain.Message
		want string
	}{
		{domain.Message{Kind: domain.MsgPlayerAttacksNpc, Npc: domain.NpcOrc}, "You attack the orc."},
		{domain.Message{Kind: domain.MsgPlayerKillsNpc, Npc: domain.NpcTroll}, "You kill the troll!"},
		{domain.Message{Kind: domain.MsgNpcAttacksPlayer, Npc: domain.NpcOrc}, "The orc attacks you."},
		{domain.Message{Kind: domain.MsgNpcKillsPlayer, Npc: domain.NpcTroll}, "The troll kills you!"},
		{domain.Message{Kind: domain.MsgPlayerGets, Item: domain.ItemHealthPotion}, "You get the health potion."},
		{domain.Message{Kind: domain.MsgPlayerDrops, Item: domain.ItemFireballScroll}, "You drop the fireball scroll."},
		{domain.Message{Kind: domain.MsgPlayerInventoryIsFull}, "Your inventory is full."},
		{domain.Message{Kind: domain.MsgNoItemUnderPlayer}, "There is no item here."},
		{domain.Message{Kind: domain.MsgNoItemInInventorySlot}, "That inventory slot is empty."},
		{domain.Message{Kind: domain.MsgNoSpaceToDropItem}, "There is no space to drop an item here."},
		{domain.Message{Kind: domain.MsgPlayerHeals}, "You feel better."},
		{domain.Message{Kind: domain.MsgPlayerLaunchesProjectile, Projectile: domain.ProjectileFireball}, "You launch a fireball!"},
		{domain.Message{Kind: domain.MsgNpcDies, Npc: domain.NpcOrc}, "The orc dies."},
	}

	for _, c := range cases {
		if got := FormatMessage(c.msg); got != c.want {
			t.Errorf("FormatMessage(%v) = %q, want %q", c.msg.Kind, got, c.want)
		}
	}
}

func TestFormatExamineCell(t *testing.T) {
	cases := []struct {
		cell domain.ExamineCell
		want string
	}{
		{domain.ExamineCell{Kind: domain.ExamineNpc, Npc: domain.NpcTroll}, "A troll."},
		// Артикль согласуется с первой буквой имени
		{domain.ExamineCell{Kind: domain.ExamineNpc, Npc: domain.NpcOrc}, "An orc."},
		{domain.ExamineCell{Kind: domain.ExamineNpcCorpse, Npc: domain.NpcOrc}, "A dead orc."},
		{domain.ExamineCell{Kind: domain.ExamineItem, Item: domain.ItemHealthPotion}, "A health potion."},
		{domain.ExamineCell{Kind: domain.ExaminePlayer}, "It's you."},
	}

	for _, c := range cases {
		if got := FormatExamineCell(c.cell); got != c.want {
			t.Errorf("FormatExamineCell(%v) = %q, want %q", c.cell.Kind, got, c.want)
		}
	}
}
