package domain

// MessageKind - вид записи игрового лога.
type MessageKind uint8

const (
	MsgPlayerAttacksNpc MessageKind = iota
	MsgPlayerKillsNpc
	MsgNpcAttacksPlayer
	MsgNpcKillsPlayer
	MsgPlayerGets
	MsgPlayerDrops
	MsgPlayerInventoryIsFull
	MsgNoItemUnderPlayer
	MsgNoItemInInventorySlot
	MsgNoSpaceToDropItem
	MsgPlayerHeals
	MsgPlayerLaunchesProjectile
	MsgNpcDies
)

// Message - структурированная запись игрового лога. Ядро только добавляет
// записи; форматирование текста - забота презентационного слоя.
// Payload-поля читаются только для соответствующего Kind.
type Message struct {
	Kind       MessageKind
	Npc        NpcType
	Item       ItemType
	Projectile ProjectileType
}

// MessageLog - append-only последовательность записей.
type MessageLog struct {
	messages []Message
}

// Append добавляет запись в конец лога.
func (l *MessageLog) Append(m Message) {
	l.messages = append(l.messages, m)
}

// Messages возвращает все записи в порядке добавления.
func (l *MessageLog) Messages() []Message {
	return l.messages
}

// Len возвращает число записей.
func (l *MessageLog) Len() int {
	return len(l.messages)
}

// Since возвращает записи начиная с позиции offset - для потребителей,
// которые читают лог инкрементально.
func (l *MessageLog) Since(offset int) []Message {
	if offset < 0 || offset > len(l.messages) {
		return nil
	}
	return l.messages[offset:]
}

// ExamineCellKind - вид описания содержимого клетки для осмотра.
type ExamineCellKind uint8

const (
	ExamineNpc ExamineCellKind = iota
	ExamineNpcCorpse
	ExamineItem
	ExaminePlayer
)

// ExamineCell - внешнее описание того, что игрок видит в клетке.
type ExamineCell struct {
	Kind ExamineCellKind
	Npc  NpcType
	Item ItemType
}
