package domain

import "errors"

var (
	// ErrInventoryFull - нет свободного слота для вставки.
	ErrInventoryFull = errors.New("inventory is full")
	// ErrInventorySlotEmpty - слот пуст или индекс вне диапазона.
	ErrInventorySlotEmpty = errors.New("inventory slot is empty")
)

// Inventory - контейнер фиксированной емкости, принадлежащий персонажу.
// Число слотов не меняется после создания. Пустой слот хранит нулевую
// сущность.
type Inventory struct {
	slots []Entity
}

// NewInventory создает инвентарь с заданным числом слотов.
func NewInventory(capacity int) *Inventory {
	return &Inventory{slots: make([]Entity, capacity)}
}

// Slots возвращает слоты как есть (пустые - нулевые сущности).
// Слайс не копируется: читать, не писать.
func (inv *Inventory) Slots() []Entity {
	return inv.slots
}

// Capacity возвращает число слотов.
func (inv *Inventory) Capacity() int {
	return len(inv.slots)
}

// Insert кладет предмет в первый свободный слот.
func (inv *Inventory) Insert(item Entity) error {
	for i, slot := range inv.slots {
		if slot.IsNil() {
			inv.slots[i] = item
			return nil
		}
	}
	return ErrInventoryFull
}

// Remove забирает предмет из слота по индексу.
func (inv *Inventory) Remove(index int) (Entity, error) {
	if index < 0 || index >= len(inv.slots) || inv.slots[index].IsNil() {
		return Entity{}, ErrInventorySlotEmpty
	}
	item := inv.slots[index]
	inv.slots[index] = Entity{}
	return item, nil
}

// Get читает предмет из слота, не забирая его.
func (inv *Inventory) Get(index int) (Entity, error) {
	if index < 0 || index >= len(inv.slots) || inv.slots[index].IsNil() {
		return Entity{}, ErrInventorySlotEmpty
	}
	return inv.slots[index], nil
}
