package domain

import (
	"errors"
	"testing"
)

func TestInventory_InsertUntilFull(t *testing.T) {
	a := NewEntityAllocator()

	for _, capacity := range []int{0, 1, 3, 10} {
		inv := NewInventory(capacity)

		for i := 0; i < capacity; i++ {
			if err := inv.Insert(a.Alloc()); err != nil {
				t.Fatalf("capacity %d: insert %d failed: %v", capacity, i, err)
			}
		}

		// Вставка сверх емкости
		if err := inv.Insert(a.Alloc()); !errors.Is(err, ErrInventoryFull) {
			t.Errorf("capacity %d: expected ErrInventoryFull, got %v", capacity, err)
		}
		if inv.Capacity() != capacity {
			t.Errorf("capacity must never change, got %d", inv.Capacity())
		}
	}
}

func TestInventory_RemoveAndGet(t *testing.T) {
	a := NewEntityAllocator()
	inv := NewInventory(3)

	item := a.Alloc()
	if err := inv.Insert(item); err != nil {
		t.Fatal(err)
	}

	got, err := inv.Get(0)
	if err != nil || got != item {
		t.Errorf("Get(0) = (%v, %v), want (%v, nil)", got, err, item)
	}

	removed, err := inv.Remove(0)
	if err != nil || removed != item {
		t.Errorf("Remove(0) = (%v, %v), want (%v, nil)", removed, err, item)
	}

	// Слот теперь пуст
	if _, err := inv.Remove(0); !errors.Is(err, ErrInventorySlotEmpty) {
		t.Errorf("expected ErrInventorySlotEmpty, got %v", err)
	}
	if _, err := inv.Get(0); !errors.Is(err, ErrInventorySlotEmpty) {
		t.Errorf("expected ErrInventorySlotEmpty, got %v", err)
	}

	// Индексы вне диапазона - та же ошибка, без паники
	if _, err := inv.Remove(-1); !errors.Is(err, ErrInventorySlotEmpty) {
		t.Errorf("expected ErrInventorySlotEmpty for negative index, got %v", err)
	}
	if _, err := inv.Remove(99); !errors.Is(err, ErrInventorySlotEmpty) {
		t.Errorf("expected ErrInventorySlotEmpty for out-of-range index, got %v", err)
	}
}

func TestInventory_InsertFillsFirstFreeSlot(t *testing.T) {
	a := NewEntityAllocator()
	inv := NewInventory(3)

	first, second, third := a.Alloc(), a.Alloc(), a.Alloc()
	inv.Insert(first)
	inv.Insert(second)

	// Освобождаем первый слот и вставляем снова
	inv.Remove(0)
	inv.Insert(third)

	if got, _ := inv.Get(0); got != third {
		t.Errorf("expected slot 0 to hold the new item, got %v", got)
	}
	if got, _ := inv.Get(1); got != second {
		t.Errorf("slot 1 must be untouched, got %v", got)
	}
}
