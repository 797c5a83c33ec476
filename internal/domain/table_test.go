package domain

import "testing"

func TestComponentTable_InsertGetRemove(t *testing.T) {
	a := NewEntityAllocator()
	table := NewComponentTable[int]()

	e := a.Alloc()

	if _, ok := table.Get(e); ok {
		t.Error("Get on empty table should report absence")
	}

	table.Insert(e, 42)
	v, ok := table.Get(e)
	if !ok || v != 42 {
		t.Errorf("expected (42, true), got (%d, %t)", v, ok)
	}

	// Insert overwrites silently
	table.Insert(e, 7)
	if v, _ := table.Get(e); v != 7 {
		t.Errorf("expected overwrite to 7, got %d", v)
	}

	table.Remove(e)
	if table.Contains(e) {
		t.Error("entity should be gone after Remove")
	}
	// Removing again is not an error
	table.Remove(e)
}

func TestComponentTable_EntitiesOrdered(t *testing.T) {
	a := NewEntityAllocator()
	table := NewComponentTable[string]()

	e1, e2, e3 := a.Alloc(), a.Alloc(), a.Alloc()
	// Insert out of order
	table.Insert(e3, "c")
	table.Insert(e1, "a")
	table.Insert(e2, "b")

	entities := table.Entities()
	if len(entities) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(entities))
	}
	for i := 1; i < len(entities); i++ {
		if entities[i-1].Index() >= entities[i].Index() {
			t.Fatal("Entities must be sorted by slot index")
		}
	}
}
