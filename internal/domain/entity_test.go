package domain

import "testing"

func TestEntityAllocator_AllocFree(t *testing.T) {
	a := NewEntityAllocator()

	e1 := a.Alloc()
	e2 := a.Alloc()

	if e1 == e2 {
		t.Fatal("Alloc returned the same handle twice")
	}
	if e1.IsNil() || e2.IsNil() {
		t.Fatal("Alloc returned a nil handle")
	}
	if !a.Exists(e1) || !a.Exists(e2) {
		t.Error("freshly allocated entities should exist")
	}

	a.Free(e1)
	if a.Exists(e1) {
		t.Error("freed entity should not exist")
	}

	// Slot reuse: same index, bumped generation
	e3 := a.Alloc()
	if e3.Index() != e1.Index() {
		t.Errorf("expected freed slot %d to be reused, got %d", e1.Index(), e3.Index())
	}
	if e3 == e1 {
		t.Error("reused slot must not alias the stale handle")
	}
	if a.Exists(e1) {
		t.Error("stale handle must stay dead after slot reuse")
	}
	if !a.Exists(e3) {
		t.Error("reissued handle should exist")
	}
}

func TestEntity_NilHandle(t *testing.T) {
	var e Entity
	if !e.IsNil() {
		t.Error("zero Entity should be nil")
	}

	a := NewEntityAllocator()
	if a.Exists(e) {
		t.Error("nil handle should never exist")
	}
}
