package core

import "testing"

type fakeObject struct {
	core ObjectCore
}

func (f *fakeObject) ObjCore() *ObjectCore      { return &f.core }
func (f *fakeObject) Interface() ObjectInterface { return f.core.iface }

func TestTableAllocateClientID(t *testing.T) {
	tbl := NewTable()
	id, err := tbl.AllocateClientID()
	if err != nil {
		t.Fatalf("AllocateClientID() error = %v", err)
	}
	if id < DisplayObjectID+1 || id >= ServerIDBoundary {
		t.Fatalf("AllocateClientID() = %d, want a client-half id", id)
	}
	if err := tbl.Insert(id, &fakeObject{}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if _, ok := tbl.Lookup(id); !ok {
		t.Fatalf("Lookup(%d) not found after Insert", id)
	}
}

func TestTableAllocateServerID(t *testing.T) {
	tbl := NewTable()
	id, err := tbl.AllocateServerID()
	if err != nil {
		t.Fatalf("AllocateServerID() error = %v", err)
	}
	if !IsServerAllocated(id) {
		t.Fatalf("AllocateServerID() = %d, want a server-half id", id)
	}
}

func TestTableInsertDuplicateFails(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Insert(10, &fakeObject{}); err != nil {
		t.Fatalf("first Insert() error = %v", err)
	}
	if err := tbl.Insert(10, &fakeObject{}); err == nil {
		t.Fatal("expected second Insert() at the same id to fail")
	}
}

func TestTableReleaseReusesID(t *testing.T) {
	tbl := NewTable()
	id, err := tbl.AllocateClientID()
	if err != nil {
		t.Fatalf("AllocateClientID() error = %v", err)
	}
	tbl.Insert(id, &fakeObject{})
	tbl.Release(id)
	if _, ok := tbl.Lookup(id); ok {
		t.Fatalf("Lookup(%d) still found after Release", id)
	}
	again, err := tbl.AllocateClientID()
	if err != nil {
		t.Fatalf("AllocateClientID() error = %v", err)
	}
	if again != id {
		t.Fatalf("AllocateClientID() after Release = %d, want immediately-reused %d", again, id)
	}
}

func TestTableRemovePendingResolvesByID(t *testing.T) {
	tbl := NewTable()
	id, err := tbl.AllocateServerID()
	if err != nil {
		t.Fatalf("AllocateServerID() error = %v", err)
	}
	obj := &fakeObject{}
	tbl.Insert(id, obj)

	tbl.RemovePending(id, obj)
	if _, ok := tbl.Lookup(id); ok {
		t.Fatalf("Lookup(%d) still found after RemovePending", id)
	}

	got, ok := tbl.ResolveForDelete(id)
	if !ok || got != Object(obj) {
		t.Fatalf("ResolveForDelete(%d) = (%v, %v), want the pending object", id, got, ok)
	}
	if _, ok := tbl.ResolveForDelete(id); ok {
		t.Fatalf("ResolveForDelete(%d) should not resolve twice", id)
	}
}

func TestTableResolveForDeleteFallsBackToLiveEntry(t *testing.T) {
	tbl := NewTable()
	id, err := tbl.AllocateServerID()
	if err != nil {
		t.Fatalf("AllocateServerID() error = %v", err)
	}
	obj := &fakeObject{}
	tbl.Insert(id, obj)

	got, ok := tbl.ResolveForDelete(id)
	if !ok || got != Object(obj) {
		t.Fatalf("ResolveForDelete(%d) = (%v, %v), want the live object", id, got, ok)
	}
	if _, ok := tbl.Lookup(id); ok {
		t.Fatalf("Lookup(%d) still found after ResolveForDelete", id)
	}
}
