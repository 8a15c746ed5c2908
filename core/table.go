package core

import "fmt"

// ServerIDBoundary is the wire ID at which the server-allocated half of
// the ID space begins (spec 3: "IDs < that are client-allocated; IDs >=
// that are server-allocated").
const ServerIDBoundary uint32 = 0xff000000

// DisplayObjectID is the well-known wl_display singleton id, present on
// every endpoint before any traffic (spec 3).
const DisplayObjectID uint32 = 1

// IsServerAllocated reports whether id belongs to the server-allocated
// half of the ID space.
func IsServerAllocated(id uint32) bool { return id >= ServerIDBoundary }

// Table maps an endpoint's wire IDs to the Objects bound to them. One
// Table exists per Endpoint (spec 3, 4.3); lookups are O(1).
type Table struct {
	objects map[uint32]Object
	// pending holds objects a destructor request has already unbound
	// from objects (spec 4.4's two-step destroy: the side that issued
	// the destructor is freed immediately) but whose id the peer hasn't
	// yet forgotten, so a later wl_display.delete_id can still resolve
	// them via ResolveForDelete.
	pending map[uint32]Object
	// nextLow/nextHigh track the lowest unused id in each half, so
	// allocation stays "hand out the lowest unused id" without scanning
	// the whole map on every call in the common case.
	nextLow  uint32
	nextHigh uint32
}

// NewTable returns an empty Table with the wl_display singleton slot
// reserved (callers insert the concrete wl_display Object themselves).
func NewTable() *Table {
	return &Table{
		objects:  make(map[uint32]Object),
		pending:  make(map[uint32]Object),
		nextLow:  DisplayObjectID + 1,
		nextHigh: ServerIDBoundary,
	}
}

// Lookup resolves id to its bound Object, if any.
func (t *Table) Lookup(id uint32) (Object, bool) {
	o, ok := t.objects[id]
	return o, ok
}

// Insert binds id to obj. It fails if the id is already bound (spec
// 4.3: "Insertion fails if the ID is already bound"); it does not
// itself validate which half of the ID space id falls in — callers
// that allocate via AllocateClientID/AllocateServerID already got an id
// from the correct half, and callers binding an id supplied by the peer
// accept whatever half the peer legitimately owns.
func (t *Table) Insert(id uint32, obj Object) error {
	if _, exists := t.objects[id]; exists {
		return fmt.Errorf("object id %d already bound", id)
	}
	t.objects[id] = obj
	return nil
}

// Remove unbinds id. It is a no-op if id was not bound.
func (t *Table) Remove(id uint32) {
	delete(t.objects, id)
}

// AllocateClientID hands out the lowest unused id in the
// client-allocated half (< ServerIDBoundary). Used by the server-facing
// endpoint, which must mint new ids for objects it introduces to the
// upstream server (spec 4.3).
func (t *Table) AllocateClientID() (uint32, error) {
	for id := t.nextLow; id < ServerIDBoundary; id++ {
		if _, used := t.objects[id]; !used {
			t.nextLow = id
			return id, nil
		}
	}
	return 0, fmt.Errorf("client id space exhausted")
}

// AllocateServerID hands out the lowest unused id in the
// server-allocated half (>= ServerIDBoundary). Used by the
// client-facing endpoint, which must mint new ids for objects it
// introduces to a downstream client (spec 4.3).
func (t *Table) AllocateServerID() (uint32, error) {
	for id := t.nextHigh; id != 0; id++ {
		if _, used := t.objects[id]; !used {
			t.nextHigh = id
			return id, nil
		}
		if id == 0xffffffff {
			break
		}
	}
	return 0, fmt.Errorf("server id space exhausted")
}

// Release marks id as immediately reusable; called once delete_id
// confirms the peer has forgotten it (spec 4.3: "A freed ID is reusable
// immediately upon receiving delete_id for it").
func (t *Table) Release(id uint32) {
	t.Remove(id)
	t.reclaim(id)
}

// reclaim lowers the allocation watermark so a freed id is handed out
// again before any higher id still in use.
func (t *Table) reclaim(id uint32) {
	if id < ServerIDBoundary && id < t.nextLow {
		t.nextLow = id
	} else if id >= ServerIDBoundary && id < t.nextHigh {
		t.nextHigh = id
	}
}

// RemovePending unbinds id the instant a destructor request or event is
// dispatched for it, but keeps obj reachable so the peer's eventual
// wl_display.delete_id can still locate it by this same id (spec 4.4:
// "before delete_id, exactly one side is still bound").
func (t *Table) RemovePending(id uint32, obj Object) {
	t.Remove(id)
	t.pending[id] = obj
}

// ResolveForDelete locates and forgets id for a wl_display.delete_id
// sweep. id may still be live in objects (a destructor event, e.g.
// wl_callback.done, hasn't unbound it yet) or already parked in pending
// by RemovePending; either way this call is the table's last look at
// id, and the id becomes reusable immediately.
func (t *Table) ResolveForDelete(id uint32) (Object, bool) {
	if obj, ok := t.objects[id]; ok {
		delete(t.objects, id)
		t.reclaim(id)
		return obj, true
	}
	if obj, ok := t.pending[id]; ok {
		delete(t.pending, id)
		t.reclaim(id)
		return obj, true
	}
	return nil, false
}

// Len returns the number of currently bound ids, for test assertions.
func (t *Table) Len() int { return len(t.objects) }
