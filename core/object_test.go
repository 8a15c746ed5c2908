package core

import "testing"

func TestObjectCoreForwardingDefaultsOn(t *testing.T) {
	c := NewObjectCore(1, 4)
	if !c.ForwardsToServer() || !c.ForwardsToClient() {
		t.Fatal("both forwarding switches should default to true")
	}
	c.SetForwardToServer(false)
	if c.ForwardsToServer() {
		t.Fatal("SetForwardToServer(false) did not take effect")
	}
}

func TestObjectCoreReentrancyGuard(t *testing.T) {
	c := NewObjectCore(1, 1)
	if !c.tryBorrow() {
		t.Fatal("first tryBorrow() should succeed")
	}
	if c.tryBorrow() {
		t.Fatal("second tryBorrow() should fail while still borrowed")
	}
	c.release()
	if !c.tryBorrow() {
		t.Fatal("tryBorrow() should succeed again after release")
	}
}

func TestObjectCoreTwoStepDestroy(t *testing.T) {
	c := NewObjectCore(1, 1)
	c.SetID(ClientSide, 10)
	if c.Destroyed() {
		t.Fatal("fresh object should not be destroyed")
	}
	c.MarkDestroyed()
	if !c.Destroyed() || !c.PendingDeleteID() {
		t.Fatal("MarkDestroyed should set both destroyed and pending-delete-id")
	}
	// id stays bound until delete_id actually arrives.
	if c.ID(ClientSide) != 10 {
		t.Fatal("id must remain bound while delete_id is pending")
	}
	c.ClearPending()
	if c.PendingDeleteID() {
		t.Fatal("ClearPending should clear the pending-delete-id bit")
	}
}
