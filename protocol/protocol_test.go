package protocol

import (
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/bnema/wl-proxy/core"
	"github.com/bnema/wl-proxy/wire"
)

func newTestDispatcher(t *testing.T) (*core.Dispatcher, *core.Endpoint, *core.Endpoint) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socketpair() error = %v", err)
	}
	client := core.NewEndpoint(1, core.ClientSide, fds[0], zerolog.Nop())
	server := core.NewEndpoint(2, core.ServerSide, fds[1], zerolog.Nop())
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	display := NewWlDisplay(WlDisplayVersion)
	display.SetID(core.ClientSide, core.DisplayObjectID)
	display.SetID(core.ServerSide, core.DisplayObjectID)
	client.Objects.Insert(core.DisplayObjectID, display)
	server.Objects.Insert(core.DisplayObjectID, display)

	return core.NewDispatcher(core.NewState(zerolog.Nop()), client, server), client, server
}

func toWords(payload []byte) []uint32 {
	words := make([]uint32, len(payload)/4)
	for i := range words {
		words[i] = uint32(payload[i*4]) | uint32(payload[i*4+1])<<8 |
			uint32(payload[i*4+2])<<16 | uint32(payload[i*4+3])<<24
	}
	return words
}

func TestWlDisplayGetRegistryBindsBothSides(t *testing.T) {
	d, client, server := newTestDispatcher(t)

	f := wire.NewFormatter()
	f.Uint32(2) // client-chosen id for the new wl_registry
	payload, _ := f.Finish(core.DisplayObjectID, wlDisplayReqGetRegistry)

	if err := d.DispatchClientMessage(toWords(payload)); err != nil {
		t.Fatalf("DispatchClientMessage() error = %v", err)
	}

	obj, ok := client.Objects.Lookup(2)
	if !ok {
		t.Fatal("expected wl_registry bound at client id 2")
	}
	reg, ok := obj.(*WlRegistry)
	if !ok {
		t.Fatalf("bound object type = %T, want *WlRegistry", obj)
	}
	serverID := reg.ObjCore().ID(core.ServerSide)
	if serverID == 0 {
		t.Fatal("wl_registry should have a server-side id after BindClientCreatedObject")
	}
	if _, ok := server.Objects.Lookup(serverID); !ok {
		t.Fatal("wl_registry should also be bound in the server endpoint's table")
	}
}

func TestWlRegistryBindUnsupportedInterface(t *testing.T) {
	d, client, _ := newTestDispatcher(t)

	reg := NewWlRegistry(1)
	reg.SetID(core.ClientSide, 2)
	reg.SetID(core.ServerSide, 200)
	client.Objects.Insert(2, reg)

	f := wire.NewFormatter()
	f.Uint32(1) // global name
	f.NewIDWithInterface("not_a_real_interface", 1, 3)
	payload, _ := f.Finish(2, wlRegistryReqBind)

	err := d.DispatchClientMessage(toWords(payload))
	if err == nil {
		t.Fatal("expected UnsupportedInterface error")
	}
	werr, ok := err.(*core.Error)
	if !ok || werr.Kind != core.UnsupportedInterface {
		t.Fatalf("error = %v, want ErrorKind UnsupportedInterface", err)
	}
}

func TestWlShmCreatePoolCarriesFD(t *testing.T) {
	d, client, server := newTestDispatcher(t)

	shm := NewWlShm(WlShmVersion)
	shm.SetID(core.ClientSide, 2)
	shm.SetID(core.ServerSide, 200)
	client.Objects.Insert(2, shm)
	server.Objects.Insert(200, shm)

	r, w, err := unixPipe()
	if err != nil {
		t.Fatalf("pipe error = %v", err)
	}
	defer unix.Close(w)
	// Hand the client endpoint a real fd to pop, the way Fill() would
	// after an actual SCM_RIGHTS-carrying Recvmsg.
	oob := unix.UnixRights(r)
	if _, err := unix.SendmsgN(server.Fd, []byte{0}, oob, nil, 0); err != nil {
		t.Fatalf("SendmsgN() error = %v", err)
	}
	if _, err := client.Fill(); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	f := wire.NewFormatter()
	f.Uint32(3) // new pool id
	f.Int32(4096)
	payload, _ := f.Finish(2, wlShmReqCreatePool)

	if err := d.DispatchClientMessage(toWords(payload)); err != nil {
		t.Fatalf("DispatchClientMessage() error = %v", err)
	}
	pool, ok := client.Objects.Lookup(3)
	if !ok {
		t.Fatal("expected wl_shm_pool bound at client id 3")
	}
	if _, ok := pool.(*WlShmPool); !ok {
		t.Fatalf("bound object type = %T, want *WlShmPool", pool)
	}
}

func unixPipe() (int, int, error) {
	fds := make([]int, 2)
	if err := unix.Pipe(fds); err != nil {
		return 0, 0, err
	}
	return fds[0], fds[1], nil
}

// TestDestroyRoundTripForwardsDeleteID drives spec 8 scenario 1: a
// client-issued destructor request frees only the server-side id right
// away, and the matching wl_display.delete_id from the server is what
// finally forwards to the client and frees the client-side id.
func TestDestroyRoundTripForwardsDeleteID(t *testing.T) {
	d, client, server := newTestDispatcher(t)

	surf := NewWlSurface(WlSurfaceVersion)
	surf.SetID(core.ClientSide, 5)
	surf.SetID(core.ServerSide, 105)
	client.Objects.Insert(5, surf)
	server.Objects.Insert(105, surf)

	f := wire.NewFormatter()
	payload, _ := f.Finish(5, wlSurfaceReqDestroy)
	if err := d.DispatchClientMessage(toWords(payload)); err != nil {
		t.Fatalf("DispatchClientMessage(destroy) error = %v", err)
	}

	if _, ok := server.Objects.Lookup(105); ok {
		t.Fatal("server-side id should be unbound immediately after the destroy request (spec 4.4)")
	}
	if _, ok := client.Objects.Lookup(5); !ok {
		t.Fatal("client-side id should remain bound until delete_id arrives (spec 4.4)")
	}
	if !surf.Destroyed() || !surf.PendingDeleteID() {
		t.Fatal("surface should be marked destroyed and pending delete_id after the request")
	}

	ef := wire.NewFormatter()
	ef.Uint32(105)
	epayload, _ := ef.Finish(core.DisplayObjectID, wlDisplayEvDeleteID)
	if err := d.DispatchServerMessage(toWords(epayload)); err != nil {
		t.Fatalf("DispatchServerMessage(delete_id) error = %v", err)
	}

	if err := client.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	buf := make([]byte, 64)
	n, err := unix.Read(server.Fd, buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	hdr := wire.DecodeHeader(buf[:n])
	if hdr.ObjectID != core.DisplayObjectID || hdr.Opcode != wlDisplayEvDeleteID {
		t.Fatalf("forwarded header = %+v, want wl_display.delete_id on id %d", hdr, core.DisplayObjectID)
	}
	dec := wire.NewDecoder(toWords(buf[:n]))
	gotID, err := dec.Uint32("id")
	if err != nil || gotID != 5 {
		t.Fatalf("forwarded delete_id id = %d, err = %v, want 5 (the client-side id)", gotID, err)
	}

	if _, ok := client.Objects.Lookup(5); ok {
		t.Fatal("client-side id should be released once delete_id is processed")
	}
	if surf.PendingDeleteID() {
		t.Fatal("PendingDeleteID should clear once delete_id is processed")
	}
}

// TestRegistryGlobalDropsUnknownInterface drives spec 8 scenario 2: a
// global for an interface this build has no descriptor for is dropped
// outright, and never enters the registry's observed-name set.
func TestRegistryGlobalDropsUnknownInterface(t *testing.T) {
	d, client, server := newTestDispatcher(t)

	reg := NewWlRegistry(WlRegistryVersion)
	reg.SetID(core.ClientSide, 2)
	reg.SetID(core.ServerSide, 200)
	client.Objects.Insert(2, reg)
	server.Objects.Insert(200, reg)

	f := wire.NewFormatter()
	f.Uint32(7) // name
	f.String("wp_unknown_v1")
	f.Uint32(3) // version
	payload, _ := f.Finish(200, wlRegistryEvGlobal)
	if err := d.DispatchServerMessage(toWords(payload)); err != nil {
		t.Fatalf("DispatchServerMessage(global) error = %v", err)
	}

	if err := client.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if client.NeedsFlush() {
		t.Fatal("an unknown-interface global should not leave bytes queued for the client")
	}
	if _, ok := reg.seenGlobals[7]; ok {
		t.Fatal("an unknown-interface global should not be recorded in the observed-name set")
	}
}

// TestRegistryGlobalCapsVersionToBaseline drives spec 8 scenario 3: a
// known interface advertised above this build's baseline is forwarded
// with its version capped, not passed through unchanged.
func TestRegistryGlobalCapsVersionToBaseline(t *testing.T) {
	d, client, server := newTestDispatcher(t)

	reg := NewWlRegistry(WlRegistryVersion)
	reg.SetID(core.ClientSide, 2)
	reg.SetID(core.ServerSide, 200)
	client.Objects.Insert(2, reg)
	server.Objects.Insert(200, reg)

	f := wire.NewFormatter()
	f.Uint32(7) // name
	f.String("wl_compositor")
	f.Uint32(9) // version, above WlCompositorVersion's baseline of 6
	payload, _ := f.Finish(200, wlRegistryEvGlobal)
	if err := d.DispatchServerMessage(toWords(payload)); err != nil {
		t.Fatalf("DispatchServerMessage(global) error = %v", err)
	}

	if err := client.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	buf := make([]byte, 128)
	n, err := unix.Read(server.Fd, buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	dec := wire.NewDecoder(toWords(buf[:n]))
	gotName, _ := dec.Uint32("name")
	gotIface, _ := dec.String("interface", false)
	gotVersion, _ := dec.Uint32("version")
	if gotName != 7 || gotIface != "wl_compositor" || gotVersion != WlCompositorVersion {
		t.Fatalf("forwarded global = (name=%d, interface=%q, version=%d), want (7, \"wl_compositor\", %d)",
			gotName, gotIface, gotVersion, WlCompositorVersion)
	}
	if _, ok := reg.seenGlobals[7]; !ok {
		t.Fatal("a forwarded global should be recorded in the observed-name set")
	}
}

// TestRegistryGlobalRemoveDroppedWhenNeverSeen covers the boundary case
// named alongside scenario 2 in spec 8: global_remove for a name the
// client was never told about must not reach it either.
func TestRegistryGlobalRemoveDroppedWhenNeverSeen(t *testing.T) {
	d, client, server := newTestDispatcher(t)

	reg := NewWlRegistry(WlRegistryVersion)
	reg.SetID(core.ClientSide, 2)
	reg.SetID(core.ServerSide, 200)
	client.Objects.Insert(2, reg)
	server.Objects.Insert(200, reg)

	f := wire.NewFormatter()
	f.Uint32(7) // name, never advertised
	payload, _ := f.Finish(200, wlRegistryEvGlobalRemove)
	if err := d.DispatchServerMessage(toWords(payload)); err != nil {
		t.Fatalf("DispatchServerMessage(global_remove) error = %v", err)
	}

	if err := client.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if client.NeedsFlush() {
		t.Fatal("global_remove for a name never forwarded should not reach the client")
	}
}

// TestDataDeviceEnterDropsCrossClientSurface drives spec 8 scenario 6: an
// enter event naming a surface bound to a different client endpoint is
// dropped rather than forwarded.
func TestDataDeviceEnterDropsCrossClientSurface(t *testing.T) {
	d, client, server := newTestDispatcher(t)

	otherFds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socketpair() error = %v", err)
	}
	otherClient := core.NewEndpoint(99, core.ClientSide, otherFds[0], zerolog.Nop())
	t.Cleanup(func() {
		otherClient.Close()
		unix.Close(otherFds[1])
	})

	device := NewWlDataDevice(WlDataDeviceVersion)
	device.SetID(core.ClientSide, 3)
	device.SetID(core.ServerSide, 103)
	client.Objects.Insert(3, device)
	server.Objects.Insert(103, device)

	surf := NewWlSurface(WlSurfaceVersion)
	surf.SetEndpoint(core.ClientSide, otherClient) // bound to a different client
	server.Objects.Insert(200, surf)

	offer := NewWlDataOffer(WlDataOfferVersion)
	offer.SetID(core.ServerSide, 201)
	offer.SetID(core.ClientSide, 6)
	server.Objects.Insert(201, offer)
	client.Objects.Insert(6, offer)

	f := wire.NewFormatter()
	f.Uint32(1)   // serial
	f.Uint32(200) // surface, bound to otherClient
	f.Fixed(0)
	f.Fixed(0)
	f.Uint32(201) // id (data offer)
	payload, _ := f.Finish(103, wlDataDeviceEvEnter)
	if err := d.DispatchServerMessage(toWords(payload)); err != nil {
		t.Fatalf("DispatchServerMessage(enter) error = %v", err)
	}

	if err := client.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if client.NeedsFlush() {
		t.Fatal("enter naming a surface bound to a different client should not reach this client")
	}
}
