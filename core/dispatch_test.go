package core

import (
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/bnema/wl-proxy/wire"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *Endpoint, *Endpoint) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socketpair() error = %v", err)
	}
	client := NewEndpoint(1, ClientSide, fds[0], zerolog.Nop())
	server := NewEndpoint(2, ServerSide, fds[1], zerolog.Nop())
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	st := NewState(zerolog.Nop())
	return NewDispatcher(st, client, server), client, server
}

func toWords(payload []byte) []uint32 {
	words := make([]uint32, len(payload)/4)
	for i := range words {
		words[i] = uint32(payload[i*4]) | uint32(payload[i*4+1])<<8 |
			uint32(payload[i*4+2])<<16 | uint32(payload[i*4+3])<<24
	}
	return words
}

func TestDispatcherForwardsUnhandledRequest(t *testing.T) {
	d, client, server := newTestDispatcher(t)

	obj := &fakeObject{core: NewObjectCore(1, 1)}
	obj.core.SetID(ClientSide, 5)
	obj.core.SetID(ServerSide, 100)
	if err := client.Objects.Insert(5, obj); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	f := wire.NewFormatter()
	f.Uint32(42)
	payload, _ := f.Finish(5, 2)

	if err := d.DispatchClientMessage(toWords(payload)); err != nil {
		t.Fatalf("DispatchClientMessage() error = %v", err)
	}
	if len(server.outBuf) == 0 {
		t.Fatal("expected the request to be forwarded to the server endpoint")
	}
	hdr := wire.DecodeHeader(server.outBuf)
	if hdr.ObjectID != 100 {
		t.Fatalf("forwarded ObjectID = %d, want 100 (the server-side id)", hdr.ObjectID)
	}
	if hdr.Opcode != 2 {
		t.Fatalf("forwarded Opcode = %d, want 2", hdr.Opcode)
	}
}

func TestDispatcherSuppressesForwardWhenSwitchOff(t *testing.T) {
	d, client, server := newTestDispatcher(t)

	obj := &fakeObject{core: NewObjectCore(1, 1)}
	obj.core.SetID(ClientSide, 5)
	obj.core.SetID(ServerSide, 100)
	obj.core.SetForwardToServer(false)
	client.Objects.Insert(5, obj)

	f := wire.NewFormatter()
	payload, _ := f.Finish(5, 0)
	if err := d.DispatchClientMessage(toWords(payload)); err != nil {
		t.Fatalf("DispatchClientMessage() error = %v", err)
	}
	if len(server.outBuf) != 0 {
		t.Fatal("request should not be forwarded once ForwardToServer is off")
	}
}

func TestDispatcherUnknownObjectIsFatal(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	f := wire.NewFormatter()
	payload, _ := f.Finish(999, 0)
	err := d.DispatchClientMessage(toWords(payload))
	if err == nil {
		t.Fatal("expected an error dispatching to an unbound object id")
	}
	werr, ok := err.(*Error)
	if !ok || werr.Kind != NoClientObject {
		t.Fatalf("error = %v, want ErrorKind NoClientObject", err)
	}
}

// borrowingHandler's HandleRequest re-enters the dispatcher against the
// same object, to exercise the reentrancy guard (spec 4.5).
type borrowingHandler struct {
	fakeObject
	d        *Dispatcher
	words    []uint32
}

func (b *borrowingHandler) HandleRequest(d *Dispatcher, opcode uint16, dec *wire.Decoder) error {
	return d.DispatchClientMessage(b.words)
}

func TestDispatcherDetectsReentrancy(t *testing.T) {
	d, client, _ := newTestDispatcher(t)

	f := wire.NewFormatter()
	payload, _ := f.Finish(7, 0)
	words := toWords(payload)

	obj := &borrowingHandler{fakeObject: fakeObject{core: NewObjectCore(1, 1)}, words: words}
	obj.core.SetID(ClientSide, 7)
	client.Objects.Insert(7, obj)

	err := d.DispatchClientMessage(words)
	if err == nil {
		t.Fatal("expected HandlerBorrowed from the reentrant dispatch")
	}
	werr, ok := err.(*Error)
	if !ok || werr.Kind != HandlerBorrowed {
		t.Fatalf("error = %v, want ErrorKind HandlerBorrowed", err)
	}
}
