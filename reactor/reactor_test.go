package reactor

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/bnema/wl-proxy/core"
	"github.com/bnema/wl-proxy/wire"
)

// fakeCompositor listens on a unix socket, standing in for the real
// compositor the reactor dials on every accept.
func fakeCompositor(t *testing.T, path string) int {
	t.Helper()
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socket() error = %v", err)
	}
	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if err := unix.Listen(fd, 1); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	t.Cleanup(func() { unix.Close(fd) })
	return fd
}

func dialUnix(t *testing.T, path string) int {
	t.Helper()
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socket() error = %v", err)
	}
	if err := unix.Connect(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { unix.Close(fd) })
	return fd
}

func toWords(payload []byte) []uint32 {
	words := make([]uint32, len(payload)/4)
	for i := range words {
		words[i] = uint32(payload[i*4]) | uint32(payload[i*4+1])<<8 |
			uint32(payload[i*4+2])<<16 | uint32(payload[i*4+3])<<24
	}
	return words
}

func wordsToBytes(words []uint32) []byte {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		b[i*4] = byte(w)
		b[i*4+1] = byte(w >> 8)
		b[i*4+2] = byte(w >> 16)
		b[i*4+3] = byte(w >> 24)
	}
	return b
}

// TestReactorAcceptDialsUpstreamAndBootstrapsDisplay exercises a full
// accept: the reactor takes one downstream connection, dials its own
// connection to the fake compositor, and seeds wl_display at id 1 on
// both sides. A real wl_display.sync request is then pushed through
// the client endpoint and must arrive, reheadered to the server-side
// id, on the fake compositor's end.
func TestReactorAcceptDialsUpstreamAndBootstrapsDisplay(t *testing.T) {
	dir := t.TempDir()
	upstreamPath := filepath.Join(dir, "upstream.sock")
	listenPath := filepath.Join(dir, "proxy.sock")
	compositorFd := fakeCompositor(t, upstreamPath)

	r := New(zerolog.Nop(), listenPath, upstreamPath)
	if err := r.listen(); err != nil {
		t.Fatalf("listen() error = %v", err)
	}
	t.Cleanup(func() { unix.Close(r.listenFd) })

	clientFd := dialUnix(t, listenPath)

	upstreamConnFd, _, err := unix.Accept(compositorFd)
	if err != nil {
		t.Fatalf("Accept() (compositor side) error = %v", err)
	}
	t.Cleanup(func() { unix.Close(upstreamConnFd) })

	r.acceptOne()

	if len(r.sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(r.sessions))
	}
	var s *session
	for _, v := range r.sessions {
		s = v
	}
	if _, ok := s.client.Objects.Lookup(core.DisplayObjectID); !ok {
		t.Fatal("expected wl_display bound at id 1 on the client table")
	}
	if _, ok := s.server.Objects.Lookup(core.DisplayObjectID); !ok {
		t.Fatal("expected wl_display bound at id 1 on the server table")
	}

	f := wire.NewFormatter()
	f.Uint32(2) // client-chosen callback id
	payload, _ := f.Finish(core.DisplayObjectID, 0 /* wl_display.sync */)
	if _, err := unix.Write(clientFd, payload); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if err := r.pump(s, core.ClientSide, unix.PollFd{Revents: unix.POLLIN}); err != nil {
		t.Fatalf("pump() error = %v", err)
	}
	r.flushQueued(s)
	if err := s.server.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	buf := make([]byte, 256)
	n, err := unix.Read(upstreamConnFd, buf)
	if err != nil {
		t.Fatalf("Read() (compositor side) error = %v", err)
	}
	got := toWords(buf[:n])
	if len(got) < 3 {
		t.Fatalf("forwarded message too short: %d words", len(got))
	}
	hdr := wire.DecodeHeader(wordsToBytes(got[:2]))
	if hdr.ObjectID != core.DisplayObjectID {
		t.Fatalf("forwarded ObjectID = %d, want %d", hdr.ObjectID, core.DisplayObjectID)
	}

	obj, ok := s.client.Objects.Lookup(2)
	if !ok {
		t.Fatal("expected wl_callback bound at client id 2 after sync")
	}
	if obj.ObjCore().ID(core.ServerSide) == 0 {
		t.Fatal("wl_callback should have a server-side mirror id")
	}
}

func TestReactorTeardownClosesBothEndpoints(t *testing.T) {
	r := New(zerolog.Nop(), "", "")

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socketpair() error = %v", err)
	}
	client := core.NewEndpoint(10, core.ClientSide, fds[0], zerolog.Nop())
	server := core.NewEndpoint(11, core.ServerSide, fds[1], zerolog.Nop())
	st := core.NewState(zerolog.Nop())
	st.SetServer(server)
	r.sessions[1] = &session{id: 1, client: client, server: server, disp: core.NewDispatcher(st, client, server), state: st}

	r.teardown(1)

	if !client.Closed() || !server.Closed() {
		t.Fatal("teardown should close both endpoints")
	}
	if _, ok := r.sessions[1]; ok {
		t.Fatal("teardown should remove the session from the map")
	}
}
