// Package reactor drives the proxy's single-threaded event loop (spec
// 4.8): one goroutine, one unix.Poll call per iteration, no locks
// needed anywhere downstream because nothing runs concurrently with
// dispatch. Every session — one downstream client paired with its own
// connection to the real compositor — is driven entirely from this
// loop.
package reactor

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/bnema/wl-proxy/core"
)

// session pairs one downstream client connection with its own upstream
// connection to the real compositor, and the Dispatcher/State tying
// them together.
type session struct {
	id     uint64
	client *core.Endpoint
	server *core.Endpoint
	disp   *core.Dispatcher
	state  *core.State
}

// Reactor owns the listening socket, dials a fresh upstream connection
// for every accepted client, and multiplexes all of it over one
// unix.Poll loop.
type Reactor struct {
	Log zerolog.Logger

	// ListenPath is the unix socket path the proxy itself listens on
	// (what $WAYLAND_DISPLAY should point downstream clients at).
	ListenPath string
	// UpstreamPath is the real compositor's socket.
	UpstreamPath string

	// TraceEnabled and TracePrefix configure the spec 6 wire trace on
	// every session's State; set before the first Run/acceptOne.
	TraceEnabled bool
	TracePrefix  string

	listenFd int
	sessions map[uint64]*session
	nextID   uint64
}

// New returns a Reactor ready to Run once its fields are set.
func New(log zerolog.Logger, listenPath, upstreamPath string) *Reactor {
	return &Reactor{
		Log:          log,
		ListenPath:   listenPath,
		UpstreamPath: upstreamPath,
		sessions:     make(map[uint64]*session),
	}
}

// Run binds the listening socket and drives the event loop until stop
// closes, SIGINT/SIGTERM arrives, or an unrecoverable error occurs; it
// closes the listening socket before returning.
func (r *Reactor) Run(stop <-chan struct{}) error {
	if err := r.Listen(); err != nil {
		return err
	}
	defer unix.Close(r.listenFd)
	return r.Serve(stop)
}

// Close releases the listening socket. Run already closes it itself, so
// a Close after Run closes the same fd number a second time; callers
// driving Listen/Serve directly (window-to-tray) are responsible for
// calling this once Serve returns.
func (r *Reactor) Close() error {
	return unix.Close(r.listenFd)
}

// Listen binds the downstream listening socket without starting the
// poll loop, so a caller that needs to do something once the socket
// exists but before serving traffic — window-to-tray spawning its
// child only once $WAYLAND_DISPLAY resolves to a live socket — can
// call this, act, then call Serve.
func (r *Reactor) Listen() error {
	return r.listen()
}

// Serve drives the poll loop against an already-bound listening
// socket (see Listen) until stop closes, a signal arrives, or an
// unrecoverable error occurs. The caller is responsible for closing
// the listening fd once Serve returns.
func (r *Reactor) Serve(stop <-chan struct{}) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case <-stop:
			r.Log.Info().Msg("reactor: stop requested")
			return nil
		case s := <-sig:
			r.Log.Info().Str("signal", s.String()).Msg("reactor: received signal, shutting down")
			return nil
		default:
		}

		fds := r.buildPollSet()
		n, err := unix.Poll(fds, 1000)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return fmt.Errorf("reactor: poll: %w", err)
		}
		if n == 0 {
			continue
		}

		if fds[0].Revents&unix.POLLIN != 0 {
			r.acceptOne()
		}
		r.serviceSessions(fds[1:])
	}
}

func (r *Reactor) listen() error {
	os.Remove(r.ListenPath)
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return fmt.Errorf("reactor: socket: %w", err)
	}
	addr := &unix.SockaddrUnix{Name: r.ListenPath}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return fmt.Errorf("reactor: bind %s: %w", r.ListenPath, err)
	}
	if err := unix.Listen(fd, 16); err != nil {
		unix.Close(fd)
		return fmt.Errorf("reactor: listen: %w", err)
	}
	r.listenFd = fd
	r.Log.Info().Str("path", r.ListenPath).Msg("reactor: listening")
	return nil
}

// buildPollSet lays the listening fd at index 0, followed by two
// entries (client, server) per live session, each marked for POLLOUT
// too when it has outbound bytes still queued.
func (r *Reactor) buildPollSet() []unix.PollFd {
	fds := make([]unix.PollFd, 1, 1+2*len(r.sessions))
	fds[0] = unix.PollFd{Fd: int32(r.listenFd), Events: unix.POLLIN}
	for _, s := range r.sessions {
		fds = append(fds, pollEntry(s.client), pollEntry(s.server))
	}
	return fds
}

func pollEntry(ep *core.Endpoint) unix.PollFd {
	events := int16(unix.POLLIN)
	if ep.NeedsFlush() {
		events |= unix.POLLOUT
	}
	return unix.PollFd{Fd: int32(ep.Fd), Events: events}
}

func (r *Reactor) acceptOne() {
	connFd, _, err := unix.Accept(r.listenFd)
	if err != nil {
		if err != unix.EAGAIN {
			r.Log.Warn().Err(err).Msg("reactor: accept failed")
		}
		return
	}
	upstreamFd, err := dial(r.UpstreamPath)
	if err != nil {
		r.Log.Warn().Err(err).Msg("reactor: dial upstream failed, dropping client")
		unix.Close(connFd)
		return
	}

	r.nextID++
	id := r.nextID
	st := core.NewState(r.Log)
	st.TraceEnabled = r.TraceEnabled
	st.TracePrefix = r.TracePrefix
	client := core.NewEndpoint(id*2, core.ClientSide, connFd, r.Log)
	server := core.NewEndpoint(id*2+1, core.ServerSide, upstreamFd, r.Log)
	st.SetServer(server)
	disp := core.NewDispatcher(st, client, server)

	if err := bootstrapDisplay(disp, client, server); err != nil {
		r.Log.Warn().Err(err).Msg("reactor: bootstrap failed, dropping client")
		client.Close()
		server.Close()
		return
	}

	r.sessions[id] = &session{id: id, client: client, server: server, disp: disp, state: st}
	r.Log.Info().Uint64("session", id).Msg("reactor: client connected")
}

func dial(path string) (int, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return 0, err
	}
	if err := unix.Connect(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return 0, err
	}
	return fd, nil
}

// serviceSessions walks the poll results for every session's two fds
// (in the same order buildPollSet emitted them) and drains/dispatches/
// flushes as needed, tearing down any session that hits a fatal error
// or a closed peer.
func (r *Reactor) serviceSessions(fds []unix.PollFd) {
	i := 0
	var dead []uint64
	for id, s := range r.sessions {
		clientFd, serverFd := fds[i], fds[i+1]
		i += 2

		if err := r.pump(s, core.ClientSide, clientFd); err != nil {
			r.Log.Warn().Uint64("session", id).Err(err).Msg("reactor: client endpoint failed")
			dead = append(dead, id)
			continue
		}
		if err := r.pump(s, core.ServerSide, serverFd); err != nil {
			r.Log.Warn().Uint64("session", id).Err(err).Msg("reactor: server endpoint failed")
			dead = append(dead, id)
			continue
		}
		r.flushQueued(s)
	}
	for _, id := range dead {
		r.teardown(id)
	}
}

func (r *Reactor) pump(s *session, side core.Side, pfd unix.PollFd) error {
	ep := s.client
	if side == core.ServerSide {
		ep = s.server
	}

	if pfd.Revents&unix.POLLOUT != 0 {
		if err := ep.Flush(); err != nil && !isAgain(err) {
			return err
		}
	}
	if pfd.Revents&(unix.POLLHUP|unix.POLLERR) != 0 {
		return fmt.Errorf("endpoint closed")
	}
	if pfd.Revents&unix.POLLIN == 0 {
		return nil
	}

	for {
		n, err := ep.Fill()
		if err != nil {
			if core.IsEOF(err) {
				return err
			}
			if isAgain(err) {
				break
			}
			return err
		}
		if n == 0 {
			break
		}
	}

	for {
		words, ok, err := ep.NextMessage()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if side == core.ClientSide {
			err = s.disp.DispatchClientMessage(words)
		} else {
			err = s.disp.DispatchServerMessage(words)
		}
		if werr, ok := err.(*core.Error); ok {
			if werr.Kind.Fatal() {
				return werr
			}
			r.Log.Debug().Err(werr).Msg("reactor: local dispatch error")
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// flushQueued drains every endpoint State.QueueFlush accumulated while
// servicing this iteration's readable fds (spec 4.2, 4.8: coalesce
// flush work into one pass per dispatch batch rather than flushing
// after every single queued message).
func (r *Reactor) flushQueued(s *session) {
	for _, ep := range s.state.DrainFlushQueue() {
		if err := ep.Flush(); err != nil && !isAgain(err) {
			r.Log.Debug().Err(err).Msg("reactor: flush failed, will retry on next writable poll")
		}
	}
}

func (r *Reactor) teardown(id uint64) {
	s, ok := r.sessions[id]
	if !ok {
		return
	}
	s.client.Close()
	s.server.Close()
	s.state.MarkDestroyed()
	delete(r.sessions, id)
	r.Log.Info().Uint64("session", id).Msg("reactor: session torn down")
}

func isAgain(err error) bool {
	return err == unix.EAGAIN || err == unix.EWOULDBLOCK
}
