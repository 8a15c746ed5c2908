package core

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/bnema/wl-proxy/wire"
)

// maxFDsPerRecv bounds how many ancillary fds a single Recvmsg call will
// accept, matching the handful any real Wayland message carries (the
// worst offender, wl_shm.create_pool, carries exactly one).
const maxFDsPerRecv = 28

// Endpoint is one half of the proxy's position in the conversation: the
// client-facing endpoint talks to the application over the proxy's own
// listening socket, the server-facing endpoint talks to the real
// compositor over $WAYLAND_DISPLAY (spec 4.2). Each Endpoint owns a
// socket, an object Table, and the byte/fd queues needed to read and
// write whole messages across partial reads and writes.
type Endpoint struct {
	ID   uint64
	Side Side
	Fd   int
	Objects *Table

	log zerolog.Logger

	inBuf []byte
	inFDs []int

	outBuf []byte
	outFDs []int

	// flushQueued dedupes repeated wake-ups asking this endpoint to
	// flush its outbound queue within one reactor iteration (spec 4.2,
	// 4.8: "coalesce flush requests raised during one dispatch batch").
	flushQueued bool

	closed bool
}

// NewEndpoint wraps an already-connected unix socket fd. The caller
// retains ownership of fd only until this call returns; Endpoint closes
// it in Close.
func NewEndpoint(id uint64, side Side, fd int, log zerolog.Logger) *Endpoint {
	return &Endpoint{
		ID:      id,
		Side:    side,
		Fd:      fd,
		Objects: NewTable(),
		log:     log.With().Uint64("endpoint", id).Str("side", side.String()).Logger(),
	}
}

// Closed reports whether this endpoint's socket has been torn down.
func (e *Endpoint) Closed() bool { return e.closed }

// Close shuts down the endpoint's socket. Any fds still queued in
// inFDs/outFDs are closed too, since nothing will ever read them now.
func (e *Endpoint) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	for _, fd := range e.inFDs {
		unix.Close(fd)
	}
	for _, fd := range e.outFDs {
		unix.Close(fd)
	}
	e.inFDs = nil
	e.outFDs = nil
	return unix.Close(e.Fd)
}

// Fill reads whatever is available on the socket into the inbound
// buffer, via Recvmsg so SCM_RIGHTS ancillary data is captured alongside
// the bytes (spec 4.1: fds travel out-of-band from the word stream they
// are referenced in). It returns the number of payload bytes read. A
// Recvmsg error (EAGAIN included) is returned as is, and a peer hangup
// is reported as 0 with the sentinel that IsEOF recognizes.
func (e *Endpoint) Fill() (int, error) {
	buf := make([]byte, 4096)
	oob := make([]byte, unix.CmsgSpace(maxFDsPerRecv*4))
	n, oobn, _, _, err := unix.Recvmsg(e.Fd, buf, oob, 0)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errEOF
	}
	e.inBuf = append(e.inBuf, buf[:n]...)
	if oobn > 0 {
		fds, err := parseFDs(oob[:oobn])
		if err != nil {
			return n, err
		}
		e.inFDs = append(e.inFDs, fds...)
	}
	return n, nil
}

// errEOF reports a clean peer hangup, distinguished from other recv
// errors so the reactor can tear the endpoint down quietly.
var errEOF = fmt.Errorf("endpoint: peer closed the connection")

// IsEOF reports whether err is the sentinel Fill returns on hangup.
func IsEOF(err error) bool { return err == errEOF }

func parseFDs(oob []byte) ([]int, error) {
	scms, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return nil, err
	}
	var fds []int
	for _, scm := range scms {
		got, err := unix.ParseUnixRights(&scm)
		if err != nil {
			return nil, err
		}
		fds = append(fds, got...)
	}
	return fds, nil
}

// NextMessage removes the next complete message from the inbound buffer
// and returns its words, header included. Fds are left in the inbound
// fd queue for handlers to take with PopFD. It
// returns (nil, false, nil) if fewer than a full message is currently
// buffered — the caller should wait for more Fill calls.
func (e *Endpoint) NextMessage() (words []uint32, ok bool, err error) {
	if len(e.inBuf) < wire.MinReadable {
		return nil, false, nil
	}
	hdr := wire.DecodeHeader(e.inBuf)
	if int(hdr.Size) < wire.HeaderSize || int(hdr.Size)%wire.WordSize != 0 {
		return nil, false, &Error{Kind: WrongMessageSize, Got: hdr.Size, Expected: uint32(wire.HeaderSize)}
	}
	if len(e.inBuf) < int(hdr.Size) {
		return nil, false, nil
	}
	raw := e.inBuf[:hdr.Size]
	e.inBuf = e.inBuf[hdr.Size:]
	words = bytesToWords(raw)
	return words, true, nil
}

// PopFD removes and returns the oldest fd received but not yet consumed
// by an argument decode. Fatal MissingFd is the caller's to raise if
// none remain (spec 7).
func (e *Endpoint) PopFD() (int, bool) {
	if len(e.inFDs) == 0 {
		return 0, false
	}
	fd := e.inFDs[0]
	e.inFDs = e.inFDs[1:]
	return fd, true
}

// QueueOut appends a fully-formed message (as returned by
// wire.Formatter.Finish) to the outbound queue and marks a flush as
// needed.
func (e *Endpoint) QueueOut(payload []byte, fds []int) {
	e.outBuf = append(e.outBuf, payload...)
	e.outFDs = append(e.outFDs, fds...)
	e.flushQueued = true
}

// NeedsFlush reports whether this endpoint has outbound bytes queued,
// used by the reactor to decide which sockets to poll for writability.
func (e *Endpoint) NeedsFlush() bool { return e.flushQueued && len(e.outBuf) > 0 }

// Flush writes as much of the outbound queue as the socket currently
// accepts, sending every queued fd alongside the first write (SCM_RIGHTS
// is only meaningful attached to an actual byte payload, so fds queued
// behind a second write wait for it).
func (e *Endpoint) Flush() error {
	if len(e.outBuf) == 0 {
		e.flushQueued = false
		return nil
	}
	var oob []byte
	if len(e.outFDs) > 0 {
		oob = unix.UnixRights(e.outFDs...)
	}
	n, err := unix.SendmsgN(e.Fd, e.outBuf, oob, nil, 0)
	if err != nil {
		return err
	}
	if len(oob) > 0 {
		e.outFDs = nil
	}
	e.outBuf = e.outBuf[n:]
	if len(e.outBuf) == 0 {
		e.flushQueued = false
	}
	return nil
}

func bytesToWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words
}
