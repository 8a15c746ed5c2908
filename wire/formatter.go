package wire

import "encoding/binary"

// Formatter builds one outgoing message's payload. The sender id and
// opcode/size header words are written last, once the full argument
// list is known, mirroring the teacher's approach of reserving header
// space up front and patching it after marshalling (wlclient.Display.SendRequest).
type Formatter struct {
	buf []byte
	fds []int
}

// NewFormatter returns a Formatter with its header words reserved.
func NewFormatter() *Formatter {
	f := &Formatter{buf: make([]byte, HeaderSize, 64)}
	return f
}

// Uint32 appends a raw 32-bit word: int, uint, enum, fixed, object id or
// new_id-with-static-interface all share this encoding (spec 4.1 table).
func (f *Formatter) Uint32(v uint32) {
	f.buf = binary.LittleEndian.AppendUint32(f.buf, v)
}

// Int32 appends a signed 32-bit word.
func (f *Formatter) Int32(v int32) {
	f.Uint32(uint32(v))
}

// Fixed appends a 24.8 fixed-point word.
func (f *Formatter) Fixed(v Fixed) {
	f.Uint32(uint32(v))
}

// Words appends a run of raw words, used by generated code for
// fixed-size prefixes that precede a string/array argument.
func (f *Formatter) Words(ws []uint32) {
	for _, w := range ws {
		f.Uint32(w)
	}
}

// String appends a length-prefixed, nul-terminated, 4-byte-padded UTF-8
// string. An empty s is encoded as a one-byte string holding only the
// nul terminator, not as a null string; callers needing a true null
// must use NullString.
func (f *Formatter) String(s string) {
	n := uint32(len(s) + 1)
	f.Uint32(n)
	f.buf = append(f.buf, s...)
	f.buf = append(f.buf, 0)
	f.pad(int(n))
}

// NullString appends the wire encoding of a null string argument
// (length word 0, no bytes, no padding).
func (f *Formatter) NullString() {
	f.Uint32(0)
}

// Array appends a length-prefixed, 4-byte-padded byte array.
func (f *Formatter) Array(b []byte) {
	f.Uint32(uint32(len(b)))
	f.buf = append(f.buf, b...)
	f.pad(len(b))
}

// NewIDWithInterface appends the wire encoding of a new_id argument
// whose interface is not statically known: interface name string,
// version word, id word (spec 4.1).
func (f *Formatter) NewIDWithInterface(iface string, version, id uint32) {
	f.String(iface)
	f.Uint32(version)
	f.Uint32(id)
}

// FD queues a file descriptor to travel alongside this message via
// SCM_RIGHTS; it occupies no payload bytes (spec 4.1).
func (f *Formatter) FD(fd int) {
	f.fds = append(f.fds, fd)
}

func (f *Formatter) pad(n int) {
	padding := (4 - (n % 4)) % 4
	for i := 0; i < padding; i++ {
		f.buf = append(f.buf, 0)
	}
}

// Finish patches the header with the resolved sender id, opcode and
// total size, and returns the payload bytes plus the fd queue. The
// Formatter must not be reused afterwards.
func (f *Formatter) Finish(senderID uint32, opcode uint16) ([]byte, []int) {
	size := uint32(len(f.buf))
	binary.LittleEndian.PutUint32(f.buf[0:4], senderID)
	binary.LittleEndian.PutUint32(f.buf[4:8], uint32(opcode)|(size<<16))
	return f.buf, f.fds
}
