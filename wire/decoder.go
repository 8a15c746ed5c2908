package wire

import "encoding/binary"

// Header is a decoded Wayland message header.
type Header struct {
	ObjectID uint32
	Opcode   uint16
	Size     uint32
}

// DecodeHeader parses the 8-byte message header. The caller guarantees
// len(b) >= HeaderSize.
func DecodeHeader(b []byte) Header {
	objectID := binary.LittleEndian.Uint32(b[0:4])
	word := binary.LittleEndian.Uint32(b[4:8])
	return Header{
		ObjectID: objectID,
		Opcode:   uint16(word & 0xffff),
		Size:     word >> 16,
	}
}

// Decoder walks a message's payload word by word. It does not handle
// fds: their queue lives on core.Endpoint, not here, since it's shared
// across the whole inbound stream.
type Decoder struct {
	words []uint32
	pos   int
}

// NewDecoder wraps a payload (header words included, at pos 0 and 1) so
// that argument parsing starts at word index 2, matching the generated
// dispatcher convention used throughout package protocol.
func NewDecoder(words []uint32) *Decoder {
	return &Decoder{words: words, pos: 2}
}

// Len returns the total word count, including the 2-word header.
func (d *Decoder) Len() int { return len(d.words) }

// Words returns the full message, header words included, for handlers
// that need to re-emit it verbatim via a raw forward.
func (d *Decoder) Words() []uint32 { return d.words }

// Pos returns the current word offset.
func (d *Decoder) Pos() int { return d.pos }

// Done reports whether every word has been consumed.
func (d *Decoder) Done() bool { return d.pos >= len(d.words) }

// Remaining returns the words not yet consumed, including d.pos.
func (d *Decoder) Remaining() []uint32 { return d.words[d.pos:] }

// Uint32 consumes one raw word.
func (d *Decoder) Uint32(name string) (uint32, error) {
	if d.pos >= len(d.words) {
		return 0, missingArgument(name)
	}
	v := d.words[d.pos]
	d.pos++
	return v, nil
}

// Int32 consumes one word as a signed integer.
func (d *Decoder) Int32(name string) (int32, error) {
	v, err := d.Uint32(name)
	return int32(v), err
}

// Fixed consumes one word as a 24.8 fixed-point number.
func (d *Decoder) Fixed(name string) (Fixed, error) {
	v, err := d.Uint32(name)
	return Fixed(v), err
}

// String consumes a length-prefixed, nul-terminated, padded string.
// If allowNull is false, a zero length is a schema violation.
func (d *Decoder) String(name string, allowNull bool) (string, error) {
	n, err := d.Uint32(name)
	if err != nil {
		return "", err
	}
	if n == 0 {
		if allowNull {
			return "", nil
		}
		return "", Unterminated(name)
	}
	nWords := (int(n) + 3) / 4
	if d.pos+nWords > len(d.words) {
		return "", missingArgument(name)
	}
	raw := wordsToBytes(d.words[d.pos : d.pos+nWords])
	d.pos += nWords
	if int(n) > len(raw) || raw[n-1] != 0 {
		return "", Unterminated(name)
	}
	return string(raw[:n-1]), nil
}

// Array consumes a length-prefixed, padded byte array.
func (d *Decoder) Array(name string) ([]byte, error) {
	n, err := d.Uint32(name)
	if err != nil {
		return nil, err
	}
	nWords := (int(n) + 3) / 4
	if d.pos+nWords > len(d.words) {
		return nil, ShortArray(name)
	}
	raw := wordsToBytes(d.words[d.pos : d.pos+nWords])
	d.pos += nWords
	out := make([]byte, n)
	copy(out, raw[:n])
	return out, nil
}

// NewIDWithInterface consumes the (interface name, version, id) triple
// used when a new_id argument's interface is not statically known (the
// wl_registry.bind case).
func (d *Decoder) NewIDWithInterface(name string) (iface string, version, id uint32, err error) {
	iface, err = d.String(name, false)
	if err != nil {
		return "", 0, 0, err
	}
	version, err = d.Uint32(name + ".version")
	if err != nil {
		return "", 0, 0, err
	}
	id, err = d.Uint32(name + ".id")
	if err != nil {
		return "", 0, 0, err
	}
	return iface, version, id, nil
}

func missingArgument(name string) error {
	return &Error{Op: "arg " + name, Err: errMissingArgumentSentinel}
}

var errMissingArgumentSentinel = missingArgumentSentinel{}

type missingArgumentSentinel struct{}

func (missingArgumentSentinel) Error() string { return "message ended before this argument" }

func wordsToBytes(words []uint32) []byte {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}
