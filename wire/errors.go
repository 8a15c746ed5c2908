package wire

import "fmt"

// HeaderSize is the byte length of a Wayland message header: the sender
// object id word followed by the packed (opcode, size) word.
const HeaderSize = 8

// WordSize is the wire alignment unit; every argument is padded to it.
const WordSize = 4

// MinReadable is the smallest number of buffered bytes worth attempting
// to parse a header from (spec 4.2: "fewer than 8 bytes" stops draining).
const MinReadable = HeaderSize

// Error is a decode/encode-time wire fault. It always corresponds to one
// of the fatal ObjectErrorKind values from spec 7 (WrongMessageSize,
// MissingArgument, TrailingBytes, MissingFd); package core returns it
// unconverted, and the reactor tears the session down on it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("wire: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	errMissingFd     = fmt.Errorf("fd queue exhausted")
	errUnterminated  = fmt.Errorf("string argument is not nul-terminated")
	errShortArray    = fmt.Errorf("array argument declares more bytes than remain")
	errTrailingBytes = fmt.Errorf("trailing bytes after last declared argument")
)

// MissingFd reports that an fd-typed argument had no descriptor queued.
func MissingFd(name string) error {
	return &Error{Op: "arg " + name, Err: errMissingFd}
}

// Unterminated reports a non-nul-terminated string payload.
func Unterminated(name string) error {
	return &Error{Op: "arg " + name, Err: errUnterminated}
}

// ShortArray reports an array argument whose declared length overruns
// the remaining payload.
func ShortArray(name string) error {
	return &Error{Op: "arg " + name, Err: errShortArray}
}

// TrailingBytes reports payload left over after parsing every declared
// argument of a message.
func TrailingBytes() error {
	return &Error{Op: "message", Err: errTrailingBytes}
}
