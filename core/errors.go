// Package core implements the connection-level runtime: the Endpoint
// (spec 4.2), the object table (spec 4.3), object core and two-step
// destruction lifecycle (spec 4.4), the reentrancy-safe dispatch engine
// (spec 4.5), the outgoing message builder (spec 4.6), and the
// process-wide State (spec 3).
package core

import "fmt"

// ErrorKind enumerates every fault the runtime can raise while parsing,
// dispatching, or sending a message (spec 7). Fatal kinds tear down the
// endpoint that produced them; local kinds are returned to the caller of
// a TrySend* method.
type ErrorKind int

const (
	// HandlerBorrowed: reentrant dispatch into an object whose handler
	// is already executing. Fatal.
	HandlerBorrowed ErrorKind = iota
	// ReceiverNoServerID: TrySend* targeted a request but the object has
	// no server_obj_id. Local.
	ReceiverNoServerID
	// ReceiverNoClient: TrySend* targeted an event but the object has no
	// bound client endpoint. Local.
	ReceiverNoClient
	// ArgNoServerID: an object argument has no server_obj_id to encode
	// for a request. Local.
	ArgNoServerID
	// ArgNoClientID: an object argument is not bound to the destination
	// client endpoint. Local.
	ArgNoClientID
	// GenerateServerID: server-side ID allocation failed (space
	// exhausted). Local.
	GenerateServerID
	// GenerateClientID: client-side ID allocation failed. Local.
	GenerateClientID
	// WrongMessageSize: the header-declared size didn't match the bytes
	// consumed by the fixed-size portion of the message. Fatal.
	WrongMessageSize
	// MissingArgument: the payload ran out before a required argument. Fatal.
	MissingArgument
	// TrailingBytes: bytes remained after every argument was parsed. Fatal.
	TrailingBytes
	// MissingFd: an fd-typed argument had no descriptor queued. Fatal.
	MissingFd
	// NoClientObject: an inbound client-endpoint message named an
	// unbound id. Fatal.
	NoClientObject
	// NoServerObject: an inbound server-endpoint message named an
	// unbound id. Fatal.
	NoServerObject
	// WrongObjectType: an object argument resolved to an Object whose
	// interface doesn't match the schema. Fatal.
	WrongObjectType
	// UnknownMessageID: the opcode is out of range for the interface. Fatal.
	UnknownMessageID
	// UnsupportedInterface: wl_registry.bind named an interface unknown
	// to this build. Local.
	UnsupportedInterface
	// MaxVersion: wl_registry.bind asked for a version above the
	// baseline. Local.
	MaxVersion
	// SetClientID: object table insertion on the client side failed
	// (id already bound, or wrong ID-space half). Fatal.
	SetClientID
	// SetServerID: object table insertion on the server side failed. Fatal.
	SetServerID
	// ServerErrorKind: the server sent wl_display.error. Fatal.
	ServerErrorKind
)

var fatalKinds = map[ErrorKind]bool{
	HandlerBorrowed:       true,
	WrongMessageSize:      true,
	MissingArgument:       true,
	TrailingBytes:         true,
	MissingFd:             true,
	NoClientObject:        true,
	NoServerObject:        true,
	WrongObjectType:       true,
	UnknownMessageID:      true,
	SetClientID:           true,
	SetServerID:           true,
	ServerErrorKind:       true,
}

// Fatal reports whether an ErrorKind tears down the endpoint it
// occurred on, versus being returned locally to a TrySend* caller.
func (k ErrorKind) Fatal() bool { return fatalKinds[k] }

func (k ErrorKind) String() string {
	switch k {
	case HandlerBorrowed:
		return "HandlerBorrowed"
	case ReceiverNoServerID:
		return "ReceiverNoServerId"
	case ReceiverNoClient:
		return "ReceiverNoClient"
	case ArgNoServerID:
		return "ArgNoServerId"
	case ArgNoClientID:
		return "ArgNoClientId"
	case GenerateServerID:
		return "GenerateServerId"
	case GenerateClientID:
		return "GenerateClientId"
	case WrongMessageSize:
		return "WrongMessageSize"
	case MissingArgument:
		return "MissingArgument"
	case TrailingBytes:
		return "TrailingBytes"
	case MissingFd:
		return "MissingFd"
	case NoClientObject:
		return "NoClientObject"
	case NoServerObject:
		return "NoServerObject"
	case WrongObjectType:
		return "WrongObjectType"
	case UnknownMessageID:
		return "UnknownMessageId"
	case UnsupportedInterface:
		return "UnsupportedInterface"
	case MaxVersion:
		return "MaxVersion"
	case SetClientID:
		return "SetClientId"
	case SetServerID:
		return "SetServerId"
	case ServerErrorKind:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type carrying an ErrorKind plus whatever
// detail is relevant to it (argument name, sizes, object ids, ...).
type Error struct {
	Kind ErrorKind

	// Optional detail fields; only the ones relevant to Kind are set.
	Name          string
	Got, Expected uint32
	Endpoint      uint64
	ObjectID      uint32
	Interface     string
	Version       uint32
	Code          uint32
	Message       string
	GotIface      string
	ExpectedIface string
}

func (e *Error) Error() string {
	switch e.Kind {
	case WrongMessageSize:
		return fmt.Sprintf("wrong message size: got %d, expected %d", e.Got, e.Expected)
	case MissingArgument:
		return fmt.Sprintf("missing argument %q", e.Name)
	case MissingFd:
		return fmt.Sprintf("missing fd for argument %q", e.Name)
	case NoClientObject:
		return fmt.Sprintf("no client object %d on endpoint %d", e.ObjectID, e.Endpoint)
	case NoServerObject:
		return fmt.Sprintf("no server object %d", e.ObjectID)
	case WrongObjectType:
		return fmt.Sprintf("argument %q: wrong object type: got %s, expected %s", e.Name, e.GotIface, e.ExpectedIface)
	case UnknownMessageID:
		return fmt.Sprintf("unknown message opcode %d", e.Got)
	case UnsupportedInterface:
		return fmt.Sprintf("unsupported interface %q", e.Interface)
	case MaxVersion:
		return fmt.Sprintf("interface %q: version %d exceeds baseline", e.Interface, e.Version)
	case ArgNoClientID:
		return fmt.Sprintf("argument %q not bound to client endpoint %d", e.Name, e.Endpoint)
	case ServerErrorKind:
		return fmt.Sprintf("server error: object %s#%d code %d: %s", e.Interface, e.ObjectID, e.Code, e.Message)
	default:
		return e.Kind.String()
	}
}

// New builds a bare Error of the given kind.
func New(kind ErrorKind) *Error { return &Error{Kind: kind} }

// WithName returns a copy carrying Name set (used for argument errors).
func (e *Error) WithName(name string) *Error {
	c := *e
	c.Name = name
	return &c
}
