package core

import "github.com/bnema/wl-proxy/wire"

// Side distinguishes the two wire ids and two forwarding switches every
// Object carries (spec 3): the id it holds on the client-facing endpoint
// versus the id it holds on the server-facing endpoint.
type Side int

const (
	// ClientSide identifies the downstream, client-facing endpoint.
	ClientSide Side = iota
	// ServerSide identifies the upstream, server-facing endpoint.
	ServerSide
)

func (s Side) String() string {
	if s == ClientSide {
		return "client"
	}
	return "server"
}

// Opposite returns the other Side.
func (s Side) Opposite() Side {
	if s == ClientSide {
		return ServerSide
	}
	return ClientSide
}

// Object is implemented by every generated interface's concrete type
// (spec 4.7: "a concrete Object type per interface"). It exposes just
// enough for the table and dispatch engine to do their job without
// knowing the interface's request/event set; the actual per-message
// behavior lives on RequestHandler/EventHandler, which generated types
// also implement.
type Object interface {
	// ObjCore returns the shared per-object state embedded by every
	// generated type.
	ObjCore() *ObjectCore
	// Interface reports which protocol interface this object is.
	Interface() ObjectInterface
}

// RequestHandler is implemented by objects that accept requests from the
// client-facing endpoint (spec 4.5). Transparent forwarding is the
// default generated behavior; a handler that overrides it still embeds
// the generated forwarding type and calls through for any opcode it
// does not special-case.
type RequestHandler interface {
	HandleRequest(d *Dispatcher, opcode uint16, dec *wire.Decoder) error
}

// EventHandler is implemented by objects that accept events from the
// server-facing endpoint, symmetric to RequestHandler.
type EventHandler interface {
	HandleEvent(d *Dispatcher, opcode uint16, dec *wire.Decoder) error
}

// ObjectCore holds the attributes spec 3 assigns to every object,
// regardless of interface: its two wire ids, which endpoints it is
// bound to, the forwarding switches, and the two-step destruction bits.
// Generated types embed ObjectCore by value.
type ObjectCore struct {
	iface   ObjectInterface
	version uint32

	// clientObjID is the id this object is known by on the client-facing
	// endpoint, 0 if unbound there.
	clientObjID uint32
	// serverObjID is the id this object is known by on the server-facing
	// endpoint, 0 if unbound there.
	serverObjID uint32

	client *Endpoint
	server *Endpoint

	// ForwardToServer/ForwardToClient gate the default transparent
	// forward of a request/event that a handler does not special-case
	// (spec 4.1, 4.5). Both default true.
	forwardToServer bool
	forwardToClient bool

	// borrowed is the reentrancy guard: set for the duration of a
	// Handle* call on this object, checked at entry, so a handler that
	// re-enters itself (directly or via a forwarded loopback) is caught
	// as HandlerBorrowed rather than corrupting state (spec 4.5).
	borrowed bool

	// destroyed marks that the destructor request/event for this object
	// has already been processed; a second one is a protocol error the
	// caller should report, not silently accept.
	destroyed bool
	// pendingDeleteID marks that the destructor has fired but
	// wl_display.delete_id has not yet arrived to free the id (spec 4.4's
	// two-step destruction).
	pendingDeleteID bool
}

// NewObjectCore returns an ObjectCore for a freshly created object of the
// given interface/version, with both forwarding switches on.
func NewObjectCore(iface ObjectInterface, version uint32) ObjectCore {
	return ObjectCore{
		iface:           iface,
		version:         version,
		forwardToServer: true,
		forwardToClient: true,
	}
}

// Version reports the version this object was bound/created at.
func (c *ObjectCore) Version() uint32 { return c.version }

// ID returns the wire id this object holds on the given side, or 0 if
// it is not bound there.
func (c *ObjectCore) ID(side Side) uint32 {
	if side == ClientSide {
		return c.clientObjID
	}
	return c.serverObjID
}

// SetID binds this object to id on the given side.
func (c *ObjectCore) SetID(side Side, id uint32) {
	if side == ClientSide {
		c.clientObjID = id
	} else {
		c.serverObjID = id
	}
}

// Endpoint returns the Endpoint this object is bound to on the given
// side, or nil.
func (c *ObjectCore) Endpoint(side Side) *Endpoint {
	if side == ClientSide {
		return c.client
	}
	return c.server
}

// SetEndpoint records which Endpoint owns this object's id on the given
// side.
func (c *ObjectCore) SetEndpoint(side Side, ep *Endpoint) {
	if side == ClientSide {
		c.client = ep
	} else {
		c.server = ep
	}
}

// ForwardsToServer reports whether an unhandled request on this object
// should be forwarded upstream verbatim.
func (c *ObjectCore) ForwardsToServer() bool { return c.forwardToServer }

// ForwardsToClient reports whether an unhandled event on this object
// should be forwarded downstream verbatim.
func (c *ObjectCore) ForwardsToClient() bool { return c.forwardToClient }

// SetForwardToServer overrides the default forwarding switch, used by
// handlers that intercept every request for an interface (spec 4.1).
func (c *ObjectCore) SetForwardToServer(v bool) { c.forwardToServer = v }

// SetForwardToClient overrides the default forwarding switch for events.
func (c *ObjectCore) SetForwardToClient(v bool) { c.forwardToClient = v }

// Destroyed reports whether the two-step destructor has already run for
// this object.
func (c *ObjectCore) Destroyed() bool { return c.destroyed }

// MarkDestroyed records that the destructor request/event fired. The id
// stays bound (pending delete_id) per spec 4.4 until ClearPending runs.
func (c *ObjectCore) MarkDestroyed() {
	c.destroyed = true
	c.pendingDeleteID = true
}

// PendingDeleteID reports whether this object is destroyed but still
// occupying its client-side id, awaiting wl_display.delete_id.
func (c *ObjectCore) PendingDeleteID() bool { return c.pendingDeleteID }

// ClearPending records that delete_id arrived and the id may now be
// released back to the allocator (spec 4.4, 4.3's Release).
func (c *ObjectCore) ClearPending() { c.pendingDeleteID = false }

// tryBorrow attempts to claim the reentrancy guard, returning false if
// it is already held (spec 4.5: a single-threaded event loop means the
// only way this happens is a handler recursively dispatching into
// itself).
func (c *ObjectCore) tryBorrow() bool {
	if c.borrowed {
		return false
	}
	c.borrowed = true
	return true
}

func (c *ObjectCore) release() { c.borrowed = false }
