package core

import "github.com/bnema/wl-proxy/wire"

// Dispatcher ties one session's two endpoints and shared State together
// and is the receiver every generated Handle{Request,Event} method is
// handed (spec 4.5). It is deliberately small: the reentrancy guard and
// two-step destroy bookkeeping live on ObjectCore, not here, so that a
// Dispatcher is just routing plus the generic forwarding fallback.
type Dispatcher struct {
	State  *State
	Client *Endpoint
	Server *Endpoint
}

// NewDispatcher returns a Dispatcher for one client⟷server session.
func NewDispatcher(st *State, client, server *Endpoint) *Dispatcher {
	return &Dispatcher{State: st, Client: client, Server: server}
}

// DispatchClientMessage decodes one request read off the client-facing
// endpoint and routes it to the bound object, enforcing the reentrancy
// guard along the way (spec 4.5). A *Error whose Kind is fatal means the
// caller must tear the session down; a non-fatal *Error can be logged
// and skipped. A decode failure inside a handler comes back as the
// *wire.Error the decoder produced.
func (d *Dispatcher) DispatchClientMessage(words []uint32) error {
	return d.dispatch(ClientSide, words)
}

// DispatchServerMessage is the event-direction symmetric twin of
// DispatchClientMessage.
func (d *Dispatcher) DispatchServerMessage(words []uint32) error {
	return d.dispatch(ServerSide, words)
}

func (d *Dispatcher) dispatch(side Side, words []uint32) error {
	hdr := wire.DecodeHeader(wordsToBytesHeader(words))
	src := d.endpointFor(side)
	obj, found := src.Objects.Lookup(hdr.ObjectID)
	if !found {
		kind := NoClientObject
		if side == ServerSide {
			kind = NoServerObject
		}
		return &Error{Kind: kind, ObjectID: hdr.ObjectID, Endpoint: src.ID}
	}

	oc := obj.ObjCore()
	if !oc.tryBorrow() {
		return &Error{Kind: HandlerBorrowed, ObjectID: hdr.ObjectID}
	}
	defer oc.release()

	if desc, ok := DescriptorFor(obj.Interface()); ok {
		d.State.Trace(side.String(), src.ID, "→", desc.Name, hdr.ObjectID, opcodeLabel(hdr.Opcode), "")
	}

	dec := wire.NewDecoder(words)
	var err error
	if side == ClientSide {
		if rh, ok := obj.(RequestHandler); ok {
			err = rh.HandleRequest(d, hdr.Opcode, dec)
		} else {
			err = d.ForwardRaw(ServerSide, obj, words)
		}
	} else {
		if eh, ok := obj.(EventHandler); ok {
			err = eh.HandleEvent(d, hdr.Opcode, dec)
		} else {
			err = d.ForwardRaw(ClientSide, obj, words)
		}
	}
	return err
}

func (d *Dispatcher) endpointFor(side Side) *Endpoint {
	if side == ClientSide {
		return d.Client
	}
	return d.Server
}

// ForwardRaw re-emits an inbound message verbatim onto the opposite
// endpoint, substituting the sender's id on that side in place of the
// id it arrived under (spec 4.1: "transparent forwarding is the default
// per-message handler behavior"). It is a no-op, not an error, when the
// object's forwarding switch for that direction is off, or when the
// object has no id on the destination side yet (a request arriving for
// an object not yet bound upstream, for instance, is simply dropped).
//
// dispatch calls ForwardRaw for every message of an object with no
// RequestHandler or EventHandler (thin_objects.go's), and the generated
// handlers call it themselves for messages that carry only plain data.
// Interfaces whose messages carry fd arguments rely on their generated
// handler to pop and re-queue fds explicitly (Endpoint.PopFD paired with
// wire.Formatter.FD) — this fallback does not move fds, since it has no
// schema to know how many a given opcode consumes.
func (d *Dispatcher) ForwardRaw(to Side, obj Object, words []uint32) error {
	oc := obj.ObjCore()
	if to == ServerSide && !oc.ForwardsToServer() {
		return nil
	}
	if to == ClientSide && !oc.ForwardsToClient() {
		return nil
	}
	destID := oc.ID(to)
	if destID == 0 {
		return nil
	}
	out := make([]uint32, len(words))
	copy(out, words)
	out[0] = destID
	dst := d.endpointFor(to)
	payload, fds := rewriteHeaderWords(out)
	dst.QueueOut(payload, fds)
	d.State.QueueFlush(dst)

	hdr := wire.DecodeHeader(wordsToBytesHeader(words))
	if desc, ok := DescriptorFor(obj.Interface()); ok {
		d.State.Trace(to.String(), dst.ID, "←", desc.Name, destID, opcodeLabel(hdr.Opcode), "")
	}
	return nil
}

// wordsToBytesHeader is a small-allocation helper for decoding just the
// 8-byte header out of a word slice without reaching into package wire's
// unexported helpers.
func wordsToBytesHeader(words []uint32) []byte {
	b := make([]byte, 8)
	putWord(b[0:4], words[0])
	putWord(b[4:8], words[1])
	return b
}

func rewriteHeaderWords(words []uint32) ([]byte, []int) {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		putWord(b[i*4:i*4+4], w)
	}
	return b, nil
}

func putWord(b []byte, w uint32) {
	b[0] = byte(w)
	b[1] = byte(w >> 8)
	b[2] = byte(w >> 16)
	b[3] = byte(w >> 24)
}
