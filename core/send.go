package core

import "github.com/bnema/wl-proxy/wire"

// BuildFunc fills in a message's arguments; generated Send*/TrySend*
// methods pass a closure over their typed parameters.
type BuildFunc func(f *wire.Formatter)

// TrySendRequest is the generic outgoing half of spec 4.6's message
// builder: it resolves obj's id on the server-facing endpoint, runs
// build to marshal the argument list, and queues the result for the
// next flush. It returns ReceiverNoServerID, not a panic, if obj was
// never bound upstream — a legitimate runtime condition (the object was
// created by the client but the create-on-demand request to the server
// hasn't completed yet), not a programming error.
func (d *Dispatcher) TrySendRequest(obj Object, opcode uint16, build BuildFunc) error {
	id := obj.ObjCore().ID(ServerSide)
	if id == 0 {
		return &Error{Kind: ReceiverNoServerID}
	}
	f := wire.NewFormatter()
	build(f)
	payload, fds := f.Finish(id, opcode)
	d.Server.QueueOut(payload, fds)
	d.State.QueueFlush(d.Server)
	if desc, ok := DescriptorFor(obj.Interface()); ok {
		d.State.Trace(ServerSide.String(), d.Server.ID, "←", desc.Name, id, opcodeLabel(opcode), "")
	}
	return nil
}

// TrySendEvent is the event-direction twin of TrySendRequest: it
// resolves obj's id on the client-facing endpoint and queues the
// outgoing event there. ReceiverNoClient covers an object that has
// never been introduced to the downstream client.
func (d *Dispatcher) TrySendEvent(obj Object, opcode uint16, build BuildFunc) error {
	id := obj.ObjCore().ID(ClientSide)
	if id == 0 {
		return &Error{Kind: ReceiverNoClient}
	}
	f := wire.NewFormatter()
	build(f)
	payload, fds := f.Finish(id, opcode)
	d.Client.QueueOut(payload, fds)
	d.State.QueueFlush(d.Client)
	if desc, ok := DescriptorFor(obj.Interface()); ok {
		d.State.Trace(ClientSide.String(), d.Client.ID, "←", desc.Name, id, opcodeLabel(opcode), "")
	}
	return nil
}

// ArgObjectID resolves an object-typed argument to its wire id on the
// given destination side, for a generated Send*/TrySend* method
// encoding an object reference. It distinguishes "the argument object
// itself has no id on that side yet" from "the argument is nil" (a
// valid, legal null object reference encodes as 0 either way, so
// generated code should special-case a nil argument before calling
// this, rather than rely on it to report the right error for that case).
func ArgObjectID(name string, side Side, arg Object) (uint32, error) {
	id := arg.ObjCore().ID(side)
	if id == 0 {
		kind := ArgNoClientID
		if side == ServerSide {
			kind = ArgNoServerID
		}
		return 0, (&Error{Kind: kind}).WithName(name)
	}
	return id, nil
}

// BindClientCreatedObject binds a freshly instantiated obj to the id a
// request just introduced it under on the client-facing endpoint, then
// mints and binds its mirror id on the server-facing endpoint, so the
// object has a consistent identity on both sides before the request
// carrying it is forwarded upstream (spec 4.3, 4.4). Generated
// HandleRequest methods call this for every new_id argument whose
// interface is statically known from the schema.
func (d *Dispatcher) BindClientCreatedObject(obj Object, clientID uint32) error {
	oc := obj.ObjCore()
	if err := d.Client.Objects.Insert(clientID, obj); err != nil {
		return New(SetClientID)
	}
	oc.SetID(ClientSide, clientID)
	oc.SetEndpoint(ClientSide, d.Client)

	serverID, err := NewObjectID(d.Server)
	if err != nil {
		d.Client.Objects.Remove(clientID)
		return err
	}
	if err := d.Server.Objects.Insert(serverID, obj); err != nil {
		d.Client.Objects.Remove(clientID)
		return New(SetServerID)
	}
	oc.SetID(ServerSide, serverID)
	oc.SetEndpoint(ServerSide, d.Server)
	return nil
}

// BindServerCreatedObject is the event-direction twin of
// BindClientCreatedObject: an event from the real server introduced a
// new object under serverID, so a mirror id is minted on the
// client-facing endpoint before the event is forwarded downstream.
func (d *Dispatcher) BindServerCreatedObject(obj Object, serverID uint32) error {
	oc := obj.ObjCore()
	if err := d.Server.Objects.Insert(serverID, obj); err != nil {
		return New(SetServerID)
	}
	oc.SetID(ServerSide, serverID)
	oc.SetEndpoint(ServerSide, d.Server)

	clientID, err := NewObjectID(d.Client)
	if err != nil {
		d.Server.Objects.Remove(serverID)
		return err
	}
	if err := d.Client.Objects.Insert(clientID, obj); err != nil {
		d.Server.Objects.Remove(serverID)
		return New(SetClientID)
	}
	oc.SetID(ClientSide, clientID)
	oc.SetEndpoint(ClientSide, d.Client)
	return nil
}

// TranslateObjectID resolves an inbound object-typed argument (read as a
// raw id on the from side) to the matching id on the opposite side, for
// generated handlers forwarding a request/event that names another
// object by reference (wl_surface.attach's buffer, wl_surface.enter's
// output, and so on). id 0 — the legal null-object-reference encoding —
// passes through unchanged without a lookup.
func (d *Dispatcher) TranslateObjectID(from Side, name string, id uint32) (uint32, error) {
	if id == 0 {
		return 0, nil
	}
	obj, ok := d.endpointFor(from).Objects.Lookup(id)
	if !ok {
		kind := NoClientObject
		if from == ServerSide {
			kind = NoServerObject
		}
		return 0, &Error{Kind: kind, ObjectID: id}
	}
	to := from.Opposite()
	destID := obj.ObjCore().ID(to)
	if destID == 0 {
		kind := ArgNoClientID
		if to == ServerSide {
			kind = ArgNoServerID
		}
		return 0, (&Error{Kind: kind}).WithName(name)
	}
	return destID, nil
}

// NewObjectID allocates a fresh id on ep's Table for a new_id argument,
// the step every request or event that introduces a new object performs
// before building its message (spec 4.3). Which half of the id space it
// draws from follows from which role ep plays: the client-facing
// endpoint stands in as the "server" for its downstream peer and so
// mints server-allocated ids, while the server-facing endpoint stands in
// as the "client" of the real compositor and mints client-allocated ids.
func NewObjectID(ep *Endpoint) (uint32, error) {
	if ep.Side == ClientSide {
		id, err := ep.Objects.AllocateServerID()
		if err != nil {
			return 0, New(GenerateServerID)
		}
		return id, nil
	}
	id, err := ep.Objects.AllocateClientID()
	if err != nil {
		return 0, New(GenerateClientID)
	}
	return id, nil
}
