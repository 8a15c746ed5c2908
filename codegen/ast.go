// Package codegen implements wlproxygen: it consumes a parsed protocol
// AST (protocols → interfaces → messages → args/enums, already
// deserialized from whatever the caller's XML-to-JSON step produced —
// XML parsing itself is an external collaborator this package never
// touches) and emits the same artifacts package protocol's hand-checked
// files carry: a concrete Object type, opcode and *_SINCE constants, a
// HandleRequest/HandleEvent pair, enum types, and process-wide
// registration.
//
// The field names below mirror the generator this was distilled from
// (see the repository's grounding ledger): Protocol/Interface/Message/
// Arg/Enum, with ArgType spelling out the wire encodings wire.Formatter
// and wire.Decoder already implement.
package codegen

import (
	"encoding/json"
	"fmt"
)

// Protocol is the root of one parsed protocol XML file.
type Protocol struct {
	Name       string      `json:"name"`
	Copyright  string      `json:"copyright,omitempty"`
	Interfaces []Interface `json:"interfaces"`
}

// Interface describes one Wayland interface's full schema.
type Interface struct {
	Name        string       `json:"name"`
	Version     uint32       `json:"version"`
	Description *Description `json:"description,omitempty"`
	Requests    []Message    `json:"requests"`
	Events      []Message    `json:"events"`
	Enums       []Enum       `json:"enums,omitempty"`
}

// Description holds a schema doc-comment block, split the way the
// Wayland XML does into a one-line summary and a longer free-text body.
type Description struct {
	Summary string `json:"summary,omitempty"`
	Text    string `json:"text,omitempty"`
}

// MessageKind distinguishes an ordinary message from a destructor
// request (spec 4.4: a destructor marks the client-side id as no
// longer in use and expects a delete_id event back).
type MessageKind int

const (
	MessageKindNormal MessageKind = iota
	MessageKindDestructor
)

// Message is one request or event, already separated into the
// Interface.Requests/Events slice it belongs to so the generator never
// needs to branch on an is_request flag the way the original did.
type Message struct {
	Name            string       `json:"name"`
	Kind            MessageKind  `json:"kind"`
	Since           uint32       `json:"since"`
	DeprecatedSince uint32       `json:"deprecated_since,omitempty"`
	Args            []Arg        `json:"args"`
	Description     *Description `json:"description,omitempty"`
}

// ArgType enumerates the wire encodings from spec 4.1.
type ArgType int

const (
	ArgInt ArgType = iota
	ArgUint
	ArgFixed
	ArgString
	ArgObject
	ArgNewID
	ArgArray
	ArgFD
)

// Arg is one message argument. Interface is set for Object/NewID
// arguments whose target interface is statically known from the
// schema; left empty, a NewID argument is the wl_registry.bind case
// (interface name carried in the message itself).
type Arg struct {
	Name      string  `json:"name"`
	Type      ArgType `json:"type"`
	Interface string  `json:"interface,omitempty"`
	AllowNull bool    `json:"allow_null,omitempty"`
	Enum      string  `json:"enum,omitempty"`
	Summary   string  `json:"summary,omitempty"`
}

// Enum is one schema enum, rendered as a Go uint32 newtype with one
// constant per entry. Bitfield enums are rendered the same way; no
// set-algebra methods are generated for them.
type Enum struct {
	Name     string      `json:"name"`
	Bitfield bool        `json:"bitfield,omitempty"`
	Entries  []EnumEntry `json:"entries"`
}

// EnumEntry is one named value of an Enum.
type EnumEntry struct {
	Name    string `json:"name"`
	Value   uint32 `json:"value"`
	Since   uint32 `json:"since,omitempty"`
	Summary string `json:"summary,omitempty"`
}

var argTypeNames = map[string]ArgType{
	"int": ArgInt, "uint": ArgUint, "fixed": ArgFixed, "string": ArgString,
	"object": ArgObject, "new_id": ArgNewID, "array": ArgArray, "fd": ArgFD,
}

// UnmarshalJSON accepts the schema's own type spelling ("int", "new_id",
// "fd", ...) rather than requiring callers to know this package's
// internal ArgType ordinal values.
func (t *ArgType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, ok := argTypeNames[s]
	if !ok {
		return fmt.Errorf("codegen: unknown arg type %q", s)
	}
	*t = v
	return nil
}

// UnmarshalJSON accepts "normal"/"destructor" rather than the ordinal
// MessageKind value.
func (k *MessageKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "", "normal":
		*k = MessageKindNormal
	case "destructor":
		*k = MessageKindDestructor
	default:
		return fmt.Errorf("codegen: unknown message kind %q", s)
	}
	return nil
}

// needsExplicitHandling reports whether m is a destructor or has any
// arg that needs id translation, new_id binding or fd handling — the signal the template uses to decide between an
// explicit decode and the raw-forward shortcut (the same rule applied
// by hand throughout package protocol).
func (m Message) needsExplicitHandling() bool {
	if m.Kind == MessageKindDestructor {
		return true
	}
	for _, a := range m.Args {
		switch a.Type {
		case ArgObject, ArgNewID, ArgFD:
			return true
		}
	}
	return false
}
