package codegen

import (
	"fmt"
	"strings"
)

// These render* functions build the handler-body source text the
// template embeds verbatim. Doing the heavy lifting here instead of in
// template logic keeps each message's codegen independently testable
// and keeps the template itself a thin skeleton, matching how the
// original generator separated small format_* functions (one per
// concern) rather than one large formatting pass.

func (m Message) goName() string { return pascalCase(m.Name) }

// renderRequestCase renders one `case` arm of HandleRequest's switch.
// Plain-data messages (no object/new_id/fd argument) fall through to
// the raw-forward shortcut at the switch's default instead of getting
// their own case, the same rule applied by hand throughout package
// protocol.
func renderRequestCase(iface Interface, m Message, opcode int, constName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\tcase %s:\n", constName)

	var decode []string
	var names []string
	for _, a := range m.Args {
		line, name := decodeArg(a, "d.Client")
		decode = append(decode, line)
		names = append(names, name)
	}
	for _, l := range decode {
		b.WriteString("\t\t" + l + "\n")
	}

	if m.Kind == MessageKindDestructor {
		b.WriteString("\t\to.MarkDestroyed()\n")
		fmt.Fprintf(&b, "\t\terr := d.TrySendRequest(o, %s, func(f *wire.Formatter) {\n", constName)
		b.WriteString(buildFormatterBody(m.Args, names, "\t\t\t"))
		b.WriteString("\t\t})\n")
		b.WriteString("\t\td.Server.Objects.RemovePending(o.ID(core.ServerSide), o)\n")
		b.WriteString("\t\treturn err\n")
		return b.String()
	}

	if newIDIdx := firstNewID(m.Args); newIDIdx >= 0 {
		a := m.Args[newIDIdx]
		childVar := "child"
		fmt.Fprintf(&b, "\t\t%s := New%s(o.Version())\n", childVar, pascalCase(a.Interface))
		fmt.Fprintf(&b, "\t\tif err := d.BindClientCreatedObject(%s, %s); err != nil {\n\t\t\treturn err\n\t\t}\n", childVar, names[newIDIdx])
		names[newIDIdx] = childVar + ".ObjCore().ID(core.ServerSide)"
	}

	fmt.Fprintf(&b, "\t\treturn d.TrySendRequest(o, %s, func(f *wire.Formatter) {\n", constName)
	b.WriteString(buildFormatterBody(m.Args, names, "\t\t\t"))
	b.WriteString("\t\t})\n")
	return b.String()
}

// renderEventCase is renderRequestCase's event-direction twin: object
// arguments translate from the server's id space to the client's, and
// a new_id argument mints a client-side mirror via
// BindServerCreatedObject instead.
func renderEventCase(iface Interface, m Message, constName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\tcase %s:\n", constName)

	var names []string
	for _, a := range m.Args {
		line, name := decodeArg(a, "d.Server")
		b.WriteString("\t\t" + line + "\n")
		names = append(names, name)
	}

	if newIDIdx := firstNewID(m.Args); newIDIdx >= 0 {
		a := m.Args[newIDIdx]
		childVar := "child"
		fmt.Fprintf(&b, "\t\t%s := New%s(o.Version())\n", childVar, pascalCase(a.Interface))
		fmt.Fprintf(&b, "\t\tif err := d.BindServerCreatedObject(%s, %s); err != nil {\n\t\t\treturn err\n\t\t}\n", childVar, names[newIDIdx])
		names[newIDIdx] = childVar + ".ObjCore().ID(core.ClientSide)"
	}

	fmt.Fprintf(&b, "\t\treturn d.TrySendEvent(o, %s, func(f *wire.Formatter) {\n", constName)
	b.WriteString(buildFormatterBody(m.Args, names, "\t\t\t"))
	b.WriteString("\t\t})\n")
	return b.String()
}

// decodeArg renders the decode statement for one argument read off src
// (the endpoint the message arrived on) and returns the Go expression
// that holds its value afterward. Object arguments are translated to
// the opposite side's id inline so later formatter code only ever
// deals with already-translated values.
func decodeArg(a Arg, src string) (string, string) {
	name := escapeIdent(a.Name)
	side := "core.ClientSide"
	if src == "d.Server" {
		side = "core.ServerSide"
	}
	switch a.Type {
	case ArgInt:
		return fmt.Sprintf("%s, err := dec.Int32(%q)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}", name, a.Name), name
	case ArgUint:
		return fmt.Sprintf("%s, err := dec.Uint32(%q)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}", name, a.Name), name
	case ArgFixed:
		return fmt.Sprintf("%s, err := dec.Fixed(%q)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}", name, a.Name), name
	case ArgString:
		return fmt.Sprintf("%s, err := dec.String(%q, %t)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}", name, a.Name, a.AllowNull), name
	case ArgArray:
		return fmt.Sprintf("%s, err := dec.Array(%q)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}", name, a.Name), name
	case ArgFD:
		return fmt.Sprintf("%s, ok := %s.PopFD()\n\t\tif !ok {\n\t\t\treturn core.New(core.MissingFd).WithName(%q)\n\t\t}", name, src, a.Name), name
	case ArgObject:
		raw := name + "ID"
		translated := name
		decl := fmt.Sprintf("%s, err := dec.Uint32(%q)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s, err := d.TranslateObjectID(%s, %q, %s)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}",
			raw, a.Name, translated, side, a.Name, raw)
		return decl, translated
	case ArgNewID:
		// Whether or not a.Interface is statically known, the wire
		// only ever carries the raw new id here; a statically-typed
		// new_id's child object is minted by the caller once this
		// value is in hand (see firstNewID below). A
		// dynamically-interfaced new_id (wl_registry.bind) is
		// special-cased by hand rather than generated generically,
		// matching spec 4.7's explicit special-casing of wl_registry.
		return fmt.Sprintf("%s, err := dec.Uint32(%q)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}", name, a.Name), name
	default:
		return fmt.Sprintf("// unhandled arg %s", a.Name), name
	}
}

func firstNewID(args []Arg) int {
	for i, a := range args {
		if a.Type == ArgNewID && a.Interface != "" {
			return i
		}
	}
	return -1
}

// buildFormatterBody renders the f.<Type>(...) calls that re-encode a
// message's arguments for the opposite side, in argument order, using
// the already-decoded/translated Go expression names computed by
// decodeArg (or, for the new_id slot, the freshly minted mirror id).
func buildFormatterBody(args []Arg, names []string, indent string) string {
	var b strings.Builder
	for i, a := range args {
		n := names[i]
		switch a.Type {
		case ArgInt:
			fmt.Fprintf(&b, "%sf.Int32(%s)\n", indent, n)
		case ArgUint, ArgObject, ArgNewID:
			fmt.Fprintf(&b, "%sf.Uint32(%s)\n", indent, n)
		case ArgFixed:
			fmt.Fprintf(&b, "%sf.Fixed(%s)\n", indent, n)
		case ArgString:
			if a.AllowNull {
				fmt.Fprintf(&b, "%sif %s == \"\" {\n%s\tf.NullString()\n%s} else {\n%s\tf.String(%s)\n%s}\n", indent, n, indent, indent, indent, n, indent)
			} else {
				fmt.Fprintf(&b, "%sf.String(%s)\n", indent, n)
			}
		case ArgArray:
			fmt.Fprintf(&b, "%sf.Array(%s)\n", indent, n)
		case ArgFD:
			fmt.Fprintf(&b, "%sf.FD(%s)\n", indent, n)
		}
	}
	return b.String()
}
