package codegen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

//go:embed templates/interface.go.tmpl
var interfaceTemplateSrc string

var interfaceTemplate = template.Must(template.New("interface").Parse(interfaceTemplateSrc))

// view is what the template actually sees; everything in it is
// pre-rendered Go source text or plain data, so the template itself
// stays a thin skeleton (package header, imports, init registration)
// rather than carrying codegen logic of its own.
type view struct {
	Camel           string
	Snake           string
	Version         uint32
	Doc             []string
	OpcodeConsts    []string
	SinceConsts     []string
	HasRequests     bool
	HasEvents       bool
	HandleRequest   string
	HandleEvent     string
	Enums           []enumView
}

type enumView struct {
	Name     string
	Bitfield bool
	Entries  []enumEntryView
}

type enumEntryView struct {
	Const string
	Value uint32
}

// GenerateInterface renders one interface's Go source file in the
// shape package protocol's hand-written files use: a concrete Object
// type embedding core.ObjectCore, opcode/*_SINCE constants, enum
// types, and a HandleRequest/HandleEvent pair that explicitly decodes
// any message carrying an object/new_id/fd argument and falls through
// to a raw forward for everything else (spec 4.5, 4.7).
func GenerateInterface(iface Interface) ([]byte, error) {
	v := buildView(iface)
	var buf bytes.Buffer
	if err := interfaceTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("codegen: render %s: %w", iface.Name, err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: gofmt %s: %w\n%s", iface.Name, err, buf.String())
	}
	return out, nil
}

func buildView(iface Interface) view {
	camel := pascalCase(iface.Name)
	v := view{
		Camel:       camel,
		Snake:       iface.Name,
		Version:     iface.Version,
		Doc:         renderDoc(iface.Description),
		HasRequests: len(iface.Requests) > 0,
		HasEvents:   len(iface.Events) > 0,
	}

	var reqConsts, evConsts []string
	var sinceConsts []string
	var reqCases, evCases strings.Builder

	lowerSnake := lowerCamel(iface.Name)
	for i, m := range iface.Requests {
		constName := fmt.Sprintf("%sReq%s", lowerSnake, m.goName())
		reqConsts = append(reqConsts, fmt.Sprintf("%s uint16 = %d", constName, i))
		if m.Since > 1 {
			sinceConsts = append(sinceConsts, fmt.Sprintf("%sMsg%sSince uint32 = %d", camel, m.goName(), m.Since))
		}
		if m.needsExplicitHandling() {
			reqCases.WriteString(renderRequestCase(iface, m, i, constName))
		}
	}
	for i, m := range iface.Events {
		constName := fmt.Sprintf("%sEv%s", lowerSnake, m.goName())
		evConsts = append(evConsts, fmt.Sprintf("%s uint16 = %d", constName, i))
		if m.Since > 1 {
			sinceConsts = append(sinceConsts, fmt.Sprintf("%sMsg%sSince uint32 = %d", camel, m.goName(), m.Since))
		}
		if m.needsExplicitHandling() {
			evCases.WriteString(renderEventCase(iface, m, constName))
		}
	}

	v.OpcodeConsts = append(v.OpcodeConsts, reqConsts...)
	v.OpcodeConsts = append(v.OpcodeConsts, evConsts...)
	v.SinceConsts = sinceConsts

	v.HandleRequest = renderHandler(iface.Requests, reqCases.String(), "core.ServerSide")
	v.HandleEvent = renderHandler(iface.Events, evCases.String(), "core.ClientSide")

	for _, e := range iface.Enums {
		ev := enumView{Name: camel + pascalCase(e.Name), Bitfield: e.Bitfield}
		for _, entry := range e.Entries {
			ev.Entries = append(ev.Entries, enumEntryView{
				Const: ev.Name + pascalCase(entry.Name),
				Value: entry.Value,
			})
		}
		v.Enums = append(v.Enums, ev)
	}

	return v
}

// renderHandler wraps a switch's pre-rendered case arms with the
// forwarding default every interface needs regardless of how many
// messages needed explicit handling.
func renderHandler(messages []Message, cases, forwardSide string) string {
	if len(messages) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("switch opcode {\n")
	b.WriteString(cases)
	b.WriteString("\tdefault:\n")
	fmt.Fprintf(&b, "\t\treturn d.ForwardRaw(%s, o, dec.Words())\n", forwardSide)
	b.WriteString("\t}")
	return b.String()
}

func lowerCamel(snake string) string {
	c := pascalCase(snake)
	if c == "" {
		return c
	}
	return strings.ToLower(c[:1]) + c[1:]
}
