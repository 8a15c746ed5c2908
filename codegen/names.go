package codegen

import (
	"strings"
	"unicode"
)

// pascalCase turns a snake_case schema name (wl_data_device,
// set_cursor) into Go's exported-identifier convention
// (WlDataDevice, SetCursor), splitting on '_' and '.' the same way the
// original generator's format_camel did.
func pascalCase(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		switch {
		case r == '_' || r == '.':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// goReserved is the set of Go keywords and predeclared identifiers an
// argument or message name could collide with; escapeIdent prefixes an
// underscore rather than change the wire name (spec 4.7: "the on the
// wire name is unaffected").
var goReserved = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
	"new": true, "len": true, "cap": true, "error": true,
}

func escapeIdent(name string) string {
	if goReserved[name] {
		return "_" + name
	}
	return name
}

// renderDoc splits a schema description into comment lines prefixed
// with "// ", normalizing tabs to spaces and dedenting by the common
// leading-whitespace prefix (spec 4.7's "tab/space normalization and
// dedentation"), preserving blank lines between paragraphs.
func renderDoc(d *Description) []string {
	if d == nil {
		return nil
	}
	var lines []string
	if d.Summary != "" {
		lines = append(lines, d.Summary)
	}
	if d.Text != "" {
		lines = append(lines, "")
		lines = append(lines, dedent(d.Text)...)
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			out[i] = "//"
		} else {
			out[i] = "// " + l
		}
	}
	return out
}

func dedent(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\t", "    "), "\n")
	for len(raw) > 0 && strings.TrimSpace(raw[0]) == "" {
		raw = raw[1:]
	}
	for len(raw) > 0 && strings.TrimSpace(raw[len(raw)-1]) == "" {
		raw = raw[:len(raw)-1]
	}
	minIndent := -1
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " "))
		if minIndent == -1 || n < minIndent {
			minIndent = n
		}
	}
	if minIndent <= 0 {
		return raw
	}
	out := make([]string, len(raw))
	for i, l := range raw {
		if len(l) >= minIndent {
			out[i] = strings.TrimRight(l[minIndent:], " ")
		} else {
			out[i] = ""
		}
	}
	return out
}
