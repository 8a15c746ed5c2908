package codegen

import (
	"os"
	"strings"
	"testing"
)

func loadFixture(t *testing.T) Protocol {
	t.Helper()
	f, err := os.Open("testdata/sample_protocol.json")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	p, err := LoadProtocol(f)
	if err != nil {
		t.Fatalf("LoadProtocol() error = %v", err)
	}
	return p
}

func TestLoadProtocolDecodesArgTypesAndKinds(t *testing.T) {
	p := loadFixture(t)
	if len(p.Interfaces) != 1 {
		t.Fatalf("len(Interfaces) = %d, want 1", len(p.Interfaces))
	}
	iface := p.Interfaces[0]
	if iface.Name != "wl_fake_indicator" || iface.Version != 2 {
		t.Fatalf("interface = %+v", iface)
	}
	if len(iface.Requests) != 3 || len(iface.Events) != 1 {
		t.Fatalf("requests=%d events=%d, want 3/1", len(iface.Requests), len(iface.Events))
	}
	if iface.Requests[0].Kind != MessageKindDestructor {
		t.Fatalf("destroy.Kind = %v, want MessageKindDestructor", iface.Requests[0].Kind)
	}
	if iface.Requests[1].Args[0].Type != ArgString {
		t.Fatalf("set_label arg type = %v, want ArgString", iface.Requests[1].Args[0].Type)
	}
	attach := iface.Requests[2]
	if attach.Args[0].Type != ArgObject || attach.Args[0].Interface != "wl_output" || !attach.Args[0].AllowNull {
		t.Fatalf("attach arg = %+v", attach.Args[0])
	}
	if len(iface.Enums) != 1 || !iface.Enums[0].Bitfield || len(iface.Enums[0].Entries) != 2 {
		t.Fatalf("enums = %+v", iface.Enums)
	}
}

func TestGenerateInterfaceProducesCompilableShape(t *testing.T) {
	p := loadFixture(t)
	out, err := GenerateInterface(p.Interfaces[0])
	if err != nil {
		t.Fatalf("GenerateInterface() error = %v", err)
	}
	src := string(out)

	for _, want := range []string{
		"// Code generated by wlproxygen. DO NOT EDIT.",
		"package protocol",
		"type WlFakeIndicator struct",
		"core.ObjectCore",
		"func NewWlFakeIndicator(version uint32) *WlFakeIndicator",
		"func (o *WlFakeIndicator) HandleRequest(d *core.Dispatcher, opcode uint16, dec *wire.Decoder) error",
		"func (o *WlFakeIndicator) HandleEvent(d *core.Dispatcher, opcode uint16, dec *wire.Decoder) error",
		"wlFakeIndicatorReqDestroy  uint16 = 0",
		"wlFakeIndicatorReqSetLabel uint16 = 1",
		"wlFakeIndicatorReqAttach   uint16 = 2",
		"wlFakeIndicatorEvClicked   uint16 = 0",
		"WlFakeIndicatorMsgAttachSince uint32 = 2",
		"type WlFakeIndicatorState uint32",
		"WlFakeIndicatorStateActive WlFakeIndicatorState = 1",
		"WlFakeIndicatorStateUrgent WlFakeIndicatorState = 2",
		"o.MarkDestroyed()",
		"d.Server.Objects.RemovePending(o.ID(core.ServerSide), o)",
		"d.TranslateObjectID(core.ClientSide, \"output\", outputID)",
		"return d.ForwardRaw(core.ServerSide, o, dec.Words())",
		"return d.ForwardRaw(core.ClientSide, o, dec.Words())",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q\n--- full output ---\n%s", want, src)
		}
	}
}

func TestGenerateInterfaceSkipsExplicitCaseForPlainEvent(t *testing.T) {
	p := loadFixture(t)
	out, err := GenerateInterface(p.Interfaces[0])
	if err != nil {
		t.Fatalf("GenerateInterface() error = %v", err)
	}
	src := string(out)
	// "clicked" carries only a uint argument, so it has no explicit
	// case of its own — it must fall through HandleEvent's default
	// raw-forward rather than get a dedicated case.
	if strings.Contains(src, "case wlFakeIndicatorEvClicked:") {
		t.Error("plain-data event should not get an explicit switch case")
	}
	// set_label carries only a string argument; same rule applies on
	// the request side.
	if strings.Contains(src, "case wlFakeIndicatorReqSetLabel:") {
		t.Error("plain-data request should not get an explicit switch case")
	}
}
