package wire

import "testing"

func TestFixedRoundTrip(t *testing.T) {
	f := NewFixed(3.25)
	if got := f.Float64(); got != 3.25 {
		t.Fatalf("Float64() = %v, want 3.25", got)
	}
	if got := FixedFromInt(7).Int(); got != 7 {
		t.Fatalf("Int() = %d, want 7", got)
	}
}

func TestFormatterFinishHeader(t *testing.T) {
	f := NewFormatter()
	f.Uint32(42)
	payload, fds := f.Finish(5, 3)
	if len(fds) != 0 {
		t.Fatalf("expected no fds, got %d", len(fds))
	}
	hdr := DecodeHeader(payload)
	if hdr.ObjectID != 5 {
		t.Fatalf("ObjectID = %d, want 5", hdr.ObjectID)
	}
	if hdr.Opcode != 3 {
		t.Fatalf("Opcode = %d, want 3", hdr.Opcode)
	}
	if int(hdr.Size) != len(payload) {
		t.Fatalf("Size = %d, want %d", hdr.Size, len(payload))
	}
}

func TestFormatterStringPadding(t *testing.T) {
	f := NewFormatter()
	f.String("hi")
	payload, _ := f.Finish(1, 0)
	// header(8) + len word(4) + "hi\0" padded to 4 = 4
	if len(payload) != 16 {
		t.Fatalf("len(payload) = %d, want 16", len(payload))
	}
}

func TestDecoderRoundTrip(t *testing.T) {
	f := NewFormatter()
	f.Uint32(9)
	f.String("wl")
	f.Array([]byte{1, 2, 3})
	payload, _ := f.Finish(1, 0)

	words := make([]uint32, len(payload)/4)
	for i := range words {
		words[i] = uint32(payload[i*4]) | uint32(payload[i*4+1])<<8 |
			uint32(payload[i*4+2])<<16 | uint32(payload[i*4+3])<<24
	}

	d := NewDecoder(words)
	n, err := d.Uint32("n")
	if err != nil || n != 9 {
		t.Fatalf("Uint32() = (%d, %v), want (9, nil)", n, err)
	}
	s, err := d.String("s", false)
	if err != nil || s != "wl" {
		t.Fatalf("String() = (%q, %v), want (\"wl\", nil)", s, err)
	}
	arr, err := d.Array("a")
	if err != nil {
		t.Fatalf("Array() error = %v", err)
	}
	if len(arr) != 3 || arr[0] != 1 || arr[2] != 3 {
		t.Fatalf("Array() = %v, want [1 2 3]", arr)
	}
	if !d.Done() {
		t.Fatalf("Done() = false, want true after consuming every argument")
	}
}

func TestDecoderMissingArgument(t *testing.T) {
	d := NewDecoder([]uint32{1, 2})
	if _, err := d.Uint32("missing"); err == nil {
		t.Fatal("expected error reading past end of message")
	}
}

func TestDecoderUnterminatedString(t *testing.T) {
	// length word claims 4 bytes but the last byte isn't a nul terminator.
	d := NewDecoder([]uint32{1, 2, 4, 0x01010101})
	if _, err := d.String("s", false); err == nil {
		t.Fatal("expected Unterminated error")
	}
}
