// Package wire implements the Wayland wire format: message framing,
// argument packing/unpacking, and the 24.8 fixed-point number type.
//
// A Wayland message is a 32-bit-aligned (sender_object_id, opcode, size)
// header followed by packed arguments. File descriptors never appear in
// the payload; they travel alongside it in a parallel queue populated by
// SCM_RIGHTS ancillary data (see core.Endpoint).
package wire

// Fixed is a 24.8 signed fixed-point number, as used by the wl_fixed_t
// wire type.
type Fixed int32

// Float64 converts a Fixed to a float64.
func (f Fixed) Float64() float64 {
	return float64(f) / 256.0
}

// Int converts a Fixed to its truncated integer part.
func (f Fixed) Int() int {
	return int(f) / 256
}

// NewFixed builds a Fixed from a float64.
func NewFixed(v float64) Fixed {
	return Fixed(v * 256.0)
}

// FixedFromInt builds a Fixed with no fractional part.
func FixedFromInt(v int) Fixed {
	return Fixed(v * 256)
}
