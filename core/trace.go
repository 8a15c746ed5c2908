package core

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Trace writes the spec-mandated wire trace line for one message, when
// enabled. The format is pinned exactly by spec 6:
//
//	[<ms>.<µs>] <prefix><actor>#<connection_id> <arrow> <interface>#<obj_id>.<msg>(<arg>: <value>, …)
//
// This bypasses Log/zerolog entirely: the line's shape is a wire-level
// debugging aid consumed by scripts, not a structured log event, so it
// is written straight to TraceWriter rather than through a logger.
//
// msg and args are whatever the caller already has in hand. Dispatcher
// calls this from the generic dispatch/forward paths, where only the
// opcode (not the schema's message name) is known; a generated handler
// that wants the real message name and its decoded arguments traced
// calls this directly with both, the same way TrySendRequest's callers
// already have their typed arguments on hand.
func (s *State) Trace(actor string, connID uint64, arrow string, iface string, objID uint32, msg string, args string) {
	if !s.TraceEnabled {
		return
	}
	now := time.Now()
	ms := now.UnixMilli() % 1000
	us := now.UnixMicro() % 1000
	fmt.Fprintf(s.traceWriter(), "[%03d.%03d] %s%s#%d %s %s#%d.%s(%s)\n",
		ms, us, s.TracePrefix, actor, connID, arrow, iface, objID, msg, args)
}

func (s *State) traceWriter() io.Writer {
	if s.TraceWriter != nil {
		return s.TraceWriter
	}
	return os.Stderr
}

// opcodeLabel is the fallback <msg> spec 6's format calls for when the
// caller only has an opcode in hand, not the schema name (the generic
// dispatch/ForwardRaw paths run ahead of any generated code and so never
// learn a message's real name). Generated handlers that call Trace
// directly pass the real name instead.
func opcodeLabel(opcode uint16) string {
	return fmt.Sprintf("msg#%d", opcode)
}
