package core

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// State is the process-wide context shared by every connection the
// proxy runs (spec 3): it knows the baseline version table built from
// the compiled-in interfaces, tracks which endpoints have outbound data
// queued across a dispatch batch, and carries the wire trace toggle.
//
// Unlike Endpoint and ObjectCore, State outlives any single client
// connection — one proxy process can (per spec's REDESIGN FLAGS) serve
// more than one downstream client sequentially, or in the future
// concurrently, against the same compiled-in protocol set.
type State struct {
	Log zerolog.Logger

	// TracePrefix prepends every wire trace line (spec 6); empty means
	// no prefix.
	TracePrefix string
	// TraceEnabled toggles the exact-format wire trace line independent
	// of the structured process log.
	TraceEnabled bool
	// TraceWriter is where Trace lines go; nil means os.Stderr.
	TraceWriter io.Writer

	mu            sync.Mutex
	flushQueue    map[uint64]*Endpoint
	server        *Endpoint
	destroyed     bool
}

// NewState returns an empty State ready to host one proxy session.
func NewState(log zerolog.Logger) *State {
	return &State{
		Log:        log,
		flushQueue: make(map[uint64]*Endpoint),
	}
}

// Baseline returns the compiled-in maximum version for every registered
// interface, the in-memory form of the baseline file spec 4.7 and 6
// describe.
func (s *State) Baseline() map[string]uint32 { return BaselineTable() }

// SetServer records the single server-facing Endpoint this State's
// session is using; nil while no upstream connection exists yet.
func (s *State) SetServer(ep *Endpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.server = ep
}

// Server returns the server-facing Endpoint, or nil before one is set.
func (s *State) Server() *Endpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.server
}

// QueueFlush registers ep as having outbound data to write before the
// reactor goes back to polling; the set dedupes so a busy object
// raising several outgoing messages against the same endpoint within
// one dispatch batch doesn't multiply flush work (spec 4.2, 4.8).
func (s *State) QueueFlush(ep *Endpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushQueue[ep.ID] = ep
}

// DrainFlushQueue returns and clears every Endpoint queued for a flush
// since the last call, for the reactor to drive after a dispatch batch.
func (s *State) DrainFlushQueue() []*Endpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.flushQueue) == 0 {
		return nil
	}
	out := make([]*Endpoint, 0, len(s.flushQueue))
	for _, ep := range s.flushQueue {
		out = append(out, ep)
	}
	s.flushQueue = make(map[uint64]*Endpoint)
	return out
}

// Destroyed reports whether this session has already been torn down.
func (s *State) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// MarkDestroyed records that both endpoints of this session are gone,
// so the reactor can drop its session entry.
func (s *State) MarkDestroyed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
}
