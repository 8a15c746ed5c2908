package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestTraceDisabledByDefaultWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	st := NewState(zerolog.Nop())
	st.TraceWriter = &buf
	st.Trace("client", 1, "→", "wl_surface", 3, "commit", "")
	if buf.Len() != 0 {
		t.Fatalf("Trace() wrote %q while TraceEnabled is false", buf.String())
	}
}

func TestTraceFormatsSpecLine(t *testing.T) {
	var buf bytes.Buffer
	st := NewState(zerolog.Nop())
	st.TraceEnabled = true
	st.TraceWriter = &buf
	st.TracePrefix = "proxy:"

	st.Trace("client", 7, "→", "wl_surface", 3, "commit", "")

	line := buf.String()
	for _, want := range []string{"proxy:client#7", "→", "wl_surface#3.commit("} {
		if !strings.Contains(line, want) {
			t.Fatalf("Trace() line %q missing %q", line, want)
		}
	}
}
