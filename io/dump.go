package io

import (
	"encoding/json"
	"io"

	"github.com/ezrec/hrm/emulator"
)

// WriteState writes the machine state as indented JSON.
func WriteState(output io.Writer, state emulator.State) (err error) {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

// TraceWriter writes one JSON object per emulator tick.
type TraceWriter struct {
	Err error // First write error, if any.

	enc *json.Encoder
}

// NewTraceWriter creates a TraceWriter on output.
func NewTraceWriter(output io.Writer) *TraceWriter {
	return &TraceWriter{enc: json.NewEncoder(output)}
}

// Trace records a state. It is suitable for Emulator.Trace.
// Once a write fails, later states are dropped.
func (tw *TraceWriter) Trace(state emulator.State) {
	if tw.Err != nil {
		return
	}

	tw.Err = tw.enc.Encode(state)
}
