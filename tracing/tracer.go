// Package tracing records the link units that network endpoints move between
// the target and the simulated network.
package tracing

// Direction tells which way a link unit travels.
type Direction string

// Directions of link units.
const (
	// Forwarded units left the target and passed the rate limiter.
	Forwarded Direction = "forwarded"
	// Delivered units were handed back to the target.
	Delivered Direction = "delivered"
	// Dropped units were filtered out before delivery or never passed the
	// rate limiter before the run ended.
	Dropped Direction = "dropped"
)

// A LinkRecord describes one link unit at one cycle.
type LinkRecord struct {
	Cycle     uint64
	Endpoint  string
	Direction string
	Data      uint64
	Last      bool
}

// A LinkTracer collects link records.
type LinkTracer interface {
	TraceLink(r LinkRecord)
}

// MultiTracer forwards every record to all of its tracers.
type MultiTracer []LinkTracer

// TraceLink forwards the record.
func (m MultiTracer) TraceLink(r LinkRecord) {
	for _, t := range m {
		t.TraceLink(r)
	}
}

// Window limits tracing to records whose cycle falls in [Start, End). A zero
// End means no upper bound.
type Window struct {
	Start, End uint64
}

// Contains reports whether cycle falls in the window.
func (w Window) Contains(cycle uint64) bool {
	if cycle < w.Start {
		return false
	}

	return w.End == 0 || cycle < w.End
}
