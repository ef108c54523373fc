package tracing

import (
	"sync"

	"github.com/sarchlab/simhost/datarecording"
)

const linkTable = "link_trace"

// DBTracer stores link records into a data recorder.
type DBTracer struct {
	mu      sync.Mutex
	backend datarecording.DataRecorder
	window  Window
	count   uint64
}

// NewDBTracer creates a DBTracer and the table it writes to.
func NewDBTracer(backend datarecording.DataRecorder, window Window) *DBTracer {
	backend.CreateTable(linkTable, LinkRecord{})

	return &DBTracer{
		backend: backend,
		window:  window,
	}
}

// TraceLink records r if it falls in the tracing window.
func (t *DBTracer) TraceLink(r LinkRecord) {
	if !t.window.Contains(r.Cycle) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.backend.InsertData(linkTable, r)
	t.count++
}

// Count returns the number of records stored.
func (t *DBTracer) Count() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.count
}
