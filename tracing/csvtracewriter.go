package tracing

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVTraceWriter stores link records into a CSV file.
type CSVTraceWriter struct {
	path   string
	file   *os.File
	writer *bufio.Writer

	records    []LinkRecord
	bufferSize int
}

// NewCSVTraceWriter creates a CSVTraceWriter that writes to path.csv. An empty
// path picks a unique name.
func NewCSVTraceWriter(path string) *CSVTraceWriter {
	return &CSVTraceWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the csv file, truncating a trace left by an earlier run.
func (t *CSVTraceWriter) Init() {
	if t.path == "" {
		t.path = "simhost_link_trace_" + xid.New().String()
	}

	file, err := os.Create(t.path + ".csv")
	if err != nil {
		panic(err)
	}

	t.file = file
	t.writer = bufio.NewWriter(file)

	fmt.Fprintf(t.writer, "Cycle, Endpoint, Direction, Data, Last\n")

	atexit.Register(func() { t.Close() })
}

// TraceLink buffers a record.
func (t *CSVTraceWriter) TraceLink(r LinkRecord) {
	t.records = append(t.records, r)
	if len(t.records) >= t.bufferSize {
		t.Flush()
	}
}

// Flush writes the buffered records to the file.
func (t *CSVTraceWriter) Flush() {
	for _, r := range t.records {
		fmt.Fprintf(t.writer, "%d, %s, %s, 0x%016x, %t\n",
			r.Cycle, r.Endpoint, r.Direction, r.Data, r.Last)
	}

	t.records = nil

	err := t.writer.Flush()
	if err != nil {
		panic(err)
	}
}

// Close flushes and closes the file. Closing twice does nothing.
func (t *CSVTraceWriter) Close() {
	if t.file == nil {
		return
	}

	t.Flush()

	err := t.file.Close()
	if err != nil {
		panic(err)
	}

	t.file = nil
}
