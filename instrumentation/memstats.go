package instrumentation

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/sarchlab/simhost/datarecording"
	"github.com/sarchlab/simhost/mem"
)

const memStatsTable = "memory_stats"

// A StatsSource reports memory access counters.
type StatsSource interface {
	Stats() mem.Stats
}

// MemoryStatsSample is one row of the memory statistics.
type MemoryStatsSample struct {
	Cycle        uint64
	Reads        uint64
	Writes       uint64
	BytesRead    uint64
	BytesWritten uint64
}

// MemoryStatsModel samples the counters of an instrumented memory backend
// into a CSV file and, optionally, a recorder.
type MemoryStatsModel struct {
	clock    CycleTeller
	source   StatsSource
	recorder datarecording.DataRecorder
	path     string

	file   *os.File
	writer *bufio.Writer
}

// NewMemoryStatsModel creates a model that writes to path. recorder may be
// nil.
func NewMemoryStatsModel(
	clock CycleTeller,
	source StatsSource,
	path string,
	recorder datarecording.DataRecorder,
) *MemoryStatsModel {
	if path == "" {
		path = "memory_stats.csv"
	}

	return &MemoryStatsModel{
		clock:    clock,
		source:   source,
		recorder: recorder,
		path:     path,
	}
}

// Name returns "MemoryStats".
func (m *MemoryStatsModel) Name() string {
	return "MemoryStats"
}

// Init creates the CSV file.
func (m *MemoryStatsModel) Init() {
	file, err := os.Create(m.path)
	if err != nil {
		panic(errors.Wrap(err, "creating memory stats file"))
	}

	m.file = file
	m.writer = bufio.NewWriter(file)
	fmt.Fprintf(m.writer, "Cycle, Reads, Writes, BytesRead, BytesWritten\n")

	if m.recorder != nil {
		m.recorder.CreateTable(memStatsTable, MemoryStatsSample{})
	}
}

// Profile appends one sample.
func (m *MemoryStatsModel) Profile() {
	m.sample()
}

// Finish appends the last sample and closes the file.
func (m *MemoryStatsModel) Finish() {
	m.sample()

	err := m.writer.Flush()
	if err != nil {
		panic(err)
	}

	err = m.file.Close()
	if err != nil {
		panic(err)
	}

	if m.recorder != nil {
		m.recorder.Flush()
	}
}

func (m *MemoryStatsModel) sample() {
	s := m.source.Stats()
	row := MemoryStatsSample{
		Cycle:        m.clock.Cycles(),
		Reads:        s.Reads,
		Writes:       s.Writes,
		BytesRead:    s.BytesRead,
		BytesWritten: s.BytesWritten,
	}

	fmt.Fprintf(m.writer, "%d, %d, %d, %d, %d\n",
		row.Cycle, row.Reads, row.Writes, row.BytesRead, row.BytesWritten)

	if m.recorder != nil {
		m.recorder.InsertData(memStatsTable, row)
	}
}
