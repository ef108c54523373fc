package instrumentation

import (
	"time"

	"github.com/rs/xid"

	"github.com/sarchlab/simhost/datarecording"
	"github.com/sarchlab/simhost/timing"
)

const throughputTable = "throughput"

// ThroughputSample is one row of the throughput table.
type ThroughputSample struct {
	RunID       string
	Cycle       uint64
	WallSeconds float64
	KHz         float64
}

// ThroughputModel records how fast the target clock advances between
// profiling points.
type ThroughputModel struct {
	clock    CycleTeller
	recorder datarecording.DataRecorder
	now      func() time.Time

	runID     string
	start     time.Time
	lastTime  time.Time
	lastCycle uint64
	samples   int
}

// NewThroughputModel creates a ThroughputModel.
func NewThroughputModel(
	clock CycleTeller,
	recorder datarecording.DataRecorder,
) *ThroughputModel {
	return &ThroughputModel{
		clock:    clock,
		recorder: recorder,
		now:      time.Now,
		runID:    xid.New().String(),
	}
}

// Name returns "Throughput".
func (m *ThroughputModel) Name() string {
	return "Throughput"
}

// RunID returns the identifier that tags every sample of this run.
func (m *ThroughputModel) RunID() string {
	return m.runID
}

// Samples returns the number of samples recorded.
func (m *ThroughputModel) Samples() int {
	return m.samples
}

// Init creates the table and starts the wall clock.
func (m *ThroughputModel) Init() {
	m.recorder.CreateTable(throughputTable, ThroughputSample{})

	m.start = m.now()
	m.lastTime = m.start
	m.lastCycle = m.clock.Cycles()
}

// Profile records the clock rate since the previous sample.
func (m *ThroughputModel) Profile() {
	m.sample()
}

// Finish records the last sample and flushes the recorder.
func (m *ThroughputModel) Finish() {
	m.sample()
	m.recorder.Flush()
}

func (m *ThroughputModel) sample() {
	now := m.now()
	cycle := m.clock.Cycles()
	rate := timing.Rate(cycle-m.lastCycle, now.Sub(m.lastTime))

	m.recorder.InsertData(throughputTable, ThroughputSample{
		RunID:       m.runID,
		Cycle:       cycle,
		WallSeconds: now.Sub(m.start).Seconds(),
		KHz:         float64(rate / timing.KHz),
	})

	m.lastTime = now
	m.lastCycle = cycle
	m.samples++
}
