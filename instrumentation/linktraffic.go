package instrumentation

import (
	"sort"
	"sync"

	"github.com/sarchlab/simhost/datarecording"
	"github.com/sarchlab/simhost/hooking"
)

const linkTrafficTable = "link_traffic"

// LinkTrafficSample is one row of the link traffic table.
type LinkTrafficSample struct {
	Cycle    uint64
	Endpoint string
	Event    string
	Count    uint64
}

type trafficKey struct {
	endpoint string
	event    string
}

// LinkTrafficModel is a hook that counts the events published by network
// endpoints and records the counts at every profiling point.
type LinkTrafficModel struct {
	clock    CycleTeller
	recorder datarecording.DataRecorder

	lock   sync.Mutex
	counts map[trafficKey]uint64
}

// NewLinkTrafficModel creates a LinkTrafficModel. Attach it to endpoints with
// AcceptHook.
func NewLinkTrafficModel(
	clock CycleTeller,
	recorder datarecording.DataRecorder,
) *LinkTrafficModel {
	return &LinkTrafficModel{
		clock:    clock,
		recorder: recorder,
		counts:   make(map[trafficKey]uint64),
	}
}

// Name returns "LinkTraffic".
func (m *LinkTrafficModel) Name() string {
	return "LinkTraffic"
}

// Func counts one event.
func (m *LinkTrafficModel) Func(ctx hooking.HookCtx) {
	name := ""
	if n, ok := ctx.Domain.(interface{ Name() string }); ok {
		name = n.Name()
	}

	m.lock.Lock()
	m.counts[trafficKey{endpoint: name, event: ctx.Pos.Name}]++
	m.lock.Unlock()
}

// Count returns how many times an endpoint published an event.
func (m *LinkTrafficModel) Count(endpoint, event string) uint64 {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.counts[trafficKey{endpoint: endpoint, event: event}]
}

// Init creates the table.
func (m *LinkTrafficModel) Init() {
	m.recorder.CreateTable(linkTrafficTable, LinkTrafficSample{})
}

// Profile records the current counts.
func (m *LinkTrafficModel) Profile() {
	m.record()
}

// Finish records the final counts and flushes the recorder.
func (m *LinkTrafficModel) Finish() {
	m.record()
	m.recorder.Flush()
}

func (m *LinkTrafficModel) record() {
	m.lock.Lock()
	defer m.lock.Unlock()

	keys := make([]trafficKey, 0, len(m.counts))
	for k := range m.counts {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].endpoint != keys[j].endpoint {
			return keys[i].endpoint < keys[j].endpoint
		}

		return keys[i].event < keys[j].event
	})

	cycle := m.clock.Cycles()
	for _, k := range keys {
		m.recorder.InsertData(linkTrafficTable, LinkTrafficSample{
			Cycle:    cycle,
			Endpoint: k.endpoint,
			Event:    k.event,
			Count:    m.counts[k],
		})
	}
}
