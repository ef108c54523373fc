package endpoint

import "log"

// Set is the collection of endpoints owned by the driver. Besides the ordered
// list used for ticking, it keeps one list per secondary capability. Endpoints
// join a capability list only through the matching Add method.
type Set struct {
	all      []Endpoint
	names    map[string]bool
	memories []MemoryWriter
	flushers []Flusher
	finisher []Finisher
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{names: make(map[string]bool)}
}

// Add adds an endpoint that has no secondary capability.
func (s *Set) Add(e Endpoint) {
	if s.names[e.Name()] {
		log.Panicf("endpoint %s already added", e.Name())
	}

	s.names[e.Name()] = true
	s.all = append(s.all, e)
}

// AddMemory adds an endpoint that backs target memory.
func (s *Set) AddMemory(e MemoryEndpoint) {
	s.Add(e)
	s.memories = append(s.memories, e)
}

// AddFlushable adds an endpoint that needs flushing.
func (s *Set) AddFlushable(e FlushableEndpoint) {
	s.Add(e)
	s.flushers = append(s.flushers, e)
}

// AddFinishable adds an endpoint that is told when the run ends.
func (s *Set) AddFinishable(e FinishableEndpoint) {
	s.Add(e)
	s.finisher = append(s.finisher, e)
}

// All returns every endpoint in the order they were added.
func (s *Set) All() []Endpoint {
	return s.all
}

// Memories returns the endpoints that back target memory.
func (s *Set) Memories() []MemoryWriter {
	return s.memories
}

// Flushers returns the endpoints that need flushing.
func (s *Set) Flushers() []Flusher {
	return s.flushers
}

// Find returns the endpoint with the given name, or nil.
func (s *Set) Find(name string) Endpoint {
	for _, e := range s.all {
		if e.Name() == name {
			return e
		}
	}

	return nil
}

// InitAll calls Init on every endpoint.
func (s *Set) InitAll() {
	for _, e := range s.all {
		e.Init()
	}
}

// TickRound ticks every endpoint once. It returns whether every endpoint
// reported done before being ticked in this round.
func (s *Set) TickRound() bool {
	done := true

	for _, e := range s.all {
		done = e.Done() && !e.Stall() && done
		e.Tick()
	}

	return done
}

// FlushAll flushes every flushable endpoint.
func (s *Set) FlushAll() {
	for _, f := range s.flushers {
		f.Flush()
	}
}

// FinishAll tells every finishable endpoint that the run has ended.
func (s *Set) FinishAll() {
	for _, f := range s.finisher {
		f.Finish()
	}
}

// MemoryWriter returns a writer that reaches every memory endpoint, or nil if
// there is none. All memory endpoints must share the same write unit.
func (s *Set) MemoryWriter() MemoryWriter {
	switch len(s.memories) {
	case 0:
		return nil
	case 1:
		return s.memories[0]
	}

	unit := s.memories[0].MemDataBytes()
	for _, m := range s.memories[1:] {
		if m.MemDataBytes() != unit {
			log.Panic("memory endpoints disagree on the write unit")
		}
	}

	return memoryFanout(s.memories)
}

type memoryFanout []MemoryWriter

func (f memoryFanout) MemDataBytes() int {
	return f[0].MemDataBytes()
}

func (f memoryFanout) WriteMem(addr uint64, data []byte) {
	for _, m := range f {
		m.WriteMem(addr, data)
	}
}
