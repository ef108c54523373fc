// Package endpoint defines the device models that the driver ticks while the
// target clock settles.
package endpoint

import (
	"log"

	"github.com/sarchlab/simhost/hooking"
)

// An Endpoint is a host-side model of a peripheral attached to the target.
type Endpoint interface {
	hooking.Hookable

	// Name returns the name of the endpoint.
	Name() string

	// Init prepares the endpoint. It is called exactly once, before the
	// target leaves reset. Calling it again has no effect.
	Init()

	// Tick advances the endpoint by one scheduler round. It never blocks.
	Tick()

	// Done reports whether the endpoint has no outstanding work.
	Done() bool

	// Stall reports that the endpoint cannot make progress this round. A
	// stalled endpoint is not done.
	Stall() bool
}

// MemoryWriter is implemented by endpoints that back target memory.
type MemoryWriter interface {
	// MemDataBytes returns the size of one memory write unit.
	MemDataBytes() int

	// WriteMem writes exactly one unit of data at addr.
	WriteMem(addr uint64, data []byte)
}

// Flusher is implemented by endpoints that hold work until they are told to
// flush, such as console bridges.
type Flusher interface {
	Flush()
}

// Finisher is implemented by endpoints that must settle their accounts when
// the run ends.
type Finisher interface {
	Finish()
}

// MemoryEndpoint is an endpoint that backs target memory.
type MemoryEndpoint interface {
	Endpoint
	MemoryWriter
}

// FlushableEndpoint is an endpoint that needs explicit flushing.
type FlushableEndpoint interface {
	Endpoint
	Flusher
}

// FinishableEndpoint is an endpoint that is told when the run ends.
type FinishableEndpoint interface {
	Endpoint
	Finisher
}

// Base provides the name, hooks, and default Stall of an endpoint.
type Base struct {
	hooking.HookableBase

	name string
}

// NewBase creates a Base with the given name.
func NewBase(name string) *Base {
	if name == "" {
		log.Panic("endpoint name must not be empty")
	}

	return &Base{name: name}
}

// Name returns the name of the endpoint.
func (b *Base) Name() string {
	return b.name
}

// Stall returns false.
func (b *Base) Stall() bool {
	return false
}
