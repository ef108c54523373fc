package simmem

import (
	"log"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/hw"
	"github.com/sarchlab/simhost/mem"
)

// Builder can build memory model endpoints.
type Builder struct {
	hw          hw.Interface
	backend     mem.Backend
	maxReqsTick int
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		maxReqsTick: 64,
	}
}

// WithHardware sets the hardware the endpoint talks to.
func (b Builder) WithHardware(h hw.Interface) Builder {
	b.hw = h
	return b
}

// WithBackend sets where target memory is stored.
func (b Builder) WithBackend(backend mem.Backend) Builder {
	b.backend = backend
	return b
}

// WithMaxRequestsPerTick limits how many target requests a tick serves.
func (b Builder) WithMaxRequestsPerTick(n int) Builder {
	b.maxReqsTick = n
	return b
}

// Build creates a new memory model endpoint.
func (b Builder) Build(name string) *Comp {
	if b.hw == nil || b.backend == nil {
		log.Panic("memory model needs hardware and a backend")
	}

	return &Comp{
		Base:        endpoint.NewBase(name),
		hw:          b.hw,
		backend:     b.backend,
		maxReqsTick: b.maxReqsTick,
	}
}
