package mem

import (
	"log"
	"sync/atomic"

	"github.com/pkg/errors"
)

// A Backend stores target memory for a memory model endpoint.
type Backend interface {
	Read(address, length uint64) ([]byte, error)
	Write(address uint64, data []byte) error
	Capacity() uint64
}

// Kind selects a Backend implementation.
type Kind string

// Available backend kinds.
const (
	KindPlain        Kind = "plain"
	KindInstrumented Kind = "instrumented"
)

// NewBackend creates the backend of the given kind. It is meant to be called
// once at startup; the result is injected into every component that needs
// it.
func NewBackend(kind Kind, capacity uint64) (Backend, error) {
	switch kind {
	case KindPlain, "":
		return NewStorage(capacity), nil
	case KindInstrumented:
		return NewInstrumentedBackend(NewStorage(capacity)), nil
	default:
		return nil, errors.Errorf("unknown memory model %q", kind)
	}
}

// Stats are the access counters of an InstrumentedBackend.
type Stats struct {
	Reads        uint64
	Writes       uint64
	BytesRead    uint64
	BytesWritten uint64
}

// InstrumentedBackend counts the accesses that pass through it.
type InstrumentedBackend struct {
	inner Backend

	reads        atomic.Uint64
	writes       atomic.Uint64
	bytesRead    atomic.Uint64
	bytesWritten atomic.Uint64
}

// NewInstrumentedBackend wraps a backend with access counters.
func NewInstrumentedBackend(inner Backend) *InstrumentedBackend {
	if inner == nil {
		log.Panic("instrumented backend needs an inner backend")
	}

	return &InstrumentedBackend{inner: inner}
}

// Read reads from the inner backend and counts the access.
func (b *InstrumentedBackend) Read(address, length uint64) ([]byte, error) {
	data, err := b.inner.Read(address, length)
	if err != nil {
		return nil, err
	}

	b.reads.Add(1)
	b.bytesRead.Add(length)

	return data, nil
}

// Write writes to the inner backend and counts the access.
func (b *InstrumentedBackend) Write(address uint64, data []byte) error {
	if err := b.inner.Write(address, data); err != nil {
		return err
	}

	b.writes.Add(1)
	b.bytesWritten.Add(uint64(len(data)))

	return nil
}

// Capacity returns the capacity of the inner backend.
func (b *InstrumentedBackend) Capacity() uint64 {
	return b.inner.Capacity()
}

// Stats returns a snapshot of the counters.
func (b *InstrumentedBackend) Stats() Stats {
	return Stats{
		Reads:        b.reads.Load(),
		Writes:       b.writes.Load(),
		BytesRead:    b.bytesRead.Load(),
		BytesWritten: b.bytesWritten.Load(),
	}
}
