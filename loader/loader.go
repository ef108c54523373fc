// Package loader copies program data handed out by the environment proxy
// into target memory.
package loader

import (
	"log"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/fesvr"
)

// Buffer is the scratch space used to receive one load payload. It is owned by
// the caller of Drain.
type Buffer [fesvr.MaxChunk]byte

// A Loader drains load descriptors from a proxy into a memory endpoint.
type Loader struct {
	proxy  fesvr.Proxy
	memory endpoint.MemoryWriter

	bytesLoaded uint64
}

// New creates a Loader.
func New(proxy fesvr.Proxy, memory endpoint.MemoryWriter) *Loader {
	if memory != nil && memory.MemDataBytes() <= 0 {
		log.Panic("memory write unit must be positive")
	}

	return &Loader{proxy: proxy, memory: memory}
}

// BytesLoaded returns the number of payload bytes written so far.
func (l *Loader) BytesLoaded() uint64 {
	return l.bytesLoaded
}

// Drain handles every load descriptor that is currently pending and returns
// how many it handled. A descriptor larger than fesvr.MaxChunk is a protocol
// violation and panics.
func (l *Loader) Drain(buf *Buffer) int {
	count := 0

	for {
		desc, ok := l.proxy.RecvLoadMemReq()
		if !ok {
			return count
		}

		if desc.Size > fesvr.MaxChunk {
			log.Panicf("load descriptor of %d bytes exceeds the %d-byte limit",
				desc.Size, fesvr.MaxChunk)
		}

		if l.memory == nil {
			log.Panic("no memory endpoint to load program data into")
		}

		payload := buf[:desc.Size]
		l.proxy.RecvLoadMemData(payload)
		l.write(desc.Addr, payload)

		count++
	}
}

func (l *Loader) write(addr uint64, payload []byte) {
	unit := l.memory.MemDataBytes()

	for off := 0; off < len(payload); off += unit {
		end := min(off+unit, len(payload))
		l.memory.WriteMem(addr+uint64(off), payload[off:end])
	}

	l.bytesLoaded += uint64(len(payload))
}
