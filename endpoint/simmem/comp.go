// Package simmem provides the host-side memory model endpoint. Target memory
// lives on the host; the endpoint serves the accesses the target issues and
// accepts program data from the memory loader.
package simmem

import (
	"log"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/hooking"
	"github.com/sarchlab/simhost/hw"
	"github.com/sarchlab/simhost/mem"
)

// HookPosMemAccess marks a target memory access served by the endpoint.
var HookPosMemAccess = &hooking.HookPos{Name: "MemAccess"}

// Access is the hook item of HookPosMemAccess.
type Access struct {
	Write bool
	Addr  uint64
}

// Comp is the memory model endpoint.
type Comp struct {
	*endpoint.Base

	hw          hw.Interface
	backend     mem.Backend
	maxReqsTick int

	initialized bool
	served      uint64
}

var _ endpoint.MemoryEndpoint = (*Comp)(nil)

// Init does nothing beyond marking the endpoint ready.
func (c *Comp) Init() {
	c.initialized = true
}

// Tick serves pending target memory requests.
func (c *Comp) Tick() {
	if !c.initialized {
		log.Panic("memory model ticked before init")
	}

	for i := 0; i < c.maxReqsTick; i++ {
		if c.hw.Read(hw.MemReqValid) == 0 {
			return
		}

		c.serve()
	}
}

// Done is true when the target has no request waiting.
func (c *Comp) Done() bool {
	return c.hw.Read(hw.MemReqValid) == 0
}

// Served returns the number of target requests served.
func (c *Comp) Served() uint64 {
	return c.served
}

// MemDataBytes returns the size of a memory word.
func (c *Comp) MemDataBytes() int {
	return hw.MemDataBytes
}

// WriteMem stores up to one memory word at addr.
func (c *Comp) WriteMem(addr uint64, data []byte) {
	if len(data) > hw.MemDataBytes {
		log.Panicf("write of %d bytes exceeds the memory word", len(data))
	}

	if err := c.backend.Write(addr, data); err != nil {
		log.Panic(err)
	}
}

func (c *Comp) serve() {
	write := c.hw.Read(hw.MemReqWrite) != 0
	addr := uint64(c.hw.Read(hw.MemReqAddrLo)) |
		uint64(c.hw.Read(hw.MemReqAddrHi))<<32
	tag := c.hw.Read(hw.MemReqTag)

	c.hw.Write(hw.MemReqReady, 1)

	if write {
		c.serveWrite(addr)
	} else {
		c.serveRead(addr, tag)
	}

	c.served++

	if c.NumHooks() > 0 {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosMemAccess,
			Cycle:  c.hw.Cycles(),
			Item:   Access{Write: write, Addr: addr},
		})
	}
}

func (c *Comp) serveWrite(addr uint64) {
	buf := make([]byte, hw.MemDataBytes)
	if n := c.hw.PullDMA(hw.MemWriteData, buf); n != len(buf) {
		log.Panicf("memory write carried %d bytes", n)
	}

	if err := c.backend.Write(addr, buf); err != nil {
		log.Panic(err)
	}
}

func (c *Comp) serveRead(addr uint64, tag uint32) {
	data, err := c.backend.Read(addr, hw.MemDataBytes)
	if err != nil {
		log.Panic(err)
	}

	c.hw.PushDMA(hw.MemReadData, data)
	c.hw.Write(hw.MemRespTag, tag)
	c.hw.Write(hw.MemRespValid, 1)
}
