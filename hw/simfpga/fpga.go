// Package simfpga provides a software model of the FPGA that hosts a simulated
// target. It implements hw.Interface so that the host driver and its endpoints
// can run without an FPGA attached.
//
// The model advances the target one cycle at a time toward the requested step
// target. Before executing a cycle, every device is asked whether the cycle
// can run. A device that is waiting on the host (for example a NIC without
// ingress tokens) blocks the clock until an endpoint supplies what it needs,
// which is the backpressure that real token-based FPGA simulation exhibits.
package simfpga

import (
	"log"

	"github.com/sarchlab/simhost/hw"
)

// A Device is a widget model attached to the FPGA.
type Device interface {
	// Name returns the name of the device.
	Name() string

	// CanAdvance reports whether the target may execute the given cycle.
	CanAdvance(cycle uint64) bool

	// Advance runs the device for one target cycle.
	Advance(cycle uint64, inReset bool)
}

type register struct {
	read  func() uint32
	write func(uint32)
}

type stream struct {
	pull func(dst []byte) int
	push func(src []byte) int
}

// FPGA is a software model of the simulation FPGA.
type FPGA struct {
	cycle  uint64
	target uint64

	resetStart uint64
	resetEnd   uint64

	regs    map[uint64]register
	streams map[uint64]stream
	devices []Device

	program Program
	tgt     *Target

	toHost   uint32
	fromHost uint32
}

var _ hw.Interface = (*FPGA)(nil)

// New creates an FPGA model without any device attached.
func New() *FPGA {
	f := &FPGA{
		regs:    make(map[uint64]register),
		streams: make(map[uint64]stream),
	}

	f.tgt = &Target{fpga: f}

	f.MapRegister(hw.ToHost,
		func() uint32 { return f.toHost },
		func(v uint32) { f.toHost = v })
	f.MapRegister(hw.FromHost,
		func() uint32 { return f.fromHost },
		func(v uint32) { f.fromHost = v })

	return f
}

// MapRegister binds a register address to its read and write behavior. Either
// function can be nil.
func (f *FPGA) MapRegister(addr uint64, read func() uint32, write func(uint32)) {
	if _, ok := f.regs[addr]; ok {
		log.Panicf("register 0x%x is already mapped", addr)
	}

	f.regs[addr] = register{read: read, write: write}
}

// MapStream binds a DMA stream address. Either function can be nil.
func (f *FPGA) MapStream(
	addr uint64,
	pull func(dst []byte) int,
	push func(src []byte) int,
) {
	if _, ok := f.streams[addr]; ok {
		log.Panicf("stream 0x%x is already mapped", addr)
	}

	f.streams[addr] = stream{pull: pull, push: push}
}

// AddDevice attaches a device.
func (f *FPGA) AddDevice(d Device) {
	f.devices = append(f.devices, d)
}

// LoadProgram sets the software that runs on the target.
func (f *FPGA) LoadProgram(p Program) {
	f.program = p
}

// Target returns the view of the hardware that the target program uses.
func (f *FPGA) Target() *Target {
	return f.tgt
}

// Read returns the value of a register.
func (f *FPGA) Read(addr uint64) uint32 {
	r, ok := f.regs[addr]
	if !ok {
		log.Panicf("reading unmapped register 0x%x", addr)
	}

	if r.read == nil {
		return 0
	}

	return r.read()
}

// Write sets the value of a register.
func (f *FPGA) Write(addr uint64, value uint32) {
	r, ok := f.regs[addr]
	if !ok {
		log.Panicf("writing unmapped register 0x%x", addr)
	}

	if r.write != nil {
		r.write(value)
	}

	f.advance()
}

// PullDMA copies data out of a stream.
func (f *FPGA) PullDMA(addr uint64, dst []byte) int {
	s, ok := f.streams[addr]
	if !ok || s.pull == nil {
		log.Panicf("pulling from unmapped stream 0x%x", addr)
	}

	n := s.pull(dst)
	f.advance()

	return n
}

// PushDMA copies data into a stream.
func (f *FPGA) PushDMA(addr uint64, src []byte) int {
	s, ok := f.streams[addr]
	if !ok || s.push == nil {
		log.Panicf("pushing to unmapped stream 0x%x", addr)
	}

	n := s.push(src)
	f.advance()

	return n
}

// Cycles returns the number of cycles the target has executed.
func (f *FPGA) Cycles() uint64 {
	return f.cycle
}

// Step requests the target to run n more cycles.
func (f *FPGA) Step(n uint64) {
	if f.cycle < f.target {
		log.Panic("stepping while the previous step is in progress")
	}

	f.target = f.cycle + n
	f.advance()
}

// Done reports whether the requested step has completed.
func (f *FPGA) Done() bool {
	f.advance()

	return f.cycle >= f.target
}

// TargetReset holds the target in reset from cycle start for length cycles.
func (f *FPGA) TargetReset(start, length uint64) {
	if start != f.cycle {
		log.Panicf("reset must start at the current cycle %d, not %d",
			f.cycle, start)
	}

	if f.cycle < f.target {
		log.Panic("resetting while a step is in progress")
	}

	f.resetStart = start
	f.resetEnd = start + length
	f.target = f.resetEnd

	if f.program != nil {
		f.program.Reset()
	}

	f.advance()
}

func (f *FPGA) inReset(cycle uint64) bool {
	return cycle >= f.resetStart && cycle < f.resetEnd
}

func (f *FPGA) advance() {
	for f.cycle < f.target {
		for _, d := range f.devices {
			if !d.CanAdvance(f.cycle) {
				return
			}
		}

		inReset := f.inReset(f.cycle)

		if !inReset && f.program != nil {
			f.program.Tick(f.cycle, f.tgt)
		}

		for _, d := range f.devices {
			d.Advance(f.cycle, inReset)
		}

		f.cycle++
	}
}
