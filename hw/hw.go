// Package hw defines how the host driver talks to the FPGA that runs the
// simulated target.
//
// The hardware advances independently of the host. The host asks it to step a
// number of cycles and then observes progress by polling the cycle counter and
// the Done flag. Device models exchange data through memory-mapped registers
// and DMA streams.
package hw

// Interface is the hardware collaborator consumed by the driver and the
// endpoints. A register read or write is atomic relative to a cycle boundary.
type Interface interface {
	// Read returns the value of a memory-mapped register.
	Read(addr uint64) uint32

	// Write sets a memory-mapped register.
	Write(addr uint64, value uint32)

	// PullDMA copies up to len(dst) bytes from the hardware stream at addr.
	// It returns the number of bytes copied, which is zero when the stream
	// has nothing ready.
	PullDMA(addr uint64, dst []byte) int

	// PushDMA copies up to len(src) bytes into the hardware stream at addr
	// and returns the number of bytes accepted.
	PushDMA(addr uint64, src []byte) int

	// Cycles returns the monotonic target cycle counter.
	Cycles() uint64

	// Step asks the hardware to advance the target clock by n cycles. It
	// returns immediately; Done reports when the step target is reached.
	Step(n uint64)

	// Done reports whether the last requested step has completed.
	Done() bool

	// TargetReset asserts the target reset at cycle start for length
	// cycles. Like Step, the clock advances by length cycles.
	TargetReset(start, length uint64)
}
