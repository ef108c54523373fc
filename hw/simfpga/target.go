package simfpga

import "log"

// A Program is the software running on the simulated target.
type Program interface {
	// Reset is called when the target reset is asserted.
	Reset()

	// Tick runs the program for one target cycle.
	Tick(cycle uint64, t *Target)
}

// ProgramFunc turns a function into a Program that ignores reset.
type ProgramFunc func(cycle uint64, t *Target)

// Reset does nothing.
func (f ProgramFunc) Reset() {}

// Tick calls the function.
func (f ProgramFunc) Tick(cycle uint64, t *Target) {
	f(cycle, t)
}

// Target is what a Program sees of the machine it runs on.
type Target struct {
	fpga *FPGA

	uart    *UART
	serial  *Serial
	blk     *BlockDevice
	mem     *MemChannel
	network *NIC
}

// Exit reports the exit code to the host through the tohost mailbox.
func (t *Target) Exit(code uint32) {
	t.fpga.toHost = code<<1 | 1
}

// Putc writes a byte to the UART.
func (t *Target) Putc(b byte) {
	t.mustHave(t.uart != nil, "uart")
	t.uart.out = append(t.uart.out, b)
}

// Getc reads a byte from the UART. It returns false if nothing arrived.
func (t *Target) Getc() (byte, bool) {
	t.mustHave(t.uart != nil, "uart")

	if len(t.uart.in) == 0 {
		return 0, false
	}

	b := t.uart.in[0]
	t.uart.in = t.uart.in[1:]

	return b, true
}

// Print writes a string to the serial console.
func (t *Target) Print(s string) {
	t.mustHave(t.serial != nil, "serial console")
	t.serial.out = append(t.serial.out, s...)
}

// MemRead issues a read of one memory word. done is called when the host
// responds.
func (t *Target) MemRead(addr uint64, done func(data []byte)) {
	t.mustHave(t.mem != nil, "memory channel")
	t.mem.issue(memReq{addr: addr, onRead: done})
}

// MemWrite issues a write of one memory word.
func (t *Target) MemWrite(addr uint64, data []byte) {
	t.mustHave(t.mem != nil, "memory channel")
	t.mem.issue(memReq{addr: addr, write: true, data: data})
}

// BlockRead reads numSectors sectors starting at sector.
func (t *Target) BlockRead(sector, numSectors uint32, done func(data []byte)) {
	t.mustHave(t.blk != nil, "block device")
	t.blk.issue(blkReq{sector: sector, length: numSectors, onRead: done})
}

// BlockWrite writes data, which must be whole sectors, starting at sector.
func (t *Target) BlockWrite(sector uint32, data []byte, done func()) {
	t.mustHave(t.blk != nil, "block device")
	t.blk.issue(blkReq{
		sector:  sector,
		length:  uint32(len(data) / sectorSize),
		write:   true,
		data:    data,
		onWrite: done,
	})
}

// BlockSectors returns the capacity of the block device in sectors.
func (t *Target) BlockSectors() uint32 {
	t.mustHave(t.blk != nil, "block device")
	return t.blk.nSectors
}

// Send queues a frame of link units on the NIC.
func (t *Target) Send(frame []uint64) {
	t.mustHave(t.network != nil, "nic")
	t.network.send(frame)
}

// Received returns the link units that arrived on the NIC so far.
func (t *Target) Received() []Arrival {
	t.mustHave(t.network != nil, "nic")
	return t.network.arrivals
}

// MAC returns the MAC address that the host programmed into the NIC.
func (t *Target) MAC() uint64 {
	t.mustHave(t.network != nil, "nic")
	return uint64(t.network.macHi)<<32 | uint64(t.network.macLo)
}

func (t *Target) mustHave(ok bool, what string) {
	if !ok {
		log.Panicf("target has no %s", what)
	}
}
