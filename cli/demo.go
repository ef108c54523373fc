package cli

import (
	"bytes"
	"fmt"

	"github.com/sarchlab/simhost/hw"
	"github.com/sarchlab/simhost/hw/simfpga"
	"github.com/sarchlab/simhost/nic"
)

// Exit codes of the demo program.
const (
	demoExitMismatch = 1
	demoExitNoEcho   = 2
)

const (
	demoWordsToCheck = 16
	demoMaxRetries   = 64
	demoRetryGap     = 32
)

// DemoImage returns the program image loaded when no program file is given.
func DemoImage(size int) []byte {
	image := make([]byte, size)
	for i := range image {
		image[i] = byte(i*31 + 7)
	}

	return image
}

// demoProgram is the software that runs on the simulated target. It greets
// over the UART, reads the loaded image back through the memory channel
// and checks it, sends a broadcast frame over the NIC and waits for it to
// come back over the link. It exits with 0 once both checks succeed.
type demoProgram struct {
	image    []byte
	loadAddr uint64
	hasBlk   bool
	echoBy   uint64

	started  bool
	word     int
	retries  int
	waiting  bool
	retryAt  uint64
	verified bool
	exited   bool
}

func newDemoProgram(
	image []byte,
	loadAddr uint64,
	hasBlk bool,
	linkLatency uint64,
) *demoProgram {
	return &demoProgram{
		image:    image,
		loadAddr: loadAddr,
		hasBlk:   hasBlk,
		echoBy:   4 * linkLatency,
	}
}

var _ simfpga.Program = (*demoProgram)(nil)

func (p *demoProgram) Reset() {
	*p = demoProgram{
		image:    p.image,
		loadAddr: p.loadAddr,
		hasBlk:   p.hasBlk,
		echoBy:   p.echoBy,
	}
}

func (p *demoProgram) Tick(cycle uint64, t *simfpga.Target) {
	if p.exited {
		return
	}

	if !p.started {
		p.start(cycle, t)
	}

	p.checkImage(cycle, t)

	if !p.verified {
		return
	}

	if p.echoed(t) {
		t.Print(fmt.Sprintf("image verified, frame echoed at cycle %d\n", cycle))
		p.exit(t, 0)

		return
	}

	if cycle >= p.echoBy {
		t.Print("no frame came back over the link\n")
		p.exit(t, demoExitNoEcho)
	}
}

func (p *demoProgram) start(cycle uint64, t *simfpga.Target) {
	p.started = true
	p.echoBy += cycle

	banner := fmt.Sprintf("simhost demo: %d-byte image at %#x\n",
		len(p.image), p.loadAddr)
	for i := 0; i < len(banner); i++ {
		t.Putc(banner[i])
	}

	if p.hasBlk {
		t.Print(fmt.Sprintf("block device: %d sectors\n", t.BlockSectors()))
	}

	t.Send([]uint64{uint64(nic.BroadcastMAC), 0x5151_0000_0000 | cycle})
}

func (p *demoProgram) wordsToCheck() int {
	return min(len(p.image)/hw.MemDataBytes, demoWordsToCheck)
}

func (p *demoProgram) checkImage(cycle uint64, t *simfpga.Target) {
	if p.verified || p.waiting || cycle < p.retryAt {
		return
	}

	if p.word >= p.wordsToCheck() {
		p.verified = true
		return
	}

	offset := p.word * hw.MemDataBytes
	want := p.image[offset : offset+hw.MemDataBytes]

	p.waiting = true
	t.MemRead(p.loadAddr+uint64(offset), func(data []byte) {
		p.waiting = false

		if bytes.Equal(data, want) {
			p.word++
			p.retries = 0

			return
		}

		// The loader may not have reached this word yet.
		p.retries++
		if p.retries > demoMaxRetries {
			t.Print(fmt.Sprintf("image mismatch at offset %d\n", offset))
			p.exit(t, demoExitMismatch)
		}

		p.retryAt = cycle + demoRetryGap
	})
}

func (p *demoProgram) echoed(t *simfpga.Target) bool {
	for _, a := range t.Received() {
		if a.Last {
			return true
		}
	}

	return false
}

func (p *demoProgram) exit(t *simfpga.Target, code uint32) {
	p.exited = true
	t.Exit(code)
}
