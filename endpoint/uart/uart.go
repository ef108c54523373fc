// Package uart provides the UART console endpoint.
package uart

import (
	"io"
	"log"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/hw"
)

// Comp moves bytes between the target UART and the host console.
type Comp struct {
	*endpoint.Base

	hw  hw.Interface
	out io.Writer
	in  <-chan byte

	pendingIn []byte
	bytesOut  uint64
}

// New creates a UART endpoint that writes target output to out. in may be nil
// when the target takes no input.
func New(name string, h hw.Interface, out io.Writer, in <-chan byte) *Comp {
	if h == nil || out == nil {
		log.Panic("uart needs hardware and an output writer")
	}

	return &Comp{
		Base: endpoint.NewBase(name),
		hw:   h,
		out:  out,
		in:   in,
	}
}

// Init does nothing; the UART needs no setup.
func (c *Comp) Init() {}

// Tick drains every byte the target has written and forwards pending input.
func (c *Comp) Tick() {
	for c.hw.Read(hw.UARTOutValid) != 0 {
		b := byte(c.hw.Read(hw.UARTOutBits))
		c.hw.Write(hw.UARTOutReady, 1)

		if _, err := c.out.Write([]byte{b}); err != nil {
			logrus.Warnf("%s: dropping output: %v", c.Name(), err)
		}

		c.bytesOut++
	}

	c.collectInput()

	for len(c.pendingIn) > 0 && c.hw.Read(hw.UARTInReady) != 0 {
		c.hw.Write(hw.UARTInBits, uint32(c.pendingIn[0]))
		c.hw.Write(hw.UARTInValid, 1)
		c.pendingIn = c.pendingIn[1:]
	}
}

func (c *Comp) collectInput() {
	if c.in == nil {
		return
	}

	for {
		select {
		case b, ok := <-c.in:
			if !ok {
				c.in = nil
				return
			}

			c.pendingIn = append(c.pendingIn, b)
		default:
			return
		}
	}
}

// Done is true once all target output has been drained.
func (c *Comp) Done() bool {
	return c.hw.Read(hw.UARTOutValid) == 0
}

// BytesOut returns the number of bytes the target has printed.
func (c *Comp) BytesOut() uint64 {
	return c.bytesOut
}
