// Package serial provides the console bridge endpoint. Output is collected
// every tick but only written out when the endpoint is flushed.
package serial

import (
	"io"
	"log"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/hw"
)

// Comp is the console bridge endpoint.
type Comp struct {
	*endpoint.Base

	hw      hw.Interface
	out     io.Writer
	pending []byte
	buf     []byte
}

var _ endpoint.FlushableEndpoint = (*Comp)(nil)

// New creates a console bridge that writes to out.
func New(name string, h hw.Interface, out io.Writer) *Comp {
	if h == nil || out == nil {
		log.Panic("serial bridge needs hardware and an output writer")
	}

	return &Comp{
		Base: endpoint.NewBase(name),
		hw:   h,
		out:  out,
		buf:  make([]byte, 256),
	}
}

// Init does nothing; the bridge needs no setup.
func (c *Comp) Init() {}

// Tick pulls the console output the target has produced.
func (c *Comp) Tick() {
	for c.hw.Read(hw.SerialOutCount) > 0 {
		n := c.hw.PullDMA(hw.SerialOutData, c.buf)
		if n == 0 {
			return
		}

		c.pending = append(c.pending, c.buf[:n]...)
	}
}

// Done is true once no output is waiting in the hardware.
func (c *Comp) Done() bool {
	return c.hw.Read(hw.SerialOutCount) == 0
}

// Flush writes collected output.
func (c *Comp) Flush() {
	if len(c.pending) == 0 {
		return
	}

	if _, err := c.out.Write(c.pending); err != nil {
		logrus.Warnf("%s: dropping output: %v", c.Name(), err)
	}

	c.pending = c.pending[:0]
}

// Pending returns the output collected but not yet flushed.
func (c *Comp) Pending() []byte {
	return c.pending
}
