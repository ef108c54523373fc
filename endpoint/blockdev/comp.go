// Package blockdev provides the block device endpoint that serves sector
// reads and writes from a disk image on the host.
package blockdev

import (
	"io"
	"log"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/hw"
)

// Comp is the block device endpoint.
type Comp struct {
	*endpoint.Base

	hw        hw.Interface
	image     Image
	closer    io.Closer
	nSectors  uint32
	maxReqLen uint32

	initialized bool
	reads       uint64
	writes      uint64
}

// Init publishes the device geometry to the hardware.
func (c *Comp) Init() {
	if c.initialized {
		return
	}

	c.hw.Write(hw.BlkNSectors, c.nSectors)
	c.hw.Write(hw.BlkMaxReqLen, c.maxReqLen)
	c.initialized = true
}

// Tick serves every request the target has issued.
func (c *Comp) Tick() {
	for c.hw.Read(hw.BlkReqValid) != 0 {
		c.serve()
	}
}

// Done is true when no request is waiting.
func (c *Comp) Done() bool {
	return c.hw.Read(hw.BlkReqValid) == 0
}

// NumSectors returns the capacity of the device.
func (c *Comp) NumSectors() uint32 {
	return c.nSectors
}

// Requests returns the number of reads and writes served.
func (c *Comp) Requests() (reads, writes uint64) {
	return c.reads, c.writes
}

// Close releases the image file, if the endpoint opened one.
func (c *Comp) Close() error {
	if c.closer == nil {
		return nil
	}

	return c.closer.Close()
}

func (c *Comp) serve() {
	write := c.hw.Read(hw.BlkReqWrite) != 0
	sector := c.hw.Read(hw.BlkReqSector)
	length := c.hw.Read(hw.BlkReqLen)
	tag := c.hw.Read(hw.BlkReqTag)

	c.hw.Write(hw.BlkReqReady, 1)

	if length == 0 || length > c.maxReqLen {
		log.Panicf("block request of %d sectors, limit is %d",
			length, c.maxReqLen)
	}

	if uint64(sector)+uint64(length) > uint64(c.nSectors) {
		log.Panicf("block request [%d, %d) beyond %d sectors",
			sector, sector+length, c.nSectors)
	}

	buf := make([]byte, int(length)*hw.BlkSectorSize)
	offset := int64(sector) * hw.BlkSectorSize

	if write {
		if n := c.hw.PullDMA(hw.BlkWriteData, buf); n != len(buf) {
			log.Panicf("block write carried %d of %d bytes", n, len(buf))
		}

		if _, err := c.image.WriteAt(buf, offset); err != nil {
			log.Panic(err)
		}

		c.writes++
	} else {
		if _, err := c.image.ReadAt(buf, offset); err != nil && err != io.EOF {
			log.Panic(err)
		}

		c.hw.PushDMA(hw.BlkReadData, buf)
		c.reads++
	}

	c.hw.Write(hw.BlkRespTag, tag)
	c.hw.Write(hw.BlkRespValid, 1)
}
