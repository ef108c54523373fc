package blockdev

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/hw"
)

// Image is the storage behind a block device.
type Image interface {
	io.ReaderAt
	io.WriterAt
}

// Builder can build block device endpoints.
type Builder struct {
	hw        hw.Interface
	path      string
	image     Image
	size      int64
	maxReqLen uint32
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{maxReqLen: 16}
}

// WithHardware sets the hardware the endpoint talks to.
func (b Builder) WithHardware(h hw.Interface) Builder {
	b.hw = h
	return b
}

// WithImagePath backs the device with a disk image file. An empty path builds
// a device with no sectors.
func (b Builder) WithImagePath(path string) Builder {
	b.path = path
	return b
}

// WithImage backs the device with an in-memory or caller-managed image of
// size bytes.
func (b Builder) WithImage(image Image, size int64) Builder {
	b.image = image
	b.size = size

	return b
}

// WithMaxRequestLength sets the longest request, in sectors, the target may
// issue.
func (b Builder) WithMaxRequestLength(sectors uint32) Builder {
	b.maxReqLen = sectors
	return b
}

// Build creates the endpoint.
func (b Builder) Build(name string) (*Comp, error) {
	if b.hw == nil {
		log.Panic("block device needs hardware")
	}

	c := &Comp{
		Base:      endpoint.NewBase(name),
		hw:        b.hw,
		image:     b.image,
		maxReqLen: b.maxReqLen,
	}

	if b.image == nil && b.path != "" {
		f, err := os.OpenFile(b.path, os.O_RDWR, 0)
		if err != nil {
			return nil, errors.Wrapf(err, "opening block device image %s", b.path)
		}

		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "reading size of %s", b.path)
		}

		c.image = f
		c.closer = f
		b.size = info.Size()
	}

	if b.size%hw.BlkSectorSize != 0 {
		logrus.Warnf("%s: image size %d is not a whole number of sectors; "+
			"the tail is ignored", name, b.size)
	}

	c.nSectors = uint32(b.size / hw.BlkSectorSize)

	return c, nil
}
