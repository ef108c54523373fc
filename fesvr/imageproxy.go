package fesvr

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/simhost/hw"
)

// ImageProxy loads a flat program image into target memory and watches the
// tohost mailbox for the exit code. A nonzero tohost value with the low bit set
// means the target exited with code tohost>>1.
type ImageProxy struct {
	hw        hw.Interface
	image     []byte
	loadAddr  uint64
	chunkSize int

	offset  int
	current *LoadDescriptor

	done     bool
	exitCode int
}

var _ Proxy = (*ImageProxy)(nil)

// NewImageProxy creates a proxy that streams image to loadAddr in chunks of
// at most chunkSize bytes. A chunkSize of 0 means MaxChunk.
func NewImageProxy(
	h hw.Interface,
	image []byte,
	loadAddr uint64,
	chunkSize int,
) *ImageProxy {
	if chunkSize == 0 {
		chunkSize = MaxChunk
	}

	if chunkSize < 0 {
		log.Panicf("invalid chunk size %d", chunkSize)
	}

	return &ImageProxy{
		hw:        h,
		image:     image,
		loadAddr:  loadAddr,
		chunkSize: chunkSize,
	}
}

// LoadImageFile reads a program image from disk.
func LoadImageFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading program image %s", path)
	}

	return data, nil
}

// Busy is true while part of the image has not been handed out.
func (p *ImageProxy) Busy() bool {
	return p.offset < len(p.image) || p.current != nil
}

// Done polls the tohost mailbox.
func (p *ImageProxy) Done() bool {
	if p.done {
		return true
	}

	toHost := p.hw.Read(hw.ToHost)
	if toHost&1 == 0 {
		return false
	}

	p.hw.Write(hw.ToHost, 0)
	p.done = true
	p.exitCode = int(toHost >> 1)

	logrus.Debugf("target exited with code %d", p.exitCode)

	return true
}

// ExitCode returns the code the target exited with.
func (p *ImageProxy) ExitCode() int {
	return p.exitCode
}

// RecvLoadMemReq returns the next chunk of the image.
func (p *ImageProxy) RecvLoadMemReq() (LoadDescriptor, bool) {
	if p.current != nil {
		log.Panic("previous load descriptor has not been consumed")
	}

	if p.offset >= len(p.image) {
		return LoadDescriptor{}, false
	}

	size := min(p.chunkSize, len(p.image)-p.offset)
	p.current = &LoadDescriptor{
		Addr: p.loadAddr + uint64(p.offset),
		Size: uint64(size),
	}

	return *p.current, true
}

// RecvLoadMemData copies the payload of the current chunk into dst.
func (p *ImageProxy) RecvLoadMemData(dst []byte) {
	if p.current == nil {
		log.Panic("no load descriptor is pending")
	}

	if uint64(len(dst)) != p.current.Size {
		log.Panicf("reading %d bytes of a %d-byte chunk",
			len(dst), p.current.Size)
	}

	copy(dst, p.image[p.offset:])
	p.offset += len(dst)
	p.current = nil
}
