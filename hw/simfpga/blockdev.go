package simfpga

import (
	"log"

	"github.com/sarchlab/simhost/hw"
)

const sectorSize = hw.BlkSectorSize

type blkReq struct {
	write   bool
	sector  uint32
	length  uint32
	tag     uint32
	data    []byte
	onRead  func([]byte)
	onWrite func()
}

// BlockDevice models the block device widget. The target issues sector
// requests; the host serves them and posts a response per request tag.
type BlockDevice struct {
	nSectors  uint32
	maxReqLen uint32

	nextTag   uint32
	pending   []blkReq
	inflight  map[uint32]blkReq
	writeData []byte
	readData  []byte
	respTag   uint32
}

// AttachBlockDevice adds a block device widget to the FPGA.
func AttachBlockDevice(f *FPGA) *BlockDevice {
	b := &BlockDevice{inflight: make(map[uint32]blkReq)}

	f.MapRegister(hw.BlkNSectors,
		func() uint32 { return b.nSectors },
		func(v uint32) { b.nSectors = v })
	f.MapRegister(hw.BlkMaxReqLen,
		func() uint32 { return b.maxReqLen },
		func(v uint32) { b.maxReqLen = v })
	f.MapRegister(hw.BlkReqValid, func() uint32 {
		return boolToReg(len(b.pending) > 0)
	}, nil)
	f.MapRegister(hw.BlkReqWrite, func() uint32 {
		return boolToReg(b.head().write)
	}, nil)
	f.MapRegister(hw.BlkReqSector, func() uint32 { return b.head().sector }, nil)
	f.MapRegister(hw.BlkReqLen, func() uint32 { return b.head().length }, nil)
	f.MapRegister(hw.BlkReqTag, func() uint32 { return b.head().tag }, nil)
	f.MapRegister(hw.BlkReqReady, nil, func(v uint32) {
		if v != 0 {
			b.take()
		}
	})
	f.MapRegister(hw.BlkRespTag, nil, func(v uint32) { b.respTag = v })
	f.MapRegister(hw.BlkRespValid, nil, func(v uint32) {
		if v != 0 {
			b.complete()
		}
	})
	f.MapStream(hw.BlkWriteData, func(dst []byte) int {
		n := copy(dst, b.writeData)
		b.writeData = b.writeData[n:]

		return n
	}, nil)
	f.MapStream(hw.BlkReadData, nil, func(src []byte) int {
		b.readData = append(b.readData, src...)
		return len(src)
	})

	f.AddDevice(b)
	f.tgt.blk = b

	return b
}

// Name returns "BlockDevice".
func (b *BlockDevice) Name() string {
	return "BlockDevice"
}

// CanAdvance always returns true.
func (b *BlockDevice) CanAdvance(uint64) bool {
	return true
}

// Advance does nothing.
func (b *BlockDevice) Advance(uint64, bool) {}

// Outstanding returns the number of requests not yet completed.
func (b *BlockDevice) Outstanding() int {
	return len(b.pending) + len(b.inflight)
}

func (b *BlockDevice) issue(req blkReq) {
	if req.length == 0 {
		log.Panic("block request must cover at least one sector")
	}

	req.tag = b.nextTag
	b.nextTag++
	b.pending = append(b.pending, req)
}

func (b *BlockDevice) head() blkReq {
	if len(b.pending) == 0 {
		return blkReq{}
	}

	return b.pending[0]
}

func (b *BlockDevice) take() {
	if len(b.pending) == 0 {
		return
	}

	req := b.pending[0]
	b.pending = b.pending[1:]

	if req.write {
		b.writeData = append(b.writeData, req.data...)
	}

	b.inflight[req.tag] = req
}

func (b *BlockDevice) complete() {
	req, ok := b.inflight[b.respTag]
	if !ok {
		log.Panicf("response for unknown block request tag %d", b.respTag)
	}

	delete(b.inflight, b.respTag)

	if req.write {
		if req.onWrite != nil {
			req.onWrite()
		}

		return
	}

	n := int(req.length) * sectorSize
	if len(b.readData) < n {
		log.Panicf("block response carries %d bytes, want %d",
			len(b.readData), n)
	}

	data := b.readData[:n]
	b.readData = b.readData[n:]

	if req.onRead != nil {
		req.onRead(data)
	}
}
