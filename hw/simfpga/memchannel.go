package simfpga

import (
	"log"

	"github.com/sarchlab/simhost/hw"
)

type memReq struct {
	write  bool
	addr   uint64
	tag    uint32
	data   []byte
	onRead func([]byte)
}

// MemChannel models the widget that forwards target memory accesses to the
// host-side memory model, one word at a time.
type MemChannel struct {
	nextTag   uint32
	pending   []memReq
	inflight  map[uint32]memReq
	writeData []byte
	readData  []byte
	respTag   uint32
}

// AttachMemChannel adds a memory channel widget to the FPGA.
func AttachMemChannel(f *FPGA) *MemChannel {
	m := &MemChannel{inflight: make(map[uint32]memReq)}

	f.MapRegister(hw.MemReqValid, func() uint32 {
		return boolToReg(len(m.pending) > 0)
	}, nil)
	f.MapRegister(hw.MemReqWrite, func() uint32 {
		return boolToReg(m.head().write)
	}, nil)
	f.MapRegister(hw.MemReqAddrLo, func() uint32 {
		return uint32(m.head().addr)
	}, nil)
	f.MapRegister(hw.MemReqAddrHi, func() uint32 {
		return uint32(m.head().addr >> 32)
	}, nil)
	f.MapRegister(hw.MemReqTag, func() uint32 { return m.head().tag }, nil)
	f.MapRegister(hw.MemReqReady, nil, func(v uint32) {
		if v != 0 {
			m.take()
		}
	})
	f.MapRegister(hw.MemRespTag, nil, func(v uint32) { m.respTag = v })
	f.MapRegister(hw.MemRespValid, nil, func(v uint32) {
		if v != 0 {
			m.complete()
		}
	})
	f.MapStream(hw.MemWriteData, func(dst []byte) int {
		n := copy(dst, m.writeData)
		m.writeData = m.writeData[n:]

		return n
	}, nil)
	f.MapStream(hw.MemReadData, nil, func(src []byte) int {
		m.readData = append(m.readData, src...)
		return len(src)
	})

	f.AddDevice(m)
	f.tgt.mem = m

	return m
}

// Name returns "MemChannel".
func (m *MemChannel) Name() string {
	return "MemChannel"
}

// CanAdvance always returns true.
func (m *MemChannel) CanAdvance(uint64) bool {
	return true
}

// Advance does nothing.
func (m *MemChannel) Advance(uint64, bool) {}

// Outstanding returns the number of accesses not yet completed.
func (m *MemChannel) Outstanding() int {
	return len(m.pending) + len(m.inflight)
}

func (m *MemChannel) issue(req memReq) {
	if req.write && len(req.data) != hw.MemDataBytes {
		log.Panicf("memory write must carry %d bytes", hw.MemDataBytes)
	}

	req.tag = m.nextTag
	m.nextTag++
	m.pending = append(m.pending, req)
}

func (m *MemChannel) head() memReq {
	if len(m.pending) == 0 {
		return memReq{}
	}

	return m.pending[0]
}

func (m *MemChannel) take() {
	if len(m.pending) == 0 {
		return
	}

	req := m.pending[0]
	m.pending = m.pending[1:]

	if req.write {
		m.writeData = append(m.writeData, req.data...)
		return
	}

	m.inflight[req.tag] = req
}

func (m *MemChannel) complete() {
	req, ok := m.inflight[m.respTag]
	if !ok {
		log.Panicf("response for unknown memory request tag %d", m.respTag)
	}

	delete(m.inflight, m.respTag)

	if len(m.readData) < hw.MemDataBytes {
		log.Panic("memory response without data")
	}

	data := m.readData[:hw.MemDataBytes]
	m.readData = m.readData[hw.MemDataBytes:]

	if req.onRead != nil {
		req.onRead(data)
	}
}
