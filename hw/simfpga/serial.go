package simfpga

import "github.com/sarchlab/simhost/hw"

// Serial models the console bridge widget. Output is drained in bulk by DMA.
type Serial struct {
	out []byte
}

// AttachSerial adds a serial console widget to the FPGA.
func AttachSerial(f *FPGA) *Serial {
	s := &Serial{}

	f.MapRegister(hw.SerialOutCount, func() uint32 {
		return uint32(len(s.out))
	}, nil)
	f.MapStream(hw.SerialOutData, func(dst []byte) int {
		n := copy(dst, s.out)
		s.out = s.out[n:]

		return n
	}, nil)

	f.AddDevice(s)
	f.tgt.serial = s

	return s
}

// Name returns "Serial".
func (s *Serial) Name() string {
	return "Serial"
}

// CanAdvance always returns true.
func (s *Serial) CanAdvance(uint64) bool {
	return true
}

// Advance does nothing.
func (s *Serial) Advance(uint64, bool) {}
