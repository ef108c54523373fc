package simfpga

import "github.com/sarchlab/simhost/hw"

// UART models the UART widget. Bytes written by the target are held until the
// host pops them.
type UART struct {
	out []byte
	in  []byte

	inBits byte
}

// AttachUART adds a UART widget to the FPGA.
func AttachUART(f *FPGA) *UART {
	u := &UART{}

	f.MapRegister(hw.UARTOutValid, func() uint32 {
		return boolToReg(len(u.out) > 0)
	}, nil)
	f.MapRegister(hw.UARTOutBits, func() uint32 {
		if len(u.out) == 0 {
			return 0
		}

		return uint32(u.out[0])
	}, nil)
	f.MapRegister(hw.UARTOutReady, nil, func(v uint32) {
		if v != 0 && len(u.out) > 0 {
			u.out = u.out[1:]
		}
	})
	f.MapRegister(hw.UARTInBits, nil, func(v uint32) {
		u.inBits = byte(v)
	})
	f.MapRegister(hw.UARTInValid, nil, func(v uint32) {
		if v != 0 {
			u.in = append(u.in, u.inBits)
		}
	})
	f.MapRegister(hw.UARTInReady, func() uint32 { return 1 }, nil)

	f.AddDevice(u)
	f.tgt.uart = u

	return u
}

// Name returns "UART".
func (u *UART) Name() string {
	return "UART"
}

// CanAdvance always returns true.
func (u *UART) CanAdvance(uint64) bool {
	return true
}

// Advance does nothing.
func (u *UART) Advance(uint64, bool) {}

func boolToReg(b bool) uint32 {
	if b {
		return 1
	}

	return 0
}
