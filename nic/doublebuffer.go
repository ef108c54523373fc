package nic

// DoubleBuffer is a pair of equally sized byte buffers. The front half is the
// one the DMA channel fills or drains next. The back half holds the previous
// transfer.
type DoubleBuffer struct {
	halves [2][]byte
	front  int
}

// NewDoubleBuffer creates a double buffer with halves of size bytes.
func NewDoubleBuffer(size int) *DoubleBuffer {
	return &DoubleBuffer{
		halves: [2][]byte{make([]byte, size), make([]byte, size)},
	}
}

// Front returns the half used by the next transfer.
func (d *DoubleBuffer) Front() []byte {
	return d.halves[d.front]
}

// Back returns the half used by the previous transfer.
func (d *DoubleBuffer) Back() []byte {
	return d.halves[1-d.front]
}

// Swap exchanges the halves.
func (d *DoubleBuffer) Swap() {
	d.front = 1 - d.front
}
