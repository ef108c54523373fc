package blockdev

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/simhost/hw"
	"github.com/sarchlab/simhost/hw/simfpga"
)

type memImage struct {
	data []byte
}

func (m *memImage) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, m.data[off:]), nil
}

func (m *memImage) WriteAt(p []byte, off int64) (int, error) {
	return copy(m.data[off:], p), nil
}

var _ = Describe("Block device", func() {
	var (
		f     *simfpga.FPGA
		dev   *simfpga.BlockDevice
		image *memImage
		c     *Comp
	)

	BeforeEach(func() {
		f = simfpga.New()
		dev = simfpga.AttachBlockDevice(f)
		image = &memImage{data: make([]byte, 4*hw.BlkSectorSize)}

		for i := range image.data {
			image.data[i] = byte(i / hw.BlkSectorSize)
		}

		var err error
		c, err = MakeBuilder().
			WithHardware(f).
			WithImage(image, int64(len(image.data))).
			WithMaxRequestLength(2).
			Build("Blk")
		Expect(err).NotTo(HaveOccurred())

		c.Init()
	})

	It("should publish the geometry at init", func() {
		Expect(c.NumSectors()).To(Equal(uint32(4)))
		Expect(f.Read(hw.BlkNSectors)).To(Equal(uint32(4)))
		Expect(f.Read(hw.BlkMaxReqLen)).To(Equal(uint32(2)))
		Expect(f.Target().BlockSectors()).To(Equal(uint32(4)))
	})

	It("should serve reads", func() {
		var got []byte
		f.Target().BlockRead(2, 2, func(data []byte) {
			got = append([]byte(nil), data...)
		})

		Expect(c.Done()).To(BeFalse())
		c.Tick()

		Expect(c.Done()).To(BeTrue())
		Expect(got).To(HaveLen(2 * hw.BlkSectorSize))
		Expect(got[0]).To(Equal(byte(2)))
		Expect(got[hw.BlkSectorSize]).To(Equal(byte(3)))

		reads, writes := c.Requests()
		Expect(reads).To(Equal(uint64(1)))
		Expect(writes).To(BeZero())
	})

	It("should serve writes", func() {
		written := false
		data := bytes.Repeat([]byte{0xab}, hw.BlkSectorSize)
		f.Target().BlockWrite(1, data, func() { written = true })

		c.Tick()

		Expect(written).To(BeTrue())
		Expect(image.data[hw.BlkSectorSize : 2*hw.BlkSectorSize]).To(Equal(data))
		Expect(dev.Outstanding()).To(BeZero())
	})

	It("should panic on a request beyond the device", func() {
		f.Target().BlockRead(3, 2, nil)

		Expect(func() { c.Tick() }).To(Panic())
	})

	It("should panic on a request longer than the limit", func() {
		f.Target().BlockRead(0, 3, nil)

		Expect(func() { c.Tick() }).To(Panic())
	})

	It("should open an image file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "disk.img")
		Expect(os.WriteFile(path, make([]byte, 3*hw.BlkSectorSize+10), 0o644)).
			To(Succeed())

		fc, err := MakeBuilder().
			WithHardware(simfpga.New()).
			WithImagePath(path).
			Build("File")
		Expect(err).NotTo(HaveOccurred())
		Expect(fc.NumSectors()).To(Equal(uint32(3)))
		Expect(fc.Close()).To(Succeed())
	})

	It("should fail on a missing image file", func() {
		_, err := MakeBuilder().
			WithHardware(simfpga.New()).
			WithImagePath(filepath.Join(GinkgoT().TempDir(), "none.img")).
			Build("File")

		Expect(err).To(HaveOccurred())
	})
})
