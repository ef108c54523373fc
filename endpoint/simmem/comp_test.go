package simmem

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/simhost/hooking"
	"github.com/sarchlab/simhost/hw/simfpga"
	"github.com/sarchlab/simhost/mem"
)

var _ = Describe("Memory model", func() {
	var (
		f       *simfpga.FPGA
		channel *simfpga.MemChannel
		backend mem.Backend
		c       *Comp
	)

	BeforeEach(func() {
		f = simfpga.New()
		channel = simfpga.AttachMemChannel(f)
		backend = mem.NewStorage(4 * mem.KB)
		c = MakeBuilder().
			WithHardware(f).
			WithBackend(backend).
			WithMaxRequestsPerTick(2).
			Build("Mem")
		c.Init()
	})

	It("should accept program data from the loader", func() {
		c.WriteMem(0x100, []byte{1, 2, 3, 4})

		data, err := backend.Read(0x100, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte{1, 2, 3, 4}))
		Expect(c.MemDataBytes()).To(Equal(8))
	})

	It("should reject writes wider than a word", func() {
		Expect(func() { c.WriteMem(0, make([]byte, 9)) }).To(Panic())
	})

	It("should serve target writes then reads", func() {
		word := []byte{8, 7, 6, 5, 4, 3, 2, 1}
		var got []byte

		t := f.Target()
		t.MemWrite(0x20, word)
		t.MemRead(0x20, func(data []byte) {
			got = append([]byte(nil), data...)
		})

		Expect(c.Done()).To(BeFalse())
		c.Tick()

		Expect(got).To(Equal(word))
		Expect(c.Done()).To(BeTrue())
		Expect(c.Served()).To(Equal(uint64(2)))
		Expect(channel.Outstanding()).To(BeZero())
	})

	It("should limit the requests served per tick", func() {
		t := f.Target()
		for i := 0; i < 3; i++ {
			t.MemRead(uint64(i*8), nil)
		}

		c.Tick()
		Expect(c.Served()).To(Equal(uint64(2)))
		Expect(c.Done()).To(BeFalse())

		c.Tick()
		Expect(c.Served()).To(Equal(uint64(3)))
		Expect(c.Done()).To(BeTrue())
	})

	It("should publish accesses to hooks", func() {
		var accesses []Access
		c.AcceptHook(hooking.HookFunc(func(ctx hooking.HookCtx) {
			accesses = append(accesses, ctx.Item.(Access))
		}))

		f.Target().MemWrite(0x8, make([]byte, 8))
		f.Target().MemRead(0x10, nil)
		c.Tick()

		Expect(accesses).To(Equal([]Access{
			{Write: true, Addr: 0x8},
			{Addr: 0x10},
		}))
	})

	It("should panic when ticked before init", func() {
		other := MakeBuilder().WithHardware(f).WithBackend(backend).Build("M2")

		Expect(func() { other.Tick() }).To(Panic())
	})

	It("should need hardware and a backend", func() {
		Expect(func() { MakeBuilder().WithHardware(f).Build("M") }).To(Panic())
	})
})
