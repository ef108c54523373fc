package mem

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Storage", func() {
	It("should read and write in single unit", func() {
		storage := NewStorage(4 * KB)
		Expect(storage.Write(0, []byte{1, 2, 3, 4})).To(Succeed())

		res, err := storage.Read(0, 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal([]byte{1, 2}))

		res, _ = storage.Read(1, 2)
		Expect(res).To(Equal([]byte{2, 3}))
	})

	It("should read and write across units", func() {
		storage := NewStorage(8 * KB)
		Expect(storage.Write(4094, []byte{1, 2, 3, 4})).To(Succeed())

		res, _ := storage.Read(4094, 4)
		Expect(res).To(Equal([]byte{1, 2, 3, 4}))
		Expect(storage.AllocatedUnits()).To(Equal(2))
	})

	It("should read zeros without allocating", func() {
		storage := NewStorage(1 * MB)

		res, err := storage.Read(0x8000, 16)

		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal(make([]byte, 16)))
		Expect(storage.AllocatedUnits()).To(Equal(0))
	})

	It("should return error if accessing over the capacity", func() {
		storage := NewStorage(4 * KB)

		err := storage.Write(4095, []byte{1, 2})
		Expect(errors.Cause(err)).To(Equal(ErrOutOfRange))

		_, err = storage.Read(4097, 1)
		Expect(errors.Cause(err)).To(Equal(ErrOutOfRange))
	})
})

var _ = Describe("Backend", func() {
	It("should build a plain storage", func() {
		b, err := NewBackend(KindPlain, 4*KB)

		Expect(err).ToNot(HaveOccurred())
		Expect(b).To(BeAssignableToTypeOf(&Storage{}))
	})

	It("should count accesses when instrumented", func() {
		b, err := NewBackend(KindInstrumented, 4*KB)
		Expect(err).ToNot(HaveOccurred())

		Expect(b.Write(8, []byte{1, 2, 3, 4})).To(Succeed())
		_, err = b.Read(8, 2)
		Expect(err).ToNot(HaveOccurred())

		stats := b.(*InstrumentedBackend).Stats()
		Expect(stats).To(Equal(Stats{
			Reads:        1,
			Writes:       1,
			BytesRead:    2,
			BytesWritten: 4,
		}))
	})

	It("should not count failed accesses", func() {
		b := NewInstrumentedBackend(NewStorage(4 * KB))

		Expect(b.Write(4*KB, []byte{1})).ToNot(Succeed())
		Expect(b.Stats().Writes).To(BeZero())
	})

	It("should reject unknown kinds", func() {
		_, err := NewBackend("dram", 4*KB)
		Expect(err).To(MatchError(ContainSubstring("unknown memory model")))
	})
})
