package hw

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Token packing", func() {
	It("should size batches in whole beats", func() {
		Expect(BatchBytes(7)).To(Equal(64))
		Expect(BatchBytes(6405)).To(Equal(915 * 64))
		Expect(func() { BatchBytes(10) }).To(Panic())
	})

	It("should lay out data words and masks", func() {
		tokens := make([]Token, 14)
		tokens[0] = Token{Valid: true, Data: 0x1122334455667788}
		tokens[6] = Token{Valid: true, Last: true, Data: 42}
		tokens[8] = Token{Data: 0xdead}

		buf := make([]byte, BatchBytes(len(tokens)))
		PackTokens(buf, tokens)

		Expect(binary.LittleEndian.Uint64(buf[0:])).
			To(Equal(uint64(0x1122334455667788)))
		Expect(binary.LittleEndian.Uint64(buf[48:])).To(Equal(uint64(42)))
		Expect(buf[56]).To(Equal(byte(0b1000001)))
		Expect(buf[57]).To(Equal(byte(0b1000000)))
		Expect(binary.LittleEndian.Uint64(buf[64+8:])).To(Equal(uint64(0xdead)))
		Expect(buf[64+56]).To(BeZero())
	})

	It("should decode what it encodes", func() {
		tokens := make([]Token, 21)
		for i := range tokens {
			tokens[i] = Token{
				Valid: i%3 != 0,
				Last:  i%5 == 0,
				Data:  uint64(i) * 0x0101010101,
			}
		}

		buf := make([]byte, BatchBytes(len(tokens)))
		PackTokens(buf, tokens)

		decoded := make([]Token, len(tokens))
		UnpackTokens(decoded, buf)

		Expect(decoded).To(Equal(tokens))
	})

	It("should clear stale bytes", func() {
		buf := make([]byte, BeatBytes)
		for i := range buf {
			buf[i] = 0xff
		}

		PackTokens(buf, make([]Token, TokensPerBeat))

		Expect(buf).To(Equal(make([]byte, BeatBytes)))
	})

	It("should panic on a size mismatch", func() {
		Expect(func() {
			PackTokens(make([]byte, 63), make([]Token, 7))
		}).To(Panic())
		Expect(func() {
			UnpackTokens(make([]Token, 14), make([]byte, 64))
		}).To(Panic())
	})
})
