package hw

import (
	"encoding/binary"
	"log"
)

// A Token is what a link carries in one target cycle. Data is meaningful only
// when Valid is set. Last marks the final unit of a frame.
type Token struct {
	Valid bool
	Last  bool
	Data  uint64
}

// Beat layout of the link DMA streams. A 512-bit beat carries the data words
// of TokensPerBeat tokens followed by a valid mask byte and a last mask byte.
const (
	BeatBytes     = 64
	TokensPerBeat = 7

	validMaskOffset = TokensPerBeat * 8
	lastMaskOffset  = validMaskOffset + 1
)

// BatchBytes returns the size of the DMA transfer that carries numTokens
// tokens. numTokens must be a multiple of TokensPerBeat.
func BatchBytes(numTokens int) int {
	if numTokens%TokensPerBeat != 0 {
		log.Panicf("%d tokens do not fill whole beats", numTokens)
	}

	return numTokens / TokensPerBeat * BeatBytes
}

// PackTokens encodes tokens into dst, which must be BatchBytes(len(tokens))
// long.
func PackTokens(dst []byte, tokens []Token) {
	if len(dst) != BatchBytes(len(tokens)) {
		log.Panic("token batch size mismatch")
	}

	for i := range dst {
		dst[i] = 0
	}

	for i, t := range tokens {
		beat := dst[i/TokensPerBeat*BeatBytes:]
		slot := i % TokensPerBeat

		binary.LittleEndian.PutUint64(beat[slot*8:], t.Data)

		if t.Valid {
			beat[validMaskOffset] |= 1 << slot
		}

		if t.Last {
			beat[lastMaskOffset] |= 1 << slot
		}
	}
}

// UnpackTokens decodes src into tokens, which must hold the number of tokens
// that src carries.
func UnpackTokens(tokens []Token, src []byte) {
	if len(src) != BatchBytes(len(tokens)) {
		log.Panic("token batch size mismatch")
	}

	for i := range tokens {
		beat := src[i/TokensPerBeat*BeatBytes:]
		slot := i % TokensPerBeat

		tokens[i] = Token{
			Valid: beat[validMaskOffset]&(1<<slot) != 0,
			Last:  beat[lastMaskOffset]&(1<<slot) != 0,
			Data:  binary.LittleEndian.Uint64(beat[slot*8:]),
		}
	}
}
