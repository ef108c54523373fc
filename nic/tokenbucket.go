package nic

import (
	"log"
	"math"
)

// MaxBandwidth is the bandwidth at which the link carries one unit every
// cycle.
const MaxBandwidth = 200

// RateLimit holds the parameters of a token bucket.
type RateLimit struct {
	// Inc tokens are added every Period cycles.
	Inc    uint64
	Period uint64
	// Size caps the number of tokens the bucket holds.
	Size uint64
}

// DeriveRateLimit turns a bandwidth in (0, MaxBandwidth] and a burst size
// into bucket parameters. Inc/Period is the exact reduced fraction of
// bandwidth/MaxBandwidth when Inc fits in the burst; otherwise it is the
// closest fraction whose Inc does.
func DeriveRateLimit(bandwidth, burst uint64) RateLimit {
	if bandwidth == 0 || bandwidth > MaxBandwidth {
		log.Panicf("bandwidth %d out of range (0, %d]", bandwidth, MaxBandwidth)
	}

	if burst == 0 {
		log.Panic("burst must be positive")
	}

	g := gcd(bandwidth, MaxBandwidth)
	inc, period := bandwidth/g, uint64(MaxBandwidth)/g

	if inc <= burst {
		return RateLimit{Inc: inc, Period: period, Size: burst}
	}

	inc, period = closestFraction(float64(bandwidth)/MaxBandwidth, burst)

	return RateLimit{Inc: inc, Period: period, Size: burst}
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// closestFraction finds p/q closest to rate with 1 <= p <= maxNum. Ties go to
// the smaller denominator.
func closestFraction(rate float64, maxNum uint64) (p, q uint64) {
	bestErr := math.Inf(1)
	maxDen := uint64(math.Ceil(float64(maxNum) / rate))

	for den := uint64(1); den <= maxDen; den++ {
		num := uint64(math.Round(rate * float64(den)))
		if num == 0 || num > maxNum {
			continue
		}

		err := math.Abs(float64(num)/float64(den) - rate)
		if err < bestErr {
			bestErr = err
			p, q = num, den
		}
	}

	return p, q
}

// TokenBucket limits how many link units leave per cycle window. It starts
// full.
type TokenBucket struct {
	limit  RateLimit
	tokens uint64
	phase  uint64
}

// NewTokenBucket creates a full bucket.
func NewTokenBucket(limit RateLimit) *TokenBucket {
	if limit.Inc == 0 || limit.Period == 0 || limit.Size == 0 {
		log.Panicf("invalid rate limit %+v", limit)
	}

	return &TokenBucket{limit: limit, tokens: limit.Size}
}

// Advance moves the bucket forward by n cycles, adding Inc tokens at every
// Period boundary crossed.
func (b *TokenBucket) Advance(n uint64) {
	periods := (b.phase + n) / b.limit.Period
	b.phase = (b.phase + n) % b.limit.Period

	if periods == 0 {
		return
	}

	room := b.limit.Size - b.tokens
	if periods >= room/b.limit.Inc+1 {
		b.tokens = b.limit.Size
		return
	}

	b.tokens = min(b.limit.Size, b.tokens+periods*b.limit.Inc)
}

// Take consumes one token if available.
func (b *TokenBucket) Take() bool {
	if b.tokens == 0 {
		return false
	}

	b.tokens--

	return true
}

// Tokens returns the number of tokens available.
func (b *TokenBucket) Tokens() uint64 {
	return b.tokens
}
