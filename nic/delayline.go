package nic

import (
	"log"

	"github.com/sarchlab/simhost/hw"
)

type inFlight struct {
	release uint64
	token   hw.Token
}

// DelayLine is a ring of link units waiting for their release cycle. Units
// must be pushed in release order.
type DelayLine struct {
	ring        []inFlight
	head, count int
	lastRelease uint64
}

// NewDelayLine creates a delay line that holds up to capacity units.
func NewDelayLine(capacity int) *DelayLine {
	if capacity <= 0 {
		log.Panic("delay line capacity must be positive")
	}

	return &DelayLine{ring: make([]inFlight, capacity)}
}

// Push adds a unit released at the given cycle.
func (d *DelayLine) Push(release uint64, token hw.Token) {
	if d.count == len(d.ring) {
		log.Panic("delay line overflow")
	}

	if d.count > 0 && release <= d.lastRelease {
		log.Panicf("release cycle %d is not after %d", release, d.lastRelease)
	}

	d.ring[(d.head+d.count)%len(d.ring)] = inFlight{release: release, token: token}
	d.count++
	d.lastRelease = release
}

// Release returns the unit due at cycle, if any. A unit whose release cycle
// has already passed is a broken schedule.
func (d *DelayLine) Release(cycle uint64) (hw.Token, bool) {
	if d.count == 0 {
		return hw.Token{}, false
	}

	e := d.ring[d.head]
	if e.release < cycle {
		log.Panicf("unit due at cycle %d missed, now %d", e.release, cycle)
	}

	if e.release > cycle {
		return hw.Token{}, false
	}

	d.ring[d.head] = inFlight{}
	d.head = (d.head + 1) % len(d.ring)
	d.count--

	return e.token, true
}

// Len returns the number of units in flight.
func (d *DelayLine) Len() int {
	return d.count
}

// Cap returns the capacity of the delay line.
func (d *DelayLine) Cap() int {
	return len(d.ring)
}
