// Package nic provides the network endpoint. It models one point-to-point
// link with a bandwidth cap, a burst allowance and a fixed latency.
//
// The hardware exchanges one token per target cycle in each direction. The
// endpoint pulls the egress tokens of one latency window at a time, runs them
// through a token bucket, and writes them back as the ingress tokens of the
// following window, so that every forwarded unit reaches the target exactly
// one link latency after it passed the rate limiter.
package nic

import (
	"log"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/hooking"
	"github.com/sarchlab/simhost/hw"
	"github.com/sarchlab/simhost/tracing"
)

// Hook positions of the network endpoint. The hook item is the hw.Token.
var (
	HookPosForwarded = &hooking.HookPos{Name: "NICForwarded"}
	HookPosDelivered = &hooking.HookPos{Name: "NICDelivered"}
	HookPosDropped   = &hooking.HookPos{Name: "NICDropped"}
)

// Stats counts the link units the endpoint handled.
type Stats struct {
	Batches   uint64
	Forwarded uint64
	Delivered uint64
	Dropped   uint64
	Queued    int
}

// Comp is the network endpoint.
type Comp struct {
	*endpoint.Base

	hw      hw.Interface
	mac     MAC
	limit   RateLimit
	latency uint64
	tracer  tracing.LinkTracer

	egressBufs  *DoubleBuffer
	ingressBufs *DoubleBuffer
	egress      []hw.Token
	ingress     []hw.Token

	bucket  *TokenBucket
	delay   *DelayLine
	txQueue []hw.Token

	// batchBase is the first cycle of the next egress batch.
	batchBase    uint64
	writePending bool

	rxInFrame  bool
	rxDropping bool

	initialized bool
	stats       Stats
}

var _ endpoint.Endpoint = (*Comp)(nil)

// MAC returns the address of the attachment.
func (c *Comp) MAC() MAC {
	return c.mac
}

// RateLimit returns the token bucket parameters.
func (c *Comp) RateLimit() RateLimit {
	return c.limit
}

// LinkLatency returns the link latency in cycles.
func (c *Comp) LinkLatency() uint64 {
	return c.latency
}

// Stats returns the traffic counters.
func (c *Comp) Stats() Stats {
	s := c.stats
	s.Queued = len(c.txQueue)

	return s
}

// Init programs the widget and seeds the ingress stream with the idle tokens
// of the first latency window.
func (c *Comp) Init() {
	if c.initialized {
		return
	}

	c.initialized = true

	c.hw.Write(hw.NICMacLo, c.mac.Lo())
	c.hw.Write(hw.NICMacHi, c.mac.Hi())
	c.hw.Write(hw.NICRlimitInc, uint32(c.limit.Inc))
	c.hw.Write(hw.NICRlimitPeriod, uint32(c.limit.Period))
	c.hw.Write(hw.NICRlimitSize, uint32(c.limit.Size))

	for i := range c.ingress {
		c.ingress[i] = hw.Token{}
	}

	hw.PackTokens(c.ingressBufs.Front(), c.ingress)
	c.writePending = true
	c.flushIngress()
}

// Tick moves every complete egress batch through the link.
func (c *Comp) Tick() {
	if !c.initialized {
		log.Panic("network endpoint ticked before init")
	}

	c.flushIngress()

	for !c.writePending && c.egressReady() {
		c.exchange()
	}
}

// Done is false while an ingress batch waits to be written or a full egress
// batch waits to be read. The delay line is always empty between ticks.
func (c *Comp) Done() bool {
	if c.writePending {
		return false
	}

	return !c.egressReady()
}

// Finish drops the units the target sent that never passed the token bucket.
// They are reported at the first cycle no batch has covered yet.
func (c *Comp) Finish() {
	for _, unit := range c.txQueue {
		c.stats.Dropped++
		c.publish(HookPosDropped, tracing.Dropped, c.batchBase, unit)
	}

	c.txQueue = nil
}

func (c *Comp) beatsPerBatch() uint32 {
	return uint32(c.latency / hw.TokensPerBeat)
}

func (c *Comp) egressReady() bool {
	return c.hw.Read(hw.NICEgressReady) >= c.beatsPerBatch()
}

func (c *Comp) exchange() {
	buf := c.egressBufs.Front()

	n := c.hw.PullDMA(hw.NICEgress, buf)
	if n != len(buf) {
		log.Panicf("pulled %d bytes of a %d-byte egress batch", n, len(buf))
	}

	c.egressBufs.Swap()
	hw.UnpackTokens(c.egress, c.egressBufs.Back())

	c.forward()
	c.deliver()

	c.stats.Batches++
	c.batchBase += c.latency

	c.flushIngress()
}

// forward runs the egress batch through the token bucket. Units that pass
// enter the delay line to be released one latency later.
func (c *Comp) forward() {
	for i, tok := range c.egress {
		cycle := c.batchBase + uint64(i)

		c.bucket.Advance(1)

		if tok.Valid {
			c.txQueue = append(c.txQueue, tok)
		}

		if len(c.txQueue) == 0 || !c.bucket.Take() {
			continue
		}

		unit := c.txQueue[0]
		c.txQueue = c.txQueue[1:]

		c.delay.Push(cycle+c.latency, unit)
		c.stats.Forwarded++
		c.publish(HookPosForwarded, tracing.Forwarded, cycle, unit)
	}
}

// deliver fills the ingress batch of the next latency window from the delay
// line.
func (c *Comp) deliver() {
	base := c.batchBase + c.latency

	for i := range c.ingress {
		cycle := base + uint64(i)
		c.ingress[i] = hw.Token{}

		unit, ok := c.delay.Release(cycle)
		if !ok {
			continue
		}

		if !c.accept(unit) {
			c.stats.Dropped++
			c.publish(HookPosDropped, tracing.Dropped, cycle, unit)

			continue
		}

		c.ingress[i] = unit
		c.stats.Delivered++
		c.publish(HookPosDelivered, tracing.Delivered, cycle, unit)
	}

	if c.delay.Len() > 0 {
		log.Panic("units left in the delay line after delivery")
	}

	hw.PackTokens(c.ingressBufs.Front(), c.ingress)
	c.writePending = true
}

// accept applies the MAC filter. The decision is made on the first unit of a
// frame and holds until its last unit.
func (c *Comp) accept(unit hw.Token) bool {
	if c.mac.IsZero() {
		return true
	}

	if !c.rxInFrame {
		dst := frameDst(unit.Data)
		c.rxDropping = dst != c.mac && dst != BroadcastMAC
		c.rxInFrame = true
	}

	drop := c.rxDropping

	if unit.Last {
		c.rxInFrame = false
	}

	return !drop
}

func (c *Comp) flushIngress() {
	if !c.writePending {
		return
	}

	if c.hw.Read(hw.NICIngressSpace) < c.beatsPerBatch() {
		return
	}

	buf := c.ingressBufs.Front()

	n := c.hw.PushDMA(hw.NICIngress, buf)
	if n != len(buf) {
		log.Panicf("pushed %d bytes of a %d-byte ingress batch", n, len(buf))
	}

	c.ingressBufs.Swap()
	c.writePending = false
}

func (c *Comp) publish(
	pos *hooking.HookPos,
	dir tracing.Direction,
	cycle uint64,
	unit hw.Token,
) {
	if c.NumHooks() > 0 {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    pos,
			Cycle:  cycle,
			Item:   unit,
		})
	}

	if c.tracer != nil {
		c.tracer.TraceLink(tracing.LinkRecord{
			Cycle:     cycle,
			Endpoint:  c.Name(),
			Direction: string(dir),
			Data:      unit.Data,
			Last:      unit.Last,
		})
	}
}
