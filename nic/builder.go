package nic

import (
	"log"

	"github.com/pkg/errors"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/hw"
	"github.com/sarchlab/simhost/tracing"
)

// ErrLatencyGranularity is returned when the link latency is not a positive
// multiple of hw.TokensPerBeat.
var ErrLatencyGranularity = errors.Errorf(
	"link latency must be a positive multiple of %d", hw.TokensPerBeat)

// Defaults of the link parameters.
const (
	DefaultBandwidth   = MaxBandwidth
	DefaultBurst       = 8
	DefaultLinkLatency = 6405
)

// Builder can build network endpoints.
type Builder struct {
	hw        hw.Interface
	mac       MAC
	bandwidth uint64
	burst     uint64
	latency   uint64
	tracer    tracing.LinkTracer
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		bandwidth: DefaultBandwidth,
		burst:     DefaultBurst,
		latency:   DefaultLinkLatency,
	}
}

// WithHardware sets the hardware the endpoint talks to.
func (b Builder) WithHardware(h hw.Interface) Builder {
	b.hw = h
	return b
}

// WithMAC sets the address of the attachment. A zero address disables
// filtering.
func (b Builder) WithMAC(mac MAC) Builder {
	b.mac = mac
	return b
}

// WithBandwidth sets the sustained bandwidth, where MaxBandwidth is one link
// unit per cycle.
func (b Builder) WithBandwidth(bw uint64) Builder {
	b.bandwidth = bw
	return b
}

// WithBurst sets how many link units may leave back to back.
func (b Builder) WithBurst(burst uint64) Builder {
	b.burst = burst
	return b
}

// WithLinkLatency sets the link latency in cycles.
func (b Builder) WithLinkLatency(cycles uint64) Builder {
	b.latency = cycles
	return b
}

// WithTracer sets where link units are traced.
func (b Builder) WithTracer(t tracing.LinkTracer) Builder {
	b.tracer = t
	return b
}

// Build creates a network endpoint.
func (b Builder) Build(name string) (*Comp, error) {
	if b.hw == nil {
		log.Panic("network endpoint needs hardware")
	}

	err := ValidateLinkLatency(b.latency)
	if err != nil {
		return nil, err
	}

	if b.bandwidth == 0 || b.bandwidth > MaxBandwidth {
		return nil, errors.Errorf("bandwidth %d out of range (0, %d]",
			b.bandwidth, MaxBandwidth)
	}

	if b.burst == 0 {
		return nil, errors.New("burst must be positive")
	}

	numTokens := int(b.latency)
	batchBytes := hw.BatchBytes(numTokens)

	c := &Comp{
		Base:        endpoint.NewBase(name),
		hw:          b.hw,
		mac:         b.mac,
		limit:       DeriveRateLimit(b.bandwidth, b.burst),
		latency:     b.latency,
		tracer:      b.tracer,
		egressBufs:  NewDoubleBuffer(batchBytes),
		ingressBufs: NewDoubleBuffer(batchBytes),
		egress:      make([]hw.Token, numTokens),
		ingress:     make([]hw.Token, numTokens),
		delay:       NewDelayLine(numTokens),
	}
	c.bucket = NewTokenBucket(c.limit)

	return c, nil
}

// ValidateLinkLatency checks the latency granularity.
func ValidateLinkLatency(cycles uint64) error {
	if cycles == 0 || cycles%hw.TokensPerBeat != 0 {
		return errors.Wrapf(ErrLatencyGranularity, "link latency %d", cycles)
	}

	return nil
}
