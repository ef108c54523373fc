package simfpga

import (
	"github.com/sarchlab/simhost/hw"
)

// Arrival records a link unit delivered to the target.
type Arrival struct {
	Cycle uint64
	Data  uint64
	Last  bool
}

// NIC models the network widget. Every target cycle it emits one egress token
// and consumes one ingress token. The target cannot run a cycle for which the
// host has not yet supplied the ingress token, or when the egress stream is
// full.
type NIC struct {
	capacity int

	txQueue  []hw.Token
	egress   []hw.Token
	ingress  []hw.Token
	arrivals []Arrival

	macLo, macHi uint32
	rlimitInc    uint32
	rlimitPeriod uint32
	rlimitSize   uint32

	// Transmit credit. Refilled by rlimitInc every rlimitPeriod cycles and
	// capped at rlimitSize.
	credit uint32
	phase  uint32
}

// AttachNIC adds a network widget whose streams each hold up to capacity
// tokens. capacity is rounded down to whole beats.
func AttachNIC(f *FPGA, capacity int) *NIC {
	n := &NIC{capacity: capacity / hw.TokensPerBeat * hw.TokensPerBeat}

	f.MapRegister(hw.NICMacLo, nil, func(v uint32) { n.macLo = v })
	f.MapRegister(hw.NICMacHi, nil, func(v uint32) { n.macHi = v })
	f.MapRegister(hw.NICRlimitInc, nil, func(v uint32) {
		n.rlimitInc = v
		n.resetLimiter()
	})
	f.MapRegister(hw.NICRlimitPeriod, nil, func(v uint32) {
		n.rlimitPeriod = v
		n.resetLimiter()
	})
	f.MapRegister(hw.NICRlimitSize, nil, func(v uint32) {
		n.rlimitSize = v
		n.resetLimiter()
	})
	f.MapRegister(hw.NICEgressReady, func() uint32 {
		return uint32(len(n.egress) / hw.TokensPerBeat)
	}, nil)
	f.MapRegister(hw.NICIngressSpace, func() uint32 {
		return uint32((n.capacity - len(n.ingress)) / hw.TokensPerBeat)
	}, nil)
	f.MapStream(hw.NICEgress, n.pullEgress, nil)
	f.MapStream(hw.NICIngress, nil, n.pushIngress)

	f.AddDevice(n)
	f.tgt.network = n

	return n
}

// Name returns "NIC".
func (n *NIC) Name() string {
	return "NIC"
}

// CanAdvance requires an ingress token and room for an egress token.
func (n *NIC) CanAdvance(uint64) bool {
	return len(n.ingress) > 0 && len(n.egress) < n.capacity
}

// Advance moves one token in each direction. A queued unit only goes on the
// wire when the rate limiter has credit for it.
func (n *NIC) Advance(cycle uint64, inReset bool) {
	n.refill()

	out := hw.Token{}
	if !inReset && len(n.txQueue) > 0 && n.takeCredit() {
		out = n.txQueue[0]
		n.txQueue = n.txQueue[1:]
	}

	n.egress = append(n.egress, out)

	in := n.ingress[0]
	n.ingress = n.ingress[1:]

	if in.Valid && !inReset {
		n.arrivals = append(n.arrivals, Arrival{
			Cycle: cycle,
			Data:  in.Data,
			Last:  in.Last,
		})
	}
}

// RateLimit returns the rate limiter settings programmed by the host.
func (n *NIC) RateLimit() (inc, period, size uint32) {
	return n.rlimitInc, n.rlimitPeriod, n.rlimitSize
}

func (n *NIC) limited() bool {
	return n.rlimitInc != 0 && n.rlimitPeriod != 0 && n.rlimitSize != 0
}

func (n *NIC) resetLimiter() {
	n.credit = n.rlimitSize
	n.phase = 0
}

func (n *NIC) refill() {
	if !n.limited() {
		return
	}

	n.phase++
	if n.phase < n.rlimitPeriod {
		return
	}

	n.phase = 0
	n.credit = min(n.credit+n.rlimitInc, n.rlimitSize)
}

func (n *NIC) takeCredit() bool {
	if !n.limited() {
		return true
	}

	if n.credit == 0 {
		return false
	}

	n.credit--

	return true
}

// Pending returns the number of link units the target queued but has not put
// on the wire yet.
func (n *NIC) Pending() int {
	return len(n.txQueue)
}

func (n *NIC) send(frame []uint64) {
	for i, d := range frame {
		n.txQueue = append(n.txQueue, hw.Token{
			Valid: true,
			Last:  i == len(frame)-1,
			Data:  d,
		})
	}
}

func (n *NIC) pullEgress(dst []byte) int {
	beats := min(len(dst)/hw.BeatBytes, len(n.egress)/hw.TokensPerBeat)
	if beats == 0 {
		return 0
	}

	numTokens := beats * hw.TokensPerBeat
	hw.PackTokens(dst[:beats*hw.BeatBytes], n.egress[:numTokens])
	n.egress = n.egress[numTokens:]

	return beats * hw.BeatBytes
}

func (n *NIC) pushIngress(src []byte) int {
	space := (n.capacity - len(n.ingress)) / hw.TokensPerBeat
	beats := min(len(src)/hw.BeatBytes, space)

	if beats == 0 {
		return 0
	}

	tokens := make([]hw.Token, beats*hw.TokensPerBeat)
	hw.UnpackTokens(tokens, src[:beats*hw.BeatBytes])
	n.ingress = append(n.ingress, tokens...)

	return beats * hw.BeatBytes
}
