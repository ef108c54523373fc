package driver

import (
	"io"
	"log"
	"os"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/fesvr"
	"github.com/sarchlab/simhost/hw"
	"github.com/sarchlab/simhost/instrumentation"
	"github.com/sarchlab/simhost/loader"
)

// Builder can build drivers.
type Builder struct {
	hw              hw.Interface
	proxy           fesvr.Proxy
	endpoints       *endpoint.Set
	models          []instrumentation.Model
	stepSize        uint64
	maxCycles       uint64
	profileInterval uint64
	resetCycles     uint64
	summary         io.Writer
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		stepSize:    2048,
		resetCycles: 50,
		summary:     os.Stderr,
	}
}

// WithHardware sets the hardware that runs the target.
func (b Builder) WithHardware(h hw.Interface) Builder {
	b.hw = h
	return b
}

// WithProxy sets the environment proxy.
func (b Builder) WithProxy(p fesvr.Proxy) Builder {
	b.proxy = p
	return b
}

// WithEndpoints sets the endpoints the driver ticks.
func (b Builder) WithEndpoints(s *endpoint.Set) Builder {
	b.endpoints = s
	return b
}

// WithModels sets the instrumentation models.
func (b Builder) WithModels(models ...instrumentation.Model) Builder {
	b.models = models
	return b
}

// WithStepSize sets how many cycles a step covers when the proxy is idle.
// It is also the number of stepped cycles after which memory is loaded.
func (b Builder) WithStepSize(n uint64) Builder {
	b.stepSize = n
	return b
}

// WithMaxCycles sets the cycle budget of the run.
func (b Builder) WithMaxCycles(n uint64) Builder {
	b.maxCycles = n
	return b
}

// WithProfileInterval sets the cycles between two profiling points. Zero
// means the cycle budget.
func (b Builder) WithProfileInterval(n uint64) Builder {
	b.profileInterval = n
	return b
}

// WithResetCycles sets how long the target is held in reset.
func (b Builder) WithResetCycles(n uint64) Builder {
	b.resetCycles = n
	return b
}

// WithSummaryWriter sets where the run summary is printed. Nil disables the
// summary.
func (b Builder) WithSummaryWriter(w io.Writer) Builder {
	b.summary = w
	return b
}

// Build creates a driver.
func (b Builder) Build(name string) *Driver {
	if b.hw == nil || b.proxy == nil {
		log.Panic("driver needs hardware and a proxy")
	}

	if b.stepSize == 0 {
		log.Panic("step size must be positive")
	}

	if b.maxCycles == 0 {
		log.Panic("max cycles must be positive")
	}

	endpoints := b.endpoints
	if endpoints == nil {
		endpoints = endpoint.NewSet()
	}

	interval := b.profileInterval
	if interval == 0 {
		interval = b.maxCycles
	}

	return &Driver{
		name:            name,
		hw:              b.hw,
		proxy:           b.proxy,
		endpoints:       endpoints,
		models:          b.models,
		loader:          loader.New(b.proxy, endpoints.MemoryWriter()),
		stepSize:        b.stepSize,
		maxCycles:       b.maxCycles,
		profileInterval: interval,
		resetCycles:     b.resetCycles,
		summary:         b.summary,
		gate:            newGate(),
	}
}
