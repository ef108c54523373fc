// Package driver runs the target clock. It steps the hardware, settles every
// endpoint after each step, feeds program data from the environment proxy into
// target memory and decides how the run ended.
package driver

import (
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/fesvr"
	"github.com/sarchlab/simhost/hooking"
	"github.com/sarchlab/simhost/hw"
	"github.com/sarchlab/simhost/instrumentation"
	"github.com/sarchlab/simhost/loader"
)

// Hook positions of the driver.
var (
	// HookPosStateChange is invoked when the run enters a new state. The item
	// is the State.
	HookPosStateChange = &hooking.HookPos{Name: "StateChange"}

	// HookPosStep is invoked after each settled step. The item is the
	// StepInfo.
	HookPosStep = &hooking.HookPos{Name: "Step"}
)

// StepInfo is the hook item of HookPosStep.
type StepInfo struct {
	Delta  uint64
	Rounds uint64
}

// Stats counts the work done by the driver.
type Stats struct {
	Steps        uint64
	SettleRounds uint64
	Loads        uint64
	Profiles     uint64
}

// Driver owns the endpoints and instrumentation models of a run.
type Driver struct {
	hooking.HookableBase

	name      string
	hw        hw.Interface
	proxy     fesvr.Proxy
	endpoints *endpoint.Set
	models    []instrumentation.Model
	loader    *loader.Loader
	buf       loader.Buffer

	stepSize        uint64
	maxCycles       uint64
	profileInterval uint64
	resetCycles     uint64
	summary         io.Writer

	gate     *gate
	state    atomic.Int32
	cycles   atomic.Uint64
	deltaSum uint64
	stats    Stats
}

// Name returns the name of the driver.
func (d *Driver) Name() string {
	return d.name
}

// Endpoints returns the endpoints the driver ticks.
func (d *Driver) Endpoints() *endpoint.Set {
	return d.endpoints
}

// Models returns the instrumentation models.
func (d *Driver) Models() []instrumentation.Model {
	return d.models
}

// State returns the current state. It is safe to call from any goroutine.
func (d *Driver) State() State {
	return State(d.state.Load())
}

// StateName returns the name of the current state.
func (d *Driver) StateName() string {
	return d.State().String()
}

// Cycles returns the target cycle observed after the last settled step. It is
// safe to call from any goroutine.
func (d *Driver) Cycles() uint64 {
	return d.cycles.Load()
}

// MaxCycles returns the cycle budget.
func (d *Driver) MaxCycles() uint64 {
	return d.maxCycles
}

// Stats returns the work counters. Call it only from the run goroutine or
// after the run.
func (d *Driver) Stats() Stats {
	return d.stats
}

// BytesLoaded returns how many bytes of program data were loaded.
func (d *Driver) BytesLoaded() uint64 {
	return d.loader.BytesLoaded()
}

// Pause stops the run loop at the next step boundary.
func (d *Driver) Pause() {
	d.gate.pause()
}

// Continue resumes a paused run.
func (d *Driver) Continue() {
	d.gate.resume()
}

// Paused reports whether the run is paused.
func (d *Driver) Paused() bool {
	return d.gate.isPaused()
}

// Run executes the whole simulation and returns its outcome.
func (d *Driver) Run() Outcome {
	if d.State() != NotStarted {
		log.Panic("a driver can only run once")
	}

	d.reset()

	start := time.Now()

	for !d.proxy.Done() && d.hw.Cycles() < d.maxCycles {
		d.profile()
		d.loop()
	}

	return d.finish(time.Since(start))
}

func (d *Driver) reset() {
	for _, m := range d.models {
		m.Init()
	}

	d.endpoints.InitAll()

	d.setState(Resetting)
	d.hw.TargetReset(d.hw.Cycles(), d.resetCycles)
	d.settle()

	logrus.WithField("cycles", d.hw.Cycles()).Debug("target reset released")
}

func (d *Driver) profile() {
	d.setState(Profiling)

	for _, m := range d.models {
		m.Profile()
	}

	d.stats.Profiles++
}

// loop runs the target up to the next profiling boundary.
func (d *Driver) loop() {
	now := d.hw.Cycles()
	loopEnd := now + min(d.profileInterval, d.maxCycles-now)

	for {
		d.gate.wait()

		d.setState(Running)

		delta := d.nextDelta(loopEnd)
		d.hw.Step(delta)
		d.deltaSum += delta
		d.stats.Steps++

		rounds := d.settle()
		d.publishStep(delta, rounds)

		if d.deltaSum >= d.stepSize || d.proxy.Busy() {
			d.loadMemory()
		}

		if d.proxy.Done() ||
			d.hw.Cycles() >= loopEnd ||
			d.hw.Cycles() >= d.maxCycles {
			return
		}
	}
}

// nextDelta is one cycle while the proxy streams, the step size otherwise,
// and never crosses the profiling boundary or the cycle budget.
func (d *Driver) nextDelta(loopEnd uint64) uint64 {
	delta := d.stepSize
	if d.proxy.Busy() {
		delta = 1
	}

	now := d.hw.Cycles()
	delta = min(delta, loopEnd-now, d.maxCycles-now)

	if delta == 0 {
		log.Panic("stepping zero cycles")
	}

	return delta
}

// settle ticks every endpoint until the hardware and all endpoints report
// done in the same round. It returns the number of rounds.
func (d *Driver) settle() uint64 {
	d.setState(Quiescing)

	var rounds uint64

	for {
		done := d.hw.Done()
		done = d.endpoints.TickRound() && done
		rounds++

		if done {
			break
		}
	}

	d.stats.SettleRounds += rounds
	d.cycles.Store(d.hw.Cycles())

	return rounds
}

func (d *Driver) loadMemory() {
	d.setState(LoadingMemory)

	d.endpoints.FlushAll()
	d.stats.Loads += uint64(d.loader.Drain(&d.buf))

	if d.deltaSum >= d.stepSize {
		d.deltaSum = 0
	}
}

func (d *Driver) finish(elapsed time.Duration) Outcome {
	d.setState(Finished)
	d.endpoints.FinishAll()

	for _, m := range d.models {
		m.Finish()
	}

	d.endpoints.FlushAll()

	outcome := classify(
		d.proxy.Done(), d.proxy.ExitCode(), d.hw.Cycles(), d.maxCycles)
	outcome.Elapsed = elapsed

	logrus.WithFields(logrus.Fields{
		"status": outcome.Status,
		"code":   outcome.Code,
		"cycles": outcome.Cycles,
	}).Info("run finished")

	if d.summary != nil {
		WriteSummary(d.summary, outcome)
	}

	return outcome
}

func (d *Driver) setState(s State) {
	if d.State() == s {
		return
	}

	d.state.Store(int32(s))

	if d.NumHooks() > 0 {
		d.InvokeHook(hooking.HookCtx{
			Domain: d,
			Pos:    HookPosStateChange,
			Cycle:  d.hw.Cycles(),
			Item:   s,
		})
	}
}

func (d *Driver) publishStep(delta, rounds uint64) {
	if d.NumHooks() == 0 {
		return
	}

	d.InvokeHook(hooking.HookCtx{
		Domain: d,
		Pos:    HookPosStep,
		Cycle:  d.hw.Cycles(),
		Item:   StepInfo{Delta: delta, Rounds: rounds},
	})
}
