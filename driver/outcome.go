package driver

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/sarchlab/simhost/timing"
)

// TimeoutExitStatus is the process exit status of a run that ran out of
// cycles.
const TimeoutExitStatus = 124

// Status classifies how a run ended.
type Status int

// Run statuses.
const (
	Passed Status = iota
	FailedCode
	FailedTimeout
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "PASSED"
	case FailedCode:
		return "FAILED"
	case FailedTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the result of a run.
type Outcome struct {
	Status  Status
	Code    int
	Cycles  uint64
	Elapsed time.Duration
}

// classify decides the outcome. Completion of the proxy wins over the cycle
// budget.
func classify(proxyDone bool, exitCode int, cycles, maxCycles uint64) Outcome {
	switch {
	case proxyDone && exitCode != 0:
		return Outcome{Status: FailedCode, Code: exitCode, Cycles: cycles}
	case proxyDone:
		return Outcome{Status: Passed, Cycles: cycles}
	case cycles >= maxCycles:
		return Outcome{Status: FailedTimeout, Cycles: cycles}
	default:
		log.Panic("classifying a run that has not finished")
		return Outcome{}
	}
}

// ExitStatus returns the process exit status that mirrors the outcome.
func (o Outcome) ExitStatus() int {
	switch o.Status {
	case Passed:
		return 0
	case FailedCode:
		return o.Code
	default:
		return TimeoutExitStatus
	}
}

func (o Outcome) String() string {
	switch o.Status {
	case Passed:
		return fmt.Sprintf("*** PASSED *** after %d cycles", o.Cycles)
	case FailedCode:
		return fmt.Sprintf("*** FAILED *** (code = %d) after %d cycles",
			o.Code, o.Cycles)
	default:
		return fmt.Sprintf("*** FAILED *** (timeout) after %d cycles", o.Cycles)
	}
}

// WriteSummary prints the elapsed time, the simulation speed and the
// outcome.
func WriteSummary(w io.Writer, o Outcome) {
	fmt.Fprintf(w, "time elapsed: %.1f s, simulation speed = %s\n",
		o.Elapsed.Seconds(), timing.Rate(o.Cycles, o.Elapsed))
	fmt.Fprintln(w, o.String())
}
