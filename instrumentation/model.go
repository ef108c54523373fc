// Package instrumentation provides models that the driver queries once per
// profiling interval rather than every scheduler round.
package instrumentation

// A Model is profiled at a coarse cadence during a run.
type Model interface {
	// Name returns the name of the model.
	Name() string

	// Init is called once before the target leaves reset.
	Init()

	// Profile is called at every profiling interval boundary.
	Profile()

	// Finish is called once when the run ends.
	Finish()
}

// A CycleTeller reports the current target cycle.
type CycleTeller interface {
	Cycles() uint64
}
