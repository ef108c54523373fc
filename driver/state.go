package driver

// State is the phase of a run.
type State int32

// States of a run.
const (
	NotStarted State = iota
	Resetting
	Running
	Quiescing
	LoadingMemory
	Profiling
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Resetting:
		return "Resetting"
	case Running:
		return "Running"
	case Quiescing:
		return "Quiescing"
	case LoadingMemory:
		return "LoadingMemory"
	case Profiling:
		return "Profiling"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}
