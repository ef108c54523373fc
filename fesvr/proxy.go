// Package fesvr describes the environment proxy that loads programs into the
// target and reports when the target workload has finished.
package fesvr

// MaxChunk is the largest payload a single load descriptor may carry.
const MaxChunk = 1024

// A LoadDescriptor asks the host to copy Size bytes of program data to target
// memory at Addr.
type LoadDescriptor struct {
	Addr uint64
	Size uint64
}

// Proxy is the environment proxy as seen by the driver.
type Proxy interface {
	// Busy reports that the proxy is actively streaming and the target should
	// be stepped one cycle at a time.
	Busy() bool

	// Done reports that the target workload has completed.
	Done() bool

	// ExitCode returns the exit code of the workload. It is meaningful only
	// after Done returns true.
	ExitCode() int

	// RecvLoadMemReq returns the next pending load descriptor, if any.
	RecvLoadMemReq() (LoadDescriptor, bool)

	// RecvLoadMemData fills dst with the payload of the descriptor last
	// returned by RecvLoadMemReq.
	RecvLoadMemData(dst []byte)
}
