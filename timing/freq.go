// Package timing measures how fast the target clock advances.
package timing

import (
	"fmt"
	"log"
	"math"
	"time"
)

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Rate returns the frequency at which cycles elapsed in the given wall time.
func Rate(cycles uint64, elapsed time.Duration) Freq {
	if elapsed <= 0 {
		return 0
	}

	return Freq(float64(cycles) / elapsed.Seconds())
}

// Period returns the time between two consecutive ticks.
func (f Freq) Period() time.Duration {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return time.Duration(math.Round(float64(time.Second) / float64(f)))
}

// CyclesIn returns the number of whole ticks within d.
func (f Freq) CyclesIn(d time.Duration) uint64 {
	return uint64(math.Floor(float64(f) * d.Seconds()))
}

// String formats the frequency in KHz, or in MHz above 1000 KHz.
func (f Freq) String() string {
	if f > MHz {
		return fmt.Sprintf("%.2f MHz", float64(f/MHz))
	}

	return fmt.Sprintf("%.2f KHz", float64(f/KHz))
}
