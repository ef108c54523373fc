// Package config holds the options of a simulation run. Options come from
// defaults, a YAML file, the environment and, last, command line flags.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/simhost/hw"
	"github.com/sarchlab/simhost/mem"
	"github.com/sarchlab/simhost/nic"
)

// Config is the set of run options.
type Config struct {
	BlockDevice     string `yaml:"blkdev"`
	NICLog          string `yaml:"niclog"`
	SlotID          int    `yaml:"slotid"`
	MACAddr         string `yaml:"macaddr"`
	NetBandwidth    uint64 `yaml:"netbw"`
	NetBurst        uint64 `yaml:"netburst"`
	LinkLatency     uint64 `yaml:"linklatency"`
	MaxCycles       uint64 `yaml:"max-cycles"`
	ProfileInterval uint64 `yaml:"profile-interval"`
	StepSize        uint64 `yaml:"step-size"`
	MemModel        string `yaml:"mem-model"`
	MemCapacity     uint64 `yaml:"mem-capacity"`
	Program         string `yaml:"program"`
	LoadAddr        uint64 `yaml:"load-addr"`
	TraceDB         string `yaml:"trace-db"`
	Monitor         bool   `yaml:"monitor"`
	MonitorPort     int    `yaml:"monitor-port"`
	OpenBrowser     bool   `yaml:"open-browser"`
	LogLevel        string `yaml:"log"`
}

// Default returns the default options.
func Default() Config {
	return Config{
		NetBandwidth: nic.DefaultBandwidth,
		NetBurst:     nic.DefaultBurst,
		LinkLatency:  nic.DefaultLinkLatency,
		MaxCycles:    1 << 40,
		StepSize:     2048,
		MemModel:     string(mem.KindPlain),
		MemCapacity:  4 * mem.GB,
		LoadAddr:     0x80000000,
		LogLevel:     "info",
	}
}

// Error reports an invalid option.
type Error struct {
	Field  string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err = dec.Decode(&cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}

	return cfg, nil
}

// Validate checks that the options describe a runnable simulation.
func (c *Config) Validate() error {
	if err := nic.ValidateLinkLatency(c.LinkLatency); err != nil {
		return &Error{
			Field: "linklatency",
			Reason: fmt.Sprintf("%d is not a positive multiple of %d",
				c.LinkLatency, hw.TokensPerBeat),
			Err: err,
		}
	}

	if c.NetBandwidth == 0 || c.NetBandwidth > nic.MaxBandwidth {
		return &Error{
			Field:  "netbw",
			Reason: fmt.Sprintf("%d is outside (0, %d]", c.NetBandwidth, nic.MaxBandwidth),
		}
	}

	if c.NetBurst == 0 {
		return &Error{Field: "netburst", Reason: "must be positive"}
	}

	if c.StepSize == 0 {
		return &Error{Field: "step-size", Reason: "must be positive"}
	}

	if c.MaxCycles == 0 {
		return &Error{Field: "max-cycles", Reason: "must be positive"}
	}

	switch mem.Kind(c.MemModel) {
	case mem.KindPlain, mem.KindInstrumented:
	default:
		return &Error{
			Field:  "mem-model",
			Reason: fmt.Sprintf("%q is neither plain nor instrumented", c.MemModel),
		}
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &Error{Field: "log", Reason: err.Error(), Err: err}
	}

	return nil
}

// MAC returns the configured MAC address. A malformed address is reported as
// a warning and yields the zero address.
func (c *Config) MAC() nic.MAC {
	if c.MACAddr == "" {
		return 0
	}

	mac, err := nic.ParseMAC(c.MACAddr)
	if err != nil {
		logrus.WithError(err).Warn("ignoring malformed MAC address")
		return 0
	}

	return mac
}

// EffectiveProfileInterval returns the profiling interval, which defaults to
// the cycle budget.
func (c *Config) EffectiveProfileInterval() uint64 {
	if c.ProfileInterval == 0 {
		return c.MaxCycles
	}

	return c.ProfileInterval
}
