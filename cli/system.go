package cli

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/simhost/config"
	"github.com/sarchlab/simhost/datarecording"
	"github.com/sarchlab/simhost/driver"
	"github.com/sarchlab/simhost/endpoint"
	"github.com/sarchlab/simhost/endpoint/blockdev"
	"github.com/sarchlab/simhost/endpoint/serial"
	"github.com/sarchlab/simhost/endpoint/simmem"
	"github.com/sarchlab/simhost/endpoint/uart"
	"github.com/sarchlab/simhost/fesvr"
	"github.com/sarchlab/simhost/hw/simfpga"
	"github.com/sarchlab/simhost/instrumentation"
	"github.com/sarchlab/simhost/mem"
	"github.com/sarchlab/simhost/nic"
	"github.com/sarchlab/simhost/tracing"
)

const demoImageBytes = 4096

// system is everything a run is made of.
type system struct {
	fpga      *simfpga.FPGA
	endpoints *endpoint.Set
	nic       *nic.Comp
	backend   mem.Backend
	recorder  datarecording.DataRecorder
	models    []instrumentation.Model
	proxy     *fesvr.ImageProxy
	driver    *driver.Driver
}

// buildSystem assembles the simulated FPGA, the endpoints, the proxy, the
// instrumentation models and the driver from a validated configuration.
// Console output goes to out.
func buildSystem(cfg config.Config, out io.Writer) (*system, error) {
	s := &system{}

	image, err := loadImage(cfg)
	if err != nil {
		return nil, err
	}

	s.fpga = simfpga.New()
	simfpga.AttachUART(s.fpga)
	simfpga.AttachSerial(s.fpga)
	simfpga.AttachMemChannel(s.fpga)
	simfpga.AttachNIC(s.fpga, 2*int(cfg.LinkLatency))

	if cfg.BlockDevice != "" {
		simfpga.AttachBlockDevice(s.fpga)
	}

	s.fpga.LoadProgram(newDemoProgram(
		image, cfg.LoadAddr, cfg.BlockDevice != "", cfg.LinkLatency))

	if cfg.TraceDB != "" {
		s.recorder = datarecording.New(cfg.TraceDB)
	}

	err = s.buildEndpoints(cfg, out)
	if err != nil {
		return nil, err
	}

	s.buildModels()

	s.proxy = fesvr.NewImageProxy(s.fpga, image, cfg.LoadAddr, 0)
	s.driver = driver.MakeBuilder().
		WithHardware(s.fpga).
		WithProxy(s.proxy).
		WithEndpoints(s.endpoints).
		WithModels(s.models...).
		WithStepSize(cfg.StepSize).
		WithMaxCycles(cfg.MaxCycles).
		WithProfileInterval(cfg.EffectiveProfileInterval()).
		Build("Driver")

	logrus.WithFields(logrus.Fields{
		"slot":      cfg.SlotID,
		"image":     len(image),
		"endpoints": len(s.endpoints.All()),
		"models":    len(s.models),
	}).Info("simulation assembled")

	return s, nil
}

func loadImage(cfg config.Config) ([]byte, error) {
	if cfg.Program == "" {
		return DemoImage(demoImageBytes), nil
	}

	return fesvr.LoadImageFile(cfg.Program)
}

func (s *system) buildEndpoints(cfg config.Config, out io.Writer) error {
	s.endpoints = endpoint.NewSet()

	s.endpoints.Add(uart.New("UART", s.fpga, out, nil))
	s.endpoints.AddFlushable(serial.New("Serial", s.fpga, out))

	backend, err := mem.NewBackend(mem.Kind(cfg.MemModel), cfg.MemCapacity)
	if err != nil {
		return errors.Wrap(err, "creating memory backend")
	}

	s.backend = backend
	s.endpoints.AddMemory(simmem.MakeBuilder().
		WithHardware(s.fpga).
		WithBackend(backend).
		Build("SimMem"))

	if cfg.BlockDevice != "" {
		blk, err := blockdev.MakeBuilder().
			WithHardware(s.fpga).
			WithImagePath(cfg.BlockDevice).
			Build("BlockDevice")
		if err != nil {
			return err
		}

		atexit.Register(func() {
			if err := blk.Close(); err != nil {
				logrus.WithError(err).Warn("closing block device image")
			}
		})

		s.endpoints.Add(blk)
	}

	network, err := nic.MakeBuilder().
		WithHardware(s.fpga).
		WithMAC(cfg.MAC()).
		WithBandwidth(cfg.NetBandwidth).
		WithBurst(cfg.NetBurst).
		WithLinkLatency(cfg.LinkLatency).
		WithTracer(s.linkTracer(cfg)).
		Build("NIC")
	if err != nil {
		return errors.Wrap(err, "creating network endpoint")
	}

	s.nic = network
	s.endpoints.AddFinishable(network)

	return nil
}

func (s *system) linkTracer(cfg config.Config) tracing.LinkTracer {
	var tracers tracing.MultiTracer

	if cfg.NICLog != "" {
		w := tracing.NewCSVTraceWriter(strings.TrimSuffix(cfg.NICLog, ".csv"))
		w.Init()
		tracers = append(tracers, w)
	}

	if s.recorder != nil {
		tracers = append(tracers,
			tracing.NewDBTracer(s.recorder, tracing.Window{}))
	}

	switch len(tracers) {
	case 0:
		return nil
	case 1:
		return tracers[0]
	default:
		return tracers
	}
}

func (s *system) buildModels() {
	if s.recorder != nil {
		traffic := instrumentation.NewLinkTrafficModel(s.fpga, s.recorder)
		s.nic.AcceptHook(traffic)

		s.models = append(s.models,
			instrumentation.NewThroughputModel(s.fpga, s.recorder),
			traffic,
		)
	}

	if stats, ok := s.backend.(instrumentation.StatsSource); ok {
		s.models = append(s.models,
			instrumentation.NewMemoryStatsModel(s.fpga, stats, "", s.recorder))
	}
}
