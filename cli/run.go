package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/simhost/config"
	"github.com/sarchlab/simhost/driver"
	"github.com/sarchlab/simhost/hooking"
	"github.com/sarchlab/simhost/monitoring"
)

var flagConfig config.Config

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation.",
	Long: `Run a simulation on the simulated FPGA. Options come from the ` +
		`defaults, the --config file, SIMHOST_* environment variables and ` +
		`the flags below, each overriding the previous ones. The process ` +
		`exits with the target's exit code, or 124 on timeout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		mergeFlags(cmd, &cfg, flagConfig)

		err = cfg.Validate()
		if err != nil {
			return err
		}

		err = setLogLevel(cfg.LogLevel)
		if err != nil {
			return err
		}

		s, err := buildSystem(cfg, os.Stdout)
		if err != nil {
			return err
		}

		outcome := runSystem(s, cfg)
		atexit.Exit(outcome.ExitStatus())

		return nil
	},
}

func init() {
	addOptionFlags(runCmd, &flagConfig)
	rootCmd.AddCommand(runCmd)
}

func runSystem(s *system, cfg config.Config) driver.Outcome {
	if !cfg.Monitor {
		return s.driver.Run()
	}

	m := monitoring.NewMonitor().WithPortNumber(cfg.MonitorPort)
	m.RegisterSimulation(s.driver)

	for _, e := range s.endpoints.All() {
		m.RegisterElement(e)
	}

	for _, model := range s.models {
		m.RegisterElement(model)
	}

	bar := m.CreateProgressBar("Cycles", cfg.MaxCycles)
	s.driver.AcceptHook(hooking.HookFunc(func(ctx hooking.HookCtx) {
		if ctx.Pos == driver.HookPosStep {
			bar.SetFinished(s.driver.Cycles())
		}
	}))

	url := m.StartServer()
	if cfg.OpenBrowser {
		m.OpenBrowser(url)
	}

	outcome := s.driver.Run()

	m.CompleteProgressBar(bar)
	m.StopServer()

	return outcome
}
