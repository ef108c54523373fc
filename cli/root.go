// Package cli provides the command-line interface of simhost.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/simhost/config"
)

var (
	configPath string
	envFiles   []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "simhost",
	Short: "simhost drives a token-based FPGA simulation from the host.",
	Long: `simhost drives a token-based FPGA simulation from the host. It ` +
		`loads the target program, steps the target clock, keeps the ` +
		`host-side device models in lockstep and reports whether the ` +
		`target passed, failed or timed out.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML configuration file")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file",
		[]string{".env"}, ".env files that set SIMHOST_* variables")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig layers the defaults, the configuration file and the
// environment. Flags are applied by the caller.
func loadConfig() (config.Config, error) {
	err := config.LoadEnvFiles(envFiles...)
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return cfg, err
		}
	}

	err = cfg.ApplyEnv(os.LookupEnv)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

func setLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetLevel(lvl)

	return nil
}
