package cli

import (
	"reflect"

	"github.com/spf13/cobra"

	"github.com/sarchlab/simhost/config"
)

var optionUsage = map[string]string{
	"blkdev":           "block device image",
	"niclog":           "CSV file that receives the link trace",
	"slotid":           "FPGA slot",
	"macaddr":          "MAC address of the NIC, as aa:bb:cc:dd:ee:ff",
	"netbw":            "link bandwidth, 200 is line rate",
	"netburst":         "rate limiter burst in link units",
	"linklatency":      "link latency in cycles, a multiple of 7",
	"max-cycles":       "cycle budget of the run",
	"profile-interval": "cycles between profiles, defaults to max-cycles",
	"step-size":        "cycles per step when the proxy is idle",
	"mem-model":        "memory backend, plain or instrumented",
	"mem-capacity":     "memory capacity in bytes",
	"program":          "program image, the built-in demo image if empty",
	"load-addr":        "address at which the program image is loaded",
	"trace-db":         "recorder database for the link trace and profiles",
	"monitor":          "serve the run monitor over HTTP",
	"monitor-port":     "port of the run monitor, 0 picks a free one",
	"open-browser":     "open the run monitor in a browser",
	"log":              "log level",
}

// addOptionFlags registers one flag per configuration option. Flag names are
// the YAML keys.
func addOptionFlags(cmd *cobra.Command, target *config.Config) {
	defaults := config.Default()
	dv := reflect.ValueOf(defaults)
	tv := reflect.ValueOf(target).Elem()
	t := tv.Type()

	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("yaml")
		usage := optionUsage[name]
		f := tv.Field(i).Addr().Interface()

		switch p := f.(type) {
		case *string:
			cmd.Flags().StringVar(p, name, dv.Field(i).String(), usage)
		case *bool:
			cmd.Flags().BoolVar(p, name, dv.Field(i).Bool(), usage)
		case *int:
			cmd.Flags().IntVar(p, name, int(dv.Field(i).Int()), usage)
		case *uint64:
			cmd.Flags().Uint64Var(p, name, dv.Field(i).Uint(), usage)
		}
	}
}

// mergeFlags copies the options whose flags were set on the command line
// from src into dst.
func mergeFlags(cmd *cobra.Command, dst *config.Config, src config.Config) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src)
	t := dv.Type()

	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("yaml")
		if cmd.Flags().Changed(name) {
			dv.Field(i).Set(sv.Field(i))
		}
	}
}
