// Command simhost runs a host-driven FPGA simulation.
package main

import "github.com/sarchlab/simhost/cli"

func main() {
	cli.Execute()
}
