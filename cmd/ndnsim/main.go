package main

import (
	"os"

	"github.com/named-data/ndnsim/cmd"
)

func main() {
	if err := cmd.CmdNDNSim.Execute(); err != nil {
		os.Exit(1)
	}
}
