package cmd

import (
	fw "github.com/named-data/ndnsim/fw/cmd"
	"github.com/named-data/ndnsim/fw/core"
	topo "github.com/named-data/ndnsim/topo/cmd"
	"github.com/spf13/cobra"
)

const banner = `
  _   _ ____  _   _     _
 | \ | |  _ \| \ | |___(_)_ __ ___
 |  \| | | | |  \| / __| | '_ ' _ \
 | |\  | |_| | |\  \__ \ | | | | | |
 |_| \_|____/|_| \_|___/_|_| |_| |_|

Named Data Networking Simulator
`

var CmdNDNSim = &cobra.Command{
	Use:     "ndnsim",
	Short:   "Named Data Networking Simulator",
	Long:    banner[1:],
	Version: core.Version,
}

func init() {
	cobra.EnableCommandSorting = false
	CmdNDNSim.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdNDNSim.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdNDNSim.PersistentFlags().Lookup("help").Hidden = true
	CmdNDNSim.SilenceUsage = true

	CmdNDNSim.AddGroup(&cobra.Group{ID: "run", Title: "Simulation"})
	CmdNDNSim.AddCommand(fw.CmdRun)

	CmdNDNSim.AddGroup(&cobra.Group{ID: "topo", Title: "Topology Tools"})
	CmdNDNSim.AddCommand(topo.CmdGen)
	CmdNDNSim.AddCommand(topo.CmdValidate)
}
