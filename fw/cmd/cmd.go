package cmd

import (
	"errors"
	"path/filepath"

	"github.com/named-data/ndnsim/fw/core"
	"github.com/named-data/ndnsim/topo"
	"github.com/spf13/cobra"
)

// ErrNoTopology is returned when neither the command line nor the
// configuration file names a topology.
var ErrNoTopology = errors.New("no topology file given")

var (
	configFile string
	overrides  = core.DefaultConfig()
)

var CmdRun = &cobra.Command{
	Use:     "run [TOPOLOGY-FILE]",
	Short:   "Run a forwarding simulation on a topology",
	GroupID: "run",
	Version: core.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	flags := CmdRun.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	flags.IntVar(&overrides.Sim.MaxSteps, "steps", overrides.Sim.MaxSteps, "Maximum number of ticks")
	flags.IntVar(&overrides.Sim.InterestsPerPair, "interests", overrides.Sim.InterestsPerPair, "Interests seeded per ordered pair of endpoints")
	flags.IntVar(&overrides.Tables.ContentStore.Capacity, "cs-capacity", overrides.Tables.ContentStore.Capacity, "Content store capacity of every node")
	flags.IntVar(&overrides.Fw.InterestLifetime, "lifetime", overrides.Fw.InterestLifetime, "PIT entry lifetime in ticks")
	flags.IntVar(&overrides.Fw.InterestDelay, "interest-delay", overrides.Fw.InterestDelay, "Transmission delay of an Interest in ticks")
	flags.StringVar(&overrides.Tables.Pit.ExpiryCursor, "expiry-cursor", overrides.Tables.Pit.ExpiryCursor, "PIT cursor behaviour on expiry (tracking or legacy)")
	flags.StringVar(&overrides.Core.LogLevel, "log-level", overrides.Core.LogLevel, "Log level")
	flags.StringVar(&overrides.Core.LogFile, "log-file", overrides.Core.LogFile, "Write log to file")
	flags.StringVar(&overrides.Core.CpuProfile, "cpu-profile", "", "Write CPU profile to file")
	flags.StringVar(&overrides.Core.MemProfile, "mem-profile", "", "Write memory profile to file")
	flags.StringVar(&overrides.Core.BlockProfile, "block-profile", "", "Write block profile to file")
}

func run(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	t, err := topo.Load(config.ResolveRelPath(config.Sim.Topology))
	if err != nil {
		return err
	}

	sim, err := NewSimulator(config)
	if err != nil {
		return err
	}
	defer sim.Close()

	report, err := sim.Run(t)
	if err != nil {
		return err
	}
	report.Print(cmd.OutOrStdout())
	return nil
}

// resolveConfig layers the configuration file, then changed flags, then the
// positional topology argument over the defaults.
func resolveConfig(cmd *cobra.Command, args []string) (*core.Config, error) {
	config := core.DefaultConfig()
	if configFile != "" {
		var err error
		if config, err = core.LoadConfig(configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("steps", func() { config.Sim.MaxSteps = overrides.Sim.MaxSteps })
	set("interests", func() { config.Sim.InterestsPerPair = overrides.Sim.InterestsPerPair })
	set("cs-capacity", func() { config.Tables.ContentStore.Capacity = overrides.Tables.ContentStore.Capacity })
	set("lifetime", func() { config.Fw.InterestLifetime = overrides.Fw.InterestLifetime })
	set("interest-delay", func() { config.Fw.InterestDelay = overrides.Fw.InterestDelay })
	set("expiry-cursor", func() { config.Tables.Pit.ExpiryCursor = overrides.Tables.Pit.ExpiryCursor })
	set("log-level", func() { config.Core.LogLevel = overrides.Core.LogLevel })
	set("log-file", func() { config.Core.LogFile = overrides.Core.LogFile })
	config.Core.CpuProfile = overrides.Core.CpuProfile
	config.Core.MemProfile = overrides.Core.MemProfile
	config.Core.BlockProfile = overrides.Core.BlockProfile

	if len(args) > 0 {
		// relative to the working directory, not the config file
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return nil, err
		}
		config.Sim.Topology = abs
	}
	if config.Sim.Topology == "" {
		return nil, ErrNoTopology
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
