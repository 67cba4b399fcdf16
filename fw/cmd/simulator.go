package cmd

import (
	"fmt"
	"time"

	"github.com/named-data/ndnsim/fw/core"
	"github.com/named-data/ndnsim/fw/fw"
	"github.com/named-data/ndnsim/fw/table"
	"github.com/named-data/ndnsim/stats"
	"github.com/named-data/ndnsim/topo"
)

// Simulator is the wrapper around one simulation run.
// Note: it installs its configuration as the global one; only one instance
// should exist at a time.
type Simulator struct {
	config   *core.Config
	profiler *Profiler
}

// NewSimulator installs config and opens the logger.
func NewSimulator(config *core.Config) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Provide global configuration.
	core.C = config
	core.StartTimestamp = time.Now()

	if err := core.OpenLogger(); err != nil {
		return nil, err
	}

	return &Simulator{
		config:   config,
		profiler: NewProfiler(config),
	}, nil
}

func (s *Simulator) String() string {
	return "simulator"
}

// Run builds a network from t, runs it to quiescence and returns the report.
func (s *Simulator) Run(t *topo.Topology) (report *stats.Report, err error) {
	core.Log.Info(s, "Starting simulation", "version", core.Version,
		"vertices", len(t.Vertices), "edges", len(t.Edges),
		"topology", fmt.Sprintf("%016x", t.Fingerprint()),
		"expiry_cursor", table.CfgPitExpiryCursor())

	network, err := topo.Build(t, fw.CfgOptions())
	if err != nil {
		return nil, err
	}

	if err = s.profiler.Start(); err != nil {
		return nil, err
	}
	defer func() {
		if e := s.profiler.Stop(); e != nil && err == nil {
			err = e
		}
	}()

	res := network.Simulate(s.config.Sim.InterestsPerPair, s.config.Sim.MaxSteps)
	if !res.Quiescent {
		core.Log.Warn(s, "Step limit reached before the network went idle", "steps", res.Steps)
	}
	core.Log.Debug(s, "Simulation took", "elapsed", time.Since(core.StartTimestamp))

	return stats.NewReport(network, res), nil
}

// Close releases the log file.
func (s *Simulator) Close() {
	core.CloseLogger()
}
