package cmd

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/named-data/ndnsim/fw/core"
)

type Profiler struct {
	config  *core.Config
	cpuFile *os.File
	block   *pprof.Profile
}

// NewProfiler creates a profiler writing to the files named in config.
func NewProfiler(config *core.Config) *Profiler {
	return &Profiler{config: config}
}

func (p *Profiler) String() string {
	return "profiler"
}

// Start begins CPU and block profiling as configured.
func (p *Profiler) Start() (err error) {
	if p.config.Core.CpuProfile != "" {
		p.cpuFile, err = os.Create(p.config.Core.CpuProfile)
		if err != nil {
			return fmt.Errorf("unable to open output file for CPU profile: %w", err)
		}

		core.Log.Info(p, "Profiling CPU", "out", p.config.Core.CpuProfile)
		if err = pprof.StartCPUProfile(p.cpuFile); err != nil {
			p.cpuFile.Close()
			p.cpuFile = nil
			return err
		}
	}

	if p.config.Core.BlockProfile != "" {
		core.Log.Info(p, "Profiling blocking operations", "out", p.config.Core.BlockProfile)
		runtime.SetBlockProfileRate(1)
		p.block = pprof.Lookup("block")
	}

	return
}

// Stop writes the block and memory profiles and ends CPU profiling.
// Every profile is attempted; the first error is returned.
func (p *Profiler) Stop() (err error) {
	keep := func(e error) {
		if e != nil && err == nil {
			err = e
		}
	}

	if p.block != nil {
		blockProfileFile, e := os.Create(p.config.Core.BlockProfile)
		if e != nil {
			keep(fmt.Errorf("unable to open output file for block profile: %w", e))
		} else {
			keep(p.block.WriteTo(blockProfileFile, 0))
			blockProfileFile.Close()
		}
		runtime.SetBlockProfileRate(0)
		p.block = nil
	}

	if p.config.Core.MemProfile != "" {
		memProfileFile, e := os.Create(p.config.Core.MemProfile)
		if e != nil {
			keep(fmt.Errorf("unable to open output file for memory profile: %w", e))
		} else {
			core.Log.Info(p, "Profiling memory", "out", p.config.Core.MemProfile)
			runtime.GC()
			keep(pprof.WriteHeapProfile(memProfileFile))
			memProfileFile.Close()
		}
	}

	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}
	return err
}
