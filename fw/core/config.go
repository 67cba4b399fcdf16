/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/named-data/ndnsim/std/log"
	"go.uber.org/multierr"
)

// PIT cursor behaviour when expiry removes an already dispatched entry.
const (
	// ExpiryCursorTracking keeps the cursor attached to the entries.
	ExpiryCursorTracking = "tracking"
	// ExpiryCursorLegacy leaves the cursor index untouched on expiry.
	ExpiryCursorLegacy = "legacy"
)

// Global initial configuration of the simulator.
// This configuration is IMMUTABLE once a run starts. Do not modify it.
var C = DefaultConfig()

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the configuration of the simulator.
type Config struct {
	Core struct {
		// Logging level
		LogLevel string `json:"log_level"`
		// Output log to file
		LogFile string `json:"log_file"`

		// Config file base dir
		BaseDir string `json:"-"`
		// Enable CPU profiling
		CpuProfile string `json:"-"`
		// Enable memory profiling
		MemProfile string `json:"-"`
		// Enable block profiling
		BlockProfile string `json:"-"`
	} `json:"core"`

	Sim struct {
		// Topology file, relative to the config file
		Topology string `json:"topology"`
		// Upper bound on the number of ticks of a run
		MaxSteps int `json:"max_steps"`
		// Interests seeded for every ordered pair of endpoints
		InterestsPerPair int `json:"interests_per_pair"`
	} `json:"sim"`

	Fw struct {
		// Lifetime of a freshly recorded PIT entry (in ticks)
		InterestLifetime int `json:"interest_lifetime"`
		// Transmission delay charged to an Interest (in ticks).
		// Data packets are charged one tick per payload byte.
		InterestDelay int `json:"interest_delay"`
	} `json:"fw"`

	Tables struct {
		ContentStore struct {
			// Capacity of each node's content store (in number of entries)
			Capacity int `json:"capacity"`
		} `json:"content_store"`

		Pit struct {
			// Cursor behaviour on expiry: "tracking" or "legacy"
			ExpiryCursor string `json:"expiry_cursor"`
		} `json:"pit"`
	} `json:"tables"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	c := &Config{}
	c.Core.LogLevel = "INFO"
	c.Core.LogFile = ""

	c.Core.BaseDir = ""
	c.Core.CpuProfile = ""
	c.Core.MemProfile = ""
	c.Core.BlockProfile = ""

	c.Sim.Topology = ""
	c.Sim.MaxSteps = 550
	c.Sim.InterestsPerPair = 7

	c.Fw.InterestLifetime = 20
	c.Fw.InterestDelay = 0

	c.Tables.ContentStore.Capacity = 5
	c.Tables.Pit.ExpiryCursor = ExpiryCursorTracking

	return c
}

// LoadConfig reads a YAML configuration file on top of the defaults.
// Unknown keys are rejected.
func LoadConfig(file string) (*Config, error) {
	c := DefaultConfig()

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("unable to open configuration file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f, yaml.Strict())
	if err = dec.Decode(c); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file: %w", err)
	}
	c.Core.BaseDir = filepath.Dir(file)

	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() (err error) {
	if _, e := log.ParseLevel(c.Core.LogLevel); e != nil {
		err = multierr.Append(err, fmt.Errorf("%w: core.log_level: %v", ErrInvalidConfig, e))
	}
	if c.Sim.MaxSteps <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: sim.max_steps must be positive", ErrInvalidConfig))
	}
	if c.Sim.InterestsPerPair < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: sim.interests_per_pair must not be negative", ErrInvalidConfig))
	}
	if c.Fw.InterestLifetime <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: fw.interest_lifetime must be positive", ErrInvalidConfig))
	}
	if c.Fw.InterestDelay < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: fw.interest_delay must not be negative", ErrInvalidConfig))
	}
	if c.Tables.ContentStore.Capacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: tables.content_store.capacity must be positive", ErrInvalidConfig))
	}
	switch c.Tables.Pit.ExpiryCursor {
	case ExpiryCursorTracking, ExpiryCursorLegacy:
	default:
		err = multierr.Append(err, fmt.Errorf("%w: unknown tables.pit.expiry_cursor %q",
			ErrInvalidConfig, c.Tables.Pit.ExpiryCursor))
	}
	return err
}

// ResolveRelPath resolves a possibly relative path based on config file path.
func (c *Config) ResolveRelPath(target string) string {
	if target == "" || filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(c.Core.BaseDir, target)
}
