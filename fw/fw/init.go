/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import (
	"github.com/named-data/ndnsim/fw/core"
	"github.com/named-data/ndnsim/fw/table"
)

// Options are the per-node forwarding parameters.
type Options struct {
	// Capacity of each node's content store
	CsCapacity int
	// Lifetime given to new PIT entries (in ticks)
	InterestLifetime int
	// Transmission delay of an Interest (in ticks)
	InterestDelay int
	// Whether PIT expiry leaves the dispatch cursor index unchanged
	LegacyPitCursor bool
}

// OptionsFromConfig extracts the forwarding options from a configuration.
func OptionsFromConfig(c *core.Config) Options {
	return Options{
		CsCapacity:       c.Tables.ContentStore.Capacity,
		InterestLifetime: c.Fw.InterestLifetime,
		InterestDelay:    c.Fw.InterestDelay,
		LegacyPitCursor:  c.Tables.Pit.ExpiryCursor == core.ExpiryCursorLegacy,
	}
}

// CfgOptions returns the options of the global configuration.
func CfgOptions() Options {
	return Options{
		CsCapacity:       table.CfgCsCapacity(),
		InterestLifetime: CfgInterestLifetime(),
		InterestDelay:    CfgInterestDelay(),
		LegacyPitCursor:  table.CfgLegacyPitCursor(),
	}
}

// CfgInterestLifetime returns the lifetime of new PIT entries.
func CfgInterestLifetime() int {
	return core.C.Fw.InterestLifetime
}

// CfgInterestDelay returns the transmission delay of an Interest.
func CfgInterestDelay() int {
	return core.C.Fw.InterestDelay
}
