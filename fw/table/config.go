/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import "github.com/named-data/ndnsim/fw/core"

// CfgCsCapacity returns the capacity of each node's Content Store.
func CfgCsCapacity() int {
	return core.C.Tables.ContentStore.Capacity
}

// CfgLegacyPitCursor returns whether PIT expiry leaves the dispatch cursor
// index unchanged.
func CfgLegacyPitCursor() bool {
	return core.C.Tables.Pit.ExpiryCursor == core.ExpiryCursorLegacy
}

// CfgPitExpiryCursor returns the configured PIT cursor mode.
func CfgPitExpiryCursor() string {
	return core.C.Tables.Pit.ExpiryCursor
}
