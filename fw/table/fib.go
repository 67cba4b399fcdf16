/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import "github.com/named-data/ndnsim/fw/defn"

// FibEntry associates a neighbor name with the neighbor's node ID.
type FibEntry struct {
	Name    string
	NextHop defn.NodeID
}

// Fib is a node's forwarding table. Entries keep their insertion order,
// which is the tie-breaker of LongestPrefixMatch.
// Warning: not safe for concurrent use.
type Fib struct {
	entries []FibEntry
}

// Insert adds a neighbor, or updates the next hop of an existing name in place.
// Returns true if a new entry was created.
func (f *Fib) Insert(name string, nexthop defn.NodeID) bool {
	for i := range f.entries {
		if f.entries[i].Name == name {
			f.entries[i].NextHop = nexthop
			return false
		}
	}
	f.entries = append(f.entries, FibEntry{Name: name, NextHop: nexthop})
	return true
}

// Find returns the next hop registered under exactly this name.
func (f *Fib) Find(name string) (defn.NodeID, bool) {
	for _, e := range f.entries {
		if e.Name == name {
			return e.NextHop, true
		}
	}
	return 0, false
}

// LongestPrefixMatch returns the next hop whose name shares the longest leading
// character run with dst. The first entry wins among equals. Entries sharing
// nothing with dst are never selected; false means there is no route.
func (f *Fib) LongestPrefixMatch(dst string) (defn.NodeID, bool) {
	var best defn.NodeID
	bestLen := 0
	for _, e := range f.entries {
		if l := defn.CommonPrefixLen(e.Name, dst); l > bestLen {
			best, bestLen = e.NextHop, l
		}
	}
	return best, bestLen > 0
}

// Len returns the number of entries.
func (f *Fib) Len() int {
	return len(f.entries)
}

// Entries returns a copy of the entries in insertion order.
func (f *Fib) Entries() []FibEntry {
	ret := make([]FibEntry, len(f.entries))
	copy(ret, f.entries)
	return ret
}
