/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import "slices"

// PitEntry is an outstanding request recorded at the requesting node.
type PitEntry struct {
	Requester string
	Name      string
	Lifetime  int
}

// Pit is a pending interest table with a round-robin dispatch cursor.
//
// Entries live in two zones: a dispatched prefix, whose entries have been
// sent at least once and now only await satisfaction, and an undispatched
// suffix. DispatchNext moves the head of the suffix to the tail of the
// prefix; nothing is removed until Satisfy or TickAndExpire.
// Warning: not safe for concurrent use.
type Pit struct {
	dispatched []*PitEntry
	pending    []*PitEntry

	// Legacy cursor mode: expiring dispatched entries does not move the cursor.
	legacyCursor bool
	// Cursor positions owed beyond the end of the table (legacy mode only).
	skip int
}

// NewPit creates an empty PIT. With legacyCursor set, expiry leaves the
// cursor index where it was.
func NewPit(legacyCursor bool) *Pit {
	return &Pit{legacyCursor: legacyCursor}
}

// RecordNew appends a fresh entry after the cursor.
func (p *Pit) RecordNew(requester string, name string, lifetime int) *PitEntry {
	e := &PitEntry{Requester: requester, Name: name, Lifetime: lifetime}
	if p.skip > 0 {
		// the cursor is already past this position
		p.skip--
		p.dispatched = append(p.dispatched, e)
	} else {
		p.pending = append(p.pending, e)
	}
	return e
}

// DispatchNext returns the entry at the cursor and advances the cursor.
// The entry stays in the table.
func (p *Pit) DispatchNext() (*PitEntry, bool) {
	if len(p.pending) == 0 {
		return nil, false
	}
	e := p.pending[0]
	p.pending[0] = nil
	p.pending = p.pending[1:]
	p.dispatched = append(p.dispatched, e)
	return e, true
}

// HasUndispatched reports whether any entry lies at or after the cursor.
func (p *Pit) HasUndispatched() bool {
	return len(p.pending) > 0
}

// Satisfy removes the first dispatched entry matching requester and name,
// moving the cursor back by one. Undispatched entries are never touched.
func (p *Pit) Satisfy(requester string, name string) bool {
	for i, e := range p.dispatched {
		if e.Requester == requester && e.Name == name {
			p.dispatched = slices.Delete(p.dispatched, i, i+1)
			return true
		}
	}
	return false
}

// TickAndExpire decrements every lifetime by one and removes the entries
// whose lifetime ran out. Returns the number of removed entries.
func (p *Pit) TickAndExpire() int {
	var nDispatched, nPending int
	p.dispatched, nDispatched = tickEntries(p.dispatched)
	p.pending, nPending = tickEntries(p.pending)

	if p.legacyCursor && nDispatched > 0 {
		p.promote(nDispatched)
	}
	return nDispatched + nPending
}

// promote keeps the cursor index unchanged after n entries below it were removed:
// the next n undispatched entries fall behind the cursor without being sent.
func (p *Pit) promote(n int) {
	k := min(n, len(p.pending))
	p.dispatched = append(p.dispatched, p.pending[:k]...)
	clear(p.pending[:k])
	p.pending = p.pending[k:]
	p.skip += n - k
}

func tickEntries(entries []*PitEntry) ([]*PitEntry, int) {
	for _, e := range entries {
		e.Lifetime--
	}
	n := len(entries)
	entries = slices.DeleteFunc(entries, func(e *PitEntry) bool {
		return e.Lifetime <= 0
	})
	return entries, n - len(entries)
}

// Len returns the number of entries, dispatched or not.
func (p *Pit) Len() int {
	return len(p.dispatched) + len(p.pending)
}

// Cursor returns the dispatch cursor as an index into Entries.
// In legacy mode it may point past the end.
func (p *Pit) Cursor() int {
	return len(p.dispatched) + p.skip
}

// Entries returns a snapshot of all entries in table order.
func (p *Pit) Entries() []PitEntry {
	ret := make([]PitEntry, 0, p.Len())
	for _, e := range p.dispatched {
		ret = append(ret, *e)
	}
	for _, e := range p.pending {
		ret = append(ret, *e)
	}
	return ret
}
