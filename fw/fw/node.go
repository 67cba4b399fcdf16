/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import (
	"errors"
	"fmt"

	"github.com/named-data/ndnsim/fw/core"
	"github.com/named-data/ndnsim/fw/defn"
	"github.com/named-data/ndnsim/fw/table"
)

// ErrNoRoute is returned when no FIB entry shares a prefix with the destination.
var ErrNoRoute = errors.New("no route")

// Fabric delivers packets to the buffer of another node.
type Fabric interface {
	Deliver(to defn.NodeID, pkt *defn.Pkt)
}

// Outcome is the result of forwarding a packet.
type Outcome int

const (
	// Forwarded means a packet was handed to a neighbor.
	Forwarded Outcome = iota
	// Delivered means a Data packet reached its requester.
	Delivered
	// NoRoute means the packet was dropped for lack of a next hop.
	NoRoute
)

func (o Outcome) String() string {
	switch o {
	case Forwarded:
		return "Forwarded"
	case Delivered:
		return "Delivered"
	case NoRoute:
		return "NoRoute"
	default:
		return "Unknown"
	}
}

// Node is a simulated forwarder.
// Warning: a node must only be driven from the simulation loop.
type Node struct {
	id      defn.NodeID
	name    string
	payload []byte
	opts    Options
	fabric  Fabric

	fib *table.Fib
	cs  *table.ContentStore
	pit *table.Pit

	// Packets waiting for the outgoing link, in arrival order
	buffer []*defn.Pkt
	// Packet occupying the outgoing link
	sending *defn.Pkt
	// Ticks left before sending completes
	delay int

	counters defn.NodeCounters
}

// NewNode creates a node. A node with a non-empty payload is an endpoint
// and caches its own content under its name.
func NewNode(id defn.NodeID, name string, payload []byte, fabric Fabric, opts Options) (*Node, error) {
	cs, err := table.NewContentStore(opts.CsCapacity)
	if err != nil {
		return nil, err
	}

	n := &Node{
		id:      id,
		name:    name,
		payload: payload,
		opts:    opts,
		fabric:  fabric,
		fib:     &table.Fib{},
		cs:      cs,
		pit:     table.NewPit(opts.LegacyPitCursor),
	}
	n.cs.OnEvict = func(evicted string) {
		core.Log.Trace(n, "Evicted from content store", "name", evicted)
	}
	if n.IsEndpoint() {
		n.cs.Insert(name, payload)
	}
	return n, nil
}

func (n *Node) String() string {
	return fmt.Sprintf("node-%d", n.id)
}

// ID returns the node ID.
func (n *Node) ID() defn.NodeID {
	return n.id
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// IsEndpoint reports whether the node carries content.
func (n *Node) IsEndpoint() bool {
	return len(n.payload) > 0
}

// Fib returns the forwarding table.
func (n *Node) Fib() *table.Fib {
	return n.fib
}

// ContentStore returns the content store.
func (n *Node) ContentStore() *table.ContentStore {
	return n.cs
}

// Pit returns the pending interest table.
func (n *Node) Pit() *table.Pit {
	return n.pit
}

// BufferLen returns the number of packets waiting in the outgoing buffer.
func (n *Node) BufferLen() int {
	return len(n.buffer)
}

// Busy reports whether a packet occupies the outgoing link.
func (n *Node) Busy() bool {
	return n.sending != nil
}

// Idle reports whether the node has neither buffered packets nor PIT entries.
func (n *Node) Idle() bool {
	return len(n.buffer) == 0 && n.pit.Len() == 0
}

// Counters returns a snapshot of the forwarding counters.
func (n *Node) Counters() defn.NodeCounters {
	c := n.counters
	c.NPitEntries = n.pit.Len()
	c.NCsEntries = n.cs.Len()
	return c
}

// Express records a new outstanding request for content at this node.
func (n *Node) Express(content string) {
	n.pit.RecordNew(n.name, content, n.opts.InterestLifetime)
}

// Enqueue appends a packet arriving from a neighbor to the outgoing buffer.
func (n *Node) Enqueue(pkt *defn.Pkt) {
	switch pkt.Type {
	case defn.Interest:
		n.counters.NInInterests++
	case defn.Data:
		n.counters.NInData++
	}
	n.buffer = append(n.buffer, pkt)
}

// RunStep advances the node by one tick. It returns whether a packet was sent
// and how many PIT entries expired during the tick.
func (n *Node) RunStep() (sent int, dropped int) {
	if n.delay > 0 {
		n.delay--
		return 0, n.expire()
	}

	if n.sending != nil {
		pkt := n.sending
		n.sending = nil
		if outcome, err := n.Forward(pkt); err != nil {
			core.Log.Debug(n, "Dropped packet", "pkt", pkt, "outcome", outcome, "err", err)
		}
		return 1, n.expire()
	}

	if len(n.buffer) == 0 && n.pit.HasUndispatched() {
		entry, _ := n.pit.DispatchNext()
		n.buffer = append(n.buffer, defn.NewInterest(entry.Requester, entry.Name, entry.Lifetime))
	}

	if len(n.buffer) > 0 {
		n.sending = n.buffer[0]
		n.buffer[0] = nil
		n.buffer = n.buffer[1:]
		n.delay += n.transmissionDelay(n.sending)
	}

	return 0, n.expire()
}

func (n *Node) transmissionDelay(pkt *defn.Pkt) int {
	if pkt.Type == defn.Interest && pkt.Size() == 0 {
		return n.opts.InterestDelay
	}
	return pkt.Size()
}

func (n *Node) expire() int {
	dropped := n.pit.TickAndExpire()
	if dropped > 0 {
		n.counters.NExpiredInterests += uint64(dropped)
		core.Log.Trace(n, "PIT entries expired", "count", dropped)
	}
	return dropped
}

// Forward sends a packet that has left the outgoing link.
// Data is cached and passed on toward its requester; an Interest is answered
// from the content store or passed on toward the content.
func (n *Node) Forward(pkt *defn.Pkt) (Outcome, error) {
	switch pkt.Type {
	case defn.Data:
		return n.forwardData(pkt)
	case defn.Interest:
		return n.forwardInterest(pkt)
	default:
		return NoRoute, fmt.Errorf("%s: unknown packet type %d", n, pkt.Type)
	}
}

func (n *Node) forwardData(data *defn.Pkt) (Outcome, error) {
	n.cs.Insert(data.Src, data.Payload)

	outcome := Delivered
	var err error
	if data.Dst != n.name {
		outcome, err = n.sendToward(data.Dst, data)
	}

	if n.pit.Satisfy(data.Dst, data.Src) {
		n.counters.NSatisfiedInterests++
		core.Log.Trace(n, "Satisfied PIT entry", "requester", data.Dst, "name", data.Src)
	}
	return outcome, err
}

func (n *Node) forwardInterest(interest *defn.Pkt) (Outcome, error) {
	payload, ok := n.cs.Lookup(interest.Dst)
	if !ok {
		n.counters.NCsMisses++
		return n.sendToward(interest.Dst, interest)
	}

	n.counters.NCsHits++
	data := defn.NewData(interest.Dst, interest.Src, payload)
	core.Log.Trace(n, "Content store hit", "name", interest.Dst, "requester", interest.Src)
	outcome, err := n.sendToward(interest.Src, data)

	if n.pit.Satisfy(interest.Src, interest.Dst) {
		n.counters.NSatisfiedInterests++
	}
	return outcome, err
}

func (n *Node) sendToward(dst string, pkt *defn.Pkt) (Outcome, error) {
	nexthop, ok := n.fib.LongestPrefixMatch(dst)
	if !ok {
		n.counters.NNoRoute++
		return NoRoute, fmt.Errorf("%s: %w to %s", n, ErrNoRoute, dst)
	}

	switch pkt.Type {
	case defn.Interest:
		n.counters.NOutInterests++
	case defn.Data:
		n.counters.NOutData++
	}
	n.fabric.Deliver(nexthop, pkt)
	return Forwarded, nil
}
