// Package topo reads, writes, checks and generates simulation topologies.
package topo

import (
	"slices"

	"github.com/cespare/xxhash"
)

// Vertex is a node of a topology file.
type Vertex struct {
	// Index as written in the file; edges refer to it
	Index int
	Name  string
	// Content served by an endpoint; empty for relays
	Payload string
}

// IsEndpoint reports whether the vertex carries content.
func (v Vertex) IsEndpoint() bool {
	return v.Payload != ""
}

// Edge is an undirected link between two vertex indices.
type Edge struct {
	A, B int
}

// Topology is a parsed topology. Vertices keep file order, which is also
// the tick order of the simulated network.
type Topology struct {
	Vertices []Vertex
	Edges    []Edge
}

// Endpoints returns the endpoint vertices in order.
func (t *Topology) Endpoints() []Vertex {
	var ret []Vertex
	for _, v := range t.Vertices {
		if v.IsEndpoint() {
			ret = append(ret, v)
		}
	}
	return ret
}

// position returns the position of the vertex with the given index.
func (t *Topology) position(index int) (int, bool) {
	i := slices.IndexFunc(t.Vertices, func(v Vertex) bool { return v.Index == index })
	return i, i >= 0
}

// Fingerprint hashes the text form of t. Topologies that Write renders
// identically share a fingerprint.
func (t *Topology) Fingerprint() uint64 {
	d := xxhash.New()
	// writes to a Digest never fail
	_ = Write(d, t)
	return d.Sum64()
}
