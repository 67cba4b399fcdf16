package topo

import (
	"fmt"

	"github.com/named-data/ndnsim/fw/defn"
	"github.com/named-data/ndnsim/fw/fw"
)

// Build creates a network with one node per vertex, in file order, and
// installs the FIB entries of every edge.
func Build(t *Topology, opts fw.Options) (*fw.Network, error) {
	network := fw.NewNetwork(opts)
	ids := make(map[int]defn.NodeID, len(t.Vertices))
	for _, v := range t.Vertices {
		var payload []byte
		if v.IsEndpoint() {
			payload = []byte(v.Payload)
		}
		id, err := network.AddNode(v.Name, payload)
		if err != nil {
			return nil, err
		}
		ids[v.Index] = id
	}

	for _, e := range t.Edges {
		a, okA := ids[e.A]
		b, okB := ids[e.B]
		if !okA || !okB {
			return nil, fmt.Errorf("%w: edge %d-%d", ErrIndex, e.A, e.B)
		}
		if err := network.Connect(a, b); err != nil {
			return nil, err
		}
	}
	return network, nil
}
