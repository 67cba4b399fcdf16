package fw

import "github.com/named-data/ndnsim/fw/defn"

// Result summarizes a simulation run.
type Result struct {
	// PIT entries removed by expiry
	TotalDropped int
	// Packets dropped for lack of a route
	NoRouteDrops int
	// Packets that left a node
	TotalSent int
	// Ticks executed
	Steps int
	// Whether the run ended because the network went idle
	Quiescent bool
	// Sum over all ticks of the number of buffered packets in the network
	TotalLoad int
	// Same as TotalLoad, per node, indexed by node ID
	NodeLoad []int
}

// AverageLoad returns the average number of buffered packets per tick.
func (r Result) AverageLoad() float64 {
	if r.Steps == 0 {
		return 0
	}
	return float64(r.TotalLoad) / float64(r.Steps)
}

// NodeAverageLoad returns the average buffer occupancy of a node per tick.
func (r Result) NodeAverageLoad(id defn.NodeID) float64 {
	if r.Steps == 0 || id < 0 || int(id) >= len(r.NodeLoad) {
		return 0
	}
	return float64(r.NodeLoad[id]) / float64(r.Steps)
}
