package fw

import (
	"errors"
	"fmt"

	"github.com/named-data/ndnsim/fw/core"
	"github.com/named-data/ndnsim/fw/defn"
)

var (
	// ErrDuplicateName is returned when two nodes share a name.
	ErrDuplicateName = errors.New("duplicate node name")
	// ErrUnknownNode is returned for a node ID outside the registry.
	ErrUnknownNode = errors.New("unknown node")
	// ErrSelfLoop is returned when connecting a node to itself.
	ErrSelfLoop = errors.New("self loop")
)

// Network owns every node of a simulation and drives them in lock-step.
// Nodes are ticked in the order they were added.
type Network struct {
	opts      Options
	nodes     []*Node
	byName    map[string]defn.NodeID
	endpoints []defn.NodeID

	// OnStep, if set, is called after every tick with the 1-based step number.
	OnStep func(step int, n *Network)
}

// NewNetwork creates an empty network whose nodes use opts.
func NewNetwork(opts Options) *Network {
	return &Network{
		opts:   opts,
		byName: make(map[string]defn.NodeID),
	}
}

func (n *Network) String() string {
	return "network"
}

// AddNode registers a node. A non-empty payload makes it an endpoint.
func (n *Network) AddNode(name string, payload []byte) (defn.NodeID, error) {
	if _, ok := n.byName[name]; ok {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	id := defn.NodeID(len(n.nodes))
	node, err := NewNode(id, name, payload, n, n.opts)
	if err != nil {
		return 0, err
	}

	n.nodes = append(n.nodes, node)
	n.byName[name] = id
	if node.IsEndpoint() {
		n.endpoints = append(n.endpoints, id)
	}
	return id, nil
}

// Connect installs a FIB entry in both directions.
func (n *Network) Connect(a, b defn.NodeID) error {
	na, nb := n.Node(a), n.Node(b)
	if na == nil || nb == nil {
		return fmt.Errorf("%w: edge %d-%d", ErrUnknownNode, a, b)
	}
	if a == b {
		return fmt.Errorf("%w: %s", ErrSelfLoop, na.Name())
	}
	na.Fib().Insert(nb.Name(), b)
	nb.Fib().Insert(na.Name(), a)
	return nil
}

// Node returns the node with the given ID, or nil.
func (n *Network) Node(id defn.NodeID) *Node {
	if id < 0 || int(id) >= len(n.nodes) {
		return nil
	}
	return n.nodes[id]
}

// Lookup returns the node with the given name.
func (n *Network) Lookup(name string) (*Node, bool) {
	id, ok := n.byName[name]
	if !ok {
		return nil, false
	}
	return n.nodes[id], true
}

// Nodes returns all nodes in tick order.
func (n *Network) Nodes() []*Node {
	return n.nodes
}

// Endpoints returns the endpoint nodes in tick order.
func (n *Network) Endpoints() []*Node {
	ret := make([]*Node, len(n.endpoints))
	for i, id := range n.endpoints {
		ret[i] = n.nodes[id]
	}
	return ret
}

// Deliver appends a packet to the buffer of the target node.
// Within a tick, nodes later in the order see the packet immediately.
func (n *Network) Deliver(to defn.NodeID, pkt *defn.Pkt) {
	node := n.Node(to)
	if node == nil {
		core.Log.Error(n, "Dropped packet to unknown node", "to", to, "pkt", pkt)
		return
	}
	node.Enqueue(pkt)
}

// SeedTraffic records perPair requests at every endpoint for the content of
// every other endpoint.
func (n *Network) SeedTraffic(perPair int) {
	for _, src := range n.Endpoints() {
		for _, dst := range n.Endpoints() {
			if src == dst {
				continue
			}
			for range perPair {
				src.Express(dst.Name())
			}
		}
	}
	core.Log.Debug(n, "Seeded traffic", "endpoints", len(n.endpoints), "perPair", perPair)
}

// Quiescent reports whether no node holds buffered packets or PIT entries.
func (n *Network) Quiescent() bool {
	for _, node := range n.nodes {
		if !node.Idle() {
			return false
		}
	}
	return true
}

// RunToQuiescence ticks every node until the network is quiescent or
// maxSteps ticks have run.
func (n *Network) RunToQuiescence(maxSteps int) Result {
	res := Result{NodeLoad: make([]int, len(n.nodes))}
	noRouteBefore := n.noRouteCount()

	for res.Steps < maxSteps {
		sent, dropped := 0, 0
		for _, node := range n.nodes {
			s, d := node.RunStep()
			sent += s
			dropped += d
		}
		res.Steps++
		res.TotalSent += sent
		res.TotalDropped += dropped

		for i, node := range n.nodes {
			res.NodeLoad[i] += node.BufferLen()
			res.TotalLoad += node.BufferLen()
		}

		core.Log.Trace(n, "Step", "step", res.Steps, "sent", sent, "dropped", dropped)
		if n.OnStep != nil {
			n.OnStep(res.Steps, n)
		}

		if n.Quiescent() {
			res.Quiescent = true
			break
		}
	}

	res.NoRouteDrops = int(n.noRouteCount() - noRouteBefore)
	core.Log.Info(n, "Simulation finished", "steps", res.Steps, "quiescent", res.Quiescent,
		"dropped", res.TotalDropped, "noRoute", res.NoRouteDrops)
	return res
}

// Simulate seeds perPair requests between every pair of endpoints and runs
// the network to quiescence.
func (n *Network) Simulate(perPair int, maxSteps int) Result {
	n.SeedTraffic(perPair)
	return n.RunToQuiescence(maxSteps)
}

func (n *Network) noRouteCount() uint64 {
	var total uint64
	for _, node := range n.nodes {
		total += node.counters.NNoRoute
	}
	return total
}
