package topo

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	gtopo "gonum.org/v1/gonum/graph/topo"

	"github.com/named-data/ndnsim/fw/defn"
	"github.com/named-data/ndnsim/fw/fw"
)

// RouteStatus is the outcome of following FIB entries from one endpoint
// toward another.
type RouteStatus int

const (
	// Reachable means the walk arrived at the destination.
	Reachable RouteStatus = iota
	// Unroutable means a node on the way had no matching FIB entry.
	Unroutable
	// Looping means the walk came back to a node it already visited.
	Looping
)

func (s RouteStatus) String() string {
	switch s {
	case Reachable:
		return "reachable"
	case Unroutable:
		return "no route"
	case Looping:
		return "loop"
	default:
		return "unknown"
	}
}

// Route describes how an Interest from one endpoint travels toward the
// content of another when no cache answers it.
type Route struct {
	From, To string
	Status   RouteStatus
	// Hops taken by longest-prefix-match forwarding
	Hops int
	// Hops on a shortest path; -1 when the endpoints are disconnected
	Shortest int
}

// Report is the result of Validate.
type Report struct {
	// Connected components, each listing vertex names in file order
	Components [][]string
	// One route per ordered pair of distinct endpoints
	Routes []Route
}

// Connected reports whether the topology forms a single component.
func (r *Report) Connected() bool {
	return len(r.Components) <= 1
}

// Warnings lists the problems that will show up as drops in a simulation.
func (r *Report) Warnings() []string {
	var ret []string
	if !r.Connected() {
		ret = append(ret, fmt.Sprintf("topology has %d disconnected components", len(r.Components)))
	}
	for _, route := range r.Routes {
		if route.Status != Reachable {
			ret = append(ret, fmt.Sprintf("%s -> %s: %s after %d hops", route.From, route.To, route.Status, route.Hops))
		}
	}
	return ret
}

// Validate checks the connectivity of t and follows the forwarding path
// between every pair of endpoints.
func Validate(t *Topology) (*Report, error) {
	network, err := Build(t, fw.Options{CsCapacity: 1, InterestLifetime: 1})
	if err != nil {
		return nil, err
	}

	// graph node IDs are positions, which equal network node IDs
	g := simple.NewUndirectedGraph()
	for i := range t.Vertices {
		g.AddNode(simple.Node(i))
	}
	for _, e := range t.Edges {
		a, _ := t.position(e.A)
		b, _ := t.position(e.B)
		if a == b {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
	}

	report := &Report{}
	for _, comp := range gtopo.ConnectedComponents(g) {
		pos := make([]int, len(comp))
		for i, n := range comp {
			pos[i] = int(n.ID())
		}
		slices.Sort(pos)
		names := make([]string, len(pos))
		for i, p := range pos {
			names[i] = t.Vertices[p].Name
		}
		report.Components = append(report.Components, names)
	}
	slices.SortFunc(report.Components, func(a, b []string) int {
		pa, _ := network.Lookup(a[0])
		pb, _ := network.Lookup(b[0])
		return int(pa.ID()) - int(pb.ID())
	})

	for _, src := range network.Endpoints() {
		shortest := path.DijkstraFrom(simple.Node(src.ID()), g)
		for _, dst := range network.Endpoints() {
			if src == dst {
				continue
			}
			route := walk(network, src, dst)
			route.Shortest = -1
			if w := shortest.WeightTo(int64(dst.ID())); !math.IsInf(w, 1) {
				route.Shortest = int(w)
			}
			report.Routes = append(report.Routes, route)
		}
	}
	return report, nil
}

func walk(network *fw.Network, src, dst *fw.Node) Route {
	route := Route{From: src.Name(), To: dst.Name(), Status: Reachable}
	visited := map[defn.NodeID]bool{src.ID(): true}
	for cur := src; cur != dst; {
		next, ok := cur.Fib().LongestPrefixMatch(dst.Name())
		if !ok {
			route.Status = Unroutable
			return route
		}
		route.Hops++
		if visited[next] {
			route.Status = Looping
			return route
		}
		visited[next] = true
		cur = network.Node(next)
	}
	return route
}
