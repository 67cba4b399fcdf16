package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/named-data/ndnsim/fw/defn"
	"github.com/named-data/ndnsim/fw/fw"
)

// NameWidth is the column width of vertex names in the load table.
const NameWidth = 25

// NodeReport holds the per-node part of a report.
type NodeReport struct {
	Name        string
	AverageLoad float64
	Counters    defn.NodeCounters
}

// Report is the printable outcome of a simulation.
type Report struct {
	Result fw.Result
	Nodes  []NodeReport
	// Summary of the per-node average loads
	Load Summary
}

// NewReport collects the report of a finished run of network.
func NewReport(network *fw.Network, res fw.Result) *Report {
	r := &Report{Result: res}
	loads := make([]float64, 0, len(network.Nodes()))
	for _, node := range network.Nodes() {
		avg := res.NodeAverageLoad(node.ID())
		loads = append(loads, avg)
		r.Nodes = append(r.Nodes, NodeReport{
			Name:        node.Name(),
			AverageLoad: avg,
			Counters:    node.Counters(),
		})
	}
	r.Load = Summarize(loads)
	return r
}

// SatisfiedInterests returns the number of requests answered at their requester
// over all nodes.
func (r *Report) SatisfiedInterests() uint64 {
	var total uint64
	for _, n := range r.Nodes {
		total += n.Counters.NSatisfiedInterests
	}
	return total
}

// CsHitRatio returns the fraction of Interests answered from a content store.
func (r *Report) CsHitRatio() float64 {
	var hits, misses uint64
	for _, n := range r.Nodes {
		hits += n.Counters.NCsHits
		misses += n.Counters.NCsMisses
	}
	return Ratio(hits, hits+misses)
}

// Print writes the report.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "Total packet loss:", r.Result.TotalDropped)
	fmt.Fprintln(w, "No-route drops:", r.Result.NoRouteDrops)
	fmt.Fprintln(w, "Number of steps:", r.Result.Steps)
	fmt.Fprintln(w, "Avg load of the whole network:", r.Result.AverageLoad())
	if !r.Result.Quiescent {
		fmt.Fprintln(w, "Warning: step limit reached before the network went idle")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Avg load of each vertex:")
	for _, n := range r.Nodes {
		fmt.Fprintf(w, "%s %s %v\n", n.Name, strings.Repeat(" ", max(0, NameWidth-len(n.Name))), n.AverageLoad)
	}
	fmt.Fprintln(w)

	p := Printer{W: w, Padding: 16}
	p.Print("nodes", len(r.Nodes))
	p.Print("sent", r.Result.TotalSent)
	p.Print("satisfied", r.SatisfiedInterests())
	p.Print("cs-hit-ratio", fmt.Sprintf("%.3f", r.CsHitRatio()))
	p.Print("load-mean", fmt.Sprintf("%.4f", r.Load.Mean))
	p.Print("load-stddev", fmt.Sprintf("%.4f", r.Load.StdDev))
	p.Print("load-max", fmt.Sprintf("%.4f", r.Load.Max))
}
