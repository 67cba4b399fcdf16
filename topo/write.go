package topo

import (
	"bufio"
	"fmt"
	"io"
)

// Write renders t in the text format read by Parse.
func Write(w io.Writer, t *Topology) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, sectionVertices)
	for _, v := range t.Vertices {
		if v.IsEndpoint() {
			fmt.Fprintf(bw, "%d %s %s\n", v.Index, v.Name, v.Payload)
		} else {
			fmt.Fprintf(bw, "%d %s\n", v.Index, v.Name)
		}
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, sectionEdges)
	for _, e := range t.Edges {
		fmt.Fprintf(bw, "%d %d\n", e.A, e.B)
	}
	return bw.Flush()
}
