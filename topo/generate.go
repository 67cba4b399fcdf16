package topo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iti/rngstream"
	"go.uber.org/multierr"
)

// ErrGenOptions is returned for unusable generator options.
var ErrGenOptions = errors.New("invalid generator options")

// GenOptions controls Generate.
type GenOptions struct {
	// Number of relay vertices, connected as a random spanning tree
	Relays int
	// Number of endpoints, each attached to a random relay
	Endpoints int
	// Additional random relay-relay edges
	ExtraEdges int
	// Length of each endpoint payload
	PayloadLen int
	// First name component of every vertex
	Prefix string
	// Name of the random stream
	Stream string
}

// DefaultGenOptions returns the options of the gen command.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Relays:     6,
		Endpoints:  4,
		ExtraEdges: 2,
		PayloadLen: 5,
		Prefix:     "net",
		Stream:     "topology",
	}
}

// Validate checks the options.
func (o GenOptions) Validate() error {
	var errs []error
	if o.Relays < 1 {
		errs = append(errs, fmt.Errorf("%w: relays must be positive", ErrGenOptions))
	}
	if o.Endpoints < 0 {
		errs = append(errs, fmt.Errorf("%w: endpoints must not be negative", ErrGenOptions))
	}
	if o.ExtraEdges < 0 {
		errs = append(errs, fmt.Errorf("%w: extra edges must not be negative", ErrGenOptions))
	}
	if o.PayloadLen < 1 {
		errs = append(errs, fmt.Errorf("%w: payload length must be positive", ErrGenOptions))
	}
	if o.Prefix == "" || strings.ContainsAny(o.Prefix, "/ \t#") {
		errs = append(errs, fmt.Errorf("%w: prefix %q", ErrGenOptions, o.Prefix))
	}
	return multierr.Combine(errs...)
}

// Generate creates a random connected topology. Relays are named
// /<prefix>/<i> and endpoints /<prefix>/<relay>/<j>, so that each endpoint
// shares its longest prefix with the relay it hangs off.
//
// Every call draws from a new rngstream; streams are handed out in creation
// order, so a process that makes the same calls gets the same topologies.
func Generate(opts GenOptions) (*Topology, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	rng := rngstream.New(opts.Stream)
	t := &Topology{}

	for i := range opts.Relays {
		t.Vertices = append(t.Vertices, Vertex{Index: i, Name: fmt.Sprintf("/%s/%d", opts.Prefix, i)})
	}

	linked := map[Edge]bool{}
	link := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		linked[Edge{a, b}] = true
		t.Edges = append(t.Edges, Edge{a, b})
	}

	for i := 1; i < opts.Relays; i++ {
		link(rng.RandInt(0, i-1), i)
	}

	maxExtra := opts.Relays*(opts.Relays-1)/2 - (opts.Relays - 1)
	for added := 0; added < min(opts.ExtraEdges, maxExtra); {
		a, b := rng.RandInt(0, opts.Relays-1), rng.RandInt(0, opts.Relays-1)
		if a == b || linked[Edge{min(a, b), max(a, b)}] {
			continue
		}
		link(a, b)
		added++
	}

	perRelay := make([]int, opts.Relays)
	for j := range opts.Endpoints {
		relay := rng.RandInt(0, opts.Relays-1)
		index := opts.Relays + j
		t.Vertices = append(t.Vertices, Vertex{
			Index:   index,
			Name:    fmt.Sprintf("/%s/%d/%d", opts.Prefix, relay, perRelay[relay]),
			Payload: randomPayload(rng, opts.PayloadLen),
		})
		perRelay[relay]++
		link(relay, index)
	}
	return t, nil
}

func randomPayload(rng *rngstream.RngStream, n int) string {
	var sb strings.Builder
	for range n {
		sb.WriteByte(byte('a' + rng.RandInt(0, 25)))
	}
	return sb.String()
}
