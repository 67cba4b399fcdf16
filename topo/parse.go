package topo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrSyntax is returned for a line that cannot be parsed.
	ErrSyntax = errors.New("syntax error")
	// ErrIndex is returned for a bad, unknown or duplicate vertex index.
	ErrIndex = errors.New("invalid vertex index")
	// ErrDuplicateName is returned when two vertices share a name.
	ErrDuplicateName = errors.New("duplicate vertex name")
	// ErrSelfLoop is returned for an edge from a vertex to itself.
	ErrSelfLoop = errors.New("self loop")
)

const (
	sectionVertices = "[Vertices]"
	sectionEdges    = "[Edges]"
)

type lineError struct {
	line int
	err  error
}

func (e lineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.line, e.err)
}

func (e lineError) Unwrap() error {
	return e.err
}

// Load parses the topology file at path.
func Load(path string) (*Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads a topology in the [Vertices]/[Edges] text format.
// Every problem in the input is reported, combined into one error.
func Parse(r io.Reader) (*Topology, error) {
	t := &Topology{}
	var errs []error
	fail := func(line int, err error) {
		errs = append(errs, lineError{line, err})
	}

	type pendingEdge struct {
		line int
		a, b int
	}
	var edges []pendingEdge

	indices := map[int]bool{}
	names := map[string]bool{}
	section := ""

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == sectionVertices || line == sectionEdges {
			section = line
			continue
		}

		fields := strings.Fields(line)
		switch section {
		case sectionVertices:
			if len(fields) != 2 && len(fields) != 3 {
				fail(lineNo, fmt.Errorf("%w: vertex needs 2 or 3 fields, got %d", ErrSyntax, len(fields)))
				continue
			}
			index, err := strconv.Atoi(fields[0])
			if err != nil || index < 0 {
				fail(lineNo, fmt.Errorf("%w: %q", ErrIndex, fields[0]))
				continue
			}
			if indices[index] {
				fail(lineNo, fmt.Errorf("%w: %d defined twice", ErrIndex, index))
				continue
			}
			if names[fields[1]] {
				fail(lineNo, fmt.Errorf("%w: %s", ErrDuplicateName, fields[1]))
				continue
			}
			indices[index], names[fields[1]] = true, true

			v := Vertex{Index: index, Name: fields[1]}
			if len(fields) == 3 {
				v.Payload = fields[2]
			}
			t.Vertices = append(t.Vertices, v)

		case sectionEdges:
			if len(fields) != 2 {
				fail(lineNo, fmt.Errorf("%w: edge needs 2 fields, got %d", ErrSyntax, len(fields)))
				continue
			}
			a, errA := strconv.Atoi(fields[0])
			b, errB := strconv.Atoi(fields[1])
			if errA != nil || errB != nil {
				fail(lineNo, fmt.Errorf("%w: %q", ErrIndex, line))
				continue
			}
			edges = append(edges, pendingEdge{lineNo, a, b})

		default:
			fail(lineNo, fmt.Errorf("%w: %q outside of a section", ErrSyntax, line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// edges may refer to vertices defined further down
	for _, e := range edges {
		switch {
		case !indices[e.a]:
			fail(e.line, fmt.Errorf("%w: unknown vertex %d", ErrIndex, e.a))
		case !indices[e.b]:
			fail(e.line, fmt.Errorf("%w: unknown vertex %d", ErrIndex, e.b))
		case e.a == e.b:
			fail(e.line, fmt.Errorf("%w: vertex %d", ErrSelfLoop, e.a))
		default:
			t.Edges = append(t.Edges, Edge{e.a, e.b})
		}
	}

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return t, nil
}
