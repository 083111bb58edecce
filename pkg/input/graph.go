package input

import (
	"slices"
	"strings"

	"github.com/matzehuels/algotrace/pkg/errors"
)

// Neighbor is an adjacency entry. Weight is meaningful only when Weighted.
type Neighbor struct {
	ID       string
	Weight   float64
	Weighted bool
}

// Graph is a parsed adjacency structure.
//
// Nodes lists every node in order of first appearance, including nodes that
// only occur as neighbors. Adj maps each node to its neighbors in the order
// written (or reversed, see [WithReversedNeighbors]).
type Graph struct {
	Nodes []string
	Adj   map[string][]Neighbor
	// Weighted is true when at least one neighbor carries a weight.
	Weighted bool
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Adj[id]
	return ok
}

// Index returns the position of id in Nodes, or -1.
func (g *Graph) Index(id string) int {
	return slices.Index(g.Nodes, id)
}

// Neighbors returns the adjacency list of id.
func (g *Graph) Neighbors(id string) []Neighbor {
	return g.Adj[id]
}

// EdgeCount returns the number of adjacency entries.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, ns := range g.Adj {
		n += len(ns)
	}
	return n
}

// RequireNode returns an UNKNOWN_NODE error when id is not part of g.
func (g *Graph) RequireNode(id string) error {
	if !g.HasNode(id) {
		return errors.New(errors.ErrCodeUnknownNode, "node %q is not in the graph", id)
	}
	return nil
}

// GraphOption configures [ParseGraph].
type GraphOption func(*graphOptions)

type graphOptions struct {
	requireWeights bool
	reverse        bool
}

// WithRequiredWeights rejects neighbors written without a "(weight)" suffix.
func WithRequiredWeights() GraphOption {
	return func(o *graphOptions) { o.requireWeights = true }
}

// WithReversedNeighbors stores every adjacency list in reverse order. A
// stack-based traversal that pushes neighbors in stored order then visits
// them in the order they were written, matching a recursive traversal.
func WithReversedNeighbors() GraphOption {
	return func(o *graphOptions) { o.reverse = true }
}

// ParseGraph parses text in the adjacency grammar described in the package
// documentation. Whitespace around tokens is ignored and a trailing ";" is
// allowed. Any malformed entry fails the whole parse.
func ParseGraph(text string, opts ...GraphOption) (*Graph, error) {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{Adj: make(map[string][]Neighbor)}
	addNode := func(id string) {
		if _, ok := g.Adj[id]; !ok {
			g.Adj[id] = nil
			g.Nodes = append(g.Nodes, id)
		}
	}

	entries := strings.Split(text, ";")
	declared := make(map[string]bool)
	for i, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			if i == len(entries)-1 && i > 0 {
				continue
			}
			return nil, errors.New(errors.ErrCodeInvalidGraph, "entry %d is empty", i+1)
		}

		head, tail, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "entry %d (%q) is missing ':'", i+1, entry)
		}
		id := strings.TrimSpace(head)
		if err := validateNodeID(id); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "entry %d", i+1)
		}
		if declared[id] {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "node %q is declared twice", id)
		}
		declared[id] = true
		addNode(id)

		tail = strings.TrimSpace(tail)
		if tail == "" {
			continue
		}
		var neighbors []Neighbor
		for _, tok := range strings.Split(tail, ",") {
			n, err := parseNeighbor(strings.TrimSpace(tok), o.requireWeights)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "entry %q", id)
			}
			if n.Weighted {
				g.Weighted = true
			}
			neighbors = append(neighbors, n)
		}
		for _, n := range neighbors {
			addNode(n.ID)
		}
		if o.reverse {
			slices.Reverse(neighbors)
		}
		g.Adj[id] = neighbors
	}

	if len(g.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "graph has no nodes")
	}
	return g, nil
}

func parseNeighbor(tok string, requireWeight bool) (Neighbor, error) {
	if tok == "" {
		return Neighbor{}, errors.New(errors.ErrCodeInvalidGraph, "empty neighbor")
	}
	open := strings.IndexByte(tok, '(')
	if open < 0 {
		if requireWeight {
			return Neighbor{}, errors.New(errors.ErrCodeInvalidGraph, "neighbor %q needs a (weight)", tok)
		}
		if err := validateNodeID(tok); err != nil {
			return Neighbor{}, err
		}
		return Neighbor{ID: tok}, nil
	}

	if !strings.HasSuffix(tok, ")") {
		return Neighbor{}, errors.New(errors.ErrCodeInvalidGraph, "neighbor %q has an unclosed weight", tok)
	}
	id := strings.TrimSpace(tok[:open])
	if err := validateNodeID(id); err != nil {
		return Neighbor{}, err
	}
	w, err := ParseNumber(tok[open+1 : len(tok)-1])
	if err != nil {
		return Neighbor{}, err
	}
	if w < 0 {
		return Neighbor{}, errors.New(errors.ErrCodeOutOfRange, "weight of %q is negative", id)
	}
	return Neighbor{ID: id, Weight: w, Weighted: true}, nil
}

func validateNodeID(id string) error {
	if id == "" {
		return errors.New(errors.ErrCodeInvalidGraph, "node id cannot be empty")
	}
	if strings.ContainsAny(id, ":;,() \t\n") {
		return errors.New(errors.ErrCodeInvalidGraph, "node id %q contains reserved characters", id)
	}
	return nil
}
