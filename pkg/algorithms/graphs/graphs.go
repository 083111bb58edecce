// Package graphs generates step traces for graph traversals and shortest
// paths.
//
// Node positions are computed once per invocation with [layout.Circle].
// Node and edge colors are never patched in place: every step derives them
// from a [marks] value describing the algorithm state at that moment.
package graphs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/algotrace/pkg/input"
	"github.com/matzehuels/algotrace/pkg/layout"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// Algorithm names.
const (
	NameBFS      = "bfs"
	NameDFS      = "dfs"
	NameDijkstra = "dijkstra"
)

// edgeRef is a static edge of the input graph.
type edgeRef struct {
	id       string
	src, dst string
	weight   *float64
}

// scene holds the parts of a graph snapshot that never change during one
// invocation.
type scene struct {
	g     *input.Graph
	start string
	pos   map[string]layout.Point
	edges []edgeRef
}

func newScene(g *input.Graph, start string) *scene {
	s := &scene{
		g:     g,
		start: start,
		pos:   layout.Circle(g.Nodes, layout.DefaultFrame()),
	}
	seen := make(map[string]int)
	for _, src := range g.Nodes {
		for _, nb := range g.Adj[src] {
			id := edgeKey(src, nb.ID)
			if n := seen[id]; n > 0 {
				id = fmt.Sprintf("%s#%d", id, n)
			}
			seen[edgeKey(src, nb.ID)]++
			e := edgeRef{id: id, src: src, dst: nb.ID}
			if nb.Weighted {
				e.weight = trace.Ptr(nb.Weight)
			}
			s.edges = append(s.edges, e)
		}
	}
	return s
}

func edgeKey(src, dst string) string { return src + "->" + dst }

// marks is the per-step algorithm state that determines colors.
type marks struct {
	current  string
	frontier map[string]bool
	visited  map[string]bool
	tree     map[string]bool
	active   string
	dist     map[string]float64
}

func newMarks() *marks {
	return &marks{
		frontier: make(map[string]bool),
		visited:  make(map[string]bool),
		tree:     make(map[string]bool),
	}
}

func (m *marks) nodeColor(id, start string) trace.NodeColor {
	switch {
	case id == m.current:
		return trace.NodeVisiting
	case m.visited[id]:
		return trace.NodeVisited
	case m.frontier[id]:
		return trace.NodeFrontier
	case id == start:
		return trace.NodeStart
	default:
		return trace.NodeDefault
	}
}

func (m *marks) edgeColor(e edgeRef) trace.EdgeColor {
	switch {
	case edgeKey(e.src, e.dst) == m.active:
		return trace.EdgeActive
	case m.tree[edgeKey(e.src, e.dst)]:
		return trace.EdgeTree
	default:
		return trace.EdgeDefault
	}
}

// snapshot builds a fresh graph state from the scene and the marks.
func (s *scene) snapshot(m *marks) trace.GraphState {
	st := trace.GraphState{
		Nodes: make([]trace.GraphNode, 0, len(s.g.Nodes)),
		Edges: make([]trace.GraphEdge, 0, len(s.edges)),
	}
	for _, id := range s.g.Nodes {
		p := s.pos[id]
		n := trace.GraphNode{
			ID:      id,
			Label:   id,
			X:       p.X,
			Y:       p.Y,
			Color:   m.nodeColor(id, s.start),
			IsStart: id == s.start,
		}
		if d, ok := m.dist[id]; ok {
			n.Distance = trace.Ptr(d)
		}
		st.Nodes = append(st.Nodes, n)
	}
	for _, e := range s.edges {
		st.Edges = append(st.Edges, trace.GraphEdge{
			ID:       e.id,
			Source:   e.src,
			Target:   e.dst,
			Weight:   e.weight,
			Color:    m.edgeColor(e),
			Directed: true,
		})
	}
	return st
}

// setPanel renders a set in node order.
func (s *scene) setPanel(name string, set map[string]bool) trace.Panel {
	items := []string{}
	for _, id := range s.g.Nodes {
		if set[id] {
			items = append(items, id)
		}
	}
	return trace.Panel{Name: name, Items: items}
}

func listPanel(name string, ids []string) trace.Panel {
	return trace.Panel{Name: name, Items: slices.Clone(ids)}
}

func joinIDs(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}
	return strings.Join(ids, ", ")
}

// missingStart is the terminal step for a start node absent from the graph.
// Callers normally reject such input first.
func missingStart(name string, s *scene) trace.Trace {
	return trace.Trace{
		Algorithm: name,
		Steps: []trace.Step{
			trace.GraphStep(trace.NoLine, fmt.Sprintf("Start node %q is not in the graph.", s.start), s.snapshot(newMarks())),
		},
	}
}
