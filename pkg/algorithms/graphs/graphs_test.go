package graphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algotrace/pkg/input"
	"github.com/matzehuels/algotrace/pkg/trace"
)

func mustParse(t *testing.T, text string, opts ...input.GraphOption) *input.Graph {
	t.Helper()
	g, err := input.ParseGraph(text, opts...)
	require.NoError(t, err)
	return g
}

func panel(s trace.Step, name string) []string {
	for _, p := range s.Panels {
		if p.Name == name {
			return p.Items
		}
	}
	return nil
}

func TestDijkstraExample(t *testing.T) {
	g := mustParse(t, "0:1(4),2(1);1:3(1);2:1(2),3(5);3:", input.WithRequiredWeights())
	tr := Dijkstra(g, "0")

	require.NoError(t, trace.Validate(tr.Steps, len(DijkstraListing)))
	assert.Equal(t, map[string]float64{"0": 0, "1": 3, "2": 1, "3": 4}, Distances(tr))

	last, _ := tr.Last()
	assert.Equal(t, []string{"0", "1", "2", "3"}, panel(last, "processed"))
	assert.Empty(t, panel(last, "priority queue"))
	for _, n := range last.Graph.Nodes {
		assert.Equal(t, trace.NodeVisited, n.Color, n.ID)
	}
}

func TestDijkstraUnreachable(t *testing.T) {
	g := mustParse(t, "a:b(2);b:;c:a(1)")
	tr := Dijkstra(g, "a")

	require.NoError(t, trace.Validate(tr.Steps, len(DijkstraListing)))
	assert.Equal(t, map[string]float64{"a": 0, "b": 2}, Distances(tr))

	diag := tr.Steps[len(tr.Steps)-2]
	assert.Equal(t, trace.NoLine, diag.Line)
	assert.Contains(t, diag.Message, "from a: c.")
}

func TestDijkstraPriorityQueueOrder(t *testing.T) {
	g := mustParse(t, "s:x(3),y(1),z(3);x:;y:;z:")
	tr := Dijkstra(g, "s")

	var seen bool
	for _, s := range tr.Steps {
		if s.Line == djPush && len(panel(s, "priority queue")) == 3 {
			assert.Equal(t, []string{"y: 1", "x: 3", "z: 3"}, panel(s, "priority queue"))
			seen = true
		}
	}
	assert.True(t, seen)
}

func TestBFSOrder(t *testing.T) {
	g := mustParse(t, "A:B,C;B:D;C:D,E;D:F;E:F;F:")
	tr := BFS(g, "A")

	require.NoError(t, trace.Validate(tr.Steps, len(BFSListing)))
	last, _ := tr.Last()
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, panel(last, "order"))
	assert.Empty(t, panel(last, "queue"))
}

func TestDFSOrderMatchesRecursion(t *testing.T) {
	g := mustParse(t, "A:B,C;B:D;C:E;D:;E:", input.WithReversedNeighbors())
	tr := DFS(g, "A")

	require.NoError(t, trace.Validate(tr.Steps, len(DFSListing)))
	last, _ := tr.Last()
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, panel(last, "order"))
}

func TestTraversalsHandleCycles(t *testing.T) {
	g := mustParse(t, "1:2;2:3;3:1")
	for _, tr := range []trace.Trace{BFS(g, "1"), DFS(g, "1")} {
		last, _ := tr.Last()
		assert.Equal(t, []string{"1", "2", "3"}, panel(last, "order"), tr.Algorithm)
	}
}

func TestSingleNode(t *testing.T) {
	g := mustParse(t, "solo:")
	for _, tr := range []trace.Trace{BFS(g, "solo"), DFS(g, "solo"), Dijkstra(g, "solo")} {
		require.NotEmpty(t, tr.Steps, tr.Algorithm)
		last, _ := tr.Last()
		require.Len(t, last.Graph.Nodes, 1)
		assert.True(t, last.Graph.Nodes[0].IsStart)
	}
}

func TestMissingStart(t *testing.T) {
	g := mustParse(t, "a:b")
	tr := BFS(g, "z")
	require.Len(t, tr.Steps, 1)
	assert.Equal(t, trace.NoLine, tr.Steps[0].Line)
}

func TestColorsRecomputedPerStep(t *testing.T) {
	g := mustParse(t, "a:b;b:")
	tr := BFS(g, "a")

	first := tr.Steps[0].Graph
	n, ok := first.Node("b")
	require.True(t, ok)
	assert.Equal(t, trace.NodeDefault, n.Color)

	last, _ := tr.Last()
	n, _ = last.Graph.Node("b")
	assert.Equal(t, trace.NodeVisited, n.Color)

	// The first snapshot must not see later colors.
	n, _ = first.Node("a")
	assert.Equal(t, trace.NodeFrontier, n.Color)
}

func TestGraphTracesDeterministic(t *testing.T) {
	g := mustParse(t, "0:1(4),2(1);1:3(1);2:1(2),3(5);3:")
	assert.Equal(t, Dijkstra(g, "0"), Dijkstra(g, "0"))
	assert.Equal(t, BFS(g, "0"), BFS(g, "0"))
	assert.Equal(t, DFS(g, "0"), DFS(g, "0"))
}

func TestLayoutIsStable(t *testing.T) {
	g := mustParse(t, "a:b;b:c;c:a")
	tr := BFS(g, "a")
	first := tr.Steps[0].Graph.Nodes
	for _, s := range tr.Steps[1:] {
		for i, n := range s.Graph.Nodes {
			assert.Equal(t, first[i].X, n.X)
			assert.Equal(t, first[i].Y, n.Y)
		}
	}
}
