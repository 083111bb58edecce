package input

import (
	"slices"
	"testing"

	"github.com/matzehuels/algotrace/pkg/errors"
)

func TestParseGraphWeighted(t *testing.T) {
	g, err := ParseGraph("0:1(4),2(1);1:3(1);2:1(2),3(5);3:", WithRequiredWeights())
	if err != nil {
		t.Fatalf("ParseGraph: %v", err)
	}
	if !slices.Equal(g.Nodes, []string{"0", "1", "2", "3"}) {
		t.Errorf("Nodes = %v", g.Nodes)
	}
	if !g.Weighted {
		t.Error("graph should be weighted")
	}
	if g.EdgeCount() != 5 {
		t.Errorf("EdgeCount = %d, want 5", g.EdgeCount())
	}
	n := g.Neighbors("2")
	if len(n) != 2 || n[0].ID != "1" || n[0].Weight != 2 || n[1].ID != "3" || n[1].Weight != 5 {
		t.Errorf("Neighbors(2) = %+v", n)
	}
	if len(g.Neighbors("3")) != 0 {
		t.Errorf("node 3 should be isolated")
	}
}

func TestParseGraphImplicitNodes(t *testing.T) {
	g, err := ParseGraph(" A : B , C ; B : D ;")
	if err != nil {
		t.Fatalf("ParseGraph: %v", err)
	}
	if !slices.Equal(g.Nodes, []string{"A", "B", "C", "D"}) {
		t.Errorf("Nodes = %v", g.Nodes)
	}
	if !g.HasNode("D") || g.Index("C") != 2 {
		t.Error("implicit neighbor nodes should be registered in appearance order")
	}
	if g.Weighted {
		t.Error("graph should be unweighted")
	}
}

func TestParseGraphReversed(t *testing.T) {
	g, err := ParseGraph("A:B,C,D", WithReversedNeighbors())
	if err != nil {
		t.Fatalf("ParseGraph: %v", err)
	}
	var ids []string
	for _, n := range g.Neighbors("A") {
		ids = append(ids, n.ID)
	}
	if !slices.Equal(ids, []string{"D", "C", "B"}) {
		t.Errorf("reversed neighbors = %v", ids)
	}
	if !slices.Equal(g.Nodes, []string{"A", "B", "C", "D"}) {
		t.Errorf("node order should not be reversed: %v", g.Nodes)
	}
}

func TestParseGraphSelfLoop(t *testing.T) {
	g, err := ParseGraph("A:A,B;B:A")
	if err != nil {
		t.Fatalf("ParseGraph: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Errorf("Nodes = %v", g.Nodes)
	}
}

func TestParseGraphErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []GraphOption
		code errors.Code
	}{
		{name: "empty", in: "", code: errors.ErrCodeInvalidGraph},
		{name: "missing colon", in: "A:B;C", code: errors.ErrCodeInvalidGraph},
		{name: "empty middle entry", in: "A:B;;B:A", code: errors.ErrCodeInvalidGraph},
		{name: "empty neighbor", in: "A:B,,C", code: errors.ErrCodeInvalidGraph},
		{name: "duplicate entry", in: "A:B;A:C", code: errors.ErrCodeInvalidGraph},
		{name: "missing weight", in: "A:B(1),C", opts: []GraphOption{WithRequiredWeights()}, code: errors.ErrCodeInvalidGraph},
		{name: "bad weight", in: "A:B(x)", code: errors.ErrCodeInvalidGraph},
		{name: "negative weight", in: "A:B(-2)", code: errors.ErrCodeInvalidGraph},
		{name: "unclosed weight", in: "A:B(2", code: errors.ErrCodeInvalidGraph},
		{name: "reserved characters", in: "A B:C", code: errors.ErrCodeInvalidGraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGraph(tt.in, tt.opts...)
			if g != nil {
				t.Errorf("expected no partial graph, got %+v", g)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRequireNode(t *testing.T) {
	g, err := ParseGraph("A:B")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.RequireNode("B"); err != nil {
		t.Errorf("RequireNode(B) = %v", err)
	}
	if err := g.RequireNode("Z"); !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("RequireNode(Z) = %v, want UNKNOWN_NODE", err)
	}
}
