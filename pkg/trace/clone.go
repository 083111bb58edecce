package trace

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of s. No slice, map or pointer in the result is
// shared with s.
func (s Step) Clone() Step {
	out := s
	out.Panels = clonePanels(s.Panels)
	if s.Array != nil {
		a := s.Array.Clone()
		out.Array = &a
	}
	if s.Graph != nil {
		g := s.Graph.Clone()
		out.Graph = &g
	}
	if s.Table != nil {
		t := s.Table.Clone()
		out.Table = &t
	}
	if s.Peg != nil {
		p := s.Peg.Clone()
		out.Peg = &p
	}
	if s.Tree != nil {
		t := s.Tree.Clone()
		out.Tree = &t
	}
	return out
}

// Clone returns a deep copy of a.
func (a ArrayState) Clone() ArrayState {
	out := ArrayState{
		Values:   slices.Clone(a.Values),
		Active:   slices.Clone(a.Active),
		Swapping: slices.Clone(a.Swapping),
		Sorted:   slices.Clone(a.Sorted),
		Pivot:    clonePtr(a.Pivot),
		Result:   clonePtr(a.Result),
	}
	if a.Range != nil {
		r := *a.Range
		out.Range = &r
	}
	return out
}

// Clone returns a deep copy of g.
func (g GraphState) Clone() GraphState {
	out := GraphState{
		Nodes: make([]GraphNode, len(g.Nodes)),
		Edges: make([]GraphEdge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		n.Distance = clonePtr(n.Distance)
		out.Nodes[i] = n
	}
	for i, e := range g.Edges {
		e.Weight = clonePtr(e.Weight)
		out.Edges[i] = e
	}
	return out
}

// Clone returns a deep copy of t.
func (t TableState) Clone() TableState {
	out := t
	out.Cells = make([][]int, len(t.Cells))
	for i, row := range t.Cells {
		out.Cells[i] = slices.Clone(row)
	}
	out.RowLabels = slices.Clone(t.RowLabels)
	out.ColLabels = slices.Clone(t.ColLabels)
	out.Highlights = slices.Clone(t.Highlights)
	out.Result = clonePtr(t.Result)
	out.Selected = slices.Clone(t.Selected)
	return out
}

// Clone returns a deep copy of p.
func (p PegState) Clone() PegState {
	out := PegState{Phase: p.Phase, Pegs: make(map[string][]int, len(p.Pegs))}
	for name, disks := range p.Pegs {
		out.Pegs[name] = slices.Clone(disks)
	}
	out.Move = clonePtr(p.Move)
	out.Call = clonePtr(p.Call)
	return out
}

// Clone returns a deep copy of t.
func (t TreeState) Clone() TreeState {
	return TreeState{
		Phase: t.Phase,
		Nodes: slices.Clone(t.Nodes),
		Edges: slices.Clone(t.Edges),
		Codes: maps.Clone(t.Codes),
	}
}

func clonePanels(ps []Panel) []Panel {
	if ps == nil {
		return nil
	}
	out := make([]Panel, len(ps))
	for i, p := range ps {
		out[i] = Panel{Name: p.Name, Items: slices.Clone(p.Items)}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v. It keeps optional fields readable at call
// sites, e.g. ArrayState{Pivot: trace.Ptr(hi)}.
func Ptr[T any](v T) *T { return &v }
