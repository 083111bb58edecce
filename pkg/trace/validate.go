package trace

import (
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/algotrace/pkg/errors"
)

var (
	// ErrKindMismatch is returned by [Validate] when a step's payload does not
	// match its Kind discriminator.
	ErrKindMismatch = stderrors.New("payload does not match kind")

	// ErrIndexOutOfRange is returned by [Validate] when an index or cell
	// coordinate lies outside the snapshot it accompanies.
	ErrIndexOutOfRange = stderrors.New("index out of range")

	// ErrUnknownEndpoint is returned by [Validate] when a graph or tree edge
	// references a node missing from the same snapshot.
	ErrUnknownEndpoint = stderrors.New("edge references unknown node")

	// ErrLineOutOfRange is returned by [Validate] when a step highlights a
	// line that does not exist in the paired listing.
	ErrLineOutOfRange = stderrors.New("line outside listing")
)

// Validate checks the structural invariants of steps. listingLen is the
// number of lines in the algorithm's pseudocode listing; pass a negative
// value to skip the line check. The returned error carries
// [errors.ErrCodeInternal], names the first failing step and wraps one of
// the sentinels above.
func Validate(steps []Step, listingLen int) error {
	for i, s := range steps {
		if err := validateStep(s, listingLen); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "step %d", i)
		}
	}
	return nil
}

func validateStep(s Step, listingLen int) error {
	if listingLen >= 0 && (s.Line < 0 || s.Line > listingLen) {
		return fmt.Errorf("%w: line %d of %d", ErrLineOutOfRange, s.Line, listingLen)
	}
	if payloads(s) != 1 {
		return fmt.Errorf("%w: kind %q", ErrKindMismatch, s.Kind)
	}
	switch s.Kind {
	case KindArray:
		if s.Array == nil {
			return fmt.Errorf("%w: kind %q", ErrKindMismatch, s.Kind)
		}
		return validateArray(s.Array)
	case KindGraph:
		if s.Graph == nil {
			return fmt.Errorf("%w: kind %q", ErrKindMismatch, s.Kind)
		}
		return validateGraph(s.Graph)
	case KindTable:
		if s.Table == nil {
			return fmt.Errorf("%w: kind %q", ErrKindMismatch, s.Kind)
		}
		return validateTable(s.Table)
	case KindPeg:
		if s.Peg == nil {
			return fmt.Errorf("%w: kind %q", ErrKindMismatch, s.Kind)
		}
		return nil
	case KindTree:
		if s.Tree == nil {
			return fmt.Errorf("%w: kind %q", ErrKindMismatch, s.Kind)
		}
		return validateTree(s.Tree)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrKindMismatch, s.Kind)
	}
}

func payloads(s Step) int {
	n := 0
	if s.Array != nil {
		n++
	}
	if s.Graph != nil {
		n++
	}
	if s.Table != nil {
		n++
	}
	if s.Peg != nil {
		n++
	}
	if s.Tree != nil {
		n++
	}
	return n
}

func validateArray(a *ArrayState) error {
	n := len(a.Values)
	for name, idx := range map[string][]int{"active": a.Active, "swapping": a.Swapping, "sorted": a.Sorted} {
		for _, i := range idx {
			if i < 0 || i >= n {
				return fmt.Errorf("%w: %s index %d, length %d", ErrIndexOutOfRange, name, i, n)
			}
		}
	}
	if a.Pivot != nil && (*a.Pivot < 0 || *a.Pivot >= n) {
		return fmt.Errorf("%w: pivot %d, length %d", ErrIndexOutOfRange, *a.Pivot, n)
	}
	if a.Result != nil && (*a.Result < 0 || *a.Result >= n) {
		return fmt.Errorf("%w: result %d, length %d", ErrIndexOutOfRange, *a.Result, n)
	}
	if r := a.Range; r != nil && (r.Start < 0 || r.End >= n || r.Start > r.End) {
		return fmt.Errorf("%w: range [%d,%d], length %d", ErrIndexOutOfRange, r.Start, r.End, n)
	}
	return nil
}

func validateGraph(g *GraphState) error {
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	for _, e := range g.Edges {
		if !ids[e.Source] || !ids[e.Target] {
			return fmt.Errorf("%w: %s -> %s", ErrUnknownEndpoint, e.Source, e.Target)
		}
	}
	return nil
}

func validateTable(t *TableState) error {
	if len(t.Cells) != t.Rows {
		return fmt.Errorf("%w: %d rows, header says %d", ErrIndexOutOfRange, len(t.Cells), t.Rows)
	}
	for r, row := range t.Cells {
		if len(row) != t.Cols {
			return fmt.Errorf("%w: row %d has %d cols, header says %d", ErrIndexOutOfRange, r, len(row), t.Cols)
		}
	}
	for _, c := range t.Highlights {
		if c.Row < 0 || c.Row >= t.Rows || c.Col < 0 || c.Col >= t.Cols {
			return fmt.Errorf("%w: cell (%d,%d) in %dx%d table", ErrIndexOutOfRange, c.Row, c.Col, t.Rows, t.Cols)
		}
	}
	return nil
}

func validateTree(t *TreeState) error {
	ids := make(map[int]bool, len(t.Nodes))
	for _, n := range t.Nodes {
		ids[n.ID] = true
	}
	for _, e := range t.Edges {
		if !ids[e.From] || !ids[e.To] {
			return fmt.Errorf("%w: %d -> %d", ErrUnknownEndpoint, e.From, e.To)
		}
	}
	return nil
}
