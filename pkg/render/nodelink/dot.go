package nodelink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds distances or weights to node labels and the step message
	// as a caption. When false, only node labels are shown.
	Detailed bool
}

// pixelsPerInch converts step coordinates to Graphviz positions.
const pixelsPerInch = 72.0

var nodeFill = map[trace.NodeColor]string{
	trace.NodeDefault:  "#f8fafc",
	trace.NodeStart:    "#bfdbfe",
	trace.NodeVisiting: "#fde68a",
	trace.NodeFrontier: "#fed7aa",
	trace.NodeVisited:  "#bbf7d0",
}

var edgeStroke = map[trace.EdgeColor]struct {
	color string
	width float64
}{
	trace.EdgeDefault: {"#94a3b8", 1},
	trace.EdgeActive:  {"#f59e0b", 3},
	trace.EdgeTree:    {"#16a34a", 2},
}

// ToDOT converts a graph or tree step to Graphviz DOT source. Other step
// kinds return an UNSUPPORTED error.
func ToDOT(step trace.Step, opts Options) (string, error) {
	switch {
	case step.Kind == trace.KindGraph && step.Graph != nil:
		return graphDOT(step, opts), nil
	case step.Kind == trace.KindTree && step.Tree != nil:
		return treeDOT(step, opts), nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "%s steps have no node-link diagram", step.Kind)
	}
}

func graphDOT(step trace.Step, opts Options) string {
	g := step.Graph
	directed := false
	for _, e := range g.Edges {
		directed = directed || e.Directed
	}
	kw, arrow := "graph", "--"
	if directed {
		kw, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kw)
	header(&buf, step, opts)
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, width=0.6, fontsize=14, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [fontsize=11, fontname=\"Helvetica\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		label := n.Label
		if opts.Detailed {
			label += "\n" + distance(n.Distance)
		}
		attrs := []string{
			fmt.Sprintf("label=%q", label),
			pos(n.X, n.Y),
			fmt.Sprintf("fillcolor=%q", fill(n.Color)),
		}
		if n.IsStart {
			attrs = append(attrs, "penwidth=2.5")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		stroke, ok := edgeStroke[e.Color]
		if !ok {
			stroke = edgeStroke[trace.EdgeDefault]
		}
		attrs := []string{
			fmt.Sprintf("color=%q", stroke.color),
			fmt.Sprintf("penwidth=%s", trace.Num(stroke.width)),
		}
		if e.Weight != nil {
			attrs = append(attrs, fmt.Sprintf("label=%q", trace.Num(*e.Weight)))
		}
		if directed && !e.Directed {
			attrs = append(attrs, "dir=none")
		}
		fmt.Fprintf(&buf, "  %q %s %q [%s];\n", e.Source, arrow, e.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func treeDOT(step trace.Step, opts Options) string {
	t := step.Tree

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	header(&buf, step, opts)
	buf.WriteString("  node [style=filled, fillcolor=\"#f8fafc\", fontsize=14, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [fontsize=11, fontname=\"Helvetica\", arrowhead=none];\n")
	buf.WriteString("\n")

	for _, n := range t.Nodes {
		attrs := []string{
			fmt.Sprintf("label=%q", treeLabel(n, opts.Detailed)),
			pos(n.X, n.Y),
		}
		if n.Leaf {
			attrs = append(attrs, "shape=box", "style=\"rounded,filled\"")
		} else {
			attrs = append(attrs, "shape=circle")
		}
		if n.Highlight {
			attrs = append(attrs, "fillcolor=\"#fde68a\"", "penwidth=2.5")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range t.Edges {
		fmt.Fprintf(&buf, "  n%d -> n%d [label=%q];\n", e.From, e.To, e.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func header(buf *bytes.Buffer, step trace.Step, opts Options) {
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Detailed && step.Message != "" {
		fmt.Fprintf(buf, "  label=%q;\n", step.Message)
		buf.WriteString("  labelloc=b;\n")
		buf.WriteString("  fontname=\"Helvetica\";\n")
	}
}

func treeLabel(n trace.TreeNode, detailed bool) string {
	switch {
	case n.Leaf && detailed:
		return fmt.Sprintf("%s:%d", n.Label, n.Weight)
	case n.Leaf:
		return n.Label
	default:
		return fmt.Sprintf("%d", n.Weight)
	}
}

func pos(x, y float64) string {
	return fmt.Sprintf("pos=\"%.2f,%.2f!\"", x/pixelsPerInch, -y/pixelsPerInch)
}

func fill(c trace.NodeColor) string {
	if f, ok := nodeFill[c]; ok {
		return f
	}
	return nodeFill[trace.NodeDefault]
}

func distance(d *float64) string {
	if d == nil {
		return "inf"
	}
	return trace.Num(*d)
}
