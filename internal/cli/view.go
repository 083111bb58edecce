package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// =============================================================================
// Listing
// =============================================================================

// renderListing numbers the pseudocode and marks line (1-based; 0 marks
// nothing).
func renderListing(listing []string, line int) string {
	var b strings.Builder
	width := len(fmt.Sprint(len(listing)))
	for i, text := range listing {
		num := fmt.Sprintf("%*d", width, i+1)
		if i+1 == line {
			b.WriteString(styleLine.Render(iconCursor + " " + num + "  " + text))
		} else {
			b.WriteString("  " + StyleDim.Render(num) + "  " + text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Step Payloads
// =============================================================================

// renderStep draws a step's payload and panels as styled text.
func renderStep(s trace.Step) string {
	var body string
	switch {
	case s.Array != nil:
		body = renderArray(s.Array)
	case s.Graph != nil:
		body = renderGraph(s.Graph)
	case s.Table != nil:
		body = renderTable(s.Table)
	case s.Peg != nil:
		body = renderPegs(s.Peg)
	case s.Tree != nil:
		body = renderTree(s.Tree)
	}
	if panels := renderPanels(s.Panels); panels != "" {
		body += "\n" + panels
	}
	return body
}

func renderArray(a *trace.ArrayState) string {
	if len(a.Values) == 0 {
		return StyleDim.Render("(empty)")
	}
	width := 1
	for _, v := range a.Values {
		width = max(width, len(trace.Num(v)))
	}

	var vals, idx []string
	for i, v := range a.Values {
		cell := fmt.Sprintf("%*s", width, trace.Num(v))
		vals = append(vals, arrayStyle(a, i).Render(cell))
		idx = append(idx, StyleDim.Render(fmt.Sprintf("%*d", width, i)))
	}
	out := strings.Join(vals, " ") + "\n" + strings.Join(idx, " ")
	if a.Result != nil {
		out += "\n" + styleSorted.Render(fmt.Sprintf("result: index %d", *a.Result))
	}
	return out
}

func arrayStyle(a *trace.ArrayState, i int) lipgloss.Style {
	switch {
	case slices.Contains(a.Swapping, i):
		return styleSwapping
	case slices.Contains(a.Active, i):
		return styleActive
	case a.Pivot != nil && *a.Pivot == i:
		return stylePivot
	case slices.Contains(a.Sorted, i):
		return styleSorted
	case a.Range != nil && (i < a.Range.Start || i > a.Range.End):
		return styleOutside
	default:
		return StyleValue
	}
}

var nodeOrder = []trace.NodeColor{trace.NodeVisiting, trace.NodeFrontier, trace.NodeVisited, trace.NodeStart}

func renderGraph(g *trace.GraphState) string {
	byColor := make(map[trace.NodeColor][]string)
	var dists []string
	for _, n := range g.Nodes {
		byColor[n.Color] = append(byColor[n.Color], n.Label)
		if n.Distance != nil {
			dists = append(dists, n.Label+"="+trace.Num(*n.Distance))
		} else if hasDistances(g) {
			dists = append(dists, n.Label+"=inf")
		}
	}

	var lines []string
	for _, c := range nodeOrder {
		if ids := byColor[c]; len(ids) > 0 {
			lines = append(lines, styleKey.Render(string(c))+" "+nodeStyle(c).Render(strings.Join(ids, ", ")))
		}
	}
	for _, e := range g.Edges {
		if e.Color == trace.EdgeActive {
			lines = append(lines, styleKey.Render("edge")+" "+styleActive.Render(e.Source+" "+iconArrow+" "+e.Target))
		}
	}
	if len(dists) > 0 {
		lines = append(lines, styleKey.Render("distance")+" "+strings.Join(dists, "  "))
	}
	return strings.Join(lines, "\n")
}

func hasDistances(g *trace.GraphState) bool {
	return slices.ContainsFunc(g.Nodes, func(n trace.GraphNode) bool { return n.Distance != nil })
}

func nodeStyle(c trace.NodeColor) lipgloss.Style {
	switch c {
	case trace.NodeVisiting:
		return styleActive
	case trace.NodeFrontier:
		return styleSwapping
	case trace.NodeVisited:
		return styleSorted
	default:
		return StyleValue
	}
}

func renderTable(tb *trace.TableState) string {
	roles := make(map[[2]int]trace.CellRole, len(tb.Highlights))
	for _, h := range tb.Highlights {
		roles[[2]int{h.Row, h.Col}] = h.Role
	}

	headers := append([]string{""}, tb.ColLabels...)
	rows := make([][]string, tb.Rows)
	for r := range tb.Rows {
		label := ""
		if r < len(tb.RowLabels) {
			label = tb.RowLabels[r]
		}
		row := []string{label}
		for c := range tb.Cols {
			row = append(row, fmt.Sprint(tb.Cells[r][c]))
		}
		rows[r] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow || col == 0 {
				return base.Foreground(colorGray)
			}
			switch roles[[2]int{row, col - 1}] {
			case trace.RoleCurrent:
				return base.Inherit(styleActive)
			case trace.RoleDependency:
				return base.Inherit(stylePivot)
			case trace.RoleResult:
				return base.Inherit(styleSorted).Bold(true)
			}
			return base
		})

	out := t.Render()
	if tb.ResultText != "" {
		out += "\n" + styleSorted.Render("result: "+tb.ResultText)
	} else if tb.Result != nil {
		out += "\n" + styleSorted.Render(fmt.Sprintf("result: %d", *tb.Result))
	}
	return out
}

func renderPegs(p *trace.PegState) string {
	var lines []string
	for _, name := range slices.Sorted(maps.Keys(p.Pegs)) {
		disks := make([]string, len(p.Pegs[name]))
		for i, d := range p.Pegs[name] {
			disks[i] = fmt.Sprint(d)
		}
		lines = append(lines, styleKey.Render("peg "+name)+" "+StyleValue.Render(strings.Join(disks, " ")))
	}
	if p.Move != nil {
		lines = append(lines, styleKey.Render("move")+" "+
			styleActive.Render(fmt.Sprintf("disk %d %s %s %s", p.Move.Disk, p.Move.From, iconArrow, p.Move.To)))
	}
	if p.Call != nil {
		lines = append(lines, styleKey.Render("call")+" "+
			StyleDim.Render(fmt.Sprintf("hanoi(%d, %s, %s, %s) depth %d", p.Call.Disks, p.Call.From, p.Call.To, p.Call.Via, p.Call.Depth)))
	}
	return strings.Join(lines, "\n")
}

func renderTree(t *trace.TreeState) string {
	lines := []string{styleKey.Render("phase") + " " + StyleValue.Render(string(t.Phase))}

	var nodes []string
	for _, n := range t.Nodes {
		label := fmt.Sprintf("(%d)", n.Weight)
		if n.Leaf {
			label = fmt.Sprintf("%s:%d", n.Label, n.Weight)
		}
		if n.Highlight {
			label = styleActive.Render(label)
		}
		nodes = append(nodes, label)
	}
	if len(nodes) > 0 {
		lines = append(lines, styleKey.Render("nodes")+" "+strings.Join(nodes, " "))
	}

	if len(t.Codes) > 0 {
		var codes []string
		for _, sym := range slices.Sorted(maps.Keys(t.Codes)) {
			codes = append(codes, sym+"="+t.Codes[sym])
		}
		lines = append(lines, styleKey.Render("codes")+" "+styleSorted.Render(strings.Join(codes, " ")))
	}
	return strings.Join(lines, "\n")
}

func renderPanels(panels []trace.Panel) string {
	lines := make([]string, 0, len(panels))
	for _, p := range panels {
		items := StyleDim.Render("(empty)")
		if len(p.Items) > 0 {
			items = strings.Join(p.Items, ", ")
		}
		lines = append(lines, styleKey.Render(p.Name)+" "+items)
	}
	return strings.Join(lines, "\n")
}
