package graphs

import (
	"fmt"
	"slices"

	"github.com/matzehuels/algotrace/pkg/input"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// DFSListing is the pseudocode shown next to depth-first search traces.
var DFSListing = []string{
	"function dfs(graph, start):",
	"  stack = [start]",
	"  while stack is not empty:",
	"    node = stack.pop()",
	"    if node in visited: continue",
	"    visited.add(node); visit(node)",
	"    for neighbor in graph[node]:",
	"      if neighbor not in visited:",
	"        stack.push(neighbor)",
	"  return order",
}

const (
	dfsInit     = 2
	dfsLoop     = 3
	dfsPop      = 4
	dfsSkip     = 5
	dfsVisit    = 6
	dfsNeighbor = 7
	dfsCheck    = 8
	dfsPush     = 9
	dfsDone     = 10
)

// DFS traces iterative depth-first search of g from start. The graph is
// expected to be parsed with [input.WithReversedNeighbors] so that the
// stack pops neighbors in the order they were written, which is the order a
// recursive traversal would visit them.
func DFS(g *input.Graph, start string) trace.Trace {
	s := newScene(g, start)
	if !g.HasNode(start) {
		return missingStart(NameDFS, s)
	}
	rec := trace.NewRecorder(trace.Budget(len(g.Nodes)+g.EdgeCount(), 7))
	m := newMarks()
	visited := make(map[string]bool)
	parent := make(map[string]string)
	stack := []string{start}
	var order []string

	emit := func(line int, msg string) {
		top := slices.Clone(stack)
		slices.Reverse(top)
		rec.Emit(trace.GraphStep(line, msg, s.snapshot(m),
			listPanel("stack", top),
			s.setPanel("visited", visited),
			listPanel("order", order)))
	}
	refreshFrontier := func() {
		clear(m.frontier)
		for _, id := range stack {
			if !visited[id] {
				m.frontier[id] = true
			}
		}
	}

	refreshFrontier()
	emit(dfsInit, fmt.Sprintf("Push the start node %s.", start))

	for !rec.Halted() {
		if len(stack) == 0 {
			m.current, m.active = "", ""
			emit(dfsLoop, "The stack is empty.")
			break
		}
		emit(dfsLoop, fmt.Sprintf("The stack holds %d node(s).", len(stack)))

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		m.current, m.active = node, ""
		refreshFrontier()
		emit(dfsPop, fmt.Sprintf("Pop %s.", node))

		if visited[node] {
			m.current = ""
			emit(dfsSkip, fmt.Sprintf("%s was already visited; skip it.", node))
			continue
		}
		visited[node] = true
		m.visited[node] = true
		order = append(order, node)
		if p, ok := parent[node]; ok {
			m.tree[edgeKey(p, node)] = true
		}
		emit(dfsVisit, fmt.Sprintf("Visit %s; order so far: %s.", node, joinIDs(order)))

		for _, nb := range g.Adj[node] {
			m.active = edgeKey(node, nb.ID)
			emit(dfsNeighbor, fmt.Sprintf("Look at the edge %s -> %s.", node, nb.ID))
			if visited[nb.ID] {
				emit(dfsCheck, fmt.Sprintf("%s was already visited; skip it.", nb.ID))
				continue
			}
			emit(dfsCheck, fmt.Sprintf("%s has not been visited yet.", nb.ID))
			stack = append(stack, nb.ID)
			parent[nb.ID] = node
			refreshFrontier()
			emit(dfsPush, fmt.Sprintf("Push %s.", nb.ID))
		}
		m.active = ""
		m.current = ""
	}

	emit(dfsDone, fmt.Sprintf("Depth-first order: %s.", joinIDs(order)))
	return trace.Trace{Algorithm: NameDFS, Steps: rec.Steps()}
}
