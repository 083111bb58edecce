package graphs

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/input"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// BFSListing is the pseudocode shown next to breadth-first search traces.
var BFSListing = []string{
	"function bfs(graph, start):",
	"  queue = [start]; visited = {start}",
	"  while queue is not empty:",
	"    node = queue.dequeue()",
	"    visit(node)",
	"    for neighbor in graph[node]:",
	"      if neighbor not in visited:",
	"        visited.add(neighbor)",
	"        queue.enqueue(neighbor)",
	"  return order",
}

const (
	bfsInit     = 2
	bfsLoop     = 3
	bfsDequeue  = 4
	bfsVisit    = 5
	bfsNeighbor = 6
	bfsCheck    = 7
	bfsEnqueue  = 9
	bfsDone     = 10
)

// BFS traces breadth-first search of g from start.
func BFS(g *input.Graph, start string) trace.Trace {
	s := newScene(g, start)
	if !g.HasNode(start) {
		return missingStart(NameBFS, s)
	}
	rec := trace.NewRecorder(trace.Budget(len(g.Nodes)+g.EdgeCount(), 6))
	m := newMarks()
	seen := map[string]bool{start: true}
	queue := []string{start}
	var order []string

	emit := func(line int, msg string) {
		rec.Emit(trace.GraphStep(line, msg, s.snapshot(m),
			listPanel("queue", queue),
			s.setPanel("visited", seen),
			listPanel("order", order)))
	}

	m.frontier[start] = true
	emit(bfsInit, fmt.Sprintf("Start at %s: enqueue it and mark it visited.", start))

	for !rec.Halted() {
		if len(queue) == 0 {
			if m.current != "" {
				m.visited[m.current] = true
			}
			m.current, m.active = "", ""
			emit(bfsLoop, "The queue is empty.")
			break
		}
		emit(bfsLoop, fmt.Sprintf("The queue holds %d node(s).", len(queue)))

		node := queue[0]
		queue = queue[1:]
		delete(m.frontier, node)
		if m.current != "" {
			m.visited[m.current] = true
		}
		m.current, m.active = node, ""
		emit(bfsDequeue, fmt.Sprintf("Dequeue %s.", node))

		order = append(order, node)
		emit(bfsVisit, fmt.Sprintf("Visit %s; order so far: %s.", node, joinIDs(order)))

		for _, nb := range g.Adj[node] {
			m.active = edgeKey(node, nb.ID)
			emit(bfsNeighbor, fmt.Sprintf("Look at the edge %s -> %s.", node, nb.ID))
			if seen[nb.ID] {
				emit(bfsCheck, fmt.Sprintf("%s was already discovered; skip it.", nb.ID))
				continue
			}
			emit(bfsCheck, fmt.Sprintf("%s has not been discovered yet.", nb.ID))
			seen[nb.ID] = true
			queue = append(queue, nb.ID)
			m.frontier[nb.ID] = true
			m.tree[edgeKey(node, nb.ID)] = true
			emit(bfsEnqueue, fmt.Sprintf("Mark %s visited and enqueue it.", nb.ID))
		}
		m.active = ""
	}

	if m.current != "" {
		m.visited[m.current] = true
		m.current = ""
	}
	emit(bfsDone, fmt.Sprintf("Breadth-first order: %s.", joinIDs(order)))
	return trace.Trace{Algorithm: NameBFS, Steps: rec.Steps()}
}
