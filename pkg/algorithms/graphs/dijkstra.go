package graphs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/algotrace/pkg/input"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// DijkstraListing is the pseudocode shown next to Dijkstra traces.
var DijkstraListing = []string{
	"function dijkstra(graph, source):",
	"  dist[v] = infinity for every v; dist[source] = 0",
	"  pq = {source: 0}",
	"  while pq is not empty:",
	"    u = node in pq with the smallest dist",
	"    mark u as processed",
	"    for (v, w) in graph[u]:",
	"      if dist[u] + w < dist[v]:",
	"        dist[v] = dist[u] + w",
	"        pq.update(v, dist[v])",
	"  return dist",
}

const (
	djInit    = 2
	djQueue   = 3
	djLoop    = 4
	djExtract = 5
	djProcess = 6
	djEdge    = 7
	djRelax   = 8
	djUpdate  = 9
	djPush    = 10
	djDone    = 11
)

// Dijkstra traces single-source shortest paths from source. Unweighted
// edges count as weight 1.
//
// The priority queue is every unprocessed node with a finite distance,
// ordered by distance and then by node order, so extraction ties resolve
// deterministically. When the queue runs dry while nodes remain, a
// narration step names the unreachable nodes before the final step.
func Dijkstra(g *input.Graph, source string) trace.Trace {
	s := newScene(g, source)
	if !g.HasNode(source) {
		return missingStart(NameDijkstra, s)
	}
	rec := trace.NewRecorder(trace.Budget(len(g.Nodes)+g.EdgeCount(), 6))
	m := newMarks()
	m.dist = map[string]float64{source: 0}
	prev := make(map[string]string)

	frontier := func() []string {
		var ids []string
		for _, id := range g.Nodes {
			if _, ok := m.dist[id]; ok && !m.visited[id] {
				ids = append(ids, id)
			}
		}
		slices.SortStableFunc(ids, func(a, b string) int {
			return cmp.Compare(m.dist[a], m.dist[b])
		})
		return ids
	}
	emit := func(line int, msg string) {
		pq := frontier()
		clear(m.frontier)
		items := make([]string, 0, len(pq))
		for _, id := range pq {
			if id != m.current {
				m.frontier[id] = true
			}
			items = append(items, fmt.Sprintf("%s: %s", id, trace.Num(m.dist[id])))
		}
		dists := make([]string, 0, len(g.Nodes))
		for _, id := range g.Nodes {
			d := "inf"
			if v, ok := m.dist[id]; ok {
				d = trace.Num(v)
			}
			dists = append(dists, fmt.Sprintf("%s: %s", id, d))
		}
		rec.Emit(trace.GraphStep(line, msg, s.snapshot(m),
			trace.Panel{Name: "priority queue", Items: items},
			trace.Panel{Name: "distances", Items: dists},
			s.setPanel("processed", m.visited)))
	}

	emit(djInit, fmt.Sprintf("Every distance starts at infinity except dist[%s] = 0.", source))
	emit(djQueue, fmt.Sprintf("Put %s into the priority queue.", source))

	guard := trace.NewGuard(len(g.Nodes) + 1)
	for !rec.Halted() {
		pq := frontier()
		if len(pq) == 0 {
			m.current, m.active = "", ""
			emit(djLoop, "The priority queue is empty.")
			var unreachable []string
			for _, id := range g.Nodes {
				if !m.visited[id] {
					unreachable = append(unreachable, id)
				}
			}
			if len(unreachable) > 0 {
				emit(trace.NoLine, fmt.Sprintf("Unreachable from %s: %s. Their distance stays infinite.", source, joinIDs(unreachable)))
			}
			break
		}
		if !guard.Next() {
			rec.Diagnose(trace.GraphStep(0, "", s.snapshot(m)),
				fmt.Sprintf("Stopped after %d extractions: more than the graph has nodes.", guard.Limit()))
			break
		}
		emit(djLoop, fmt.Sprintf("The priority queue holds %d node(s).", len(pq)))

		u := pq[0]
		m.current, m.active = u, ""
		emit(djExtract, fmt.Sprintf("Extract %s with the smallest distance %s.", u, trace.Num(m.dist[u])))

		m.visited[u] = true
		if p, ok := prev[u]; ok {
			m.tree[edgeKey(p, u)] = true
		}
		emit(djProcess, fmt.Sprintf("%s is processed; dist[%s] = %s is final.", u, u, trace.Num(m.dist[u])))

		for _, nb := range g.Adj[u] {
			w := nb.Weight
			if !nb.Weighted {
				w = 1
			}
			m.active = edgeKey(u, nb.ID)
			emit(djEdge, fmt.Sprintf("Edge %s -> %s with weight %s.", u, nb.ID, trace.Num(w)))

			if m.visited[nb.ID] {
				emit(djRelax, fmt.Sprintf("%s is already processed.", nb.ID))
				continue
			}
			cand := m.dist[u] + w
			old, known := m.dist[nb.ID]
			if known && cand >= old {
				emit(djRelax, fmt.Sprintf("%s + %s = %s is not shorter than dist[%s] = %s.",
					trace.Num(m.dist[u]), trace.Num(w), trace.Num(cand), nb.ID, trace.Num(old)))
				continue
			}
			before := "infinity"
			if known {
				before = trace.Num(old)
			}
			emit(djRelax, fmt.Sprintf("%s + %s = %s is shorter than dist[%s] = %s.",
				trace.Num(m.dist[u]), trace.Num(w), trace.Num(cand), nb.ID, before))
			m.dist[nb.ID] = cand
			prev[nb.ID] = u
			emit(djUpdate, fmt.Sprintf("dist[%s] = %s.", nb.ID, trace.Num(cand)))
			emit(djPush, fmt.Sprintf("Update %s in the priority queue.", nb.ID))
		}
		m.active = ""
		m.current = ""
	}

	m.current, m.active = "", ""
	emit(djDone, "Shortest distances are final.")
	return trace.Trace{Algorithm: NameDijkstra, Steps: rec.Steps()}
}

// Distances extracts the final distance per node from a Dijkstra trace.
// Unreached nodes are absent from the result.
func Distances(t trace.Trace) map[string]float64 {
	out := make(map[string]float64)
	last, ok := t.Last()
	if !ok || last.Graph == nil {
		return out
	}
	for _, n := range last.Graph.Nodes {
		if n.Distance != nil {
			out[n.ID] = *n.Distance
		}
	}
	return out
}
