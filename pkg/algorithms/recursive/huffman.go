package recursive

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/algotrace/pkg/layout"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// HuffmanListing is the pseudocode shown next to Huffman coding traces.
var HuffmanListing = []string{
	"function huffman(text):",
	"  freq = count of every character in text",
	"  pq = one leaf per character, ordered by (frequency, character)",
	"  while len(pq) > 1:",
	"    left = pq.popMin(); right = pq.popMin()",
	"    parent = node(left.freq + right.freq, left, right)",
	"    pq.push(parent)",
	"  root = pq.pop(); stack = [(root, \"\")]",
	"  while stack is not empty:",
	"    node, code = stack.pop()",
	"    if node is a leaf: codes[node.char] = code",
	"    else: push (node.right, code + \"1\"), (node.left, code + \"0\")",
	"  return codes",
}

const (
	hfCount  = 2
	hfQueue  = 3
	hfLoop   = 4
	hfPop    = 5
	hfMerge  = 6
	hfPush   = 7
	hfRoot   = 8
	hfCodes  = 9
	hfVisit  = 10
	hfLeaf   = 11
	hfBranch = 12
	hfReturn = 13
)

// idCounter hands out node IDs for one invocation. Creation order doubles
// as the tie-break between nodes of equal weight.
type idCounter struct{ next int }

func (c *idCounter) take() int {
	id := c.next
	c.next++
	return id
}

// hnode is a Huffman tree node; ID equals its index in huffman.nodes.
type hnode struct {
	id          int
	weight      int
	sym         string
	leaf        bool
	left, right int
}

// huffman is the state of one invocation.
type huffman struct {
	rec   *trace.Recorder
	ids   idCounter
	nodes []hnode
	pq    []int
	codes map[string]string
}

func (h *huffman) newNode(n hnode) int {
	n.id = h.ids.take()
	h.nodes = append(h.nodes, n)
	return n.id
}

func (h *huffman) less(a, b int) int {
	na, nb := h.nodes[a], h.nodes[b]
	if c := cmp.Compare(na.weight, nb.weight); c != 0 {
		return c
	}
	return cmp.Compare(na.id, nb.id)
}

func (h *huffman) children(id int) (int, int, bool, bool) {
	n := h.nodes[id]
	if n.leaf {
		return 0, 0, false, false
	}
	return n.left, n.right, true, true
}

func (h *huffman) label(id int) string {
	n := h.nodes[id]
	if n.leaf {
		return fmt.Sprintf("%q:%d", n.sym, n.weight)
	}
	return "#" + strconv.Itoa(n.id) + ":" + strconv.Itoa(n.weight)
}

// snapshot lays out the forest rooted at roots from scratch.
func (h *huffman) snapshot(phase trace.TreePhase, roots []int, hl ...int) trace.TreeState {
	pos := layout.Forest(roots, h.children, layout.DefaultFrame(), layout.DefaultLevelHeight)
	st := trace.TreeState{Phase: phase}
	for _, n := range h.nodes {
		p, ok := pos[n.id]
		if !ok {
			continue
		}
		st.Nodes = append(st.Nodes, trace.TreeNode{
			ID:        n.id,
			Label:     n.sym,
			Weight:    n.weight,
			X:         p.X,
			Y:         p.Y,
			Leaf:      n.leaf,
			Highlight: slices.Contains(hl, n.id),
		})
		if !n.leaf {
			st.Edges = append(st.Edges,
				trace.TreeEdge{From: n.id, To: n.left, Label: "0"},
				trace.TreeEdge{From: n.id, To: n.right, Label: "1"})
		}
	}
	if len(h.codes) > 0 {
		st.Codes = h.codes
	}
	return st
}

func (h *huffman) queuePanel() trace.Panel {
	items := make([]string, len(h.pq))
	for i, id := range h.pq {
		items[i] = h.label(id)
	}
	return trace.Panel{Name: "priority queue", Items: items}
}

func (h *huffman) codesPanel() trace.Panel {
	syms := make([]string, 0, len(h.codes))
	for s := range h.codes {
		syms = append(syms, s)
	}
	slices.Sort(syms)
	items := make([]string, len(syms))
	for i, s := range syms {
		items[i] = fmt.Sprintf("%q: %s", s, h.codes[s])
	}
	return trace.Panel{Name: "codes", Items: items}
}

// Huffman traces the construction of a Huffman code for text in four
// phases: frequency counting, priority queue initialization, tree
// construction and code assignment. Input with a single distinct character
// assigns it the code "0".
func Huffman(text string) trace.Trace {
	runes := []rune(text)
	h := &huffman{
		rec:   trace.NewRecorder(trace.Budget(len(runes), 12)),
		codes: make(map[string]string),
	}
	if len(runes) == 0 {
		h.rec.Emit(trace.TreeStep(trace.NoLine, "The text is empty, so there is nothing to encode.", trace.TreeState{Phase: trace.PhaseDone}))
		return trace.Trace{Algorithm: NameHuffman, Steps: h.rec.Steps()}
	}

	// Phase 1: frequencies in order of first appearance.
	freq := make(map[string]int)
	var order []string
	freqPanel := func() trace.Panel {
		items := make([]string, len(order))
		for i, s := range order {
			items[i] = fmt.Sprintf("%q: %d", s, freq[s])
		}
		return trace.Panel{Name: "frequencies", Items: items}
	}
	for i, r := range runes {
		s := string(r)
		if _, ok := freq[s]; !ok {
			order = append(order, s)
		}
		freq[s]++
		h.rec.Emit(trace.TreeStep(hfCount,
			fmt.Sprintf("Character %d is %q; its count is now %d.", i, s, freq[s]),
			trace.TreeState{Phase: trace.PhaseFrequency}, freqPanel()))
	}

	// Phase 2: one leaf per symbol, ordered by (frequency, symbol).
	syms := slices.Clone(order)
	slices.SortFunc(syms, func(a, b string) int {
		if c := cmp.Compare(freq[a], freq[b]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	for _, s := range syms {
		id := h.newNode(hnode{weight: freq[s], sym: s, leaf: true})
		h.pq = append(h.pq, id)
		h.rec.Emit(trace.TreeStep(hfQueue,
			fmt.Sprintf("Add leaf %q with frequency %d to the priority queue.", s, freq[s]),
			h.snapshot(trace.PhaseQueue, h.pq, id), h.queuePanel()))
	}

	// Phase 3: merge the two lightest subtrees until one remains.
	for !h.rec.Halted() {
		if len(h.pq) <= 1 {
			h.rec.Emit(trace.TreeStep(hfLoop, "One tree is left in the priority queue.",
				h.snapshot(trace.PhaseBuild, h.pq), h.queuePanel()))
			break
		}
		h.rec.Emit(trace.TreeStep(hfLoop, fmt.Sprintf("%d trees are in the priority queue.", len(h.pq)),
			h.snapshot(trace.PhaseBuild, h.pq), h.queuePanel()))

		left, right := h.pq[0], h.pq[1]
		h.rec.Emit(trace.TreeStep(hfPop,
			fmt.Sprintf("Take the two lightest: %s and %s.", h.label(left), h.label(right)),
			h.snapshot(trace.PhaseBuild, h.pq, left, right), h.queuePanel()))

		parent := h.newNode(hnode{weight: h.nodes[left].weight + h.nodes[right].weight, left: left, right: right})
		h.pq = append(h.pq[2:], parent)
		h.rec.Emit(trace.TreeStep(hfMerge,
			fmt.Sprintf("Join them under a new node of weight %d + %d = %d.", h.nodes[left].weight, h.nodes[right].weight, h.nodes[parent].weight),
			h.snapshot(trace.PhaseBuild, h.pq, parent, left, right), h.queuePanel()))

		slices.SortStableFunc(h.pq, h.less)
		h.rec.Emit(trace.TreeStep(hfPush,
			fmt.Sprintf("Push the new node into the priority queue at position %d.", slices.Index(h.pq, parent)),
			h.snapshot(trace.PhaseBuild, h.pq, parent), h.queuePanel()))
	}
	if h.rec.Halted() {
		return trace.Trace{Algorithm: NameHuffman, Steps: h.rec.Steps()}
	}

	// Phase 4: assign codes with an explicit stack.
	root := h.pq[0]
	roots := []int{root}
	type entry struct {
		id   int
		code string
	}
	stack := []entry{{id: root}}
	stackPanel := func() trace.Panel {
		items := make([]string, 0, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			code := stack[i].code
			if code == "" {
				code = `""`
			}
			items = append(items, fmt.Sprintf("%s %s", h.label(stack[i].id), code))
		}
		return trace.Panel{Name: "stack", Items: items}
	}
	h.rec.Emit(trace.TreeStep(hfRoot, fmt.Sprintf("The root has weight %d. Start assigning codes from it.", h.nodes[root].weight),
		h.snapshot(trace.PhaseCodes, roots, root), stackPanel(), h.codesPanel()))

	for !h.rec.Halted() {
		if len(stack) == 0 {
			h.rec.Emit(trace.TreeStep(hfCodes, "The stack is empty; every leaf has a code.",
				h.snapshot(trace.PhaseCodes, roots), stackPanel(), h.codesPanel()))
			break
		}
		h.rec.Emit(trace.TreeStep(hfCodes, fmt.Sprintf("Stack size: %d.", len(stack)),
			h.snapshot(trace.PhaseCodes, roots), stackPanel(), h.codesPanel()))

		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := h.nodes[e.id]
		h.rec.Emit(trace.TreeStep(hfVisit, fmt.Sprintf("Pop %s with code %q.", h.label(e.id), e.code),
			h.snapshot(trace.PhaseCodes, roots, e.id), stackPanel(), h.codesPanel()))

		if n.leaf {
			code := e.code
			if code == "" {
				code = "0"
			}
			h.codes[n.sym] = code
			h.rec.Emit(trace.TreeStep(hfLeaf, fmt.Sprintf("%q is a leaf: its code is %s.", n.sym, code),
				h.snapshot(trace.PhaseCodes, roots, e.id), stackPanel(), h.codesPanel()))
			continue
		}
		stack = append(stack, entry{id: n.right, code: e.code + "1"}, entry{id: n.left, code: e.code + "0"})
		h.rec.Emit(trace.TreeStep(hfBranch, fmt.Sprintf("Internal node: push its right child with %q and its left child with %q.", e.code+"1", e.code+"0"),
			h.snapshot(trace.PhaseCodes, roots, n.left, n.right), stackPanel(), h.codesPanel()))
	}

	var bits strings.Builder
	for _, r := range runes {
		bits.WriteString(h.codes[string(r)])
	}
	h.rec.Emit(trace.TreeStep(hfReturn,
		fmt.Sprintf("Encoded length: %d bits instead of %d with 8-bit characters.", bits.Len(), 8*len(runes)),
		h.snapshot(trace.PhaseDone, roots), h.codesPanel(), trace.Panel{Name: "encoded", Items: []string{bits.String()}}))
	return trace.Trace{Algorithm: NameHuffman, Steps: h.rec.Steps()}
}

// Codes returns the code table of the last step of a Huffman trace.
func Codes(t trace.Trace) map[string]string {
	last, ok := t.Last()
	if !ok || last.Tree == nil {
		return nil
	}
	return last.Tree.Codes
}
