package trace

// =============================================================================
// Constants
// =============================================================================

// Kind discriminates the payload carried by a [Step].
type Kind string

// Step kinds.
const (
	KindArray Kind = "array"
	KindGraph Kind = "graph"
	KindTable Kind = "table"
	KindPeg   Kind = "peg"
	KindTree  Kind = "tree"
)

// NoLine marks a step that highlights no source line.
const NoLine = 0

// =============================================================================
// Step - Unified Replay Unit
// =============================================================================

// Step is one immutable snapshot in a trace.
//
// Exactly one payload pointer matching Kind is non-nil. Construct steps with
// the kind-specific helpers ([ArrayStep], [GraphStep], ...) so the
// discriminator and payload never disagree.
type Step struct {
	Kind    Kind    `json:"kind" yaml:"kind"`
	Line    int     `json:"line,omitempty" yaml:"line,omitempty"`
	Message string  `json:"message" yaml:"message"`
	Panels  []Panel `json:"panels,omitempty" yaml:"panels,omitempty"`

	Array *ArrayState `json:"array,omitempty" yaml:"array,omitempty"`
	Graph *GraphState `json:"graph,omitempty" yaml:"graph,omitempty"`
	Table *TableState `json:"table,omitempty" yaml:"table,omitempty"`
	Peg   *PegState   `json:"peg,omitempty" yaml:"peg,omitempty"`
	Tree  *TreeState  `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// HasLine reports whether the step highlights a source line.
func (s Step) HasLine() bool { return s.Line != NoLine }

// Panel is a named list of display strings shown next to the main view,
// such as a BFS queue or a Huffman frequency table.
type Panel struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

// ArrayStep builds an array step.
func ArrayStep(line int, msg string, st ArrayState, panels ...Panel) Step {
	return Step{Kind: KindArray, Line: line, Message: msg, Array: &st, Panels: panels}
}

// GraphStep builds a graph step.
func GraphStep(line int, msg string, st GraphState, panels ...Panel) Step {
	return Step{Kind: KindGraph, Line: line, Message: msg, Graph: &st, Panels: panels}
}

// TableStep builds a table step.
func TableStep(line int, msg string, st TableState, panels ...Panel) Step {
	return Step{Kind: KindTable, Line: line, Message: msg, Table: &st, Panels: panels}
}

// PegStep builds a peg step.
func PegStep(line int, msg string, st PegState, panels ...Panel) Step {
	return Step{Kind: KindPeg, Line: line, Message: msg, Peg: &st, Panels: panels}
}

// TreeStep builds a tree step.
func TreeStep(line int, msg string, st TreeState, panels ...Panel) Step {
	return Step{Kind: KindTree, Line: line, Message: msg, Tree: &st, Panels: panels}
}

// =============================================================================
// Array
// =============================================================================

// Span is an inclusive index range [Start, End].
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// ArrayState is the snapshot carried by array steps (search and sort).
type ArrayState struct {
	Values   []float64 `json:"values" yaml:"values"`
	Active   []int     `json:"active,omitempty" yaml:"active,omitempty"`
	Swapping []int     `json:"swapping,omitempty" yaml:"swapping,omitempty"`
	// Sorted flags finalized cells. Search generators reuse it for the
	// found index.
	Sorted []int `json:"sorted,omitempty" yaml:"sorted,omitempty"`
	Range  *Span `json:"range,omitempty" yaml:"range,omitempty"`
	Pivot  *int  `json:"pivot,omitempty" yaml:"pivot,omitempty"`
	Result *int  `json:"result,omitempty" yaml:"result,omitempty"`
}

// =============================================================================
// Graph
// =============================================================================

// NodeColor is the visual state of a graph node.
type NodeColor string

// Node colors, recomputed from algorithm state at every step.
const (
	NodeDefault  NodeColor = "default"
	NodeStart    NodeColor = "start"
	NodeVisiting NodeColor = "visiting"
	NodeFrontier NodeColor = "frontier"
	NodeVisited  NodeColor = "visited"
)

// EdgeColor is the visual state of a graph edge.
type EdgeColor string

// Edge colors.
const (
	EdgeDefault EdgeColor = "default"
	EdgeActive  EdgeColor = "active"
	EdgeTree    EdgeColor = "tree"
)

// GraphNode is a positioned node in a graph snapshot.
type GraphNode struct {
	ID      string    `json:"id" yaml:"id"`
	Label   string    `json:"label" yaml:"label"`
	X       float64   `json:"x" yaml:"x"`
	Y       float64   `json:"y" yaml:"y"`
	Color   NodeColor `json:"color" yaml:"color"`
	IsStart bool      `json:"is_start,omitempty" yaml:"is_start,omitempty"`
	// Distance is nil while the node is unreached (infinite distance).
	Distance *float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// GraphEdge is an edge in a graph snapshot.
type GraphEdge struct {
	ID       string    `json:"id" yaml:"id"`
	Source   string    `json:"source" yaml:"source"`
	Target   string    `json:"target" yaml:"target"`
	Weight   *float64  `json:"weight,omitempty" yaml:"weight,omitempty"`
	Color    EdgeColor `json:"color" yaml:"color"`
	Directed bool      `json:"directed" yaml:"directed"`
}

// GraphState is the snapshot carried by graph steps.
type GraphState struct {
	Nodes []GraphNode `json:"nodes" yaml:"nodes"`
	Edges []GraphEdge `json:"edges" yaml:"edges"`
}

// Node returns the node with the given ID.
func (g *GraphState) Node(id string) (GraphNode, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return GraphNode{}, false
}

// =============================================================================
// Table
// =============================================================================

// CellRole describes why a table cell is highlighted.
type CellRole string

// Cell roles.
const (
	RoleCurrent    CellRole = "current"
	RoleDependency CellRole = "dependency"
	RoleResult     CellRole = "result"
)

// Cell is a highlighted table coordinate.
type Cell struct {
	Row  int      `json:"row" yaml:"row"`
	Col  int      `json:"col" yaml:"col"`
	Role CellRole `json:"role" yaml:"role"`
}

// TableState is the snapshot carried by dynamic-programming steps.
type TableState struct {
	Cells      [][]int  `json:"cells" yaml:"cells"`
	Rows       int      `json:"rows" yaml:"rows"`
	Cols       int      `json:"cols" yaml:"cols"`
	RowLabels  []string `json:"row_labels,omitempty" yaml:"row_labels,omitempty"`
	ColLabels  []string `json:"col_labels,omitempty" yaml:"col_labels,omitempty"`
	Highlights []Cell   `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	Result     *int     `json:"result,omitempty" yaml:"result,omitempty"`
	ResultText string   `json:"result_text,omitempty" yaml:"result_text,omitempty"`
	Selected   []int    `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// =============================================================================
// Peg
// =============================================================================

// PegPhase tags what a peg step shows.
type PegPhase string

// Peg phases.
const (
	PegInit  PegPhase = "init"
	PegEnter PegPhase = "enter"
	PegMove  PegPhase = "move"
	PegExit  PegPhase = "exit"
	PegDone  PegPhase = "done"
)

// Move is a single disk movement.
type Move struct {
	Disk int    `json:"disk" yaml:"disk"`
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Call is the signature of a simulated recursive call.
type Call struct {
	Disks int    `json:"disks" yaml:"disks"`
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Via   string `json:"via" yaml:"via"`
	Depth int    `json:"depth" yaml:"depth"`
}

// PegState is the snapshot carried by peg steps. Disk stacks are ordered
// bottom to top.
type PegState struct {
	Pegs  map[string][]int `json:"pegs" yaml:"pegs"`
	Phase PegPhase         `json:"phase" yaml:"phase"`
	Move  *Move            `json:"move,omitempty" yaml:"move,omitempty"`
	Call  *Call            `json:"call,omitempty" yaml:"call,omitempty"`
}

// =============================================================================
// Tree
// =============================================================================

// TreePhase tags the construction phase of a tree step.
type TreePhase string

// Huffman coding phases.
const (
	PhaseFrequency TreePhase = "frequency_calculation"
	PhaseQueue     TreePhase = "pq_initialization"
	PhaseBuild     TreePhase = "tree_construction"
	PhaseCodes     TreePhase = "code_generation"
	PhaseDone      TreePhase = "done"
)

// TreeNode is a positioned binary-tree node.
type TreeNode struct {
	ID        int     `json:"id" yaml:"id"`
	Label     string  `json:"label" yaml:"label"`
	Weight    int     `json:"weight" yaml:"weight"`
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	Leaf      bool    `json:"leaf,omitempty" yaml:"leaf,omitempty"`
	Highlight bool    `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

// TreeEdge connects a parent to a child; Label is the bit on that edge.
type TreeEdge struct {
	From  int    `json:"from" yaml:"from"`
	To    int    `json:"to" yaml:"to"`
	Label string `json:"label" yaml:"label"`
}

// TreeState is the snapshot carried by tree steps.
type TreeState struct {
	Phase TreePhase         `json:"phase" yaml:"phase"`
	Nodes []TreeNode        `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Edges []TreeEdge        `json:"edges,omitempty" yaml:"edges,omitempty"`
	Codes map[string]string `json:"codes,omitempty" yaml:"codes,omitempty"`
}

// =============================================================================
// Trace
// =============================================================================

// Trace is the output of one generator invocation.
type Trace struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Steps     []Step `json:"steps" yaml:"steps"`
	// Reordered is set when a generator had to sort its input to satisfy a
	// sortedness precondition.
	Reordered bool `json:"reordered,omitempty" yaml:"reordered,omitempty"`
}

// Len returns the number of steps.
func (t Trace) Len() int { return len(t.Steps) }

// Last returns the final step, or false for an empty trace.
func (t Trace) Last() (Step, bool) {
	if len(t.Steps) == 0 {
		return Step{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}
