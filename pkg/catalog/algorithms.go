package catalog

import (
	"github.com/matzehuels/algotrace/pkg/algorithms/dp"
	"github.com/matzehuels/algotrace/pkg/algorithms/graphs"
	"github.com/matzehuels/algotrace/pkg/algorithms/numeric"
	"github.com/matzehuels/algotrace/pkg/algorithms/recursive"
	"github.com/matzehuels/algotrace/pkg/algorithms/search"
	"github.com/matzehuels/algotrace/pkg/algorithms/sorting"
	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/input"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// Input limits that keep traces in the tens to hundreds of steps.
const (
	MaxArrayLength = 50
	MaxGraphNodes  = 26
	MaxTableText   = 20
	MaxItems       = 10
	MaxCapacity    = 50
	MaxGCDOperand  = 1_000_000_000
)

func init() {
	register(
		searchAlgorithm(search.NameLinear, "Linear Search", "Scan the array from left to right until the target is found.", search.LinearListing, search.Linear),
		searchAlgorithm(search.NameBinary, "Binary Search", "Halve a sorted range around its midpoint until the target is found.", search.BinaryListing, search.Binary),
		searchAlgorithm(search.NameTernary, "Ternary Search", "Split a sorted range at two midpoints and keep one third.", search.TernaryListing, search.Ternary),
		searchAlgorithm(search.NameJump, "Jump Search", "Jump through a sorted array in sqrt(n) blocks, then scan one block.", search.JumpListing, search.Jump),

		sortAlgorithm(sorting.NameHeap, "Heap Sort", "Build a max-heap and repeatedly move its root behind the heap.", sorting.HeapListing, sorting.Heap),
		sortAlgorithm(sorting.NameQuick, "Quicksort", "Partition around the last element and sort both sides.", sorting.QuickListing, sorting.Quick),
		sortAlgorithm(sorting.NameMerge, "Merge Sort", "Sort both halves and merge them.", sorting.MergeListing, sorting.Merge),
		&Algorithm{
			Name:        sorting.NameDutchFlag,
			Title:       "Dutch National Flag",
			Category:    CategorySorting,
			Kind:        trace.KindArray,
			Description: "Three-way partition into values below, equal to and above a pivot.",
			Listing:     sorting.DutchFlagListing,
			Params: []Param{
				{Name: "values", Type: TypeNumbers, Default: "2, 0, 2, 1, 1, 0", Description: "numbers to partition"},
				{Name: "pivot", Type: TypeNumber, Default: "1", Description: "middle value"},
			},
			generate: func(args map[string]string) (trace.Trace, error) {
				values, err := numbersArg(args, "values")
				if err != nil {
					return trace.Trace{}, err
				}
				pivot, err := numberArg(args, "pivot")
				if err != nil {
					return trace.Trace{}, err
				}
				return sorting.DutchFlag(values, pivot), nil
			},
		},

		&Algorithm{
			Name:        numeric.NameGCD,
			Title:       "Euclidean GCD",
			Category:    CategoryNumeric,
			Kind:        trace.KindArray,
			Description: "Replace (a, b) by (b, a mod b) until b is zero.",
			Listing:     numeric.GCDListing,
			Params: []Param{
				{Name: "a", Type: TypeInteger, Default: "48", Description: "first operand"},
				{Name: "b", Type: TypeInteger, Default: "18", Description: "second operand"},
			},
			generate: func(args map[string]string) (trace.Trace, error) {
				a, err := intArg(args, "a", 0, MaxGCDOperand)
				if err != nil {
					return trace.Trace{}, err
				}
				b, err := intArg(args, "b", 0, MaxGCDOperand)
				if err != nil {
					return trace.Trace{}, err
				}
				return numeric.GCD(int64(a), int64(b)), nil
			},
		},

		graphAlgorithm(graphs.NameBFS, "Breadth-First Search", "Visit nodes level by level using a queue.",
			"A:B,C;B:D,E;C:F;D:;E:F;F:", "A", graphs.BFSListing, nil, graphs.BFS),
		graphAlgorithm(graphs.NameDFS, "Depth-First Search", "Follow each branch as deep as possible using a stack.",
			"A:B,C;B:D,E;C:F;D:;E:F;F:", "A", graphs.DFSListing, []input.GraphOption{input.WithReversedNeighbors()}, graphs.DFS),
		graphAlgorithm(graphs.NameDijkstra, "Dijkstra's Shortest Paths", "Settle nodes in order of distance from the source.",
			"0:1(4),2(1);1:3(1);2:1(2),3(5);3:", "0", graphs.DijkstraListing, []input.GraphOption{input.WithRequiredWeights()}, graphs.Dijkstra),

		stringPairAlgorithm(dp.NameEditDistance, "Edit Distance", "Fewest insertions, deletions and substitutions turning a into b.",
			"kitten", "sitting", dp.EditDistanceListing, dp.EditDistance),
		stringPairAlgorithm(dp.NameLCS, "Longest Common Subsequence", "Longest sequence of characters appearing in order in both strings.",
			"ABCBDAB", "BDCABA", dp.LCSListing, dp.LCS),
		&Algorithm{
			Name:        dp.NameKnapsack,
			Title:       "0/1 Knapsack",
			Category:    CategoryDP,
			Kind:        trace.KindTable,
			Description: "Most valuable subset of items that fits the capacity.",
			Listing:     dp.KnapsackListing,
			Params: []Param{
				{Name: "items", Type: TypeItems, Default: "3:10, 4:40, 5:30, 6:50", Description: "weight:value pairs"},
				{Name: "capacity", Type: TypeInteger, Default: "10", Description: "knapsack capacity"},
			},
			generate: func(args map[string]string) (trace.Trace, error) {
				parsed, err := input.ParseItems(args["items"])
				if err != nil {
					return trace.Trace{}, wrapArg("items", err)
				}
				if len(parsed) > MaxItems {
					return trace.Trace{}, errors.New(errors.ErrCodeOutOfRange, "items: %d items (max %d)", len(parsed), MaxItems)
				}
				capacity, err := intArg(args, "capacity", 0, MaxCapacity)
				if err != nil {
					return trace.Trace{}, err
				}
				items := make([]dp.Item, len(parsed))
				for i, it := range parsed {
					items[i] = dp.Item{Weight: it.Weight, Value: it.Value}
				}
				return dp.Knapsack(items, capacity), nil
			},
		},

		&Algorithm{
			Name:        recursive.NameHanoi,
			Title:       "Tower of Hanoi",
			Category:    CategoryRecursive,
			Kind:        trace.KindPeg,
			Description: "Move a stack of disks between pegs, never placing a larger disk on a smaller one.",
			Listing:     recursive.HanoiListing,
			Params: []Param{
				{Name: "disks", Type: TypeInteger, Default: "3", Description: "number of disks (1-8)"},
			},
			generate: func(args map[string]string) (trace.Trace, error) {
				n, err := intArg(args, "disks", recursive.MinDisks, recursive.MaxDisks)
				if err != nil {
					return trace.Trace{}, err
				}
				return recursive.Hanoi(n), nil
			},
		},
		&Algorithm{
			Name:        recursive.NameHuffman,
			Title:       "Huffman Coding",
			Category:    CategoryRecursive,
			Kind:        trace.KindTree,
			Description: "Build a prefix code by repeatedly merging the two rarest subtrees.",
			Listing:     recursive.HuffmanListing,
			Params: []Param{
				{Name: "text", Type: TypeText, Default: "abracadabra", Description: "text to encode"},
			},
			generate: func(args map[string]string) (trace.Trace, error) {
				text, err := input.ParseText(args["text"], input.MaxTextLength)
				if err != nil {
					return trace.Trace{}, wrapArg("text", err)
				}
				return recursive.Huffman(text), nil
			},
		},
	)
}

// =============================================================================
// Family builders
// =============================================================================

func searchAlgorithm(name, title, desc string, listing []string, run func([]float64, float64) trace.Trace) *Algorithm {
	return &Algorithm{
		Name:        name,
		Title:       title,
		Category:    CategorySearch,
		Kind:        trace.KindArray,
		Description: desc,
		Listing:     listing,
		Params: []Param{
			{Name: "values", Type: TypeNumbers, Default: "1, 3, 5, 7, 9, 11, 13, 15", Description: "numbers to search"},
			{Name: "target", Type: TypeNumber, Default: "7", Description: "value to find"},
		},
		generate: func(args map[string]string) (trace.Trace, error) {
			values, err := numbersArg(args, "values")
			if err != nil {
				return trace.Trace{}, err
			}
			target, err := numberArg(args, "target")
			if err != nil {
				return trace.Trace{}, err
			}
			return run(values, target), nil
		},
	}
}

func sortAlgorithm(name, title, desc string, listing []string, run func([]float64) trace.Trace) *Algorithm {
	return &Algorithm{
		Name:        name,
		Title:       title,
		Category:    CategorySorting,
		Kind:        trace.KindArray,
		Description: desc,
		Listing:     listing,
		Params: []Param{
			{Name: "values", Type: TypeNumbers, Default: "5, 1, 9, 3, 7, 4, 6, 2, 8", Description: "numbers to sort"},
		},
		generate: func(args map[string]string) (trace.Trace, error) {
			values, err := numbersArg(args, "values")
			if err != nil {
				return trace.Trace{}, err
			}
			return run(values), nil
		},
	}
}

func graphAlgorithm(name, title, desc, graph, start string, listing []string, opts []input.GraphOption, run func(*input.Graph, string) trace.Trace) *Algorithm {
	return &Algorithm{
		Name:        name,
		Title:       title,
		Category:    CategoryGraph,
		Kind:        trace.KindGraph,
		Description: desc,
		Listing:     listing,
		Params: []Param{
			{Name: "graph", Type: TypeGraph, Default: graph, Description: "adjacency list, e.g. A:B,C;B:;C:"},
			{Name: "start", Type: TypeNode, Default: start, Description: "start node"},
		},
		generate: func(args map[string]string) (trace.Trace, error) {
			g, err := input.ParseGraph(args["graph"], opts...)
			if err != nil {
				return trace.Trace{}, wrapArg("graph", err)
			}
			if len(g.Nodes) > MaxGraphNodes {
				return trace.Trace{}, errors.New(errors.ErrCodeOutOfRange, "graph: %d nodes (max %d)", len(g.Nodes), MaxGraphNodes)
			}
			start := args["start"]
			if err := g.RequireNode(start); err != nil {
				return trace.Trace{}, wrapArg("start", err)
			}
			return run(g, start), nil
		},
	}
}

func stringPairAlgorithm(name, title, desc, a, b string, listing []string, run func(string, string) trace.Trace) *Algorithm {
	return &Algorithm{
		Name:        name,
		Title:       title,
		Category:    CategoryDP,
		Kind:        trace.KindTable,
		Description: desc,
		Listing:     listing,
		Params: []Param{
			{Name: "a", Type: TypeText, Default: a, Description: "first string"},
			{Name: "b", Type: TypeText, Default: b, Description: "second string"},
		},
		generate: func(args map[string]string) (trace.Trace, error) {
			sa, err := input.ParseOptionalText(args["a"], MaxTableText)
			if err != nil {
				return trace.Trace{}, wrapArg("a", err)
			}
			sb, err := input.ParseOptionalText(args["b"], MaxTableText)
			if err != nil {
				return trace.Trace{}, wrapArg("b", err)
			}
			return run(sa, sb), nil
		},
	}
}

// =============================================================================
// Argument helpers
// =============================================================================

// wrapArg prefixes an input error with the parameter name, keeping its code.
func wrapArg(name string, err error) error {
	return errors.Wrap(errors.GetCode(err), err, "%s", name)
}

func numbersArg(args map[string]string, name string) ([]float64, error) {
	values, err := input.ParseNumbers(args[name])
	if err != nil {
		return nil, wrapArg(name, err)
	}
	if len(values) > MaxArrayLength {
		return nil, errors.New(errors.ErrCodeOutOfRange, "%s: %d numbers (max %d)", name, len(values), MaxArrayLength)
	}
	return values, nil
}

func numberArg(args map[string]string, name string) (float64, error) {
	v, err := input.ParseNumber(args[name])
	if err != nil {
		return 0, wrapArg(name, err)
	}
	return v, nil
}

func intArg(args map[string]string, name string, lo, hi int) (int, error) {
	v, err := input.ParseInt(args[name], lo, hi)
	if err != nil {
		return 0, wrapArg(name, err)
	}
	return v, nil
}
