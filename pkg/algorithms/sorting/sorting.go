// Package sorting generates step traces for in-place sorting and
// partitioning algorithms.
//
// All generators share a tracker that owns the working array and a global
// set of finalized indices. Every frame of a simulated recursion writes into
// the same set, so ArrayState.Sorted only ever grows across a trace.
// Recursive algorithms run on explicit frame stacks and emit enter and exit
// steps carrying the active sub-range.
package sorting

import (
	"math/bits"
	"slices"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// Algorithm names.
const (
	NameHeap      = "heap-sort"
	NameDutchFlag = "dutch-flag"
	NameQuick     = "quick-sort"
	NameMerge     = "merge-sort"
)

// tracker couples the live array with the global sorted accumulator.
type tracker struct {
	rec  *trace.Recorder
	arr  []float64
	done []bool
}

func newTracker(values []float64, budget int) *tracker {
	return &tracker{
		rec:  trace.NewRecorder(budget),
		arr:  slices.Clone(values),
		done: make([]bool, len(values)),
	}
}

// finalize marks indices as settled. Marks are never cleared.
func (t *tracker) finalize(idx ...int) {
	for _, i := range idx {
		if i >= 0 && i < len(t.done) {
			t.done[i] = true
		}
	}
}

func (t *tracker) finalizeAll() {
	for i := range t.done {
		t.done[i] = true
	}
}

func (t *tracker) sorted() []int {
	var out []int
	for i, ok := range t.done {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// emit records st with the live values and sorted set filled in.
func (t *tracker) emit(line int, msg string, st trace.ArrayState, panels ...trace.Panel) bool {
	st.Values = t.arr
	st.Sorted = t.sorted()
	return t.rec.Emit(trace.ArrayStep(line, msg, st, panels...))
}

func (t *tracker) swap(i, j int) {
	t.arr[i], t.arr[j] = t.arr[j], t.arr[i]
}

func (t *tracker) halted() bool { return t.rec.Halted() }

func (t *tracker) result(name string) trace.Trace {
	return trace.Trace{Algorithm: name, Steps: t.rec.Steps()}
}

// emptyTrace is the single terminal step emitted for an empty array.
func emptyTrace(name string) trace.Trace {
	return trace.Trace{
		Algorithm: name,
		Steps: []trace.Step{
			trace.ArrayStep(trace.NoLine, "The array is empty, so it is already sorted.", trace.ArrayState{Values: []float64{}}),
		},
	}
}

// announceSorted records the optional narration for pre-sorted input.
func (t *tracker) announceSorted() {
	if len(t.arr) < 2 || !slices.IsSorted(t.arr) {
		return
	}
	t.emit(trace.NoLine, "The input is already in ascending order; the algorithm still performs all of its work.", trace.ArrayState{})
}

// logBudget sizes a recorder for an O(n log n) algorithm emitting up to k
// steps per element and level.
func logBudget(n, k int) int {
	return trace.Budget(n, k*(bits.Len(uint(n))+1))
}

func span(lo, hi int) *trace.Span {
	if lo > hi {
		return nil
	}
	return &trace.Span{Start: lo, End: hi}
}
