package sorting

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// QuickListing is the pseudocode shown next to quicksort traces.
var QuickListing = []string{
	"function quickSort(arr, low, high):",
	"  if low < high:",
	"    p = partition(arr, low, high)",
	"    quickSort(arr, low, p - 1)",
	"    quickSort(arr, p + 1, high)",
	"function partition(arr, low, high):",
	"  pivot = arr[high]; i = low - 1",
	"  for j = low to high - 1:",
	"    if arr[j] <= pivot:",
	"      i++; swap(arr[i], arr[j])",
	"  swap(arr[i + 1], arr[high])",
	"  return i + 1",
}

const (
	qsEnter     = 1
	qsBase      = 2
	qsPartition = 3
	qsLeft      = 4
	qsRight     = 5
	qsPivot     = 7
	qsLoop      = 8
	qsCompare   = 9
	qsSwap      = 10
	qsPlace     = 11
	qsReturn    = 12
)

type qsPhase int

const (
	qsPhaseEnter qsPhase = iota
	qsPhaseLeft
	qsPhaseRight
	qsPhaseExit
)

// qsFrame is one simulated quickSort call.
type qsFrame struct {
	lo, hi int
	p      int
	phase  qsPhase
}

// Quick traces Lomuto quicksort with the last element of each range as the
// pivot.
func Quick(values []float64) trace.Trace {
	n := len(values)
	if n == 0 {
		return emptyTrace(NameQuick)
	}
	t := newTracker(values, trace.Budget(n, 3*n+12))
	t.announceSorted()

	stack := []qsFrame{{lo: 0, hi: n - 1}}
	calls := func() trace.Panel {
		items := make([]string, 0, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			items = append(items, fmt.Sprintf("quickSort(%d, %d)", stack[i].lo, stack[i].hi))
		}
		return trace.Panel{Name: "call stack", Items: items}
	}

	for len(stack) > 0 && !t.halted() {
		top := len(stack) - 1
		f := stack[top]
		switch f.phase {
		case qsPhaseEnter:
			t.emit(qsEnter, fmt.Sprintf("Enter quickSort(arr, %d, %d).", f.lo, f.hi), trace.ArrayState{Range: span(f.lo, f.hi)}, calls())
			if f.lo >= f.hi {
				if f.lo == f.hi {
					t.finalize(f.lo)
				}
				t.emit(qsBase, fmt.Sprintf("low = %d is not below high = %d: nothing to sort, return.", f.lo, f.hi),
					trace.ArrayState{Range: span(f.lo, f.hi)}, calls())
				stack = stack[:top]
				continue
			}
			t.emit(qsBase, fmt.Sprintf("low = %d < high = %d: partition the range.", f.lo, f.hi), trace.ArrayState{Range: span(f.lo, f.hi)}, calls())
			t.emit(qsPartition, fmt.Sprintf("Call partition(arr, %d, %d).", f.lo, f.hi), trace.ArrayState{Range: span(f.lo, f.hi)}, calls())
			p := partition(t, f.lo, f.hi, calls)
			t.finalize(p)
			stack[top].p = p
			stack[top].phase = qsPhaseLeft
		case qsPhaseLeft:
			t.emit(qsLeft, fmt.Sprintf("Sort the left part: quickSort(arr, %d, %d).", f.lo, f.p-1), trace.ArrayState{Range: span(f.lo, f.p-1), Pivot: trace.Ptr(f.p)}, calls())
			stack[top].phase = qsPhaseRight
			stack = append(stack, qsFrame{lo: f.lo, hi: f.p - 1})
		case qsPhaseRight:
			t.emit(qsRight, fmt.Sprintf("Sort the right part: quickSort(arr, %d, %d).", f.p+1, f.hi), trace.ArrayState{Range: span(f.p+1, f.hi), Pivot: trace.Ptr(f.p)}, calls())
			stack[top].phase = qsPhaseExit
			stack = append(stack, qsFrame{lo: f.p + 1, hi: f.hi})
		case qsPhaseExit:
			t.emit(qsRight, fmt.Sprintf("quickSort(arr, %d, %d) returns; indices %d..%d are sorted.", f.lo, f.hi, f.lo, f.hi), trace.ArrayState{Range: span(f.lo, f.hi)}, calls())
			stack = stack[:top]
		}
	}

	if !t.halted() {
		t.finalizeAll()
		t.emit(trace.NoLine, "All calls have returned; the array is sorted.", trace.ArrayState{})
	}
	return t.result(NameQuick)
}

// partition runs one Lomuto partition pass and returns the pivot's final
// index.
func partition(t *tracker, lo, hi int, calls func() trace.Panel) int {
	rng := span(lo, hi)
	pivot := t.arr[hi]
	i := lo - 1
	t.emit(qsPivot, fmt.Sprintf("pivot = arr[%d] = %s, i = %d.", hi, trace.Num(pivot), i), trace.ArrayState{Range: rng, Pivot: trace.Ptr(hi)}, calls())

	for j := lo; j < hi && !t.halted(); j++ {
		t.emit(qsLoop, fmt.Sprintf("j = %d.", j), trace.ArrayState{Active: []int{j}, Range: rng, Pivot: trace.Ptr(hi)}, calls())
		if t.arr[j] <= pivot {
			t.emit(qsCompare, fmt.Sprintf("arr[%d] = %s <= %s.", j, trace.Num(t.arr[j]), trace.Num(pivot)), trace.ArrayState{Active: []int{j}, Range: rng, Pivot: trace.Ptr(hi)}, calls())
			i++
			t.swap(i, j)
			t.emit(qsSwap, fmt.Sprintf("i = %d; swap arr[%d] and arr[%d].", i, i, j), trace.ArrayState{Swapping: []int{i, j}, Range: rng, Pivot: trace.Ptr(hi)}, calls())
		} else {
			t.emit(qsCompare, fmt.Sprintf("arr[%d] = %s > %s: leave it.", j, trace.Num(t.arr[j]), trace.Num(pivot)), trace.ArrayState{Active: []int{j}, Range: rng, Pivot: trace.Ptr(hi)}, calls())
		}
	}

	p := i + 1
	t.swap(p, hi)
	t.emit(qsPlace, fmt.Sprintf("Move the pivot into place: swap arr[%d] and arr[%d].", p, hi), trace.ArrayState{Swapping: []int{p, hi}, Range: rng, Pivot: trace.Ptr(p)}, calls())
	t.finalize(p)
	t.emit(qsReturn, fmt.Sprintf("partition returns %d; the pivot %s is final.", p, trace.Num(pivot)), trace.ArrayState{Range: rng, Pivot: trace.Ptr(p)}, calls())
	return p
}
