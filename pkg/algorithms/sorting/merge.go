package sorting

import (
	"fmt"
	"slices"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// MergeListing is the pseudocode shown next to merge sort traces.
var MergeListing = []string{
	"function mergeSort(arr, left, right):",
	"  if left >= right: return",
	"  mid = (left + right) / 2",
	"  mergeSort(arr, left, mid)",
	"  mergeSort(arr, mid + 1, right)",
	"  merge(arr, left, mid, right)",
	"function merge(arr, left, mid, right):",
	"  L, R = arr[left..mid], arr[mid+1..right]",
	"  i, j, k = 0, 0, left",
	"  while i < len(L) and j < len(R):",
	"    if L[i] <= R[j]: arr[k] = L[i]; i++",
	"    else: arr[k] = R[j]; j++",
	"    k++",
	"  copy the rest of L and R into arr[k..right]",
}

const (
	msEnter     = 1
	msBase      = 2
	msMid       = 3
	msLeft      = 4
	msRight     = 5
	msMerge     = 6
	msCopy      = 8
	msInit      = 9
	msLoop      = 10
	msTakeLeft  = 11
	msTakeRight = 12
	msRest      = 14
)

type msPhase int

const (
	msPhaseEnter msPhase = iota
	msPhaseRight
	msPhaseMerge
)

// msFrame is one simulated mergeSort call.
type msFrame struct {
	lo, hi, mid int
	phase       msPhase
}

// Merge traces top-down merge sort. Indices become final while the last,
// full-range merge writes them.
func Merge(values []float64) trace.Trace {
	n := len(values)
	if n == 0 {
		return emptyTrace(NameMerge)
	}
	t := newTracker(values, logBudget(n, 7))
	t.announceSorted()

	stack := []msFrame{{lo: 0, hi: n - 1}}
	calls := func() trace.Panel {
		items := make([]string, 0, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			items = append(items, fmt.Sprintf("mergeSort(%d, %d)", stack[i].lo, stack[i].hi))
		}
		return trace.Panel{Name: "call stack", Items: items}
	}

	for len(stack) > 0 && !t.halted() {
		top := len(stack) - 1
		f := stack[top]
		switch f.phase {
		case msPhaseEnter:
			t.emit(msEnter, fmt.Sprintf("Enter mergeSort(arr, %d, %d).", f.lo, f.hi), trace.ArrayState{Range: span(f.lo, f.hi)}, calls())
			if f.lo >= f.hi {
				if n == 1 {
					t.finalize(0)
				}
				t.emit(msBase, fmt.Sprintf("A range of one element is sorted; mergeSort(arr, %d, %d) returns.", f.lo, f.hi),
					trace.ArrayState{Range: span(f.lo, f.hi)}, calls())
				stack = stack[:top]
				continue
			}
			mid := (f.lo + f.hi) / 2
			t.emit(msMid, fmt.Sprintf("mid = (%d + %d) / 2 = %d.", f.lo, f.hi, mid), trace.ArrayState{Range: span(f.lo, f.hi), Pivot: trace.Ptr(mid)}, calls())
			t.emit(msLeft, fmt.Sprintf("Sort the left half: mergeSort(arr, %d, %d).", f.lo, mid), trace.ArrayState{Range: span(f.lo, mid)}, calls())
			stack[top].mid = mid
			stack[top].phase = msPhaseRight
			stack = append(stack, msFrame{lo: f.lo, hi: mid})
		case msPhaseRight:
			t.emit(msRight, fmt.Sprintf("Sort the right half: mergeSort(arr, %d, %d).", f.mid+1, f.hi), trace.ArrayState{Range: span(f.mid+1, f.hi)}, calls())
			stack[top].phase = msPhaseMerge
			stack = append(stack, msFrame{lo: f.mid + 1, hi: f.hi})
		case msPhaseMerge:
			t.emit(msMerge, fmt.Sprintf("Both halves are sorted: merge(arr, %d, %d, %d).", f.lo, f.mid, f.hi), trace.ArrayState{Range: span(f.lo, f.hi)}, calls())
			merge(t, f.lo, f.mid, f.hi, f.lo == 0 && f.hi == n-1, calls)
			t.emit(msMerge, fmt.Sprintf("The merge is done; mergeSort(arr, %d, %d) returns with indices %d..%d in order.", f.lo, f.hi, f.lo, f.hi),
				trace.ArrayState{Range: span(f.lo, f.hi)}, calls())
			stack = stack[:top]
		}
	}

	if !t.halted() {
		t.finalizeAll()
		t.emit(trace.NoLine, "All calls have returned; the array is sorted.", trace.ArrayState{})
	}
	return t.result(NameMerge)
}

// merge combines the sorted runs arr[lo..mid] and arr[mid+1..hi]. When
// final is set every written index is marked sorted.
func merge(t *tracker, lo, mid, hi int, final bool, calls func() trace.Panel) {
	rng := span(lo, hi)
	left := slices.Clone(t.arr[lo : mid+1])
	right := slices.Clone(t.arr[mid+1 : hi+1])
	runs := func() trace.Panel {
		return trace.Panel{Name: "runs", Items: []string{"L = " + trace.Nums(left), "R = " + trace.Nums(right)}}
	}
	t.emit(msCopy, fmt.Sprintf("Copy L = %s and R = %s.", trace.Nums(left), trace.Nums(right)), trace.ArrayState{Range: rng}, calls(), runs())

	i, j, k := 0, 0, lo
	t.emit(msInit, fmt.Sprintf("i = 0, j = 0, k = %d.", lo), trace.ArrayState{Active: []int{k}, Range: rng}, calls(), runs())

	write := func(v float64) {
		t.arr[k] = v
		if final {
			t.finalize(k)
		}
		k++
	}

	for i < len(left) && j < len(right) && !t.halted() {
		t.emit(msLoop, fmt.Sprintf("Compare L[%d] = %s with R[%d] = %s.", i, trace.Num(left[i]), j, trace.Num(right[j])),
			trace.ArrayState{Active: []int{k}, Range: rng}, calls(), runs())
		if left[i] <= right[j] {
			at := k
			write(left[i])
			i++
			t.emit(msTakeLeft, fmt.Sprintf("Take %s from L: arr[%d] = %s.", trace.Num(t.arr[at]), at, trace.Num(t.arr[at])),
				trace.ArrayState{Active: []int{at}, Range: rng}, calls(), runs())
		} else {
			at := k
			write(right[j])
			j++
			t.emit(msTakeRight, fmt.Sprintf("Take %s from R: arr[%d] = %s.", trace.Num(t.arr[at]), at, trace.Num(t.arr[at])),
				trace.ArrayState{Active: []int{at}, Range: rng}, calls(), runs())
		}
	}

	for ; i < len(left) && !t.halted(); i++ {
		at := k
		write(left[i])
		t.emit(msRest, fmt.Sprintf("Copy the remaining L[%d] = %s to arr[%d].", i, trace.Num(left[i]), at),
			trace.ArrayState{Active: []int{at}, Range: rng}, calls(), runs())
	}
	for ; j < len(right) && !t.halted(); j++ {
		at := k
		write(right[j])
		t.emit(msRest, fmt.Sprintf("Copy the remaining R[%d] = %s to arr[%d].", j, trace.Num(right[j]), at),
			trace.ArrayState{Active: []int{at}, Range: rng}, calls(), runs())
	}
}
