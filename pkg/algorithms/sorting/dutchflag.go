package sorting

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// DefaultPivot is the middle value used by the Dutch national flag
// partition when none is given.
const DefaultPivot = 1

// DutchFlagListing is the pseudocode shown next to Dutch national flag
// traces.
var DutchFlagListing = []string{
	"function dutchFlag(arr, pivot):",
	"  low, mid, high = 0, 0, len(arr) - 1",
	"  while mid <= high:",
	"    if arr[mid] < pivot:",
	"      swap(arr[low], arr[mid]); low++; mid++",
	"    else if arr[mid] == pivot:",
	"      mid++",
	"    else:",
	"      swap(arr[mid], arr[high]); high--",
	"  return arr",
}

const (
	dfInit    = 2
	dfLoop    = 3
	dfLess    = 4
	dfSwapLow = 5
	dfEqual   = 6
	dfAdvance = 7
	dfGreater = 8
	dfSwapHi  = 9
	dfDone    = 10
)

// DutchFlag traces the three-way partition of values around pivot. Indices
// left of low and right of high are settled and reported as sorted.
func DutchFlag(values []float64, pivot float64) trace.Trace {
	n := len(values)
	if n == 0 {
		return emptyTrace(NameDutchFlag)
	}
	t := newTracker(values, trace.Budget(n, 6))
	t.announceSorted()

	low, mid, high := 0, 0, n-1
	pointers := func() trace.Panel {
		return trace.Panel{Name: "pointers", Items: []string{
			fmt.Sprintf("low = %d", low),
			fmt.Sprintf("mid = %d", mid),
			fmt.Sprintf("high = %d", high),
		}}
	}
	t.emit(dfInit, fmt.Sprintf("Partition around %s: low = mid = 0, high = %d.", trace.Num(pivot), high),
		trace.ArrayState{Active: []int{0, high}, Range: span(0, high)}, pointers())

	for !t.halted() {
		if mid > high {
			t.emit(dfLoop, fmt.Sprintf("mid = %d > high = %d: every element has been classified.", mid, high), trace.ArrayState{}, pointers())
			break
		}
		t.emit(dfLoop, fmt.Sprintf("mid = %d <= high = %d: classify arr[%d] = %s.", mid, high, mid, trace.Num(t.arr[mid])),
			trace.ArrayState{Active: []int{mid}, Range: span(mid, high)}, pointers())

		v := t.arr[mid]
		t.emit(dfLess, fmt.Sprintf("Is %s < %s?", trace.Num(v), trace.Num(pivot)),
			trace.ArrayState{Active: []int{mid}, Range: span(mid, high)}, pointers())
		if v < pivot {
			t.swap(low, mid)
			t.finalize(low)
			swapped := []int{low, mid}
			low++
			mid++
			t.emit(dfSwapLow, fmt.Sprintf("Yes: move it into the low region; low = %d, mid = %d.", low, mid),
				trace.ArrayState{Swapping: swapped, Range: span(mid, high)}, pointers())
			continue
		}

		t.emit(dfEqual, fmt.Sprintf("Is %s == %s?", trace.Num(v), trace.Num(pivot)),
			trace.ArrayState{Active: []int{mid}, Range: span(mid, high)}, pointers())
		if v == pivot {
			mid++
			t.emit(dfAdvance, fmt.Sprintf("Yes: it stays in the middle region; mid = %d.", mid),
				trace.ArrayState{Range: span(mid, high)}, pointers())
			continue
		}

		t.emit(dfGreater, fmt.Sprintf("%s > %s: it belongs in the high region.", trace.Num(v), trace.Num(pivot)),
			trace.ArrayState{Active: []int{mid}, Range: span(mid, high)}, pointers())
		t.swap(mid, high)
		t.finalize(high)
		swapped := []int{mid, high}
		high--
		t.emit(dfSwapHi, fmt.Sprintf("Swap arr[%d] and arr[%d]; high = %d.", swapped[0], swapped[1], high),
			trace.ArrayState{Swapping: swapped, Range: span(mid, high)}, pointers())
	}

	t.finalizeAll()
	t.emit(dfDone, fmt.Sprintf("Partitioned: values below %s, then equal, then above.", trace.Num(pivot)), trace.ArrayState{}, pointers())
	return t.result(NameDutchFlag)
}
