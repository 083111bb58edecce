package search

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// BinaryListing is the pseudocode shown next to binary search traces.
var BinaryListing = []string{
	"function binarySearch(arr, target):",
	"  low, high = 0, len(arr) - 1",
	"  while low <= high:",
	"    mid = (low + high) / 2",
	"    if arr[mid] == target:",
	"      return mid",
	"    if arr[mid] < target:",
	"      low = mid + 1",
	"    else:",
	"      high = mid - 1",
	"  return -1",
}

const (
	binInit     = 2
	binLoop     = 3
	binMid      = 4
	binEqual    = 5
	binFound    = 6
	binLess     = 7
	binMoveLow  = 8
	binMoveHigh = 10
	binNotFound = 11
)

// Binary traces binary search for target over a sorted copy of values.
func Binary(values []float64, target float64) trace.Trace {
	if len(values) == 0 {
		return emptyTrace(NameBinary)
	}
	arr, reordered := normalize(values)
	n := len(arr)
	rec := trace.NewRecorder(trace.Budget(n, 8))
	prelude(rec, values, arr, reordered)
	done := func() trace.Trace {
		return trace.Trace{Algorithm: NameBinary, Steps: rec.Steps(), Reordered: reordered}
	}

	low, high := 0, n-1
	rec.Emit(trace.ArrayStep(binInit,
		fmt.Sprintf("Search for %s: low = 0, high = %d.", trace.Num(target), high),
		trace.ArrayState{Values: arr, Active: []int{low, high}, Range: span(low, high)}))

	guard := trace.NewGuard(n + 1)
	for !rec.Halted() {
		if !guard.Next() {
			rec.Diagnose(trace.ArrayStep(0, "", trace.ArrayState{Values: arr}),
				fmt.Sprintf("Stopped after %d iterations without narrowing the range.", guard.Limit()))
			return done()
		}
		if low > high {
			rec.Emit(trace.ArrayStep(binLoop,
				fmt.Sprintf("low = %d > high = %d: the range is empty.", low, high),
				trace.ArrayState{Values: arr}))
			break
		}
		rec.Emit(trace.ArrayStep(binLoop,
			fmt.Sprintf("low = %d <= high = %d: keep searching.", low, high),
			trace.ArrayState{Values: arr, Active: []int{low, high}, Range: span(low, high)}))

		mid := (low + high) / 2
		rec.Emit(trace.ArrayStep(binMid,
			fmt.Sprintf("mid = (%d + %d) / 2 = %d.", low, high, mid),
			trace.ArrayState{Values: arr, Active: []int{mid}, Range: span(low, high), Pivot: trace.Ptr(mid)}))

		rec.Emit(trace.ArrayStep(binEqual,
			fmt.Sprintf("Is arr[%d] = %s equal to %s?", mid, trace.Num(arr[mid]), trace.Num(target)),
			trace.ArrayState{Values: arr, Active: []int{mid}, Range: span(low, high), Pivot: trace.Ptr(mid)}))
		if arr[mid] == target {
			rec.Emit(trace.ArrayStep(binFound,
				fmt.Sprintf("Found %s at index %d.", trace.Num(target), mid),
				found(arr, mid)))
			return done()
		}

		rec.Emit(trace.ArrayStep(binLess,
			fmt.Sprintf("Is arr[%d] = %s less than %s?", mid, trace.Num(arr[mid]), trace.Num(target)),
			trace.ArrayState{Values: arr, Active: []int{mid}, Range: span(low, high), Pivot: trace.Ptr(mid)}))
		if arr[mid] < target {
			low = mid + 1
			rec.Emit(trace.ArrayStep(binMoveLow,
				fmt.Sprintf("Yes: the target lies right of mid, low = %d.", low),
				trace.ArrayState{Values: arr, Range: span(low, high)}))
		} else {
			high = mid - 1
			rec.Emit(trace.ArrayStep(binMoveHigh,
				fmt.Sprintf("No: the target lies left of mid, high = %d.", high),
				trace.ArrayState{Values: arr, Range: span(low, high)}))
		}
	}

	rec.Emit(trace.ArrayStep(binNotFound,
		fmt.Sprintf("%s is not in the array.", trace.Num(target)),
		trace.ArrayState{Values: arr}))
	return done()
}
