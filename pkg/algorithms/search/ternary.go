package search

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// TernaryListing is the pseudocode shown next to ternary search traces.
var TernaryListing = []string{
	"function ternarySearch(arr, target):",
	"  low, high = 0, len(arr) - 1",
	"  while low <= high:",
	"    mid1 = low + (high - low) / 3",
	"    mid2 = high - (high - low) / 3",
	"    if arr[mid1] == target: return mid1",
	"    if arr[mid2] == target: return mid2",
	"    if target < arr[mid1]: high = mid1 - 1",
	"    else if target > arr[mid2]: low = mid2 + 1",
	"    else: low, high = mid1 + 1, mid2 - 1",
	"  return -1",
}

const (
	terInit     = 2
	terLoop     = 3
	terMid1     = 4
	terMid2     = 5
	terCheck1   = 6
	terCheck2   = 7
	terLeft     = 8
	terRight    = 9
	terMiddle   = 10
	terNotFound = 11
)

// Ternary traces ternary search for target over a sorted copy of values.
func Ternary(values []float64, target float64) trace.Trace {
	if len(values) == 0 {
		return emptyTrace(NameTernary)
	}
	arr, reordered := normalize(values)
	n := len(arr)
	rec := trace.NewRecorder(trace.Budget(n, 8))
	prelude(rec, values, arr, reordered)
	done := func() trace.Trace {
		return trace.Trace{Algorithm: NameTernary, Steps: rec.Steps(), Reordered: reordered}
	}

	low, high := 0, n-1
	rec.Emit(trace.ArrayStep(terInit,
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
			rec.Emit(trace.ArrayStep(terLoop,
				fmt.Sprintf("low = %d > high = %d: the range is empty.", low, high),
				trace.ArrayState{Values: arr}))
			break
		}
		rec.Emit(trace.ArrayStep(terLoop,
			fmt.Sprintf("low = %d <= high = %d: keep searching.", low, high),
			trace.ArrayState{Values: arr, Active: []int{low, high}, Range: span(low, high)}))

		third := (high - low) / 3
		mid1 := low + third
		rec.Emit(trace.ArrayStep(terMid1,
			fmt.Sprintf("mid1 = %d + (%d - %d) / 3 = %d.", low, high, low, mid1),
			trace.ArrayState{Values: arr, Active: []int{mid1}, Range: span(low, high)}))
		mid2 := high - third
		rec.Emit(trace.ArrayStep(terMid2,
			fmt.Sprintf("mid2 = %d - (%d - %d) / 3 = %d.", high, high, low, mid2),
			trace.ArrayState{Values: arr, Active: []int{mid1, mid2}, Range: span(low, high)}))

		rec.Emit(trace.ArrayStep(terCheck1,
			fmt.Sprintf("Is arr[%d] = %s equal to %s?", mid1, trace.Num(arr[mid1]), trace.Num(target)),
			trace.ArrayState{Values: arr, Active: []int{mid1}, Range: span(low, high)}))
		if arr[mid1] == target {
			rec.Emit(trace.ArrayStep(terCheck1,
				fmt.Sprintf("Found %s at index %d.", trace.Num(target), mid1),
				found(arr, mid1)))
			return done()
		}
		rec.Emit(trace.ArrayStep(terCheck2,
			fmt.Sprintf("Is arr[%d] = %s equal to %s?", mid2, trace.Num(arr[mid2]), trace.Num(target)),
			trace.ArrayState{Values: arr, Active: []int{mid2}, Range: span(low, high)}))
		if arr[mid2] == target {
			rec.Emit(trace.ArrayStep(terCheck2,
				fmt.Sprintf("Found %s at index %d.", trace.Num(target), mid2),
				found(arr, mid2)))
			return done()
		}

		switch {
		case target < arr[mid1]:
			high = mid1 - 1
			rec.Emit(trace.ArrayStep(terLeft,
				fmt.Sprintf("%s < %s: keep the left third, high = %d.", trace.Num(target), trace.Num(arr[mid1]), high),
				trace.ArrayState{Values: arr, Range: span(low, high)}))
		case target > arr[mid2]:
			low = mid2 + 1
			rec.Emit(trace.ArrayStep(terRight,
				fmt.Sprintf("%s > %s: keep the right third, low = %d.", trace.Num(target), trace.Num(arr[mid2]), low),
				trace.ArrayState{Values: arr, Range: span(low, high)}))
		default:
			low, high = mid1+1, mid2-1
			rec.Emit(trace.ArrayStep(terMiddle,
				fmt.Sprintf("The target lies between the midpoints: low = %d, high = %d.", low, high),
				trace.ArrayState{Values: arr, Range: span(low, high)}))
		}
	}

	rec.Emit(trace.ArrayStep(terNotFound,
		fmt.Sprintf("%s is not in the array.", trace.Num(target)),
		trace.ArrayState{Values: arr}))
	return done()
}
