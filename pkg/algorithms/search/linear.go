package search

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// LinearListing is the pseudocode shown next to linear search traces.
var LinearListing = []string{
	"function linearSearch(arr, target):",
	"  for i = 0 to len(arr) - 1:",
	"    if arr[i] == target:",
	"      return i",
	"  return -1",
}

const (
	linLoop     = 2
	linCompare  = 3
	linFound    = 4
	linNotFound = 5
)

// Linear traces a left-to-right scan for target. It does not require sorted
// input.
func Linear(values []float64, target float64) trace.Trace {
	if len(values) == 0 {
		return emptyTrace(NameLinear)
	}
	n := len(values)
	rec := trace.NewRecorder(trace.Budget(n, 3))

	for i := 0; i < n && !rec.Halted(); i++ {
		rec.Emit(trace.ArrayStep(linLoop,
			fmt.Sprintf("i = %d: index is inside the array, keep scanning.", i),
			trace.ArrayState{Values: values, Active: []int{i}, Range: span(i, n-1)}))
		rec.Emit(trace.ArrayStep(linCompare,
			fmt.Sprintf("Compare arr[%d] = %s with target %s.", i, trace.Num(values[i]), trace.Num(target)),
			trace.ArrayState{Values: values, Active: []int{i}, Range: span(i, n-1)}))
		if values[i] == target {
			rec.Emit(trace.ArrayStep(linFound,
				fmt.Sprintf("Found %s at index %d.", trace.Num(target), i),
				found(values, i)))
			return trace.Trace{Algorithm: NameLinear, Steps: rec.Steps()}
		}
	}

	rec.Emit(trace.ArrayStep(linNotFound,
		fmt.Sprintf("Scanned all %d elements; %s is not in the array.", n, trace.Num(target)),
		trace.ArrayState{Values: values}))
	return trace.Trace{Algorithm: NameLinear, Steps: rec.Steps()}
}
