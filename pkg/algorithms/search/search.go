// Package search generates step traces for array search algorithms.
//
// Every generator emits one step per loop-condition check, one per index or
// midpoint computation, and a terminal found or not-found step. Because a
// search never sorts anything, ArrayState.Sorted is repurposed to flag the
// found index; ArrayState.Result carries the same index.
//
// Binary, ternary and jump search assume sorted input. They sort a copy of
// the input first and report through Trace.Reordered whether sorting changed
// it, so callers can tell the learner their array was normalized.
package search

import (
	"slices"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// Algorithm names.
const (
	NameLinear  = "linear-search"
	NameBinary  = "binary-search"
	NameTernary = "ternary-search"
	NameJump    = "jump-search"
)

// normalize returns a sorted copy of values and whether sorting changed the
// order.
func normalize(values []float64) ([]float64, bool) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted, !slices.Equal(sorted, values)
}

// emptyTrace is the single terminal step emitted for an empty array.
func emptyTrace(name string) trace.Trace {
	return trace.Trace{
		Algorithm: name,
		Steps: []trace.Step{
			trace.ArrayStep(trace.NoLine, "The array is empty, so there is nothing to search.", trace.ArrayState{Values: []float64{}}),
		},
	}
}

// prelude records the optional normalization narration.
func prelude(rec *trace.Recorder, original, values []float64, reordered bool) {
	if !reordered {
		return
	}
	rec.Emit(trace.ArrayStep(trace.NoLine,
		"This search needs sorted input, so "+trace.Nums(original)+" was sorted to "+trace.Nums(values)+".",
		trace.ArrayState{Values: values}))
}

func span(lo, hi int) *trace.Span {
	if lo > hi {
		return nil
	}
	return &trace.Span{Start: lo, End: hi}
}

func found(values []float64, i int) trace.ArrayState {
	return trace.ArrayState{Values: values, Sorted: []int{i}, Result: trace.Ptr(i)}
}
