// Package numeric generates step traces for number-theoretic algorithms.
package numeric

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// NameGCD is the catalog name of Euclid's algorithm.
const NameGCD = "gcd"

// MaxIterations caps the reduction loop. Euclid needs fewer than 100
// iterations for any pair of 64-bit operands.
const MaxIterations = 100

// GCDListing is the pseudocode shown next to GCD traces.
var GCDListing = []string{
	"function gcd(a, b):",
	"  while b != 0:",
	"    r = a mod b",
	"    a = b",
	"    b = r",
	"  return a",
}

const (
	gcdLoop   = 2
	gcdMod    = 3
	gcdShiftA = 4
	gcdShiftB = 5
	gcdReturn = 6
)

// GCD traces Euclid's algorithm on non-negative a and b. The array snapshot
// is always [a, b]; the terminal step points Result at a.
func GCD(a, b int64) trace.Trace {
	rec := trace.NewRecorder(trace.Budget(MaxIterations, 4))
	state := func(active ...int) trace.ArrayState {
		return trace.ArrayState{Values: []float64{float64(a), float64(b)}, Active: active}
	}
	vars := func(r int64, haveR bool) trace.Panel {
		items := []string{fmt.Sprintf("a = %d", a), fmt.Sprintf("b = %d", b)}
		if haveR {
			items = append(items, fmt.Sprintf("r = %d", r))
		}
		return trace.Panel{Name: "variables", Items: items}
	}

	guard := trace.NewGuard(MaxIterations)
	for !rec.Halted() {
		if !guard.Next() {
			rec.Diagnose(trace.ArrayStep(0, "", state()),
				fmt.Sprintf("Stopped after %d reductions without reaching b = 0.", guard.Limit()))
			return trace.Trace{Algorithm: NameGCD, Steps: rec.Steps()}
		}
		if b == 0 {
			rec.Emit(trace.ArrayStep(gcdLoop, "b = 0, so the loop ends.", state(1), vars(0, false)))
			break
		}
		rec.Emit(trace.ArrayStep(gcdLoop, fmt.Sprintf("b = %d is not zero: reduce again.", b), state(1), vars(0, false)))

		r := a % b
		rec.Emit(trace.ArrayStep(gcdMod, fmt.Sprintf("r = %d mod %d = %d.", a, b, r), state(0, 1), vars(r, true)))
		a = b
		rec.Emit(trace.ArrayStep(gcdShiftA, fmt.Sprintf("a takes the old b: a = %d.", a), state(0), vars(r, true)))
		b = r
		rec.Emit(trace.ArrayStep(gcdShiftB, fmt.Sprintf("b takes the remainder: b = %d.", b), state(1), vars(r, true)))
	}

	last := state()
	last.Sorted = []int{0}
	last.Result = trace.Ptr(0)
	rec.Emit(trace.ArrayStep(gcdReturn, fmt.Sprintf("gcd = %d.", a), last, vars(0, false)))
	return trace.Trace{Algorithm: NameGCD, Steps: rec.Steps()}
}
