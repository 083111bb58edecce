package search

import (
	"fmt"
	"math"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// JumpListing is the pseudocode shown next to jump search traces.
var JumpListing = []string{
	"function jumpSearch(arr, target):",
	"  n = len(arr); block = floor(sqrt(n)); step = block; prev = 0",
	"  while arr[min(step, n) - 1] < target:",
	"    prev = step; step += block",
	"    if prev >= n: return -1",
	"  while arr[prev] < target:",
	"    prev += 1",
	"    if prev == min(step, n): return -1",
	"  if arr[prev] == target: return prev",
	"  return -1",
}

const (
	jmpInit      = 2
	jmpBlockLoop = 3
	jmpAdvance   = 4
	jmpPastEnd   = 5
	jmpScanLoop  = 6
	jmpScanNext  = 7
	jmpScanEnd   = 8
	jmpCheck     = 9
	jmpNotFound  = 10
)

// Jump traces jump search for target over a sorted copy of values, jumping
// in blocks of floor(sqrt(n)) and then scanning linearly inside the block.
func Jump(values []float64, target float64) trace.Trace {
	if len(values) == 0 {
		return emptyTrace(NameJump)
	}
	arr, reordered := normalize(values)
	n := len(arr)
	rec := trace.NewRecorder(trace.Budget(n, 4))
	prelude(rec, values, arr, reordered)
	done := func() trace.Trace {
		return trace.Trace{Algorithm: NameJump, Steps: rec.Steps(), Reordered: reordered}
	}
	notFound := func(line int) trace.Trace {
		rec.Emit(trace.ArrayStep(line,
			fmt.Sprintf("%s is not in the array.", trace.Num(target)),
			trace.ArrayState{Values: arr}))
		return done()
	}

	block := max(int(math.Sqrt(float64(n))), 1)
	step, prev := block, 0
	rec.Emit(trace.ArrayStep(jmpInit,
		fmt.Sprintf("n = %d, so jump in blocks of %d.", n, block),
		trace.ArrayState{Values: arr, Range: span(0, min(step, n)-1)}))

	guard := trace.NewGuard(blockLimit(n, block))
	for !rec.Halted() {
		if !guard.Next() {
			rec.Diagnose(trace.ArrayStep(0, "", trace.ArrayState{Values: arr}),
				fmt.Sprintf("Stopped after %d block jumps without passing the target or the end.", guard.Limit()))
			return done()
		}
		probe := min(step, n) - 1
		rec.Emit(trace.ArrayStep(jmpBlockLoop,
			fmt.Sprintf("Is arr[%d] = %s less than %s?", probe, trace.Num(arr[probe]), trace.Num(target)),
			trace.ArrayState{Values: arr, Active: []int{probe}, Range: span(prev, probe)}))
		if arr[probe] >= target {
			break
		}
		prev = step
		step += block
		rec.Emit(trace.ArrayStep(jmpAdvance,
			fmt.Sprintf("Jump ahead: prev = %d, step = %d.", prev, step),
			trace.ArrayState{Values: arr, Range: span(prev, min(step, n)-1)}))
		if prev >= n {
			rec.Emit(trace.ArrayStep(jmpPastEnd,
				fmt.Sprintf("prev = %d ran past the end of the array.", prev),
				trace.ArrayState{Values: arr}))
			return notFound(jmpPastEnd)
		}
	}

	end := min(step, n)
	for !rec.Halted() {
		rec.Emit(trace.ArrayStep(jmpScanLoop,
			fmt.Sprintf("Is arr[%d] = %s less than %s?", prev, trace.Num(arr[prev]), trace.Num(target)),
			trace.ArrayState{Values: arr, Active: []int{prev}, Range: span(prev, end-1)}))
		if arr[prev] >= target {
			break
		}
		prev++
		rec.Emit(trace.ArrayStep(jmpScanNext,
			fmt.Sprintf("Scan forward to index %d.", prev),
			trace.ArrayState{Values: arr, Range: span(prev, end-1)}))
		if prev == end {
			rec.Emit(trace.ArrayStep(jmpScanEnd,
				"Reached the end of the block.",
				trace.ArrayState{Values: arr}))
			return notFound(jmpScanEnd)
		}
	}
	if rec.Halted() {
		return done()
	}

	rec.Emit(trace.ArrayStep(jmpCheck,
		fmt.Sprintf("Is arr[%d] = %s equal to %s?", prev, trace.Num(arr[prev]), trace.Num(target)),
		trace.ArrayState{Values: arr, Active: []int{prev}}))
	if arr[prev] == target {
		rec.Emit(trace.ArrayStep(jmpCheck,
			fmt.Sprintf("Found %s at index %d.", trace.Num(target), prev),
			found(arr, prev)))
		return done()
	}
	return notFound(jmpNotFound)
}

// blockLimit is the most block checks a correct jump search can make: one
// per block plus the check that runs past the end.
func blockLimit(n, block int) int {
	return n/block + 2
}
