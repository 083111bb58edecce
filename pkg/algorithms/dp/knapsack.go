package dp

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// Item is a knapsack item.
type Item struct {
	Weight int
	Value  int
}

// KnapsackListing is the pseudocode shown next to 0/1 knapsack traces.
var KnapsackListing = []string{
	"function knapsack(items, capacity):",
	"  n = len(items); dp = zeros(n + 1, capacity + 1)",
	"  for i = 1 to n:",
	"    for w = 0 to capacity:",
	"      if items[i].weight > w:",
	"        dp[i][w] = dp[i-1][w]",
	"      else:",
	"        dp[i][w] = max(dp[i-1][w], dp[i-1][w - items[i].weight] + items[i].value)",
	"  w = capacity; chosen = []",
	"  for i = n down to 1:",
	"    if dp[i][w] != dp[i-1][w]:",
	"      chosen.add(i); w -= items[i].weight",
	"  return dp[n][capacity], chosen",
}

const (
	ksInit      = 2
	ksTooHeavy  = 6
	ksChoose    = 8
	ksBackStart = 9
	ksBackRow   = 10
	ksBackCheck = 11
	ksBackTake  = 12
	ksReturn    = 13
)

// Knapsack traces the 0/1 knapsack table for items and capacity, followed
// by a backward pass that recovers the chosen items. Selected holds
// zero-based item indices in ascending order.
func Knapsack(items []Item, capacity int) trace.Trace {
	n := len(items)
	rowLabels := make([]string, 0, n+1)
	rowLabels = append(rowLabels, "none")
	for i, it := range items {
		rowLabels = append(rowLabels, fmt.Sprintf("#%d w%d v%d", i+1, it.Weight, it.Value))
	}
	colLabels := make([]string, 0, capacity+1)
	for w := 0; w <= capacity; w++ {
		colLabels = append(colLabels, strconv.Itoa(w))
	}
	t := newTable(n+1, capacity+1, 2, rowLabels, colLabels)
	dp := t.cells

	t.emit(ksInit, fmt.Sprintf("%d item(s), capacity %d. Row 0 (no items) is all zeros.", n, capacity), trace.TableState{})

	for i := 1; i <= n && !t.halted(); i++ {
		it := items[i-1]
		for w := 0; w <= capacity && !t.halted(); w++ {
			if it.Weight > w {
				dp[i][w] = dp[i-1][w]
				t.emit(ksTooHeavy, fmt.Sprintf("Item %d (weight %d) does not fit in %d: dp[%d][%d] = %d.", i, it.Weight, w, i, w, dp[i][w]),
					trace.TableState{Highlights: highlight(cur(i, w), dep(i-1, w))})
				continue
			}
			exclude := dp[i-1][w]
			include := dp[i-1][w-it.Weight] + it.Value
			dp[i][w] = max(exclude, include)
			verdict := "skip it"
			if include > exclude {
				verdict = "take it"
			}
			t.emit(ksChoose, fmt.Sprintf("dp[%d][%d] = max(exclude %d, include %d + %d) = %d: %s.", i, w, exclude, dp[i-1][w-it.Weight], it.Value, dp[i][w], verdict),
				trace.TableState{Highlights: highlight(cur(i, w), dep(i-1, w), dep(i-1, w-it.Weight))})
		}
	}

	w := capacity
	var chosen []int
	path := []trace.Cell{res(n, w)}
	t.emit(ksBackStart, fmt.Sprintf("The best value is %d. Walk back from dp[%d][%d].", dp[n][capacity], n, capacity),
		trace.TableState{Highlights: slices.Clone(path)})

	for i := n; i >= 1 && !t.halted(); i-- {
		t.emit(ksBackRow, fmt.Sprintf("Row %d, remaining capacity %d.", i, w),
			trace.TableState{Highlights: append(slices.Clone(path), dep(i-1, w)), Selected: slices.Clone(chosen)})
		if dp[i][w] == dp[i-1][w] {
			t.emit(ksBackCheck, fmt.Sprintf("dp[%d][%d] = dp[%d][%d] = %d: item %d is not needed.", i, w, i-1, w, dp[i][w], i),
				trace.TableState{Highlights: append(slices.Clone(path), dep(i-1, w)), Selected: slices.Clone(chosen)})
			path = append(path, res(i-1, w))
			continue
		}
		chosen = append(chosen, i-1)
		w -= items[i-1].Weight
		path = append(path, res(i-1, w))
		t.emit(ksBackTake, fmt.Sprintf("dp[%d][%d] differs from the row above: take item %d; %d capacity left.", i, w+items[i-1].Weight, i, w),
			trace.TableState{Highlights: slices.Clone(path), Selected: slices.Clone(chosen)})
	}

	if !t.halted() {
		slices.Sort(chosen)
		labels := make([]string, len(chosen))
		for k, idx := range chosen {
			labels[k] = rowLabels[idx+1]
		}
		t.emit(ksReturn, fmt.Sprintf("Best value %d using %d item(s).", dp[n][capacity], len(chosen)),
			trace.TableState{Highlights: path, Result: trace.Ptr(dp[n][capacity]), Selected: chosen},
			trace.Panel{Name: "chosen", Items: labels})
	}
	return trace.Trace{Algorithm: NameKnapsack, Steps: t.rec.Steps()}
}
