package sorting

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// HeapListing is the pseudocode shown next to heap sort traces.
var HeapListing = []string{
	"function heapSort(arr):",
	"  n = len(arr)",
	"  for i = n / 2 - 1 down to 0:",
	"    heapify(arr, n, i)",
	"  for end = n - 1 down to 1:",
	"    swap(arr[0], arr[end])",
	"    heapify(arr, end, 0)",
	"  return arr",
	"function heapify(arr, size, root):",
	"  largest = root; left = 2 * root + 1; right = 2 * root + 2",
	"  if left < size and arr[left] > arr[largest]: largest = left",
	"  if right < size and arr[right] > arr[largest]: largest = right",
	"  if largest != root:",
	"    swap(arr[root], arr[largest])",
	"    heapify(arr, size, largest)",
}

const (
	heapInit      = 2
	heapBuildLoop = 3
	heapBuildCall = 4
	heapSortLoop  = 5
	heapSwapRoot  = 6
	heapSortCall  = 7
	heapDone      = 8
	heapEnter     = 9
	heapChildren  = 10
	heapLeft      = 11
	heapRight     = 12
	heapSettled   = 13
	heapSwap      = 14
	heapRecurse   = 15
)

// Heap traces heap sort: build a max-heap bottom-up, then repeatedly move
// the root behind the shrinking heap.
func Heap(values []float64) trace.Trace {
	n := len(values)
	if n == 0 {
		return emptyTrace(NameHeap)
	}
	t := newTracker(values, logBudget(n, 9))
	t.announceSorted()

	t.emit(heapInit, fmt.Sprintf("n = %d. First turn the array into a max-heap.", n), trace.ArrayState{Range: span(0, n-1)})
	for i := n/2 - 1; i >= 0 && !t.halted(); i-- {
		t.emit(heapBuildLoop, fmt.Sprintf("Heapify the subtree rooted at index %d.", i), trace.ArrayState{Active: []int{i}, Range: span(0, n-1)})
		t.emit(heapBuildCall, fmt.Sprintf("Call heapify(arr, %d, %d).", n, i), trace.ArrayState{Active: []int{i}, Range: span(0, n-1)})
		heapify(t, n, i)
	}

	for end := n - 1; end >= 1 && !t.halted(); end-- {
		t.emit(heapSortLoop, fmt.Sprintf("The heap covers indices 0..%d; its root is the maximum %s.", end, trace.Num(t.arr[0])),
			trace.ArrayState{Active: []int{0}, Range: span(0, end)})
		t.swap(0, end)
		t.finalize(end)
		t.emit(heapSwapRoot, fmt.Sprintf("Swap the root with arr[%d]; index %d is now final.", end, end),
			trace.ArrayState{Swapping: []int{0, end}, Range: span(0, end-1)})
		t.emit(heapSortCall, fmt.Sprintf("Call heapify(arr, %d, 0) to restore the heap.", end), trace.ArrayState{Active: []int{0}, Range: span(0, end-1)})
		heapify(t, end, 0)
	}

	t.finalizeAll()
	t.emit(heapDone, "Every element has been moved behind the heap; the array is sorted.", trace.ArrayState{})
	return t.result(NameHeap)
}

// heapify sifts arr[root] down within arr[:size]. Each level of the sift is
// a recursive call in the listing: it gets its own enter step, and once the
// deepest level settles every pending level emits its return step.
func heapify(t *tracker, size, root int) {
	rng := span(0, size-1)
	var levels []int
	for !t.halted() {
		levels = append(levels, root)
		t.emit(heapEnter, fmt.Sprintf("heapify(arr, %d, %d): sift arr[%d] = %s down.", size, root, root, trace.Num(t.arr[root])),
			trace.ArrayState{Active: []int{root}, Range: rng, Pivot: trace.Ptr(root)})

		largest, left, right := root, 2*root+1, 2*root+2
		kids := []int{root}
		if left < size {
			kids = append(kids, left)
		}
		if right < size {
			kids = append(kids, right)
		}
		t.emit(heapChildren, childrenMessage(root, left, right, size), trace.ArrayState{Active: kids, Range: rng, Pivot: trace.Ptr(root)})

		if left < size {
			msg := fmt.Sprintf("arr[%d] = %s is not larger than arr[%d] = %s.", left, trace.Num(t.arr[left]), largest, trace.Num(t.arr[largest]))
			if t.arr[left] > t.arr[largest] {
				msg = fmt.Sprintf("arr[%d] = %s is larger than arr[%d] = %s, so largest = %d.", left, trace.Num(t.arr[left]), largest, trace.Num(t.arr[largest]), left)
				largest = left
			}
			t.emit(heapLeft, msg, trace.ArrayState{Active: []int{left, largest}, Range: rng, Pivot: trace.Ptr(root)})
		}
		if right < size {
			msg := fmt.Sprintf("arr[%d] = %s is not larger than arr[%d] = %s.", right, trace.Num(t.arr[right]), largest, trace.Num(t.arr[largest]))
			if t.arr[right] > t.arr[largest] {
				msg = fmt.Sprintf("arr[%d] = %s is larger than arr[%d] = %s, so largest = %d.", right, trace.Num(t.arr[right]), largest, trace.Num(t.arr[largest]), right)
				largest = right
			}
			t.emit(heapRight, msg, trace.ArrayState{Active: []int{right, largest}, Range: rng, Pivot: trace.Ptr(root)})
		}

		if largest == root {
			t.emit(heapSettled, fmt.Sprintf("arr[%d] is not smaller than its children; heapify(arr, %d, %d) returns.", root, size, root),
				trace.ArrayState{Active: []int{root}, Range: rng})
			for i := len(levels) - 2; i >= 0 && !t.halted(); i-- {
				t.emit(heapRecurse, fmt.Sprintf("The nested call is done; heapify(arr, %d, %d) returns.", size, levels[i]),
					trace.ArrayState{Active: []int{levels[i]}, Range: rng})
			}
			return
		}
		t.swap(root, largest)
		t.emit(heapSwap, fmt.Sprintf("Swap arr[%d] and arr[%d].", root, largest), trace.ArrayState{Swapping: []int{root, largest}, Range: rng})
		t.emit(heapRecurse, fmt.Sprintf("Continue with heapify(arr, %d, %d).", size, largest), trace.ArrayState{Active: []int{largest}, Range: rng})
		root = largest
	}
}

// childrenMessage names only the children that lie inside the heap.
func childrenMessage(root, left, right, size int) string {
	switch {
	case left >= size:
		return fmt.Sprintf("Index %d has no children inside the heap of size %d; it is a leaf.", root, size)
	case right >= size:
		return fmt.Sprintf("Index %d has only a left child, %d, inside the heap of size %d.", root, left, size)
	default:
		return fmt.Sprintf("Children of %d are %d and %d.", root, left, right)
	}
}
