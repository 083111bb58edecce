package sorting

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algotrace/pkg/trace"
)

type sortFunc func([]float64) trace.Trace

var sorters = map[string]struct {
	run     sortFunc
	listing []string
}{
	NameHeap:  {Heap, HeapListing},
	NameQuick: {Quick, QuickListing},
	NameMerge: {Merge, MergeListing},
}

var inputs = [][]float64{
	{5, 1, 9, 3, 7, 4, 6, 2, 8},
	{1},
	{2, 1},
	{3, 3, 3},
	{1, 2, 3, 4, 5},
	{5, 4, 3, 2, 1},
	{0.5, -2, 10, 0.5, 7.25, -2},
}

func final(t *testing.T, tr trace.Trace) trace.ArrayState {
	t.Helper()
	last, ok := tr.Last()
	require.True(t, ok)
	require.NotNil(t, last.Array)
	return *last.Array
}

// requireMonotonic checks that the sorted set never loses an index.
func requireMonotonic(t *testing.T, steps []trace.Step) {
	t.Helper()
	var prev []int
	for i, s := range steps {
		for _, idx := range prev {
			require.Contains(t, s.Array.Sorted, idx, "step %d dropped sorted index %d", i, idx)
		}
		prev = s.Array.Sorted
	}
}

func TestHeapSortExample(t *testing.T) {
	tr := Heap([]float64{5, 1, 9, 3, 7, 4, 6, 2, 8})

	st := final(t, tr)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, st.Values)
	assert.Equal(t, trace.Range(0, 8), st.Sorted)
}

func TestSortersSort(t *testing.T) {
	for name, s := range sorters {
		for _, in := range inputs {
			tr := s.run(in)
			require.NoError(t, trace.Validate(tr.Steps, len(s.listing)), "%s %v", name, in)

			want := slices.Clone(in)
			slices.Sort(want)
			st := final(t, tr)
			assert.Equal(t, want, st.Values, "%s %v", name, in)
			assert.Len(t, st.Sorted, len(in), "%s %v", name, in)
			requireMonotonic(t, tr.Steps)
		}
	}
}

func TestSortersLeaveInputAlone(t *testing.T) {
	for name, s := range sorters {
		in := []float64{3, 1, 2}
		s.run(in)
		assert.Equal(t, []float64{3, 1, 2}, in, name)
	}
}

func TestSortersEmpty(t *testing.T) {
	for name, s := range sorters {
		tr := s.run(nil)
		require.Len(t, tr.Steps, 1, name)
		assert.Equal(t, trace.NoLine, tr.Steps[0].Line)
	}
	tr := DutchFlag(nil, DefaultPivot)
	require.Len(t, tr.Steps, 1)
}

func TestSortersDeterministic(t *testing.T) {
	in := []float64{4, 8, 1, 8, 2}
	for name, s := range sorters {
		assert.Equal(t, s.run(in), s.run(in), name)
	}
	assert.Equal(t, DutchFlag(in, 4), DutchFlag(in, 4))
}

func TestAlreadySortedNarration(t *testing.T) {
	tr := Merge([]float64{1, 2, 3})
	assert.Equal(t, trace.NoLine, tr.Steps[0].Line)
	assert.NotEqual(t, trace.NoLine, Merge([]float64{2, 1, 3}).Steps[0].Line)
}

func TestDutchFlag(t *testing.T) {
	tr := DutchFlag([]float64{2, 0, 2, 1, 1, 0}, DefaultPivot)

	require.NoError(t, trace.Validate(tr.Steps, len(DutchFlagListing)))
	st := final(t, tr)
	assert.Equal(t, []float64{0, 0, 1, 1, 2, 2}, st.Values)
	assert.Equal(t, trace.Range(0, 5), st.Sorted)
	requireMonotonic(t, tr.Steps)
}

func TestDutchFlagArbitraryPivot(t *testing.T) {
	tr := DutchFlag([]float64{9, 5, 1, 5, 7, 3}, 5)

	st := final(t, tr)
	for i, v := range st.Values {
		switch {
		case i < 2:
			assert.Less(t, v, float64(5))
		case i < 4:
			assert.Equal(t, float64(5), v)
		default:
			assert.Greater(t, v, float64(5))
		}
	}
}

func TestQuickSortEntersAndExitsEveryCall(t *testing.T) {
	tr := Quick([]float64{3, 1, 2})

	var enters, exits int
	for _, s := range tr.Steps {
		if s.Line == qsEnter {
			enters++
			require.NotEmpty(t, s.Panels)
			assert.Equal(t, "call stack", s.Panels[0].Name)
		}
		if s.Line == qsBase && s.Array.Range != nil && s.Array.Range.Start >= s.Array.Range.End {
			exits++
		}
	}
	assert.Positive(t, enters)
	assert.Positive(t, exits)
}

// requireBalancedCalls checks that every enter step is closed by a return
// step for the same call, innermost first, and that both carry a range.
func requireBalancedCalls(t *testing.T, steps []trace.Step, enter, exit *regexp.Regexp) {
	t.Helper()
	var open []string
	enters := 0
	for i, s := range steps {
		if m := enter.FindStringSubmatch(s.Message); m != nil {
			require.NotNil(t, s.Array.Range, "step %d", i)
			open = append(open, m[1])
			enters++
			continue
		}
		if m := exit.FindStringSubmatch(s.Message); m != nil {
			require.NotNil(t, s.Array.Range, "step %d", i)
			require.NotEmpty(t, open, "step %d returns from %s without a call", i, m[1])
			assert.Equal(t, open[len(open)-1], m[1], "step %d", i)
			open = open[:len(open)-1]
		}
	}
	assert.Positive(t, enters)
	assert.Empty(t, open, "calls without a return step")
}

func TestMergeSortEntersAndExitsEveryCall(t *testing.T) {
	tr := Merge([]float64{5, 1, 9, 3, 7, 4, 6, 2, 8})

	requireBalancedCalls(t, tr.Steps,
		regexp.MustCompile(`^Enter mergeSort\(arr, (\d+, \d+)\)`),
		regexp.MustCompile(`mergeSort\(arr, (\d+, \d+)\) returns`))
}

func TestHeapifyEntersAndExitsEveryCall(t *testing.T) {
	for _, in := range inputs {
		if len(in) < 2 {
			continue
		}
		tr := Heap(in)
		requireBalancedCalls(t, tr.Steps,
			regexp.MustCompile(`^heapify\(arr, (\d+, \d+)\): sift`),
			regexp.MustCompile(`heapify\(arr, (\d+, \d+)\) returns`))
	}
}

func TestHeapChildrenNarration(t *testing.T) {
	tr := Heap([]float64{2, 1})

	var msgs []string
	for _, s := range tr.Steps {
		if s.Line == heapChildren {
			msgs = append(msgs, s.Message)
		}
	}
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "only a left child, 1")
	assert.Contains(t, msgs[1], "it is a leaf")
	for _, m := range msgs {
		assert.False(t, strings.HasPrefix(m, "Children of 0 are 1 and 2"), m)
	}
}

func TestSnapshotsIndependent(t *testing.T) {
	tr := Heap([]float64{3, 2, 1})
	before := slices.Clone(tr.Steps[1].Array.Values)
	tr.Steps[0].Array.Values[0] = 99
	tr.Steps[2].Array.Values[0] = 99

	assert.Equal(t, before, tr.Steps[1].Array.Values)
}

func TestLargeInputTerminates(t *testing.T) {
	in := make([]float64, 400)
	for i := range in {
		in[i] = float64(len(in) - i)
	}
	for name, s := range sorters {
		tr := s.run(in)
		assert.LessOrEqual(t, tr.Len(), trace.MaxBudget+1, name)
		require.NoError(t, trace.Validate(tr.Steps, len(s.listing)), name)
	}
}
