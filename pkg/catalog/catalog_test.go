package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algotrace/pkg/algorithms/graphs"
	"github.com/matzehuels/algotrace/pkg/algorithms/recursive"
	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/observability"
	"github.com/matzehuels/algotrace/pkg/trace"
)

func run(t *testing.T, name string, params map[string]string) trace.Trace {
	t.Helper()
	a, err := Lookup(name)
	require.NoError(t, err)
	tr, err := a.Run(context.Background(), params)
	require.NoError(t, err)
	return tr
}

func TestRegistry(t *testing.T) {
	names := Names()
	assert.Len(t, names, 17)
	assert.Equal(t, "binary-search", names[0])
	for _, a := range All() {
		assert.NotEmpty(t, a.Title, a.Name)
		assert.NotEmpty(t, a.Listing, a.Name)
		assert.NotEmpty(t, a.Params, a.Name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("bogo-sort")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownAlgorithm))
}

func TestEveryAlgorithmWithDefaults(t *testing.T) {
	for _, a := range All() {
		t.Run(a.Name, func(t *testing.T) {
			tr, err := a.Run(context.Background(), nil)
			require.NoError(t, err)
			require.NotEmpty(t, tr.Steps)
			assert.Equal(t, a.Name, tr.Algorithm)
			require.NoError(t, trace.Validate(tr.Steps, len(a.Listing)))
			for i, s := range tr.Steps {
				require.Equal(t, a.Kind, s.Kind, "step %d", i)
				require.NotEmpty(t, s.Message, "step %d", i)
			}

			again, err := a.Run(context.Background(), nil)
			require.NoError(t, err)
			assert.Equal(t, tr, again)
		})
	}
}

func TestEndToEndValues(t *testing.T) {
	t.Run("binary search", func(t *testing.T) {
		tr := run(t, "binary-search", map[string]string{"values": "1,2,3,4,5,6,7,8,9", "target": "7"})
		last, _ := tr.Last()
		assert.Equal(t, 6, *last.Array.Result)
		assert.Equal(t, []int{6}, last.Array.Sorted)
	})
	t.Run("heap sort", func(t *testing.T) {
		tr := run(t, "heap-sort", map[string]string{"values": "5,1,9,3,7,4,6,2,8"})
		last, _ := tr.Last()
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, last.Array.Values)
	})
	t.Run("dijkstra", func(t *testing.T) {
		tr := run(t, "dijkstra", map[string]string{"graph": "0:1(4),2(1);1:3(1);2:1(2),3(5);3:", "start": "0"})
		assert.Equal(t, map[string]float64{"0": 0, "1": 3, "2": 1, "3": 4}, graphs.Distances(tr))
	})
	t.Run("edit distance", func(t *testing.T) {
		tr := run(t, "edit-distance", map[string]string{"a": "kitten", "b": "sitting"})
		last, _ := tr.Last()
		assert.Equal(t, 3, *last.Table.Result)
	})
	t.Run("hanoi", func(t *testing.T) {
		tr := run(t, "hanoi", map[string]string{"disks": "3"})
		assert.Equal(t, 7, recursive.MoveCount(tr))
		last, _ := tr.Last()
		assert.Equal(t, []int{3, 2, 1}, last.Peg.Pegs[recursive.PegTo])
	})
	t.Run("knapsack", func(t *testing.T) {
		tr := run(t, "knapsack", map[string]string{"items": "3:10, 4:40, 5:30, 6:50", "capacity": "10"})
		last, _ := tr.Last()
		assert.Equal(t, 90, *last.Table.Result)
	})
}

func TestInputErrors(t *testing.T) {
	tests := []struct {
		alg    string
		params map[string]string
		code   errors.Code
	}{
		{"linear-search", map[string]string{"values": "1, two, 3"}, errors.ErrCodeInvalidNumber},
		{"linear-search", map[string]string{"target": "x"}, errors.ErrCodeInvalidNumber},
		{"linear-search", map[string]string{"colour": "red"}, errors.ErrCodeUnknownParam},
		{"gcd", map[string]string{"a": "-4"}, errors.ErrCodeOutOfRange},
		{"hanoi", map[string]string{"disks": "9"}, errors.ErrCodeOutOfRange},
		{"bfs", map[string]string{"graph": "A:B;;C:"}, errors.ErrCodeInvalidGraph},
		{"bfs", map[string]string{"start": "Z"}, errors.ErrCodeUnknownNode},
		{"dijkstra", map[string]string{"graph": "0:1;1:"}, errors.ErrCodeInvalidGraph},
		{"huffman", map[string]string{"text": "   "}, errors.ErrCodeInvalidInput},
		{"knapsack", map[string]string{"capacity": "51"}, errors.ErrCodeOutOfRange},
		{"knapsack", map[string]string{"items": "3-10"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		a, err := Lookup(tt.alg)
		require.NoError(t, err)
		_, err = a.Run(context.Background(), tt.params)
		require.Error(t, err, "%s %v", tt.alg, tt.params)
		assert.Equal(t, tt.code, errors.GetCode(err), "%s %v: %v", tt.alg, tt.params, err)
		assert.True(t, errors.IsInputError(err))
	}
}

func TestErrorNamesParameter(t *testing.T) {
	a, _ := Lookup("binary-search")
	_, err := a.Run(context.Background(), map[string]string{"target": "seven"})
	assert.Equal(t, `target: "seven" is not a number`, errors.UserMessage(err))
}

func TestArrayLengthLimit(t *testing.T) {
	a, _ := Lookup("quick-sort")
	long := "1"
	for i := 0; i < MaxArrayLength; i++ {
		long += ",1"
	}
	_, err := a.Run(context.Background(), map[string]string{"values": long})
	assert.True(t, errors.Is(err, errors.ErrCodeOutOfRange))
}

func TestEnvelope(t *testing.T) {
	a, _ := Lookup("gcd")
	env, err := a.Envelope(context.Background(), map[string]string{"a": "21"})
	require.NoError(t, err)
	assert.NotEmpty(t, env.ID)
	assert.Equal(t, "gcd", env.Algorithm)
	assert.Equal(t, map[string]string{"a": "21", "b": "18"}, env.Params)
	assert.Equal(t, a.Listing, env.Listing)
}

func TestRunFiresHooks(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)
	hooks := &recordingHooks{}
	observability.SetGenerationHooks(hooks)

	a, _ := Lookup("gcd")
	tr, err := a.Run(context.Background(), nil)
	require.NoError(t, err)
	_, err = a.Run(context.Background(), map[string]string{"a": "x"})
	require.Error(t, err)

	assert.Equal(t, []string{"gcd", "gcd"}, hooks.started)
	require.Len(t, hooks.steps, 2)
	assert.Equal(t, tr.Len(), hooks.steps[0])
	assert.Zero(t, hooks.steps[1])
	assert.NoError(t, hooks.errs[0])
	assert.Error(t, hooks.errs[1])
}

type recordingHooks struct {
	started []string
	steps   []int
	errs    []error
}

func (h *recordingHooks) OnGenerateStart(_ context.Context, alg string, _ map[string]string) {
	h.started = append(h.started, alg)
}

func (h *recordingHooks) OnGenerateComplete(_ context.Context, _ string, steps int, _ time.Duration, err error) {
	h.steps = append(h.steps, steps)
	h.errs = append(h.errs, err)
}

func TestCheckSteps(t *testing.T) {
	alg, err := Lookup("binary-search")
	require.NoError(t, err)
	tr, err := alg.Run(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, CheckSteps(tr, 0))
	require.NoError(t, CheckSteps(tr, tr.Len()))
	err = CheckSteps(tr, tr.Len()-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeOutOfRange))
}

func TestExportMergesDefaults(t *testing.T) {
	alg, err := Lookup("gcd")
	require.NoError(t, err)
	tr, err := alg.Run(context.Background(), map[string]string{"a": "10"})
	require.NoError(t, err)

	env := alg.Export(tr, map[string]string{"a": "10"})
	assert.Equal(t, "10", env.Params["a"])
	assert.Equal(t, "18", env.Params["b"])
	assert.Equal(t, alg.Listing, env.Listing)
}
