package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algotrace/pkg/trace"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b int64
		want float64
	}{
		{48, 18, 6},
		{18, 48, 6},
		{17, 5, 1},
		{0, 9, 9},
		{9, 0, 9},
		{0, 0, 0},
		{1071, 462, 21},
	}
	for _, tt := range tests {
		tr := GCD(tt.a, tt.b)
		require.NoError(t, trace.Validate(tr.Steps, len(GCDListing)))

		last, ok := tr.Last()
		require.True(t, ok)
		assert.Equal(t, gcdReturn, last.Line)
		require.NotNil(t, last.Array.Result)
		assert.Equal(t, tt.want, last.Array.Values[*last.Array.Result], "gcd(%d, %d)", tt.a, tt.b)
	}
}

func TestGCDStepShape(t *testing.T) {
	tr := GCD(10, 4)
	lines := make([]int, len(tr.Steps))
	for i, s := range tr.Steps {
		lines[i] = s.Line
	}
	// 10,4 -> 4,2 -> 2,0
	assert.Equal(t, []int{
		gcdLoop, gcdMod, gcdShiftA, gcdShiftB,
		gcdLoop, gcdMod, gcdShiftA, gcdShiftB,
		gcdLoop, gcdReturn,
	}, lines)
}

func TestGCDDeterministic(t *testing.T) {
	assert.Equal(t, GCD(832040, 514229), GCD(832040, 514229))
}
