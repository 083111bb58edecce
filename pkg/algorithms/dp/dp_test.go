package dp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algotrace/pkg/trace"
)

func finalTable(t *testing.T, tr trace.Trace) trace.TableState {
	t.Helper()
	last, ok := tr.Last()
	require.True(t, ok)
	require.Equal(t, trace.KindTable, last.Kind)
	return *last.Table
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"", "", 0},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		tr := EditDistance(tt.a, tt.b)
		require.NoError(t, trace.Validate(tr.Steps, len(EditDistanceListing)))
		st := finalTable(t, tr)
		require.NotNil(t, st.Result)
		assert.Equal(t, tt.want, *st.Result, "%q -> %q", tt.a, tt.b)
	}
}

func TestEditDistanceDependencies(t *testing.T) {
	tr := EditDistance("ab", "ac")
	for _, s := range tr.Steps {
		if s.Line != edMin {
			continue
		}
		var deps int
		for _, c := range s.Table.Highlights {
			if c.Role == trace.RoleDependency {
				deps++
			}
		}
		assert.Equal(t, 3, deps)
	}
}

func TestLCS(t *testing.T) {
	tr := LCS("ABCBDAB", "BDCABA")
	require.NoError(t, trace.Validate(tr.Steps, len(LCSListing)))

	st := finalTable(t, tr)
	require.NotNil(t, st.Result)
	assert.Equal(t, 4, *st.Result)
	assert.Len(t, []rune(st.ResultText), 4)
	assert.True(t, isSubsequence(st.ResultText, "ABCBDAB"))
	assert.True(t, isSubsequence(st.ResultText, "BDCABA"))

	for _, c := range st.Highlights {
		assert.Equal(t, trace.RoleResult, c.Role)
	}
	assert.Equal(t, 7, st.Highlights[0].Row)
	assert.Equal(t, 6, st.Highlights[0].Col)
}

func TestLCSNoOverlap(t *testing.T) {
	st := finalTable(t, LCS("abc", "xyz"))
	assert.Equal(t, 0, *st.Result)
	assert.Empty(t, st.ResultText)
}

func isSubsequence(sub, s string) bool {
	rs := []rune(sub)
	k := 0
	for _, r := range s {
		if k < len(rs) && rs[k] == r {
			k++
		}
	}
	return k == len(rs)
}

func TestKnapsackExample(t *testing.T) {
	items := []Item{{3, 10}, {4, 40}, {5, 30}, {6, 50}}
	tr := Knapsack(items, 10)

	require.NoError(t, trace.Validate(tr.Steps, len(KnapsackListing)))
	st := finalTable(t, tr)
	require.NotNil(t, st.Result)
	assert.Equal(t, 90, *st.Result)
	assert.Equal(t, []int{1, 3}, st.Selected)
	assert.Equal(t, 5, st.Rows)
	assert.Equal(t, 11, st.Cols)
}

func TestKnapsackNothingFits(t *testing.T) {
	st := finalTable(t, Knapsack([]Item{{5, 10}}, 3))
	assert.Equal(t, 0, *st.Result)
	assert.Empty(t, st.Selected)
}

func TestKnapsackNoItems(t *testing.T) {
	tr := Knapsack(nil, 4)
	require.NoError(t, trace.Validate(tr.Steps, len(KnapsackListing)))
	assert.Equal(t, 0, *finalTable(t, tr).Result)
}

func TestTableSnapshotsIndependent(t *testing.T) {
	tr := EditDistance("ab", "b")
	before := tr.Steps[1].Table.Cells[0][0]
	tr.Steps[2].Table.Cells[0][0] = 42
	tr.Steps[0].Table.Cells[0][0] = 42
	assert.Equal(t, before, tr.Steps[1].Table.Cells[0][0])

	// Earlier snapshots do not see later writes.
	assert.Equal(t, 0, tr.Steps[1].Table.Cells[1][0])
}

func TestTablesDeterministic(t *testing.T) {
	assert.Equal(t, EditDistance("kitten", "sitting"), EditDistance("kitten", "sitting"))
	assert.Equal(t, LCS("AGGTAB", "GXTXAYB"), LCS("AGGTAB", "GXTXAYB"))
	items := []Item{{1, 1}, {3, 4}, {4, 5}, {5, 7}}
	assert.Equal(t, Knapsack(items, 7), Knapsack(items, 7))
}
