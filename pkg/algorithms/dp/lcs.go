package dp

import (
	"fmt"
	"slices"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// LCSListing is the pseudocode shown next to longest common subsequence
// traces.
var LCSListing = []string{
	"function lcs(a, b):",
	"  m, n = len(a), len(b)",
	"  for i = 0 to m: dp[i][0] = 0",
	"  for j = 0 to n: dp[0][j] = 0",
	"  for i = 1 to m:",
	"    for j = 1 to n:",
	"      if a[i-1] == b[j-1]:",
	"        dp[i][j] = dp[i-1][j-1] + 1",
	"      else:",
	"        dp[i][j] = max(dp[i-1][j], dp[i][j-1])",
	"  i, j, result = m, n, \"\"",
	"  while i > 0 and j > 0:",
	"    if a[i-1] == b[j-1]: result = a[i-1] + result; i--; j--",
	"    else if dp[i-1][j] >= dp[i][j-1]: i--",
	"    else: j--",
	"  return result",
}

const (
	lcsInit      = 2
	lcsBaseCol   = 3
	lcsBaseRow   = 4
	lcsCompare   = 7
	lcsMatch     = 8
	lcsMax       = 10
	lcsBackStart = 11
	lcsBackLoop  = 12
	lcsBackTake  = 13
	lcsBackUp    = 14
	lcsBackLeft  = 15
	lcsReturn    = 16
)

// LCS traces the longest common subsequence of a and b, then backtracks
// from dp[m][n] to recover one concrete subsequence.
func LCS(a, b string) trace.Trace {
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)
	t := newTable(m+1, n+1, 3, charLabels(ra), charLabels(rb))
	dp := t.cells

	t.emit(lcsInit, fmt.Sprintf("Compare %q with %q: the table has %d x %d cells.", a, b, m+1, n+1), trace.TableState{})
	for i := 0; i <= m && !t.halted(); i++ {
		t.emit(lcsBaseCol, fmt.Sprintf("dp[%d][0] = 0: nothing is shared with an empty string.", i), trace.TableState{Highlights: highlight(cur(i, 0))})
	}
	for j := 1; j <= n && !t.halted(); j++ {
		t.emit(lcsBaseRow, fmt.Sprintf("dp[0][%d] = 0: nothing is shared with an empty string.", j), trace.TableState{Highlights: highlight(cur(0, j))})
	}

	for i := 1; i <= m && !t.halted(); i++ {
		for j := 1; j <= n && !t.halted(); j++ {
			ca, cb := ra[i-1], rb[j-1]
			if ca == cb {
				hl := highlight(cur(i, j), dep(i-1, j-1))
				t.emit(lcsCompare, fmt.Sprintf("a[%d] = %q equals b[%d] = %q.", i-1, ca, j-1, cb), trace.TableState{Highlights: hl})
				dp[i][j] = dp[i-1][j-1] + 1
				t.emit(lcsMatch, fmt.Sprintf("Extend the diagonal: dp[%d][%d] = %d + 1 = %d.", i, j, dp[i-1][j-1], dp[i][j]), trace.TableState{Highlights: hl})
				continue
			}
			hl := highlight(cur(i, j), dep(i-1, j), dep(i, j-1))
			t.emit(lcsCompare, fmt.Sprintf("a[%d] = %q differs from b[%d] = %q.", i-1, ca, j-1, cb), trace.TableState{Highlights: hl})
			dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			t.emit(lcsMax, fmt.Sprintf("dp[%d][%d] = max(%d, %d) = %d.", i, j, dp[i-1][j], dp[i][j-1], dp[i][j]), trace.TableState{Highlights: hl})
		}
	}

	i, j := m, n
	var out []rune
	path := []trace.Cell{res(i, j)}
	withPath := func(extra ...trace.Cell) []trace.Cell {
		return append(slices.Clone(path), extra...)
	}
	t.emit(lcsBackStart, fmt.Sprintf("The LCS has length %d; walk back from dp[%d][%d].", dp[m][n], m, n), trace.TableState{Highlights: withPath()})

	for i > 0 && j > 0 && !t.halted() {
		t.emit(lcsBackLoop, fmt.Sprintf("At dp[%d][%d] = %d.", i, j, dp[i][j]), trace.TableState{Highlights: withPath(), ResultText: string(out)})
		switch {
		case ra[i-1] == rb[j-1]:
			out = slices.Insert(out, 0, ra[i-1])
			i, j = i-1, j-1
			path = append(path, res(i, j))
			t.emit(lcsBackTake, fmt.Sprintf("%q is shared: prepend it and move diagonally.", ra[i]), trace.TableState{Highlights: withPath(), ResultText: string(out)})
		case dp[i-1][j] >= dp[i][j-1]:
			i--
			path = append(path, res(i, j))
			t.emit(lcsBackUp, fmt.Sprintf("dp[%d][%d] >= dp[%d][%d]: move up.", i, j, i+1, j-1), trace.TableState{Highlights: withPath(), ResultText: string(out)})
		default:
			j--
			path = append(path, res(i, j))
			t.emit(lcsBackLeft, fmt.Sprintf("dp[%d][%d] > dp[%d][%d]: move left.", i, j, i-1, j+1), trace.TableState{Highlights: withPath(), ResultText: string(out)})
		}
	}

	if !t.halted() {
		t.emit(lcsReturn, fmt.Sprintf("A longest common subsequence is %q (length %d).", string(out), len(out)),
			trace.TableState{Highlights: withPath(), Result: trace.Ptr(dp[m][n]), ResultText: string(out)})
	}
	return trace.Trace{Algorithm: NameLCS, Steps: t.rec.Steps()}
}
