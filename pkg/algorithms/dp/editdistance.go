package dp

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// EditDistanceListing is the pseudocode shown next to edit distance traces.
var EditDistanceListing = []string{
	"function editDistance(a, b):",
	"  m, n = len(a), len(b)",
	"  for i = 0 to m: dp[i][0] = i",
	"  for j = 0 to n: dp[0][j] = j",
	"  for i = 1 to m:",
	"    for j = 1 to n:",
	"      if a[i-1] == b[j-1]:",
	"        dp[i][j] = dp[i-1][j-1]",
	"      else:",
	"        dp[i][j] = 1 + min(dp[i-1][j], dp[i][j-1], dp[i-1][j-1])",
	"  return dp[m][n]",
}

const (
	edInit    = 2
	edBaseCol = 3
	edBaseRow = 4
	edCompare = 7
	edCopy    = 8
	edMin     = 10
	edReturn  = 11
)

// EditDistance traces the Levenshtein distance between a and b with unit
// costs for insertion, deletion and substitution.
func EditDistance(a, b string) trace.Trace {
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)
	t := newTable(m+1, n+1, 2, charLabels(ra), charLabels(rb))
	dp := t.cells

	t.emit(edInit, fmt.Sprintf("Transform %q into %q: the table has %d x %d cells.", a, b, m+1, n+1), trace.TableState{})

	for i := 0; i <= m && !t.halted(); i++ {
		dp[i][0] = i
		t.emit(edBaseCol, fmt.Sprintf("dp[%d][0] = %d: delete %d character(s).", i, i, i), trace.TableState{Highlights: highlight(cur(i, 0))})
	}
	for j := 1; j <= n && !t.halted(); j++ {
		dp[0][j] = j
		t.emit(edBaseRow, fmt.Sprintf("dp[0][%d] = %d: insert %d character(s).", j, j, j), trace.TableState{Highlights: highlight(cur(0, j))})
	}

	for i := 1; i <= m && !t.halted(); i++ {
		for j := 1; j <= n && !t.halted(); j++ {
			ca, cb := ra[i-1], rb[j-1]
			if ca == cb {
				hl := highlight(cur(i, j), dep(i-1, j-1))
				t.emit(edCompare, fmt.Sprintf("a[%d] = %q equals b[%d] = %q.", i-1, ca, j-1, cb), trace.TableState{Highlights: hl})
				dp[i][j] = dp[i-1][j-1]
				t.emit(edCopy, fmt.Sprintf("No edit needed: dp[%d][%d] = dp[%d][%d] = %d.", i, j, i-1, j-1, dp[i][j]), trace.TableState{Highlights: hl})
				continue
			}
			hl := highlight(cur(i, j), dep(i-1, j), dep(i, j-1), dep(i-1, j-1))
			t.emit(edCompare, fmt.Sprintf("a[%d] = %q differs from b[%d] = %q.", i-1, ca, j-1, cb), trace.TableState{Highlights: hl})
			del, ins, sub := dp[i-1][j], dp[i][j-1], dp[i-1][j-1]
			dp[i][j] = 1 + min(del, ins, sub)
			t.emit(edMin, fmt.Sprintf("dp[%d][%d] = 1 + min(delete %d, insert %d, replace %d) = %d.", i, j, del, ins, sub, dp[i][j]), trace.TableState{Highlights: hl})
		}
	}

	if !t.halted() {
		t.emit(edReturn, fmt.Sprintf("The edit distance between %q and %q is %d.", a, b, dp[m][n]),
			trace.TableState{Highlights: highlight(res(m, n)), Result: trace.Ptr(dp[m][n])})
	}
	return trace.Trace{Algorithm: NameEditDistance, Steps: t.rec.Steps()}
}
