// Package dp generates step traces for dynamic-programming algorithms that
// fill a two-dimensional table.
//
// Every step carries a full copy of the table. Highlights mark the cell being
// written (current), the cells it reads (dependency) and, at the end, the
// cells that make up the answer (result).
package dp

import (
	"github.com/matzehuels/algotrace/pkg/trace"
)

// Algorithm names.
const (
	NameEditDistance = "edit-distance"
	NameLCS          = "lcs"
	NameKnapsack     = "knapsack"
)

// table is the working DP table plus its recorder.
type table struct {
	rec       *trace.Recorder
	cells     [][]int
	rowLabels []string
	colLabels []string
}

// newTable allocates a zeroed rows x cols table whose recorder allows
// perCell steps for every cell.
func newTable(rows, cols, perCell int, rowLabels, colLabels []string) *table {
	cells := make([][]int, rows)
	for i := range cells {
		cells[i] = make([]int, cols)
	}
	return &table{
		rec:       trace.NewRecorder(trace.Budget(rows*cols, perCell)),
		cells:     cells,
		rowLabels: rowLabels,
		colLabels: colLabels,
	}
}

// emit records st with the live table and labels filled in.
func (t *table) emit(line int, msg string, st trace.TableState, panels ...trace.Panel) bool {
	st.Cells = t.cells
	st.Rows = len(t.cells)
	st.Cols = len(t.cells[0])
	st.RowLabels = t.rowLabels
	st.ColLabels = t.colLabels
	return t.rec.Emit(trace.TableStep(line, msg, st, panels...))
}

func (t *table) halted() bool { return t.rec.Halted() }

func cur(r, c int) trace.Cell { return trace.Cell{Row: r, Col: c, Role: trace.RoleCurrent} }
func dep(r, c int) trace.Cell { return trace.Cell{Row: r, Col: c, Role: trace.RoleDependency} }
func res(r, c int) trace.Cell { return trace.Cell{Row: r, Col: c, Role: trace.RoleResult} }

func highlight(cells ...trace.Cell) []trace.Cell { return cells }

// charLabels labels the rows or columns of a string table: an empty header
// for the base case followed by one entry per rune.
func charLabels(s []rune) []string {
	out := make([]string, 0, len(s)+1)
	out = append(out, "")
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
