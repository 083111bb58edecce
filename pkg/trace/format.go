package trace

import (
	"strconv"
	"strings"
)

// Num formats a number for narration: integers print without a decimal
// point, other values use the shortest exact representation.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Nums formats a list of numbers as "[a, b, c]".
func Nums(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Num(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Range returns the indices start..end inclusive, or nil when end < start.
func Range(start, end int) []int {
	if end < start {
		return nil
	}
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}
