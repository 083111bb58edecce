// Package input normalizes raw textual input into the typed values that
// algorithm generators consume.
//
// Generators assume their input is valid; this package is where validity is
// decided. Every function returns either a fully typed value or an
// *errors.Error whose code classifies the problem:
//
//	INVALID_NUMBER  a token is not a finite number
//	INVALID_INPUT   a string is empty or too long, an item list is malformed
//	OUT_OF_RANGE    a number lies outside the permitted bounds
//	INVALID_GRAPH   the graph text does not follow the grammar
//	UNKNOWN_NODE    a start node is not part of the graph
//
// There are no partial results: a single malformed token rejects the whole
// input, so callers can keep their previous valid state untouched.
//
// # Graph Grammar
//
//	graph    = entry (";" entry)* [";"]
//	entry    = nodeId ":" [neighbor ("," neighbor)*]
//	neighbor = nodeId ["(" nonNegativeNumber ")"]
//
// An entry with no neighbors denotes an isolated node. See [ParseGraph].
package input

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/algotrace/pkg/errors"
)

// MaxTextLength bounds strings accepted by [ParseText].
const MaxTextLength = 64

// ParseNumbers parses a list of numbers separated by commas and/or
// whitespace. An empty or blank string yields an empty, non-nil slice.
func ParseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := ParseNumber(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseNumber parses a single finite number.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeInvalidNumber, "%q is not a number", s)
	}
	return v, nil
}

// ParseInt parses an integer and checks it lies within [min, max].
func ParseInt(s string, min, max int) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidNumber, "%q is not an integer", s)
	}
	if v < min || v > max {
		return 0, errors.New(errors.ErrCodeOutOfRange, "%d is outside [%d, %d]", v, min, max)
	}
	return v, nil
}

// ParseText trims s and checks that it is non-empty and at most maxLen runes
// long. A maxLen <= 0 means [MaxTextLength].
func ParseText(s string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = MaxTextLength
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "text cannot be empty")
	}
	if n := len([]rune(s)); n > maxLen {
		return "", errors.New(errors.ErrCodeOutOfRange, "text has %d characters (max %d)", n, maxLen)
	}
	return s, nil
}

// ParseOptionalText is like [ParseText] but accepts the empty string.
func ParseOptionalText(s string, maxLen int) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return ParseText(s, maxLen)
}

// Item is a knapsack item.
type Item struct {
	Weight int
	Value  int
}

// ParseItems parses knapsack items written as "weight:value" pairs separated
// by commas, semicolons or whitespace, e.g. "3:10, 4:40". Weights must be
// positive and values non-negative.
func ParseItems(s string) ([]Item, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "at least one item is required")
	}
	items := make([]Item, 0, len(fields))
	for i, f := range fields {
		w, v, ok := strings.Cut(f, ":")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "item %d: %q is not weight:value", i+1, f)
		}
		weight, err := ParseInt(w, 1, math.MaxInt32)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "item %d weight", i+1)
		}
		value, err := ParseInt(v, 0, math.MaxInt32)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "item %d value", i+1)
		}
		items = append(items, Item{Weight: weight, Value: value})
	}
	return items, nil
}
