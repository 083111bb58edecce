// Package catalog is the registry of traceable algorithms.
//
// Each [Algorithm] binds metadata (name, title, category, parameter schema
// with defaults, pseudocode listing) to a generator. [Algorithm.Run] takes
// raw text parameters as typed by a user, normalizes them with package
// input and then generates the trace. Input errors come back as
// *errors.Error and no trace is generated.
//
// The CLI, the terminal player and the HTTP API all go through this package,
// so an algorithm registered here is available everywhere.
package catalog

import (
	"context"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/observability"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// Category groups algorithms by the family they belong to.
type Category string

// Categories.
const (
	CategorySearch    Category = "search"
	CategorySorting   Category = "sorting"
	CategoryNumeric   Category = "numeric"
	CategoryGraph     Category = "graph"
	CategoryDP        Category = "dynamic-programming"
	CategoryRecursive Category = "recursive"
)

// ParamType describes the grammar a parameter accepts.
type ParamType string

// Parameter types.
const (
	TypeNumbers ParamType = "numbers"
	TypeNumber  ParamType = "number"
	TypeInteger ParamType = "integer"
	TypeText    ParamType = "text"
	TypeGraph   ParamType = "graph"
	TypeNode    ParamType = "node"
	TypeItems   ParamType = "items"
)

// Param describes one input of an algorithm.
type Param struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Default     string    `json:"default"`
	Description string    `json:"description"`
}

// Algorithm is a registered generator with its metadata.
type Algorithm struct {
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	Kind        trace.Kind `json:"kind"`
	Description string     `json:"description"`
	Params      []Param    `json:"params"`
	Listing     []string   `json:"listing,omitempty"`

	generate func(args map[string]string) (trace.Trace, error)
}

// Defaults returns the default value of every parameter.
func (a *Algorithm) Defaults() map[string]string {
	out := make(map[string]string, len(a.Params))
	for _, p := range a.Params {
		out[p.Name] = p.Default
	}
	return out
}

// Param returns the parameter with the given name.
func (a *Algorithm) Param(name string) (Param, bool) {
	for _, p := range a.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Resolve merges params over the defaults. Unknown names are rejected with
// UNKNOWN_PARAM.
func (a *Algorithm) Resolve(params map[string]string) (map[string]string, error) {
	merged := a.Defaults()
	for _, name := range slices.Sorted(maps.Keys(params)) {
		if _, ok := a.Param(name); !ok {
			return nil, errors.New(errors.ErrCodeUnknownParam, "%s has no parameter %q (known: %v)", a.Name, name, a.paramNames())
		}
		merged[name] = params[name]
	}
	return merged, nil
}

func (a *Algorithm) paramNames() []string {
	names := make([]string, len(a.Params))
	for i, p := range a.Params {
		names[i] = p.Name
	}
	return names
}

// Run normalizes params (missing ones take their defaults) and generates a
// trace. Generation hooks observe every run.
func (a *Algorithm) Run(ctx context.Context, params map[string]string) (trace.Trace, error) {
	args, err := a.Resolve(params)
	if err != nil {
		return trace.Trace{}, err
	}

	hooks := observability.Generation()
	hooks.OnGenerateStart(ctx, a.Name, args)
	start := time.Now()

	t, err := a.generate(args)
	if err != nil {
		hooks.OnGenerateComplete(ctx, a.Name, 0, time.Since(start), err)
		return trace.Trace{}, err
	}
	t.Algorithm = a.Name
	hooks.OnGenerateComplete(ctx, a.Name, t.Len(), time.Since(start), nil)
	return t, nil
}

// Envelope runs the algorithm and wraps the trace for export.
func (a *Algorithm) Envelope(ctx context.Context, params map[string]string) (trace.Envelope, error) {
	t, err := a.Run(ctx, params)
	if err != nil {
		return trace.Envelope{}, err
	}
	return a.Export(t, params), nil
}

// Export wraps a trace produced by this algorithm for export. params are
// merged over the defaults the same way [Algorithm.Run] merges them.
func (a *Algorithm) Export(t trace.Trace, params map[string]string) trace.Envelope {
	args, err := a.Resolve(params)
	if err != nil {
		args = a.Defaults()
	}
	return trace.NewEnvelope(t, string(a.Category), args, a.Listing)
}

// CheckSteps rejects a trace longer than max steps. A max below 1 disables
// the check.
func CheckSteps(t trace.Trace, max int) error {
	if max > 0 && t.Len() > max {
		return errors.New(errors.ErrCodeOutOfRange, "%s produced %d steps, more than the limit of %d", t.Algorithm, t.Len(), max)
	}
	return nil
}

// =============================================================================
// Registry
// =============================================================================

var (
	registry []*Algorithm
	byName   map[string]*Algorithm
)

func register(algs ...*Algorithm) {
	if byName == nil {
		byName = make(map[string]*Algorithm)
	}
	for _, a := range algs {
		if _, dup := byName[a.Name]; dup {
			panic("catalog: duplicate algorithm " + a.Name)
		}
		registry = append(registry, a)
		byName[a.Name] = a
	}
}

// All returns every registered algorithm ordered by category, then name.
func All() []*Algorithm {
	out := slices.Clone(registry)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return categoryRank(out[i].Category) < categoryRank(out[j].Category)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns the registered algorithm names in [All] order.
func Names() []string {
	algs := All()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name
	}
	return names
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (*Algorithm, error) {
	if a, ok := byName[name]; ok {
		return a, nil
	}
	return nil, errors.New(errors.ErrCodeUnknownAlgorithm, "unknown algorithm %q", name)
}

func categoryRank(c Category) int {
	switch c {
	case CategorySearch:
		return 0
	case CategorySorting:
		return 1
	case CategoryNumeric:
		return 2
	case CategoryGraph:
		return 3
	case CategoryDP:
		return 4
	default:
		return 5
	}
}
