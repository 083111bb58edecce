// Package trace defines the step model shared by every algorithm generator.
//
// A trace is a fully materialized, totally ordered list of [Step] values.
// Each step is an immutable snapshot of the algorithm's visible state at one
// discrete moment: the cells of an array, the colors of graph nodes, the
// contents of a dynamic-programming table, the disks on each peg, or the
// shape of a tree under construction. A playback engine only ever holds an
// index into the list; it never needs to re-run or understand the algorithm.
//
// # Step Kinds
//
// [Step] is a discriminated union. The Kind field selects which payload is
// populated:
//
//	array: Array  - values, active/swapping/sorted indices, range, pivot
//	graph: Graph  - positioned nodes with colors, edges, distances
//	table: Table  - 2D cells with current/dependency/result highlights
//	peg:   Peg    - disk stacks per peg, last move, active call
//	tree:  Tree   - binary forest with phase tag and assigned codes
//
// Common fields (Line, Message, Panels) are shared by all kinds. Line is the
// 1-based pseudocode line to highlight; 0 means "no line" and is used for
// narration and diagnostic steps.
//
// # Recording
//
// Generators emit steps through a [Recorder]. The recorder deep-copies every
// payload on [Recorder.Emit], so later mutation of live algorithm variables
// can never corrupt an earlier snapshot. It also enforces a step budget:
// once the budget is spent it appends a single diagnostic step and ignores
// further emits. Loops whose termination depends on algorithm correctness
// additionally use a [Guard].
//
// # Validation
//
// [Validate] checks the structural invariants of a trace: every index and
// cell coordinate lies inside the snapshot it accompanies, graph edges
// reference existing nodes, and every Line exists in the paired listing.
//
// # Export
//
// [Envelope] wraps a trace with its listing and parameters for consumption by
// external renderers. Envelopes round-trip through JSON and YAML.
package trace
