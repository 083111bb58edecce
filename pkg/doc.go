// Package pkg provides the core libraries for algotrace, a step-by-step
// visualizer for classic algorithms.
//
// # Overview
//
// Every algorithm is a deterministic generator: given its parameters it
// produces the complete list of steps up front, each step carrying a
// narration message, the highlighted pseudocode line and exactly one
// visual payload (array, graph, table, pegs or tree). Playback never calls
// back into the generator.
//
// # Architecture
//
//	user parameters
//	       ↓
//	  [input]      (parse numbers, graphs, items, text)
//	       ↓
//	  [algorithms] (search, sorting, numeric, graphs, dp, recursive)
//	       ↓
//	  [trace]      (steps, recorder budget, validation, JSON/YAML envelope)
//	       ↓
//	  [playback]   (Idle/Ready/Playing/Paused/Finished controller)
//	  [render]     (graph and tree steps as DOT/SVG)
//
// [catalog] ties generators to names, parameter schemas and pseudocode
// listings; the CLI and the HTTP server only ever talk to the catalog.
//
// # Quick Start
//
//	alg, _ := catalog.Lookup("binary-search")
//	t, err := alg.Run(ctx, map[string]string{"target": "11"})
//	if err != nil {
//	    return err
//	}
//	c := playback.New(playback.WithSpeed(200 * time.Millisecond))
//	_ = c.SetInput(playback.FromTrace(t))
//	_ = c.Play()
//
// # Main Packages
//
// [trace] - The step model shared by every generator and consumer.
//
// [layout] - Deterministic node positions (circle and binary forest).
//
// [errors] - Structured errors with codes and user-facing messages.
//
// [observability] - Hooks for generation, playback and rendering.
//
// [trace]: https://pkg.go.dev/github.com/matzehuels/algotrace/pkg/trace
// [catalog]: https://pkg.go.dev/github.com/matzehuels/algotrace/pkg/catalog
// [layout]: https://pkg.go.dev/github.com/matzehuels/algotrace/pkg/layout
// [errors]: https://pkg.go.dev/github.com/matzehuels/algotrace/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/algotrace/pkg/observability
//
// [input]: https://pkg.go.dev/github.com/matzehuels/algotrace/pkg/input
// [algorithms]: https://pkg.go.dev/github.com/matzehuels/algotrace/pkg/algorithms
// [playback]: https://pkg.go.dev/github.com/matzehuels/algotrace/pkg/playback
// [render]: https://pkg.go.dev/github.com/matzehuels/algotrace/pkg/render
package pkg
