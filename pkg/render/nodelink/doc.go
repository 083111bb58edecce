// Package nodelink renders graph and tree steps as node-link diagrams.
//
// # DOT Format
//
// [ToDOT] produces Graphviz DOT source for a single step. Nodes keep the
// positions stored in the step (converted from screen pixels to inches with
// the y axis flipped) and are pinned with "pos=x,y!", so the neato engine
// reproduces the layout a learner sees in every other view. Colors come
// from the step's node and edge color tags.
//
// Graph steps become a digraph when any edge is directed. Tree steps are
// always drawn as a digraph from parents to children with the 0/1 branch
// labels on the edges.
//
// # Options
//
//   - Detailed: node labels include distances (graph) or weights (tree), and
//     the step message is added as a caption.
//
// # Rendering
//
// [RenderSVG] renders DOT source with [github.com/goccy/go-graphviz], which
// embeds Graphviz as WebAssembly, so no system install is needed. [StepSVG]
// combines both and reports through the render hooks of
// [github.com/matzehuels/algotrace/pkg/observability].
package nodelink
