// Package render draws trace steps as images.
//
// The [nodelink] subpackage turns graph and tree steps into Graphviz DOT
// source with every node pinned to the coordinates the generator computed,
// and renders that source to SVG in-process:
//
//	dot, err := nodelink.ToDOT(step, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Array, table and peg steps have no node-link form; terminal and HTTP
// clients draw those directly from the step payload.
//
// [nodelink]: github.com/matzehuels/algotrace/pkg/render/nodelink
package render
