package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/render/nodelink"
	"github.com/matzehuels/algotrace/pkg/trace"
)

type renderOpts struct {
	sets     []string
	step     int
	dot      bool
	detailed bool
	output   string
}

// renderCommand creates the render command for drawing one graph or tree step.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{step: -1}

	cmd := &cobra.Command{
		Use:   "render <algorithm>",
		Short: "Draw one graph or tree step as SVG or DOT",
		Long: `Draw one step of a graph traversal or Huffman trace as a node-link diagram.

Nodes keep the positions shown in every other view. SVG is rendered with an
embedded Graphviz; --dot prints the Graphviz source instead.`,
		Example: `  algotrace render dijkstra --step 5 -o step5.svg
  algotrace render huffman --set text=banana --dot`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAlgorithms,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "algorithm parameter as name=value (repeatable)")
	cmd.Flags().IntVar(&opts.step, "step", -1, "step index to draw (default: last step)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "output Graphviz DOT instead of SVG")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show distances or weights and the step message")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, name string, opts renderOpts) error {
	params, err := parseSets(opts.sets)
	if err != nil {
		return err
	}
	_, t, err := c.generate(cmd.Context(), name, params)
	if err != nil {
		return err
	}
	step, index, err := pickStep(t, opts.step)
	if err != nil {
		return err
	}

	nlOpts := nodelink.Options{Detailed: opts.detailed}
	var data []byte
	if opts.dot {
		dot, err := nodelink.ToDOT(step, nlOpts)
		if err != nil {
			return err
		}
		data = []byte(dot)
	} else {
		prog := newProgress(loggerFromContext(cmd.Context()))
		var spin *Spinner
		if opts.output != "" {
			spin = newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), "Rendering SVG...")
			spin.Start()
		}
		data, err = nodelink.StepSVG(cmd.Context(), step, nlOpts)
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered step %d of %s", index, name))
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(cmd.OutOrStdout(), "Rendered step %d/%d of %s", index, t.Len()-1, name)
	printFile(cmd.OutOrStdout(), opts.output)
	return nil
}

// pickStep returns the step at index, where a negative index counts from
// the end.
func pickStep(t trace.Trace, index int) (trace.Step, int, error) {
	if index < 0 {
		index += t.Len()
	}
	if index < 0 || index >= t.Len() {
		return trace.Step{}, 0, errors.New(errors.ErrCodeStepNotFound, "step %d does not exist; the trace has %d steps", index, t.Len())
	}
	return t.Steps[index], index, nil
}
