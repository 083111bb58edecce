package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algotrace/pkg/catalog"
	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// formatText is the human-readable trace format; json and yaml come from
// package trace.
const formatText = "text"

type traceOpts struct {
	sets   []string
	format string
	output string
}

// traceCommand creates the trace command.
func (c *CLI) traceCommand() *cobra.Command {
	var opts traceOpts

	cmd := &cobra.Command{
		Use:   "trace <algorithm>",
		Short: "Generate a trace and export it",
		Long: `Generate a trace and export it.

JSON and YAML exports carry the steps, the pseudocode listing and the
parameters, and can be loaded by any renderer. The text format prints every
step for reading in a terminal.`,
		Example: `  algotrace trace binary-search --set values="1,3,5,7" --set target=5
  algotrace trace dijkstra -o dijkstra.yaml
  algotrace trace lcs --format text`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAlgorithms,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrace(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "algorithm parameter as name=value (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, yaml or text (default: from -o extension, else json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (c *CLI) runTrace(cmd *cobra.Command, name string, opts traceOpts) error {
	params, err := parseSets(opts.sets)
	if err != nil {
		return err
	}
	format := opts.format
	if format == "" {
		format = trace.FormatJSON
		if opts.output != "" {
			format = trace.FormatFromPath(opts.output)
		}
	}

	alg, t, err := c.generate(cmd.Context(), name, params)
	if err != nil {
		return err
	}
	if t.Reordered {
		c.Logger.Warn("input was sorted first", "algorithm", name)
	}

	data, err := encodeTrace(alg, t, params, format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(cmd.OutOrStdout(), "Traced %s: %d steps", alg.Name, t.Len())
	printFile(cmd.OutOrStdout(), opts.output)
	return nil
}

func encodeTrace(alg *catalog.Algorithm, t trace.Trace, params map[string]string, format string) ([]byte, error) {
	switch format {
	case trace.FormatJSON, trace.FormatYAML:
		return trace.Marshal(alg.Export(t, params), format)
	case formatText:
		var b bytes.Buffer
		writeTraceText(&b, alg, t)
		return b.Bytes(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want json, yaml or text)", format)
	}
}

// writeTraceText prints every step with its number, highlighted line and
// payload.
func writeTraceText(w io.Writer, alg *catalog.Algorithm, t trace.Trace) {
	fmt.Fprintln(w, StyleTitle.Render(alg.Title)+StyleDim.Render(fmt.Sprintf("  %d steps", t.Len())))
	for i, s := range t.Steps {
		fmt.Fprintln(w)
		header := styleLine.Render(fmt.Sprintf("#%d", i))
		if s.Line != trace.NoLine && s.Line <= len(alg.Listing) {
			header += StyleDim.Render(fmt.Sprintf("  line %d: %s", s.Line, alg.Listing[s.Line-1]))
		}
		fmt.Fprintln(w, header)
		fmt.Fprintln(w, s.Message)
		if body := renderStep(s); body != "" {
			fmt.Fprintln(w, body)
		}
	}
}
