package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/algotrace/pkg/catalog"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var algs []*catalog.Algorithm
			for _, a := range catalog.All() {
				if category == "" || string(a.Category) == category {
					algs = append(algs, a)
				}
			}
			if len(algs) == 0 {
				printWarning(cmd.OutOrStdout(), "no algorithms in category %q", category)
				return nil
			}
			writeAlgorithmTable(cmd.OutOrStdout(), algs)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list one category (search, sorting, numeric, graph, dynamic-programming, recursive)")
	return cmd
}

func writeAlgorithmTable(w io.Writer, algs []*catalog.Algorithm) {
	rows := make([][]string, len(algs))
	for i, a := range algs {
		rows[i] = []string{a.Name, a.Title, string(a.Category), string(a.Kind)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Title", "Category", "View").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				return base.Foreground(colorCyan)
			}
			if col >= 2 {
				return base.Foreground(colorGray)
			}
			return base
		})

	fmt.Fprintln(w, t.Render())
	printNextStep(w, "Inspect one", appName+" show <name>")
}

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show <algorithm>",
		Short:             "Show an algorithm's parameters and pseudocode",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAlgorithms,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			writeAlgorithm(cmd.OutOrStdout(), alg)
			return nil
		},
	}
}

func writeAlgorithm(w io.Writer, a *catalog.Algorithm) {
	fmt.Fprintln(w, StyleTitle.Render(a.Title))
	fmt.Fprintln(w, a.Description)
	fmt.Fprintln(w)
	printKeyValue(w, "name", a.Name)
	printKeyValue(w, "category", string(a.Category))
	printKeyValue(w, "view", string(a.Kind))
	fmt.Fprintln(w)

	fmt.Fprintln(w, StyleTitle.Render("Parameters"))
	var example []string
	for _, p := range a.Params {
		printKeyValue(w, p.Name, fmt.Sprintf("%s (%s)", p.Description, p.Type))
		printDetail(w, "default: %s", p.Default)
		example = append(example, fmt.Sprintf("--set %s=%q", p.Name, p.Default))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, StyleTitle.Render("Pseudocode"))
	fmt.Fprint(w, renderListing(a.Listing, 0))
	fmt.Fprintln(w)
	printNextStep(w, "Play it", strings.TrimSpace(appName+" play "+a.Name+" "+strings.Join(example, " ")))
}
