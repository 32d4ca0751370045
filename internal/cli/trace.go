package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstviz/render"
)

// traceOpts holds the options for the trace command.
type traceOpts struct {
	graphOpts
	table bool
	state bool
	quiet bool
}

// traceCommand creates the trace command, which prints every step of a run.
func (c *CLI) traceCommand() *cobra.Command {
	var opts traceOpts

	cmd := &cobra.Command{
		Use:   "trace [graph-file]",
		Short: "Print every step of a Kruskal or Prim run",
		Long: `Reads a graph (text format, or JSON for *.json files, stdin when omitted)
and prints the step log of the chosen algorithm followed by a summary.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrace(cmd, args, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.table, "table", false, "print the final edge table")
	cmd.Flags().BoolVar(&opts.state, "state", false, "print the algorithm state after every step")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the summary")

	return cmd
}

func (c *CLI) runTrace(cmd *cobra.Command, args []string, opts traceOpts) error {
	tr, err := c.buildTrace(cmd, args, opts.graphOpts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if tr.Empty() {
		printWarning(w, "graph has no edges; nothing to trace")
		return nil
	}

	if !opts.quiet {
		for i, s := range tr.Steps {
			printStep(w, i, s)
			if opts.state {
				if t := render.StateTable(s); t != "" {
					fmt.Fprintln(w, t)
				}
			}
		}
		fmt.Fprintln(w)
	}
	if opts.table {
		fmt.Fprintln(w, render.EdgeTable(tr, tr.Len()-1))
	}

	fmt.Fprintln(w, styleTitle.Render("Summary"))
	printKeyValue(w, "method", tr.Method)
	printKeyValue(w, "nodes", strconv.Itoa(tr.Nodes))
	printKeyValue(w, "edges", strconv.Itoa(len(tr.SortedEdges)))
	printKeyValue(w, "steps", strconv.Itoa(tr.Len()))
	printKeyValue(w, "mst edges", strconv.Itoa(len(tr.MST())))
	printKeyValue(w, "total weight", strconv.FormatFloat(tr.TotalWeight(), 'g', -1, 64))

	return nil
}
