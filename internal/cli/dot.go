package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstviz/render"
)

// dotOpts holds the options for the dot command.
type dotOpts struct {
	replayOpts
	step   int
	svg    bool
	output string
}

// dotCommand creates the dot command, which renders one step as a graph.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot [graph-file]",
		Short: "Write one step as Graphviz DOT or SVG",
		Long: `Renders the graph as it stands at one step of the trace: accepted edges
green, rejected edges dashed red, the edge under consideration yellow.
Kruskal nodes are coloured by their disjoint-set root, Prim nodes by whether
they joined the tree. Out-of-range steps are clamped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDOT(cmd, args, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVar(&opts.step, "step", -1, "step index to render (default last)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG with Graphviz instead of DOT source")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runDOT(cmd *cobra.Command, args []string, opts dotOpts) error {
	tr, err := c.loadTrace(cmd, args, opts.replayOpts)
	if err != nil {
		return err
	}

	step := opts.step
	if step < 0 {
		step = tr.Len() - 1
	}
	dot, err := render.ToDOT(tr, step)
	if err != nil {
		return err
	}

	out := []byte(dot)
	if opts.svg {
		loggerFromContext(cmd.Context()).Debug("rendering svg", "bytes", len(dot))
		if out, err = render.RenderSVG(dot); err != nil {
			return err
		}
	}

	w, closeFn, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if err := writeAll(w, out); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func writeAll(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
