package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstviz/builder"
	"github.com/katalvlaran/mstviz/core"
)

// shapes maps generator names to constructors. Sizes come from the flags.
var shapes = map[string]func(o generateOpts) []builder.Constructor{
	"path":     func(o generateOpts) []builder.Constructor { return []builder.Constructor{builder.Path(o.nodes)} },
	"cycle":    func(o generateOpts) []builder.Constructor { return []builder.Constructor{builder.Cycle(o.nodes)} },
	"star":     func(o generateOpts) []builder.Constructor { return []builder.Constructor{builder.Star(o.nodes)} },
	"wheel":    func(o generateOpts) []builder.Constructor { return []builder.Constructor{builder.Wheel(o.nodes)} },
	"complete": func(o generateOpts) []builder.Constructor { return []builder.Constructor{builder.Complete(o.nodes)} },
	"grid":     func(o generateOpts) []builder.Constructor { return []builder.Constructor{builder.Grid(o.rows, o.cols)} },
	"random": func(o generateOpts) []builder.Constructor {
		if o.connected {
			return []builder.Constructor{builder.Path(o.nodes), builder.RandomSparse(o.nodes, o.p)}
		}
		return []builder.Constructor{builder.RandomSparse(o.nodes, o.p)}
	},
}

func shapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// weightOption maps the distribution flags onto a builder option. Parameters
// are checked here because the weight functions panic on invalid input.
func weightOption(o generateOpts) (builder.BuilderOption, error) {
	switch strings.ToLower(o.weights) {
	case "uniform":
		if o.max < o.min {
			return nil, fmt.Errorf("--max %g is below --min %g", o.max, o.min)
		}
		return builder.WithUniformWeight(o.min, o.max), nil
	case "normal":
		if o.stddev < 0 {
			return nil, fmt.Errorf("--stddev %g is negative", o.stddev)
		}
		return builder.WithNormalWeight(o.mean, o.stddev), nil
	case "exponential":
		if o.rate <= 0 {
			return nil, fmt.Errorf("--rate %g must be positive", o.rate)
		}
		return builder.WithExponentialWeight(o.rate), nil
	default:
		return nil, fmt.Errorf("unknown weight distribution %q (want uniform, normal or exponential)", o.weights)
	}
}

// generateOpts holds the options for the generate command.
type generateOpts struct {
	shape     string
	nodes     int
	rows      int
	cols      int
	p         float64
	connected bool
	seed      int64
	weights   string
	min       float64
	max       float64
	mean      float64
	stddev    float64
	rate      float64
	integer   bool
	output    string
}

// generateCommand creates the generate command, which writes a synthetic
// graph in the text input format.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph in the text format",
		Long: fmt.Sprintf(`Generates a graph with edge weights drawn from a uniform, normal or
exponential distribution, for feeding into the other commands.
Shapes: %s.

The same seed always produces the same graph.`, strings.Join(shapeNames(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.shape, "shape", "s", "random", "graph shape")
	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", 8, "node count (all shapes except grid)")
	cmd.Flags().IntVar(&opts.rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", 3, "grid columns")
	cmd.Flags().Float64Var(&opts.p, "p", 0.3, "edge probability for the random shape")
	cmd.Flags().BoolVar(&opts.connected, "connected", true, "overlay a path so the random shape is connected")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&opts.weights, "weights", "w", "uniform", "weight distribution: uniform, normal or exponential")
	cmd.Flags().Float64Var(&opts.min, "min", 1, "minimum edge weight (uniform)")
	cmd.Flags().Float64Var(&opts.max, "max", 10, "maximum edge weight (uniform)")
	cmd.Flags().Float64Var(&opts.mean, "mean", 5, "mean edge weight (normal)")
	cmd.Flags().Float64Var(&opts.stddev, "stddev", 2, "edge weight standard deviation (normal)")
	cmd.Flags().Float64Var(&opts.rate, "rate", 0.2, "rate λ, mean weight 1/λ (exponential)")
	cmd.Flags().BoolVar(&opts.integer, "integer", true, "round weights to integers")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	mk, ok := shapes[strings.ToLower(opts.shape)]
	if !ok {
		return fmt.Errorf("unknown shape %q (want one of %s)", opts.shape, strings.Join(shapeNames(), ", "))
	}
	weights, err := weightOption(opts)
	if err != nil {
		return err
	}

	bopts := []builder.BuilderOption{builder.WithSeed(opts.seed), weights}
	if opts.integer {
		bopts = append(bopts, builder.WithIntegerWeights())
	}
	g, err := builder.BuildGraph(bopts, mk(opts)...)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("graph generated", "shape", opts.shape, "nodes", g.N(), "edges", g.M())

	w, closeFn, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if err := core.Format(w, g); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}
