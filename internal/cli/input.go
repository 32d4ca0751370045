package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/export"
	"github.com/katalvlaran/mstviz/prim_kruskal"
)

// graphOpts are the input flags shared by every command that builds a trace.
type graphOpts struct {
	method string
	strict bool
}

func (o *graphOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.method, "method", "m", "", "MST algorithm: kruskal or prim (default from config)")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail on malformed edge lines instead of skipping them")
}

// readGraph loads a graph from path. An empty path or "-" reads stdin.
// Files ending in .json are decoded as JSON, everything else as the
// "N M" / "u v weight" text format.
func readGraph(cmd *cobra.Command, path string, strict bool) (*core.Graph, error) {
	var (
		r    io.Reader
		name = path
	)
	if path == "" || path == "-" {
		r, name = cmd.InOrStdin(), "stdin"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()
		r = f
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		g, err := core.DecodeJSON(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return g, nil
	}

	var opts []core.ParseOption
	if strict {
		opts = append(opts, core.WithStrict())
	}
	g, err := core.Parse(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return g, nil
}

// buildTrace reads the graph named by args and runs the selected algorithm.
// The method flag wins over the configured default.
func (c *CLI) buildTrace(cmd *cobra.Command, args []string, opts graphOpts) (prim_kruskal.Trace, error) {
	logger := loggerFromContext(cmd.Context())

	method := opts.method
	if method == "" {
		method = c.cfg.Method
	}
	method, err := prim_kruskal.ParseMethod(method)
	if err != nil {
		return prim_kruskal.Trace{}, err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	g, err := readGraph(cmd, path, opts.strict)
	if err != nil {
		return prim_kruskal.Trace{}, err
	}
	logger.Debug("graph loaded", "nodes", g.N(), "edges", g.M(), "declared", g.DeclaredEdges())
	if g.Skipped() > 0 {
		logger.Warn("skipped malformed edge lines", "count", g.Skipped())
	}

	prog := newProgress(logger)
	tr, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(method)))
	if err != nil {
		return prim_kruskal.Trace{}, err
	}
	prog.done(fmt.Sprintf("Built %s trace with %d steps", tr.Method, tr.Len()))

	return tr, nil
}

// replayOpts are the flags of commands that replay an exported trace
// instead of building one from a graph.
type replayOpts struct {
	graphOpts
	trace string
}

func (o *replayOpts) register(cmd *cobra.Command) {
	o.graphOpts.register(cmd)
	cmd.Flags().StringVar(&o.trace, "trace", "", "replay a trace written by export (*.json, *.yaml, *.yml) instead of reading a graph")
}

// readTrace decodes an exported trace. The format follows the file
// extension, and export.Decode validates the result before it is rendered.
func readTrace(path string) (prim_kruskal.Trace, error) {
	format, err := export.ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return prim_kruskal.Trace{}, fmt.Errorf("%s: %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return prim_kruskal.Trace{}, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	tr, err := export.Decode(f, format)
	if err != nil {
		return prim_kruskal.Trace{}, fmt.Errorf("%s: %w", path, err)
	}

	return tr, nil
}

// loadTrace builds a trace from the graph in args, or decodes the one named
// by --trace. A trace file and a graph file exclude each other.
func (c *CLI) loadTrace(cmd *cobra.Command, args []string, opts replayOpts) (prim_kruskal.Trace, error) {
	if opts.trace == "" {
		return c.buildTrace(cmd, args, opts.graphOpts)
	}
	if len(args) > 0 {
		return prim_kruskal.Trace{}, fmt.Errorf("--trace %s and graph file %s are mutually exclusive", opts.trace, args[0])
	}
	if opts.method != "" {
		return prim_kruskal.Trace{}, fmt.Errorf("--method does not apply to --trace: the trace records its own method")
	}

	tr, err := readTrace(opts.trace)
	if err != nil {
		return prim_kruskal.Trace{}, err
	}
	loggerFromContext(cmd.Context()).Debug("trace loaded", "path", opts.trace, "method", tr.Method, "steps", tr.Len())

	return tr, nil
}

// openOutput returns stdout for an empty path or "-", else a created file.
// The returned close function is never nil.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}
