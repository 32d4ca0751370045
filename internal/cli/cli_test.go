package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstviz/builder"
	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/export"
	"github.com/katalvlaran/mstviz/prim_kruskal"
)

// square is the weighted 4-cycle; its MST weighs 6.
const square = "4 4\n1 2 1\n2 3 2\n3 4 3\n1 4 4\n"

type result struct {
	out string
	err string
	log string
}

// execute runs the root command with args and stdin, isolated from the
// user's config directory.
func execute(t *testing.T, stdin string, args ...string) (result, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var logBuf, out, errOut bytes.Buffer
	c := New(&logBuf, LogInfo)
	root := c.RootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return result{out: out.String(), err: errOut.String(), log: logBuf.String()}, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTraceCommand(t *testing.T) {
	res, err := execute(t, square, "trace")
	require.NoError(t, err)

	assert.Contains(t, res.out, "Kruskal: start. Graph has 4 nodes, 4 edges.")
	assert.Contains(t, res.out, "Kruskal: ACCEPT edge (1, 2). Merge sets 1 and 2.")
	assert.Contains(t, res.out, "Kruskal: done. Total MST weight: 6.")
	assert.Contains(t, res.out, "Summary")
	assert.Contains(t, res.out, "total weight")
	assert.Contains(t, res.log, "Built kruskal trace with 8 steps")
}

func TestTraceCommandPrim(t *testing.T) {
	res, err := execute(t, square, "trace", "-m", "Prim", "--state", "--table")
	require.NoError(t, err)

	assert.Contains(t, res.out, "Prim: start from node 1.")
	assert.Contains(t, res.out, "Prim: done. Total MST weight: 6.")
	assert.Contains(t, res.out, "Visited")
	assert.Contains(t, res.out, "Status")
}

func TestTraceCommandQuiet(t *testing.T) {
	res, err := execute(t, square, "trace", "--quiet")
	require.NoError(t, err)

	assert.NotContains(t, res.out, "EXAMINING")
	assert.Contains(t, res.out, "Summary")
}

func TestTraceCommandFileAndJSON(t *testing.T) {
	text := writeFile(t, "g.txt", square)
	res, err := execute(t, "", "trace", text)
	require.NoError(t, err)
	assert.Contains(t, res.out, "Total MST weight: 6.")

	js := writeFile(t, "g.json", `{"n":3,"edges":[{"u":1,"v":2,"weight":2},{"u":2,"v":3,"weight":3},{"u":1,"v":3,"weight":1}]}`)
	res, err = execute(t, "", "trace", js)
	require.NoError(t, err)
	assert.Contains(t, res.out, "Total MST weight: 3.")
}

func TestTraceCommandSkippedLines(t *testing.T) {
	res, err := execute(t, "3 3\n1 2 1\n1 9 1\n2 3 1\n", "trace")
	require.NoError(t, err)
	assert.Contains(t, res.log, "skipped malformed edge lines")

	_, err = execute(t, "3 3\n1 2 1\n1 9 1\n2 3 1\n", "trace", "--strict")
	assert.ErrorIs(t, err, core.ErrMalformedLine)
}

func TestTraceCommandNoEdges(t *testing.T) {
	res, err := execute(t, "3 0\n", "trace")
	require.NoError(t, err)
	assert.Contains(t, res.out, "nothing to trace")
}

func TestTraceCommandErrors(t *testing.T) {
	_, err := execute(t, square, "trace", "-m", "boruvka")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, err = execute(t, "0 0\n", "trace")
	assert.ErrorIs(t, err, core.ErrInvalidNodeCount)

	_, err = execute(t, "", "trace", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExportCommand(t *testing.T) {
	res, err := execute(t, square, "export")
	require.NoError(t, err)

	tr, err := export.Decode(strings.NewReader(res.out), export.JSON)
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodKruskal, tr.Method)
	assert.Equal(t, 8, tr.Len())
	assert.Equal(t, 6.0, tr.TotalWeight())
}

func TestExportCommandYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.yaml")
	res, err := execute(t, square, "export", "-m", "prim", "-f", "yml", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, res.out)
	assert.Contains(t, res.err, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	tr, err := export.Decode(f, export.YAML)
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodPrim, tr.Method)
	assert.Equal(t, 10, tr.Len())
}

func TestExportCommandBadFormat(t *testing.T) {
	_, err := execute(t, square, "export", "-f", "xml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestDOTCommand(t *testing.T) {
	res, err := execute(t, square, "dot")
	require.NoError(t, err)
	assert.Contains(t, res.out, "mst")
	assert.Contains(t, res.out, "--")
	assert.Contains(t, res.out, "#2ecc71")

	first, err := execute(t, square, "dot", "--step", "0")
	require.NoError(t, err)
	assert.NotContains(t, first.out, "#2ecc71")
}

func TestGenerateCommand(t *testing.T) {
	res, err := execute(t, "", "generate", "--shape", "path", "-n", "5", "--seed", "7")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(res.out, "5 4\n"), res.out)

	g, err := core.ParseString(res.out)
	require.NoError(t, err)
	assert.Equal(t, 4, g.M())
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 10.0)
	}

	again, err := execute(t, "", "generate", "--shape", "path", "-n", "5", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, res.out, again.out)
}

func TestGenerateThenTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	_, err := execute(t, "", "generate", "--shape", "grid", "--rows", "3", "--cols", "4", "-o", path)
	require.NoError(t, err)

	res, err := execute(t, "", "trace", "--quiet", path)
	require.NoError(t, err)
	assert.Contains(t, res.log, "Built kruskal trace")

	g, err := builder.BuildGraph(nil, builder.Grid(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.N())
}

func TestGenerateCommandErrors(t *testing.T) {
	_, err := execute(t, "", "generate", "--shape", "blob")
	assert.ErrorContains(t, err, "unknown shape")

	_, err = execute(t, "", "generate", "--min", "5", "--max", "1")
	assert.ErrorContains(t, err, "below --min")

	_, err = execute(t, "", "generate", "--shape", "wheel", "-n", "2")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPlayPlain(t *testing.T) {
	res, err := execute(t, square, "play", "--plain", "--speed", "50ms")
	require.NoError(t, err)

	assert.Contains(t, res.out, "INITIAL")
	assert.Contains(t, res.out, "Kruskal: done. Total MST weight: 6.")
	assert.Equal(t, 8, strings.Count(res.out, "Kruskal:"))
}

func TestConfigCommand(t *testing.T) {
	res, err := execute(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, res.out, `method = "kruskal"`)
	assert.Contains(t, res.out, `addr = ":8080"`)

	cfgPath := writeFile(t, "config.toml", "method = \"prim\"\n")
	res, err = execute(t, "", "--config", cfgPath, "config", "--path")
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", res.out)
}

func TestConfigFileSelectsMethod(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "method = \"prim\"\nlog_level = \"debug\"\n")
	res, err := execute(t, square, "--config", cfgPath, "trace", "--quiet")
	require.NoError(t, err)

	assert.Contains(t, res.log, "Built prim trace with 10 steps")
	assert.Contains(t, res.log, "graph loaded")
}

func TestConfigFileInvalid(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "colour = \"blue\"\n")
	_, err := execute(t, square, "--config", cfgPath, "trace")
	assert.Error(t, err)
}

func TestReplayExportedTrace(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "trace.json")
	yamlPath := filepath.Join(dir, "trace.yaml")
	_, err := execute(t, square, "export", "-o", jsonPath)
	require.NoError(t, err)
	_, err = execute(t, square, "export", "-m", "prim", "-f", "yaml", "-o", yamlPath)
	require.NoError(t, err)

	built, err := execute(t, square, "dot")
	require.NoError(t, err)
	replayed, err := execute(t, "", "dot", "--trace", jsonPath)
	require.NoError(t, err)
	assert.Equal(t, built.out, replayed.out)

	res, err := execute(t, "", "play", "--plain", "--speed", "50ms", "--trace", yamlPath)
	require.NoError(t, err)
	assert.Contains(t, res.out, "Prim: done. Total MST weight: 6.")
	assert.Equal(t, 10, strings.Count(res.out, "Prim:"))
}

func TestReplayRejectsBadTrace(t *testing.T) {
	broken := writeFile(t, "broken.json", `{"method":"prim","nodes":2,"steps":[`+
		`{"status":"INITIAL","log":"","edgeInfo":null,"primSnapshot":{"dist":[0,0,"unreachable"],"parent":[-1],"visited":[false]},"mstEdges":[]},`+
		`{"status":"FINAL","log":"","edgeInfo":null,"mstEdges":[]}],`+
		`"sortedEdges":[{"id":1,"u":1,"v":2,"weight":1}]}`)
	_, err := execute(t, "", "dot", "--trace", broken)
	assert.ErrorIs(t, err, prim_kruskal.ErrContractViolation)

	_, err = execute(t, "", "dot", "--trace", writeFile(t, "trace.toml", ""))
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	graph := writeFile(t, "g.txt", square)
	_, err = execute(t, "", "dot", "--trace", broken, graph)
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = execute(t, "", "play", "--plain", "-m", "prim", "--trace", broken)
	assert.ErrorContains(t, err, "--method does not apply")
}

func TestGenerateWeightDistributions(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		pred func(w float64) bool
	}{
		{"normal", []string{"--weights", "normal", "--mean", "50", "--stddev", "1"}, func(w float64) bool { return w >= 40 && w <= 60 }},
		{"exponential", []string{"-w", "exponential", "--rate", "1", "--integer=false"}, func(w float64) bool { return w >= 0 }},
		{"uniform", []string{"--weights", "uniform", "--min", "3", "--max", "4"}, func(w float64) bool { return w >= 3 && w <= 4 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"generate", "--shape", "complete", "-n", "6", "--seed", "3"}, tc.args...)
			res, err := execute(t, "", args...)
			require.NoError(t, err)

			g, err := core.ParseString(res.out)
			require.NoError(t, err)
			require.Equal(t, 15, g.M())
			for _, e := range g.Edges() {
				assert.True(t, tc.pred(e.Weight), "weight %g", e.Weight)
			}
		})
	}
}

func TestGenerateWeightErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown distribution": {"--weights", "zipf"},
		"negative stddev":      {"--weights", "normal", "--stddev=-1"},
		"zero rate":            {"--weights", "exponential", "--rate", "0"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "", append([]string{"generate"}, args...)...)
			assert.Error(t, err)
		})
	}
}
