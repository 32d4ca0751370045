package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/export"
	"github.com/katalvlaran/mstviz/prim_kruskal"
)

func disconnected(method string) prim_kruskal.Trace {
	edges := []core.Edge{{U: 1, V: 2, Weight: 5}, {U: 2, V: 2, Weight: 0.5}}
	if method == prim_kruskal.MethodPrim {
		return prim_kruskal.BuildPrimTrace(4, edges)
	}
	return prim_kruskal.BuildKruskalTrace(4, edges)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]export.Format{"json": export.JSON, " JSON": export.JSON, "yaml": export.YAML, "yml": export.YAML} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := export.ParseFormat("xml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	assert.Equal(t, "application/json", export.JSON.ContentType())
	assert.Equal(t, "application/yaml", export.YAML.ContentType())
}

// TestRoundTrip encodes and decodes both algorithms in both formats.
func TestRoundTrip(t *testing.T) {
	for _, method := range prim_kruskal.Methods() {
		for _, f := range export.Formats() {
			t.Run(method+"/"+string(f), func(t *testing.T) {
				tr := disconnected(method)
				var buf bytes.Buffer
				require.NoError(t, export.Encode(&buf, tr, f))

				back, err := export.Decode(&buf, f)
				require.NoError(t, err)
				assert.Equal(t, tr, back)
			})
		}
	}
}

// TestEncode_JSONContract pins the field names and the unreachable marker.
func TestEncode_JSONContract(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, disconnected(prim_kruskal.MethodPrim), export.JSON))

	var raw struct {
		Method      string                   `json:"method"`
		Steps       []map[string]any         `json:"steps"`
		SortedEdges []map[string]json.Number `json:"sortedEdges"`
	}
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	require.NoError(t, dec.Decode(&raw))

	assert.Equal(t, "prim", raw.Method)
	require.NotEmpty(t, raw.Steps)
	first := raw.Steps[0]
	for _, key := range []string{"status", "log", "edgeInfo", "primSnapshot", "mstEdges"} {
		assert.Contains(t, first, key)
	}
	snap := first["primSnapshot"].(map[string]any)
	dist := snap["dist"].([]any)
	assert.Equal(t, "unreachable", dist[0])
	assert.Equal(t, "unreachable", dist[4])

	assert.Equal(t, json.Number("1"), raw.SortedEdges[0]["id"])
	assert.Equal(t, json.Number("0.5"), raw.SortedEdges[0]["weight"])
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, disconnected(prim_kruskal.MethodKruskal), export.YAML))
	out := buf.String()
	assert.Contains(t, out, "method: kruskal")
	assert.Contains(t, out, "dsuSnapshot:")
	assert.Contains(t, out, "status: FINAL")
	assert.NotContains(t, out, "primSnapshot")
}

func TestEmptyTrace(t *testing.T) {
	tr := prim_kruskal.BuildKruskalTrace(3, nil)
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, tr, export.JSON))
	assert.JSONEq(t, `{"method":"kruskal","nodes":3,"steps":[],"sortedEdges":[]}`, buf.String())

	back, err := export.Decode(&buf, export.JSON)
	require.NoError(t, err)
	assert.Equal(t, tr, back)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := export.Decode(strings.NewReader(`{"method":"kruskal","bogus":1}`), export.JSON)
	assert.Error(t, err)

	_, err = export.Decode(strings.NewReader("{}"), "toml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
	assert.ErrorIs(t, export.Encode(&bytes.Buffer{}, prim_kruskal.Trace{}, "toml"), export.ErrUnknownFormat)

	// Structurally valid JSON that breaks the step contract.
	broken := `{"method":"kruskal","nodes":2,"steps":[{"status":"FINAL","log":"","edgeInfo":null,"mstEdges":[]}],` +
		`"sortedEdges":[{"id":1,"u":1,"v":2,"weight":1}]}`
	_, err = export.Decode(strings.NewReader(broken), export.JSON)
	assert.ErrorIs(t, err, prim_kruskal.ErrContractViolation)
}

func TestDecode_RejectsMalformedSnapshots(t *testing.T) {
	const edges = `"sortedEdges":[{"id":1,"u":1,"v":2,"weight":1}]}`
	final := `{"status":"FINAL","log":"","edgeInfo":null,"mstEdges":[]}`
	cases := map[string]string{
		"short prim parent": `{"method":"prim","nodes":2,"steps":[` +
			`{"status":"INITIAL","log":"","edgeInfo":null,"primSnapshot":{"dist":[0,0,"unreachable"],"parent":[-1],"visited":[false]},"mstEdges":[]},` +
			final + `],` + edges,
		"negative dsu parent": `{"method":"kruskal","nodes":2,"steps":[` +
			`{"status":"INITIAL","log":"","edgeInfo":null,"dsuSnapshot":[0,-1,1],"mstEdges":[]},` +
			final + `],` + edges,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := export.Decode(strings.NewReader(in), export.JSON)
			assert.ErrorIs(t, err, prim_kruskal.ErrContractViolation)
		})
	}
}
