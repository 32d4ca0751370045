package core

import (
	"encoding/json"
	"fmt"
	"io"
)

// graphJSON is the wire form of a Graph: {"n": 4, "edges": [{"u":1,"v":2,"weight":5}]}.
type graphJSON struct {
	N     int    `json:"n"`
	M     *int   `json:"m,omitempty"`
	Edges []Edge `json:"edges"`
}

// MarshalJSON encodes g as {"n", "m", "edges"}.
func (g *Graph) MarshalJSON() ([]byte, error) {
	m := g.M()
	return json.Marshal(graphJSON{N: g.N(), M: &m, Edges: g.Edges()})
}

// DecodeJSON reads one JSON graph object and validates it with NewGraph.
// Unlike Parse, JSON input is never filtered: an out-of-range edge is an error.
func DecodeJSON(r io.Reader) (*Graph, error) {
	var raw graphJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("DecodeJSON: %w", err)
	}

	var opts []GraphOption
	if raw.M != nil {
		opts = append(opts, WithDeclaredEdges(*raw.M))
	}

	return NewGraph(raw.N, raw.Edges, opts...)
}
