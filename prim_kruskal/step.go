package prim_kruskal

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/mstviz/core"
)

// Status classifies what happened at one Step.
type Status string

// Step statuses. Kruskal emits INITIAL, EXAMINING, SELECTED, REJECTED, FINAL;
// Prim emits INITIAL, SELECTED_NODE, UPDATE_DIST, FINAL.
const (
	StatusInitial      Status = "INITIAL"
	StatusExamining    Status = "EXAMINING"
	StatusSelected     Status = "SELECTED"
	StatusRejected     Status = "REJECTED"
	StatusSelectedNode Status = "SELECTED_NODE"
	StatusUpdateDist   Status = "UPDATE_DIST"
	StatusFinal        Status = "FINAL"
)

// Step is one immutable snapshot of an algorithm run.
//
// Every slice and pointer inside a Step is owned by that Step alone: no two
// steps of a Trace share storage, so replaying or mutating one step never
// affects another. Renderers must still treat Steps as read-only.
type Step struct {
	// Status is the decision or phase recorded by this step.
	Status Status `json:"status" yaml:"status"`

	// Log is a human-readable description of the step.
	Log string `json:"log" yaml:"log"`

	// EdgeInfo is the edge under consideration, or nil.
	EdgeInfo *core.IndexedEdge `json:"edgeInfo" yaml:"edgeInfo"`

	// DSU is the Kruskal union-find parent array (index 0 unused).
	DSU []int `json:"dsuSnapshot,omitempty" yaml:"dsuSnapshot,omitempty"`

	// Prim is the Prim frontier state.
	Prim *PrimSnapshot `json:"primSnapshot,omitempty" yaml:"primSnapshot,omitempty"`

	// MSTEdges are the edges accepted so far, in acceptance order.
	MSTEdges []core.IndexedEdge `json:"mstEdges" yaml:"mstEdges"`

	// SelectedNode is the node Prim just committed or is relaxing from; 0 = none.
	SelectedNode int `json:"selectedNode,omitempty" yaml:"selectedNode,omitempty"`
}

// IsDecision reports whether the step records an accept/reject outcome.
func (s Step) IsDecision() bool {
	return s.Status == StatusSelected || s.Status == StatusRejected || s.Status == StatusSelectedNode
}

// Distance is a Prim frontier distance. Unreachable (+Inf) compares greater
// than every finite weight and renders as "unreachable".
type Distance float64

// Unreachable is the distance of a node with no known connection to the tree.
var Unreachable = Distance(math.Inf(1))

// Reachable reports whether d is finite.
func (d Distance) Reachable() bool {
	return !math.IsInf(float64(d), 1)
}

// String renders finite distances with %g precision and +Inf as "unreachable".
func (d Distance) String() string {
	if !d.Reachable() {
		return "unreachable"
	}

	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}

// MarshalJSON encodes +Inf as the string "unreachable"; JSON has no infinity.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.Reachable() {
		return []byte(`"unreachable"`), nil
	}

	return json.Marshal(float64(d))
}

// UnmarshalJSON accepts a number, "unreachable" or null.
func (d *Distance) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"unreachable"`, "null":
		*d = Unreachable
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("distance %s: %w", b, err)
	}
	*d = Distance(f)

	return nil
}

// MarshalYAML encodes +Inf as "unreachable" and finite values as floats.
func (d Distance) MarshalYAML() (interface{}, error) {
	if !d.Reachable() {
		return "unreachable", nil
	}

	return float64(d), nil
}

// UnmarshalYAML accepts a number or "unreachable".
func (d *Distance) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case int:
		*d = Distance(v)
	case float64:
		*d = Distance(v)
	case string:
		if v != "unreachable" {
			return fmt.Errorf("distance %q: want a number or \"unreachable\"", v)
		}
		*d = Unreachable
	case nil:
		*d = Unreachable
	default:
		return fmt.Errorf("distance %v: unsupported type %T", v, v)
	}

	return nil
}

// PrimSnapshot is a frozen copy of Prim's frontier arrays, indexed 0..N with
// index 0 unused.
type PrimSnapshot struct {
	// Dist is the best known edge weight connecting each node to the tree.
	Dist []Distance `json:"dist" yaml:"dist"`

	// Parent is each node's tree parent; -1 = unset.
	Parent []int `json:"parent" yaml:"parent"`

	// Visited marks nodes committed to the tree.
	Visited []bool `json:"visited" yaml:"visited"`
}

// Unreachable returns the nodes 1..N whose distance is still infinite.
func (p *PrimSnapshot) Unreachable() []int {
	var nodes []int
	for i := 1; i < len(p.Dist); i++ {
		if !p.Dist[i].Reachable() {
			nodes = append(nodes, i)
		}
	}

	return nodes
}

// cloneEdges copies an accepted-edge list; the result is never nil so that
// JSON encodes an empty list as [].
func cloneEdges(edges []core.IndexedEdge) []core.IndexedEdge {
	return append(make([]core.IndexedEdge, 0, len(edges)), edges...)
}

// edgeRef returns a step-owned pointer to a copy of e.
func edgeRef(e core.IndexedEdge) *core.IndexedEdge {
	return &e
}
