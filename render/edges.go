package render

import (
	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/prim_kruskal"
)

// State is the display status of one edge at a point in a trace.
type State string

// Edge states, in the order an edge usually moves through them.
const (
	StatePending   State = "pending"
	StateExamining State = "examining"
	StateCandidate State = "candidate" // Prim: currently the best link of a frontier node
	StateSelected  State = "selected"
	StateRejected  State = "rejected"
)

// Label is the table caption of a state.
func (s State) Label() string {
	switch s {
	case StateExamining:
		return "Examining..."
	case StateCandidate:
		return "Candidate"
	case StateSelected:
		return "Selected"
	case StateRejected:
		return "Rejected"
	default:
		return "Pending"
	}
}

// EdgeState pairs a sorted edge with its status.
type EdgeState struct {
	Edge  core.IndexedEdge
	State State
}

// clampStep maps upTo onto a valid step index, or -1 for an empty trace.
// Negative values select no step at all.
func clampStep(tr prim_kruskal.Trace, upTo int) int {
	if upTo >= tr.Len() {
		upTo = tr.Len() - 1
	}
	if upTo < -1 {
		upTo = -1
	}

	return upTo
}

// EdgeStates returns one entry per sorted edge, in id order, with the status
// reached after applying steps 0..upTo. upTo beyond the last step means the
// whole trace; a negative upTo leaves every edge pending.
//
// Kruskal: EXAMINING marks the edge, SELECTED/REJECTED settle it.
// Prim: UPDATE_DIST makes the edge the candidate of its target node, demoting
// the node's previous candidate back to pending; SELECTED_NODE settles the
// committed node's edge.
func EdgeStates(tr prim_kruskal.Trace, upTo int) []EdgeState {
	out := make([]EdgeState, len(tr.SortedEdges))
	for i, e := range tr.SortedEdges {
		out[i] = EdgeState{Edge: e, State: StatePending}
	}
	set := func(id int, s State) {
		if id >= 1 && id <= len(out) {
			out[id-1].State = s
		}
	}

	candidate := make(map[int]int) // frontier node -> edge id
	last := clampStep(tr, upTo)
	for i := 0; i <= last; i++ {
		step := tr.Steps[i]
		if step.EdgeInfo == nil {
			continue
		}
		id := step.EdgeInfo.ID
		switch step.Status {
		case prim_kruskal.StatusExamining:
			set(id, StateExamining)
		case prim_kruskal.StatusSelected:
			set(id, StateSelected)
		case prim_kruskal.StatusRejected:
			set(id, StateRejected)
		case prim_kruskal.StatusUpdateDist:
			v := step.EdgeInfo.V
			if prev, ok := candidate[v]; ok && prev != id {
				set(prev, StatePending)
			}
			candidate[v] = id
			set(id, StateCandidate)
		case prim_kruskal.StatusSelectedNode:
			delete(candidate, step.SelectedNode)
			set(id, StateSelected)
		}
	}

	return out
}
