package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/mstviz/prim_kruskal"
)

var (
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorCyan   = lipgloss.Color("36")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")

	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// stateStyle colours a table row by edge state.
func stateStyle(s State) lipgloss.Style {
	switch s {
	case StateSelected:
		return cellStyle.Foreground(colorGreen)
	case StateRejected:
		return cellStyle.Foreground(colorRed)
	case StateExamining:
		return cellStyle.Foreground(colorYellow).Bold(true)
	case StateCandidate:
		return cellStyle.Foreground(colorCyan)
	default:
		return cellStyle.Foreground(colorDim)
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...)
}

// EdgeTable renders the sorted edge table with the status reached after
// step upTo: columns #, Edge, Weight, Status.
func EdgeTable(tr prim_kruskal.Trace, upTo int) string {
	states := EdgeStates(tr, upTo)
	rows := make([][]string, len(states))
	for i, es := range states {
		rows[i] = []string{
			strconv.Itoa(es.Edge.ID),
			fmt.Sprintf("(%d, %d)", es.Edge.U, es.Edge.V),
			strconv.FormatFloat(es.Edge.Weight, 'g', -1, 64),
			es.State.Label(),
		}
	}

	t := newTable("#", "Edge", "Weight", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if row < 0 || row >= len(states) {
				return cellStyle
			}
			return stateStyle(states[row].State)
		})

	return t.Render()
}

// StateTable renders the algorithm state carried by step: the union-find
// parent of every node for Kruskal, or dist/parent/visited for Prim.
// Unreachable distances show as ∞ and unset parents as -. A step with no
// snapshot renders as the empty string.
func StateTable(step prim_kruskal.Step) string {
	switch {
	case len(step.DSU) > 1:
		rows := make([][]string, 0, len(step.DSU)-1)
		for i := 1; i < len(step.DSU); i++ {
			rows = append(rows, []string{strconv.Itoa(i), strconv.Itoa(step.DSU[i])})
		}
		t := newTable("Node", "Parent").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle.Padding(0, 1)
				}
				// Roots stand out: parent[i] == i.
				if row >= 0 && row+1 < len(step.DSU) && step.DSU[row+1] == row+1 {
					return cellStyle.Bold(true)
				}
				return cellStyle
			})
		return t.Render()

	case step.Prim != nil && len(step.Prim.Dist) > 1:
		p := step.Prim
		rows := make([][]string, 0, len(p.Dist)-1)
		for i := 1; i < len(p.Dist); i++ {
			dist := "∞"
			if p.Dist[i].Reachable() {
				dist = p.Dist[i].String()
			}
			parent := "-"
			if p.Parent[i] != -1 {
				parent = strconv.Itoa(p.Parent[i])
			}
			visited := ""
			if p.Visited[i] {
				visited = "✓"
			}
			rows = append(rows, []string{strconv.Itoa(i), dist, parent, visited})
		}
		t := newTable("Node", "Dist", "Parent", "Visited").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle.Padding(0, 1)
				}
				if row >= 0 && row+1 == step.SelectedNode {
					return cellStyle.Foreground(colorYellow).Bold(true)
				}
				if row >= 0 && row+1 < len(p.Visited) && p.Visited[row+1] {
					return cellStyle.Foreground(colorGreen)
				}
				return cellStyle
			})
		return t.Render()
	}

	return ""
}
