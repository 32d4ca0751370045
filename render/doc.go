// Package render turns a prim_kruskal.Trace into things people look at.
//
// Every renderer takes a trace and a step index and shows the state of the
// run after that step:
//
//   - EdgeStates folds steps 0..upTo into one status per sorted edge.
//   - EdgeTable and StateTable draw terminal tables with lipgloss.
//   - ToDOT builds an undirected Graphviz graph with gographviz, coloured by
//     edge status, and RenderSVG lays it out with go-graphviz.
//
// Renderers never modify the trace.
package render
