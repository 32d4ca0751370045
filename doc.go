// Package mstviz records Kruskal's and Prim's minimum-spanning-tree
// algorithms as step traces you can scrub through, export and render.
//
// 🚀 What is mstviz?
//
//	A small toolkit around one idea: every decision an MST algorithm makes
//	becomes an immutable Step, with a full copy of the algorithm state.
//		• Input:    "N M" / "u v weight" text or JSON graphs (core)
//		• Engines:  Kruskal over a union-find, Prim over a linear-scan frontier (prim_kruskal, dsu)
//		• Playback: a cursor over a trace plus a timed auto-player (playback)
//		• Output:   lipgloss tables, Graphviz DOT/SVG, JSON and YAML (render, export)
//		• Inputs for experiments: seeded graph generators (builder)
//		• Surfaces: a cobra CLI with a bubbletea player, and an HTTP API (internal/cli, server)
//
// Under the hood:
//
//	core/         Edge, IndexedEdge, Graph; text and JSON parsing; stable edge sort
//	dsu/          disjoint-set with path compression and union by rank
//	prim_kruskal/ trace builders, Step/Trace types, contract validation
//	playback/     Session cursor and Player
//	render/       edge states, terminal tables, DOT and SVG
//	export/       JSON/YAML trace encoding
//	config/       TOML settings
//	builder/      path, cycle, star, wheel, complete, grid and random graphs
//	server/       chi HTTP API
//	cmd/mstviz/   the command-line entry point
//
// Quick ASCII example:
//
//	    1───2        w(1,2)=1  w(2,3)=2
//	    │   │        w(3,4)=3  w(1,4)=4
//	    4───3
//
//	Kruskal accepts edges 1, 2, 3 and never examines the fourth: total 6.
//
//	go install github.com/katalvlaran/mstviz/cmd/mstviz@latest
package mstviz
