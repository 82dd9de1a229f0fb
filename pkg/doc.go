// Package pkg provides the core libraries for graphwalk algorithm replay.
//
// # Overview
//
// Graphwalk shows classic graph algorithms doing their work, one step at a
// time. A graph of positioned nodes is built by hand or scattered randomly,
// an algorithm walks it, and every decision the algorithm makes comes out
// as an event that a renderer can replay. The pkg directory is organized
// into five areas:
//
//  1. [graph] - The graph model (positioned nodes, Euclidean-weight edges)
//  2. [walk] - The algorithm drivers and their event streams
//  3. [replay] - Rendering event streams as text lines and terminal boards
//  4. [scatter] - Deterministic random graph generation
//  5. [session] - A workbench tying graph, algorithm, and run history together
//
// # Architecture
//
// The typical data flow through graphwalk:
//
//	graph.Graph (built by hand or via scatter)
//	         ↓
//	    [walk] package (DFS, BFS, Dijkstra, Kruskal)
//	         ↓
//	    walk.Stream (lazy, deterministic event sequence)
//	         ↓
//	    [replay] package (state tracking + rendering)
//	         ↓
//	    terminal board / plain trace
//
// # Quick Start
//
// Run Dijkstra over a scattered graph and print every event:
//
//	import (
//	    "fmt"
//
//	    "github.com/matzehuels/graphwalk/pkg/scatter"
//	    "github.com/matzehuels/graphwalk/pkg/walk"
//	)
//
//	g := scatter.Generate(12, scatter.WithSeed(7))
//	stream, err := walk.Run(g, walk.AlgorithmDijkstra, 0)
//	if err != nil {
//	    return err
//	}
//	for e := range stream.All() {
//	    fmt.Println(e)
//	}
//
// # Main Packages
//
// [graph] - Undirected weighted graphs over nodes pinned to 2D positions.
// Edge weights are Euclidean distances, fixed at creation. Nodes, edges,
// and adjacency lists keep insertion order, which is what makes every
// algorithm run reproducible.
//
// [walk] - The four drivers and the machinery they share: a pull-based
// event [walk.Stream], a lazy-deletion priority queue and a union-find
// tailored to the drivers, and the closed [walk.Algorithm] enum. Runs
// advance only when the consumer pulls, so dropping a stream cancels the
// rest of the computation.
//
// [replay] - Consumes event streams without re-running algorithms:
// [replay.State] folds events into node and edge statuses, [replay.Line]
// formats single events, and [replay.Board] draws the graph as a styled
// cell canvas with a side panel.
//
// [scatter] - Generates graphs with noise-jittered grid positions and a
// minimum node degree. The same seed always yields the same graph.
//
// [session] - An in-memory workbench: one graph, a chosen algorithm and
// start node, and the record of completed runs. Nothing is persisted.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/walk/...      # Specific package
//	go test -run Example        # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/graph
// [walk]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/walk
// [replay]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/replay
// [scatter]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/scatter
// [session]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/session
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/buildinfo
package pkg
