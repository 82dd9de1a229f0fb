// Package graph provides the undirected weighted graph that every
// graphwalk algorithm operates on.
//
// # Overview
//
// Graphwalk animates algorithms over graphs drawn on a 2D canvas, so the
// model ties structure to geometry: each node carries a fixed position,
// and each edge's weight is the Euclidean distance between its endpoints
// at creation time. Weights are therefore always non-negative, which is
// what lets Dijkstra finalize distances at pop time.
//
// # Basic Usage
//
// Create a graph with [New], place nodes with [Graph.AddNode], and
// connect them with [Graph.AddEdge]:
//
//	g := graph.New()
//	a := g.AddNode(0, 0)
//	b := g.AddNode(3, 0)
//	e, err := g.AddEdge(a, b) // e.Weight == 3
//
// Edges are undirected and unique per node pair: self-loops, duplicates,
// and unknown endpoints are rejected with errors matching
// [ErrInvalidEdge]. Query structure with [Graph.Neighbors],
// [Graph.EdgeBetween], and the snapshot accessors [Graph.Nodes] and
// [Graph.Edges].
//
// # Determinism
//
// Node IDs are insertion indices, edge IDs are insertion indices, and
// adjacency lists follow edge insertion order. Two graphs built by the
// same sequence of calls are indistinguishable, and every algorithm run
// over them produces the identical event sequence. Nothing in this
// package iterates a map to produce ordered output.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. The algorithm engine
// runs entirely in the caller's goroutine; callers must synchronize
// access if they share a graph across goroutines.
package graph
