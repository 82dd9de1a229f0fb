package graph

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrInvalidEdge is the category error for every edge rejected by
	// [Graph.AddEdge]. Use errors.Is(err, ErrInvalidEdge) to match any
	// rejection reason without distinguishing between them.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] and [Graph.RemoveEdge]
	// when one of the endpoints does not exist in the graph.
	ErrUnknownEndpoint = fmt.Errorf("%w: unknown endpoint", ErrInvalidEdge)

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same node. Self-loops carry no information for any of the supported
	// algorithms and are rejected outright.
	ErrSelfLoop = fmt.Errorf("%w: endpoints must differ", ErrInvalidEdge)

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when an edge between
	// the two nodes already exists, in either orientation. The graph holds
	// at most one edge per unordered node pair.
	ErrDuplicateEdge = fmt.Errorf("%w: edge already exists", ErrInvalidEdge)

	// ErrEdgeNotFound is returned by [Graph.RemoveEdge] when no edge
	// connects the two nodes.
	ErrEdgeNotFound = errors.New("edge not found")
)

// NodeID identifies a node. IDs are assigned sequentially from 0 in
// insertion order and double as the node's display label.
type NodeID int

// EdgeID identifies an edge by its insertion index. IDs are never reused,
// so after a removal the remaining IDs keep gaps.
type EdgeID int

// Node is a vertex pinned to a position on the 2D canvas. Positions are
// immutable once the node is added: edge weights are derived from them
// and must not drift while an algorithm animation is replayed.
type Node struct {
	ID NodeID
	X  float64
	Y  float64
}

// Edge is an undirected connection between two distinct nodes. A and B
// record the order the endpoints were passed to [Graph.AddEdge]; for
// identity purposes the pair is unordered. Weight is the Euclidean
// distance between the endpoint positions at creation time.
type Edge struct {
	ID     EdgeID
	A, B   NodeID
	Weight float64
}

// Other returns the endpoint opposite to the given one. If id is not an
// endpoint of the edge, A is returned.
func (e Edge) Other(id NodeID) NodeID {
	if e.B == id {
		return e.A
	}
	return e.B
}

// Neighbor is one adjacency entry: the node reached, the edge used, and
// its weight, so traversals never need a second lookup.
type Neighbor struct {
	ID     NodeID
	Edge   EdgeID
	Weight float64
}

// Graph is an undirected weighted graph over positioned nodes. Nodes and
// edges are kept in insertion order, and adjacency lists follow edge
// insertion order, so every traversal over the same graph is reproducible.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    []Node
	edges    []Edge
	adjacent map[NodeID][]Neighbor
	pairs    map[[2]NodeID]Edge // normalized (low, high) endpoint pair
	nextEdge EdgeID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adjacent: make(map[NodeID][]Neighbor),
		pairs:    make(map[[2]NodeID]Edge),
	}
}

// AddNode adds a node at the given canvas position and returns its ID.
// IDs are assigned sequentially in insertion order, starting at 0.
// Adding a node never fails and never affects existing nodes or edges.
func (g *Graph) AddNode(x, y float64) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, X: x, Y: y})
	return id
}

// AddEdge connects two existing nodes and returns the created edge.
// The edge weight is the Euclidean distance between the endpoint
// positions, fixed at creation time.
//
// Returns ErrUnknownEndpoint if either node does not exist, ErrSelfLoop
// if both endpoints are the same node, or ErrDuplicateEdge if the pair
// is already connected (in either orientation). All three match
// ErrInvalidEdge under errors.Is. On error the graph is unchanged.
func (g *Graph) AddEdge(a, b NodeID) (Edge, error) {
	if !g.HasNode(a) || !g.HasNode(b) {
		return Edge{}, ErrUnknownEndpoint
	}
	if a == b {
		return Edge{}, ErrSelfLoop
	}
	if _, exists := g.pairs[pairKey(a, b)]; exists {
		return Edge{}, ErrDuplicateEdge
	}

	e := Edge{ID: g.nextEdge, A: a, B: b, Weight: g.Distance(a, b)}
	g.nextEdge++
	g.edges = append(g.edges, e)
	g.pairs[pairKey(a, b)] = e
	g.adjacent[a] = append(g.adjacent[a], Neighbor{ID: b, Edge: e.ID, Weight: e.Weight})
	g.adjacent[b] = append(g.adjacent[b], Neighbor{ID: a, Edge: e.ID, Weight: e.Weight})
	return e, nil
}

// RemoveEdge deletes the edge between two nodes, in either orientation.
// Remaining edges keep their relative order and their IDs; edge IDs are
// never reused. Returns ErrUnknownEndpoint if either node does not exist
// or ErrEdgeNotFound if the pair is not connected.
func (g *Graph) RemoveEdge(a, b NodeID) error {
	if !g.HasNode(a) || !g.HasNode(b) {
		return ErrUnknownEndpoint
	}
	e, ok := g.pairs[pairKey(a, b)]
	if !ok {
		return ErrEdgeNotFound
	}

	delete(g.pairs, pairKey(a, b))
	g.edges = slices.DeleteFunc(g.edges, func(x Edge) bool { return x.ID == e.ID })
	g.adjacent[a] = slices.DeleteFunc(g.adjacent[a], func(n Neighbor) bool { return n.Edge == e.ID })
	g.adjacent[b] = slices.DeleteFunc(g.adjacent[b], func(n Neighbor) bool { return n.Edge == e.ID })
	return nil
}

// Node returns the node with the given ID and true, or a zero Node and
// false if the ID is out of range.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if !g.HasNode(id) {
		return Node{}, false
	}
	return g.nodes[id], true
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// EdgeBetween returns the edge connecting two nodes and true, or a zero
// Edge and false if the pair is not connected. Orientation is ignored.
func (g *Graph) EdgeBetween(a, b NodeID) (Edge, bool) {
	e, ok := g.pairs[pairKey(a, b)]
	return e, ok
}

// HasEdge reports whether the two nodes are connected, in either orientation.
func (g *Graph) HasEdge(a, b NodeID) bool {
	_, ok := g.pairs[pairKey(a, b)]
	return ok
}

// Neighbors returns the adjacency list of a node in edge insertion order.
// The returned slice is a copy; modifications do not affect the graph.
// Returns nil for an unknown or isolated node.
func (g *Graph) Neighbors(id NodeID) []Neighbor {
	return slices.Clone(g.adjacent[id])
}

// Degree returns the number of edges incident to the node.
// Returns 0 if the node does not exist.
func (g *Graph) Degree(id NodeID) int { return len(g.adjacent[id]) }

// Nodes returns a copy of all nodes in insertion order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Distance returns the Euclidean distance between the positions of two
// nodes. Returns 0 if either node does not exist.
func (g *Graph) Distance(a, b NodeID) float64 {
	na, okA := g.Node(a)
	nb, okB := g.Node(b)
	if !okA || !okB {
		return 0
	}
	return math.Hypot(nb.X-na.X, nb.Y-na.Y)
}

// pairKey normalizes an endpoint pair so both orientations map to the
// same key.
func pairKey(a, b NodeID) [2]NodeID {
	if b < a {
		a, b = b, a
	}
	return [2]NodeID{a, b}
}
