package graph

import (
	"errors"
	"math"
	"testing"
)

// triangle builds the 3-4-5 right triangle used across the test suite:
// node 0 at (0,0), node 1 at (3,0), node 2 at (3,4).
func triangle(t *testing.T) *Graph {
	t.Helper()
	g := New()
	g.AddNode(0, 0)
	g.AddNode(3, 0)
	g.AddNode(3, 4)
	for _, pair := range [][2]NodeID{{0, 1}, {1, 2}, {0, 2}} {
		if _, err := g.AddEdge(pair[0], pair[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", pair[0], pair[1], err)
		}
	}
	return g
}

func TestAddNode(t *testing.T) {
	g := New()

	positions := [][2]float64{{0, 0}, {3, 0}, {3, 4}, {-1.5, 2.25}}
	for i, p := range positions {
		if got := g.AddNode(p[0], p[1]); got != NodeID(i) {
			t.Errorf("AddNode #%d = %d, want %d", i, got, i)
		}
	}

	if got := g.NodeCount(); got != len(positions) {
		t.Fatalf("NodeCount = %d, want %d", got, len(positions))
	}
	for i, p := range positions {
		n, ok := g.Node(NodeID(i))
		if !ok {
			t.Fatalf("Node(%d) missing", i)
		}
		if n.X != p[0] || n.Y != p[1] {
			t.Errorf("Node(%d) at (%v, %v), want (%v, %v)", i, n.X, n.Y, p[0], p[1])
		}
	}
}

func TestAddEdgeWeights(t *testing.T) {
	g := triangle(t)

	tests := []struct {
		a, b NodeID
		want float64
	}{
		{0, 1, 3},
		{1, 2, 4},
		{0, 2, 5},
	}
	for _, tt := range tests {
		e, ok := g.EdgeBetween(tt.a, tt.b)
		if !ok {
			t.Fatalf("EdgeBetween(%d, %d) missing", tt.a, tt.b)
		}
		if e.Weight != tt.want {
			t.Errorf("weight(%d-%d) = %v, want %v", tt.a, tt.b, e.Weight, tt.want)
		}
	}
}

func TestAddEdgeErrors(t *testing.T) {
	tests := []struct {
		name    string
		a, b    NodeID
		wantErr error
	}{
		{name: "UnknownFirstEndpoint", a: 9, b: 0, wantErr: ErrUnknownEndpoint},
		{name: "UnknownSecondEndpoint", a: 0, b: 9, wantErr: ErrUnknownEndpoint},
		{name: "NegativeEndpoint", a: -1, b: 0, wantErr: ErrUnknownEndpoint},
		{name: "SelfLoop", a: 1, b: 1, wantErr: ErrSelfLoop},
		{name: "Duplicate", a: 0, b: 1, wantErr: ErrDuplicateEdge},
		{name: "DuplicateReversed", a: 1, b: 0, wantErr: ErrDuplicateEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := triangle(t)
			nodes, edges := g.NodeCount(), g.EdgeCount()

			_, err := g.AddEdge(tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge(%d, %d) = %v, want %v", tt.a, tt.b, err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidEdge) {
				t.Errorf("AddEdge(%d, %d) = %v, want it to match ErrInvalidEdge", tt.a, tt.b, err)
			}
			if g.NodeCount() != nodes || g.EdgeCount() != edges {
				t.Errorf("graph changed after rejected edge: %d/%d nodes, %d/%d edges",
					g.NodeCount(), nodes, g.EdgeCount(), edges)
			}
		})
	}
}

func TestRemoveEdge(t *testing.T) {
	t.Run("EitherOrientation", func(t *testing.T) {
		g := triangle(t)
		if err := g.RemoveEdge(2, 0); err != nil {
			t.Fatalf("RemoveEdge(2, 0): %v", err)
		}
		if g.HasEdge(0, 2) {
			t.Error("edge 0-2 still present after removal")
		}
		if got := g.EdgeCount(); got != 2 {
			t.Errorf("EdgeCount = %d, want 2", got)
		}
	})

	t.Run("RepairsAdjacency", func(t *testing.T) {
		g := triangle(t)
		if err := g.RemoveEdge(0, 1); err != nil {
			t.Fatalf("RemoveEdge(0, 1): %v", err)
		}
		for _, n := range g.Neighbors(0) {
			if n.ID == 1 {
				t.Error("node 1 still adjacent to node 0")
			}
		}
		for _, n := range g.Neighbors(1) {
			if n.ID == 0 {
				t.Error("node 0 still adjacent to node 1")
			}
		}
		if got := g.Degree(0); got != 1 {
			t.Errorf("Degree(0) = %d, want 1", got)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		g := New()
		g.AddNode(0, 0)
		g.AddNode(1, 0)
		if err := g.RemoveEdge(0, 1); !errors.Is(err, ErrEdgeNotFound) {
			t.Fatalf("RemoveEdge = %v, want ErrEdgeNotFound", err)
		}
	})

	t.Run("UnknownEndpoint", func(t *testing.T) {
		g := triangle(t)
		if err := g.RemoveEdge(0, 9); !errors.Is(err, ErrUnknownEndpoint) {
			t.Fatalf("RemoveEdge = %v, want ErrUnknownEndpoint", err)
		}
	})

	t.Run("IDsNotReused", func(t *testing.T) {
		g := triangle(t)
		if err := g.RemoveEdge(0, 1); err != nil {
			t.Fatalf("RemoveEdge: %v", err)
		}
		e, err := g.AddEdge(0, 1)
		if err != nil {
			t.Fatalf("AddEdge after removal: %v", err)
		}
		if e.ID != 3 {
			t.Errorf("re-added edge ID = %d, want 3", e.ID)
		}
	})
}

func TestNeighborsOrder(t *testing.T) {
	// Star around node 0; adjacency must follow edge insertion order,
	// not neighbor ID order.
	g := New()
	g.AddNode(0, 0)
	g.AddNode(1, 0)
	g.AddNode(2, 0)
	g.AddNode(3, 0)

	for _, b := range []NodeID{3, 1, 2} {
		if _, err := g.AddEdge(0, b); err != nil {
			t.Fatalf("AddEdge(0, %d): %v", b, err)
		}
	}

	want := []NodeID{3, 1, 2}
	got := g.Neighbors(0)
	if len(got) != len(want) {
		t.Fatalf("len(Neighbors) = %d, want %d", len(got), len(want))
	}
	for i, n := range got {
		if n.ID != want[i] {
			t.Errorf("Neighbors[%d] = %d, want %d", i, n.ID, want[i])
		}
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	g := triangle(t)

	nodes := g.Nodes()
	nodes[0].X = 99
	if n, _ := g.Node(0); n.X != 0 {
		t.Error("mutating Nodes() snapshot changed the graph")
	}

	edges := g.Edges()
	edges[0].Weight = 99
	if e, _ := g.EdgeBetween(0, 1); e.Weight != 3 {
		t.Error("mutating Edges() snapshot changed the graph")
	}

	neighbors := g.Neighbors(0)
	neighbors[0].Weight = 99
	if g.Neighbors(0)[0].Weight != 3 {
		t.Error("mutating Neighbors() snapshot changed the graph")
	}
}

func TestDistance(t *testing.T) {
	g := New()
	g.AddNode(0, 0)
	g.AddNode(1, 1)

	if got, want := g.Distance(0, 1), math.Sqrt2; math.Abs(got-want) > 1e-12 {
		t.Errorf("Distance(0, 1) = %v, want %v", got, want)
	}
	if got := g.Distance(0, 9); got != 0 {
		t.Errorf("Distance to unknown node = %v, want 0", got)
	}
}

func TestEmptyGraph(t *testing.T) {
	g := New()

	if got := g.NodeCount(); got != 0 {
		t.Errorf("NodeCount = %d, want 0", got)
	}
	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount = %d, want 0", got)
	}
	if g.HasNode(0) {
		t.Error("HasNode(0) = true on empty graph")
	}
	if got := g.Neighbors(0); got != nil {
		t.Errorf("Neighbors(0) = %v, want nil", got)
	}
	if _, err := g.AddEdge(0, 1); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("AddEdge on empty graph = %v, want ErrUnknownEndpoint", err)
	}
}

func TestEdgeOther(t *testing.T) {
	e := Edge{ID: 0, A: 2, B: 5}

	if got := e.Other(2); got != 5 {
		t.Errorf("Other(2) = %d, want 5", got)
	}
	if got := e.Other(5); got != 2 {
		t.Errorf("Other(5) = %d, want 2", got)
	}
}
