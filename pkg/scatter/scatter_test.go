package scatter_test

import (
	"testing"

	"github.com/matzehuels/graphwalk/pkg/scatter"
)

func TestGenerateDeterministic(t *testing.T) {
	a := scatter.Generate(12, scatter.WithSeed(7))
	b := scatter.Generate(12, scatter.WithSeed(7))

	na, nb := a.Nodes(), b.Nodes()
	if len(na) != len(nb) {
		t.Fatalf("node counts differ: %d vs %d", len(na), len(nb))
	}
	for i := range na {
		if na[i] != nb[i] {
			t.Errorf("node %d differs: %+v vs %+v", i, na[i], nb[i])
		}
	}

	ea, eb := a.Edges(), b.Edges()
	if len(ea) != len(eb) {
		t.Fatalf("edge counts differ: %d vs %d", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i] != eb[i] {
			t.Errorf("edge %d differs: %+v vs %+v", i, ea[i], eb[i])
		}
	}
}

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		nodes int
	}{
		{name: "empty", n: 0, nodes: 0},
		{name: "negative", n: -3, nodes: 0},
		{name: "single", n: 1, nodes: 1},
		{name: "ten", n: 10, nodes: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := scatter.Generate(tt.n)
			if got := g.NodeCount(); got != tt.nodes {
				t.Errorf("NodeCount() = %d, want %d", got, tt.nodes)
			}
			if tt.n <= 1 && g.EdgeCount() != 0 {
				t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
			}
		})
	}
}

func TestGenerateDegreeFloor(t *testing.T) {
	const n, degree = 15, 3
	g := scatter.Generate(n, scatter.WithSeed(3), scatter.WithDegree(degree))

	for _, node := range g.Nodes() {
		if got := g.Degree(node.ID); got < degree {
			t.Errorf("Degree(%d) = %d, want at least %d", node.ID, got, degree)
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	const w, h = 64, 24
	g := scatter.Generate(20, scatter.WithSize(w, h))

	for _, node := range g.Nodes() {
		if node.X < 0 || node.X > w || node.Y < 0 || node.Y > h {
			t.Errorf("node %d at (%g, %g) outside [0,%d]x[0,%d]", node.ID, node.X, node.Y, w, h)
		}
	}
}

func TestGenerateDistinctPositions(t *testing.T) {
	g := scatter.Generate(25, scatter.WithSeed(5))

	nodes := g.Nodes()
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].X == nodes[j].X && nodes[i].Y == nodes[j].Y {
				t.Errorf("nodes %d and %d share position (%g, %g)", nodes[i].ID, nodes[j].ID, nodes[i].X, nodes[i].Y)
			}
		}
	}
}
