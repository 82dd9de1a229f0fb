// Package scatter builds deterministic demo graphs: nodes placed on a
// jittered grid, linked to their nearest neighbors. The same seed
// always produces the same graph, so a scattered graph makes algorithm
// runs reproducible end to end.
package scatter

import (
	"cmp"
	"errors"
	"math"
	"slices"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

// Option adjusts graph generation.
type Option func(*settings)

// WithSeed sets the noise seed. Every placement derives from it.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.seed = seed }
}

// WithSize sets the coordinate rectangle nodes are placed in.
// Non-positive dimensions keep the defaults.
func WithSize(w, h float64) Option {
	return func(s *settings) {
		if w > 0 && h > 0 {
			s.width, s.height = w, h
		}
	}
}

// WithDegree sets the link target: generation keeps adding an edge from
// each node to its nearest remaining neighbor until the node has at
// least this many edges.
func WithDegree(d int) Option {
	return func(s *settings) {
		if d > 0 {
			s.degree = d
		}
	}
}

type settings struct {
	seed          int64
	width, height float64
	degree        int
}

// Generate builds a graph with n nodes through the regular graph API.
//
// Nodes land near the centers of a square grid covering the rectangle,
// displaced by opensimplex noise so the layout looks hand-placed
// rather than ruled. The jitter stays inside each node's grid cell,
// which keeps positions pairwise distinct. Afterwards every node is
// linked to its nearest neighbors by Euclidean distance until it
// reaches the target degree.
func Generate(n int, opts ...Option) *graph.Graph {
	s := settings{seed: 1, width: 100, height: 80, degree: 2}
	for _, opt := range opts {
		opt(&s)
	}

	g := graph.New()
	if n <= 0 {
		return g
	}

	side := int(math.Ceil(math.Sqrt(float64(n))))
	cellW := s.width / float64(side)
	cellH := s.height / float64(side)
	noise := opensimplex.New(s.seed)

	for i := range n {
		cx := (float64(i%side) + 0.5) * cellW
		cy := (float64(i/side) + 0.5) * cellH
		jx := noise.Eval2(float64(i)*0.73, 0.19)
		jy := noise.Eval2(0.41, float64(i)*0.67)
		g.AddNode(cx+jx*cellW*0.45, cy+jy*cellH*0.45)
	}

	link(g, s.degree)
	return g
}

// link connects each node to its nearest neighbors, in node order, until
// the node carries the target degree. Ties on distance break toward the
// lower id so the result does not depend on sort internals.
func link(g *graph.Graph, degree int) {
	nodes := g.Nodes()
	for _, n := range nodes {
		others := slices.Clone(nodes)
		others = slices.DeleteFunc(others, func(o graph.Node) bool { return o.ID == n.ID })
		slices.SortFunc(others, func(a, b graph.Node) int {
			if c := cmp.Compare(g.Distance(n.ID, a.ID), g.Distance(n.ID, b.ID)); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})

		for _, o := range others {
			if g.Degree(n.ID) >= degree {
				break
			}
			if _, err := g.AddEdge(n.ID, o.ID); err != nil && !errors.Is(err, graph.ErrDuplicateEdge) {
				panic(err) // endpoints exist and differ, nothing else can fail
			}
		}
	}
}
