package walk

import (
	"cmp"
	"slices"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

// Kruskal returns the step events of a minimum-spanning-forest run over
// the whole graph. It is the one driver that takes no start node.
//
// Edges are processed in ascending weight order, ties broken by
// insertion order so equal-weight graphs animate identically on every
// run. Each edge emits EventEdgeExamined, then either EventEdgeAccepted
// with the running forest weight (the edge joined two components) or
// EventEdgeRejected with the edge weight (it would have closed a
// cycle). All edges are processed even after the forest is complete -
// watching the tail rejections is part of the demonstration. The final
// EventFinished carries the total forest weight.
//
// The accepted set forms a minimum spanning forest: one tree per
// connected component, a single spanning tree when the graph is
// connected. An empty graph yields a stream containing only
// EventFinished.
//
// Returns ErrNilGraph before any event is produced.
func Kruskal(g *graph.Graph) (*Stream, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b graph.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	uf := NewUnionFind()
	for _, n := range g.Nodes() {
		uf.MakeSet(n.ID)
	}

	idx := 0
	var total float64

	s := newStream()
	s.advance = func() {
		if idx < len(edges) {
			e := edges[idx]
			idx++
			s.emitEdge(EventEdgeExamined, e.ID, e.A, e.B, e.Weight)

			merged, err := uf.Union(e.A, e.B)
			if err != nil {
				panic(err)
			}
			if merged {
				total += e.Weight
				s.emitEdge(EventEdgeAccepted, e.ID, e.A, e.B, total)
			} else {
				s.emitEdge(EventEdgeRejected, e.ID, e.A, e.B, e.Weight)
			}
			return
		}
		s.emitFinished(total)
	}
	return s, nil
}
