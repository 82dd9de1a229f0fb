package walk

import "github.com/matzehuels/graphwalk/pkg/graph"

// Dijkstra returns the step events of a single-source shortest-path run
// from start.
//
// Distances are finalized at pop time: popping a node off the queue for
// the first time emits EventNodeVisited with its final distance, then
// each incident edge emits EventEdgeExamined in stored adjacency order.
// A relaxation that improves the neighbor's tentative distance pushes
// the new key and emits EventEdgeAccepted with that distance; a later,
// better path may supersede it until the neighbor itself is finalized.
// Stale queue entries left behind by lazy decrease-key are discarded
// silently, without events.
//
// Edge weights are Euclidean distances and therefore non-negative, which
// is what makes pop-time finalization correct. Unreachable nodes are
// never popped; the run still ends with EventFinished once the queue
// drains.
//
// Returns ErrNilGraph or ErrUnknownStart before any event is produced.
func Dijkstra(g *graph.Graph, start graph.NodeID) (*Stream, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, ErrUnknownStart
	}

	dist := map[graph.NodeID]float64{start: 0}
	finalized := make(map[graph.NodeID]bool, g.NodeCount())
	pq := NewMinQueue()
	pq.Push(start, 0)

	// Expansion state for the most recently finalized node.
	var current graph.NodeID
	var adj []graph.Neighbor
	var next int
	expanding := false

	s := newStream()
	s.advance = func() {
		for {
			if expanding {
				if next < len(adj) {
					n := adj[next]
					next++
					s.emitEdge(EventEdgeExamined, n.Edge, current, n.ID, n.Weight)

					cand := dist[current] + n.Weight
					if best, seen := dist[n.ID]; !seen || cand < best {
						dist[n.ID] = cand
						pq.Push(n.ID, cand)
						s.emitEdge(EventEdgeAccepted, n.Edge, current, n.ID, cand)
					}
					return
				}
				expanding = false
			}

			for !pq.Empty() {
				id, key, err := pq.PopMin()
				if err != nil {
					panic(err)
				}
				if finalized[id] {
					continue // stale entry from lazy decrease-key
				}
				finalized[id] = true
				current, adj, next, expanding = id, g.Neighbors(id), 0, true
				s.emitNode(EventNodeVisited, id, key)
				return
			}

			s.emitFinished(float64(len(finalized)))
			return
		}
	}
	return s, nil
}
