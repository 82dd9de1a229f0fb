package walk

import "github.com/matzehuels/graphwalk/pkg/graph"

// BFS returns the step events of a breadth-first traversal from start.
//
// The event discipline matches [DFS] with the stack swapped for a FIFO
// queue: nodes are visited in level order, each EventNodeVisited carries
// the hop distance from start, and discovering a node emits its visit
// immediately after the EventEdgeExamined that found it. Neighbor
// examination follows the graph's stored adjacency order, and every
// consideration emits EventEdgeExamined even when the neighbor was
// discovered earlier. Unreachable nodes are never mentioned.
//
// Returns ErrNilGraph or ErrUnknownStart before any event is produced.
func BFS(g *graph.Graph, start graph.NodeID) (*Stream, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, ErrUnknownStart
	}

	type item struct {
		node  graph.NodeID
		depth int
		adj   []graph.Neighbor
		next  int
	}

	discovered := map[graph.NodeID]bool{start: true}
	queue := []item{{node: start, adj: g.Neighbors(start)}}
	head := 0
	started := false

	s := newStream()
	s.advance = func() {
		if !started {
			started = true
			s.emitNode(EventNodeVisited, start, 0)
			return
		}
		for head < len(queue) {
			cur := &queue[head]
			if cur.next >= len(cur.adj) {
				head++
				continue
			}
			n := cur.adj[cur.next]
			cur.next++
			from, depth := cur.node, cur.depth

			s.emitEdge(EventEdgeExamined, n.Edge, from, n.ID, n.Weight)
			if !discovered[n.ID] {
				discovered[n.ID] = true
				queue = append(queue, item{node: n.ID, depth: depth + 1, adj: g.Neighbors(n.ID)})
				s.emitNode(EventNodeVisited, n.ID, float64(depth+1))
			}
			return
		}
		s.emitFinished(float64(len(discovered)))
	}
	return s, nil
}
