package walk

import "github.com/matzehuels/graphwalk/pkg/graph"

// DFS returns the step events of a depth-first traversal from start.
//
// The traversal visits nodes in pre-order for the graph's stored
// adjacency order: examining an edge into an undiscovered node descends
// into it immediately, exactly as the recursive formulation would. The
// recursion is simulated with explicit frames so the stream can suspend
// between any two events. Every edge consideration emits
// EventEdgeExamined, including edges back into already-visited nodes,
// and each visit emits EventNodeVisited with the depth in hops.
// Unreachable nodes are never mentioned.
//
// Returns ErrNilGraph or ErrUnknownStart before any event is produced.
func DFS(g *graph.Graph, start graph.NodeID) (*Stream, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, ErrUnknownStart
	}

	// One frame per node on the current descent path; next is the index
	// of the adjacency entry to examine when the frame is on top again.
	type frame struct {
		node  graph.NodeID
		depth int
		adj   []graph.Neighbor
		next  int
	}

	visited := map[graph.NodeID]bool{start: true}
	stack := []frame{{node: start, adj: g.Neighbors(start)}}
	started := false

	s := newStream()
	s.advance = func() {
		if !started {
			started = true
			s.emitNode(EventNodeVisited, start, 0)
			return
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.adj) {
				stack = stack[:len(stack)-1]
				continue
			}
			n := top.adj[top.next]
			top.next++
			from, depth := top.node, top.depth

			s.emitEdge(EventEdgeExamined, n.Edge, from, n.ID, n.Weight)
			if !visited[n.ID] {
				visited[n.ID] = true
				stack = append(stack, frame{node: n.ID, depth: depth + 1, adj: g.Neighbors(n.ID)})
				s.emitNode(EventNodeVisited, n.ID, float64(depth+1))
			}
			return
		}
		s.emitFinished(float64(len(visited)))
	}
	return s, nil
}
