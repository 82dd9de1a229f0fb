package walk

import (
	"errors"
	"fmt"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

var (
	// ErrNilGraph is returned by every driver when called without a graph.
	ErrNilGraph = errors.New("graph must not be nil")

	// ErrUnknownStart is returned by [DFS], [BFS], [Dijkstra], and [Run]
	// when the start node is not in the graph. The check happens before
	// the stream exists, so a failed run never produces partial events.
	ErrUnknownStart = errors.New("unknown start node")

	// ErrUnknownAlgorithm is returned by [Run] and [ParseAlgorithm] for a
	// value outside the supported set.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Algorithm selects one of the four supported drivers. The set is
// closed: there is no registration mechanism, and switches over it can
// be exhaustive.
type Algorithm int

const (
	AlgorithmDFS Algorithm = iota
	AlgorithmBFS
	AlgorithmDijkstra
	AlgorithmKruskal
)

// Algorithms returns the supported algorithms in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmDFS, AlgorithmBFS, AlgorithmDijkstra, AlgorithmKruskal}
}

// String returns the lowercase name accepted by [ParseAlgorithm].
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDFS:
		return "dfs"
	case AlgorithmBFS:
		return "bfs"
	case AlgorithmDijkstra:
		return "dijkstra"
	case AlgorithmKruskal:
		return "kruskal"
	default:
		return "unknown"
	}
}

// Description returns the one-line summary shown in menus and help text.
func (a Algorithm) Description() string {
	switch a {
	case AlgorithmDFS:
		return "depth-first search in pre-order from a start node"
	case AlgorithmBFS:
		return "breadth-first search in level order from a start node"
	case AlgorithmDijkstra:
		return "shortest paths from a start node by non-decreasing distance"
	case AlgorithmKruskal:
		return "minimum spanning forest over the whole graph"
	default:
		return "unknown"
	}
}

// NeedsStart reports whether the algorithm requires a start node.
// Kruskal is the only one operating on the whole graph.
func (a Algorithm) NeedsStart() bool { return a != AlgorithmKruskal }

// ParseAlgorithm maps a name to its Algorithm. Matching is exact against
// the lowercase names returned by [Algorithm.String].
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if s == a.String() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Run dispatches to the driver for the given algorithm. The start node
// is ignored for Kruskal. Like the drivers it wraps, Run validates its
// inputs before the stream exists, so an error means no events were
// produced.
func Run(g *graph.Graph, algo Algorithm, start graph.NodeID) (*Stream, error) {
	switch algo {
	case AlgorithmDFS:
		return DFS(g, start)
	case AlgorithmBFS:
		return BFS(g, start)
	case AlgorithmDijkstra:
		return Dijkstra(g, start)
	case AlgorithmKruskal:
		return Kruskal(g)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}
}
