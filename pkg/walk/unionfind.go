package walk

import (
	"errors"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

// ErrUnknownElement is returned by [UnionFind.Find] and [UnionFind.Union]
// for ids never registered with [UnionFind.MakeSet]. Kruskal registers
// every node before touching any edge, so this error surfacing from a
// run means the engine itself is broken.
var ErrUnknownElement = errors.New("unknown element")

// UnionFind tracks disjoint components of node ids with path compression
// and union by rank. Kruskal uses it for cycle detection; it stands on
// its own for component queries over any node set.
//
// UnionFind is not safe for concurrent use.
type UnionFind struct {
	parent map[graph.NodeID]graph.NodeID
	rank   map[graph.NodeID]int
}

// NewUnionFind creates an empty structure with no registered elements.
func NewUnionFind() *UnionFind {
	return &UnionFind{
		parent: make(map[graph.NodeID]graph.NodeID),
		rank:   make(map[graph.NodeID]int),
	}
}

// MakeSet registers id as a singleton component. Registering an id that
// is already present is a no-op, so existing components are never reset.
func (u *UnionFind) MakeSet(id graph.NodeID) {
	if _, ok := u.parent[id]; ok {
		return
	}
	u.parent[id] = id
	u.rank[id] = 0
}

// Find returns the representative of id's component. Every node on the
// walked path is re-pointed directly at the root, flattening the tree
// for future lookups. Returns ErrUnknownElement if id was never
// registered.
func (u *UnionFind) Find(id graph.NodeID) (graph.NodeID, error) {
	root, ok := u.parent[id]
	if !ok {
		return NoNode, ErrUnknownElement
	}
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[id] != root {
		next := u.parent[id]
		u.parent[id] = root
		id = next
	}
	return root, nil
}

// Union merges the components of a and b, attaching the lower-rank root
// under the higher. It reports whether a merge occurred: false means
// the two were already in one component, which is Kruskal's cycle
// signal. Returns ErrUnknownElement if either id was never registered.
func (u *UnionFind) Union(a, b graph.NodeID) (bool, error) {
	ra, err := u.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := u.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true, nil
}
