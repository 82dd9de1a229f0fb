// Package walk runs graph algorithms as deterministic, replayable
// streams of step events.
//
// # Overview
//
// Graphwalk's purpose is to show how an algorithm thinks, one step at a
// time. The drivers in this package - [DFS], [BFS], [Dijkstra], and
// [Kruskal] - do not return a result set; they return a [Stream] of
// [Event] values describing every state transition in the order it
// happened: a node entering the visited set, an edge under
// consideration, an edge accepted into or rejected from the result.
// A renderer pulls one event per animation frame and never needs to
// understand the algorithm it is drawing.
//
// # Pull-based laziness
//
// A Stream computes nothing ahead of the consumer. Each [Stream.Next]
// call resumes the suspended run just far enough to produce the next
// event, so pacing belongs entirely to the caller and abandoning a
// stream abandons the remaining work. There are no goroutines and no
// channels behind it - a run is an explicit state machine resumed in
// the caller's goroutine, which keeps the engine single-threaded and
// trivially cancellable.
//
// # Determinism
//
// The same graph, algorithm, and start node always produce the
// identical event sequence. This falls out of ordered adjacency in
// [github.com/matzehuels/graphwalk/pkg/graph], the stable tie-break in
// [MinQueue], and Kruskal's stable edge sort, and it is what makes
// replays and tests exact.
//
// # Supporting structures
//
// [UnionFind] (path compression, union by rank) and [MinQueue] (lazy
// decrease-key min-heap) are exported: they carry their own error
// contracts and are useful beyond the drivers that consume them. The
// drivers themselves are written so those errors cannot occur; if one
// does, the engine panics rather than emitting a broken stream.
package walk
