package replay

import (
	"slices"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/walk"
)

// NodeStatus is the visual state of a node during playback.
type NodeStatus int

const (
	// NodeUnseen means no event has mentioned the node yet.
	NodeUnseen NodeStatus = iota
	// NodeCurrent marks the most recently visited node while the run is
	// still going.
	NodeCurrent
	// NodeVisited marks a node the algorithm has visited or finalized.
	NodeVisited
)

// EdgeStatus is the visual state of an edge during playback.
type EdgeStatus int

const (
	// EdgeUnseen means no event has mentioned the edge yet.
	EdgeUnseen EdgeStatus = iota
	// EdgeExamined marks an edge the algorithm looked at without a
	// verdict so far.
	EdgeExamined
	// EdgeAccepted marks an edge that entered the result.
	EdgeAccepted
	// EdgeRejected marks an edge ruled out of the result.
	EdgeRejected
)

// State accumulates a run's events into per-node and per-edge statuses
// plus running counts, so renderers replay a stream without recomputing
// any algorithm logic. Apply events in stream order; State is not safe
// for concurrent use.
type State struct {
	nodes  map[graph.NodeID]NodeStatus
	edges  map[graph.EdgeID]EdgeStatus
	values map[graph.NodeID]float64
	order  []graph.NodeID

	current  graph.NodeID
	last     walk.Event
	applied  int
	accepted int
	rejected int
	finished bool
	result   float64
}

// NewState returns an empty accumulator.
func NewState() *State {
	return &State{
		nodes:   make(map[graph.NodeID]NodeStatus),
		edges:   make(map[graph.EdgeID]EdgeStatus),
		values:  make(map[graph.NodeID]float64),
		current: walk.NoNode,
	}
}

// Apply folds one event into the state.
func (s *State) Apply(e walk.Event) {
	s.applied++
	s.last = e

	switch e.Kind {
	case walk.EventNodeVisited:
		if s.current != walk.NoNode {
			s.nodes[s.current] = NodeVisited
		}
		s.nodes[e.Node] = NodeCurrent
		s.current = e.Node
		s.values[e.Node] = e.Value
		s.order = append(s.order, e.Node)
	case walk.EventEdgeExamined:
		// Verdicts are sticky: re-examining an edge from its other
		// endpoint must not clear an earlier accept or reject.
		if s.edges[e.Edge] == EdgeUnseen {
			s.edges[e.Edge] = EdgeExamined
		}
	case walk.EventEdgeAccepted:
		s.edges[e.Edge] = EdgeAccepted
		s.accepted++
	case walk.EventEdgeRejected:
		s.edges[e.Edge] = EdgeRejected
		s.rejected++
	case walk.EventFinished:
		if s.current != walk.NoNode {
			s.nodes[s.current] = NodeVisited
			s.current = walk.NoNode
		}
		s.finished = true
		s.result = e.Value
	}
}

// NodeStatus returns the status of a node, NodeUnseen if never mentioned.
func (s *State) NodeStatus(id graph.NodeID) NodeStatus { return s.nodes[id] }

// EdgeStatus returns the status of an edge, EdgeUnseen if never mentioned.
func (s *State) EdgeStatus(id graph.EdgeID) EdgeStatus { return s.edges[id] }

// Value returns the value the run attached to a visited node: its depth
// for the traversals, its finalized distance for Dijkstra.
func (s *State) Value(id graph.NodeID) (float64, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Current returns the most recently visited node while the run is in
// progress, and false before the first visit or after the run finished.
func (s *State) Current() (graph.NodeID, bool) {
	return s.current, s.current != walk.NoNode
}

// VisitOrder returns the visited nodes in visit order.
func (s *State) VisitOrder() []graph.NodeID { return slices.Clone(s.order) }

// Last returns the most recently applied event, false before the first.
func (s *State) Last() (walk.Event, bool) { return s.last, s.applied > 0 }

// Applied returns the number of events folded in so far.
func (s *State) Applied() int { return s.applied }

// Visited returns the number of visited nodes.
func (s *State) Visited() int { return len(s.order) }

// Accepted returns the number of acceptance events.
func (s *State) Accepted() int { return s.accepted }

// Rejected returns the number of rejection events.
func (s *State) Rejected() int { return s.rejected }

// Finished reports whether the terminating event has been applied.
func (s *State) Finished() bool { return s.finished }

// Result returns the value of the terminating event, 0 until finished:
// the visited or finalized node count for the traversals and Dijkstra,
// the total forest weight for Kruskal.
func (s *State) Result() float64 { return s.result }
