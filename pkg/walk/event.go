package walk

import (
	"fmt"
	"iter"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

// EventKind tags what one step of an algorithm run describes.
type EventKind int

const (
	// EventNodeVisited marks a node entering the visited set (DFS/BFS) or
	// having its distance finalized (Dijkstra).
	EventNodeVisited EventKind = iota
	// EventEdgeExamined marks an edge coming under consideration. Every
	// edge the algorithm looks at produces exactly one of these per look,
	// including edges into already-visited nodes.
	EventEdgeExamined
	// EventEdgeAccepted marks an edge entering the algorithm's result:
	// a relaxation that improved a tentative distance (Dijkstra) or an
	// edge joining two components (Kruskal).
	EventEdgeAccepted
	// EventEdgeRejected marks an edge ruled out of the result because it
	// would close a cycle (Kruskal).
	EventEdgeRejected
	// EventFinished terminates every run. Once a stream has produced its
	// first event it always reaches exactly one EventFinished.
	EventFinished
)

// String returns the short verb used in traces.
func (k EventKind) String() string {
	switch k {
	case EventNodeVisited:
		return "visit"
	case EventEdgeExamined:
		return "examine"
	case EventEdgeAccepted:
		return "accept"
	case EventEdgeRejected:
		return "reject"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// NoNode and NoEdge fill Event fields that do not apply to the event's
// kind, so an unset field can never be mistaken for node or edge 0.
const (
	NoNode graph.NodeID = -1
	NoEdge graph.EdgeID = -1
)

// Event is one immutable step of an algorithm run.
//
// Node is set for EventNodeVisited; Edge, From, and To are set for the
// three edge kinds, with From the endpoint the algorithm approached the
// edge from (for Kruskal, the stored endpoint order). Unset fields hold
// NoNode or NoEdge. Seq is the emission index, starting at 0.
//
// Value carries the kind-specific payload:
//   - EventNodeVisited: depth in hops (DFS/BFS) or finalized distance (Dijkstra)
//   - EventEdgeExamined, EventEdgeRejected: the edge weight
//   - EventEdgeAccepted: the improved tentative distance (Dijkstra) or
//     the running forest weight (Kruskal)
//   - EventFinished: visited or finalized node count (traversals and
//     Dijkstra) or the total forest weight (Kruskal)
//
// Together the fields carry everything a renderer needs to color nodes
// and edges without recomputing algorithm state.
type Event struct {
	Seq   int
	Kind  EventKind
	Node  graph.NodeID
	Edge  graph.EdgeID
	From  graph.NodeID
	To    graph.NodeID
	Value float64
}

// String renders the event on one line for debugging and plain traces.
func (e Event) String() string {
	switch e.Kind {
	case EventNodeVisited:
		return fmt.Sprintf("#%d %s node=%d value=%g", e.Seq, e.Kind, e.Node, e.Value)
	case EventEdgeExamined, EventEdgeAccepted, EventEdgeRejected:
		return fmt.Sprintf("#%d %s edge=%d %d-%d value=%g", e.Seq, e.Kind, e.Edge, e.From, e.To, e.Value)
	default:
		return fmt.Sprintf("#%d %s value=%g", e.Seq, e.Kind, e.Value)
	}
}

// Stream is a single-pass, pull-based iterator over the events of one
// algorithm run.
//
// The run advances only when the consumer pulls: dropping a stream
// mid-run abandons the remaining computation, which is the only
// cancellation mechanism the engine has or needs. Streams are not
// rewindable - re-invoke the driver to replay a run; determinism
// guarantees the replay is event-for-event identical.
//
// Stream is not safe for concurrent use.
type Stream struct {
	buf     []Event
	cur     int
	seq     int
	advance func() // nil once finished
}

func newStream() *Stream { return &Stream{} }

// Next returns the next event, or a zero Event and false once the run
// has delivered EventFinished.
func (s *Stream) Next() (Event, bool) {
	for s.cur >= len(s.buf) {
		if s.advance == nil {
			return Event{}, false
		}
		s.buf = s.buf[:0]
		s.cur = 0
		s.advance()
	}
	e := s.buf[s.cur]
	s.cur++
	return e, true
}

// Collect drains the stream and returns all remaining events in order.
func (s *Stream) Collect() []Event {
	var events []Event
	for {
		e, ok := s.Next()
		if !ok {
			return events
		}
		events = append(events, e)
	}
}

// All returns an iterator over the remaining events, for use with a
// range statement. Breaking out of the range abandons the run like any
// other stopped pull.
func (s *Stream) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			e, ok := s.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

func (s *Stream) emit(e Event) {
	e.Seq = s.seq
	s.seq++
	s.buf = append(s.buf, e)
}

func (s *Stream) emitNode(kind EventKind, id graph.NodeID, value float64) {
	s.emit(Event{Kind: kind, Node: id, Edge: NoEdge, From: NoNode, To: NoNode, Value: value})
}

func (s *Stream) emitEdge(kind EventKind, edge graph.EdgeID, from, to graph.NodeID, value float64) {
	s.emit(Event{Kind: kind, Node: NoNode, Edge: edge, From: from, To: to, Value: value})
}

// emitFinished ends the run; advance is cleared so further pulls report
// end of stream.
func (s *Stream) emitFinished(value float64) {
	s.emit(Event{Kind: EventFinished, Node: NoNode, Edge: NoEdge, From: NoNode, To: NoNode, Value: value})
	s.advance = nil
}
