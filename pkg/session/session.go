// Package session holds the in-memory working state of one graph
// workbench: the graph under construction, the selected algorithm and
// start node, and the history of completed runs. Nothing is persisted;
// a session lives and dies with its process.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/replay"
	"github.com/matzehuels/graphwalk/pkg/walk"
)

// Run records the outcome of one completed algorithm run. It keeps
// counts only: streams are single-pass, and determinism means a rerun
// reproduces the full event sequence whenever it is needed again.
type Run struct {
	ID        uuid.UUID
	Algorithm walk.Algorithm
	Start     graph.NodeID
	Events    int
	Visited   int
	Accepted  int
	Rejected  int
	Total     float64
	At        time.Time
}

// Session is the working state of one interactive graph. Mutate the
// exported fields directly to change the graph, algorithm, or start
// node between runs. Not safe for concurrent use.
type Session struct {
	ID        uuid.UUID
	Graph     *graph.Graph
	Algorithm walk.Algorithm
	Start     graph.NodeID
	Runs      []Run
}

// New returns a session with an empty graph, DFS selected, and start
// node 0.
func New() *Session {
	return &Session{
		ID:    uuid.New(),
		Graph: graph.New(),
	}
}

// Stream starts a run with the session's current algorithm and start
// node. The caller owns the pull pace; nothing is recorded until the
// drained outcome is passed to [Session.Record].
func (s *Session) Stream() (*walk.Stream, error) {
	return walk.Run(s.Graph, s.Algorithm, s.Start)
}

// Execute runs the selected algorithm to completion and appends the
// outcome to the run history. The optional observer sees every event
// in stream order. On a validation error no run is recorded.
func (s *Session) Execute(observe func(walk.Event)) (Run, error) {
	stream, err := s.Stream()
	if err != nil {
		return Run{}, err
	}

	st := replay.NewState()
	for e := range stream.All() {
		st.Apply(e)
		if observe != nil {
			observe(e)
		}
	}
	return s.Record(st), nil
}

// Record appends a history entry for a run drained into the given
// state, and returns it. The entry takes the session's current
// algorithm and start node; for algorithms without a start node the
// entry records walk.NoNode.
func (s *Session) Record(st *replay.State) Run {
	run := Run{
		ID:        uuid.New(),
		Algorithm: s.Algorithm,
		Start:     s.Start,
		Events:    st.Applied(),
		Visited:   st.Visited(),
		Accepted:  st.Accepted(),
		Rejected:  st.Rejected(),
		Total:     st.Result(),
		At:        time.Now(),
	}
	if !s.Algorithm.NeedsStart() {
		run.Start = walk.NoNode
	}
	s.Runs = append(s.Runs, run)
	return run
}
