// Package replay turns algorithm event streams into renderable text.
//
// # Overview
//
// The walk drivers emit events and know nothing about drawing. This
// package is the drawing side: [State] folds events into per-node and
// per-edge statuses, [Line] renders one event as a styled log line,
// [Board] renders the whole graph as a terminal canvas with a side
// panel, and [Summary] closes a drained run with its counts. Renderers
// never recompute algorithm results; everything they show comes out of
// the events they were fed.
//
// # Basic Usage
//
//	st := replay.NewState()
//	for e := range stream.All() {
//		st.Apply(e)
//		fmt.Println(replay.Line(e))
//	}
//	fmt.Println(replay.Board(g, st))
//	fmt.Println(replay.Summary(st))
//
// Styling is lipgloss throughout and degrades with the terminal's
// color profile; [WithPlain] strips it entirely for tests and piped
// output.
//
// # Concurrency
//
// Like the graph and walk packages, replay values are not safe for
// concurrent use. Feed one state from one stream at a time.
package replay
