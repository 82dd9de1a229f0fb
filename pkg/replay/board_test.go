package replay_test

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/replay"
	"github.com/matzehuels/graphwalk/pkg/walk"
)

func TestBoardLayout(t *testing.T) {
	g := triangle(t)
	out := replay.Board(g, nil, replay.WithPlain(), replay.WithSize(21, 7))

	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("board has %d lines, want 9 (7 canvas rows plus border)", len(lines))
	}

	for _, want := range []string{"0", "1", "2", "·", "edges", "e0 0-1 3.0", "e1 1-2 4.0", "e2 0-2 5.0", "╭"} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing %q:\n%s", want, out)
		}
	}
}

func TestBoardEmptyGraph(t *testing.T) {
	out := replay.Board(nil, nil, replay.WithPlain(), replay.WithSize(10, 4))

	if !strings.Contains(out, "(none)") {
		t.Errorf("empty board missing edge placeholder:\n%s", out)
	}
	if got := len(strings.Split(out, "\n")); got != 6 {
		t.Errorf("empty board has %d lines, want 6", got)
	}
}

func TestBoardSingleNodeCentered(t *testing.T) {
	g := graph.New()
	g.AddNode(5, 5)

	out := replay.Board(g, nil, replay.WithPlain(), replay.WithSize(11, 5))
	lines := strings.Split(out, "\n")

	// A degenerate bounding box lands on the center cell, offset by one
	// for the border.
	row := []rune(lines[3])
	if row[6] != '0' {
		t.Errorf("center cell = %q, want '0'\n%s", row[6], out)
	}
}

func TestBoardWithBounds(t *testing.T) {
	g := graph.New()
	g.AddNode(2, 2)

	out := replay.Board(g, nil, replay.WithPlain(), replay.WithSize(11, 11), replay.WithBounds(10, 10))
	lines := strings.Split(out, "\n")

	row := []rune(lines[3])
	if row[3] != '0' {
		t.Errorf("cell (2,2) = %q, want '0'\n%s", row[3], out)
	}
}

func TestBoardCursor(t *testing.T) {
	out := replay.Board(nil, nil, replay.WithPlain(), replay.WithSize(11, 5),
		replay.WithBounds(10, 4), replay.WithCursor(5, 2))
	lines := strings.Split(out, "\n")

	row := []rune(lines[3])
	if row[6] != '+' {
		t.Errorf("cursor cell = %q, want '+'\n%s", row[6], out)
	}
}

func TestBoardCursorOnNode(t *testing.T) {
	g := graph.New()
	g.AddNode(5, 2)

	out := replay.Board(g, nil, replay.WithPlain(), replay.WithSize(11, 5),
		replay.WithBounds(10, 4), replay.WithCursor(5, 2))
	lines := strings.Split(out, "\n")

	// The node keeps its label; only the styling changes.
	row := []rune(lines[3])
	if row[6] != '0' {
		t.Errorf("cursor cell = %q, want node label '0'\n%s", row[6], out)
	}
}

func TestBoardStatusMarks(t *testing.T) {
	g := triangle(t)
	s, err := walk.Run(g, walk.AlgorithmKruskal, 0)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	st := replay.NewState()
	for e := range s.All() {
		st.Apply(e)
	}

	out := replay.Board(g, st, replay.WithPlain(), replay.WithSize(21, 7))

	// Two accepted edges, one rejected: verdict icons in the panel and
	// verdict runes on the canvas.
	if got := strings.Count(out, "✓"); got != 2 {
		t.Errorf("board shows %d accept icons, want 2:\n%s", got, out)
	}
	if got := strings.Count(out, "✗"); got != 1 {
		t.Errorf("board shows %d reject icons, want 1:\n%s", got, out)
	}
	for _, want := range []string{"•", "x"} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing %q:\n%s", want, out)
		}
	}
}

func TestBoardVisitedPanel(t *testing.T) {
	g := triangle(t)
	s, err := walk.Run(g, walk.AlgorithmDijkstra, 0)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	st := replay.NewState()
	for e := range s.All() {
		st.Apply(e)
	}

	out := replay.Board(g, st, replay.WithPlain(), replay.WithSize(21, 9))
	for _, want := range []string{"visited", "0 0.0", "1 3.0", "2 5.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing %q:\n%s", want, out)
		}
	}
}
