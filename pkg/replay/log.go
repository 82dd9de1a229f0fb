package replay

import (
	"fmt"
	"strings"

	"github.com/matzehuels/graphwalk/pkg/walk"
)

// Line renders one event as a single aligned log line.
func Line(e walk.Event, opts ...Option) string {
	s := newSettings(opts)

	var b strings.Builder
	b.WriteString(s.style(styleDim).Render(fmt.Sprintf("#%-3d", e.Seq)))
	b.WriteString(" ")
	b.WriteString(s.style(kindStyle(e.Kind)).Render(fmt.Sprintf("%-8s", e.Kind)))

	switch e.Kind {
	case walk.EventNodeVisited:
		subject := fmt.Sprintf("node %d", e.Node)
		b.WriteString(" " + s.style(styleValue).Render(fmt.Sprintf("%-12s", subject)))
	case walk.EventEdgeExamined, walk.EventEdgeAccepted, walk.EventEdgeRejected:
		subject := fmt.Sprintf("edge %d %d-%d", e.Edge, e.From, e.To)
		b.WriteString(" " + s.style(styleValue).Render(fmt.Sprintf("%-12s", subject)))
	}

	b.WriteString(" " + s.style(styleDim).Render(fmt.Sprintf("value=%g", e.Value)))
	return b.String()
}

// Summary renders the closing one-liner for a drained run.
func Summary(st *State, opts ...Option) string {
	s := newSettings(opts)
	sep := s.style(styleDim).Render(" · ")
	dim := s.style(styleDim)

	parts := []string{
		dim.Render(fmt.Sprintf("%d events", st.Applied())),
		dim.Render(fmt.Sprintf("%d visited", st.Visited())),
		dim.Render(fmt.Sprintf("%d accepted", st.Accepted())),
		dim.Render(fmt.Sprintf("%d rejected", st.Rejected())),
	}
	line := strings.Join(parts, sep)
	if st.Finished() {
		line += sep + s.style(styleFinish).Render(fmt.Sprintf("result %g", st.Result()))
	}
	return line
}
