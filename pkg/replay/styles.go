package replay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/graphwalk/pkg/walk"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - visited nodes
	colorGreen  = lipgloss.Color("35")  // Green - accepted edges
	colorYellow = lipgloss.Color("220") // Amber - current node, fresh examinations
	colorRed    = lipgloss.Color("167") // Soft red - rejected edges
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - untouched parts
)

var (
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleVisit   = lipgloss.NewStyle().Foreground(colorCyan)
	styleExamine = lipgloss.NewStyle().Foreground(colorYellow)
	styleAccept  = lipgloss.NewStyle().Foreground(colorGreen)
	styleReject  = lipgloss.NewStyle().Foreground(colorRed)
	styleFinish  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleCurrent = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleCursor  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow).Reverse(true)
)

// Option adjusts how the renderers in this package produce output.
type Option func(*settings)

// WithSize sets the canvas cell grid used by [Board]. Non-positive
// dimensions keep the defaults.
func WithSize(cols, rows int) Option {
	return func(s *settings) {
		if cols > 0 {
			s.cols = cols
		}
		if rows > 0 {
			s.rows = rows
		}
	}
}

// WithPlain disables all styling, leaving pure text. Layout and icons
// are unaffected.
func WithPlain() Option {
	return func(s *settings) { s.plain = true }
}

// WithBounds makes [Board] project node positions from the fixed
// coordinate rectangle [0,w] x [0,h] instead of the nodes' bounding
// box, so positions stay put while a graph is being built up.
func WithBounds(w, h float64) Option {
	return func(s *settings) { s.boundsW, s.boundsH = w, h }
}

// WithCursor makes [Board] mark the cell at the given position, in the
// same coordinate space the nodes use. A node under the cursor keeps
// its label and takes the cursor styling instead.
func WithCursor(x, y float64) Option {
	return func(s *settings) {
		s.cursor = true
		s.cursorX, s.cursorY = x, y
	}
}

type settings struct {
	cols, rows       int
	plain            bool
	boundsW, boundsH float64
	cursor           bool
	cursorX, cursorY float64
}

func newSettings(opts []Option) settings {
	s := settings{cols: 64, rows: 20}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// style returns the given style, or a no-op style in plain mode.
func (s settings) style(base lipgloss.Style) lipgloss.Style {
	if s.plain {
		return lipgloss.NewStyle()
	}
	return base
}

func kindStyle(k walk.EventKind) lipgloss.Style {
	switch k {
	case walk.EventNodeVisited:
		return styleVisit
	case walk.EventEdgeExamined:
		return styleExamine
	case walk.EventEdgeAccepted:
		return styleAccept
	case walk.EventEdgeRejected:
		return styleReject
	case walk.EventFinished:
		return styleFinish
	default:
		return styleValue
	}
}

func nodeStyle(st NodeStatus) lipgloss.Style {
	switch st {
	case NodeCurrent:
		return styleCurrent
	case NodeVisited:
		return styleVisit
	default:
		return styleValue
	}
}

func edgeStyle(st EdgeStatus) lipgloss.Style {
	switch st {
	case EdgeExamined:
		return styleExamine
	case EdgeAccepted:
		return styleAccept
	case EdgeRejected:
		return styleReject
	default:
		return styleDim
	}
}
