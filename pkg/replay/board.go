package replay

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

// Board renders the graph as a bordered cell canvas next to a side
// panel listing edges and visited nodes. Node positions are projected
// onto the cell grid from their bounding box, or from the fixed
// rectangle given by [WithBounds]. A nil state renders everything
// untouched, which is what a graph under construction looks like.
func Board(g *graph.Graph, st *State, opts ...Option) string {
	s := newSettings(opts)
	if g == nil {
		g = graph.New()
	}
	if st == nil {
		st = NewState()
	}

	canvas := renderCanvas(g, st, s)
	panel := renderPanel(g, st, s)

	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if !s.plain {
		frame = frame.BorderForeground(colorDim)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, frame.Render(canvas), " ", panel)
}

func renderCanvas(g *graph.Graph, st *State, s settings) string {
	cells := make([][]string, s.rows)
	for r := range cells {
		row := make([]string, s.cols)
		for c := range row {
			row[c] = " "
		}
		cells[r] = row
	}

	nodes := g.Nodes()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	if s.boundsW > 0 && s.boundsH > 0 {
		minX, minY, maxX, maxY = 0, 0, s.boundsW, s.boundsH
	} else {
		for _, n := range nodes {
			minX, maxX = math.Min(minX, n.X), math.Max(maxX, n.X)
			minY, maxY = math.Min(minY, n.Y), math.Max(maxY, n.Y)
		}
	}
	project := func(x, y float64) (col, row int) {
		return scaleTo(x, minX, maxX, s.cols), scaleTo(y, minY, maxY, s.rows)
	}

	// Draw edges lowest-status first so accept/reject colors win at
	// crossings, then node labels on top.
	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b graph.Edge) int {
		return cmp.Compare(statusRank(st.EdgeStatus(a.ID)), statusRank(st.EdgeStatus(b.ID)))
	})
	for _, e := range edges {
		na, _ := g.Node(e.A)
		nb, _ := g.Node(e.B)
		c0, r0 := project(na.X, na.Y)
		c1, r1 := project(nb.X, nb.Y)
		status := st.EdgeStatus(e.ID)
		mark := s.style(edgeStyle(status)).Render(edgeRune(status))
		plotLine(c0, r0, c1, r1, func(col, row int) { cells[row][col] = mark })
	}

	curCol, curRow := -1, -1
	if s.cursor {
		curCol, curRow = project(s.cursorX, s.cursorY)
		cells[curRow][curCol] = s.style(styleCursor).Render("+")
	}

	for _, n := range nodes {
		col, row := project(n.X, n.Y)
		label := strconv.Itoa(int(n.ID))
		if col+len(label) > s.cols {
			col = s.cols - len(label)
		}
		style := s.style(nodeStyle(st.NodeStatus(n.ID)))
		for i, ch := range label {
			cellStyle := style
			if row == curRow && col+i == curCol {
				cellStyle = s.style(styleCursor)
			}
			cells[row][col+i] = cellStyle.Render(string(ch))
		}
	}

	lines := make([]string, s.rows)
	for r := range cells {
		lines[r] = strings.Join(cells[r], "")
	}
	return strings.Join(lines, "\n")
}

func renderPanel(g *graph.Graph, st *State, s settings) string {
	dim := s.style(styleDim)
	height := s.rows + 2 // matches the bordered canvas

	visited := st.VisitOrder()
	edgeMax := height - 2
	visitMax := 0
	if len(visited) > 0 {
		edgeMax = (height - 4) / 2
		visitMax = height - 4 - edgeMax
	}

	lines := []string{s.style(styleTitle).Render("edges")}
	edges := g.Edges()
	if len(edges) == 0 {
		lines = append(lines, dim.Render("(none)"))
	}
	edgeLines := make([]string, 0, len(edges))
	for _, e := range edges {
		status := st.EdgeStatus(e.ID)
		icon := s.style(edgeStyle(status)).Render(edgeIcon(status))
		edgeLines = append(edgeLines,
			fmt.Sprintf("%s e%d %d-%d %s", icon, e.ID, e.A, e.B, dim.Render(fmt.Sprintf("%.1f", e.Weight))))
	}
	lines = appendCapped(lines, edgeLines, edgeMax, dim)

	if len(visited) > 0 {
		lines = append(lines, "", s.style(styleTitle).Render("visited"))
		visitLines := make([]string, 0, len(visited))
		for _, id := range visited {
			v, _ := st.Value(id)
			style := s.style(nodeStyle(st.NodeStatus(id)))
			visitLines = append(visitLines,
				fmt.Sprintf("%s %s", style.Render(strconv.Itoa(int(id))), dim.Render(fmt.Sprintf("%.1f", v))))
		}
		lines = appendCapped(lines, visitLines, visitMax, dim)
	}

	return strings.Join(lines, "\n")
}

// appendCapped appends at most max rendered lines, folding any excess
// into a trailing count marker.
func appendCapped(lines, rendered []string, max int, dim lipgloss.Style) []string {
	if max <= 0 {
		return lines
	}
	if len(rendered) <= max {
		return append(lines, rendered...)
	}
	lines = append(lines, rendered[:max-1]...)
	return append(lines, dim.Render(fmt.Sprintf("… %d more", len(rendered)-(max-1))))
}

func statusRank(st EdgeStatus) int {
	switch st {
	case EdgeAccepted:
		return 3
	case EdgeRejected:
		return 2
	case EdgeExamined:
		return 1
	default:
		return 0
	}
}

func edgeRune(st EdgeStatus) string {
	switch st {
	case EdgeAccepted:
		return "•"
	case EdgeRejected:
		return "x"
	default:
		return "·"
	}
}

func edgeIcon(st EdgeStatus) string {
	switch st {
	case EdgeAccepted:
		return "✓"
	case EdgeRejected:
		return "✗"
	case EdgeExamined:
		return "·"
	default:
		return " "
	}
}

// scaleTo maps v from [lo, hi] onto cell indices 0..n-1, clamping
// out-of-range coordinates and centering a degenerate range.
func scaleTo(v, lo, hi float64, n int) int {
	if hi <= lo {
		return (n - 1) / 2
	}
	i := int(math.Round((v - lo) / (hi - lo) * float64(n-1)))
	return min(max(i, 0), n-1)
}

// plotLine walks the Bresenham line between two cells.
func plotLine(c0, r0, c1, r1 int, plot func(col, row int)) {
	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc + dr
	for {
		plot(c0, r0)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
