package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/buildinfo"
	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/replay"
	"github.com/matzehuels/graphwalk/pkg/scatter"
	"github.com/matzehuels/graphwalk/pkg/session"
	"github.com/matzehuels/graphwalk/pkg/walk"
)

// =============================================================================
// Board Command
// =============================================================================

// boardCommand creates the interactive board command.
func (c *CLI) boardCommand() *cobra.Command {
	var (
		cols     int
		rows     int
		interval int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Build a graph interactively and replay algorithm runs",
		Long: `Build a graph interactively and replay algorithm runs on it.

Move the cursor with the arrow keys (or hjkl), drop nodes and edges, pick
an algorithm and a start node, then watch the run unfold one event at a
time. Press g to scatter a random graph instead of placing nodes by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newBoardModel(cols, rows, time.Duration(interval)*time.Millisecond, seed)
			p := tea.NewProgram(m)
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(boardModel)
			if !ok {
				return nil
			}
			printRunHistory(fm.sess)
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "columns", c.Config.Columns, "board width in cells")
	cmd.Flags().IntVar(&rows, "rows", c.Config.Rows, "board height in cells")
	cmd.Flags().IntVar(&interval, "interval", c.Config.IntervalMS, "playback delay between events (ms)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for scattered graphs")

	return cmd
}

// printRunHistory prints the session's recorded runs after the board exits.
func printRunHistory(s *session.Session) {
	if s == nil || len(s.Runs) == 0 {
		return
	}
	printNewline()
	fmt.Println(StyleTitle.Render("Runs"))
	for _, r := range s.Runs {
		detail := fmt.Sprintf("%d events · result %g", r.Events, r.Total)
		if r.Start != walk.NoNode {
			detail = fmt.Sprintf("start %d · %s", r.Start, detail)
		}
		printKeyValue(r.Algorithm.String(), detail)
	}
}

// =============================================================================
// Board Model
// =============================================================================

// position is a cursor location on the cell grid.
type position struct {
	x, y int
}

// boardMode tracks a pending two-node pick.
type boardMode int

const (
	modePlace boardMode = iota // normal editing
	modeEdge                   // picking the second endpoint of a new edge
	modeCut                    // picking the second endpoint of an edge to remove
)

// statusKind selects the styling of the status line.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
)

// boardModel is the bubbletea model for the interactive board. Cursor
// coordinates double as node positions, so a node dropped at the cursor
// lands exactly on its cell.
type boardModel struct {
	g    *graph.Graph
	st   *replay.State
	sess *session.Session

	cursor   position
	mode     boardMode
	pickFrom graph.NodeID

	algo  walk.Algorithm
	start graph.NodeID

	stream   *walk.Stream // nil unless a run is active
	running  bool
	paused   bool
	interval time.Duration
	seed     int64

	cols, rows int

	status     string
	statusKind statusKind
}

// newBoardModel creates an empty board of the given size.
func newBoardModel(cols, rows int, interval time.Duration, seed int64) boardModel {
	sess := session.New()
	return boardModel{
		g:        sess.Graph,
		st:       replay.NewState(),
		sess:     sess,
		cursor:   position{cols / 2, rows / 2},
		start:    walk.NoNode,
		interval: interval,
		seed:     seed,
		cols:     cols,
		rows:     rows,
		status:   "drop a node with space",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.step()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys that work whether or not a run is active.
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor.y > 0 {
			m.cursor.y--
		}
		return m, nil
	case "down", "j":
		if m.cursor.y < m.rows-1 {
			m.cursor.y++
		}
		return m, nil
	case "left", "h":
		if m.cursor.x > 0 {
			m.cursor.x--
		}
		return m, nil
	case "right", "l":
		if m.cursor.x < m.cols-1 {
			m.cursor.x++
		}
		return m, nil
	case "p":
		if !m.running {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			return m, nil
		}
		return m, tickCmd(m.interval)
	case "esc":
		switch {
		case m.running:
			m.running = false
			m.stream = nil
			m.setStatus(statusWarn, "run abandoned")
		case m.mode != modePlace:
			m.mode = modePlace
			m.setStatus(statusInfo, "pick cancelled")
		}
		return m, nil
	case "r":
		m.running = false
		m.paused = false
		m.stream = nil
		m.st = replay.NewState()
		m.mode = modePlace
		m.setStatus(statusInfo, "replay reset")
		return m, nil
	}

	if m.running {
		m.setStatus(statusWarn, "run in progress: p pauses, esc stops")
		return m, nil
	}

	switch msg.String() {
	case " ", "n":
		if id, ok := m.nodeAt(m.cursor); ok {
			m.setStatus(statusWarn, "node %d is already here", id)
			return m, nil
		}
		id := m.g.AddNode(float64(m.cursor.x), float64(m.cursor.y))
		if m.start == walk.NoNode {
			m.start = id
		}
		m.setStatus(statusInfo, "node %d at (%d, %d)", id, m.cursor.x, m.cursor.y)

	case "e":
		id, ok := m.nodeAt(m.cursor)
		if !ok {
			m.setStatus(statusWarn, "no node under the cursor")
			return m, nil
		}
		if m.mode != modeEdge {
			m.mode = modeEdge
			m.pickFrom = id
			m.setStatus(statusInfo, "edge from %d: pick the other endpoint", id)
			return m, nil
		}
		m.mode = modePlace
		e, err := m.g.AddEdge(m.pickFrom, id)
		if err != nil {
			m.setStatus(statusWarn, "%s", err)
			return m, nil
		}
		m.setStatus(statusInfo, "edge %d-%d, weight %.1f", e.A, e.B, e.Weight)

	case "x":
		id, ok := m.nodeAt(m.cursor)
		if !ok {
			m.setStatus(statusWarn, "no node under the cursor")
			return m, nil
		}
		if m.mode != modeCut {
			m.mode = modeCut
			m.pickFrom = id
			m.setStatus(statusInfo, "cut from %d: pick the other endpoint", id)
			return m, nil
		}
		m.mode = modePlace
		if err := m.g.RemoveEdge(m.pickFrom, id); err != nil {
			m.setStatus(statusWarn, "%s", err)
			return m, nil
		}
		m.setStatus(statusInfo, "removed edge %d-%d", m.pickFrom, id)

	case "s":
		id, ok := m.nodeAt(m.cursor)
		if !ok {
			m.setStatus(statusWarn, "no node under the cursor")
			return m, nil
		}
		m.start = id
		m.setStatus(statusInfo, "start node %d", id)

	case "tab":
		algos := walk.Algorithms()
		for i, a := range algos {
			if a == m.algo {
				m.algo = algos[(i+1)%len(algos)]
				break
			}
		}
		m.setStatus(statusInfo, "%s", m.algo.Description())

	case "1", "2", "3", "4":
		m.algo = walk.Algorithms()[msg.String()[0]-'1']
		m.setStatus(statusInfo, "%s", m.algo.Description())

	case "enter":
		return m.launch()

	case "g":
		g := scatter.Generate(12,
			scatter.WithSeed(m.seed),
			scatter.WithSize(float64(m.cols-1), float64(m.rows-1)))
		m.seed++
		m.sess.Graph = g
		m.g = g
		m.st = replay.NewState()
		m.start = walk.NoNode
		m.mode = modePlace
		m.setStatus(statusInfo, "scattered %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	case "c":
		m.sess.Graph = graph.New()
		m.g = m.sess.Graph
		m.st = replay.NewState()
		m.start = walk.NoNode
		m.mode = modePlace
		m.setStatus(statusInfo, "board cleared")
	}

	return m, nil
}

// launch starts a new run over the current graph.
func (m boardModel) launch() (tea.Model, tea.Cmd) {
	start := m.start
	if m.algo.NeedsStart() && start == walk.NoNode {
		start = 0
	}
	m.sess.Algorithm = m.algo
	m.sess.Start = start

	stream, err := m.sess.Stream()
	if err != nil {
		m.setStatus(statusWarn, "%s", err)
		return m, nil
	}
	m.st = replay.NewState()
	m.stream = stream
	m.running = true
	m.paused = false
	m.setStatus(statusInfo, "running %s", m.algo)
	return m, tickCmd(m.interval)
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(StyleDim.Render(" " + buildinfo.Short()))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(m.algo.String()))
	if m.algo.NeedsStart() {
		from := "?"
		if m.start != walk.NoNode {
			from = strconv.Itoa(int(m.start))
		}
		b.WriteString(StyleDim.Render(" from " + from))
	}
	if n := len(m.sess.Runs); n > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf(" · %d runs", n)))
	}
	b.WriteString("\n\n")

	b.WriteString(replay.Board(m.g, m.st,
		replay.WithSize(m.cols, m.rows),
		replay.WithBounds(float64(m.cols-1), float64(m.rows-1)),
		replay.WithCursor(float64(m.cursor.x), float64(m.cursor.y)),
	))
	b.WriteString("\n")

	status := m.status
	if m.paused {
		status = "paused: p resumes"
	}
	switch m.statusKind {
	case statusOK:
		b.WriteString(StyleSuccess.Render(status))
	case statusWarn:
		b.WriteString(StyleWarning.Render(status))
	default:
		b.WriteString(StyleDim.Render(status))
	}
	b.WriteString("\n")

	b.WriteString(StyleDim.Render("hjkl/arrows move  space node  e edge  x cut edge  s start  tab algorithm"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("enter run  p pause  esc stop  r reset  g scatter  c clear  q quit"))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// setStatus replaces the status line.
func (m *boardModel) setStatus(kind statusKind, format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusKind = kind
}

// nodeAt returns the node whose rounded position matches the cursor cell.
func (m boardModel) nodeAt(p position) (graph.NodeID, bool) {
	for _, n := range m.g.Nodes() {
		if int(math.Round(n.X)) == p.x && int(math.Round(n.Y)) == p.y {
			return n.ID, true
		}
	}
	return walk.NoNode, false
}
