package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/graphwalk/pkg/replay"
	"github.com/matzehuels/graphwalk/pkg/walk"
)

// tickMsg advances a running replay by one event.
type tickMsg time.Time

// tickCmd schedules the next playback tick after the given interval.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// step applies the next event of the active run and reschedules the tick.
// Stale ticks arriving after a pause or stop are dropped.
func (m boardModel) step() (tea.Model, tea.Cmd) {
	if !m.running || m.paused || m.stream == nil {
		return m, nil
	}

	e, ok := m.stream.Next()
	if !ok {
		m.running = false
		m.stream = nil
		return m, nil
	}

	m.st.Apply(e)
	if e.Kind == walk.EventFinished {
		m.running = false
		m.stream = nil
		m.sess.Record(m.st)
		m.setStatus(statusOK, "%s", replay.Summary(m.st, replay.WithPlain()))
		return m, nil
	}
	m.setStatus(statusInfo, "%s", replay.Line(e, replay.WithPlain()))
	return m, tickCmd(m.interval)
}
