package ui

import (
	"context"

	"github.com/atomicstack/tuilet/internal/logging/events"
	"github.com/atomicstack/tuilet/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

type previewLoadedMsg struct {
	seq    int
	result session.Result
}

// requestPreview derives the command lines and schedules an execution round.
// Nothing visible changes until the matching previewLoadedMsg is applied, so
// the command line and its output are always committed together. A pending
// round is cancelled when a newer one replaces it.
func (m *Model) requestPreview() tea.Cmd {
	lines := m.session.Lines()
	if m.executor == nil {
		m.session.Apply(session.Result{Lines: lines})
		m.syncOutput()
		return nil
	}
	m.cancelPreview()
	m.seq++
	seq := m.seq
	m.loading = true
	events.Preview.Queue(seq, lines.Exec)
	ctx, cancel := context.WithCancel(m.context())
	m.cancel = cancel
	exec := m.executor
	return func() tea.Msg {
		return previewLoadedMsg{seq: seq, result: session.Run(ctx, exec, lines)}
	}
}

// cancelPreview aborts the pending round, if any.
func (m *Model) cancelPreview() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) handlePreviewLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(previewLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.seq != m.seq {
		events.Preview.Stale(loaded.seq, m.seq)
		return nil
	}
	m.cancelPreview()
	m.loading = false
	m.session.Apply(loaded.result)
	if err := loaded.result.Err; err != nil {
		events.Preview.Error(err)
		m.errMsg = err.Error()
	} else {
		m.errMsg = ""
	}
	m.syncOutput()
	return nil
}

// syncOutput keeps the scroll offset inside the current preview.
func (m *Model) syncOutput() {
	m.scrollOutput(0)
}
