package ui

import (
	"fmt"

	"github.com/atomicstack/tuilet/internal/fonts"
	"github.com/atomicstack/tuilet/internal/logging/events"
	uistate "github.com/atomicstack/tuilet/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit(ExitCmdline, "cmdline")
	case key.Matches(keyMsg, m.keys.QuitOutput):
		return m.quit(ExitOutput, "output")
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.syncOutput()
		return nil
	case key.Matches(keyMsg, m.keys.NextFocus):
		return m.setFocus(m.focus.Next())
	case key.Matches(keyMsg, m.keys.PrevFocus):
		return m.setFocus(m.focus.Prev())
	case key.Matches(keyMsg, m.keys.Rescan):
		return m.rescanFonts()
	case key.Matches(keyMsg, m.keys.PageUp):
		m.scrollOutput(-m.outputRows())
		return nil
	case key.Matches(keyMsg, m.keys.PageDown):
		m.scrollOutput(m.outputRows())
		return nil
	case key.Matches(keyMsg, m.keys.Submit):
		return nil
	}

	switch m.focus {
	case uistate.FocusFont:
		return m.handleFontKey(keyMsg)
	case uistate.FocusFlags:
		return m.handleFieldKey(&m.flags, m.session.SetFlags, keyMsg)
	default:
		return m.handleFieldKey(&m.input, m.session.SetInput, keyMsg)
	}
}

func (m *Model) quit(action ExitAction, reason string) tea.Cmd {
	m.exit = action
	m.cancelPreview()
	events.UI.Quit(reason)
	return tea.Quit
}

func (m *Model) setFocus(target uistate.Focus) tea.Cmd {
	if target == m.focus {
		return nil
	}
	m.focus = target
	events.UI.Focus(target.String())
	m.input.Blur()
	m.flags.Blur()
	switch target {
	case uistate.FocusInput:
		return m.input.Focus()
	case uistate.FocusFlags:
		return m.flags.Focus()
	}
	return nil
}

func (m *Model) handleFontKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.NextFont):
		m.fontQuery = ""
		m.session.NextFont()
		return m.requestPreview()
	case key.Matches(msg, m.keys.PrevFont):
		m.fontQuery = ""
		m.session.PrevFont()
		return m.requestPreview()
	case key.Matches(msg, m.keys.ClearQuery):
		m.fontQuery = ""
		m.infoMsg = ""
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace:
		runes := []rune(m.fontQuery)
		if len(runes) == 0 {
			return nil
		}
		m.fontQuery = string(runes[:len(runes)-1])
		if m.fontQuery == "" {
			m.infoMsg = ""
			return nil
		}
		return m.jumpToFont()
	case tea.KeyRunes:
		m.fontQuery += string(msg.Runes)
		return m.jumpToFont()
	}
	return nil
}

// jumpToFont selects the best catalog match for the typed font query.
func (m *Model) jumpToFont() tea.Cmd {
	catalog := m.session.Catalog()
	idx := fonts.BestMatch(catalog.Fonts, m.fontQuery)
	if idx < 0 {
		m.infoMsg = fmt.Sprintf("no font matches %q", m.fontQuery)
		return nil
	}
	m.infoMsg = ""
	if idx == m.session.Index() {
		return nil
	}
	m.session.SelectFont(idx)
	return m.requestPreview()
}

// handleFieldKey forwards msg to field and re-derives the outputs when the
// text changed.
func (m *Model) handleFieldKey(field *textinput.Model, store func(string), msg tea.KeyMsg) tea.Cmd {
	before := field.Value()
	var cmd tea.Cmd
	*field, cmd = field.Update(msg)
	after := field.Value()
	if after == before {
		return cmd
	}
	store(after)
	return tea.Batch(cmd, m.requestPreview())
}

func (m *Model) rescanFonts() tea.Cmd {
	if m.rescan == nil {
		return nil
	}
	if err := m.session.Rescan(m.rescan()); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.infoMsg = fmt.Sprintf("%d fonts", m.session.Catalog().Len())
	return m.requestPreview()
}
