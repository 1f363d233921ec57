package ui

import (
	"context"
	"reflect"

	"github.com/atomicstack/tuilet/internal/fonts"
	"github.com/atomicstack/tuilet/internal/session"
	"github.com/atomicstack/tuilet/internal/theme"
	"github.com/atomicstack/tuilet/internal/toilet"
	uistate "github.com/atomicstack/tuilet/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// ExitAction says what the caller should print once the program ends.
type ExitAction int

const (
	ExitNone ExitAction = iota
	ExitCmdline
	ExitOutput
)

// Options configures a Model.
type Options struct {
	// Executor runs the assembled command lines. Required.
	Executor toilet.Executor
	// Rescan rebuilds the font catalog on demand. Optional.
	Rescan func() fonts.Catalog
	// Version is shown in the title row.
	Version string
	// BlinkCursor enables the blinking cursor in text fields.
	BlinkCursor bool
}

// Model implements the Bubble Tea model for the tuilet editor.
type Model struct {
	session  *session.Session
	executor toilet.Executor
	rescan   func() fonts.Catalog
	version  string

	focus     uistate.Focus
	input     textinput.Model
	flags     textinput.Model
	fontQuery string
	scroll    int // first visible output row
	help      help.Model
	keys      keyMap

	width   int
	height  int
	seq     int
	cancel  context.CancelFunc
	loading bool
	errMsg  string
	infoMsg string
	exit    ExitAction

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around an existing session.
func NewModel(s *session.Session, opts Options) *Model {
	m := &Model{
		session:  s,
		executor: opts.Executor,
		rescan:   opts.Rescan,
		version:  opts.Version,
		focus:    uistate.FocusInput,
		input:    newTextField("type something", opts.BlinkCursor),
		flags:    newTextField("e.g. --gay -F border", opts.BlinkCursor),
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
	m.input.SetValue(s.Input())
	m.flags.SetValue(s.Flags())
	m.input.Focus()
	m.registerHandlers()
	return m
}

func newTextField(placeholder string, blink bool) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = placeholder
	ti.PromptStyle = *styles.Prompt
	ti.TextStyle = *styles.Input
	ti.PlaceholderStyle = *styles.Placeholder
	ti.Cursor.Style = *styles.Cursor
	if blink {
		ti.Cursor.SetMode(cursor.CursorBlink)
	} else {
		ti.Cursor.SetMode(cursor.CursorStatic)
	}
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.requestPreview()}
	if m.input.Cursor.Mode() == cursor.CursorBlink {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.updateFields(msg)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(previewLoadedMsg{}):  m.handlePreviewLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// updateFields forwards cursor blink and similar messages to both text fields.
func (m *Model) updateFields(msg tea.Msg) tea.Cmd {
	var inputCmd, flagsCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.flags, flagsCmd = m.flags.Update(msg)
	return tea.Batch(inputCmd, flagsCmd)
}

// Session exposes the underlying session.
func (m *Model) Session() *session.Session {
	return m.session
}

// Focus reports the focused region.
func (m *Model) Focus() uistate.Focus {
	return m.focus
}

// Exit reports what the caller should print after the program ends.
func (m *Model) Exit() ExitAction {
	return m.exit
}

// ExitText returns the text matching Exit. The command line reflects the
// latest edits even when their preview never arrived.
func (m *Model) ExitText() string {
	switch m.exit {
	case ExitCmdline:
		return m.session.Lines().Display
	case ExitOutput:
		return m.session.CopyOutput()
	default:
		return ""
	}
}

// context is the parent of every preview round. Each process still gets
// the executor timeout.
func (m *Model) context() context.Context {
	return context.Background()
}
