package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tuilet/internal/fonts"
	"github.com/atomicstack/tuilet/internal/logging/events"
	uistate "github.com/atomicstack/tuilet/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth   = 80
	titleRows      = 2
	fieldBoxRows   = 3
	cmdlineBoxRows = 3
	statusRows     = 1
	helpRows       = 1
	minOutputInner = 10
)

const (
	tlc = "╭"
	trc = "╮"
	blc = "╰"
	brc = "╯"
	hz  = "─"
	vt  = "│"
)

// box describes one bordered region.
type box struct {
	title  string
	hint   string
	lines  []string
	rows   int
	active bool
	// raw lines carry their own styling and are only clipped.
	raw bool
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.viewWidth()
	parts := []string{
		m.renderTitle(width),
		m.renderBox(m.inputBox(), width),
		m.renderBox(m.fontBox(width), width),
		m.renderBox(m.flagsBox(), width),
		m.renderBox(m.outputBox(), width),
		m.renderBox(m.cmdlineBox(width), width),
		m.renderStatus(width),
		m.renderHelp(width),
	}
	return strings.Join(parts, "\n")
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// outputRows returns the inner height of the output box.
func (m *Model) outputRows() int {
	fixed := titleRows + 3*fieldBoxRows + cmdlineBoxRows + statusRows + helpRows + 2
	rows := m.height - fixed
	if m.help.ShowAll {
		rows -= len(m.keys.FullHelp()[0]) - helpRows
	}
	if rows < minOutputInner {
		return minOutputInner
	}
	return rows
}

func (m *Model) renderTitle(width int) string {
	version := m.version
	if version == "" {
		version = "dev"
	}
	text := fmt.Sprintf(" tuilet %s (press Ctrl-C to quit) ", version)
	return styles.Title.Render(truncateText(text, width)) + "\n"
}

func (m *Model) inputBox() box {
	return box{
		title:  "Input",
		lines:  []string{m.input.View()},
		rows:   1,
		active: m.focus == uistate.FocusInput,
		raw:    true,
	}
}

func (m *Model) flagsBox() box {
	return box{
		title:  "Flags",
		lines:  []string{m.flags.View()},
		rows:   1,
		active: m.focus == uistate.FocusFlags,
		raw:    true,
	}
}

func (m *Model) fontBox(width int) box {
	font := m.session.Font()
	catalog := m.session.Catalog()
	position := fmt.Sprintf("%d/%d", m.session.Index()+1, catalog.Len())
	line := styles.FontName.Render(font.Name)
	if font.Dir != catalog.DefaultDir {
		line += " " + styles.FontDir.Render(font.Dir)
	}
	if m.fontQuery != "" {
		matches := len(fonts.Search(catalog, m.fontQuery))
		line += " " + styles.FontQuery.Render(fmt.Sprintf("/%s (%d)", m.fontQuery, matches))
	}
	pad := width - 2 - lipgloss.Width(line) - len(position)
	if pad < 1 {
		pad = 1
	}
	line += strings.Repeat(" ", pad) + styles.FontPosition.Render(position)
	return box{
		title:  "Font",
		hint:   "select with up/down arrow",
		lines:  []string{line},
		rows:   1,
		active: m.focus == uistate.FocusFont,
		raw:    true,
	}
}

func (m *Model) outputLines() []string {
	preview := m.session.Preview()
	if preview == "" {
		return nil
	}
	return strings.Split(preview, "\n")
}

// scrollOutput moves the output window by delta rows, clamped so the last
// page stays full.
func (m *Model) scrollOutput(delta int) {
	limit := len(m.outputLines()) - m.outputRows()
	if limit < 0 {
		limit = 0
	}
	m.scroll += delta
	if m.scroll > limit {
		m.scroll = limit
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) outputBox() box {
	rows := m.outputRows()
	lines := m.outputLines()
	offset := m.scroll
	if offset > len(lines) {
		offset = len(lines)
	}
	end := offset + rows
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[offset:end]
	hint := ""
	if len(lines) > rows {
		hint = fmt.Sprintf("%d/%d", end, len(lines))
	}
	return box{
		title: "Output",
		hint:  hint,
		lines: visible,
		rows:  rows,
	}
}

func (m *Model) cmdlineBox(width int) box {
	text := m.session.Display()
	inner := width - 2
	if inner > 1 && lipgloss.Width(text) > inner {
		text = truncate.StringWithTail(text, uint(inner), "…")
	}
	return box{
		title: "Command line",
		lines: []string{styles.Cmdline.Render(text)},
		rows:  1,
		raw:   true,
	}
}

func (m *Model) renderStatus(width int) string {
	switch {
	case m.errMsg != "":
		return styles.Error.Render(truncateText("Error: "+firstLine(m.errMsg), width))
	case m.infoMsg != "":
		return styles.Info.Render(truncateText(m.infoMsg, width))
	case m.loading:
		return styles.Loading.Render(truncateText("rendering…", width))
	default:
		return ""
	}
}

func (m *Model) renderHelp(width int) string {
	m.help.Width = width
	return m.help.View(m.keys)
}

// renderBox draws b as a rounded box exactly width columns wide with the
// title embedded in the top border.
func (m *Model) renderBox(b box, width int) string {
	borderStyle := styles.Border
	if b.active {
		borderStyle = styles.BorderActive
	}
	innerW := width - 2
	if innerW < 1 {
		innerW = 1
	}
	rows := b.rows
	if rows < 1 {
		rows = 1
	}

	titleSeg := " " + b.title + " "
	hintSeg := ""
	if b.hint != "" {
		hintSeg = " (" + b.hint + ") "
	}
	dashes := width - 3 - ansi.StringWidth(titleSeg) - ansi.StringWidth(hintSeg)
	if dashes < 0 {
		hintSeg = ""
		dashes = width - 3 - ansi.StringWidth(titleSeg)
	}
	if dashes < 0 {
		titleSeg = " … "
		dashes = width - 3 - ansi.StringWidth(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	top := borderStyle.Render(tlc+hz) +
		styles.PanelTitle.Render(titleSeg) +
		styles.PanelHint.Render(hintSeg) +
		borderStyle.Render(strings.Repeat(hz, dashes)+trc)
	bottom := borderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	out := make([]string, 0, rows+2)
	out = append(out, top)
	for i := 0; i < rows; i++ {
		var content string
		if i < len(b.lines) {
			content = b.lines[i]
		}
		content = fitLine(content, innerW)
		if !b.raw {
			content = styles.Output.Render(content)
		}
		out = append(out, borderStyle.Render(vt)+content+borderStyle.Render(vt))
	}
	out = append(out, bottom)
	return strings.Join(out, "\n")
}

// fitLine clips or pads an ANSI-styled line to exactly width cells.
func fitLine(line string, width int) string {
	w := ansi.StringWidth(line)
	if w > width {
		line = ansi.Truncate(line, width, "")
		w = ansi.StringWidth(line)
	}
	if w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	events.UI.Resize(resize.Width, resize.Height)

	fieldW := m.viewWidth() - 2 - lipgloss.Width(m.input.Prompt) - 1
	if fieldW < 1 {
		fieldW = 1
	}
	m.input.Width = fieldW
	m.flags.Width = fieldW
	m.syncOutput()

	if m.session.Width() == resize.Width {
		return nil
	}
	m.session.SetWidth(resize.Width)
	return m.requestPreview()
}

func firstLine(text string) string {
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		return text[:idx]
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
