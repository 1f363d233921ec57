package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tuilet/internal/fonts"
	uistate "github.com/atomicstack/tuilet/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTabCyclesFocus(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Press(tea.KeyTab)
	if got := h.Model().Focus(); got != uistate.FocusFont {
		t.Fatalf("expected font focus after tab, got %s", got)
	}
	h.Press(tea.KeyTab)
	if got := h.Model().Focus(); got != uistate.FocusFlags {
		t.Fatalf("expected flags focus after second tab, got %s", got)
	}
	h.Press(tea.KeyTab)
	if got := h.Model().Focus(); got != uistate.FocusInput {
		t.Fatalf("expected focus to wrap to input, got %s", got)
	}
	h.Press(tea.KeyShiftTab)
	if got := h.Model().Focus(); got != uistate.FocusFlags {
		t.Fatalf("expected shift+tab to wrap to flags, got %s", got)
	}
}

func TestArrowsCycleFontsOnlyWhenFontFocused(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Press(tea.KeyDown)
	if got := h.Model().Session().Font().Name; got != "big" {
		t.Fatalf("down in the input field changed the font to %s", got)
	}

	h.Press(tea.KeyTab)
	h.Press(tea.KeyDown)
	if got := h.Model().Session().Font().Name; got != "cosmic" {
		t.Fatalf("expected cosmic after down, got %s", got)
	}
	if got, want := h.Model().Session().Display(), `toilet -f "cosmic" -d "/home/me/fonts" ""`; got != want {
		t.Fatalf("display = %q, want %q", got, want)
	}
	h.Press(tea.KeyUp)
	h.Press(tea.KeyUp)
	if got := h.Model().Session().Font().Name; got != "mono9" {
		t.Fatalf("expected up to wrap to mono9, got %s", got)
	}
}

func TestTypingInFontFieldJumpsToMatch(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)
	h.Press(tea.KeyTab)

	h.Type("mo")
	if got := h.Model().Session().Font().Name; got != "mono9" {
		t.Fatalf("expected mono9, got %s", got)
	}
	if h.Model().Session().Input() != "" {
		t.Fatalf("font search leaked into the input text")
	}
	if !strings.Contains(h.View(), "/mo (1)") {
		t.Fatalf("expected the search and its match count in the font box:\n%s", h.View())
	}

	h.Type("zzz")
	if got := h.Model().Session().Font().Name; got != "mono9" {
		t.Fatalf("unmatched query moved the selection to %s", got)
	}
	if !strings.Contains(h.Model().infoMsg, "no font matches") {
		t.Fatalf("expected a no-match notice, got %q", h.Model().infoMsg)
	}

	h.Press(tea.KeyEsc)
	if h.Model().fontQuery != "" || h.Model().infoMsg != "" {
		t.Fatalf("expected esc to clear the search")
	}
}

func TestFontQueryBackspace(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)
	h.Press(tea.KeyTab)
	h.Type("cx")
	h.Press(tea.KeyBackspace)
	if got := h.Model().fontQuery; got != "c" {
		t.Fatalf("expected query c, got %q", got)
	}
	if got := h.Model().Session().Font().Name; got != "cosmic" {
		t.Fatalf("expected cosmic, got %s", got)
	}
}

func TestInputAndFlagsFeedTheCommandLine(t *testing.T) {
	m, exec := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Type(`say "hi"`)
	h.Press(tea.KeyTab)
	h.Press(tea.KeyTab)
	h.Type("--gay")

	want := `toilet --gay -f "big" "say \"hi\""`
	if got := h.Model().Session().Display(); got != want {
		t.Fatalf("display = %q, want %q", got, want)
	}
	if got := exec.last(); got != want {
		t.Fatalf("last execution = %q, want %q", got, want)
	}
}

func TestEnterIsIgnored(t *testing.T) {
	m, exec := newTestModel(t, Options{})
	h := NewHarness(m)
	h.Type("x")
	calls := len(exec.calls)
	h.Press(tea.KeyEnter)
	if h.Quit() {
		t.Fatalf("enter should not quit")
	}
	if h.Model().Session().Input() != "x" {
		t.Fatalf("enter changed the input to %q", h.Model().Session().Input())
	}
	if len(exec.calls) != calls {
		t.Fatalf("enter triggered a new execution")
	}
}

func TestQuitPrintsDisplayLine(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 42, Height: 30})
	h.Type("hi")
	h.Press(tea.KeyCtrlC)

	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
	if h.Model().Exit() != ExitCmdline {
		t.Fatalf("expected cmdline exit, got %v", h.Model().Exit())
	}
	if got, want := h.Model().ExitText(), `toilet -f "big" "hi"`; got != want {
		t.Fatalf("exit text = %q, want %q", got, want)
	}
}

func TestQuitOutputPrintsBanner(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)
	h.Type("hi")
	h.Press(tea.KeyCtrlO)

	if h.Model().Exit() != ExitOutput {
		t.Fatalf("expected output exit, got %v", h.Model().Exit())
	}
	if got, want := h.Model().ExitText(), "out:toilet -f \"big\" \"hi\"\n"; got != want {
		t.Fatalf("exit text = %q, want %q", got, want)
	}
}

func TestRescanKeepsSelection(t *testing.T) {
	rescanned := testCatalog()
	rescanned.Fonts = append([]fonts.Font{{Name: "alpha", Dir: "/usr/share/figlet"}}, rescanned.Fonts...)
	m, _ := newTestModel(t, Options{Rescan: func() fonts.Catalog { return rescanned }})
	h := NewHarness(m)
	h.Press(tea.KeyTab)
	h.Press(tea.KeyDown)

	h.Press(tea.KeyCtrlR)
	if got := h.Model().Session().Catalog().Len(); got != 4 {
		t.Fatalf("expected 4 fonts after rescan, got %d", got)
	}
	if got := h.Model().Session().Font().Name; got != "cosmic" {
		t.Fatalf("rescan lost the selection, got %s", got)
	}
	if got := h.Model().infoMsg; got != "4 fonts" {
		t.Fatalf("unexpected info %q", got)
	}
}

func TestRescanRejectsEmptyCatalog(t *testing.T) {
	m, _ := newTestModel(t, Options{Rescan: func() fonts.Catalog {
		return fonts.Catalog{DefaultDir: "/gone"}
	}})
	h := NewHarness(m)
	h.Press(tea.KeyCtrlR)
	if got := h.Model().Session().Catalog().Len(); got != 3 {
		t.Fatalf("expected the old catalog to survive, got %d fonts", got)
	}
	if !strings.Contains(h.Model().errMsg, "no fonts found") {
		t.Fatalf("expected an empty catalog error, got %q", h.Model().errMsg)
	}
}
