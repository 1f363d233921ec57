package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title         *lipgloss.Style
	Border        *lipgloss.Style
	BorderActive  *lipgloss.Style
	PanelTitle    *lipgloss.Style
	PanelHint     *lipgloss.Style
	Input         *lipgloss.Style
	Placeholder   *lipgloss.Style
	Prompt        *lipgloss.Style
	Cursor        *lipgloss.Style
	FontName      *lipgloss.Style
	FontDir       *lipgloss.Style
	FontPosition  *lipgloss.Style
	FontQuery     *lipgloss.Style
	Cmdline       *lipgloss.Style
	Output        *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Loading       *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	BorderActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PanelHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	FontName: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	FontDir: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FontPosition: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	FontQuery: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Cmdline: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Output: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
