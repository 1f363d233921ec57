package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	QuitOutput key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	NextFont   key.Binding
	PrevFont   key.Binding
	ClearQuery key.Binding
	Rescan     key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Help       key.Binding
	Submit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit, print command"),
		),
		QuitOutput: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "quit, print banner"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		NextFont: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next font"),
		),
		PrevFont: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous font"),
		),
		ClearQuery: key.NewBinding(
			key.WithKeys("esc", "ctrl+u"),
			key.WithHelp("esc", "clear font search"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rescan fonts"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll output up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll output down"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.NextFocus, k.PrevFont, k.NextFont, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.PrevFont, k.NextFont},
		{k.ClearQuery, k.Rescan, k.PageUp, k.PageDown},
		{k.Quit, k.QuitOutput, k.Help},
	}
}
