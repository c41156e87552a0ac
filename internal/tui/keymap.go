package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the application-level bindings; each view adds its own
// navigation on top.
type keyMap struct {
	NextView key.Binding
	Board    key.Binding
	Calendar key.Binding
	Timeline key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Board: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "board"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "calendar"),
		),
		Timeline: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "timeline"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Board, k.Calendar, k.Timeline, k.NextView},
		{k.Reload, k.Help, k.Quit},
	}
}
