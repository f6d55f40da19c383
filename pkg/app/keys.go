package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global bindings. Screen keys are listed for help only;
// the views handle them.
type keyMap struct {
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Move    key.Binding
	Open    key.Binding
	Refresh key.Binding
	Demo    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back:    key.NewBinding(key.WithKeys("esc", "backspace", "alt+left"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Move:    key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/expand")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh vitals")),
		Demo:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "demo charts")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Open},
		{k.Refresh, k.Demo},
		{k.Back, k.Quit, k.Help},
	}
}
