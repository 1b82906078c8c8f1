package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the page key bindings.
type KeyMap struct {
	Toggle   key.Binding
	Share    key.Binding
	Privacy  key.Binding
	Terms    key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("m", "enter"),
			key.WithHelp("m", "more/less"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Privacy: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "privacy"),
		),
		Terms: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "terms"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// productHelp implements help.KeyMap for the product page.
type productHelp struct {
	keys      KeyMap
	showShare bool
}

func (h productHelp) ShortHelp() []key.Binding {
	b := []key.Binding{h.keys.Toggle}
	if h.showShare {
		b = append(b, h.keys.Share)
	}
	return append(b, h.keys.Privacy, h.keys.Terms, h.keys.Down, h.keys.Quit)
}

func (h productHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// legalHelp implements help.KeyMap for the legal pages.
type legalHelp struct {
	keys KeyMap
}

func (h legalHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Back, h.keys.Up, h.keys.Down, h.keys.Quit}
}

func (h legalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
