package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the browser. It is shared between
// the root model and the navigation model so both match against the
// same bindings.
type KeyMap struct {
	// Navigation
	Up         key.Binding
	Down       key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding
	Open       key.Binding // Open the highlighted entry
	GoBack     key.Binding // Move to the parent directory

	// General
	Refresh   key.Binding
	NextPane  key.Binding
	ClosePane key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		GotoTop:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		GotoBottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Open:       key.NewBinding(key.WithKeys("right", "l", "enter"), key.WithHelp("→/l/Enter", "open")),
		GoBack:     key.NewBinding(key.WithKeys("left", "h", "backspace"), key.WithHelp("←/h", "parent")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		NextPane:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "switch pane")),
		ClosePane:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "close preview")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
