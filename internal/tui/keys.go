package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	pgUp    key.Binding
	pgDown  key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	save    key.Binding
	quit    key.Binding
	newItem key.Binding
	edit    key.Binding
	delete  key.Binding
	reload  key.Binding
	export  key.Binding
	copy    key.Binding
	dismiss key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	pgUp:    key.NewBinding(key.WithKeys("pgup")),
	pgDown:  key.NewBinding(key.WithKeys("pgdown")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem: key.NewBinding(key.WithKeys("n")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("d")),
	reload:  key.NewBinding(key.WithKeys("r")),
	export:  key.NewBinding(key.WithKeys("p")),
	copy:    key.NewBinding(key.WithKeys("c")),
	dismiss: key.NewBinding(key.WithKeys("x")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
