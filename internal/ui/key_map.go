package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	open    key.Binding
	numbers key.Binding
	copy    key.Binding
	reset   key.Binding
	aliases key.Binding
	back    key.Binding
	help    key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		open:    key.NewBinding(key.WithKeys("enter", "l", "right"), key.WithHelp("enter", "open")),
		numbers: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle numbers")),
		copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		aliases: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "column names")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.numbers, k.copy, k.reset, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.open},
		{k.numbers, k.copy, k.reset},
		{k.aliases, k.back, k.help, k.quit},
	}
}
