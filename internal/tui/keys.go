package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/viewkit/internal/components"
)

type keyMap struct {
	Quit key.Binding
	Help key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	}
}

// helpKeys combines the shell bindings with whatever the account view
// currently accepts.
type helpKeys struct {
	shell   keyMap
	account *components.Account
}

func (h helpKeys) ShortHelp() []key.Binding {
	var bindings []key.Binding
	if h.account != nil {
		bindings = append(bindings, h.account.ShortHelp()...)
	}
	return append(bindings, h.shell.Help, h.shell.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{{h.shell.Help, h.shell.Quit}}
	if h.account != nil {
		groups = append([][]key.Binding{h.account.ShortHelp()}, groups...)
	}
	return groups
}
