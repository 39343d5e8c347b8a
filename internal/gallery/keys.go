package gallery

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/loom/internal/ui/widgets"
)

// keyMap holds the gallery's own bindings. Everything else is routed to the
// focused widget.
type keyMap struct {
	Quit      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Theme     key.Binding
	Tour      key.Binding
	Help      key.Binding

	widgets widgets.KeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous widget")),
		NextPage:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous page")),
		Theme:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Tour:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "tour")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		widgets:   widgets.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.NextPage, k.Theme, k.Tour, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.NextPage, k.PrevPage},
		{k.Theme, k.Tour, k.Help, k.Quit},
	}
	return append(groups, k.widgets.FullHelp()...)
}
