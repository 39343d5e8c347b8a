package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/loom/internal/placement"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
)

// launcher is a focusable button that runs an action on enter or click.
type launcher struct {
	label   string
	variant components.Variant
	press   key.Binding
	action  func() tea.Cmd
	focused bool
	bounds  placement.Rect
	placed  bool
}

func newLauncher(label string, variant components.Variant, action func() tea.Cmd) *launcher {
	return &launcher{
		label:   label,
		variant: variant,
		press:   key.NewBinding(key.WithKeys("enter", " ")),
		action:  action,
	}
}

func (l *launcher) Focus() tea.Cmd {
	l.focused = true
	return nil
}

func (l *launcher) Blur() {
	l.focused = false
}

func (l *launcher) Focused() bool {
	return l.focused
}

func (l *launcher) SetOrigin(x, y int) {
	l.bounds.Left, l.bounds.Top = float64(x), float64(y)
	l.placed = true
}

func (l *launcher) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if l.focused && key.Matches(msg, l.press) {
			return l.action()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || !l.placed {
			return nil
		}
		if l.bounds.Contains(float64(msg.X), float64(msg.Y)) {
			return l.action()
		}
	}
	return nil
}

func (l *launcher) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

func (l *launcher) ViewWithContext(ctx components.RenderContext) string {
	out := components.NewButton(l.label).
		WithVariant(l.variant).
		WithSize(components.SizeSmall).
		WithFocused(l.focused).
		ViewWithContext(ctx)
	l.bounds.Width = float64(lipgloss.Width(out))
	l.bounds.Height = float64(lipgloss.Height(out))
	return out
}
