package widgets

import (
	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTabLabelWidth bounds tab labels.
const DefaultTabLabelWidth = 20

// TabItem is one tab. Content is shown below the tab row while the tab is
// active.
type TabItem struct {
	Value    string
	Label    string
	Disabled bool
	Content  ui.Renderable
}

// TabsOptions configures Tabs.
type TabsOptions struct {
	Items []TabItem
	// Value delegates the active tab to the host when non-nil.
	Value *string
	// DefaultValue falls back to the first enabled tab.
	DefaultValue  string
	MaxLabelWidth int
	OnChange      func(value string)
}

// Tabs switches between labelled panes. Disabled tabs are drawn but can
// never become active.
type Tabs struct {
	focusState
	hitbox
	keys       KeyMap
	items      []TabItem
	active     *value.Value[string]
	labelWidth int
	spans      []span
}

func NewTabs(opts TabsOptions) *Tabs {
	t := &Tabs{
		keys:       DefaultKeyMap(),
		items:      opts.Items,
		labelWidth: opts.MaxLabelWidth,
	}
	if t.labelWidth <= 0 {
		t.labelWidth = DefaultTabLabelWidth
	}
	fallback := opts.DefaultValue
	if fallback == "" {
		for _, it := range opts.Items {
			if !it.Disabled {
				fallback = it.Value
				break
			}
		}
	}
	t.active = value.New(opts.Value, fallback, opts.OnChange)
	return t
}

func (t *Tabs) Items() []TabItem {
	return t.items
}

// Value is the active tab.
func (t *Tabs) Value() string {
	return t.active.Get()
}

// Sync applies the host's active tab.
func (t *Tabs) Sync(v string) {
	t.active.Sync(v)
}

func (t *Tabs) indexOf(v string) int {
	for i, it := range t.items {
		if it.Value == v {
			return i
		}
	}
	return -1
}

// Select requests the tab with value v and reports whether it was
// accepted. Unknown and disabled tabs are ignored.
func (t *Tabs) Select(v string) bool {
	i := t.indexOf(v)
	if i < 0 || t.items[i].Disabled {
		return false
	}
	if v != t.active.Get() {
		t.active.Request(v)
	}
	return true
}

func (t *Tabs) move(delta int) {
	n := len(t.items)
	from := max(t.indexOf(t.active.Get()), 0)
	for step := 1; step < n; step++ {
		i := ((from+delta*step)%n + n) % n
		if t.Select(t.items[i].Value) {
			return
		}
	}
}

func (t *Tabs) Update(msg tea.Msg) tea.Cmd {
	if len(t.items) == 0 {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !t.focused {
			return nil
		}
		switch {
		case key.Matches(msg, t.keys.Prev):
			t.move(-1)
		case key.Matches(msg, t.keys.Next):
			t.move(1)
		}
	case tea.MouseMsg:
		x, y, inside := t.locate(msg)
		if !isPress(msg) || !inside || y != 0 {
			return nil
		}
		if i := spanAt(t.spans, x); i >= 0 {
			t.Select(t.items[i].Value)
		}
	}
	return nil
}

func (t *Tabs) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t *Tabs) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	active := components.Foreground(components.PalettePrimary)(lipgloss.NewStyle(), theme).Bold(true).Underline(true)
	muted := lipgloss.NewStyle().Faint(true)

	tokens := make([]string, len(t.items))
	var content ui.Renderable
	for i, it := range t.items {
		label := it.Label
		if label == "" {
			label = it.Value
		}
		label = components.Truncate(label, t.labelWidth)
		switch {
		case it.Value == t.active.Get():
			label = active.Render(label)
			content = it.Content
		case it.Disabled:
			label = muted.Render(label)
		}
		tokens[i] = " " + label + " "
	}
	row, spans := layoutSpans(tokens, "│")
	t.spans = spans
	if t.focused {
		row = lipgloss.NewStyle().Bold(true).Render("›") + row
		for i := range t.spans {
			t.spans[i].from++
			t.spans[i].to++
		}
	}

	rule := components.NewDivider().WithLength(lipgloss.Width(row)).ViewWithContext(ctx)
	out := row + "\n" + rule
	if body := components.Render(content, ctx); body != "" {
		out += "\n" + body
	}
	return t.measure(out)
}
