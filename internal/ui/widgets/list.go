package widgets

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListItem is one row of a List.
type ListItem struct {
	Title       string
	Description string
	Disabled    bool
}

// ListOptions configures a List.
type ListOptions struct {
	Items []ListItem
	// Selected delegates the selected index to the host when non-nil.
	// -1 means no selection.
	Selected        *int
	DefaultSelected int
	Divided         bool
	// MaxWidth truncates titles and descriptions. Zero uses the context
	// width.
	MaxWidth int
	OnSelect func(index int)
}

// List shows items one per block with an optional divider between them.
type List struct {
	focusState
	hitbox
	keys     KeyMap
	items    []ListItem
	selected *value.Value[int]
	divided  bool
	maxWidth int
	cursor   int
	starts   []int
}

func NewList(opts ListOptions) *List {
	l := &List{
		keys:     DefaultKeyMap(),
		items:    opts.Items,
		selected: value.New(opts.Selected, opts.DefaultSelected, opts.OnSelect),
		divided:  opts.Divided,
		maxWidth: opts.MaxWidth,
	}
	l.cursor = max(l.selected.Get(), 0)
	return l
}

func (l *List) Items() []ListItem {
	return l.items
}

// SetItems replaces the items and clamps the cursor.
func (l *List) SetItems(items []ListItem) {
	l.items = items
	l.cursor = clampInt(l.cursor, 0, max(len(items)-1, 0))
}

// Selected is the selected index or -1.
func (l *List) Selected() int {
	if s := l.selected.Get(); s >= 0 && s < len(l.items) {
		return s
	}
	return -1
}

func (l *List) Cursor() int {
	return l.cursor
}

// Sync applies the host's selection.
func (l *List) Sync(index int) {
	l.selected.Sync(index)
}

// Select requests item i. Disabled items are ignored.
func (l *List) Select(i int) bool {
	if i < 0 || i >= len(l.items) || l.items[i].Disabled {
		return false
	}
	l.cursor = i
	if i != l.selected.Get() {
		l.selected.Request(i)
	}
	return true
}

func (l *List) Update(msg tea.Msg) tea.Cmd {
	if len(l.items) == 0 {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !l.focused {
			return nil
		}
		switch {
		case key.Matches(msg, l.keys.Up):
			l.cursor = max(l.cursor-1, 0)
		case key.Matches(msg, l.keys.Down):
			l.cursor = min(l.cursor+1, len(l.items)-1)
		case key.Matches(msg, l.keys.First):
			l.cursor = 0
		case key.Matches(msg, l.keys.Last):
			l.cursor = len(l.items) - 1
		case key.Matches(msg, l.keys.Confirm, l.keys.Toggle):
			l.Select(l.cursor)
		}
	case tea.MouseMsg:
		_, y, inside := l.locate(msg)
		if !isPress(msg) || !inside {
			return nil
		}
		l.Select(l.itemAt(y))
	}
	return nil
}

func (l *List) itemAt(row int) int {
	for i := len(l.starts) - 1; i >= 0; i-- {
		if row >= l.starts[i] {
			return i
		}
		if l.divided && row == l.starts[i]-1 {
			return -1
		}
	}
	return -1
}

func (l *List) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

func (l *List) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	width := l.maxWidth
	if width <= 0 {
		width = ctx.Width
	}
	fit := func(s string) string {
		if width <= 2 {
			return s
		}
		return components.Truncate(s, width-2)
	}

	chosen := components.Foreground(components.PalettePrimary)(lipgloss.NewStyle(), theme).Bold(true)
	caption := components.TypographyStyle(theme, components.TypographyCaption)
	divider := ""
	if l.divided {
		length := width
		if length <= 0 {
			length = 0
			for _, it := range l.items {
				length = max(length, lipgloss.Width(it.Title)+2, lipgloss.Width(it.Description)+2)
			}
		}
		divider = components.NewDivider().WithLength(length).ViewWithContext(ctx)
	}

	l.starts = l.starts[:0]
	var b strings.Builder
	row := 0
	for i, it := range l.items {
		if i > 0 && divider != "" {
			b.WriteString("\n" + divider)
			row++
		}
		if i > 0 {
			b.WriteString("\n")
		}
		l.starts = append(l.starts, row)

		marker := "  "
		if l.focused && i == l.cursor {
			marker = "› "
		}
		title := fit(it.Title)
		switch {
		case it.Disabled:
			title = lipgloss.NewStyle().Faint(true).Render(title)
		case i == l.Selected():
			title = chosen.Render(title)
		}
		b.WriteString(marker + title)
		row++
		if it.Description != "" {
			b.WriteString("\n  " + caption.Render(fit(it.Description)))
			row++
		}
	}
	return l.measure(b.String())
}
