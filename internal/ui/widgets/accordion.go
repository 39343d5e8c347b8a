package widgets

import (
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// DefaultAccordionWidth is used when neither the options nor the context
// give a width.
const DefaultAccordionWidth = 60

// AccordionItem is one collapsible section. Content is markdown.
type AccordionItem struct {
	ID       string
	Title    string
	Content  string
	Disabled bool
}

// AccordionOptions configures an Accordion.
type AccordionOptions struct {
	Items []AccordionItem
	// Multiple lets several sections stay open at once.
	Multiple bool
	// Open delegates the open section IDs to the host when non-nil.
	Open        *[]string
	DefaultOpen []string
	// PlainText disables markdown rendering.
	PlainText bool
	Width     int
	OnChange  func(open []string)
}

// Accordion expands and collapses sections. In single mode opening a
// section closes the others.
type Accordion struct {
	focusState
	hitbox
	keys     KeyMap
	items    []AccordionItem
	multiple bool
	open     *value.Value[[]string]
	plain    bool
	width    int
	cursor   int
	headers  []int
	rendered map[renderKey]string
}

type renderKey struct {
	id    string
	width int
}

func NewAccordion(opts AccordionOptions) *Accordion {
	defaults := slices.Clone(opts.DefaultOpen)
	if !opts.Multiple && len(defaults) > 1 {
		defaults = defaults[:1]
	}
	return &Accordion{
		keys:     DefaultKeyMap(),
		items:    opts.Items,
		multiple: opts.Multiple,
		open:     value.New(opts.Open, defaults, opts.OnChange),
		plain:    opts.PlainText,
		width:    opts.Width,
		rendered: map[renderKey]string{},
	}
}

// OpenIDs lists the expanded sections.
func (a *Accordion) OpenIDs() []string {
	return slices.Clone(a.open.Get())
}

// IsExpanded reports whether section id is open.
func (a *Accordion) IsExpanded(id string) bool {
	return slices.Contains(a.open.Get(), id)
}

// Sync applies the host's open sections.
func (a *Accordion) Sync(ids []string) {
	a.open.Sync(slices.Clone(ids))
}

// Toggle opens or closes section id. Disabled and unknown sections are
// ignored.
func (a *Accordion) Toggle(id string) bool {
	i := a.indexOf(id)
	if i < 0 || a.items[i].Disabled {
		return false
	}
	a.cursor = i
	current := a.open.Get()
	var next []string
	switch {
	case slices.Contains(current, id):
		next = slices.DeleteFunc(slices.Clone(current), func(s string) bool { return s == id })
	case a.multiple:
		next = append(slices.Clone(current), id)
	default:
		next = []string{id}
	}
	a.open.Request(next)
	return true
}

func (a *Accordion) indexOf(id string) int {
	for i, it := range a.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (a *Accordion) Update(msg tea.Msg) tea.Cmd {
	if len(a.items) == 0 {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !a.focused {
			return nil
		}
		switch {
		case key.Matches(msg, a.keys.Up):
			a.cursor = max(a.cursor-1, 0)
		case key.Matches(msg, a.keys.Down):
			a.cursor = min(a.cursor+1, len(a.items)-1)
		case key.Matches(msg, a.keys.Confirm, a.keys.Toggle):
			a.Toggle(a.items[a.cursor].ID)
		}
	case tea.MouseMsg:
		_, y, inside := a.locate(msg)
		if !isPress(msg) || !inside {
			return nil
		}
		for i, row := range a.headers {
			if row == y {
				a.Toggle(a.items[i].ID)
			}
		}
	}
	return nil
}

// markdown renders content for width, caching the result. Rendering
// failures fall back to the raw text.
func (a *Accordion) markdown(id, content string, width int) string {
	if a.plain {
		return lipgloss.NewStyle().Width(width).Render(content)
	}
	cacheKey := renderKey{id: id, width: width}
	if out, ok := a.rendered[cacheKey]; ok {
		return out
	}
	out := lipgloss.NewStyle().Width(width).Render(content)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if md, err := r.Render(content); err == nil {
			out = strings.Trim(md, "\n")
		}
	}
	a.rendered[cacheKey] = out
	return out
}

func (a *Accordion) View() string {
	return a.ViewWithContext(components.DefaultContext())
}

func (a *Accordion) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	width := a.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = DefaultAccordionWidth
	}
	title := components.TypographyStyle(theme, components.TypographyLabel)

	a.headers = a.headers[:0]
	lines := make([]string, 0, len(a.items)*2)
	row := 0
	for i, it := range a.items {
		expanded := a.IsExpanded(it.ID)
		chevron := "▸"
		if expanded {
			chevron = "▾"
		}
		header := chevron + " " + components.Truncate(it.Title, width-2)
		switch {
		case it.Disabled:
			header = lipgloss.NewStyle().Faint(true).Render(header)
		case a.focused && i == a.cursor:
			header = title.Underline(true).Render(header)
		default:
			header = title.Render(header)
		}
		a.headers = append(a.headers, row)
		lines = append(lines, header)
		row++
		if expanded && it.Content != "" {
			body := lipgloss.NewStyle().PaddingLeft(2).Render(a.markdown(it.ID, it.Content, width-2))
			lines = append(lines, body)
			row += lipgloss.Height(body)
		}
	}
	return a.measure(strings.Join(lines, "\n"))
}
