package components

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// EmptyState fills a region that has no content yet.
type EmptyState struct {
	BaseComponent
	icon        string
	title       string
	description string
	action      ui.Renderable
}

// NewEmptyState creates an empty state with a title.
func NewEmptyState(title string) *EmptyState {
	return &EmptyState{BaseComponent: NewBaseComponent(), icon: "∅", title: title}
}

func (e *EmptyState) View() string {
	return e.ViewWithContext(DefaultContext())
}

func (e *EmptyState) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	lines := make([]string, 0, 4)
	if e.icon != "" {
		lines = append(lines, TypographyStyle(theme, TypographyCaption).Render(e.icon))
	}
	lines = append(lines, TypographyStyle(theme, TypographyLabel).Render(e.title))
	if e.description != "" {
		lines = append(lines, TypographyStyle(theme, TypographyCaption).Render(e.description))
	}
	if e.action != nil {
		lines = append(lines, "", Render(e.action, ctx))
	}

	style := e.ComputeStyle(theme).Align(lipgloss.Center)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (e *EmptyState) WithIcon(icon string) *EmptyState {
	e.icon = icon
	return e
}

func (e *EmptyState) WithDescription(description string) *EmptyState {
	e.description = description
	return e
}

// WithAction adds a call to action, usually a Button.
func (e *EmptyState) WithAction(action ui.Renderable) *EmptyState {
	e.action = action
	return e
}

// CarouselIndicator draws one dot per slide with the active one filled.
type CarouselIndicator struct {
	count  int
	active int
}

// NewCarouselIndicator creates an indicator for count slides.
func NewCarouselIndicator(count, active int) *CarouselIndicator {
	return &CarouselIndicator{count: max(count, 0), active: active}
}

func (c *CarouselIndicator) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *CarouselIndicator) ViewWithContext(ctx RenderContext) string {
	if c.count == 0 {
		return ""
	}
	on := Foreground(PalettePrimary)(lipgloss.NewStyle(), ctx.Theme)
	off := Foreground(PaletteNeutral)(lipgloss.NewStyle(), ctx.Theme)
	dots := make([]string, c.count)
	for i := range dots {
		if i == c.active {
			dots[i] = on.Render("●")
		} else {
			dots[i] = off.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// DotAt maps a column offset within the rendered indicator to a slide index,
// or -1 when the column falls between dots.
func (c *CarouselIndicator) DotAt(column int) int {
	if column < 0 || column%2 != 0 {
		return -1
	}
	index := column / 2
	if index >= c.count {
		return -1
	}
	return index
}
