package components

import (
	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a box around a vertical stack of children. Card and Panel
// build on it.
type Container struct {
	BaseComponent
	layout *Stack
	width  int
}

// NewContainer creates an unframed container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Container) ViewWithContext(ctx RenderContext) string {
	return c.render(ctx)
}

func (c *Container) render(ctx RenderContext, extra ...StyleFunc) string {
	style := c.ComputeStyle(ctx.Theme)
	for _, fn := range extra {
		style = fn(style, ctx.Theme)
	}

	width := c.width
	if width <= 0 {
		width = ctx.Width
	}
	inner := ctx
	if width > 0 {
		frame := style.GetHorizontalFrameSize()
		inner = ctx.WithWidth(width - frame)
		style = style.Width(width - style.GetHorizontalMargins() - style.GetHorizontalBorderSize())
	}
	return style.Render(c.layout.ViewWithContext(inner))
}

// WithWidth fixes the outer width including border and padding.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// Card groups related content under an optional title and description.
type Card struct {
	*Container
	title       string
	description string
	body        []ui.Renderable
	footer      ui.Renderable
	selected    bool
}

// NewCard creates a card with the default card frame.
func NewCard(title string, body ...ui.Renderable) *Card {
	container := NewContainer()
	container.SetAppliers(CardStyle()...)
	return &Card{Container: container, title: title, body: body}
}

func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Card) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, len(c.body)+4)
	if c.title != "" {
		children = append(children, NewText(c.title).WithAppliers(Typography(TypographyTitle)))
	}
	if c.description != "" {
		children = append(children, CaptionText(c.description))
	}
	children = append(children, c.body...)
	if c.footer != nil {
		children = append(children, NewDivider(), c.footer)
	}
	c.layout = VStack(children...).WithGap(c.layout.gap)

	if c.selected {
		return c.render(ctx, BorderColor(PalettePrimary))
	}
	return c.render(ctx)
}

func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithSelected highlights the card frame.
func (c *Card) WithSelected(selected bool) *Card {
	c.selected = selected
	return c
}

func (c *Card) Title() string {
	return c.title
}

// Panel is a framed section with a header bar and an optional footer.
type Panel struct {
	*Container
	header ui.Renderable
	body   []ui.Renderable
	footer ui.Renderable
}

// NewPanel creates a panel with a plain border.
func NewPanel(title string, body ...ui.Renderable) *Panel {
	container := NewContainer()
	container.SetAppliers(Border(BorderNormal), BorderColor(PaletteNeutral), PaddingX(SpacingExtraSmall))
	p := &Panel{Container: container, body: body}
	if title != "" {
		p.header = NewText(title).WithAppliers(Typography(TypographyLabel))
	}
	return p
}

func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

func (p *Panel) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, len(p.body)+4)
	if p.header != nil {
		children = append(children, p.header, NewDivider())
	}
	children = append(children, p.body...)
	if p.footer != nil {
		children = append(children, NewDivider(), p.footer)
	}
	p.layout = VStack(children...).WithGap(p.layout.gap)
	return p.render(ctx)
}

// WithHeader replaces the title with a custom header.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	return p
}

func (p *Panel) WithFooter(footer ui.Renderable) *Panel {
	p.footer = footer
	return p
}
