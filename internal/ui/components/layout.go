package components

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction is the main axis of a Stack or Divider.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis with a fixed gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack stacks children top to bottom.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack lays children out left to right.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children)*2)
	for _, child := range s.children {
		view := Render(child, ctx)
		if view == "" {
			continue
		}
		if len(views) > 0 && s.gap > 0 {
			views = append(views, s.gapView())
		}
		views = append(views, view)
	}
	if len(views) == 0 {
		return ""
	}

	var joined string
	if s.direction == DirectionHorizontal {
		joined = lipgloss.JoinHorizontal(s.align.Position(), views...)
	} else {
		joined = lipgloss.JoinVertical(s.align.Position(), views...)
	}
	return s.ComputeStyle(ctx.Theme).Render(joined)
}

func (s *Stack) gapView() string {
	if s.direction == DirectionHorizontal {
		return strings.Repeat(" ", s.gap)
	}
	return strings.Repeat("\n", s.gap-1)
}

func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the blank cells (horizontal) or lines (vertical) between
// children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// Spacer renders blank space of a fixed size.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer of width columns and height lines.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: max(width, 0), height: max(height, 0)}
}

// HSpace is a one-line spacer of n columns.
func HSpace(n int) *Spacer {
	return NewSpacer(n, 1)
}

// VSpace is a spacer of n empty lines.
func VSpace(n int) *Spacer {
	return NewSpacer(0, n)
}

func (s *Spacer) View() string {
	if s.height == 0 {
		return ""
	}
	line := strings.Repeat(" ", s.width)
	lines := make([]string, s.height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Divider draws a separator line.
type Divider struct {
	BaseComponent
	char      string
	length    int
	label     string
	direction Direction
}

const defaultDividerLength = 40

// NewDivider creates a horizontal divider that fills the context width.
func NewDivider() *Divider {
	d := &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
	}
	d.SetAppliers(Foreground(PaletteNeutral))
	return d
}

// VerticalDivider creates a vertical divider.
func VerticalDivider(length int) *Divider {
	return NewDivider().WithChar("│").WithLength(length).WithDirection(DirectionVertical)
}

func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.length
	if length <= 0 {
		length = ctx.Width
	}
	if length <= 0 {
		length = defaultDividerLength
	}

	style := d.ComputeStyle(ctx.Theme)
	if d.direction == DirectionVertical {
		return style.Render(strings.TrimSuffix(strings.Repeat(d.char+"\n", length), "\n"))
	}

	if d.label == "" {
		return style.Render(strings.Repeat(d.char, length))
	}
	label := " " + d.label + " "
	rest := length - lipgloss.Width(label)
	if rest < 2 {
		return style.Render(label)
	}
	left := rest / 2
	return style.Render(strings.Repeat(d.char, left) + label + strings.Repeat(d.char, rest-left))
}

func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithLength fixes the divider length. Zero fills the context width.
func (d *Divider) WithLength(length int) *Divider {
	d.length = length
	return d
}

// WithLabel centres a label inside a horizontal divider.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}
