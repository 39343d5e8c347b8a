package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultFABIcon = "+"

// FloatingActionButton is a compact icon button meant to hover over the
// bottom-right corner of a view. Large is the default size.
type FloatingActionButton struct {
	BaseComponent
	icon    string
	variant Variant
	size    Size
	focused bool
}

func NewFloatingActionButton() *FloatingActionButton {
	return &FloatingActionButton{
		BaseComponent: NewBaseComponent(),
		icon:          defaultFABIcon,
		variant:       VariantPrimary,
		size:          SizeLarge,
	}
}

func (f *FloatingActionButton) WithIcon(icon string) *FloatingActionButton {
	if icon != "" {
		f.icon = icon
	}
	return f
}

// WithVariant accepts primary and danger; anything else is primary.
func (f *FloatingActionButton) WithVariant(variant Variant) *FloatingActionButton {
	if variant != VariantDanger {
		variant = VariantPrimary
	}
	f.variant = variant
	return f
}

func (f *FloatingActionButton) WithSize(size Size) *FloatingActionButton {
	f.size = size
	return f
}

func (f *FloatingActionButton) WithFocused(focused bool) *FloatingActionButton {
	f.focused = focused
	return f
}

func (f *FloatingActionButton) View() string {
	return f.ViewWithContext(DefaultContext())
}

func (f *FloatingActionButton) ViewWithContext(ctx RenderContext) string {
	style := variantStyle(ctx.Theme, KindButton, f.variant, f.ComputeStyle(ctx.Theme)).Bold(true)
	switch f.size {
	case SizeSmall:
		style = style.Padding(0, 1)
	case SizeLarge:
		style = style.Padding(1, 3)
	default:
		style = style.Padding(0, 2)
	}
	if f.focused {
		style = style.Underline(true)
	}
	return style.Render(f.icon)
}

// Float draws the button over the bottom-right corner of base, which is
// treated as a width by height area. margin cells are kept free on both
// edges.
func (f *FloatingActionButton) Float(base string, width, height, margin int, ctx RenderContext) string {
	button := f.ViewWithContext(ctx)
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	x := width - lipgloss.Width(button) - margin
	y := max(height, 1) - lipgloss.Height(button) - margin
	return Composite(strings.Join(lines, "\n"), button, x, y)
}

// StickyButton is a full-width call to action pinned under scrolling
// content.
type StickyButton struct {
	button *Button
	sticky bool
}

// NewStickyButton creates a sticky medium primary button.
func NewStickyButton(label string) *StickyButton {
	return &StickyButton{button: NewButton(label).WithFullWidth(true), sticky: true}
}

// Button exposes the wrapped button for styling.
func (s *StickyButton) Button() *Button {
	return s.button
}

// WithSticky turns pinning off, leaving the button right after the
// content.
func (s *StickyButton) WithSticky(sticky bool) *StickyButton {
	s.sticky = sticky
	return s
}

func (s *StickyButton) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *StickyButton) ViewWithContext(ctx RenderContext) string {
	return s.button.ViewWithContext(ctx)
}

// Pin lays content out in an area of height rows with the button at the
// bottom. Sticky buttons clip the content so the button stays visible;
// height zero or a non-sticky button simply stacks the two.
func (s *StickyButton) Pin(content string, height int, ctx RenderContext) string {
	button := s.ViewWithContext(ctx)
	if !s.sticky || height <= 0 {
		if content == "" {
			return button
		}
		return content + "\n" + button
	}
	room := max(height-lipgloss.Height(button), 0)
	lines := []string{}
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > room {
		lines = lines[:room]
	}
	for len(lines) < room {
		lines = append(lines, "")
	}
	return strings.Join(append(lines, button), "\n")
}
