package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button renders an action label. Loading and disabled buttons are drawn
// dimmed; a loading button shows a spinner glyph in place of its left icon.
type Button struct {
	BaseComponent
	label     string
	variant   Variant
	size      Size
	leftIcon  string
	rightIcon string
	disabled  bool
	loading   bool
	focused   bool
	spinner   string
	fullWidth bool
}

const defaultSpinnerGlyph = "◌"

// NewButton creates a medium primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       VariantPrimary,
		size:          SizeMedium,
		spinner:       defaultSpinnerGlyph,
	}
}

func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Button) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := variantStyle(theme, KindButton, b.variant, b.ComputeStyle(theme))
	style = SizePadding(b.size)(style, theme)

	if b.disabled || b.loading {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Bold(true).Underline(true)
	}
	if b.fullWidth && ctx.Width > 0 {
		style = style.Width(ctx.Width).Align(lipgloss.Center)
	}
	return style.Render(b.content())
}

func (b *Button) content() string {
	out := b.label
	left := b.leftIcon
	if b.loading {
		left = b.spinner
	}
	if left != "" {
		out = left + " " + out
	}
	if b.rightIcon != "" {
		out += " " + b.rightIcon
	}
	return out
}

func (b *Button) WithVariant(variant Variant) *Button {
	b.variant = variant
	return b
}

func (b *Button) WithSize(size Size) *Button {
	b.size = size
	return b
}

func (b *Button) WithIcons(left, right string) *Button {
	b.leftIcon, b.rightIcon = left, right
	return b
}

func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

func (b *Button) WithLoading(loading bool) *Button {
	b.loading = loading
	return b
}

// WithSpinnerFrame sets the glyph shown while loading. Animated buttons feed
// the current Loader frame here.
func (b *Button) WithSpinnerFrame(frame string) *Button {
	if frame != "" {
		b.spinner = frame
	}
	return b
}

// WithFocused marks the button as the keyboard target.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithFullWidth stretches the button to the context width.
func (b *Button) WithFullWidth(full bool) *Button {
	b.fullWidth = full
	return b
}

func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

func (b *Button) Label() string {
	return b.label
}

// Interactive reports whether the button accepts presses.
func (b *Button) Interactive() bool {
	return !b.disabled && !b.loading
}

func PrimaryButton(label string) *Button   { return NewButton(label) }
func SecondaryButton(label string) *Button { return NewButton(label).WithVariant(VariantSecondary) }
func DangerButton(label string) *Button    { return NewButton(label).WithVariant(VariantDanger) }
func NeutralButton(label string) *Button   { return NewButton(label).WithVariant(VariantNeutral) }
