package components

import (
	"github.com/charmbracelet/lipgloss"
)

func variantStyle(theme Theme, kind Kind, variant Variant, base lipgloss.Style) lipgloss.Style {
	if strategy := theme.Variants.Get(kind, variant); strategy != nil {
		return strategy.Apply(base, theme)
	}
	return base
}

// Badge is a short status label.
type Badge struct {
	BaseComponent
	text    string
	variant Variant
}

// NewBadge creates a neutral badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text, variant: VariantNeutral}
}

func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := variantStyle(ctx.Theme, KindBadge, b.variant, b.ComputeStyle(ctx.Theme))
	return style.Render(b.text)
}

func (b *Badge) WithVariant(variant Variant) *Badge {
	b.variant = variant
	return b
}

func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

func (b *Badge) Text() string {
	return b.text
}

func (b *Badge) Variant() Variant {
	return b.variant
}

func PrimaryBadge(text string) *Badge { return NewBadge(text).WithVariant(VariantPrimary) }
func SuccessBadge(text string) *Badge { return NewBadge(text).WithVariant(VariantSuccess) }
func WarningBadge(text string) *Badge { return NewBadge(text).WithVariant(VariantWarning) }
func DangerBadge(text string) *Badge  { return NewBadge(text).WithVariant(VariantDanger) }
func InfoBadge(text string) *Badge    { return NewBadge(text).WithVariant(VariantInfo) }

// DefaultChipWidth is the widest a chip label renders before truncation.
const DefaultChipWidth = 24

// Chip is a compact label that can carry an icon, be selected or offer a
// remove affordance.
type Chip struct {
	BaseComponent
	label     string
	icon      string
	variant   Variant
	selected  bool
	removable bool
	disabled  bool
	maxWidth  int
}

// NewChip creates a primary chip.
func NewChip(label string) *Chip {
	return &Chip{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       VariantPrimary,
		maxWidth:      DefaultChipWidth,
	}
}

func (c *Chip) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Chip) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := variantStyle(theme, KindChip, c.variant, c.ComputeStyle(theme))
	if c.selected {
		style = Background(c.variant.Slot())(style, theme)
	}
	if c.disabled {
		style = style.Faint(true)
	}

	content := Truncate(c.label, c.maxWidth)
	if c.icon != "" {
		content = c.icon + " " + content
	}
	if c.removable {
		content += " ×"
	}
	return style.Render(content)
}

func (c *Chip) WithVariant(variant Variant) *Chip {
	c.variant = variant
	return c
}

func (c *Chip) WithIcon(icon string) *Chip {
	c.icon = icon
	return c
}

func (c *Chip) WithSelected(selected bool) *Chip {
	c.selected = selected
	return c
}

func (c *Chip) WithRemovable(removable bool) *Chip {
	c.removable = removable
	return c
}

func (c *Chip) WithDisabled(disabled bool) *Chip {
	c.disabled = disabled
	return c
}

// WithMaxWidth sets the label truncation width in cells.
func (c *Chip) WithMaxWidth(width int) *Chip {
	if width > 0 {
		c.maxWidth = width
	}
	return c
}

func (c *Chip) Label() string {
	return c.label
}

func (c *Chip) Selected() bool {
	return c.selected
}
