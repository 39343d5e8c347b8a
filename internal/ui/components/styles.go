package components

import "github.com/charmbracelet/lipgloss"

// Background fills with the slot's base colour and switches the text to its
// on-base colour.
//
//	card := NewCard("Plan").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground colours the text only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColor colours an existing border.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border draws a theme border on every side.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderNone {
			return base.UnsetBorderStyle()
		}
		return base.Border(BorderFor(theme, variant))
	}
}

// LeftRule draws a thick coloured bar on the left edge only.
func LeftRule(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.
			Border(theme.Borders.Thick, false, false, false, true).
			BorderForeground(slot(theme.Palette).Base)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(SpacingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := SpacingValue(theme, size)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := SpacingValue(theme, size)
		return base.PaddingTop(v).PaddingBottom(v)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(SpacingValue(theme, size))
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := SpacingValue(theme, size)
		return base.MarginLeft(v).MarginRight(v)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := SpacingValue(theme, size)
		return base.MarginTop(v).MarginBottom(v)
	}
}

// Typography inherits a text preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// SizePadding pads horizontally and vertically by a size token.
func SizePadding(size Size) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		m := SizeFor(theme, size)
		return base.Padding(m.PaddingY, m.PaddingX)
	}
}

// Bold toggles bold text.
func Bold(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(on)
	}
}

// Faint toggles dimmed text.
func Faint(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(on)
	}
}

// CardStyle is the default bundle for surfaces that group content.
func CardStyle() []StyleFunc {
	return []StyleFunc{
		Border(BorderRounded),
		BorderColor(PaletteNeutral),
		PaddingX(SpacingSmall),
	}
}
