package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a group of colours that work together:
//
//   - Base: the fill or brand colour
//   - OnBase: text drawn on top of Base
//   - Muted: a quieter accent of Base
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Variant is the semantic intent of a component.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantSuccess
	VariantWarning
	VariantDanger
	VariantInfo
	VariantNeutral
)

var variantNames = map[Variant]string{
	VariantPrimary:   "primary",
	VariantSecondary: "secondary",
	VariantSuccess:   "success",
	VariantWarning:   "warning",
	VariantDanger:    "danger",
	VariantInfo:      "info",
	VariantNeutral:   "neutral",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Slot returns the palette slot backing the variant.
func (v Variant) Slot() PaletteSlot {
	switch v {
	case VariantSecondary:
		return PaletteSecondary
	case VariantSuccess:
		return PaletteSuccess
	case VariantWarning:
		return PaletteWarning
	case VariantDanger:
		return PaletteDanger
	case VariantInfo:
		return PaletteInfo
	case VariantNeutral:
		return PaletteNeutral
	default:
		return PalettePrimary
	}
}

// Icon is the glyph drawn before variant-coloured messages.
func (v Variant) Icon() string {
	switch v {
	case VariantSuccess:
		return "✓"
	case VariantWarning:
		return "!"
	case VariantDanger:
		return "✗"
	case VariantInfo:
		return "i"
	default:
		return "•"
	}
}

// Size is the size token shared by sized components.
type Size int

// The zero Size is medium.
const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

const sizeCount = int(SizeLarge) + 1

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "sm"
	case SizeLarge:
		return "lg"
	default:
		return "md"
	}
}

// ParseSize accepts sm, md and lg.
func ParseSize(raw string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sm", "small":
		return SizeSmall, nil
	case "md", "medium", "":
		return SizeMedium, nil
	case "lg", "large":
		return SizeLarge, nil
	default:
		return SizeMedium, fmt.Errorf("unknown size %q", raw)
	}
}

// SizeMetrics is the geometry of one size token.
type SizeMetrics struct {
	PaddingX int
	PaddingY int
	// Width is the preferred width of floating surfaces (modal, tooltip).
	Width int
}

// SpacingSize is a spacing token resolved through the theme.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingExtraSmall
	SpacingSmall
	SpacingMedium
	SpacingLarge
	SpacingExtraLarge
)

const spacingSizeCount = int(SpacingExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderNone BorderVariant = iota
	BorderNormal
	BorderRounded
	BorderThick
	BorderDouble
)

// BorderSet groups the borders available to components.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyVariant selects a text preset.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyCaption
	TypographyLabel
	TypographyCode
	TypographyEmphasis
)

// TypographyScale holds the text presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Label    lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// InputState is the visual state of an input control.
type InputState int

const (
	InputDefault InputState = iota
	InputFocus
	InputError
	InputSuccess
	InputDisabled
)

func (s InputState) String() string {
	switch s {
	case InputFocus:
		return "focus"
	case InputError:
		return "error"
	case InputSuccess:
		return "success"
	case InputDisabled:
		return "disabled"
	default:
		return "default"
	}
}

// InputStyles are the frames drawn around input controls.
type InputStyles struct {
	Default  lipgloss.Style
	Focus    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Disabled lipgloss.Style
}

// Kind names a component family in the variant registry.
type Kind string

const (
	KindButton Kind = "button"
	KindBadge  Kind = "badge"
	KindChip   Kind = "chip"
	KindAlert  Kind = "alert"
	KindBanner Kind = "banner"
	KindToast  Kind = "toast"
)

type variantKey struct {
	kind    Kind
	variant Variant
}

// VariantRegistry maps a component kind and variant to its strategy.
type VariantRegistry struct {
	strategies map[variantKey]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[variantKey]StyleStrategy)}
}

// Register sets the strategy for kind and variant.
func (vr *VariantRegistry) Register(kind Kind, variant Variant, strategy StyleStrategy) {
	vr.strategies[variantKey{kind: kind, variant: variant}] = strategy
}

// Get returns the registered strategy or nil.
func (vr *VariantRegistry) Get(kind Kind, variant Variant) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variantKey{kind: kind, variant: variant}]
}

// Theme is an immutable set of design tokens. Build it once and pass it
// through RenderContext.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    spacingTable
	Sizes      [sizeCount]SizeMetrics
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// ThemeNames lists the built-in themes.
var ThemeNames = []string{"light", "dark"}

// ThemeByName resolves a built-in theme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func lightPalette() Palette {
	return Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#f8fafc", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#94a3b8", "#475569"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}
}

// LightTheme is the default theme.
func LightTheme() Theme {
	return buildTheme("light", lightPalette())
}

// DarkTheme swaps the surface and neutral slots for dark backgrounds.
func DarkTheme() Theme {
	p := lightPalette()
	p.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	p.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}
	return buildTheme("dark", p)
}

func buildTheme(name string, palette Palette) Theme {
	borders := BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	theme := Theme{
		Name:    name,
		Palette: palette,
		Borders: borders,
		Spacing: spacingTable{
			SpacingNone:       0,
			SpacingExtraSmall: 1,
			SpacingSmall:      1,
			SpacingMedium:     2,
			SpacingLarge:      3,
			SpacingExtraLarge: 4,
		},
		Sizes: [sizeCount]SizeMetrics{
			SizeSmall:  {PaddingX: 1, PaddingY: 0, Width: 32},
			SizeMedium: {PaddingX: 2, PaddingY: 0, Width: 48},
			SizeLarge:  {PaddingX: 3, PaddingY: 1, Width: 64},
		},
		Typography: defaultTypography(palette),
		Input:      defaultInputStyles(palette, borders),
		Variants:   NewVariantRegistry(),
	}

	registerFilledVariants(theme.Variants, KindButton)
	registerFilledVariants(theme.Variants, KindBanner)
	registerOutlinedVariants(theme.Variants, KindBadge)
	registerOutlinedVariants(theme.Variants, KindChip)
	registerTextVariants(theme.Variants, KindAlert)
	registerTextVariants(theme.Variants, KindToast)

	return theme
}

func allVariants() []Variant {
	return []Variant{
		VariantPrimary, VariantSecondary, VariantSuccess, VariantWarning,
		VariantDanger, VariantInfo, VariantNeutral,
	}
}

// Buttons and banners fill their background.
func registerFilledVariants(registry *VariantRegistry, kind Kind) {
	for _, v := range allVariants() {
		registry.Register(kind, v, NewCompositeStrategy(Background(v.Slot())))
	}
}

// Badges and chips draw coloured text inside a rounded border.
func registerOutlinedVariants(registry *VariantRegistry, kind Kind) {
	for _, v := range allVariants() {
		registry.Register(kind, v, NewCompositeStrategy(
			Foreground(v.Slot()),
			BorderColor(v.Slot()),
			Border(BorderRounded),
			PaddingX(SpacingExtraSmall),
		))
	}
}

// Alerts and toasts use a coloured left rule and text.
func registerTextVariants(registry *VariantRegistry, kind Kind) {
	for _, v := range allVariants() {
		registry.Register(kind, v, NewCompositeStrategy(
			Foreground(v.Slot()),
			LeftRule(v.Slot()),
			PaddingX(SpacingExtraSmall),
		))
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Secondary.Muted),
		Caption:  body.Foreground(p.Neutral.Base).Faint(true),
		Label:    body.Bold(true),
		Code:     body.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true).Italic(true),
	}
}

func defaultInputStyles(p Palette, b BorderSet) InputStyles {
	frame := lipgloss.NewStyle().
		BorderStyle(b.Rounded).
		BorderForeground(p.Neutral.Muted).
		Padding(0, 1).
		Foreground(p.Surface.OnBase)
	return InputStyles{
		Default:  frame,
		Focus:    frame.BorderForeground(p.Primary.Base),
		Error:    frame.BorderForeground(p.Danger.Base),
		Success:  frame.BorderForeground(p.Success.Base),
		Disabled: frame.Faint(true),
	}
}

// SizeFor returns the metrics of size, falling back to medium.
func SizeFor(theme Theme, size Size) SizeMetrics {
	if size < 0 || int(size) >= sizeCount {
		size = SizeMedium
	}
	return theme.Sizes[size]
}

// SpacingValue returns the cell count for a spacing token.
func SpacingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= spacingSizeCount {
		index = int(SpacingMedium)
	}
	return theme.Spacing[index]
}

// BorderFor returns the border for variant.
func BorderFor(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderNormal:
		return theme.Borders.Normal
	case BorderRounded:
		return theme.Borders.Rounded
	case BorderThick:
		return theme.Borders.Thick
	case BorderDouble:
		return theme.Borders.Double
	default:
		return lipgloss.Border{}
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	t := theme.Typography
	switch variant {
	case TypographyTitle:
		return t.Title
	case TypographySubtitle:
		return t.Subtitle
	case TypographyCaption:
		return t.Caption
	case TypographyLabel:
		return t.Label
	case TypographyCode:
		return t.Code
	case TypographyEmphasis:
		return t.Emphasis
	default:
		return t.Body
	}
}

// InputStyle returns the frame for state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	switch state {
	case InputFocus:
		return theme.Input.Focus
	case InputError:
		return theme.Input.Error
	case InputSuccess:
		return theme.Input.Success
	case InputDisabled:
		return theme.Input.Disabled
	default:
		return theme.Input.Default
	}
}
