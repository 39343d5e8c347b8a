package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alert is an inline one-line message prefixed with its variant icon.
type Alert struct {
	BaseComponent
	message string
	variant Variant
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{BaseComponent: NewBaseComponent(), message: message, variant: VariantInfo}
}

func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

func (a *Alert) ViewWithContext(ctx RenderContext) string {
	style := variantStyle(ctx.Theme, KindAlert, a.variant, a.ComputeStyle(ctx.Theme))
	return style.Render(a.variant.Icon() + " " + a.message)
}

func (a *Alert) WithVariant(variant Variant) *Alert {
	a.variant = variant
	return a
}

func SuccessAlert(message string) *Alert { return NewAlert(message).WithVariant(VariantSuccess) }
func WarningAlert(message string) *Alert { return NewAlert(message).WithVariant(VariantWarning) }
func DangerAlert(message string) *Alert  { return NewAlert(message).WithVariant(VariantDanger) }

// Banner is a full-width filled message with a title and description.
type Banner struct {
	BaseComponent
	title       string
	description string
	icon        string
	variant     Variant
}

// NewBanner creates a primary banner.
func NewBanner(title string) *Banner {
	return &Banner{BaseComponent: NewBaseComponent(), title: title, variant: VariantPrimary}
}

func (b *Banner) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Banner) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := variantStyle(theme, KindBanner, b.variant, b.ComputeStyle(theme)).
		Padding(0, SpacingValue(theme, SpacingSmall))

	icon := b.icon
	if icon == "" {
		icon = b.variant.Icon()
	}
	lines := []string{lipgloss.NewStyle().Bold(true).Render(icon + " " + b.title)}
	if b.description != "" {
		lines = append(lines, "  "+b.description)
	}
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (b *Banner) WithDescription(description string) *Banner {
	b.description = description
	return b
}

// WithIcon replaces the variant icon.
func (b *Banner) WithIcon(icon string) *Banner {
	b.icon = icon
	return b
}

func (b *Banner) WithVariant(variant Variant) *Banner {
	b.variant = variant
	return b
}

// Toast is a transient notification. Dismissed toasts render nothing.
type Toast struct {
	BaseComponent
	title       string
	message     string
	variant     Variant
	dismissible bool
	dismissed   bool
	maxWidth    int
	onDismiss   func()
}

// DefaultToastWidth bounds toast messages.
const DefaultToastWidth = 48

// NewToast creates a dismissible info toast.
func NewToast(message string) *Toast {
	return &Toast{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       VariantInfo,
		dismissible:   true,
		maxWidth:      DefaultToastWidth,
	}
}

func (t *Toast) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Toast) ViewWithContext(ctx RenderContext) string {
	if t.dismissed {
		return ""
	}
	style := variantStyle(ctx.Theme, KindToast, t.variant, t.ComputeStyle(ctx.Theme))

	head := t.variant.Icon() + " "
	if t.title != "" {
		head += lipgloss.NewStyle().Bold(true).Render(Truncate(t.title, t.maxWidth))
	} else {
		head += Truncate(t.message, t.maxWidth)
	}
	if t.dismissible {
		head += "  ×"
	}
	lines := []string{head}
	if t.title != "" && t.message != "" {
		lines = append(lines, "  "+Truncate(t.message, t.maxWidth))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (t *Toast) WithTitle(title string) *Toast {
	t.title = title
	return t
}

func (t *Toast) WithVariant(variant Variant) *Toast {
	t.variant = variant
	return t
}

func (t *Toast) WithDismissible(dismissible bool) *Toast {
	t.dismissible = dismissible
	return t
}

func (t *Toast) WithMaxWidth(width int) *Toast {
	if width > 0 {
		t.maxWidth = width
	}
	return t
}

// OnDismiss registers a callback run once when the toast is dismissed.
func (t *Toast) OnDismiss(fn func()) *Toast {
	t.onDismiss = fn
	return t
}

// Dismiss hides a dismissible toast and reports whether it changed.
func (t *Toast) Dismiss() bool {
	if !t.dismissible || t.dismissed {
		return false
	}
	t.dismissed = true
	if t.onDismiss != nil {
		t.onDismiss()
	}
	return true
}

func (t *Toast) Dismissed() bool {
	return t.dismissed
}
