package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Text renders styled text, wrapped to the context width when one is set.
type Text struct {
	BaseComponent
	content  string
	maxWidth int
	truncate bool
}

// NewText creates body text.
func NewText(content string) *Text {
	t := &Text{BaseComponent: NewBaseComponent(), content: content}
	t.SetAppliers(Typography(TypographyBody))
	return t
}

func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Text) ViewWithContext(ctx RenderContext) string {
	width := t.maxWidth
	if width <= 0 {
		width = ctx.Width
	}
	style := t.ComputeStyle(ctx.Theme)
	if width > 0 && t.truncate {
		return style.Render(Truncate(t.content, width))
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(t.content)
}

func (t *Text) Content() string {
	return t.content
}

func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithMaxWidth bounds the text independently of the context.
func (t *Text) WithMaxWidth(width int) *Text {
	t.maxWidth = width
	return t
}

// WithTruncate cuts overflowing text with an ellipsis instead of wrapping.
func (t *Text) WithTruncate(on bool) *Text {
	t.truncate = on
	return t
}

func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyTitle))
}

func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographySubtitle))
}

func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCaption))
}

func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCode))
}

func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyEmphasis))
}

// Truncate shortens s to at most width cells, ending with an ellipsis when
// something was cut. Wide runes count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Header renders a title with an optional subtitle. Level 1 is the most
// prominent.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	level    int
}

// NewHeader creates a level 1 header.
func NewHeader(title string) *Header {
	return &Header{BaseComponent: NewBaseComponent(), title: title, level: 1}
}

func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

func (h *Header) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	title := h.ComputeStyle(theme).Inherit(TypographyStyle(theme, TypographyTitle))
	switch h.level {
	case 1:
		title = title.Underline(true)
	case 2:
	default:
		title = title.UnsetForeground().Inherit(TypographyStyle(theme, TypographyLabel))
	}

	lines := []string{title.Render(h.title)}
	if h.subtitle != "" {
		lines = append(lines, TypographyStyle(theme, TypographySubtitle).Render(h.subtitle))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithLevel sets the heading level, clamped to 1..3.
func (h *Header) WithLevel(level int) *Header {
	h.level = max(1, min(level, 3))
	return h
}

func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

func (h *Header) Title() string    { return h.title }
func (h *Header) Subtitle() string { return h.subtitle }
func (h *Header) Level() int       { return h.level }

// Link renders an underlined label followed by its target, since terminals
// cannot be relied on to make text clickable.
type Link struct {
	BaseComponent
	label    string
	href     string
	disabled bool
	showHref bool
}

// NewLink creates a link.
func NewLink(label, href string) *Link {
	l := &Link{BaseComponent: NewBaseComponent(), label: label, href: href, showHref: true}
	l.SetAppliers(Foreground(PalettePrimary))
	return l
}

func (l *Link) View() string {
	return l.ViewWithContext(DefaultContext())
}

func (l *Link) ViewWithContext(ctx RenderContext) string {
	label := l.label
	if label == "" {
		label = l.href
	}
	style := l.ComputeStyle(ctx.Theme).Underline(!l.disabled)
	if l.disabled {
		style = style.Faint(true)
	}
	out := style.Render(label)
	if l.showHref && l.href != "" && l.href != label {
		out += " " + TypographyStyle(ctx.Theme, TypographyCaption).Render("("+l.href+")")
	}
	return out
}

func (l *Link) WithDisabled(disabled bool) *Link {
	l.disabled = disabled
	return l
}

// WithHref toggles printing the target after the label.
func (l *Link) WithHref(show bool) *Link {
	l.showHref = show
	return l
}

func (l *Link) Href() string {
	return l.href
}
