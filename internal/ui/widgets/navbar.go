package widgets

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/overlay"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NavItem is one destination of a Navigation bar.
type NavItem struct {
	Label    string
	Href     string
	Disabled bool
}

// NavVariant selects the frame of a Navigation bar.
type NavVariant int

const (
	NavElevated NavVariant = iota
	NavFlat
)

const (
	defaultNavLogo    = "loom"
	defaultNavContact = "Contact"
	navMenuGlyph      = "≡"
	navCloseGlyph     = "×"
)

// NavigationOptions configures a Navigation bar.
type NavigationOptions struct {
	Items []NavItem
	// Active delegates the current destination to the host when non-nil.
	Active        *string
	DefaultActive string
	Logo          string
	ContactLabel  string
	HideContact   bool
	Variant       NavVariant
	OnNavigate    func(href string)
	OnContact     func()
	OnMenuChange  func(open bool)
}

// Navigation is a site header: a logo, a row of destinations and a
// contact button. When the render width is too narrow for the row it
// collapses to a menu button that opens a vertical drawer.
type Navigation struct {
	focusState
	hitbox
	keys      KeyMap
	items     []NavItem
	active    *value.Value[string]
	logo      string
	contact   string
	variant   NavVariant
	menu      *overlay.Machine
	cursor    int
	collapsed bool
	spans     []span
	barRows   int
	menuCol   int
	onNav     func(href string)
	onContact func()
}

func NewNavigation(opts NavigationOptions) *Navigation {
	n := &Navigation{
		keys:      DefaultKeyMap(),
		items:     opts.Items,
		active:    value.New(opts.Active, opts.DefaultActive, nil),
		logo:      opts.Logo,
		contact:   opts.ContactLabel,
		variant:   opts.Variant,
		onNav:     opts.OnNavigate,
		onContact: opts.OnContact,
	}
	if n.logo == "" {
		n.logo = defaultNavLogo
	}
	switch {
	case opts.HideContact:
		n.contact = ""
	case n.contact == "":
		n.contact = defaultNavContact
	}
	n.menu = overlay.New(overlay.Options{
		CloseOnEscape:       true,
		CloseOnOutsideClick: true,
		OnOpenChange:        opts.OnMenuChange,
		OnEnter:             n.resetCursor,
	})
	n.resetCursor()
	return n
}

// Active is the current destination.
func (n *Navigation) Active() string {
	return n.active.Get()
}

// Sync applies the host's destination.
func (n *Navigation) Sync(href string) {
	n.active.Sync(href)
}

// Cursor is the entry under the keyboard cursor. Entries are the items
// followed by the contact button.
func (n *Navigation) Cursor() int {
	return n.cursor
}

// Collapsed reports whether the last render fell back to the menu button.
func (n *Navigation) Collapsed() bool {
	return n.collapsed
}

func (n *Navigation) MenuOpen() bool {
	return n.menu.IsOpen()
}

func (n *Navigation) entries() int {
	if n.contact == "" {
		return len(n.items)
	}
	return len(n.items) + 1
}

func (n *Navigation) entryLabel(i int) string {
	if i == len(n.items) {
		return n.contact
	}
	return n.items[i].Label
}

func (n *Navigation) enabled(i int) bool {
	return i == len(n.items) || !n.items[i].Disabled
}

func (n *Navigation) resetCursor() {
	n.cursor = -1
	for i, it := range n.items {
		if it.Href == n.active.Get() && !it.Disabled {
			n.cursor = i
			return
		}
	}
	n.move(1)
}

func (n *Navigation) move(delta int) {
	for i := n.cursor + delta; i >= 0 && i < n.entries(); i += delta {
		if n.enabled(i) {
			n.cursor = i
			return
		}
	}
}

// Activate follows entry i: an item navigates to its href and the contact
// button fires OnContact. The drawer closes either way.
func (n *Navigation) Activate(i int) {
	if i < 0 || i >= n.entries() || !n.enabled(i) {
		return
	}
	n.cursor = i
	n.menu.Hide()
	if i == len(n.items) {
		if n.onContact != nil {
			n.onContact()
		}
		return
	}
	href := n.items[i].Href
	n.active.Request(href)
	if n.onNav != nil {
		n.onNav(href)
	}
}

func (n *Navigation) Update(msg tea.Msg) tea.Cmd {
	if n.entries() == 0 {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !n.focused {
			return nil
		}
		n.handleKey(msg)
	case tea.MouseMsg:
		if !isPress(msg) {
			return nil
		}
		x, y, inside := n.locate(msg)
		if !inside {
			n.menu.OutsideClick()
			return nil
		}
		n.handleClick(x, y)
	}
	return nil
}

func (n *Navigation) handleKey(msg tea.KeyMsg) {
	if !n.collapsed {
		switch {
		case key.Matches(msg, n.keys.Prev):
			n.move(-1)
		case key.Matches(msg, n.keys.Next):
			n.move(1)
		case key.Matches(msg, n.keys.Confirm):
			n.Activate(n.cursor)
		}
		return
	}
	if !n.menu.IsOpen() {
		if key.Matches(msg, n.keys.Confirm, n.keys.Toggle, n.keys.Down) {
			n.menu.Show()
		}
		return
	}
	switch {
	case key.Matches(msg, n.keys.Cancel):
		n.menu.Escape()
	case key.Matches(msg, n.keys.Up):
		n.move(-1)
	case key.Matches(msg, n.keys.Down):
		n.move(1)
	case key.Matches(msg, n.keys.Confirm):
		n.Activate(n.cursor)
	}
}

func (n *Navigation) handleClick(x, y int) {
	n.focused = true
	if y >= n.barRows {
		if n.menu.IsOpen() {
			n.Activate(y - n.barRows)
		}
		return
	}
	if n.collapsed {
		if x >= n.menuCol && x < n.menuCol+lipgloss.Width(navMenuGlyph) {
			n.menu.Toggle()
		}
		return
	}
	if i := spanAt(n.spans, x); i >= 0 {
		n.Activate(i)
	}
}

func (n *Navigation) View() string {
	return n.ViewWithContext(components.DefaultContext())
}

func (n *Navigation) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	border := components.BorderThick
	if n.variant == NavFlat {
		border = components.BorderNormal
	}
	frame := lipgloss.NewStyle().
		Border(components.BorderFor(theme, border)).
		BorderForeground(theme.Palette.Neutral.Muted).
		Padding(0, 1)
	// Content starts after the left border and padding.
	const contentX = 2

	logo := components.TypographyStyle(theme, components.TypographyTitle).Render(n.logo)
	lead := logo + strings.Repeat(" ", 3)

	tokens := make([]string, n.entries())
	for i := range tokens {
		tokens[i] = n.renderEntry(ctx, i)
	}
	row, spans := layoutSpans(tokens, "  ")

	full := lead + row
	n.collapsed = ctx.Width > 0 && lipgloss.Width(full)+2*contentX > ctx.Width
	if !n.collapsed {
		n.menu.Hide()
		offset := contentX + lipgloss.Width(lead)
		for i := range spans {
			spans[i].from += offset
			spans[i].to += offset
		}
		n.spans = spans
		box := frame.Render(full)
		n.barRows = lipgloss.Height(box)
		return n.measure(box)
	}

	glyph := navMenuGlyph
	if n.menu.IsOpen() {
		glyph = navCloseGlyph
	}
	inner := max(ctx.Width-2*contentX, lipgloss.Width(logo)+2)
	bar := joinEdges(logo, glyph, inner)
	n.menuCol = contentX + lipgloss.Width(bar) - lipgloss.Width(glyph)
	n.spans = nil
	box := frame.Render(bar)
	n.barRows = lipgloss.Height(box)
	if !n.menu.IsOpen() {
		return n.measure(box)
	}

	rows := []string{box}
	highlight := components.Background(components.PalettePrimary)(lipgloss.NewStyle(), theme)
	muted := lipgloss.NewStyle().Faint(true)
	for i := 0; i < n.entries(); i++ {
		line := " " + n.entryLabel(i) + " "
		switch {
		case i == n.cursor:
			line = highlight.Render(line)
		case !n.enabled(i):
			line = muted.Render(line)
		}
		rows = append(rows, line)
	}
	return n.measure(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (n *Navigation) renderEntry(ctx components.RenderContext, i int) string {
	theme := ctx.Theme
	cursor := n.focused && i == n.cursor
	if i == len(n.items) {
		return components.NewButton(n.contact).
			WithSize(components.SizeSmall).
			WithFocused(cursor).
			ViewWithContext(ctx)
	}
	it := n.items[i]
	style := lipgloss.NewStyle()
	switch {
	case it.Disabled:
		style = style.Faint(true)
	case it.Href == n.active.Get():
		style = components.Foreground(components.PalettePrimary)(style, theme).Bold(true)
	}
	if cursor {
		style = style.Underline(true)
	}
	return style.Render(it.Label)
}
