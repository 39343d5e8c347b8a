package widgets

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/overlay"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// DropdownOption is one menu entry.
type DropdownOption struct {
	Value    string
	Label    string
	Disabled bool
}

func (o DropdownOption) label() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// ButtonDropdownOptions configures a ButtonDropdown.
type ButtonDropdownOptions struct {
	Label   string
	Options []DropdownOption
	Variant components.Variant
	Size    components.Size
	// Filterable lets typing narrow the menu with fuzzy matching.
	Filterable   bool
	Disabled     bool
	OnSelect     func(value string)
	OnOpenChange func(open bool)
}

// ButtonDropdown is a button that opens a menu of actions. Choosing an
// entry fires OnSelect and closes the menu; an outside click or Escape
// closes it without choosing.
type ButtonDropdown struct {
	focusState
	hitbox
	keys        KeyMap
	label       string
	options     []DropdownOption
	variant     components.Variant
	size        components.Size
	filterable  bool
	disabled    bool
	onSelect    func(value string)
	menu        *overlay.Machine
	query       string
	visible     []int
	cursor      int
	triggerRows int
	listOffset  int
}

func NewButtonDropdown(opts ButtonDropdownOptions) *ButtonDropdown {
	d := &ButtonDropdown{
		keys:       DefaultKeyMap(),
		label:      opts.Label,
		options:    opts.Options,
		variant:    opts.Variant,
		size:       opts.Size,
		filterable: opts.Filterable,
		disabled:   opts.Disabled,
		onSelect:   opts.OnSelect,
	}
	d.menu = overlay.New(overlay.Options{
		CloseOnEscape:       true,
		CloseOnOutsideClick: true,
		OnOpenChange:        opts.OnOpenChange,
		OnEnter:             d.resetMenu,
	})
	d.resetMenu()
	return d
}

func (d *ButtonDropdown) resetMenu() {
	d.query = ""
	d.filter()
}

// filter rebuilds the visible entries for the current query and moves the
// cursor to the first enabled one.
func (d *ButtonDropdown) filter() {
	d.visible = d.visible[:0]
	if d.query == "" {
		for i := range d.options {
			d.visible = append(d.visible, i)
		}
	} else {
		labels := make([]string, len(d.options))
		for i, o := range d.options {
			labels[i] = o.label()
		}
		for _, m := range fuzzy.Find(d.query, labels) {
			d.visible = append(d.visible, m.Index)
		}
	}
	d.cursor = -1
	d.moveCursor(1)
}

func (d *ButtonDropdown) IsOpen() bool {
	return d.menu.IsOpen()
}

func (d *ButtonDropdown) Open() {
	if !d.disabled {
		d.menu.Show()
	}
}

func (d *ButtonDropdown) Close() {
	d.menu.Hide()
}

func (d *ButtonDropdown) Query() string {
	return d.query
}

// Visible lists the entries currently shown, best match first.
func (d *ButtonDropdown) Visible() []DropdownOption {
	out := make([]DropdownOption, len(d.visible))
	for i, idx := range d.visible {
		out[i] = d.options[idx]
	}
	return out
}

// Highlighted is the entry under the cursor.
func (d *ButtonDropdown) Highlighted() (DropdownOption, bool) {
	if d.cursor < 0 || d.cursor >= len(d.visible) {
		return DropdownOption{}, false
	}
	return d.options[d.visible[d.cursor]], true
}

// SetQuery replaces the filter text.
func (d *ButtonDropdown) SetQuery(q string) {
	d.query = q
	d.filter()
}

func (d *ButtonDropdown) moveCursor(delta int) {
	for i := d.cursor + delta; i >= 0 && i < len(d.visible); i += delta {
		if !d.options[d.visible[i]].Disabled {
			d.cursor = i
			return
		}
	}
	if d.cursor >= len(d.visible) {
		d.cursor = -1
	}
}

// choose selects the visible entry at i.
func (d *ButtonDropdown) choose(i int) {
	if i < 0 || i >= len(d.visible) {
		return
	}
	opt := d.options[d.visible[i]]
	if opt.Disabled {
		return
	}
	if d.onSelect != nil {
		d.onSelect(opt.Value)
	}
	d.menu.Hide()
}

func (d *ButtonDropdown) Update(msg tea.Msg) tea.Cmd {
	if d.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !d.focused {
			return nil
		}
		if !d.menu.IsOpen() {
			if key.Matches(msg, d.keys.Confirm, d.keys.Toggle, d.keys.Down) {
				d.Open()
			}
			return nil
		}
		switch {
		case key.Matches(msg, d.keys.Cancel):
			d.menu.Escape()
		case d.filterable && msg.Type == tea.KeyRunes:
			d.SetQuery(d.query + string(msg.Runes))
		case key.Matches(msg, d.keys.Up):
			d.moveCursor(-1)
		case key.Matches(msg, d.keys.Down):
			d.moveCursor(1)
		case key.Matches(msg, d.keys.Confirm):
			d.choose(d.cursor)
		case d.filterable && key.Matches(msg, d.keys.Delete):
			if r := []rune(d.query); len(r) > 0 {
				d.SetQuery(string(r[:len(r)-1]))
			}
		}
	case tea.MouseMsg:
		if !isPress(msg) {
			return nil
		}
		_, y, inside := d.locate(msg)
		if !inside {
			d.menu.OutsideClick()
			return nil
		}
		switch {
		case y < d.triggerRows:
			d.menu.Toggle()
		case d.menu.IsOpen():
			d.choose(y - d.triggerRows - d.listOffset)
		}
	}
	return nil
}

func (d *ButtonDropdown) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

func (d *ButtonDropdown) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	caret := "▾"
	if d.menu.IsOpen() {
		caret = "▴"
	}
	trigger := components.NewButton(d.label).
		WithVariant(d.variant).
		WithSize(d.size).
		WithIcons("", caret).
		WithDisabled(d.disabled).
		WithFocused(d.focused).
		ViewWithContext(ctx)
	d.triggerRows = lipgloss.Height(trigger)
	if !d.menu.IsOpen() {
		return d.measure(trigger)
	}

	rows := make([]string, 0, len(d.visible)+1)
	d.listOffset = 0
	if d.filterable {
		caption := components.TypographyStyle(theme, components.TypographyCaption)
		rows = append(rows, caption.Render("⌕ ")+d.query)
		d.listOffset = 1
	}
	highlight := components.Background(components.PalettePrimary)(lipgloss.NewStyle(), theme)
	muted := lipgloss.NewStyle().Faint(true)
	for i, idx := range d.visible {
		opt := d.options[idx]
		row := " " + opt.label() + " "
		switch {
		case opt.Disabled:
			row = muted.Render(row)
		case i == d.cursor:
			row = highlight.Render(row)
		}
		rows = append(rows, row)
	}
	if len(d.visible) == 0 {
		rows = append(rows, muted.Render(" No matches "))
	}
	return d.measure(trigger + "\n" + strings.Join(rows, "\n"))
}
