package widgets

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/overlay"
	"github.com/alexisbeaulieu97/loom/internal/timeslot"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultVisibleSlots is how many slots an open time picker lists at once.
const DefaultVisibleSlots = 6

// TimePickerOptions configures a TimePicker.
type TimePickerOptions struct {
	// Value delegates the selected label to the host when non-nil.
	Value        *string
	DefaultValue string
	// Interval is the slot granularity in minutes. Zero means
	// timeslot.DefaultInterval.
	Interval     int
	Placeholder  string
	Disabled     bool
	VisibleSlots int
	OnChange     func(label string)
	OnOpenChange func(open bool)
}

// TimePicker selects a time of day from a dropdown of fixed slots. Moving
// through the list changes a draft; the selection only changes when the
// draft is confirmed. Closing by Escape or an outside click drops the
// draft.
type TimePicker struct {
	focusState
	hitbox
	keys        KeyMap
	slots       []string
	selected    *value.Value[string]
	menu        *overlay.Machine
	draft       int
	offset      int
	visible     int
	placeholder string
	disabled    bool
	triggerRows int
}

// NewTimePicker creates a time picker. It fails when the interval is
// negative.
func NewTimePicker(opts TimePickerOptions) (*TimePicker, error) {
	interval := opts.Interval
	if interval == 0 {
		interval = timeslot.DefaultInterval
	}
	slots, err := timeslot.Generate(interval)
	if err != nil {
		return nil, err
	}

	t := &TimePicker{
		keys:        DefaultKeyMap(),
		slots:       slots,
		selected:    value.New(opts.Value, opts.DefaultValue, opts.OnChange),
		visible:     opts.VisibleSlots,
		placeholder: opts.Placeholder,
		disabled:    opts.Disabled,
	}
	if t.visible <= 0 {
		t.visible = DefaultVisibleSlots
	}
	if t.placeholder == "" {
		t.placeholder = "Select time"
	}
	t.menu = overlay.New(overlay.Options{
		CloseOnEscape:       true,
		CloseOnOutsideClick: true,
		OnOpenChange:        opts.OnOpenChange,
		OnEnter:             t.resetDraft,
		OnExit:              func(overlay.Reason) { t.resetDraft() },
	})
	return t, nil
}

// Slots lists every selectable label.
func (t *TimePicker) Slots() []string {
	return t.slots
}

// Value is the confirmed label, or "" when nothing is selected.
func (t *TimePicker) Value() string {
	return t.selected.Get()
}

// Draft is the highlighted label while the menu is open.
func (t *TimePicker) Draft() string {
	return t.slots[t.draft]
}

// IsOpen reports whether the menu is showing.
func (t *TimePicker) IsOpen() bool {
	return t.menu.IsOpen()
}

// Sync applies the host's label.
func (t *TimePicker) Sync(label string) {
	t.selected.Sync(label)
}

// Open shows the menu.
func (t *TimePicker) Open() {
	if !t.disabled {
		t.menu.Show()
	}
}

// Close hides the menu without confirming.
func (t *TimePicker) Close() {
	t.menu.Hide()
}

// MoveDraft moves the highlight by delta slots, clamped to the list.
func (t *TimePicker) MoveDraft(delta int) {
	t.setDraft(t.draft + delta)
}

// Confirm commits the draft and closes the menu.
func (t *TimePicker) Confirm() {
	if !t.menu.IsOpen() {
		return
	}
	label := t.slots[t.draft]
	if label != t.selected.Get() {
		t.selected.Request(label)
	}
	t.menu.Hide()
}

func (t *TimePicker) resetDraft() {
	t.offset = 0
	t.setDraft(max(timeslot.IndexOf(t.slots, t.selected.Get()), 0))
}

func (t *TimePicker) setDraft(i int) {
	t.draft = clampInt(i, 0, len(t.slots)-1)
	if t.draft < t.offset {
		t.offset = t.draft
	}
	if t.draft >= t.offset+t.visible {
		t.offset = t.draft - t.visible + 1
	}
}

func (t *TimePicker) Update(msg tea.Msg) tea.Cmd {
	if t.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !t.focused {
			return nil
		}
		if !t.menu.IsOpen() {
			if key.Matches(msg, t.keys.Confirm, t.keys.Toggle, t.keys.Down) {
				t.Open()
			}
			return nil
		}
		switch {
		case key.Matches(msg, t.keys.Cancel):
			t.menu.Escape()
		case key.Matches(msg, t.keys.Up):
			t.MoveDraft(-1)
		case key.Matches(msg, t.keys.Down):
			t.MoveDraft(1)
		case key.Matches(msg, t.keys.PrevPage):
			t.MoveDraft(-t.visible)
		case key.Matches(msg, t.keys.NextPage):
			t.MoveDraft(t.visible)
		case key.Matches(msg, t.keys.Confirm):
			t.Confirm()
		}
	case tea.MouseMsg:
		if !isPress(msg) {
			return nil
		}
		_, y, inside := t.locate(msg)
		if !inside {
			t.menu.OutsideClick()
			return nil
		}
		t.click(y)
	}
	return nil
}

func (t *TimePicker) click(y int) {
	switch {
	case y < t.triggerRows:
		t.menu.Toggle()
	case !t.menu.IsOpen():
	case y-t.triggerRows < t.visibleCount():
		t.setDraft(t.offset + y - t.triggerRows)
	case y-t.triggerRows == t.visibleCount():
		t.Confirm()
	}
}

func (t *TimePicker) visibleCount() int {
	return min(t.visible, len(t.slots)-t.offset)
}

func (t *TimePicker) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t *TimePicker) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	state := components.InputDefault
	switch {
	case t.disabled:
		state = components.InputDisabled
	case t.focused:
		state = components.InputFocus
	}

	label := t.selected.Get()
	if label == "" {
		label = components.TypographyStyle(theme, components.TypographyCaption).Render(t.placeholder)
	}
	caret := "▾"
	if t.menu.IsOpen() {
		caret = "▴"
	}
	trigger := components.InputStyle(theme, state).Render("◷ " + label + " " + caret)
	t.triggerRows = lipgloss.Height(trigger)
	if !t.menu.IsOpen() {
		return t.measure(trigger)
	}

	highlight := components.Background(components.PalettePrimary)(lipgloss.NewStyle(), theme)
	chosen := components.Foreground(components.PalettePrimary)(lipgloss.NewStyle(), theme).Bold(true)
	rows := make([]string, 0, t.visible+1)
	for i := t.offset; i < t.offset+t.visibleCount(); i++ {
		row := " " + t.slots[i] + " "
		switch {
		case i == t.draft:
			row = highlight.Render(row)
		case t.slots[i] == t.selected.Get():
			row = chosen.Render(row)
		}
		rows = append(rows, row)
	}
	rows = append(rows, components.NewButton("Select").WithSize(components.SizeSmall).ViewWithContext(ctx))
	return t.measure(trigger + "\n" + strings.Join(rows, "\n"))
}
